package diary

import "time"

// NoticeTTL is how long a transient warning stays visible.
const NoticeTTL = 3 * time.Second

// Notice is a dismiss-on-timeout message, used to surface rejected date
// selections. A message set at t expires at t+NoticeTTL.
type Notice struct {
	now     func() time.Time
	message string
	expires time.Time
}

// NewNotice returns a notice using the given clock, or time.Now when nil.
func NewNotice(now func() time.Time) *Notice {
	if now == nil {
		now = time.Now
	}
	return &Notice{now: now}
}

// Set replaces the current message and restarts the display window.
func (n *Notice) Set(message string) {
	n.message = message
	n.expires = n.now().Add(NoticeTTL)
}

// Message returns the active message, or false once it has expired.
func (n *Notice) Message() (string, bool) {
	if n.message == "" || !n.now().Before(n.expires) {
		return "", false
	}
	return n.message, true
}
