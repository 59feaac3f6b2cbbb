package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/karnadev/dragonsrealm/internal/common"
)

// User is an authenticated account.
type User struct {
	ID       int64
	Username string
}

// CredentialVerifier checks a username/password pair. The shipped
// implementation is a fixed single account; the interface keeps the boundary
// replaceable.
type CredentialVerifier interface {
	// Verify returns the user on success, common.ErrUnknownUser for an
	// unrecognized username, or common.ErrInvalidPassword for a bad password.
	Verify(ctx context.Context, username, password string) (*User, error)
}

// staticUser holds one account with a bcrypt password hash.
type staticUser struct {
	user         User
	passwordHash []byte
}

// NewStaticVerifier returns a verifier for a single fixed account.
func NewStaticVerifier(id int64, username, passwordHash string) CredentialVerifier {
	return &staticUser{
		user:         User{ID: id, Username: username},
		passwordHash: []byte(passwordHash),
	}
}

func (s *staticUser) Verify(ctx context.Context, username, password string) (*User, error) {
	if username != s.user.Username {
		return nil, common.ErrUnknownUser
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, common.ErrInvalidPassword
	}
	u := s.user
	return &u, nil
}
