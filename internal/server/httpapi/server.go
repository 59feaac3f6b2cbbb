// Package httpapi exposes the JSON API: login, token verification, the
// nutrition proxy, and document management.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/karnadev/dragonsrealm/internal/logging"
	"github.com/karnadev/dragonsrealm/internal/server/auth"
	"github.com/karnadev/dragonsrealm/internal/server/documents"
	"github.com/karnadev/dragonsrealm/internal/server/nutrition"
)

// Server holds the API dependencies and the underlying http.Server.
type Server struct {
	addr          string
	logger        logging.Logger
	verifier      auth.CredentialVerifier
	docs          *documents.Service
	nutrition     *nutrition.Client
	jwtSecret     []byte
	tokenValidity time.Duration

	httpServer *http.Server
}

// NewServer wires the API server. The token validity window applies to every
// minted login token.
func NewServer(addr string, logger logging.Logger, verifier auth.CredentialVerifier,
	docs *documents.Service, nutritionClient *nutrition.Client,
	jwtSecret []byte, tokenValidity time.Duration) *Server {

	s := &Server{
		addr:          addr,
		logger:        logger,
		verifier:      verifier,
		docs:          docs,
		nutrition:     nutritionClient,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
	}
	s.httpServer = &http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

// Handler builds the route table. Exposed so tests can drive the mux through
// httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth", s.handleLogin)
	mux.HandleFunc("POST /api/auth/verify", s.handleVerify)
	mux.HandleFunc("POST /api/nutrition", s.handleNutrition)

	mux.Handle("GET /api/documents", s.requireToken(http.HandlerFunc(s.handleDocumentList)))
	mux.Handle("POST /api/documents/upload", s.requireToken(http.HandlerFunc(s.handleDocumentUpload)))
	mux.Handle("GET /api/documents/download/{id}", s.requireToken(http.HandlerFunc(s.handleDocumentDownload)))
	mux.Handle("DELETE /api/documents/{id}", s.requireToken(http.HandlerFunc(s.handleDocumentDelete)))

	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "API server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
