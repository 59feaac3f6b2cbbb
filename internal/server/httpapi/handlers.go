package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/server/auth"
	"github.com/karnadev/dragonsrealm/internal/server/documents"
	"github.com/karnadev/dragonsrealm/internal/server/nutrition"
)

// maxUploadBytes caps multipart uploads held in memory.
const maxUploadBytes = 10 << 20

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := s.verifier.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser):
			writeError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, common.ErrInvalidPassword):
			writeError(w, http.StatusBadRequest, "Invalid password")
		default:
			s.logger.Error(r.Context(), "credential check failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	s.logger.Info(r.Context(), "user logged in", "username", user.Username)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"valid": false})
		return
	}

	userID, err := auth.GetUserIDFromToken(req.Token, s.jwtSecret)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"valid": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "userId": userID})
}

func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	record, err := s.nutrition.Lookup(r.Context(), req.Query)
	if err != nil {
		var upstream *nutrition.UpstreamError
		switch {
		case errors.Is(err, common.ErrNotConfigured):
			writeError(w, http.StatusInternalServerError, "Nutrition service is not configured")
		case errors.As(err, &upstream):
			writeError(w, upstream.Status, "Failed to fetch nutrition data")
		case errors.Is(err, nutrition.ErrNoResults):
			writeError(w, http.StatusNotFound, "Failed to fetch nutrition data")
		default:
			s.logger.Error(r.Context(), "nutrition lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch nutrition data")
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	docs, err := s.docs.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "document list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if docs == nil {
		docs = []documents.Document{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	doc, err := s.docs.Upload(r.Context(), userID, name, content)
	if err != nil {
		if errors.Is(err, common.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "Missing document name")
			return
		}
		s.logger.Error(r.Context(), "document upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"document": doc})
}

func (s *Server) handleDocumentDownload(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	doc, content, err := s.docs.Download(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}
		s.logger.Error(r.Context(), "document download failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (s *Server) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if err := s.docs.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}
		s.logger.Error(r.Context(), "document delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
