package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karnadev/dragonsrealm/internal/common"
)

// Service coordinates document metadata and content.
type Service struct {
	repo    Repository
	objects ObjectStore
	now     func() time.Time
}

// NewService wires a repository and an object store. now defaults to
// time.Now when nil.
func NewService(repo Repository, objects ObjectStore, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, objects: objects, now: now}
}

// storageKey derives the object key for a document. Deterministic so that
// content can be found and deleted from metadata alone.
func storageKey(userID int64, docID string) string {
	return fmt.Sprintf("users/%d/%s", userID, docID)
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]Document, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Upload stores content and records metadata. Blank names are rejected with
// common.ErrEmptyInput.
func (s *Service) Upload(ctx context.Context, userID int64, name string, content []byte) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrEmptyInput
	}

	doc := Document{
		ID:         uuid.New().String(),
		Name:       name,
		UploadDate: s.now().Format("1/2/2006"),
		Size:       formatSize(len(content)),
	}

	if err := s.objects.Put(ctx, storageKey(userID, doc.ID), content); err != nil {
		return nil, fmt.Errorf("failed to store document content: %w", err)
	}
	if err := s.repo.Add(ctx, userID, doc); err != nil {
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	return &doc, nil
}

// Download returns a document's metadata and content.
func (s *Service) Download(ctx context.Context, userID int64, docID string) (*Document, []byte, error) {
	doc, err := s.repo.Get(ctx, userID, docID)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.objects.Get(ctx, storageKey(userID, docID))
	if err != nil {
		return nil, nil, err
	}
	return doc, content, nil
}

// Delete removes metadata and content.
func (s *Service) Delete(ctx context.Context, userID int64, docID string) error {
	if err := s.repo.Delete(ctx, userID, docID); err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, storageKey(userID, docID)); err != nil {
		return fmt.Errorf("failed to delete document content: %w", err)
	}
	return nil
}

// formatSize renders a byte count the way the document table displays it.
func formatSize(n int) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
