package service

import (
	"context"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

// DefaultHistoryLimit is how many recent passwords are kept per user.
const DefaultHistoryLimit = 10

// HistoryService handles generated-password history business logic.
type HistoryService struct {
	repo  *repository.HistoryRepository
	limit int
}

// NewHistoryService creates a new HistoryService keeping up to limit entries
// per user. A non-positive limit falls back to DefaultHistoryLimit.
func NewHistoryService(repo *repository.HistoryRepository, limit int) *HistoryService {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryService{repo: repo, limit: limit}
}

// Record stores a generated password in the user's history, pruning entries
// beyond the configured limit. Duplicates bump recency instead of adding a
// second row.
func (s *HistoryService) Record(ctx context.Context, userID int64, password string) error {
	return s.repo.Record(ctx, userID, password, s.limit)
}

// List returns the user's history, newest first.
func (s *HistoryService) List(ctx context.Context, userID int64) (model.HistoryResponse, error) {
	entries, err := s.repo.ListRecent(ctx, userID, s.limit)
	if err != nil {
		return model.HistoryResponse{}, err
	}

	resp := model.HistoryResponse{
		Entries: make([]model.HistoryEntryResponse, len(entries)),
		Count:   len(entries),
	}
	for i, e := range entries {
		resp.Entries[i] = model.HistoryEntryResponse{
			Password:  e.Password,
			CreatedAt: e.CreatedAt,
		}
	}

	return resp, nil
}

// Clear removes the user's entire history.
func (s *HistoryService) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
