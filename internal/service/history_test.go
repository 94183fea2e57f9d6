package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/repository"
)

func TestNewHistoryServiceDefaultsLimit(t *testing.T) {
	svc := NewHistoryService(repository.NewHistoryRepository(nil), 0)
	if svc.limit != DefaultHistoryLimit {
		t.Errorf("limit = %d, want %d", svc.limit, DefaultHistoryLimit)
	}

	svc = NewHistoryService(repository.NewHistoryRepository(nil), -5)
	if svc.limit != DefaultHistoryLimit {
		t.Errorf("limit = %d, want %d", svc.limit, DefaultHistoryLimit)
	}
}

func TestNewHistoryServiceCustomLimit(t *testing.T) {
	svc := NewHistoryService(repository.NewHistoryRepository(nil), 25)
	if svc.limit != 25 {
		t.Errorf("limit = %d, want 25", svc.limit)
	}
}
