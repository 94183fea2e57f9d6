package repository

import (
	"strings"
	"testing"
)

func TestNewHistoryRepository(t *testing.T) {
	repo := NewHistoryRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil HistoryRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestRecordQueryBumpsRecencyOnDuplicate(t *testing.T) {
	// The unique key on (user_id, password) plus the upsert keeps history
	// entries unique per user; duplicates just refresh created_at.
	if !strings.Contains(recordQuery, "ON DUPLICATE KEY UPDATE created_at") {
		t.Errorf("recordQuery must bump recency on duplicates: %s", recordQuery)
	}
}

func TestPruneQueryKeepsNewest(t *testing.T) {
	if !strings.Contains(pruneQuery, "ORDER BY created_at DESC") {
		t.Errorf("pruneQuery must keep the newest entries: %s", pruneQuery)
	}
	if !strings.Contains(pruneQuery, "LIMIT ?") {
		t.Errorf("pruneQuery must honor the configured limit: %s", pruneQuery)
	}
}
