package model

import "time"

// HistoryEntry represents a generated-password history row in the database.
type HistoryEntry struct {
	ID        int64
	UserID    int64
	Password  string
	CreatedAt time.Time
}

// HistoryEntryResponse represents a single history entry in API responses.
type HistoryEntryResponse struct {
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse represents the caller's generation history, newest first.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Count   int                    `json:"count"`
}
