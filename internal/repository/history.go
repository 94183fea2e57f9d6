package repository

import (
	"context"
	"database/sql"

	"github.com/passforge/passforge-go/internal/model"
)

// HistoryRepository handles generated-password history persistence.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// recordQuery inserts a history row; re-generating a password the user
// already has in history bumps its recency instead of inserting a duplicate.
const recordQuery = `
	INSERT INTO password_history (user_id, password)
	VALUES (?, ?)
	ON DUPLICATE KEY UPDATE created_at = CURRENT_TIMESTAMP`

// pruneQuery removes rows beyond the newest `limit` entries for a user. The
// derived table works around MySQL's restriction on deleting from a table
// referenced in a subquery.
const pruneQuery = `
	DELETE FROM password_history
	WHERE user_id = ? AND id NOT IN (
		SELECT id FROM (
			SELECT id FROM password_history
			WHERE user_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) AS keep_newest
	)`

// Record stores a generated password in the user's history and prunes
// entries beyond limit.
func (r *HistoryRepository) Record(ctx context.Context, userID int64, password string, limit int) error {
	if _, err := r.db.ExecContext(ctx, recordQuery, userID, password); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, pruneQuery, userID, userID, limit)
	return err
}

// ListRecent retrieves up to limit history entries for a user, newest first.
func (r *HistoryRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]model.HistoryEntry, error) {
	query := `SELECT id, user_id, password, created_at
		FROM password_history WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var e model.HistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Password, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear deletes all history entries for a user.
func (r *HistoryRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_history WHERE user_id = ?`, userID)
	return err
}
