// Package entries provides the PostgreSQL-backed repository for journal
// entry persistence. Every query is scoped by the owning user id.
package entries

import (
	"context"
	"fmt"

	"github.com/avelis/daybook/internal/dbx"
	"github.com/avelis/daybook/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a journal entry tagged with its owner's user id.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) error {
	query := `
		INSERT INTO entries (id, user_id, title, body, score, mood, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Body, entry.Score, entry.Mood, entry.Date)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns all entries owned by userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `
		SELECT id, user_id, title, body, score, mood, entry_date FROM entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		var item models.Entry
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Body, &item.Score, &item.Mood, &item.Date,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
