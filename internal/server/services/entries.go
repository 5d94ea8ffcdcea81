package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avelis/daybook/internal/server/models"
	"github.com/avelis/daybook/internal/server/repositories/repomanager"
)

// EntryInput carries the caller-supplied fields of a journal entry. The
// owning user id is never part of the input: it always comes from the
// authenticated session.
type EntryInput struct {
	Title string `json:"title"`
	Body  string `json:"entry"`
	Score int    `json:"score"`
	Mood  string `json:"mood"`
}

// EntryService implements journal entry operations scoped to one user.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

// Add stores a new entry for userID, stamped with the current time.
func (s *EntryService) Add(ctx context.Context, userID string, input EntryInput) (*models.Entry, error) {
	entry := &models.Entry{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  input.Title,
		Body:   input.Body,
		Score:  input.Score,
		Mood:   input.Mood,
		Date:   time.Now().UTC(),
	}

	repo := s.repomanager.Entries(s.db)
	if err := repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error saving entry: %w", err)
	}
	return entry, nil
}

// List returns userID's entries, newest first.
func (s *EntryService) List(ctx context.Context, userID string) ([]*models.Entry, error) {
	repo := s.repomanager.Entries(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching entries: %w", err)
	}
	return result, nil
}
