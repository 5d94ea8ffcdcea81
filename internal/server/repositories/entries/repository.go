package entries

import (
	"context"

	"github.com/avelis/daybook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.Entry) error
	ListByUser(ctx context.Context, userID string) ([]*models.Entry, error)
}
