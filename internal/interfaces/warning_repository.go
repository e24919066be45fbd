package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/huycopper/flashmind/internal/models"
)

// WarningRepository defines persistence operations for admin warnings.
//
//go:generate mockery --name WarningRepository --output ./mocks --outpkg mocks --case=underscore
type WarningRepository interface {
	// Create inserts the warning and fills in the generated ID and timestamp.
	Create(ctx context.Context, warning *models.Warning) error

	// ListActiveByUser returns the user's non-dismissed warnings, newest
	// first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Warning, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Warning, error)

	// Dismiss marks the warning dismissed.
	Dismiss(ctx context.Context, id uuid.UUID) error
}
