package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dayfleet/dayfleet/internal/db/models"
)

// AttemptRepository provides access to provisioning attempt records.
type AttemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository creates a new attempt repository instance
func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create records a step outcome.
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.ProvisionAttempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to record provision attempt: %w", err)
	}
	return nil
}

// ListByName returns the recorded step outcomes for a connection name, oldest
// first.
func (r *AttemptRepository) ListByName(ctx context.Context, name string) ([]models.ProvisionAttempt, error) {
	var attempts []models.ProvisionAttempt
	err := r.db.WithContext(ctx).
		Where(&models.ProvisionAttempt{Name: name}).
		Order("created_at ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list provision attempts for %q: %w", name, err)
	}
	return attempts, nil
}
