// Package repos provides access to gateway-registry database operations.
package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dayfleet/dayfleet/internal/db/models"
)

// ConnectionRepository provides access to gateway connection rows.
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new connection repository instance
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Upsert inserts a connection row or, when the name already exists, updates
// its protocol in place. Last writer wins for concurrent calls with the same
// name; names are assumed caller-chosen and unique.
func (r *ConnectionRepository) Upsert(ctx context.Context, name, protocol string) error {
	conn := models.Connection{ConnectionName: name, Protocol: protocol}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "connection_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"protocol"}),
	}).Create(&conn).Error
	if err != nil {
		return fmt.Errorf("failed to upsert connection %q: %w", name, err)
	}
	return nil
}

// GetByName retrieves a connection by its unique name.
func (r *ConnectionRepository) GetByName(ctx context.Context, name string) (*models.Connection, error) {
	var conn models.Connection
	err := r.db.WithContext(ctx).Where(&models.Connection{ConnectionName: name}).First(&conn).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get connection %q: %w", name, err)
	}
	return &conn, nil
}

// ReplaceParameters replaces the parameter set of a connection with the given
// batch. The delete and the insert are separate statements; a crash in
// between leaves a connection with partial parameters, which the viewer
// surfaces as a connection that fails to establish a tunnel.
func (r *ConnectionRepository) ReplaceParameters(ctx context.Context, connectionID uint, params map[string]string) error {
	err := r.db.WithContext(ctx).
		Where("connection_id = ?", connectionID).
		Delete(&models.ConnectionParameter{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear parameters for connection %d: %w", connectionID, err)
	}

	rows := make([]models.ConnectionParameter, 0, len(params))
	for name, value := range params {
		rows = append(rows, models.ConnectionParameter{
			ConnectionID:   connectionID,
			ParameterName:  name,
			ParameterValue: value,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to write parameters for connection %d: %w", connectionID, err)
	}
	return nil
}

// GetParameters returns the parameter set of a connection keyed by name.
func (r *ConnectionRepository) GetParameters(ctx context.Context, connectionID uint) (map[string]string, error) {
	var rows []models.ConnectionParameter
	err := r.db.WithContext(ctx).
		Where("connection_id = ?", connectionID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get parameters for connection %d: %w", connectionID, err)
	}
	params := make(map[string]string, len(rows))
	for _, row := range rows {
		params[row.ParameterName] = row.ParameterValue
	}
	return params, nil
}

// DeleteByName removes a connection row and its parameters. A missing row is
// not an error.
func (r *ConnectionRepository) DeleteByName(ctx context.Context, name string) error {
	var conn models.Connection
	err := r.db.WithContext(ctx).Where(&models.Connection{ConnectionName: name}).First(&conn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up connection %q: %w", name, err)
	}

	err = r.db.WithContext(ctx).
		Where("connection_id = ?", conn.ConnectionID).
		Delete(&models.ConnectionParameter{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete parameters for connection %q: %w", name, err)
	}
	if err := r.db.WithContext(ctx).Delete(&conn).Error; err != nil {
		return fmt.Errorf("failed to delete connection %q: %w", name, err)
	}
	return nil
}

// ListNames returns the names of all registered connections.
func (r *ConnectionRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Pluck("connection_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list connection names: %w", err)
	}
	return names, nil
}
