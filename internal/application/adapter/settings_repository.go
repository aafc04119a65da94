// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for user settings persistence operations.
type SettingsRepository interface {
	// FindByUser retrieves the settings row for a user, or nil when none exists.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Save inserts or updates the settings row for a user.
	Save(ctx context.Context, settings *entity.UserSettings) error
}
