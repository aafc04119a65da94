// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// GetSettingsInput represents the input for settings retrieval.
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput represents the output of settings retrieval.
type GetSettingsOutput struct {
	Settings *entity.UserSettings
}

// GetSettingsUseCase handles settings retrieval. A missing row is created
// with defaults on first access rather than treated as an error.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the user's settings, lazily creating the default row.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}

	if settings == nil {
		settings = entity.NewDefaultSettings(input.UserID)
		if err := uc.settingsRepo.Save(ctx, settings); err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	return &GetSettingsOutput{
		Settings: settings,
	}, nil
}
