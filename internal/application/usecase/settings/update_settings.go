// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// UpdateSettingsInput represents the input for settings update. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	UserID   uuid.UUID
	Language *entity.Language
	Currency *string
	Theme    *entity.Theme
}

// UpdateSettingsOutput represents the output of settings update.
type UpdateSettingsOutput struct {
	Settings *entity.UserSettings
}

// UpdateSettingsUseCase handles partial settings updates.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings update, creating the default row first when
// the user has none yet.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.Language != nil && *input.Language != entity.LanguageEnglish && *input.Language != entity.LanguageIndonesian {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidLanguage,
			"language must be 'en' or 'id'",
			domainerror.ErrInvalidLanguage,
		)
	}
	if input.Currency != nil {
		if _, err := valueobject.ParseCurrency(*input.Currency); err != nil {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidCurrency,
				"currency must be 'USD' or 'IDR'",
				domainerror.ErrInvalidCurrency,
			)
		}
	}
	if input.Theme != nil && *input.Theme != entity.ThemeLight && *input.Theme != entity.ThemeDark {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidTheme,
			"theme must be 'light' or 'dark'",
			domainerror.ErrInvalidTheme,
		)
	}

	settings, err := uc.settingsRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	if settings == nil {
		settings = entity.NewDefaultSettings(input.UserID)
	}

	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: settings,
	}, nil
}
