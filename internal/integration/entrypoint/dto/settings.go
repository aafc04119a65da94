// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings update.
type UpdateSettingsRequest struct {
	Language *string `json:"language,omitempty" binding:"omitempty,oneof=en id"`
	Currency *string `json:"currency,omitempty" binding:"omitempty,oneof=USD IDR"`
	Theme    *string `json:"theme,omitempty" binding:"omitempty,oneof=light dark"`
}

// SettingsResponse represents user settings in API responses.
type SettingsResponse struct {
	Language  string    `json:"language"`
	Currency  string    `json:"currency"`
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a domain UserSettings entity to a
// SettingsResponse DTO.
func ToSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		Language:  string(settings.Language),
		Currency:  settings.Currency,
		Theme:     string(settings.Theme),
		UpdatedAt: settings.UpdatedAt,
	}
}
