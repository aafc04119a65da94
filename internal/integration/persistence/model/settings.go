// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database, one
// row per user.
type UserSettingsModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Language  string    `gorm:"type:varchar(5);not null;default:'id'"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'IDR'"`
	Theme     string    `gorm:"type:varchar(10);not null;default:'light'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		UserID:    m.UserID,
		Language:  entity.Language(m.Language),
		Currency:  m.Currency,
		Theme:     entity.Theme(m.Theme),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func SettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		UserID:    settings.UserID,
		Language:  string(settings.Language),
		Currency:  settings.Currency,
		Theme:     string(settings.Theme),
		CreatedAt: settings.CreatedAt,
		UpdatedAt: settings.UpdatedAt,
	}
}
