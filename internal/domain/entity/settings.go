// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Language represents the user's preferred interface language.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// Theme represents the user's preferred color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings represents per-user preferences, one row per user.
// The row is lazily created with defaults on first access.
type UserSettings struct {
	UserID    uuid.UUID
	Language  Language
	Currency  string // "USD" or "IDR", see valueobject.Currency
	Theme     Theme
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDefaultSettings creates the default settings row for a user:
// Indonesian language, IDR currency, light theme.
func NewDefaultSettings(userID uuid.UUID) *UserSettings {
	now := time.Now().UTC()
	return &UserSettings{
		UserID:    userID,
		Language:  LanguageIndonesian,
		Currency:  "IDR",
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
