// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/integration/persistence/model"
)

// defaultCategories are the system-seeded categories every user sees.
var defaultCategories = []struct {
	Name string
	Type string
	Icon string
}{
	{"Makanan", "expense", "utensils"},
	{"Transportasi", "expense", "car"},
	{"Belanja", "expense", "shopping-bag"},
	{"Hiburan", "expense", "music"},
	{"Kesehatan", "expense", "heart"},
	{"Pendidikan", "expense", "book"},
	{"Tagihan", "expense", "credit-card"},
	{"Lainnya", "expense", "circle"},
	{"Gaji", "income", "banknote"},
	{"Bonus", "income", "gift"},
	{"Investasi", "income", "trending-up"},
	{"Lainnya", "income", "circle"},
}

// SeedDefaultCategories inserts any missing default categories. It is safe to
// run on every startup.
func (d *Database) SeedDefaultCategories() error {
	now := time.Now().UTC()
	seeded := 0

	for _, c := range defaultCategories {
		var count int64
		result := d.db.Model(&model.CategoryModel{}).
			Where("is_default = ? AND name = ? AND type = ?", true, c.Name, c.Type).
			Count(&count)
		if result.Error != nil {
			return fmt.Errorf("failed to check default category %q: %w", c.Name, result.Error)
		}
		if count > 0 {
			continue
		}

		row := &model.CategoryModel{
			ID:        uuid.New(),
			UserID:    nil,
			Name:      c.Name,
			Type:      c.Type,
			Icon:      c.Icon,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if result := d.db.Create(row); result.Error != nil {
			return fmt.Errorf("failed to seed default category %q: %w", c.Name, result.Error)
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("Seeded default categories", "count", seeded)
	}
	return nil
}
