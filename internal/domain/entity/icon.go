// Package entity defines the core business entities for the domain layer.
package entity

import "sort"

// categoryIcons is the fixed set of icon keys the frontend can render.
// Unknown keys resolve to DefaultCategoryIcon rather than being stored as-is,
// so the UI never has to reflect over an icon namespace at runtime.
var categoryIcons = map[string]struct{}{
	"circle":        {},
	"square":        {},
	"star":          {},
	"heart":         {},
	"home":          {},
	"car":           {},
	"plane":         {},
	"coffee":        {},
	"shopping-bag":  {},
	"gift":          {},
	"music":         {},
	"book":          {},
	"camera":        {},
	"phone":         {},
	"laptop":        {},
	"shirt":         {},
	"pizza":         {},
	"utensils":      {},
	"dumbbell":      {},
	"briefcase":     {},
	"banknote":      {},
	"trending-up":   {},
	"trending-down": {},
	"wallet":        {},
	"credit-card":   {},
}

// ResolveIcon returns the given icon key if it is known, or
// DefaultCategoryIcon otherwise. The empty string also resolves to the
// default.
func ResolveIcon(key string) string {
	if _, ok := categoryIcons[key]; ok {
		return key
	}
	return DefaultCategoryIcon
}

// IconKeys returns the sorted list of known icon keys.
func IconKeys() []string {
	keys := make([]string, 0, len(categoryIcons))
	for key := range categoryIcons {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
