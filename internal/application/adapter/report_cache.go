// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache defines the interface for caching computed report payloads.
// Implementations treat cache failures as misses so reports never fail on
// cache errors.
type ReportCache interface {
	// Get retrieves a cached report payload by key. It returns (nil, nil) on
	// a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a report payload under the given key with the configured TTL.
	Set(ctx context.Context, key string, payload []byte) error

	// InvalidateUser removes all cached reports for a user. Called after any
	// transaction write.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}
