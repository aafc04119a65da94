// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/valueobject"
)

// cacheKey builds a per-user report cache key. Keys share the
// "reports:<user>:" prefix so a user's entries can be invalidated together.
func cacheKey(userID uuid.UUID, report string, parts ...string) string {
	key := fmt.Sprintf("reports:%s:%s", userID, report)
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// rangeKey renders a date range for use inside a cache key.
func rangeKey(r valueobject.DateRange) string {
	switch r.Kind {
	case valueobject.RangeAll:
		return "all"
	case valueobject.RangeBounded:
		return r.Start.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
	default:
		return "unset"
	}
}

// readCache attempts to load and decode a cached payload into out. It
// returns false on any miss or failure; cache problems never fail a report.
func readCache(ctx context.Context, cache adapter.ReportCache, key string, out any) bool {
	if cache == nil {
		return false
	}
	payload, err := cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "report cache read failed", "key", key, "error", err)
		return false
	}
	if payload == nil {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		slog.WarnContext(ctx, "report cache payload corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// writeCache encodes and stores a computed report, logging failures.
func writeCache(ctx context.Context, cache adapter.ReportCache, key string, value any) {
	if cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "report cache encode failed", "key", key, "error", err)
		return
	}
	if err := cache.Set(ctx, key, payload); err != nil {
		slog.WarnContext(ctx, "report cache write failed", "key", key, "error", err)
	}
}
