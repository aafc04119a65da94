// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/domain/valueobject"
)

// periodQuery holds the parsed period parameters shared by the transaction,
// report, and export endpoints.
type periodQuery struct {
	Preset    *valueobject.DatePreset
	StartDate *time.Time
	EndDate   *time.Time
}

// parsePeriodQuery reads the period, start_date, and end_date query
// parameters. Dates use ISO format YYYY-MM-DD.
func parsePeriodQuery(ctx *gin.Context) (periodQuery, error) {
	var q periodQuery

	if period := ctx.Query("period"); period != "" {
		preset := valueobject.DatePreset(period)
		q.Preset = &preset
	}

	if raw := ctx.Query("start_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return q, fmt.Errorf("invalid start_date %q", raw)
		}
		q.StartDate = &date
	}
	if raw := ctx.Query("end_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return q, fmt.Errorf("invalid end_date %q", raw)
		}
		q.EndDate = &date
	}

	return q, nil
}
