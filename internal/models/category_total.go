package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrIncompleteDateRange = errors.New("start date and end date must be supplied together")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)

// CategoryTotal is one row of the per-category aggregation. Amount is null
// for a category without transactions in the requested range.
type CategoryTotal struct {
	CategoryID uint                `gorm:"column:category_id" json:"category_id"`
	Name       string              `gorm:"column:name" json:"name"`
	Amount     decimal.NullDecimal `gorm:"column:amount" json:"amount"`
}

// CategoryTotalsQuery bounds the aggregation to an inclusive date range.
// Both dates are set or neither is.
type CategoryTotalsQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate rejects half-open and inverted ranges.
func (q CategoryTotalsQuery) Validate() error {
	if (q.StartDate == nil) != (q.EndDate == nil) {
		return ErrIncompleteDateRange
	}
	if q.HasRange() && NormalizeDate(*q.EndDate).Before(NormalizeDate(*q.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// HasRange reports whether the query restricts transactions by date.
func (q CategoryTotalsQuery) HasRange() bool {
	return q.StartDate != nil && q.EndDate != nil
}

// Bounds returns the normalized inclusive range. Call only when HasRange.
func (q CategoryTotalsQuery) Bounds() (time.Time, time.Time) {
	return NormalizeDate(*q.StartDate), NormalizeDate(*q.EndDate)
}
