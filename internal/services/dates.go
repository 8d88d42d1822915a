package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateOf returns the calendar day of t as midnight UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthBounds returns the first and last calendar day of the month.
func monthBounds(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return newError(KindValidation, "Month must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return newError(KindValidation, "Invalid year")
	}
	return nil
}

// validateFilter checks optional month and year filters.
func validateFilter(month, year *int) error {
	if month != nil && (*month < 1 || *month > 12) {
		return newError(KindValidation, "Month must be between 1 and 12")
	}
	if year != nil && (*year < 1 || *year > 9999) {
		return newError(KindValidation, "Invalid year")
	}
	return nil
}

// DateRange is an optional closed interval of calendar days.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return newError(KindValidation, "Start date cannot be after end date")
	}
	return nil
}

// percentage returns part/total*100 rounded to two places, or 0 when total is 0.
func percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}
