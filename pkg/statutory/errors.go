package statutory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownYear is returned when the table has no record for a year.
	// Callers must not treat this as a zero minimum wage.
	ErrUnknownYear = errors.New("unknown statutory year")

	// ErrInvalidStatutoryData is returned when a configured value is zero or
	// negative.
	ErrInvalidStatutoryData = errors.New("invalid statutory data")
)

// UnknownYearError names the missing year and the years that are configured.
type UnknownYearError struct {
	Year  int
	Known []int
}

func (e *UnknownYearError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("no statutory values configured for year %d", e.Year)
	}
	return fmt.Sprintf("no statutory values configured for year %d (configured: %v)", e.Year, e.Known)
}

func (e *UnknownYearError) Unwrap() error {
	return ErrUnknownYear
}

// InvalidStatutoryDataError points at the offending field of a record.
type InvalidStatutoryDataError struct {
	Year  int
	Field string
	Value decimal.Decimal
}

func (e *InvalidStatutoryDataError) Error() string {
	return fmt.Sprintf("statutory %s for year %d must be positive, got %s", e.Field, e.Year, e.Value)
}

func (e *InvalidStatutoryDataError) Unwrap() error {
	return ErrInvalidStatutoryData
}
