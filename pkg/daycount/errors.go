package daycount

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// ErrInvalidPeriod is returned when a period is malformed (end before start).
var ErrInvalidPeriod = errors.New("invalid period")

// InvalidPeriodError carries the offending dates.
type InvalidPeriodError struct {
	Start  civil.Date
	End    civil.Date
	Reason string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period [%s, %s]: %s", e.Start, e.End, e.Reason)
}

func (e *InvalidPeriodError) Unwrap() error {
	return ErrInvalidPeriod
}
