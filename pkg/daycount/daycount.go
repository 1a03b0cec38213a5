// Package daycount implements the 30/360 commercial day count used for
// Colombian labor settlements, and the split of a period into semesters.
//
// Every month counts as 30 days and every year as 360 days. Day 31 is read as
// day 30 on either end of a period, and both endpoints are counted, so a
// period that starts and ends on the same day is one day long. This is not a
// calendar day difference: 2024-02-01..2024-02-29 counts 29 days while
// 2024-01-01..2024-01-31 counts 30.
package daycount

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/iwvelando/cesantias/pkg/datetime"
)

// Period is an inclusive range of calendar dates.
type Period struct {
	Start civil.Date
	End   civil.Date
}

// NewPeriod builds a Period, failing with ErrInvalidPeriod when end is
// before start.
func NewPeriod(start, end civil.Date) (Period, error) {
	p := Period{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate reports whether the period is well formed.
func (p Period) Validate() error {
	if !p.Start.IsValid() || !p.End.IsValid() {
		return &InvalidPeriodError{Start: p.Start, End: p.End, Reason: "invalid calendar date"}
	}
	if p.End.Before(p.Start) {
		return &InvalidPeriodError{Start: p.Start, End: p.End, Reason: "end before start"}
	}
	return nil
}

// Days returns the 30/360 length of the period.
func (p Period) Days() (int, error) {
	return CountDays(p.Start, p.End)
}

// Contains returns true if d lies within [Start, End].
func (p Period) Contains(d civil.Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Intersect returns the overlap of two periods. The boolean is false when
// they do not overlap.
func (p Period) Intersect(other Period) (Period, bool) {
	if !p.Contains(other.Start) && !other.Contains(p.Start) {
		return Period{}, false
	}
	return Period{
		Start: datetime.Latest(p.Start, other.Start),
		End:   datetime.Earliest(p.End, other.End),
	}, true
}

// String returns a string representation of the period.
func (p Period) String() string {
	return fmt.Sprintf("[%s, %s]", p.Start, p.End)
}

// CountDays returns the inclusive number of days between start and end under
// the 30/360 convention.
func CountDays(start, end civil.Date) (int, error) {
	if err := (Period{Start: start, End: end}).Validate(); err != nil {
		return 0, err
	}

	d1 := clampDay(start.Day)
	d2 := clampDay(end.Day)

	diff := (end.Year-start.Year)*constants.CommercialDaysPerYear +
		(int(end.Month)-int(start.Month))*constants.CommercialDaysPerMonth +
		(d2 - d1)

	return diff + 1, nil
}

// clampDay maps day 31 onto day 30; the month and year are left untouched.
func clampDay(day int) int {
	if day == 31 {
		return constants.CommercialDaysPerMonth
	}
	return day
}
