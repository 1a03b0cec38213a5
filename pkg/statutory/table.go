// Package statutory holds the year-indexed constants set by the annual
// government decrees: the monthly minimum wage (SMMLV) and the transport
// subsidy (auxilio de transporte).
//
// A Table is built once from configuration and never modified afterward, so
// it can be shared by any number of callers without locking.
package statutory

import (
	"fmt"
	"sort"

	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/shopspring/decimal"
)

// MaxMinimumWageMultipleForTransportSubsidy is the number of minimum wages up
// to which the transport subsidy is part of the settlement base.
const MaxMinimumWageMultipleForTransportSubsidy = constants.MaxMinimumWageMultipleForTransportSubsidy

// InterestRateOnSeverance is the annual interest rate paid on cesantías.
var InterestRateOnSeverance = decimal.RequireFromString(constants.InterestRateOnSeverance)

// Record is the pair of statutory values in force during one year.
type Record struct {
	Year             int
	MinimumWage      decimal.Decimal
	TransportSubsidy decimal.Decimal
}

// Table is an immutable year → Record lookup.
type Table struct {
	records map[int]Record
	years   []int
}

// New builds a Table from records. Duplicate years are rejected; values are
// checked when a year is resolved for a calculation.
func New(records ...Record) (*Table, error) {
	t := &Table{records: make(map[int]Record, len(records))}
	for _, r := range records {
		if _, exists := t.records[r.Year]; exists {
			return nil, fmt.Errorf("duplicate statutory record for year %d", r.Year)
		}
		t.records[r.Year] = r
		t.years = append(t.years, r.Year)
	}
	sort.Ints(t.years)
	return t, nil
}

// Lookup returns the record stored for year, or an UnknownYearError.
func (t *Table) Lookup(year int) (Record, error) {
	if t == nil {
		return Record{}, &UnknownYearError{Year: year}
	}
	r, ok := t.records[year]
	if !ok {
		return Record{}, &UnknownYearError{Year: year, Known: t.Years()}
	}
	return r, nil
}

// ResolveYear is Lookup under the name used by settlement callers.
func (t *Table) ResolveYear(year int) (Record, error) {
	return t.Lookup(year)
}

// Resolve looks up year and checks both values are positive. A zero or
// negative value is a data-entry error in the configured table.
func (t *Table) Resolve(year int) (Record, error) {
	r, err := t.Lookup(year)
	if err != nil {
		return Record{}, err
	}
	if !r.MinimumWage.IsPositive() {
		return Record{}, &InvalidStatutoryDataError{Year: year, Field: "minimumWage", Value: r.MinimumWage}
	}
	if !r.TransportSubsidy.IsPositive() {
		return Record{}, &InvalidStatutoryDataError{Year: year, Field: "transportSubsidy", Value: r.TransportSubsidy}
	}
	return r, nil
}

// Has reports whether year is configured.
func (t *Table) Has(year int) bool {
	if t == nil {
		return false
	}
	_, ok := t.records[year]
	return ok
}

// Years returns the configured years in ascending order.
func (t *Table) Years() []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t.years))
	copy(out, t.years)
	return out
}

// Len returns the number of configured years.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// SubsidyThreshold returns the highest monthly salary still entitled to the
// transport subsidy for the record's year.
func (r Record) SubsidyThreshold() decimal.Decimal {
	return r.MinimumWage.Mul(decimal.NewFromInt(MaxMinimumWageMultipleForTransportSubsidy))
}

// EligibleForTransportSubsidy reports whether monthlySalary is at most the
// subsidy threshold.
func (r Record) EligibleForTransportSubsidy(monthlySalary decimal.Decimal) bool {
	return monthlySalary.LessThanOrEqual(r.SubsidyThreshold())
}
