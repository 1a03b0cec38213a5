// Package severance computes the Colombian end-of-period benefits that depend
// on salary and time worked: cesantías, interest on cesantías, prima de
// servicios and compensation for untaken vacation.
//
// All amounts are computed with the 30/360 convention from package daycount
// and the statutory values of a statutory.Table handed to NewCalculator.
// Results are not rounded; rounding is left to presentation.
package severance

import (
	"fmt"

	"github.com/iwvelando/cesantias/pkg/daycount"
	"github.com/iwvelando/cesantias/pkg/mathutil"
	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/iwvelando/cesantias/pkg/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Result is the outcome of one calculation. It is not modified after it is
// returned.
type Result struct {
	Value       decimal.Decimal
	DaysCounted int
	Period      daycount.Period
}

// PrimaResult splits prima de servicios by semester.
type PrimaResult struct {
	Semester1  decimal.Decimal
	Semester2  decimal.Decimal
	Total      decimal.Decimal
	Allocation daycount.SemesterAllocation
}

// Base is the monthly amount benefits are computed on.
type Base struct {
	Salary                   decimal.Decimal
	TransportSubsidy         decimal.Decimal
	TransportSubsidyEligible bool
	Year                     int
}

// Amount returns salary plus transport subsidy when eligible.
func (b Base) Amount() decimal.Decimal {
	if b.TransportSubsidyEligible {
		return b.Salary.Add(b.TransportSubsidy)
	}
	return b.Salary
}

// Calculator computes settlement amounts against an injected statutory table.
type Calculator struct {
	logger   *zap.Logger
	table    *statutory.Table
	splitter *daycount.Splitter
}

// NewCalculator creates a calculator for the given table.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewCalculator(logger *zap.Logger, table *statutory.Table) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		logger:   logger,
		table:    table,
		splitter: daycount.NewSplitter(logger),
	}
}

// Table returns the statutory table the calculator was built with.
func (c *Calculator) Table() *statutory.Table {
	return c.table
}

// BaseSalary resolves the settlement base for referenceYear: the salary plus
// the transport subsidy when the salary is at most twice the minimum wage.
func (c *Calculator) BaseSalary(monthlySalary decimal.Decimal, referenceYear int) (Base, error) {
	if err := validation.NonNegative("monthly salary", monthlySalary); err != nil {
		return Base{}, err
	}

	record, err := c.table.Resolve(referenceYear)
	if err != nil {
		return Base{}, fmt.Errorf("resolving statutory values: %w", err)
	}

	return Base{
		Salary:                   monthlySalary,
		TransportSubsidy:         record.TransportSubsidy,
		TransportSubsidyEligible: record.EligibleForTransportSubsidy(monthlySalary),
		Year:                     referenceYear,
	}, nil
}

// ComputeSeverance returns cesantías for period: base * days / 360.
func (c *Calculator) ComputeSeverance(monthlySalary decimal.Decimal, period daycount.Period, referenceYear int) (Result, error) {
	if err := period.Validate(); err != nil {
		return Result{}, err
	}

	base, err := c.BaseSalary(monthlySalary, referenceYear)
	if err != nil {
		return Result{}, err
	}

	days, err := period.Days()
	if err != nil {
		return Result{}, err
	}

	value := mathutil.ProRata(base.Amount(), days, mathutil.CommercialYear)
	c.logger.Debug("computed cesantias",
		zap.String("op", "severance.ComputeSeverance"),
		zap.String("period", period.String()),
		zap.Int("year", referenceYear),
		zap.Bool("transportSubsidy", base.TransportSubsidyEligible),
		zap.String("base", base.Amount().String()),
		zap.Int("days", days),
		zap.String("value", value.String()),
	)

	return Result{Value: value, DaysCounted: days, Period: period}, nil
}

// ComputeInterestOnSeverance returns the interest owed on severanceValue for
// period: value * days * 0.12 / 360. The severance value is taken as given and
// may come from ComputeSeverance or from an external figure.
func (c *Calculator) ComputeInterestOnSeverance(severanceValue decimal.Decimal, period daycount.Period) (Result, error) {
	if err := period.Validate(); err != nil {
		return Result{}, err
	}
	if err := validation.NonNegative("severance value", severanceValue); err != nil {
		return Result{}, err
	}

	days, err := period.Days()
	if err != nil {
		return Result{}, err
	}

	value := mathutil.ProRata(severanceValue.Mul(statutory.InterestRateOnSeverance), days, mathutil.CommercialYear)
	c.logger.Debug("computed interest on cesantias",
		zap.String("op", "severance.ComputeInterestOnSeverance"),
		zap.String("period", period.String()),
		zap.String("severance", severanceValue.String()),
		zap.Int("days", days),
		zap.String("value", value.String()),
	)

	return Result{Value: value, DaysCounted: days, Period: period}, nil
}

// ComputePrima returns prima de servicios for the part of period that falls
// in each semester of referenceYear: base * semesterDays / 360.
func (c *Calculator) ComputePrima(monthlySalary decimal.Decimal, period daycount.Period, referenceYear int) (PrimaResult, error) {
	if err := period.Validate(); err != nil {
		return PrimaResult{}, err
	}

	base, err := c.BaseSalary(monthlySalary, referenceYear)
	if err != nil {
		return PrimaResult{}, err
	}

	alloc, err := c.splitter.Split(period, referenceYear)
	if err != nil {
		return PrimaResult{}, err
	}

	s1 := mathutil.ProRata(base.Amount(), alloc.Semester1Days, mathutil.CommercialYear)
	s2 := mathutil.ProRata(base.Amount(), alloc.Semester2Days, mathutil.CommercialYear)
	c.logger.Debug("computed prima",
		zap.String("op", "severance.ComputePrima"),
		zap.String("period", period.String()),
		zap.Int("year", referenceYear),
		zap.Int("semester1Days", alloc.Semester1Days),
		zap.Int("semester2Days", alloc.Semester2Days),
	)

	return PrimaResult{
		Semester1:  s1,
		Semester2:  s2,
		Total:      s1.Add(s2),
		Allocation: alloc,
	}, nil
}

// ComputeVacation returns compensation for untaken vacation over period:
// salary * days / 720. The transport subsidy is not part of this base.
func (c *Calculator) ComputeVacation(monthlySalary decimal.Decimal, period daycount.Period) (Result, error) {
	if err := period.Validate(); err != nil {
		return Result{}, err
	}
	if err := validation.NonNegative("monthly salary", monthlySalary); err != nil {
		return Result{}, err
	}

	days, err := period.Days()
	if err != nil {
		return Result{}, err
	}

	value := mathutil.ProRata(monthlySalary, days, mathutil.VacationYear)
	return Result{Value: value, DaysCounted: days, Period: period}, nil
}
