// Package settlement defines the data structures related to an employee
// settlement and includes functions for computing settlements in batch.
package settlement

import (
	"fmt"

	"github.com/iwvelando/cesantias/internal/config"
	"github.com/iwvelando/cesantias/pkg/daycount"
	"github.com/iwvelando/cesantias/pkg/mathutil"
	"github.com/iwvelando/cesantias/pkg/severance"
	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Request holds the inputs for one settlement.
type Request struct {
	Name          string
	MonthlySalary decimal.Decimal
	Period        daycount.Period
	ReferenceYear int
	// SeveranceValue replaces the computed cesantías as the interest base.
	SeveranceValue *decimal.Decimal
}

// Settlement holds all computed amounts for one employee period.
type Settlement struct {
	Name          string
	Period        daycount.Period
	ReferenceYear int
	Days          int
	Base          severance.Base
	Cesantias     severance.Result
	Interest      severance.Result
	// InterestBase is the severance value interest was computed on.
	InterestBase decimal.Decimal
	Prima        severance.PrimaResult
	Vacation     severance.Result
	Total        decimal.Decimal
}

// Engine runs settlements against one statutory table.
type Engine struct {
	logger *zap.Logger
	calc   *severance.Calculator
}

// NewEngine creates a settlement engine.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger, table *statutory.Table) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, calc: severance.NewCalculator(logger, table)}
}

// Settle computes cesantías, their interest, prima and vacation
// compensation for one request. Interest always follows cesantías.
func (e *Engine) Settle(req Request) (Settlement, error) {
	result := Settlement{
		Name:          req.Name,
		Period:        req.Period,
		ReferenceYear: req.ReferenceYear,
	}

	days, err := req.Period.Days()
	if err != nil {
		return result, fmt.Errorf("settlement %q: %w", req.Name, err)
	}
	result.Days = days

	result.Base, err = e.calc.BaseSalary(req.MonthlySalary, req.ReferenceYear)
	if err != nil {
		return result, fmt.Errorf("settlement %q: %w", req.Name, err)
	}

	result.Cesantias, err = e.calc.ComputeSeverance(req.MonthlySalary, req.Period, req.ReferenceYear)
	if err != nil {
		return result, fmt.Errorf("settlement %q cesantias: %w", req.Name, err)
	}

	result.InterestBase = result.Cesantias.Value
	if req.SeveranceValue != nil {
		result.InterestBase = *req.SeveranceValue
	}
	result.Interest, err = e.calc.ComputeInterestOnSeverance(result.InterestBase, req.Period)
	if err != nil {
		return result, fmt.Errorf("settlement %q interest: %w", req.Name, err)
	}

	result.Prima, err = e.calc.ComputePrima(req.MonthlySalary, req.Period, req.ReferenceYear)
	if err != nil {
		return result, fmt.Errorf("settlement %q prima: %w", req.Name, err)
	}

	result.Vacation, err = e.calc.ComputeVacation(req.MonthlySalary, req.Period)
	if err != nil {
		return result, fmt.Errorf("settlement %q vacation: %w", req.Name, err)
	}

	result.Total = mathutil.Sum(
		result.Cesantias.Value,
		result.Interest.Value,
		result.Prima.Total,
		result.Vacation.Value,
	)

	e.logger.Info("settlement computed",
		zap.String("op", "settlement.Settle"),
		zap.String("name", req.Name),
		zap.String("period", req.Period.String()),
		zap.Int("days", days),
		zap.String("total", mathutil.Round(result.Total).String()),
	)
	return result, nil
}

// GetSettlements processes every configured settlement. The configuration
// must already have been through ParseSettlements.
func GetSettlements(logger *zap.Logger, conf config.Configuration) ([]Settlement, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table, err := conf.ToStatutoryTable()
	if err != nil {
		return nil, fmt.Errorf("building statutory table: %w", err)
	}
	logger.Debug(fmt.Sprintf("loaded statutory values for %d years", table.Len()),
		zap.String("op", "settlement.GetSettlements"),
		zap.Ints("years", table.Years()),
	)

	engine := NewEngine(logger, table)
	var results []Settlement
	for _, s := range conf.Settlements {
		req := Request{
			Name:           s.Name,
			MonthlySalary:  s.MonthlySalary,
			Period:         s.Period,
			ReferenceYear:  s.ReferenceYear,
			SeveranceValue: s.SeveranceValue,
		}

		result, err := engine.Settle(req)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}
