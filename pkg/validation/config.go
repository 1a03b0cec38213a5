package validation

import (
	"fmt"

	"github.com/iwvelando/cesantias/pkg/datetime"
	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/shopspring/decimal"
)

// ValidateSettlementDates checks that a settlement's dates parse and are in
// order. Problems are returned as warnings; parsing later fails hard.
func ValidateSettlementDates(name, startDate, endDate string) []string {
	var warnings []string

	start, startErr := datetime.ParseDate(startDate)
	if startErr != nil {
		warnings = append(warnings, fmt.Sprintf("Settlement '%s' has an invalid start date (%s)", name, startDate))
	}
	end, endErr := datetime.ParseDate(endDate)
	if endErr != nil {
		warnings = append(warnings, fmt.Sprintf("Settlement '%s' has an invalid end date (%s)", name, endDate))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		warnings = append(warnings, fmt.Sprintf("Settlement '%s' ends before it starts (%s < %s)",
			name, endDate, startDate))
	}

	return warnings
}

// ValidateReferenceYear warns when a settlement needs statutory values for a
// year the table does not configure.
func ValidateReferenceYear(name string, year int, table *statutory.Table) string {
	if table.Has(year) {
		return ""
	}
	return fmt.Sprintf("Settlement '%s' uses year %d which has no statutory values configured", name, year)
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Table       *statutory.Table
	Settlements []SettlementConfig
}

// SettlementConfig is the subset of a settlement needed for validation.
type SettlementConfig struct {
	Name          string
	MonthlySalary decimal.Decimal
	StartDate     string
	EndDate       string
	ReferenceYear int
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if cv.Table.Len() == 0 {
		warnings = append(warnings, "No statutory years configured; every salary-based calculation will fail")
	}

	for _, s := range cv.Settlements {
		warnings = append(warnings, ValidateSettlementDates(s.Name, s.StartDate, s.EndDate)...)

		if s.MonthlySalary.IsNegative() {
			warnings = append(warnings, fmt.Sprintf("Settlement '%s' has a negative monthly salary (%s)", s.Name, s.MonthlySalary.StringFixed(2)))
		} else if s.MonthlySalary.IsZero() {
			warnings = append(warnings, fmt.Sprintf("Settlement '%s' has no monthly salary", s.Name))
		}

		year := s.ReferenceYear
		if year == 0 {
			end, err := datetime.ParseDate(s.EndDate)
			if err != nil {
				continue
			}
			year = end.Year
		}
		if warning := ValidateReferenceYear(s.Name, year, cv.Table); warning != "" {
			warnings = append(warnings, warning)
		}

		start, err := datetime.ParseDate(s.StartDate)
		if err == nil && start.Year < year {
			warnings = append(warnings, fmt.Sprintf("Settlement '%s' starts before %d; prima only covers days within %d",
				s.Name, year, year))
		}
	}

	return warnings
}
