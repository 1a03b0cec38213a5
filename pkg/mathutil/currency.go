// Package mathutil provides common decimal utility functions for money.
package mathutil

import (
	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/shopspring/decimal"
)

var (
	// CommercialYear is the 360-day divisor as a decimal.
	CommercialYear = decimal.NewFromInt(constants.CommercialDaysPerYear)

	// VacationYear is the 720-day divisor for vacation compensation.
	VacationYear = decimal.NewFromInt(constants.VacationDaysDivisor)
)

// Round rounds a value to cents, i.e. to represent real currency.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyDecimalPlaces)
}

// ProRata returns amount * days / divisor.
func ProRata(amount decimal.Decimal, days int, divisor decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(days))).Div(divisor)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
