package format

import (
	"strings"

	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with the COP code and thousands
// separators (e.g., "COP 1,162,000.00", "-COP 1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if amount.IsNegative() {
		return "-" + constants.CurrencyCode + " " + formatted
	}
	return constants.CurrencyCode + " " + formatted
}

// Percentage renders a rate such as 0.12 as "12.00%".
func Percentage(rate decimal.Decimal, places int32) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.CurrencyDecimalPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
