package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/shopspring/decimal"
)

// ErrInvalidNumericInput is returned when an amount is not a number or is
// negative where a non-negative amount is required.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// NumericInputError describes which field was rejected and why.
type NumericInputError struct {
	Field  string
	Input  string
	Reason string
}

func (e *NumericInputError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Reason)
}

func (e *NumericInputError) Unwrap() error {
	return ErrInvalidNumericInput
}

// ParseAmount parses a user-supplied amount such as "1300000",
// "$1,300,000" or "COP 1,300,000.50". Thousands separators must be commas.
func ParseAmount(field, input string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimPrefix(cleaned, constants.CurrencyCode)
	cleaned = strings.NewReplacer(",", "", "$", "", " ", "").Replace(cleaned)

	if cleaned == "" {
		return decimal.Zero, &NumericInputError{Field: field, Input: input, Reason: "must be a valid number"}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &NumericInputError{Field: field, Input: input, Reason: "must be a valid number"}
	}
	if err := NonNegative(field, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// NonNegative rejects negative amounts.
func NonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &NumericInputError{Field: field, Input: amount.String(), Reason: "must be greater than or equal to 0"}
	}
	return nil
}
