package severance

import (
	"errors"

	"github.com/iwvelando/cesantias/pkg/daycount"
	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/iwvelando/cesantias/pkg/validation"
)

// IsInputError returns true if the error is due to invalid caller input:
// an inverted period or a bad amount.
func IsInputError(err error) bool {
	return errors.Is(err, daycount.ErrInvalidPeriod) ||
		errors.Is(err, validation.ErrInvalidNumericInput)
}

// IsConfigurationError returns true if the error comes from the statutory
// table: a missing year or a non-positive value.
func IsConfigurationError(err error) bool {
	return errors.Is(err, statutory.ErrUnknownYear) ||
		errors.Is(err, statutory.ErrInvalidStatutoryData)
}
