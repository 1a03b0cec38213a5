// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/iwvelando/cesantias/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decodeHook keeps viper's default hooks and adds decimal decoding.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		decimalHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// decimalHook converts YAML numbers and amount strings such as
// "COP 1,300,000" into decimal.Decimal without a float64 round trip for
// integers. Fractional YAML numbers arrive as float64 and are converted
// using their shortest representation, which is the literal in the file.
func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return validation.ParseAmount("amount", v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return nil, fmt.Errorf("cannot decode %s into an amount", from)
	}
}

// ToStatutoryTable converts the configured years into an immutable
// statutory.Table.
func (c *Configuration) ToStatutoryTable() (*statutory.Table, error) {
	records := make([]statutory.Record, 0, len(c.Statutory))
	for _, y := range c.Statutory {
		records = append(records, y.ToRecord())
	}
	return statutory.New(records...)
}

// ToRecord converts one configured year into a statutory.Record.
func (y StatutoryYear) ToRecord() statutory.Record {
	return statutory.Record{
		Year:             y.Year,
		MinimumWage:      y.MinimumWage,
		TransportSubsidy: y.TransportSubsidy,
	}
}
