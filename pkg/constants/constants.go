// Package constants provides shared constants for the cesantias application.
package constants

// DateLayout is the format expected in config files and on the command line.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the day-first format used in human-readable output.
const DisplayDateLayout = "02/01/2006"

// Commercial calendar constants (30/360 convention)
const (
	// CommercialDaysPerYear is the divisor used by every settlement formula.
	CommercialDaysPerYear = 360

	// CommercialDaysPerMonth is the length assigned to every month.
	CommercialDaysPerMonth = 30

	// VacationDaysDivisor yields 15 working days of vacation per 360 days worked.
	VacationDaysDivisor = 720
)

// Statutory constants fixed by the labor code, not by the yearly decrees.
const (
	// MaxMinimumWageMultipleForTransportSubsidy is the number of minimum wages
	// up to which an employee is entitled to the transport subsidy.
	MaxMinimumWageMultipleForTransportSubsidy = 2

	// InterestRateOnSeverance is the annual interest paid on cesantías.
	InterestRateOnSeverance = "0.12"
)

// Currency constants
const (
	// CurrencyCode is prepended to formatted amounts.
	CurrencyCode = "COP"

	// CurrencyDecimalPlaces is the precision used when rendering amounts.
	CurrencyDecimalPlaces = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
