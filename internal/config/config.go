// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/iwvelando/cesantias/pkg/datetime"
	"github.com/iwvelando/cesantias/pkg/daycount"
	"github.com/iwvelando/cesantias/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for cesantias.
type Configuration struct {
	Logging     LoggingConfig   `yaml:"logging,omitempty"`
	Output      OutputConfig    `yaml:"output,omitempty"`
	Statutory   []StatutoryYear `yaml:"statutory"`
	Settlements []Settlement    `yaml:"settlements"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// StatutoryYear holds the decreed values for one year.
type StatutoryYear struct {
	Year             int
	MinimumWage      decimal.Decimal
	TransportSubsidy decimal.Decimal
}

// Settlement describes one employee period to settle.
type Settlement struct {
	Name          string
	MonthlySalary decimal.Decimal
	StartDate     string
	EndDate       string
	// ReferenceYear selects the statutory values and the semesters used for
	// prima. Zero means the year of EndDate.
	ReferenceYear int
	// SeveranceValue, when set, is used for the interest calculation instead
	// of the computed cesantías.
	SeveranceValue *decimal.Decimal

	Period daycount.Period `mapstructure:"-" yaml:"-"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys can be overridden with CESANTIAS_* environment
// variables, e.g. CESANTIAS_OUTPUT_FORMAT. Amounts are decoded straight into
// decimals, see decodeHook.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvPrefix("cesantias")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration, viper.DecodeHook(decodeHook()))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ParseSettlements parses every settlement's dates into its Period.
func (conf *Configuration) ParseSettlements() error {
	now := time.Now()
	return conf.ParseSettlementsAsOf(civil.DateOf(now))
}

// ParseSettlementsAsOf parses all settlements, using asOf for any settlement
// without an end date.
func (conf *Configuration) ParseSettlementsAsOf(asOf civil.Date) error {
	for i := range conf.Settlements {
		if err := conf.Settlements[i].ParsePeriodAsOf(asOf); err != nil {
			return err
		}
	}
	return nil
}

// ParsePeriodAsOf handles the date parsing for one settlement and fills in
// the default reference year.
func (s *Settlement) ParsePeriodAsOf(asOf civil.Date) error {
	start, err := datetime.ParseDate(s.StartDate)
	if err != nil {
		return fmt.Errorf("settlement %q start date: %w", s.Name, err)
	}

	// Unspecified endDate settles up to asOf.
	end := asOf
	if s.EndDate != "" {
		end, err = datetime.ParseDate(s.EndDate)
		if err != nil {
			return fmt.Errorf("settlement %q end date: %w", s.Name, err)
		}
	} else {
		s.EndDate = asOf.String()
	}

	period, err := daycount.NewPeriod(start, end)
	if err != nil {
		return fmt.Errorf("settlement %q: %w", s.Name, err)
	}
	s.Period = period

	if s.ReferenceYear == 0 {
		s.ReferenceYear = end.Year
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	table, err := c.ToStatutoryTable()
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	validator := validation.ConfigValidator{Table: table}
	for _, s := range c.Settlements {
		endDate := s.EndDate
		if endDate == "" {
			endDate = civil.DateOf(time.Now()).String()
		}
		validator.Settlements = append(validator.Settlements, validation.SettlementConfig{
			Name:          s.Name,
			MonthlySalary: s.MonthlySalary,
			StartDate:     s.StartDate,
			EndDate:       endDate,
			ReferenceYear: s.ReferenceYear,
		})
	}
	return append(warnings, validator.ValidateAll()...)
}
