package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/iwvelando/cesantias/internal/config"
	"github.com/iwvelando/cesantias/internal/settlement"
	"github.com/iwvelando/cesantias/pkg/constants"
	"github.com/iwvelando/cesantias/pkg/datetime"
	"github.com/iwvelando/cesantias/pkg/daycount"
	"github.com/iwvelando/cesantias/pkg/output"
	"github.com/iwvelando/cesantias/pkg/severance"
	"github.com/iwvelando/cesantias/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// CLI override takes precedence
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	// Logs go to stderr unless a file is configured so stdout stays parseable.
	config.OutputPaths = []string{"stderr"}
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// adHocFlags holds the single-period command line inputs.
type adHocFlags struct {
	name   string
	start  string
	end    string
	salary string
	year   int
}

func (f adHocFlags) enabled() bool {
	return f.start != ""
}

// validate rejects -end, -salary or -year given without -start, which would
// otherwise silently run the batch from the config file.
func (f adHocFlags) validate() error {
	if f.enabled() {
		return nil
	}
	var given []string
	if f.end != "" {
		given = append(given, "-end")
	}
	if f.salary != "" {
		given = append(given, "-salary")
	}
	if f.year != 0 {
		given = append(given, "-year")
	}
	if len(given) > 0 {
		return fmt.Errorf("%s requires -start", strings.Join(given, ", "))
	}
	return nil
}

// settlement converts the flags into a config entry so ad-hoc runs go
// through the same parsing as the config file.
func (f adHocFlags) settlement(logger *zap.Logger) config.Settlement {
	amount, err := validation.ParseAmount("salary", f.salary)
	if err != nil {
		logger.Fatal("invalid salary",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	return config.Settlement{
		Name:          f.name,
		MonthlySalary: amount,
		StartDate:     f.start,
		EndDate:       f.end,
		ReferenceYear: f.year,
	}
}

func printDays(logger *zap.Logger, f adHocFlags) {
	start, err := datetime.ParseDate(f.start)
	if err != nil {
		logger.Fatal("invalid start date",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	end := civil.DateOf(time.Now())
	if f.end != "" {
		end, err = datetime.ParseDate(f.end)
		if err != nil {
			logger.Fatal("invalid end date",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	days, err := daycount.CountDays(start, end)
	if err != nil {
		logger.Fatal("failed to count days",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	fmt.Printf("%s - %s: %d days (30/360)\n", datetime.FormatDisplay(start), datetime.FormatDisplay(end), days)
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")

	var adHoc adHocFlags
	flag.StringVar(&adHoc.start, "start", "", "settle a single period starting on this date (YYYY-MM-DD)")
	flag.StringVar(&adHoc.end, "end", "", "end date of the single period, defaults to today (YYYY-MM-DD)")
	flag.StringVar(&adHoc.salary, "salary", "", "monthly salary for the single period; without it only days are counted")
	flag.IntVar(&adHoc.year, "year", 0, "reference year for the single period, defaults to the end date's year")
	flag.StringVar(&adHoc.name, "name", "ad-hoc", "label for the single period")
	flag.Parse()

	if err := adHoc.validate(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid flags\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	countOnly := adHoc.enabled() && adHoc.salary == ""

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if !countOnly {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s, see %s for a template\", \"error\": \"%v\"}\n",
				*configLocation, constants.ExampleConfigFile, err)
			os.Exit(1)
		}
		// Counting days needs no statutory values.
		conf = &config.Configuration{}
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if countOnly {
		printDays(logger, adHoc)
		return
	}

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if adHoc.enabled() {
		conf.Settlements = []config.Settlement{adHoc.settlement(logger)}
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	err = conf.ParseSettlements()
	if err != nil {
		logger.Fatal("failed to parse settlement dates",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	results, err := settlement.GetSettlements(logger, *conf)
	if err != nil {
		msg := "failed to compute settlements"
		if severance.IsConfigurationError(err) {
			msg = "statutory values missing or invalid for settlement"
		}
		logger.Fatal(msg,
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(results); err != nil {
			logger.Fatal("failed to write output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
