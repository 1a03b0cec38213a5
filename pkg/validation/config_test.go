package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/cesantias/pkg/statutory"
	"github.com/shopspring/decimal"
)

func TestValidateSettlementDates(t *testing.T) {
	tests := []struct {
		name            string
		startDate       string
		endDate         string
		expectWarnCount int
	}{
		{
			name:            "Valid period",
			startDate:       "2024-01-01",
			endDate:         "2024-12-31",
			expectWarnCount: 0,
		},
		{
			name:            "Same day",
			startDate:       "2024-05-05",
			endDate:         "2024-05-05",
			expectWarnCount: 0,
		},
		{
			name:            "End before start",
			startDate:       "2024-12-31",
			endDate:         "2024-01-01",
			expectWarnCount: 1,
		},
		{
			name:            "Invalid start",
			startDate:       "2024-13-01",
			endDate:         "2024-12-31",
			expectWarnCount: 1,
		},
		{
			name:            "Both invalid",
			startDate:       "",
			endDate:         "tomorrow",
			expectWarnCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateSettlementDates("Test", tt.startDate, tt.endDate)
			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateSettlementDates() returned %d warnings, expected %d: %v",
					len(warnings), tt.expectWarnCount, warnings)
			}
		})
	}
}

func statutoryTable(t *testing.T, years ...int) *statutory.Table {
	t.Helper()
	records := make([]statutory.Record, 0, len(years))
	for _, y := range years {
		records = append(records, statutory.Record{
			Year:             y,
			MinimumWage:      decimal.NewFromInt(1300000),
			TransportSubsidy: decimal.NewFromInt(162000),
		})
	}
	table, err := statutory.New(records...)
	if err != nil {
		t.Fatalf("statutory.New() error = %v", err)
	}
	return table
}

func TestValidateReferenceYear(t *testing.T) {
	configured := statutoryTable(t, 2023, 2024)

	if w := ValidateReferenceYear("Ana", 2024, configured); w != "" {
		t.Errorf("ValidateReferenceYear() unexpected warning %q", w)
	}
	w := ValidateReferenceYear("Ana", 2019, configured)
	if w == "" {
		t.Fatalf("ValidateReferenceYear() expected warning for 2019")
	}
	if !strings.Contains(w, "2019") || !strings.Contains(w, "Ana") {
		t.Errorf("warning should name the settlement and year: %q", w)
	}
	if ValidateReferenceYear("Ana", 2024, nil) == "" {
		t.Errorf("ValidateReferenceYear() expected warning without a table")
	}
}

func TestConfigValidator_ValidateAll(t *testing.T) {
	amount := decimal.NewFromInt
	tests := []struct {
		name            string
		validator       ConfigValidator
		expectWarnCount int
	}{
		{
			name: "Valid configuration",
			validator: ConfigValidator{
				Table: statutoryTable(t, 2024),
				Settlements: []SettlementConfig{
					{Name: "Ana", MonthlySalary: amount(1000000), StartDate: "2024-01-01", EndDate: "2024-12-31"},
					{Name: "Luis", MonthlySalary: amount(3000000), StartDate: "2024-03-01", EndDate: "2024-06-30", ReferenceYear: 2024},
				},
			},
			expectWarnCount: 0,
		},
		{
			name:            "Empty configuration",
			validator:       ConfigValidator{},
			expectWarnCount: 1,
		},
		{
			name: "Configuration with warnings",
			validator: ConfigValidator{
				Table: statutoryTable(t, 2024),
				Settlements: []SettlementConfig{
					// unknown year
					{Name: "Old", MonthlySalary: amount(900000), StartDate: "2019-01-01", EndDate: "2019-12-31"},
					// no salary, starts before reference year
					{Name: "Long", StartDate: "2023-06-01", EndDate: "2024-05-31"},
					// negative salary, inverted dates
					{Name: "Broken", MonthlySalary: amount(-1), StartDate: "2024-12-31", EndDate: "2024-01-01"},
				},
			},
			expectWarnCount: 5,
		},
		{
			name: "Unparseable end date skips year checks",
			validator: ConfigValidator{
				Table: statutoryTable(t, 2024),
				Settlements: []SettlementConfig{
					{Name: "Bad", MonthlySalary: amount(1000000), StartDate: "2024-01-01", EndDate: "soon"},
				},
			},
			expectWarnCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.validator.ValidateAll()

			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateAll() returned %d warnings, expected %d", len(warnings), tt.expectWarnCount)
			}

			for i, warning := range warnings {
				t.Logf("Warning %d: %s", i+1, warning)
			}
		})
	}
}
