package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "COP 0.00"},
		{"999", "COP 999.00"},
		{"1000", "COP 1,000.00"},
		{"1162000", "COP 1,162,000.00"},
		{"139440", "COP 139,440.00"},
		{"387333.3333333", "COP 387,333.33"},
		{"-1234.567", "-COP 1,234.57"},
	}

	for _, tt := range tests {
		got := Currency(decimal.RequireFromString(tt.input))
		if got != tt.expected {
			t.Errorf("Currency(%s) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestPercentage(t *testing.T) {
	if got := Percentage(decimal.RequireFromString("0.12"), 2); got != "12.00%" {
		t.Errorf("Percentage(0.12, 2) = %q, expected 12.00%%", got)
	}
	if got := Percentage(decimal.RequireFromString("0.125"), 1); got != "12.5%" {
		t.Errorf("Percentage(0.125, 1) = %q, expected 12.5%%", got)
	}
}
