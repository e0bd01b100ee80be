package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		amount    string
		precision int
		want      string
	}{
		{"-1.5", 2, "-1.50"},
		{"0", 2, "0.00"},
		{"12.3456", 2, "12.35"},
		{"12.3456", 0, "12"},
	}

	for _, tt := range tests {
		got := FormatWithPrecision(decimal.RequireFromString(tt.amount), tt.precision)
		assert.Equal(t, tt.want, got, "amount %s precision %d", tt.amount, tt.precision)
	}
}
