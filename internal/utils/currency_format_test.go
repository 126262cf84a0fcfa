package utils_test

import (
	"testing"

	"github.com/itrustbank/itrust_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPeso(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zero", "0", "₱0.00"},
		{"small", "5.5", "₱5.50"},
		{"thousands", "1234.56", "₱1,234.56"},
		{"millions", "1234567.89", "₱1,234,567.89"},
		{"negative", "-1234.5", "-₱1,234.50"},
		{"rounds to centavos", "10.005", "₱10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatPeso(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}
