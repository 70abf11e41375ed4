package utils_test

import (
	"testing"

	"github.com/fintrackhq/fintrack_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatBaseAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"whole number", "100", "100.00"},
		{"rounds half up", "12.345", "12.35"},
		{"truncating zeroes kept", "7.5", "7.50"},
		{"zero", "0", "0.00"},
		{"negative", "-3.333", "-3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatBaseAmount(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatSecondaryAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rate     string
		expected string
	}{
		{"whole conversion", "100", "61.5", "6150"},
		{"rounds to whole units", "1.99", "61.5", "122"},
		{"zero amount", "0", "61.5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatSecondaryAmount(
				decimal.RequireFromString(tt.amount),
				decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.346", utils.FormatWithPrecision(amount, 3))
	assert.Equal(t, "12", utils.FormatWithPrecision(amount, 0))
}
