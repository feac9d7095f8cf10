package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/county-jobs/internal/types"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{"Plain number", "70.38", 70.38, true},
		{"Dollar sign and commas", "$2,000.50", 2000.50, true},
		{"Whitespace and currency text", " 1,234 USD ", 1234, true},
		{"Zero parses", "0", 0, true},
		{"Empty string", "", 0, false},
		{"Only text", "n/a", 0, false},
		{"Only symbols", "$-", 0, false},
		{"Two decimal points", "12.3.4", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestInferCadence(t *testing.T) {
	assert.Equal(t, types.CadenceMonthly, InferCadence(150.01))
	assert.Equal(t, types.CadenceHourly, InferCadence(150.0))
	assert.Equal(t, types.CadenceHourly, InferCadence(25))
	assert.Equal(t, types.CadenceMonthly, InferCadence(6000))
}

func TestAmountToAnnual(t *testing.T) {
	assert.Equal(t, 20800.0, AmountToAnnual(10, types.CadenceHourly))
	assert.Equal(t, 60000.0, AmountToAnnual(5000, types.CadenceMonthly))
	assert.Equal(t, 70000.0, AmountToAnnual(70000, types.CadenceAnnual))
}
