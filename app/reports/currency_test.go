package reports

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDZD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "DA 0"},
		{"small", 950, "DA 950"},
		{"thousands", 1500, "DA 1,500"},
		{"millions", 1500000, "DA 1,500,000"},
		{"rounds half up", 1499.5, "DA 1,500"},
		{"negative", -25000, "-DA 25,000"},
		{"negative fraction rounding to zero", -0.4, "DA 0"},
		{"nan collapses to zero", math.NaN(), "DA 0"},
		{"positive infinity collapses to zero", math.Inf(1), "DA 0"},
		{"negative infinity collapses to zero", math.Inf(-1), "DA 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDZD(tt.amount))
		})
	}
}

func TestFormatDZDDeterministic(t *testing.T) {
	// Same input, same output, every time.
	for i := 0; i < 100; i++ {
		assert.Equal(t, "DA 1,234,567", FormatDZD(1234567))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "42.5%", FormatPercent(42.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(100))
	assert.Equal(t, "0.0%", FormatPercent(math.NaN()))
	assert.Equal(t, "0.0%", FormatPercent(math.Inf(1)))
}
