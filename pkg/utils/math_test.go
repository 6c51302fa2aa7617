package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = ParseFloat("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = ParseFloat("not a number")
	assert.Error(t, err)
}

func TestCalculateVolatility(t *testing.T) {
	assert.Zero(t, CalculateVolatility(nil))
	assert.Zero(t, CalculateVolatility([]float64{1.0}))

	// Constant prices have zero returns.
	assert.Zero(t, CalculateVolatility([]float64{2.0, 2.0, 2.0}))

	// Alternating +100%/-50% returns: mean 0.25, stddev 0.75.
	vol := CalculateVolatility([]float64{1.0, 2.0, 1.0, 2.0, 1.0})
	assert.InDelta(t, 0.75, vol, 1e-9)
}

func TestNormalizeTo(t *testing.T) {
	assert.Equal(t, 1.23, NormalizeTo(1.2345, 2))
	assert.Equal(t, 1.24, NormalizeTo(1.236, 2))
	assert.Zero(t, NormalizeTo(math.NaN(), 2))
	assert.Zero(t, NormalizeTo(math.Inf(1), 2))
}

func TestDecimalConversions(t *testing.T) {
	d := FloatToDecimal(0.1).Add(FloatToDecimal(0.2))
	assert.Equal(t, "0.3", d.String())
	assert.InDelta(t, 0.3, DecimalToFloat(d), 1e-12)
}
