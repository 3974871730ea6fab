package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic(t *testing.T) {
	res, err := Basic(3, 6)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Value, 1e-12)
	assert.InDelta(t, 50.0, res.Percentage, 1e-9)
	assert.Equal(t, "P(E) = 3/6 = 0.5000 = 50.00%", res.String())
}

func TestBasic_Invalid(t *testing.T) {
	tests := []struct {
		name             string
		favorable, total int
	}{
		{"favorable above total", 7, 6},
		{"zero total", 0, 0},
		{"negative favorable", -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Basic(tt.favorable, tt.total)
			assert.ErrorIs(t, err, ErrInvalidCases)
		})
	}
}

func TestConditional(t *testing.T) {
	res, err := Conditional(0.12, 0.4, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.PAGivenB, 1e-9)
	assert.InDelta(t, 0.3, res.PBGivenA, 1e-9)
	assert.True(t, res.Independent)

	res, err = Conditional(0.28, 0.4, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, res.PAGivenB, 1e-9)
	assert.False(t, res.Independent)
}

func TestConditional_Invalid(t *testing.T) {
	_, err := Conditional(0.1, 0, 0.3)
	assert.ErrorIs(t, err, ErrZeroCondition)

	_, err = Conditional(0.5, 0.4, 0.6)
	assert.ErrorIs(t, err, ErrIntersectionTooBig)

	_, err = Conditional(0.1, 1.2, 0.3)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}
