package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"probtutor/domain/counting"
)

func TestFormatShortNotation(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{name: "zero", value: 0, expected: "0"},
		{name: "small positive", value: 999, expected: "999"},
		{name: "exactly 1k", value: 1000, expected: "1.0k"},
		{name: "9.9k", value: 9900, expected: "9.9k"},
		{name: "5040 codes", value: 5040, expected: "5.0k"},
		{name: "no decimals above 10k", value: 95040, expected: "95k"},
		{name: "millions", value: 2494800, expected: "2.49M"},
		{name: "billions", value: 1_500_000_000, expected: "1.50B"},
		{name: "trillions", value: 2_000_000_000_000, expected: "2.00T"},
		{name: "negative", value: -1500, expected: "-1.5k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatShortNotation(tt.value))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "2,494,800", FormatNumber(2494800))
	assert.Equal(t, "792", FormatNumber(792))
	assert.Equal(t, "2,432,902,008,176,640,000", FormatNumber(2432902008176640000))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "5,040", FormatCount(counting.Of(5040)))
	assert.Equal(t, "too large to represent exactly", FormatCount(counting.TooLarge()))
	assert.Equal(t, "undefined", FormatCount(counting.NotDefined()))

	assert.Equal(t, "2.49M", FormatCountShort(counting.Of(2494800)))
	assert.Equal(t, "too large", FormatCountShort(counting.TooLarge()))
}

func TestFormatProbability(t *testing.T) {
	assert.Equal(t, "0.2500 (25.00%)", FormatProbability(0.25))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Elements: no labels", Capitalize("elements: no labels"))
	assert.Equal(t, "Ñu", Capitalize("ñu"))
	assert.Equal(t, "", Capitalize(""))
}
