package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
		err      error
	}{
		{"simple", "A,B,C", []string{"A", "B", "C"}, nil},
		{"trims and drops empties", " red , ,blue,, green ", []string{"red", "blue", "green"}, nil},
		{"keeps duplicates", "A,A,B", []string{"A", "A", "B"}, nil},
		{"only separators", " , ,", nil, ErrNoLabels},
		{"empty", "", nil, ErrNoLabels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := ParseLabels(tt.text)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, labels)
		})
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	v, err := ParseNonNegativeInt("n", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = ParseNonNegativeInt("n", "-3")
	assert.ErrorIs(t, err, ErrNegative)

	_, err = ParseNonNegativeInt("n", "2.5")
	assert.ErrorIs(t, err, ErrNotInteger)

	_, err = ParseNonNegativeInt("n", "")
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Contains(t, err.Error(), "n:")
}

func TestIntInRange(t *testing.T) {
	assert.NoError(t, IntInRange("rows", 15, 0, 15))
	assert.ErrorIs(t, IntInRange("rows", 16, 0, 15), ErrOutOfRange)
}

func TestParseIntList(t *testing.T) {
	v, err := ParseIntList("stages", "3, 2,,4")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 4}, v)

	_, err = ParseIntList("stages", "3,x")
	assert.ErrorIs(t, err, ErrNotInteger)

	_, err = ParseIntList("stages", " , ")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseProbability(t *testing.T) {
	v, err := ParseProbability("p", "0.25")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-12)

	_, err = ParseProbability("p", "1.5")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseProbability("p", "abc")
	assert.ErrorIs(t, err, ErrNotNumber)

	_, err = ParseProbability("p", "NaN")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseProbabilityList(t *testing.T) {
	v, err := ParseProbabilityList("priors", "0.5, 0.3,0.2")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.3, 0.2}, v)

	_, err = ParseProbabilityList("priors", "0.5,2")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParsePercent(t *testing.T) {
	v, err := ParsePercent("sensitivity", "95%")
	require.NoError(t, err)
	assert.InDelta(t, 0.95, v, 1e-12)

	v, err = ParsePercent("prevalence", " 1 ")
	require.NoError(t, err)
	assert.InDelta(t, 0.01, v, 1e-12)

	_, err = ParsePercent("prevalence", "101")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseMatrix(t *testing.T) {
	m, err := ParseMatrix("table", "20,30,10; 15,25,20")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{20, 30, 10}, {15, 25, 20}}, m)

	_, err = ParseMatrix("table", ";")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("Estadística")
	require.NoError(t, err)
	assert.Equal(t, "ESTADISTICA", w.Normalized)
	assert.Equal(t, 11, w.Length())
	assert.Equal(t, []int{2, 2, 2, 2}, w.Repeats())
	assert.Equal(t, LetterCount{Letter: 'E', Count: 1}, w.Letters[0])

	w, err = ParseWord("Mississippi!")
	require.NoError(t, err)
	assert.Equal(t, 11, w.Length())
	assert.Equal(t, []int{4, 4, 2}, w.Repeats())

	_, err = ParseWord(" 123 ")
	assert.ErrorIs(t, err, ErrNoLetters)
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt("n", " -3 ")
	require.NoError(t, err)
	assert.Equal(t, -3, v)

	_, err = ParseInt("n", "")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = ParseInt("n", "2.5")
	assert.ErrorIs(t, err, ErrNotInteger)
}
