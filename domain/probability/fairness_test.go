package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probtutor/domain/random"
)

func TestCriticalValue95(t *testing.T) {
	assert.InDelta(t, 3.841, CriticalValue95(1), 1e-9)
	assert.InDelta(t, 16.919, CriticalValue95(9), 1e-9)
	// Table value for 20 degrees of freedom is 31.410.
	assert.InDelta(t, 31.410, CriticalValue95(20), 0.05)
	assert.Zero(t, CriticalValue95(0))
}

func TestAnalyzeFairness_FairDie(t *testing.T) {
	src := random.New(8)
	var tally DiceTally
	for i := 0; i < 6000; i++ {
		_, tally = RollDie(src, tally)
	}

	report, err := AnalyzeFairness(tally[:], Uniform(6))
	require.NoError(t, err)
	assert.Equal(t, 5, report.DegreesOfFreedom)
	// Well above the 95% critical value of 11.07 so a fixed seed cannot
	// land in the 5% tail.
	assert.Less(t, report.ChiSquared, 25.0)
}

func TestAnalyzeFairness_LoadedDie(t *testing.T) {
	report, err := AnalyzeFairness([]int{100, 100, 100, 100, 100, 400}, Uniform(6))
	require.NoError(t, err)
	assert.False(t, report.Fair())
	assert.InDelta(t, 150.0, report.Expected[0], 1e-9)
}

func TestAnalyzeFairness_Invalid(t *testing.T) {
	_, err := AnalyzeFairness([]int{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrCategoryMismatch)

	_, err = AnalyzeFairness([]int{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewCategories)

	_, err = AnalyzeFairness([]int{0, 0}, Uniform(2))
	assert.ErrorIs(t, err, ErrNoTrials)
}
