package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probtutor/domain/random"
)

func TestSimulateBernoulli_ConvergesToP(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9} {
		stats, err := SimulateBernoulli(random.New(7), p, 100000)
		require.NoError(t, err)
		assert.InDelta(t, p, stats.Rate(), 0.01, "p=%g", p)
		assert.InDelta(t, 0, stats.Deviation(), 0.01)

		total := 0
		for _, b := range stats.Buckets {
			total += b
		}
		assert.Equal(t, stats.Trials, total)
	}
}

func TestSimulateBernoulli_Uniformity(t *testing.T) {
	stats, err := SimulateBernoulli(random.New(3), 0.3, 50000)
	require.NoError(t, err)

	report, err := stats.Uniformity()
	require.NoError(t, err)
	assert.Equal(t, BernoulliBuckets-1, report.DegreesOfFreedom)
	// generous bound so the test is not flaky across seeds
	assert.Less(t, report.ChiSquared, 40.0)
}

func TestSimulateBernoulli_Invalid(t *testing.T) {
	_, err := SimulateBernoulli(random.New(1), 1.5, 10)
	assert.ErrorIs(t, err, ErrInvalidProbability)

	_, err = SimulateBernoulli(random.New(1), 0.5, 0)
	assert.ErrorIs(t, err, ErrNoTrials)
}

func TestFairBet(t *testing.T) {
	bet, err := FairBet(0.1, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 9000, bet.Payout, 1e-9)
	assert.InDelta(t, 0, bet.ExpectedValue(), 1e-9)

	unfair := Bet{P: 0.1, Stake: 1000, Payout: 8000}
	assert.InDelta(t, -100, unfair.ExpectedValue(), 1e-9)

	_, err = FairBet(0, 1000)
	assert.ErrorIs(t, err, ErrInvalidProbability)
	_, err = FairBet(1, 1000)
	assert.ErrorIs(t, err, ErrInvalidProbability)
}
