package probability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probtutor/domain/random"
)

func TestFlipCoin_TallyIsCallerOwned(t *testing.T) {
	src := random.New(1)
	var tally CoinTally

	for i := 0; i < 10000; i++ {
		_, tally = FlipCoin(src, tally)
	}

	assert.Equal(t, 10000, tally.Total())
	assert.InDelta(t, 0.5, float64(tally.Heads)/10000, 0.02)

	before := tally
	side, after := FlipCoin(src, before)
	assert.Equal(t, before.Total()+1, after.Total())
	if side == Heads {
		assert.Equal(t, before.Heads+1, after.Heads)
	} else {
		assert.Equal(t, before.Tails+1, after.Tails)
	}
}

func TestRollDie_Distribution(t *testing.T) {
	src := random.New(2)
	var tally DiceTally

	for i := 0; i < 60000; i++ {
		var face int
		face, tally = RollDie(src, tally)
		require.True(t, face >= 1 && face <= 6)
	}

	for face, count := range tally {
		assert.InDelta(t, 1.0/6, float64(count)/60000, 0.01, "face %d", face+1)
	}
}

func TestDrawCard(t *testing.T) {
	src := random.New(3)
	var tally CardTally

	for i := 0; i < 40000; i++ {
		var card Card
		card, tally = DrawCard(src, tally)
		assert.Contains(t, CardValues, card.Value)
	}

	assert.Equal(t, 40000, tally.Total())
	for suit, count := range tally {
		assert.InDelta(t, 0.25, float64(count)/40000, 0.015, Suit(suit).String())
	}
	assert.Equal(t, "Q♠", Card{Value: "Q", Suit: Spades}.String())
}

func TestSimulateDependency(t *testing.T) {
	for _, kind := range DependencyKinds {
		t.Run(string(kind), func(t *testing.T) {
			stats, err := SimulateDependency(random.New(4), kind, 100000)
			require.NoError(t, err)

			pA, pB, pAB, err := ExpectedDependency(kind)
			require.NoError(t, err)

			assert.InDelta(t, pA, stats.PA(), 0.01)
			assert.InDelta(t, pB, stats.PB(), 0.01)
			assert.InDelta(t, pAB, stats.PAB(), 0.01)
			assert.InDelta(t, pAB/pA, stats.PBGivenA(), 0.02)
		})
	}
}

func TestSimulateDependency_Direction(t *testing.T) {
	pos, err := SimulateDependency(random.New(5), Positive, 50000)
	require.NoError(t, err)
	assert.Greater(t, pos.PBGivenA(), pos.PB())

	neg, err := SimulateDependency(random.New(5), Negative, 50000)
	require.NoError(t, err)
	assert.Less(t, neg.PBGivenA(), neg.PB())
}

func TestSimulateDependency_Invalid(t *testing.T) {
	_, err := SimulateDependency(random.New(1), "sideways", 10)
	assert.ErrorIs(t, err, ErrUnknownDependency)

	_, err = SimulateDependency(random.New(1), Independent, 0)
	assert.ErrorIs(t, err, ErrNoTrials)
}

func TestSimulateUrn(t *testing.T) {
	stats, err := SimulateUrn(random.New(6), 100000)
	require.NoError(t, err)

	// Blue comes first with probability 2/5.
	assert.InDelta(t, 0.4, float64(stats.BlueFirst)/100000, 0.01)
	assert.InDelta(t, UrnExpected, stats.Estimate(), 0.01)

	_, err = SimulateUrn(random.New(6), -1)
	assert.ErrorIs(t, err, ErrNoTrials)
}

func TestDependencyStats_ZeroDenominators(t *testing.T) {
	var s DependencyStats
	assert.Zero(t, s.PAGivenB())
	assert.Zero(t, s.PBGivenA())
	assert.False(t, math.IsNaN(UrnStats{}.Estimate()))
}
