package services

import (
	"context"
	"testing"

	"probtutor/config"
	"probtutor/domain/probability"
	"probtutor/domain/random"
	"probtutor/domain/testhelpers"
	"probtutor/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSimulationService_FlipCoinsAccumulatesTally(t *testing.T) {
	setupConfig(t, nil)
	ctx := context.Background()
	src := &testhelpers.SequenceSource{Floats: []float64{0.1, 0.9, 0.2}}
	service := NewSimulationService(src, nil)

	side, tally, err := service.FlipCoins(ctx, 3, probability.CoinTally{Heads: 4})
	require.NoError(t, err)
	assert.Equal(t, probability.Heads, side)
	assert.Equal(t, probability.CoinTally{Heads: 6, Tails: 1}, tally)
}

func TestSimulationService_TrialLimits(t *testing.T) {
	setupConfig(t, func(c *config.Config) { c.MaxSimulations = 100 })
	ctx := context.Background()
	mockPublisher := new(testhelpers.MockEventPublisher)
	service := NewSimulationService(random.New(1), mockPublisher)

	_, tally, err := service.FlipCoins(ctx, 0, probability.CoinTally{Heads: 2})
	assert.ErrorIs(t, err, probability.ErrNoTrials)
	assert.Equal(t, 2, tally.Heads)

	_, err = service.Urn(ctx, 101)
	assert.ErrorIs(t, err, ErrTooManyTrials)

	_, err = service.Dependency(ctx, probability.Positive, -5)
	assert.ErrorIs(t, err, probability.ErrNoTrials)

	mockPublisher.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestSimulationService_RollDiceReportsFairness(t *testing.T) {
	setupConfig(t, nil)
	ctx := context.Background()
	recorder := &events.Recorder{}
	service := NewSimulationService(random.New(42), recorder)

	_, tally, report, err := service.RollDice(ctx, 6000, probability.DiceTally{})
	require.NoError(t, err)
	assert.Equal(t, 6000, tally.Total())
	assert.Equal(t, 5, report.DegreesOfFreedom)
	assert.Less(t, report.ChiSquared, 25.0)

	recorded := recorder.Events()
	require.Len(t, recorded, 1)
	ev := recorded[0].(events.SimulationEvent)
	assert.Equal(t, "dice", ev.Kind)
	assert.Equal(t, 6000, ev.Trials)
}

func TestSimulationService_DrawCards(t *testing.T) {
	setupConfig(t, nil)
	service := NewSimulationService(random.New(5), nil)

	card, tally, err := service.DrawCards(context.Background(), 52, probability.CardTally{})
	require.NoError(t, err)
	assert.NotEmpty(t, card.Value)
	assert.Equal(t, 52, tally.Total())
}

func TestSimulationService_DependencyAndUrn(t *testing.T) {
	setupConfig(t, nil)
	ctx := context.Background()
	recorder := &events.Recorder{}
	service := NewSimulationService(random.New(11), recorder)

	stats, err := service.Dependency(ctx, probability.Positive, 20000)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, stats.PBGivenA(), 0.03)

	_, err = service.Dependency(ctx, probability.DependencyKind("sideways"), 10)
	assert.ErrorIs(t, err, probability.ErrUnknownDependency)

	urn, err := service.Urn(ctx, 20000)
	require.NoError(t, err)
	assert.InDelta(t, probability.UrnExpected, urn.Estimate(), 0.03)

	kinds := []string{}
	for _, e := range recorder.Events() {
		kinds = append(kinds, e.(events.SimulationEvent).Kind)
	}
	assert.Equal(t, []string{"dependency_positive", "urn"}, kinds)
}

func TestSimulationService_Bernoulli(t *testing.T) {
	setupConfig(t, func(c *config.Config) { c.MaxSimulations = 50000 })
	ctx := context.Background()
	recorder := &events.Recorder{}
	service := NewSimulationService(random.New(13), recorder)

	stats, report, err := service.Bernoulli(ctx, 0.1, 50000)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, stats.Rate(), 0.01)
	assert.Equal(t, probability.BernoulliBuckets-1, report.DegreesOfFreedom)

	_, _, err = service.Bernoulli(ctx, 0.1, 50001)
	assert.ErrorIs(t, err, ErrTooManyTrials)

	_, _, err = service.Bernoulli(ctx, -0.2, 10)
	assert.ErrorIs(t, err, probability.ErrInvalidProbability)

	require.Len(t, recorder.Events(), 1)
	assert.Equal(t, "bernoulli", recorder.Events()[0].(events.SimulationEvent).Kind)
}
