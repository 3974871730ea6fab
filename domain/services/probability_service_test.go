package services

import (
	"context"
	"testing"

	"probtutor/domain/probability"
	"probtutor/domain/random"
	"probtutor/domain/testhelpers"
	"probtutor/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityService_Basic(t *testing.T) {
	ctx := context.Background()
	recorder := &events.Recorder{}
	service := NewProbabilityService(random.New(1), recorder)

	res, err := service.Basic(ctx, 1, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, res.Value, 1e-12)

	_, err = service.Basic(ctx, 5, 4)
	assert.ErrorIs(t, err, probability.ErrInvalidCases)

	recorded := recorder.Events()
	require.Len(t, recorded, 2)
	assert.Equal(t, events.OutcomeExact, recorded[0].(events.CalculationEvent).Outcome)
	assert.Equal(t, events.OutcomeError, recorded[1].(events.CalculationEvent).Outcome)
}

func TestProbabilityService_ConditionalAndBayes(t *testing.T) {
	ctx := context.Background()
	service := NewProbabilityService(random.New(1), nil)

	cond, err := service.Conditional(ctx, 0.12, 0.4, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, cond.PAGivenB, 1e-9)
	assert.True(t, cond.Independent)

	bayes, err := service.Bayes(ctx, []float64{0.5, 0.5}, []float64{0.2, 0.6})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, bayes.Posteriors[0], 1e-9)
	assert.InDelta(t, 0.75, bayes.Posteriors[1], 1e-9)

	_, err = service.Bayes(ctx, []float64{0.5}, []float64{0.2, 0.6})
	assert.ErrorIs(t, err, probability.ErrMismatchedLengths)

	urn := service.UrnExample(ctx)
	assert.Len(t, urn.Posteriors, 3)
}

func TestProbabilityService_MedicalTest(t *testing.T) {
	service := NewProbabilityService(random.New(1), nil)

	res, err := service.MedicalTest(context.Background(), 0.95, 0.90, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0.0876, res.SickGivenPositive, 1e-3)
}

func TestProbabilityService_ContingencyPicksExample(t *testing.T) {
	src := &testhelpers.SequenceSource{Ints: []int{1}}
	service := NewProbabilityService(src, nil)

	table, err := service.Contingency(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, probability.ExampleTables()[1], table.Counts)

	table, err = service.Contingency(context.Background(), [][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 10, table.Total)

	_, err = service.Contingency(context.Background(), [][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, probability.ErrRaggedTable)
}

func TestProbabilityService_Sets(t *testing.T) {
	service := NewProbabilityService(random.New(1), nil)

	r := service.Sets(context.Background(), []string{"1", "2", "3"}, []string{"3", "4"}, nil)
	assert.Equal(t, []string{"1", "2", "3", "4"}, r.Union.Items())
	assert.Equal(t, []string{"3"}, r.Intersection.Items())
}
