package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBayes_PosteriorsSumToOne(t *testing.T) {
	res, err := Bayes([]float64{0.5, 0.3, 0.2}, []float64{0.1, 0.6, 0.9})
	require.NoError(t, err)

	assert.InDelta(t, 0.05+0.18+0.18, res.Evidence, 1e-12)
	sum := 0.0
	for _, p := range res.Posteriors {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.18/0.41, res.Posteriors[1], 1e-12)
}

func TestBayes_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		priors      []float64
		likelihoods []float64
		err         error
	}{
		{"no hypotheses", nil, nil, ErrNoHypotheses},
		{"length mismatch", []float64{0.5, 0.5}, []float64{0.5}, ErrMismatchedLengths},
		{"priors do not sum to one", []float64{0.5, 0.4}, []float64{0.5, 0.5}, ErrPriorsSum},
		{"zero evidence", []float64{0.5, 0.5}, []float64{0, 0}, ErrZeroEvidence},
		{"likelihood out of range", []float64{1}, []float64{1.5}, ErrInvalidProbability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bayes(tt.priors, tt.likelihoods)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBayes_PriorSumTolerance(t *testing.T) {
	_, err := Bayes([]float64{0.33, 0.33, 0.3395}, []float64{0.5, 0.5, 0.5})
	assert.NoError(t, err)
}

func TestMedicalTest(t *testing.T) {
	res, err := MedicalTest(0.95, 0.90, 0.01)
	require.NoError(t, err)

	assert.InDelta(t, 0.1085, res.PositiveRate, 1e-9)
	assert.InDelta(t, 0.0095/0.1085, res.SickGivenPositive, 1e-9)
	assert.InDelta(t, 1-0.0095/0.1085, res.HealthyGivenPositive(), 1e-9)
	assert.InDelta(t, 0.10, res.FalsePositiveRate, 1e-12)
}

func TestUrnExample(t *testing.T) {
	res := UrnExample()

	assert.InDelta(t, 0.4806, res.Evidence, 1e-4)
	require.Len(t, res.Posteriors, 3)
	assert.InDelta(t, 0.2601, res.Posteriors[0], 1e-4)
	assert.InDelta(t, 0.4624, res.Posteriors[1], 1e-4)
	assert.InDelta(t, 0.2775, res.Posteriors[2], 1e-4)
}
