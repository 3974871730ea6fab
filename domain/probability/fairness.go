package probability

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrCategoryMismatch = errors.New("observed counts and expected probabilities differ in length")
	ErrTooFewCategories = errors.New("at least two categories are required")
)

// chiSquared95 holds the 95% critical values of the chi-squared
// distribution for 1..12 degrees of freedom.
var chiSquared95 = [...]float64{
	3.841, 5.991, 7.815, 9.488, 11.070, 12.592,
	14.067, 15.507, 16.919, 18.307, 19.675, 21.026,
}

// CriticalValue95 returns the chi-squared value a fair source stays below
// 95% of the time. Past the table it uses the Wilson-Hilferty
// approximation.
func CriticalValue95(df int) float64 {
	if df <= 0 {
		return 0
	}
	if df <= len(chiSquared95) {
		return chiSquared95[df-1]
	}
	const z = 1.6449
	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z*math.Sqrt(h), 3)
}

// FairnessReport is a chi-squared goodness-of-fit test of observed counts
// against expected probabilities.
type FairnessReport struct {
	Observed         []int
	Expected         []float64
	ChiSquared       float64
	DegreesOfFreedom int
	Critical         float64
}

// Fair reports whether the observed counts are consistent with the expected
// distribution at the 95% level.
func (r FairnessReport) Fair() bool {
	return r.ChiSquared < r.Critical
}

// AnalyzeFairness compares observed counts with expected probabilities.
// Categories with zero expected probability are skipped.
func AnalyzeFairness(observed []int, probabilities []float64) (FairnessReport, error) {
	if len(observed) != len(probabilities) {
		return FairnessReport{}, fmt.Errorf("%d vs %d: %w", len(observed), len(probabilities), ErrCategoryMismatch)
	}
	if len(observed) < 2 {
		return FairnessReport{}, ErrTooFewCategories
	}

	total := 0
	for _, o := range observed {
		if o < 0 {
			return FairnessReport{}, ErrNegativeCount
		}
		total += o
	}
	if total == 0 {
		return FairnessReport{}, ErrNoTrials
	}

	report := FairnessReport{
		Observed: append([]int(nil), observed...),
		Expected: make([]float64, len(observed)),
	}
	categories := 0
	for i, p := range probabilities {
		if err := checkProbability(fmt.Sprintf("p[%d]", i), p); err != nil {
			return FairnessReport{}, err
		}
		expected := p * float64(total)
		report.Expected[i] = expected
		if expected == 0 {
			continue
		}
		categories++
		diff := float64(observed[i]) - expected
		report.ChiSquared += diff * diff / expected
	}

	report.DegreesOfFreedom = categories - 1
	report.Critical = CriticalValue95(report.DegreesOfFreedom)
	return report, nil
}

// Uniform returns n equal probabilities.
func Uniform(n int) []float64 {
	p := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	return p
}
