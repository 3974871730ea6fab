package probability

import (
	"fmt"
	"math"
)

// BayesResult holds the evidence probability and one posterior per
// hypothesis.
type BayesResult struct {
	Priors      []float64
	Likelihoods []float64
	Evidence    float64
	Posteriors  []float64
}

// Bayes applies the law of total probability and Bayes' theorem:
//
//	P(E)   = Σ P(Hi)·P(E|Hi)
//	P(Hi|E) = P(Hi)·P(E|Hi) / P(E)
func Bayes(priors, likelihoods []float64) (BayesResult, error) {
	if len(priors) == 0 {
		return BayesResult{}, ErrNoHypotheses
	}
	if len(priors) != len(likelihoods) {
		return BayesResult{}, fmt.Errorf("%d priors, %d likelihoods: %w", len(priors), len(likelihoods), ErrMismatchedLengths)
	}

	sum := 0.0
	for i := range priors {
		if err := checkProbability(fmt.Sprintf("P(H%d)", i+1), priors[i]); err != nil {
			return BayesResult{}, err
		}
		if err := checkProbability(fmt.Sprintf("P(E|H%d)", i+1), likelihoods[i]); err != nil {
			return BayesResult{}, err
		}
		sum += priors[i]
	}
	if math.Abs(sum-1) > Tolerance {
		return BayesResult{}, fmt.Errorf("sum=%.4f: %w", sum, ErrPriorsSum)
	}

	evidence := 0.0
	for i := range priors {
		evidence += priors[i] * likelihoods[i]
	}
	if evidence == 0 {
		return BayesResult{}, ErrZeroEvidence
	}

	posteriors := make([]float64, len(priors))
	for i := range priors {
		posteriors[i] = priors[i] * likelihoods[i] / evidence
	}

	return BayesResult{
		Priors:      append([]float64(nil), priors...),
		Likelihoods: append([]float64(nil), likelihoods...),
		Evidence:    evidence,
		Posteriors:  posteriors,
	}, nil
}

// MedicalTestResult is the diagnostic-test reading of Bayes' theorem.
type MedicalTestResult struct {
	Sensitivity       float64
	Specificity       float64
	Prevalence        float64
	FalsePositiveRate float64
	PositiveRate      float64
	SickGivenPositive float64
}

// HealthyGivenPositive is 1 - P(sick|+).
func (r MedicalTestResult) HealthyGivenPositive() float64 {
	return 1 - r.SickGivenPositive
}

// MedicalTest computes P(sick | positive test) from the test's sensitivity
// and specificity and the prevalence of the disease, all in [0,1].
func MedicalTest(sensitivity, specificity, prevalence float64) (MedicalTestResult, error) {
	res, err := Bayes(
		[]float64{prevalence, 1 - prevalence},
		[]float64{sensitivity, 1 - specificity},
	)
	if err != nil {
		return MedicalTestResult{}, fmt.Errorf("medical test: %w", err)
	}
	return MedicalTestResult{
		Sensitivity:       sensitivity,
		Specificity:       specificity,
		Prevalence:        prevalence,
		FalsePositiveRate: 1 - specificity,
		PositiveRate:      res.Evidence,
		SickGivenPositive: res.Posteriors[0],
	}, nil
}

// UrnExample solves the three-urn problem: an urn is chosen uniformly and a
// red ball is drawn from it. Urn A has 3 red of 8, B 2 of 3, C 2 of 5.
func UrnExample() BayesResult {
	res, err := Bayes(
		[]float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
		[]float64{3.0 / 8, 2.0 / 3, 2.0 / 5},
	)
	if err != nil {
		panic(err)
	}
	return res
}
