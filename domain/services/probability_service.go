package services

import (
	"context"
	"time"

	"probtutor/domain/interfaces"
	"probtutor/domain/probability"
	"probtutor/domain/random"
	"probtutor/domain/sets"
	"probtutor/events"
)

type probabilityService struct {
	src            random.Source
	eventPublisher events.Publisher
}

// NewProbabilityService creates a new probability service
func NewProbabilityService(src random.Source, eventPublisher events.Publisher) interfaces.ProbabilityService {
	return &probabilityService{
		src:            src,
		eventPublisher: eventPublisher,
	}
}

func (s *probabilityService) Basic(ctx context.Context, favorable, total int) (probability.BasicResult, error) {
	start := time.Now()
	res, err := probability.Basic(favorable, total)
	emitCalculation(ctx, s.eventPublisher, "basic_probability", errOutcome(err), 0, start)
	return res, err
}

func (s *probabilityService) Conditional(ctx context.Context, pAB, pA, pB float64) (probability.ConditionalResult, error) {
	start := time.Now()
	res, err := probability.Conditional(pAB, pA, pB)
	emitCalculation(ctx, s.eventPublisher, "conditional_probability", errOutcome(err), 0, start)
	return res, err
}

func (s *probabilityService) Bayes(ctx context.Context, priors, likelihoods []float64) (probability.BayesResult, error) {
	start := time.Now()
	res, err := probability.Bayes(priors, likelihoods)
	emitCalculation(ctx, s.eventPublisher, "bayes", errOutcome(err), 0, start)
	return res, err
}

func (s *probabilityService) MedicalTest(ctx context.Context, sensitivity, specificity, prevalence float64) (probability.MedicalTestResult, error) {
	start := time.Now()
	res, err := probability.MedicalTest(sensitivity, specificity, prevalence)
	emitCalculation(ctx, s.eventPublisher, "medical_test", errOutcome(err), 0, start)
	return res, err
}

func (s *probabilityService) UrnExample(ctx context.Context) probability.BayesResult {
	start := time.Now()
	res := probability.UrnExample()
	emitCalculation(ctx, s.eventPublisher, "bayes_urn", events.OutcomeExact, 0, start)
	return res
}

func (s *probabilityService) Contingency(ctx context.Context, counts [][]int) (*probability.ContingencyTable, error) {
	start := time.Now()
	if len(counts) == 0 {
		examples := probability.ExampleTables()
		counts = examples[s.src.Intn(len(examples))]
	}
	table, err := probability.NewContingencyTable(counts)
	emitCalculation(ctx, s.eventPublisher, "contingency", errOutcome(err), 0, start)
	return table, err
}

func (s *probabilityService) Sets(ctx context.Context, a, b, universe []string) sets.Report {
	start := time.Now()
	r := sets.Calculate(a, b, universe)
	emitCalculation(ctx, s.eventPublisher, "sets", events.OutcomeExact, 0, start)
	return r
}
