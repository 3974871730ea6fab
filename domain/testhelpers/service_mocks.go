package testhelpers

import (
	"context"

	"probtutor/domain/counting"
	"probtutor/domain/interfaces"
	"probtutor/domain/probability"
	"probtutor/domain/problems"
	"probtutor/domain/sets"

	"github.com/stretchr/testify/mock"
)

// MockCountingService is a mock implementation of CountingService
type MockCountingService struct {
	mock.Mock
}

func (m *MockCountingService) Factorial(ctx context.Context, n int) counting.Count {
	args := m.Called(ctx, n)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Permutations(ctx context.Context, n, k int) counting.Count {
	args := m.Called(ctx, n, k)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Combinations(ctx context.Context, n, k int) counting.Count {
	args := m.Called(ctx, n, k)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Variations(ctx context.Context, n, r int) counting.Count {
	args := m.Called(ctx, n, r)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) CombinationsWithRepetition(ctx context.Context, n, r int) counting.Count {
	args := m.Called(ctx, n, r)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Multiset(ctx context.Context, n int, reps []int) counting.Count {
	args := m.Called(ctx, n, reps)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Stages(ctx context.Context, options []int) counting.Count {
	args := m.Called(ctx, options)
	return args.Get(0).(counting.Count)
}

func (m *MockCountingService) Pascal(ctx context.Context, rows, k int) (*counting.Triangle, counting.Highlight, error) {
	args := m.Called(ctx, rows, k)
	if args.Get(0) == nil {
		return nil, counting.Highlight{}, args.Error(2)
	}
	return args.Get(0).(*counting.Triangle), args.Get(1).(counting.Highlight), args.Error(2)
}

func (m *MockCountingService) Enumerate(ctx context.Context, kind counting.Kind, elements []string, k int) (counting.Result, error) {
	args := m.Called(ctx, kind, elements, k)
	return args.Get(0).(counting.Result), args.Error(1)
}

func (m *MockCountingService) DecisionTree(ctx context.Context, elements []string, depth int) counting.DecisionTreeResult {
	args := m.Called(ctx, elements, depth)
	return args.Get(0).(counting.DecisionTreeResult)
}

func (m *MockCountingService) LatticePaths(ctx context.Context, x, y int) (counting.PathsResult, error) {
	args := m.Called(ctx, x, y)
	return args.Get(0).(counting.PathsResult), args.Error(1)
}

func (m *MockCountingService) TeamSelections(ctx context.Context, req interfaces.TeamRequest) (counting.TeamSelectionResult, counting.Count, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(counting.TeamSelectionResult), args.Get(1).(counting.Count), args.Error(2)
}

// MockProbabilityService is a mock implementation of ProbabilityService
type MockProbabilityService struct {
	mock.Mock
}

func (m *MockProbabilityService) Basic(ctx context.Context, favorable, total int) (probability.BasicResult, error) {
	args := m.Called(ctx, favorable, total)
	return args.Get(0).(probability.BasicResult), args.Error(1)
}

func (m *MockProbabilityService) Conditional(ctx context.Context, pAB, pA, pB float64) (probability.ConditionalResult, error) {
	args := m.Called(ctx, pAB, pA, pB)
	return args.Get(0).(probability.ConditionalResult), args.Error(1)
}

func (m *MockProbabilityService) Bayes(ctx context.Context, priors, likelihoods []float64) (probability.BayesResult, error) {
	args := m.Called(ctx, priors, likelihoods)
	return args.Get(0).(probability.BayesResult), args.Error(1)
}

func (m *MockProbabilityService) MedicalTest(ctx context.Context, sensitivity, specificity, prevalence float64) (probability.MedicalTestResult, error) {
	args := m.Called(ctx, sensitivity, specificity, prevalence)
	return args.Get(0).(probability.MedicalTestResult), args.Error(1)
}

func (m *MockProbabilityService) UrnExample(ctx context.Context) probability.BayesResult {
	args := m.Called(ctx)
	return args.Get(0).(probability.BayesResult)
}

func (m *MockProbabilityService) Contingency(ctx context.Context, counts [][]int) (*probability.ContingencyTable, error) {
	args := m.Called(ctx, counts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*probability.ContingencyTable), args.Error(1)
}

func (m *MockProbabilityService) Sets(ctx context.Context, a, b, universe []string) sets.Report {
	args := m.Called(ctx, a, b, universe)
	return args.Get(0).(sets.Report)
}

// MockSimulationService is a mock implementation of SimulationService
type MockSimulationService struct {
	mock.Mock
}

func (m *MockSimulationService) FlipCoins(ctx context.Context, times int, tally probability.CoinTally) (probability.CoinSide, probability.CoinTally, error) {
	args := m.Called(ctx, times, tally)
	return args.Get(0).(probability.CoinSide), args.Get(1).(probability.CoinTally), args.Error(2)
}

func (m *MockSimulationService) RollDice(ctx context.Context, times int, tally probability.DiceTally) (int, probability.DiceTally, probability.FairnessReport, error) {
	args := m.Called(ctx, times, tally)
	return args.Int(0), args.Get(1).(probability.DiceTally), args.Get(2).(probability.FairnessReport), args.Error(3)
}

func (m *MockSimulationService) DrawCards(ctx context.Context, times int, tally probability.CardTally) (probability.Card, probability.CardTally, error) {
	args := m.Called(ctx, times, tally)
	return args.Get(0).(probability.Card), args.Get(1).(probability.CardTally), args.Error(2)
}

func (m *MockSimulationService) Dependency(ctx context.Context, kind probability.DependencyKind, trials int) (probability.DependencyStats, error) {
	args := m.Called(ctx, kind, trials)
	return args.Get(0).(probability.DependencyStats), args.Error(1)
}

func (m *MockSimulationService) Urn(ctx context.Context, trials int) (probability.UrnStats, error) {
	args := m.Called(ctx, trials)
	return args.Get(0).(probability.UrnStats), args.Error(1)
}

func (m *MockSimulationService) Bernoulli(ctx context.Context, p float64, trials int) (probability.BernoulliStats, probability.FairnessReport, error) {
	args := m.Called(ctx, p, trials)
	return args.Get(0).(probability.BernoulliStats), args.Get(1).(probability.FairnessReport), args.Error(2)
}

// MockProblemService is a mock implementation of ProblemService
type MockProblemService struct {
	mock.Mock
}

func (m *MockProblemService) Generate(ctx context.Context, kind, difficulty string) (problems.Problem, error) {
	args := m.Called(ctx, kind, difficulty)
	return args.Get(0).(problems.Problem), args.Error(1)
}

func (m *MockProblemService) Worked(ctx context.Context, id string) (problems.WorkedExample, counting.Count, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(problems.WorkedExample), args.Get(1).(counting.Count), args.Error(2)
}

func (m *MockProblemService) ListWorked(ctx context.Context) []problems.WorkedExample {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]problems.WorkedExample)
}

var (
	_ interfaces.CountingService    = (*MockCountingService)(nil)
	_ interfaces.ProbabilityService = (*MockProbabilityService)(nil)
	_ interfaces.SimulationService  = (*MockSimulationService)(nil)
	_ interfaces.ProblemService     = (*MockProblemService)(nil)
)
