package interfaces

import (
	"context"

	"probtutor/domain/counting"
	"probtutor/domain/probability"
	"probtutor/domain/problems"
	"probtutor/domain/sets"
)

// CountingService defines the interface for combinatorics operations
type CountingService interface {
	// Factorial returns n!
	Factorial(ctx context.Context, n int) counting.Count

	// Permutations returns P(n,k), ordered selections without repetition
	Permutations(ctx context.Context, n, k int) counting.Count

	// Combinations returns C(n,k), unordered selections without repetition
	Combinations(ctx context.Context, n, k int) counting.Count

	// Variations returns n^r, ordered selections with repetition
	Variations(ctx context.Context, n, r int) counting.Count

	// CombinationsWithRepetition returns C(n+r-1, r)
	CombinationsWithRepetition(ctx context.Context, n, r int) counting.Count

	// Multiset returns the number of arrangements of a word with repeated letters
	Multiset(ctx context.Context, n int, reps []int) counting.Count

	// Stages applies the fundamental counting principle
	Stages(ctx context.Context, options []int) counting.Count

	// Pascal builds rows 0..rows of Pascal's triangle and highlights column k of the last row
	Pascal(ctx context.Context, rows, k int) (*counting.Triangle, counting.Highlight, error)

	// Enumerate lists bounded examples of permutations or combinations of elements
	Enumerate(ctx context.Context, kind counting.Kind, elements []string, k int) (counting.Result, error)

	// DecisionTree expands ordered choices of elements to depth
	DecisionTree(ctx context.Context, elements []string, depth int) counting.DecisionTreeResult

	// LatticePaths counts right/up paths to (x, y) with example paths
	LatticePaths(ctx context.Context, x, y int) (counting.PathsResult, error)

	// TeamSelections counts restricted teams directly and by complement
	TeamSelections(ctx context.Context, req TeamRequest) (counting.TeamSelectionResult, counting.Count, error)
}

// TeamRequest describes a team selection with minimum group sizes.
type TeamRequest struct {
	Experienced    int
	Novices        int
	Size           int
	MinExperienced int
	MinNovices     int
}

// ProbabilityService defines the interface for exact probability calculations
type ProbabilityService interface {
	Basic(ctx context.Context, favorable, total int) (probability.BasicResult, error)
	Conditional(ctx context.Context, pAB, pA, pB float64) (probability.ConditionalResult, error)
	Bayes(ctx context.Context, priors, likelihoods []float64) (probability.BayesResult, error)
	MedicalTest(ctx context.Context, sensitivity, specificity, prevalence float64) (probability.MedicalTestResult, error)
	UrnExample(ctx context.Context) probability.BayesResult

	// Contingency analyses counts; an empty counts picks one of the example tables
	Contingency(ctx context.Context, counts [][]int) (*probability.ContingencyTable, error)

	Sets(ctx context.Context, a, b, universe []string) sets.Report
}

// SimulationService defines the interface for random experiments. Tallies
// are owned by the caller and returned updated.
type SimulationService interface {
	FlipCoins(ctx context.Context, times int, tally probability.CoinTally) (probability.CoinSide, probability.CoinTally, error)
	RollDice(ctx context.Context, times int, tally probability.DiceTally) (int, probability.DiceTally, probability.FairnessReport, error)
	DrawCards(ctx context.Context, times int, tally probability.CardTally) (probability.Card, probability.CardTally, error)
	Dependency(ctx context.Context, kind probability.DependencyKind, trials int) (probability.DependencyStats, error)
	Urn(ctx context.Context, trials int) (probability.UrnStats, error)

	// Bernoulli runs trials of an event with probability p and tests the
	// underlying uniform draws for evenness
	Bernoulli(ctx context.Context, p float64, trials int) (probability.BernoulliStats, probability.FairnessReport, error)
}

// ProblemService defines the interface for the problem catalog
type ProblemService interface {
	// Generate creates a random problem of kind at difficulty
	Generate(ctx context.Context, kind, difficulty string) (problems.Problem, error)

	// Worked returns a worked problem and its recomputed answer
	Worked(ctx context.Context, id string) (problems.WorkedExample, counting.Count, error)

	// ListWorked returns every worked problem in catalog order
	ListWorked(ctx context.Context) []problems.WorkedExample
}
