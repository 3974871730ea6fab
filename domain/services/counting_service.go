package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"probtutor/config"
	"probtutor/domain/counting"
	"probtutor/domain/interfaces"
	"probtutor/domain/random"
	"probtutor/events"
)

var (
	ErrUnknownSelection = errors.New("selection must be a permutation or a combination")
	ErrInputTooLarge    = errors.New("input too large")
)

type countingService struct {
	src            random.Source
	eventPublisher events.Publisher
}

// NewCountingService creates a new counting service
func NewCountingService(src random.Source, eventPublisher events.Publisher) interfaces.CountingService {
	return &countingService{
		src:            src,
		eventPublisher: eventPublisher,
	}
}

func (s *countingService) count(ctx context.Context, op string, fn func() counting.Count) counting.Count {
	start := time.Now()
	c := fn()
	emitCalculation(ctx, s.eventPublisher, op, outcome(c), 0, start)
	return c
}

func (s *countingService) Factorial(ctx context.Context, n int) counting.Count {
	return s.count(ctx, "factorial", func() counting.Count { return counting.Factorial(n) })
}

func (s *countingService) Permutations(ctx context.Context, n, k int) counting.Count {
	return s.count(ctx, "permutations", func() counting.Count { return counting.Permutations(n, k) })
}

func (s *countingService) Combinations(ctx context.Context, n, k int) counting.Count {
	return s.count(ctx, "combinations", func() counting.Count { return counting.Combinations(n, k) })
}

func (s *countingService) Variations(ctx context.Context, n, r int) counting.Count {
	return s.count(ctx, "variations", func() counting.Count { return counting.VariationsWithRepetition(n, r) })
}

func (s *countingService) CombinationsWithRepetition(ctx context.Context, n, r int) counting.Count {
	return s.count(ctx, "combinations_repetition", func() counting.Count { return counting.CombinationsWithRepetition(n, r) })
}

func (s *countingService) Multiset(ctx context.Context, n int, reps []int) counting.Count {
	return s.count(ctx, "multiset", func() counting.Count { return counting.MultisetPermutations(n, reps) })
}

func (s *countingService) Stages(ctx context.Context, options []int) counting.Count {
	return s.count(ctx, "stages", func() counting.Count { return counting.FundamentalPrinciple(options) })
}

func (s *countingService) Pascal(ctx context.Context, rows, k int) (*counting.Triangle, counting.Highlight, error) {
	start := time.Now()
	limit := config.Get().MaxPascalRows
	if rows > limit {
		emitCalculation(ctx, s.eventPublisher, "pascal", events.OutcomeError, 0, start)
		return nil, counting.Highlight{}, fmt.Errorf("%w: got %d, this server allows up to %d", counting.ErrRowOutOfRange, rows, limit)
	}

	tri, err := counting.NewTriangle(rows)
	if err != nil {
		emitCalculation(ctx, s.eventPublisher, "pascal", events.OutcomeError, 0, start)
		return nil, counting.Highlight{}, err
	}
	h := tri.Highlight(k)
	emitCalculation(ctx, s.eventPublisher, "pascal", events.OutcomeExact, 0, start)
	return tri, h, nil
}

func (s *countingService) Enumerate(ctx context.Context, kind counting.Kind, elements []string, k int) (counting.Result, error) {
	start := time.Now()
	e := counting.NewEnumerator(s.src, config.Get().MaxExamples)

	var res counting.Result
	switch kind {
	case counting.KindPermutation:
		res = e.Permutations(elements, k)
	case counting.KindCombination:
		res = e.Combinations(elements, k)
	default:
		return counting.Result{}, fmt.Errorf("%q: %w", kind, ErrUnknownSelection)
	}

	emitCalculation(ctx, s.eventPublisher, "enumerate_"+string(kind), outcome(res.Total), len(res.Examples), start)
	return res, nil
}

func (s *countingService) DecisionTree(ctx context.Context, elements []string, depth int) counting.DecisionTreeResult {
	start := time.Now()
	res := counting.DecisionTree(elements, depth, config.Get().MaxTreeLeaves)
	emitCalculation(ctx, s.eventPublisher, "decision_tree", outcome(res.Total), len(res.Paths), start)
	return res
}

func (s *countingService) LatticePaths(ctx context.Context, x, y int) (counting.PathsResult, error) {
	start := time.Now()
	if err := checkInput("grid size", x, y); err != nil {
		emitCalculation(ctx, s.eventPublisher, "lattice_paths", events.OutcomeError, 0, start)
		return counting.PathsResult{}, err
	}

	res := counting.LatticePaths(s.src, x, y, counting.DefaultMaxPaths)
	emitCalculation(ctx, s.eventPublisher, "lattice_paths", outcome(res.Total), len(res.Examples), start)
	return res, nil
}

func (s *countingService) TeamSelections(ctx context.Context, req interfaces.TeamRequest) (counting.TeamSelectionResult, counting.Count, error) {
	start := time.Now()
	if err := checkInput("pool size", req.Experienced, req.Novices); err != nil {
		emitCalculation(ctx, s.eventPublisher, "team_selections", events.OutcomeError, 0, start)
		return counting.TeamSelectionResult{}, counting.Count{}, err
	}

	direct := counting.TeamSelections(req.Experienced, req.Novices, req.Size, req.MinExperienced, req.MinNovices)
	complement := counting.TeamSelectionsByComplement(req.Experienced, req.Novices, req.Size, req.MinExperienced, req.MinNovices)
	emitCalculation(ctx, s.eventPublisher, "team_selections", outcome(direct.Total), len(direct.Cases), start)
	return direct, complement, nil
}

// checkInput rejects a pair whose sum exceeds MaxCountInput. Negative values
// pass through; the domain reports them as undefined.
func checkInput(what string, a, b int) error {
	limit := config.Get().MaxCountInput
	if a > limit || b > limit || a+b > limit {
		return fmt.Errorf("%w: %s %d + %d, limit is %d", ErrInputTooLarge, what, a, b, limit)
	}
	return nil
}
