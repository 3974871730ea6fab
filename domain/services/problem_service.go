package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"probtutor/domain/counting"
	"probtutor/domain/interfaces"
	"probtutor/domain/problems"
	"probtutor/domain/random"
	"probtutor/events"
)

var ErrUnknownProblem = errors.New("no worked problem with that id")

type problemService struct {
	catalog        *problems.Catalog
	generator      *problems.Generator
	eventPublisher events.Publisher
}

// NewProblemService creates a problem service over catalog
func NewProblemService(src random.Source, catalog *problems.Catalog, eventPublisher events.Publisher) interfaces.ProblemService {
	return &problemService{
		catalog:        catalog,
		generator:      problems.NewGenerator(src, catalog),
		eventPublisher: eventPublisher,
	}
}

func (s *problemService) Generate(ctx context.Context, kind, difficulty string) (problems.Problem, error) {
	start := time.Now()
	p, err := s.generator.Generate(kind, difficulty)
	if err != nil {
		emitCalculation(ctx, s.eventPublisher, "generate_problem", events.OutcomeError, 0, start)
		return problems.Problem{}, err
	}
	emitCalculation(ctx, s.eventPublisher, "generate_problem", outcome(p.Answer), 0, start)
	return p, nil
}

func (s *problemService) Worked(ctx context.Context, id string) (problems.WorkedExample, counting.Count, error) {
	start := time.Now()
	w, ok := s.catalog.WorkedByID(id)
	if !ok {
		emitCalculation(ctx, s.eventPublisher, "worked_problem", events.OutcomeError, 0, start)
		return problems.WorkedExample{}, counting.Count{}, fmt.Errorf("%q: %w", id, ErrUnknownProblem)
	}
	answer, err := w.Compute()
	if err != nil {
		emitCalculation(ctx, s.eventPublisher, "worked_problem", events.OutcomeError, 0, start)
		return problems.WorkedExample{}, counting.Count{}, err
	}
	emitCalculation(ctx, s.eventPublisher, "worked_problem", outcome(answer), 0, start)
	return w, answer, nil
}

func (s *problemService) ListWorked(ctx context.Context) []problems.WorkedExample {
	out := make([]problems.WorkedExample, len(s.catalog.Worked))
	copy(out, s.catalog.Worked)
	return out
}
