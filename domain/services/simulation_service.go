package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"probtutor/config"
	"probtutor/domain/interfaces"
	"probtutor/domain/probability"
	"probtutor/domain/random"
	"probtutor/events"
)

var ErrTooManyTrials = errors.New("too many trials")

type simulationService struct {
	src            random.Source
	eventPublisher events.Publisher
}

// NewSimulationService creates a new simulation service. src must be safe
// for concurrent use when the service is shared between handlers.
func NewSimulationService(src random.Source, eventPublisher events.Publisher) interfaces.SimulationService {
	return &simulationService{
		src:            src,
		eventPublisher: eventPublisher,
	}
}

func (s *simulationService) checkTrials(trials int) error {
	if trials <= 0 {
		return probability.ErrNoTrials
	}
	if limit := config.Get().MaxSimulations; trials > limit {
		return fmt.Errorf("%w: %d requested, limit is %d", ErrTooManyTrials, trials, limit)
	}
	return nil
}

func (s *simulationService) finish(ctx context.Context, kind string, trials int, start time.Time) {
	d := time.Since(start)
	log.WithFields(log.Fields{
		"kind":     kind,
		"trials":   trials,
		"duration": d,
	}).Debug("Simulation completed")

	if s.eventPublisher == nil {
		return
	}
	s.eventPublisher.Emit(ctx, events.SimulationEvent{
		Kind:     kind,
		Trials:   trials,
		Duration: d,
	})
}

func (s *simulationService) FlipCoins(ctx context.Context, times int, tally probability.CoinTally) (probability.CoinSide, probability.CoinTally, error) {
	if err := s.checkTrials(times); err != nil {
		return "", tally, err
	}
	start := time.Now()
	var last probability.CoinSide
	for i := 0; i < times; i++ {
		last, tally = probability.FlipCoin(s.src, tally)
	}
	s.finish(ctx, "coin", times, start)
	return last, tally, nil
}

func (s *simulationService) RollDice(ctx context.Context, times int, tally probability.DiceTally) (int, probability.DiceTally, probability.FairnessReport, error) {
	if err := s.checkTrials(times); err != nil {
		return 0, tally, probability.FairnessReport{}, err
	}
	start := time.Now()
	var last int
	for i := 0; i < times; i++ {
		last, tally = probability.RollDie(s.src, tally)
	}
	s.finish(ctx, "dice", times, start)

	report, err := probability.AnalyzeFairness(tally[:], probability.Uniform(len(tally)))
	if err != nil {
		return last, tally, probability.FairnessReport{}, err
	}
	return last, tally, report, nil
}

func (s *simulationService) DrawCards(ctx context.Context, times int, tally probability.CardTally) (probability.Card, probability.CardTally, error) {
	if err := s.checkTrials(times); err != nil {
		return probability.Card{}, tally, err
	}
	start := time.Now()
	var last probability.Card
	for i := 0; i < times; i++ {
		last, tally = probability.DrawCard(s.src, tally)
	}
	s.finish(ctx, "card", times, start)
	return last, tally, nil
}

func (s *simulationService) Dependency(ctx context.Context, kind probability.DependencyKind, trials int) (probability.DependencyStats, error) {
	if err := s.checkTrials(trials); err != nil {
		return probability.DependencyStats{}, err
	}
	start := time.Now()
	stats, err := probability.SimulateDependency(s.src, kind, trials)
	if err != nil {
		return probability.DependencyStats{}, err
	}
	s.finish(ctx, "dependency_"+string(kind), trials, start)
	return stats, nil
}

func (s *simulationService) Urn(ctx context.Context, trials int) (probability.UrnStats, error) {
	if err := s.checkTrials(trials); err != nil {
		return probability.UrnStats{}, err
	}
	start := time.Now()
	stats, err := probability.SimulateUrn(s.src, trials)
	if err != nil {
		return probability.UrnStats{}, err
	}
	s.finish(ctx, "urn", trials, start)
	return stats, nil
}

func (s *simulationService) Bernoulli(ctx context.Context, p float64, trials int) (probability.BernoulliStats, probability.FairnessReport, error) {
	if err := s.checkTrials(trials); err != nil {
		return probability.BernoulliStats{}, probability.FairnessReport{}, err
	}
	start := time.Now()
	stats, err := probability.SimulateBernoulli(s.src, p, trials)
	if err != nil {
		return probability.BernoulliStats{}, probability.FairnessReport{}, err
	}
	s.finish(ctx, "bernoulli", trials, start)

	report, err := stats.Uniformity()
	if err != nil {
		return stats, probability.FairnessReport{}, err
	}
	return stats, report, nil
}
