package probability

import (
	"fmt"

	"probtutor/domain/random"
)

// BernoulliBuckets is the number of equal-width bins the uniform draws
// behind a Bernoulli simulation are sorted into.
const BernoulliBuckets = 10

// BernoulliStats summarises repeated trials of an event with probability P.
// Each trial draws u uniformly from [0,1) and succeeds when u < P.
type BernoulliStats struct {
	P         float64
	Trials    int
	Successes int
	Buckets   [BernoulliBuckets]int
}

// Rate is the observed success frequency.
func (s BernoulliStats) Rate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Trials)
}

// Deviation is Rate - P.
func (s BernoulliStats) Deviation() float64 {
	return s.Rate() - s.P
}

// Uniformity tests whether the draws spread evenly over the buckets.
func (s BernoulliStats) Uniformity() (FairnessReport, error) {
	return AnalyzeFairness(s.Buckets[:], Uniform(BernoulliBuckets))
}

// SimulateBernoulli runs trials of an event with probability p.
func SimulateBernoulli(src random.Source, p float64, trials int) (BernoulliStats, error) {
	if err := checkProbability("p", p); err != nil {
		return BernoulliStats{}, err
	}
	if trials <= 0 {
		return BernoulliStats{}, ErrNoTrials
	}

	stats := BernoulliStats{P: p, Trials: trials}
	for i := 0; i < trials; i++ {
		u := src.Float64()
		if u < p {
			stats.Successes++
		}
		stats.Buckets[min(int(u*BernoulliBuckets), BernoulliBuckets-1)]++
	}
	return stats, nil
}

// Bet is a wager of Stake that pays Payout with probability P and loses
// the stake otherwise.
type Bet struct {
	P      float64
	Stake  float64
	Payout float64
}

// FairBet returns the bet whose payout makes the expected value zero:
// stake·(1-p)/p. p must be strictly between 0 and 1.
func FairBet(p, stake float64) (Bet, error) {
	if p <= 0 || p >= 1 {
		return Bet{}, fmt.Errorf("p %g: %w (want 0 < p < 1)", p, ErrInvalidProbability)
	}
	return Bet{P: p, Stake: stake, Payout: stake * (1 - p) / p}, nil
}

// ExpectedValue is P·Payout - (1-P)·Stake.
func (b Bet) ExpectedValue() float64 {
	return b.P*b.Payout - (1-b.P)*b.Stake
}
