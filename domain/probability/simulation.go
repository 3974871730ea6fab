package probability

import (
	"fmt"

	"probtutor/domain/random"
)

// CoinSide is the outcome of a coin flip.
type CoinSide string

const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

// CoinTally counts flips. It is owned by the caller and passed back in on
// every flip.
type CoinTally struct {
	Heads int
	Tails int
}

func (t CoinTally) Total() int { return t.Heads + t.Tails }

// FlipCoin flips a fair coin and returns the side with the updated tally.
func FlipCoin(src random.Source, tally CoinTally) (CoinSide, CoinTally) {
	if src.Float64() < 0.5 {
		tally.Heads++
		return Heads, tally
	}
	tally.Tails++
	return Tails, tally
}

// DiceTally counts how often each face 1..6 came up. Index 0 is face 1.
type DiceTally [6]int

func (t DiceTally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// RollDie rolls a fair six-sided die.
func RollDie(src random.Source, tally DiceTally) (int, DiceTally) {
	face := src.Intn(6) + 1
	tally[face-1]++
	return face, tally
}

// Suit of a playing card.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitSymbols = [...]string{"♥", "♦", "♣", "♠"}
var suitNames = [...]string{"hearts", "diamonds", "clubs", "spades"}

func (s Suit) Symbol() string { return suitSymbols[s] }
func (s Suit) String() string { return suitNames[s] }

// CardValues in deck order.
var CardValues = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card drawn from a full deck.
type Card struct {
	Value string
	Suit  Suit
}

func (c Card) String() string { return c.Value + c.Suit.Symbol() }

// CardTally counts draws per suit, indexed by Suit.
type CardTally [4]int

func (t CardTally) Total() int {
	return t[Hearts] + t[Diamonds] + t[Clubs] + t[Spades]
}

// DrawCard draws a card with replacement from a standard 52-card deck.
func DrawCard(src random.Source, tally CardTally) (Card, CardTally) {
	suit := Suit(src.Intn(len(suitSymbols)))
	card := Card{Value: CardValues[src.Intn(len(CardValues))], Suit: suit}
	tally[suit]++
	return card, tally
}

// DependencyKind selects the relationship between simulated events A and B.
type DependencyKind string

const (
	Independent DependencyKind = "independent"
	Positive    DependencyKind = "positive"
	Negative    DependencyKind = "negative"
)

// DependencyKinds lists the supported kinds in display order.
var DependencyKinds = []DependencyKind{Independent, Positive, Negative}

// P(A) is the same for every kind; P(B) depends on whether A happened.
const dependencyPA = 0.4

var dependencyPB = map[DependencyKind]struct{ givenA, givenNotA float64 }{
	Independent: {0.3, 0.3},
	Positive:    {0.7, 0.2},
	Negative:    {0.1, 0.5},
}

// DependencyStats are the counts and relative frequencies of one run.
type DependencyStats struct {
	Kind   DependencyKind
	Trials int
	A      int
	B      int
	AB     int
}

func (s DependencyStats) PA() float64  { return float64(s.A) / float64(s.Trials) }
func (s DependencyStats) PB() float64  { return float64(s.B) / float64(s.Trials) }
func (s DependencyStats) PAB() float64 { return float64(s.AB) / float64(s.Trials) }

// PAGivenB is the observed P(A|B), 0 when B never happened.
func (s DependencyStats) PAGivenB() float64 {
	if s.B == 0 {
		return 0
	}
	return float64(s.AB) / float64(s.B)
}

// PBGivenA is the observed P(B|A), 0 when A never happened.
func (s DependencyStats) PBGivenA() float64 {
	if s.A == 0 {
		return 0
	}
	return float64(s.AB) / float64(s.A)
}

// ExpectedDependency returns the exact P(A), P(B), P(A∩B) for kind.
func ExpectedDependency(kind DependencyKind) (pA, pB, pAB float64, err error) {
	pb, ok := dependencyPB[kind]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: %w", kind, ErrUnknownDependency)
	}
	pA = dependencyPA
	pAB = pA * pb.givenA
	pB = pAB + (1-pA)*pb.givenNotA
	return pA, pB, pAB, nil
}

// SimulateDependency runs trials of the two-event experiment.
func SimulateDependency(src random.Source, kind DependencyKind, trials int) (DependencyStats, error) {
	pb, ok := dependencyPB[kind]
	if !ok {
		return DependencyStats{}, fmt.Errorf("%q: %w", kind, ErrUnknownDependency)
	}
	if trials <= 0 {
		return DependencyStats{}, ErrNoTrials
	}

	stats := DependencyStats{Kind: kind, Trials: trials}
	for i := 0; i < trials; i++ {
		a := src.Float64() < dependencyPA
		threshold := pb.givenNotA
		if a {
			threshold = pb.givenA
		}
		b := src.Float64() < threshold

		if a {
			stats.A++
		}
		if b {
			stats.B++
		}
		if a && b {
			stats.AB++
		}
	}
	return stats, nil
}

// UrnExpected is the exact P(red second | blue first) for the urn
// simulation.
const UrnExpected = 0.75

// UrnStats summarises draws of two balls without replacement from an urn
// with 3 red and 2 blue balls.
type UrnStats struct {
	Trials      int
	BlueFirst   int
	BlueThenRed int
}

// Estimate is the observed P(red second | blue first), 0 when blue never
// came first.
func (s UrnStats) Estimate() float64 {
	if s.BlueFirst == 0 {
		return 0
	}
	return float64(s.BlueThenRed) / float64(s.BlueFirst)
}

// SimulateUrn draws two balls without replacement trials times.
func SimulateUrn(src random.Source, trials int) (UrnStats, error) {
	if trials <= 0 {
		return UrnStats{}, ErrNoTrials
	}

	stats := UrnStats{Trials: trials}
	for i := 0; i < trials; i++ {
		balls := []byte{'R', 'R', 'R', 'B', 'B'}
		first := src.Intn(len(balls))
		if balls[first] != 'B' {
			continue
		}
		stats.BlueFirst++

		balls = append(balls[:first], balls[first+1:]...)
		if balls[src.Intn(len(balls))] == 'R' {
			stats.BlueThenRed++
		}
	}
	return stats, nil
}
