package probability

import (
	"fmt"
	"math"
)

// Tolerance used when comparing probabilities for equality.
const Tolerance = 0.001

// BasicResult is the classical probability favorable/total.
type BasicResult struct {
	Favorable  int
	Total      int
	Value      float64
	Percentage float64
}

// Basic computes P(E) = favorable/total.
func Basic(favorable, total int) (BasicResult, error) {
	if total <= 0 || favorable < 0 || favorable > total {
		return BasicResult{}, fmt.Errorf("%d/%d: %w", favorable, total, ErrInvalidCases)
	}
	p := float64(favorable) / float64(total)
	return BasicResult{Favorable: favorable, Total: total, Value: p, Percentage: p * 100}, nil
}

func (r BasicResult) String() string {
	return fmt.Sprintf("P(E) = %d/%d = %.4f = %.2f%%", r.Favorable, r.Total, r.Value, r.Percentage)
}

func checkProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s=%g: %w", name, p, ErrInvalidProbability)
	}
	return nil
}
