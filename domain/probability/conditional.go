package probability

import (
	"fmt"
	"math"
)

// ConditionalResult holds both conditional probabilities derived from
// P(A∩B), P(A) and P(B).
type ConditionalResult struct {
	PAB, PA, PB float64
	PAGivenB    float64
	PBGivenA    float64
	Independent bool
}

// Conditional computes P(A|B) = P(A∩B)/P(B) and P(B|A) = P(A∩B)/P(A). The
// events are reported independent when P(A|B) is within Tolerance of P(A).
func Conditional(pAB, pA, pB float64) (ConditionalResult, error) {
	inputs := []struct {
		name string
		p    float64
	}{{"P(A∩B)", pAB}, {"P(A)", pA}, {"P(B)", pB}}
	for _, in := range inputs {
		if err := checkProbability(in.name, in.p); err != nil {
			return ConditionalResult{}, err
		}
	}
	if pA == 0 || pB == 0 {
		return ConditionalResult{}, ErrZeroCondition
	}
	if pAB > math.Min(pA, pB)+1e-12 {
		return ConditionalResult{}, fmt.Errorf("P(A∩B)=%g: %w", pAB, ErrIntersectionTooBig)
	}

	res := ConditionalResult{
		PAB:      pAB,
		PA:       pA,
		PB:       pB,
		PAGivenB: pAB / pB,
		PBGivenA: pAB / pA,
	}
	res.Independent = math.Abs(res.PAGivenB-pA) < Tolerance
	return res, nil
}
