package counting

import (
	"fmt"
	"strings"

	"probtutor/domain/random"
)

// DefaultMaxPaths caps the example paths returned by LatticePaths.
const DefaultMaxPaths = 10

// Moves used in lattice path examples.
const (
	MoveRight = 'R'
	MoveUp    = 'U'
)

// PathsResult counts the monotone grid paths from (0,0) to (x,y).
type PathsResult struct {
	X, Y     int
	Formula  string
	Total    Count
	Examples []string
}

// LatticePaths counts paths of x right moves and y up moves, C(x+y, x), and
// draws up to maxExamples distinct random example paths.
func LatticePaths(src random.Source, x, y, maxExamples int) PathsResult {
	res := PathsResult{X: x, Y: y}
	if x < 0 || y < 0 {
		res.Total = NotDefined()
		return res
	}
	if maxExamples <= 0 {
		maxExamples = DefaultMaxPaths
	}

	res.Formula = fmt.Sprintf("C(%d+%d, %d) = C(%d, %d)", x, y, x, x+y, x)
	res.Total = Combinations(x+y, x)

	want := maxExamples
	if res.Total.IsExact() && res.Total.Value < int64(want) {
		want = int(res.Total.Value)
	}

	examples := newExampleSet(want)
	for attempt := 0; !examples.full() && attempt < want*paddingAttemptsFactor; attempt++ {
		examples.add(randomPath(src, x, y))
	}
	res.Examples = examples.order
	return res
}

// randomPath picks each move with the probability of its remaining share,
// which makes every path equally likely.
func randomPath(src random.Source, x, y int) string {
	var b strings.Builder
	b.Grow(x + y)
	for x > 0 || y > 0 {
		if x > 0 && (y == 0 || src.Intn(x+y) < x) {
			b.WriteRune(MoveRight)
			x--
		} else {
			b.WriteRune(MoveUp)
			y--
		}
	}
	return b.String()
}
