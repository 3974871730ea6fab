package counting

import (
	"fmt"
	"sort"
	"strings"

	"probtutor/domain/random"
)

// DefaultMaxExamples caps the number of concrete examples an Enumerator
// produces.
const DefaultMaxExamples = 20

// paddingAttemptsFactor bounds the random padding pass to
// MaxExamples*paddingAttemptsFactor draws.
const paddingAttemptsFactor = 10

// Kind names the selection a Result describes.
type Kind string

const (
	KindPermutation Kind = "permutation"
	KindCombination Kind = "combination"
)

// Result is the outcome of an enumeration request. It is built once and not
// modified afterwards.
type Result struct {
	Kind     Kind
	Formula  string
	Total    Count
	Examples []string
	// Message is set instead of examples when the request cannot produce
	// any (empty element set, zero sample size).
	Message string
}

// Enumerator produces a bounded sample of concrete permutations or
// combinations together with the exact total.
type Enumerator struct {
	src         random.Source
	maxExamples int
}

// NewEnumerator returns an Enumerator drawing randomness from src. A
// non-positive maxExamples falls back to DefaultMaxExamples.
func NewEnumerator(src random.Source, maxExamples int) *Enumerator {
	if maxExamples <= 0 {
		maxExamples = DefaultMaxExamples
	}
	return &Enumerator{src: src, maxExamples: maxExamples}
}

// MaxExamples reports the example cap.
func (e *Enumerator) MaxExamples() int {
	return e.maxExamples
}

// Permutations samples ordered k-tuples from elements. k is clamped to the
// set size.
func (e *Enumerator) Permutations(elements []string, k int) Result {
	res := Result{Kind: KindPermutation}
	if len(elements) == 0 || k <= 0 {
		res.Total = Of(0)
		res.Message = "No permutations can be generated from the given parameters."
		return res
	}

	n := len(elements)
	k = min(k, n)
	res.Formula = fmt.Sprintf("P(%d,%d) = %d!/(%d-%d)!", n, k, n, n, k)
	res.Total = Permutations(n, k)
	res.Examples = PermutationExamples(e.src, elements, k, e.maxExamples)
	return res
}

// Combinations samples k-element subsets of elements. k is clamped to the
// set size.
func (e *Enumerator) Combinations(elements []string, k int) Result {
	res := Result{Kind: KindCombination}
	if len(elements) == 0 || k <= 0 {
		res.Total = Of(0)
		res.Message = "No combinations can be generated from the given parameters."
		return res
	}

	n := len(elements)
	k = min(k, n)
	res.Formula = fmt.Sprintf("C(%d,%d) = %d!/(%d!·(%d-%d)!)", n, k, n, k, n, k)
	res.Total = Combinations(n, k)
	res.Examples = CombinationExamples(e.src, elements, k, e.maxExamples)
	return res
}

// Remaining is the number of results not shown, or Undefined when the total
// is not an exact number.
func (r Result) Remaining() Count {
	if !r.Total.IsExact() {
		return r.Total
	}
	left := r.Total.Value - int64(len(r.Examples))
	if left < 0 {
		left = 0
	}
	return Of(left)
}

// exampleSet keeps unique examples in insertion order up to a cap.
type exampleSet struct {
	seen  map[string]struct{}
	order []string
	limit int
}

func newExampleSet(limit int) *exampleSet {
	return &exampleSet{seen: make(map[string]struct{}, limit), limit: limit}
}

func (s *exampleSet) add(example string) {
	if s.full() {
		return
	}
	if _, ok := s.seen[example]; ok {
		return
	}
	s.seen[example] = struct{}{}
	s.order = append(s.order, example)
}

func (s *exampleSet) full() bool {
	return len(s.order) >= s.limit
}

// PermutationExamples returns up to maxExamples distinct ordered k-tuples of
// elements formatted as "(a, b)". The systematic pass walks the recursion
// tree with a freshly shuffled branch order at every level; when it runs out
// before the cap, random shuffles pad the sample.
func PermutationExamples(src random.Source, elements []string, k, maxExamples int) []string {
	n := len(elements)
	if k < 0 || k > n || maxExamples <= 0 {
		return []string{}
	}
	if k == 0 {
		return []string{"()"}
	}

	examples := newExampleSet(maxExamples)
	used := make([]bool, n)
	current := make([]string, 0, k)

	var walk func()
	walk = func() {
		if examples.full() {
			return
		}
		if len(current) == k {
			examples.add(formatTuple(current))
			return
		}
		for _, idx := range random.Perm(src, n) {
			if examples.full() {
				return
			}
			if used[idx] {
				continue
			}
			used[idx] = true
			current = append(current, elements[idx])
			walk()
			current = current[:len(current)-1]
			used[idx] = false
		}
	}
	walk()

	for attempt := 0; !examples.full() && attempt < maxExamples*paddingAttemptsFactor; attempt++ {
		examples.add(formatTuple(randomSample(src, elements, k)))
	}

	return examples.order
}

// CombinationExamples returns up to maxExamples distinct k-subsets of
// elements formatted as "{a, b}". Subsets are generated in lexicographic
// index order, then padded with random samples; each is sorted before
// formatting so the output does not depend on generation order.
func CombinationExamples(src random.Source, elements []string, k, maxExamples int) []string {
	n := len(elements)
	if k < 0 || k > n || maxExamples <= 0 {
		return []string{}
	}
	if k == 0 {
		return []string{"{}"}
	}

	examples := newExampleSet(maxExamples)
	indices := make([]int, k)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if examples.full() {
			return
		}
		if depth == k {
			combo := make([]string, k)
			for i, idx := range indices {
				combo[i] = elements[idx]
			}
			examples.add(formatSet(combo))
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			if examples.full() {
				return
			}
			indices[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	for attempt := 0; !examples.full() && attempt < maxExamples*paddingAttemptsFactor; attempt++ {
		examples.add(formatSet(randomSample(src, elements, k)))
	}

	return examples.order
}

// randomSample shuffles a copy of elements and keeps the first k.
func randomSample(src random.Source, elements []string, k int) []string {
	shuffled := append([]string(nil), elements...)
	random.Shuffle(src, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:k]
}

func formatTuple(items []string) string {
	return "(" + strings.Join(items, ", ") + ")"
}

func formatSet(items []string) string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ", ") + "}"
}
