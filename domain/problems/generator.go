package problems

import (
	"fmt"
	"strconv"
	"strings"

	"probtutor/domain/counting"
	"probtutor/domain/random"
)

// Problem kinds and difficulties accepted by Generate.
const (
	KindPermutation = "permutation"
	KindVariation   = "variation"
	KindCombination = "combination"
	KindMixed       = "mixed"

	Easy   = "easy"
	Medium = "medium"
	Hard   = "hard"
)

var (
	Kinds        = []string{KindPermutation, KindVariation, KindCombination, KindMixed}
	Difficulties = []string{Easy, Medium, Hard}
)

func validKind(k string) bool {
	return k == KindPermutation || k == KindVariation || k == KindCombination
}

func validDifficulty(d string) bool {
	return d == Easy || d == Medium || d == Hard
}

// solution computes a template's answer and the formula that produced it.
type solution func(n, r int) (counting.Count, string)

var solutions = map[string]solution{
	"factorial": func(n, _ int) (counting.Count, string) {
		return counting.Factorial(n), fmt.Sprintf("%d!", n)
	},
	"plates": func(n, r int) (counting.Count, string) {
		return counting.Permutations(26, n).Mul(counting.Permutations(10, r)),
			fmt.Sprintf("V(26,%d) × V(10,%d)", n, r)
	},
	"variation": func(n, r int) (counting.Count, string) {
		return counting.Permutations(n, r), fmt.Sprintf("V(%d,%d)", n, r)
	},
	"power_of_ten": func(_, r int) (counting.Count, string) {
		return counting.VariationsWithRepetition(10, r), fmt.Sprintf("10^%d", r)
	},
	"combination": func(n, r int) (counting.Count, string) {
		return counting.Combinations(n, r), fmt.Sprintf("C(%d,%d)", n, r)
	},
	"combination_repetition": func(n, r int) (counting.Count, string) {
		return counting.CombinationsWithRepetition(n, r), fmt.Sprintf("C(%d+%d-1, %d)", n, r, r)
	},
}

// Problem is a generated exercise.
type Problem struct {
	Kind       string
	Difficulty string
	Text       string
	Hint       string
	N, R       int
	Formula    string
	Answer     counting.Count
}

// Generator draws random problems from the catalog templates.
type Generator struct {
	src       random.Source
	templates []Template
}

// NewGenerator returns a Generator over catalog's templates.
func NewGenerator(src random.Source, catalog *Catalog) *Generator {
	return &Generator{src: src, templates: catalog.Templates}
}

// Generate picks a template of kind at difficulty and fills in n and r.
// When no template of the kind has that difficulty, any template of the
// kind is used; the values still follow the requested difficulty.
func (g *Generator) Generate(kind, difficulty string) (Problem, error) {
	if kind != KindMixed && !validKind(kind) {
		return Problem{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	if !validDifficulty(difficulty) {
		return Problem{}, fmt.Errorf("%q: %w", difficulty, ErrUnknownDifficulty)
	}

	var pool, matching []Template
	for _, t := range g.templates {
		if kind != KindMixed && t.Kind != kind {
			continue
		}
		pool = append(pool, t)
		if t.Difficulty == difficulty {
			matching = append(matching, t)
		}
	}
	if len(matching) > 0 {
		pool = matching
	}
	if len(pool) == 0 {
		return Problem{}, fmt.Errorf("no templates for %q: %w", kind, ErrUnknownKind)
	}

	t := pool[g.src.Intn(len(pool))]
	n, r := g.values(difficulty)
	if t.MaxR > 0 {
		r = min(r, t.MaxR)
	}
	answer, formula := solutions[t.Solution](n, r)

	text := strings.ReplaceAll(t.Text, "{n}", strconv.Itoa(n))
	text = strings.ReplaceAll(text, "{r}", strconv.Itoa(r))

	return Problem{
		Kind:       t.Kind,
		Difficulty: difficulty,
		Text:       text,
		Hint:       t.Hint,
		N:          n,
		R:          r,
		Formula:    formula,
		Answer:     answer,
	}, nil
}

// values draws n and r for a difficulty. r never exceeds n.
func (g *Generator) values(difficulty string) (n, r int) {
	switch difficulty {
	case Medium:
		n = g.src.Intn(10) + 8
		r = g.src.Intn(min(7, n)) + 2
	case Hard:
		n = g.src.Intn(15) + 10
		r = g.src.Intn(min(10, n)) + 3
	default:
		n = g.src.Intn(8) + 3
		r = g.src.Intn(min(5, n)) + 1
	}
	return n, min(r, n)
}
