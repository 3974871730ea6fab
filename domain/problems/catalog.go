// Package problems holds the worked counting problems and the random
// problem generator.
package problems

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"probtutor/domain/counting"
)

//go:embed catalog/problems.yaml
var embeddedCatalog []byte

var (
	ErrUnknownOp         = errors.New("unknown calculation")
	ErrBadArgs           = errors.New("wrong number of arguments")
	ErrUnknownSolution   = errors.New("unknown solution formula")
	ErrUnknownKind       = errors.New("unknown problem kind")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrAnswerMismatch    = errors.New("stated answer does not match the calculation")
)

// Step is one factor of a worked problem's calculation.
type Step struct {
	Op   string `yaml:"op"`
	Args []int  `yaml:"args"`
}

// WorkedExample is a problem shipped with its full solution.
type WorkedExample struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Statement string   `yaml:"statement"`
	Kind      string   `yaml:"kind"`
	Steps     []string `yaml:"steps"`
	Answer    int64    `yaml:"answer"`
	Calc      []Step   `yaml:"calc"`
}

// Compute multiplies the results of every calculation step.
func (w WorkedExample) Compute() (counting.Count, error) {
	result := counting.Of(1)
	for _, s := range w.Calc {
		c, err := s.Eval()
		if err != nil {
			return counting.Count{}, fmt.Errorf("%s: %w", w.ID, err)
		}
		result = result.Mul(c)
	}
	return result, nil
}

// Eval runs the counting function named by Op.
func (s Step) Eval() (counting.Count, error) {
	want := func(n int) error {
		if len(s.Args) != n {
			return fmt.Errorf("%s takes %d, got %d: %w", s.Op, n, len(s.Args), ErrBadArgs)
		}
		return nil
	}

	switch s.Op {
	case "factorial":
		if err := want(1); err != nil {
			return counting.Count{}, err
		}
		return counting.Factorial(s.Args[0]), nil
	case "permutations":
		if err := want(2); err != nil {
			return counting.Count{}, err
		}
		return counting.Permutations(s.Args[0], s.Args[1]), nil
	case "combinations":
		if err := want(2); err != nil {
			return counting.Count{}, err
		}
		return counting.Combinations(s.Args[0], s.Args[1]), nil
	case "variations_repetition":
		if err := want(2); err != nil {
			return counting.Count{}, err
		}
		return counting.VariationsWithRepetition(s.Args[0], s.Args[1]), nil
	case "combinations_repetition":
		if err := want(2); err != nil {
			return counting.Count{}, err
		}
		return counting.CombinationsWithRepetition(s.Args[0], s.Args[1]), nil
	case "multiset":
		if len(s.Args) < 2 {
			return counting.Count{}, fmt.Errorf("%s: %w", s.Op, ErrBadArgs)
		}
		return counting.MultisetPermutations(s.Args[0], s.Args[1:]), nil
	case "fundamental":
		return counting.FundamentalPrinciple(s.Args), nil
	case "team":
		if err := want(5); err != nil {
			return counting.Count{}, err
		}
		a := s.Args
		return counting.TeamSelections(a[0], a[1], a[2], a[3], a[4]).Total, nil
	default:
		return counting.Count{}, fmt.Errorf("%q: %w", s.Op, ErrUnknownOp)
	}
}

// Template is a generator blueprint. Text contains {n} and {r}
// placeholders.
type Template struct {
	Kind       string `yaml:"kind"`
	Difficulty string `yaml:"difficulty"`
	Text       string `yaml:"text"`
	Hint       string `yaml:"hint"`
	Solution   string `yaml:"solution"`

	// MaxR caps r for templates whose r draws from a fixed pool.
	MaxR int `yaml:"max_r"`
}

// Catalog is the parsed problem file.
type Catalog struct {
	Worked    []WorkedExample `yaml:"worked"`
	Templates []Template      `yaml:"templates"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// MustLoad is Load for package initialisation; the embedded file is covered
// by tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog.
func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse problem catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for _, w := range c.Worked {
		got, err := w.Compute()
		if err != nil {
			return err
		}
		if got != counting.Of(w.Answer) {
			return fmt.Errorf("%s: computed %s, stated %d: %w", w.ID, got, w.Answer, ErrAnswerMismatch)
		}
	}
	for i, t := range c.Templates {
		if _, ok := solutions[t.Solution]; !ok {
			return fmt.Errorf("template %d %q: %w", i, t.Solution, ErrUnknownSolution)
		}
		if !validKind(t.Kind) {
			return fmt.Errorf("template %d %q: %w", i, t.Kind, ErrUnknownKind)
		}
		if !validDifficulty(t.Difficulty) {
			return fmt.Errorf("template %d %q: %w", i, t.Difficulty, ErrUnknownDifficulty)
		}
	}
	return nil
}

// WorkedByID looks up a worked problem.
func (c *Catalog) WorkedByID(id string) (WorkedExample, bool) {
	for _, w := range c.Worked {
		if w.ID == id {
			return w, true
		}
	}
	return WorkedExample{}, false
}
