package problems

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probtutor/domain/counting"
	"probtutor/domain/random"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Worked, 11)
	assert.NotEmpty(t, c.Templates)

	expected := map[string]int64{
		"passwords":     120,
		"committee":     792,
		"estadistica":   2494800,
		"books":         45,
		"coins":         8,
		"outfits":       12,
		"pizzas":        24,
		"podium":        60,
		"security-code": 5040,
		"grid-paths":    10,
		"team":          250,
	}
	for id, answer := range expected {
		w, ok := c.WorkedByID(id)
		require.True(t, ok, id)
		got, err := w.Compute()
		require.NoError(t, err)
		assert.Equal(t, counting.Of(answer), got, id)
	}
}

func TestParse_RejectsWrongAnswer(t *testing.T) {
	doc := `
worked:
  - id: bad
    answer: 11
    calc:
      - {op: combinations, args: [5, 2]}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrAnswerMismatch)
}

func TestParse_RejectsUnknownPieces(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"unknown op", "worked:\n  - id: x\n    answer: 1\n    calc:\n      - {op: nope, args: [1]}\n", ErrUnknownOp},
		{"bad args", "worked:\n  - id: x\n    answer: 1\n    calc:\n      - {op: combinations, args: [1]}\n", ErrBadArgs},
		{"unknown solution", "templates:\n  - {kind: combination, difficulty: easy, solution: magic}\n", ErrUnknownSolution},
		{"unknown kind", "templates:\n  - {kind: riddle, difficulty: easy, solution: factorial}\n", ErrUnknownKind},
		{"unknown difficulty", "templates:\n  - {kind: combination, difficulty: brutal, solution: factorial}\n", ErrUnknownDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGenerator_ValueRanges(t *testing.T) {
	g := NewGenerator(random.New(1), MustLoad())

	ranges := map[string][2]int{Easy: {3, 10}, Medium: {8, 17}, Hard: {10, 24}}
	for difficulty, bounds := range ranges {
		for i := 0; i < 200; i++ {
			p, err := g.Generate(KindMixed, difficulty)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.N, bounds[0])
			assert.LessOrEqual(t, p.N, bounds[1])
			assert.GreaterOrEqual(t, p.R, 1)
			assert.LessOrEqual(t, p.R, p.N)
			assert.NotContains(t, p.Text, "{n}")
			assert.NotContains(t, p.Text, "{r}")
		}
	}
}

func TestGenerator_KindFilter(t *testing.T) {
	g := NewGenerator(random.New(2), MustLoad())

	for i := 0; i < 50; i++ {
		p, err := g.Generate(KindCombination, Easy)
		require.NoError(t, err)
		assert.Equal(t, KindCombination, p.Kind)
		assert.Equal(t, counting.Combinations(p.N, p.R), p.Answer)
		assert.True(t, strings.HasPrefix(p.Formula, "C("))
	}
}

func TestGenerator_FallsBackToKind(t *testing.T) {
	g := NewGenerator(random.New(3), MustLoad())

	// No variation template is marked hard.
	p, err := g.Generate(KindVariation, Hard)
	require.NoError(t, err)
	assert.Equal(t, KindVariation, p.Kind)
	assert.Equal(t, Hard, p.Difficulty)
	assert.GreaterOrEqual(t, p.N, 10)
}

func TestGenerator_Invalid(t *testing.T) {
	g := NewGenerator(random.New(4), MustLoad())

	_, err := g.Generate("riddle", Easy)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = g.Generate(KindMixed, "brutal")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	empty := NewGenerator(random.New(4), &Catalog{})
	_, err = empty.Generate(KindPermutation, Easy)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGenerate_PlatesKeepDigitsInRange(t *testing.T) {
	g := NewGenerator(random.New(2), MustLoad())

	for i := 0; i < 200; i++ {
		p, err := g.Generate(KindPermutation, Hard)
		require.NoError(t, err)
		assert.False(t, p.Answer.IsUndefined(), p.Text)
	}
}
