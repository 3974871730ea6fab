package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"probtutor/domain/counting"
	"probtutor/domain/input"
	"probtutor/domain/interfaces"
	"probtutor/domain/utils"
	"probtutor/infrastructure/render"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Counting techniques: factorials, permutations, combinations and more",
	}
	cmd.AddCommand(
		newFactorialCmd(a),
		newPairCmd(a, "permutations", "P(n,k): ordered selections without repetition", "n", "k",
			func(c *cobra.Command, n, k int) (counting.Count, string) {
				return a.services.Counting.Permutations(c.Context(), n, k), fmt.Sprintf("P(%d,%d) = %d!/(%d-%d)!", n, k, n, n, k)
			}),
		newCombinationsCmd(a),
		newPairCmd(a, "variations", "VR(n,r) = n^r: ordered selections with repetition", "n", "r",
			func(c *cobra.Command, n, r int) (counting.Count, string) {
				return a.services.Counting.Variations(c.Context(), n, r), fmt.Sprintf("VR(%d,%d) = %d^%d", n, r, n, r)
			}),
		newMultisetCmd(a),
		newStagesCmd(a),
		newPascalCmd(a),
		newEnumerateCmd(a),
		newTreeCmd(a),
		newPathsCmd(a),
		newTeamsCmd(a),
	)
	return cmd
}

func (a *app) printCount(title, formula string, c counting.Count) {
	a.print.title(title)
	a.print.field("Formula", formula)
	a.print.answer("Result", utils.FormatCount(c))
	switch {
	case c.IsOverflow():
		a.print.note("The exact value does not fit in a 64-bit integer.")
	case c.IsUndefined():
		a.print.note("Check that the inputs are non-negative and k ≤ n.")
	}
}

func newFactorialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "n! = n × (n-1) × … × 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := intArgs(args, "n")
			if err != nil {
				return err
			}
			a.printCount("Factorial", fmt.Sprintf("%d!", v[0]), a.services.Counting.Factorial(c.Context(), v[0]))
			return nil
		},
	}
}

// newPairCmd builds a subcommand taking two integer arguments.
func newPairCmd(a *app, name, short, first, second string, run func(c *cobra.Command, x, y int) (counting.Count, string)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s %s %s", name, strings.ToUpper(first), strings.ToUpper(second)),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := intArgs(args, first, second)
			if err != nil {
				return err
			}
			result, formula := run(c, v[0], v[1])
			a.printCount(utils.Capitalize(name), formula, result)
			return nil
		},
	}
}

func newCombinationsCmd(a *app) *cobra.Command {
	var repetition bool
	cmd := &cobra.Command{
		Use:   "combinations N K",
		Short: "C(n,k): unordered selections",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := intArgs(args, "n", "k")
			if err != nil {
				return err
			}
			n, k := v[0], v[1]
			if repetition {
				a.printCount("Combinations with repetition", fmt.Sprintf("CR(%d,%d) = C(%d+%d-1, %d)", n, k, n, k, k),
					a.services.Counting.CombinationsWithRepetition(c.Context(), n, k))
				return nil
			}
			a.printCount("Combinations", fmt.Sprintf("C(%d,%d) = %d!/(%d!·(%d-%d)!)", n, k, n, k, n, k),
				a.services.Counting.Combinations(c.Context(), n, k))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&repetition, "repetition", "r", false, "allow an element to be chosen more than once")
	return cmd
}

func newMultisetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiset WORD",
		Short: "Distinct arrangements of a word with repeated letters",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			word, err := input.ParseWord(args[0])
			if err != nil {
				return err
			}

			var letters, denominator []string
			for _, l := range word.Letters {
				letters = append(letters, fmt.Sprintf("%c×%d", l.Letter, l.Count))
				if l.Count > 1 {
					denominator = append(denominator, fmt.Sprintf("%d!", l.Count))
				}
			}
			formula := fmt.Sprintf("%d!", word.Length())
			if len(denominator) > 0 {
				formula += " / (" + strings.Join(denominator, "·") + ")"
			}

			a.printCount("Arrangements of "+word.Normalized, formula,
				a.services.Counting.Multiset(c.Context(), word.Length(), word.Repeats()))
			a.print.field("Letters", strings.Join(letters, " "))
			return nil
		},
	}
}

func newStagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stages OPTIONS",
		Short: "Fundamental counting principle, e.g. stages 2,3,2",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			stages, err := input.ParseIntList("options", args[0])
			if err != nil {
				return err
			}
			parts := make([]string, len(stages))
			for i, s := range stages {
				parts[i] = fmt.Sprint(s)
			}
			a.printCount("Fundamental counting principle", strings.Join(parts, " × "),
				a.services.Counting.Stages(c.Context(), stages))
			return nil
		},
	}
}

func newPascalCmd(a *app) *cobra.Command {
	var (
		rows, k int
		png     string
	)
	cmd := &cobra.Command{
		Use:   "pascal",
		Short: "Pascal's triangle with one entry of the last row highlighted",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tri, h, err := a.services.Counting.Pascal(c.Context(), rows, k)
			if err != nil {
				return err
			}
			a.print.title(fmt.Sprintf("Pascal's triangle, rows 0-%d", tri.MaxRow))
			fmt.Fprintln(a.print.out, tri.String())
			a.print.answer("Highlight", h.Note())
			return a.writePNG(png, func() ([]byte, error) { return render.PascalTriangle(tri, h) })
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 5, "last row to build")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "column of the last row to highlight")
	cmd.Flags().StringVar(&png, "png", "", "write the triangle as a PNG image")
	return cmd
}

func newEnumerateCmd(a *app) *cobra.Command {
	var (
		kind string
		k    int
	)
	cmd := &cobra.Command{
		Use:   "enumerate ELEMENTS",
		Short: "Sample concrete permutations or combinations, e.g. enumerate A,B,C,D -k 2",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			elements, err := input.ParseLabels(args[0])
			if err != nil {
				return err
			}
			if !c.Flags().Changed("k") {
				k = len(elements)
			}
			res, err := a.services.Counting.Enumerate(c.Context(), counting.Kind(kind), elements, k)
			if err != nil {
				return err
			}

			a.printCount(utils.Capitalize(string(res.Kind))+" examples", res.Formula, res.Total)
			if res.Message != "" {
				a.print.note(res.Message)
				return nil
			}
			a.print.lines(res.Examples)
			if rest := res.Remaining(); rest.IsExact() && rest.Value > 0 {
				a.print.note(fmt.Sprintf("… and %s more", utils.FormatNumber(rest.Value)))
			} else if rest.IsOverflow() {
				a.print.note("… and too many more to count exactly")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(counting.KindCombination), "permutation or combination")
	cmd.Flags().IntVarP(&k, "k", "k", 0, "sample size (default: all elements)")
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "tree ELEMENTS",
		Short: "Decision tree of ordered choices without repetition",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			elements, err := input.ParseLabels(args[0])
			if err != nil {
				return err
			}
			if !c.Flags().Changed("depth") {
				depth = len(elements)
			}
			res := a.services.Counting.DecisionTree(c.Context(), elements, depth)

			a.print.title("Decision tree")
			if res.Root == nil {
				a.print.note(res.Message)
				return nil
			}
			fmt.Fprintln(a.print.out, res.Root.Label)
			var lines []string
			for i, child := range res.Root.Children {
				lines = treeLines(child, "", i == len(res.Root.Children)-1, lines)
			}
			for _, l := range lines {
				fmt.Fprintln(a.print.out, l)
			}
			a.print.answer("Paths", utils.FormatCount(res.Total))
			if res.Truncated {
				a.print.note(fmt.Sprintf("Only the first %d paths are drawn.", len(res.Paths)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "levels to expand (default: all elements)")
	return cmd
}

func treeLines(node *counting.TreeNode, prefix string, last bool, out []string) []string {
	branch, next := "├─ ", prefix+"│  "
	if last {
		branch, next = "└─ ", prefix+"   "
	}
	out = append(out, prefix+branch+node.Label)
	for i, child := range node.Children {
		out = treeLines(child, next, i == len(node.Children)-1, out)
	}
	return out
}

func newPathsCmd(a *app) *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Right/up grid paths from (0,0) to (x,y)",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := a.services.Counting.LatticePaths(c.Context(), x, y)
			if err != nil {
				return err
			}
			a.printCount(fmt.Sprintf("Grid paths to (%d, %d)", res.X, res.Y), res.Formula, res.Total)
			if len(res.Examples) > 0 {
				a.print.field("Examples", "")
				a.print.lines(res.Examples)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&x, "x", "x", 3, "right moves")
	cmd.Flags().IntVarP(&y, "y", "y", 2, "up moves")
	return cmd
}

func newTeamsCmd(a *app) *cobra.Command {
	var req interfaces.TeamRequest
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Teams with a minimum of experienced and novice members",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			direct, complement, err := a.services.Counting.TeamSelections(c.Context(), req)
			if err != nil {
				return err
			}

			a.print.title(fmt.Sprintf("Teams of %d from %d experienced and %d novices", req.Size, req.Experienced, req.Novices))
			for _, tc := range direct.Cases {
				a.print.lines([]string{fmt.Sprintf("%dE + %dN: %s = %s",
					tc.Experienced, tc.Novices, tc.Formula(req.Experienced, req.Novices), utils.FormatCount(tc.Ways))})
			}
			a.print.answer("By cases", utils.FormatCount(direct.Total))
			a.print.answer("By complement", utils.FormatCount(complement))
			return nil
		},
	}
	cmd.Flags().IntVar(&req.Experienced, "experienced", 6, "experienced players available")
	cmd.Flags().IntVar(&req.Novices, "novices", 5, "novice players available")
	cmd.Flags().IntVar(&req.Size, "size", 4, "team size")
	cmd.Flags().IntVar(&req.MinExperienced, "min-experienced", 2, "minimum experienced players")
	cmd.Flags().IntVar(&req.MinNovices, "min-novices", 1, "minimum novice players")
	return cmd
}
