package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"probtutor/domain/input"
)

func newSetsCmd(a *app) *cobra.Command {
	var universe string
	cmd := &cobra.Command{
		Use:   "sets A B",
		Short: "Union, intersection, differences and complements, e.g. sets 1,2,3 2,3,4",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			setA, err := input.ParseLabels(args[0])
			if err != nil {
				return fmt.Errorf("a: %w", err)
			}
			setB, err := input.ParseLabels(args[1])
			if err != nil {
				return fmt.Errorf("b: %w", err)
			}
			var u []string
			if universe != "" {
				if u, err = input.ParseLabels(universe); err != nil {
					return fmt.Errorf("universe: %w", err)
				}
			}

			r := a.services.Probability.Sets(c.Context(), setA, setB, u)
			label := "U"
			if u == nil {
				label = "U = A ∪ B"
			}
			a.print.title("Set operations")
			a.print.field("A", r.A.String())
			a.print.field("B", r.B.String())
			a.print.field(label, r.Universe.String())
			a.print.answer("A ∪ B", r.Union.String())
			a.print.answer("A ∩ B", r.Intersection.String())
			a.print.answer("A Δ B", r.SymmetricDifference.String())
			a.print.answer("A − B", r.DifferenceAB.String())
			a.print.answer("B − A", r.DifferenceBA.String())
			a.print.answer("A'", r.ComplementA.String())
			a.print.answer("B'", r.ComplementB.String())
			a.print.answer("(A ∪ B)'", r.ComplementUnion.String())
			a.print.answer("(A ∩ B)'", r.ComplementIntersection.String())
			a.print.note(fmt.Sprintf("Disjoint: %t  A ⊆ B: %t  B ⊆ A: %t  A = B: %t", r.Disjoint, r.ASubsetB, r.BSubsetA, r.Equal))
			return nil
		},
	}
	cmd.Flags().StringVarP(&universe, "universe", "u", "", "universe for complements (default: A ∪ B)")
	return cmd
}
