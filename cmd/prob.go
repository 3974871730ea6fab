package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"probtutor/domain/input"
	"probtutor/domain/probability"
	"probtutor/domain/utils"
	"probtutor/infrastructure/render"
)

func newProbCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prob",
		Aliases: []string{"probability"},
		Short:   "Exact probability: classical, conditional, Bayes and contingency tables",
	}
	cmd.AddCommand(
		newBasicCmd(a),
		newConditionalCmd(a),
		newBayesCmd(a),
		newMedicalCmd(a),
		newContingencyCmd(a),
	)
	return cmd
}

func newBasicCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basic FAVORABLE TOTAL",
		Short: "P(E) = favorable / total",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := intArgs(args, "favorable", "total")
			if err != nil {
				return err
			}
			res, err := a.services.Probability.Basic(c.Context(), v[0], v[1])
			if err != nil {
				return err
			}
			a.print.title("Classical probability")
			a.print.field("Calculation", fmt.Sprintf("%d / %d", res.Favorable, res.Total))
			a.print.answer("P(E)", utils.FormatProbability(res.Value))
			return nil
		},
	}
}

func newConditionalCmd(a *app) *cobra.Command {
	var pAB, pA, pB float64
	cmd := &cobra.Command{
		Use:   "conditional",
		Short: "P(A|B) and P(B|A) from P(A∩B), P(A) and P(B)",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := a.services.Probability.Conditional(c.Context(), pAB, pA, pB)
			if err != nil {
				return err
			}
			a.print.title("Conditional probability")
			a.print.answer("P(A|B) = P(A∩B) / P(B)", fmt.Sprintf("%.4f / %.4f = %.4f", res.PAB, res.PB, res.PAGivenB))
			a.print.answer("P(B|A) = P(A∩B) / P(A)", fmt.Sprintf("%.4f / %.4f = %.4f", res.PAB, res.PA, res.PBGivenA))
			if res.Independent {
				a.print.note("A and B are independent: P(A|B) = P(A).")
			} else {
				a.print.note("A and B are dependent: P(A|B) ≠ P(A).")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&pAB, "p-ab", 0, "P(A∩B)")
	cmd.Flags().Float64Var(&pA, "p-a", 0, "P(A)")
	cmd.Flags().Float64Var(&pB, "p-b", 0, "P(B)")
	return cmd
}

func newBayesCmd(a *app) *cobra.Command {
	var priors, likelihoods, png string
	cmd := &cobra.Command{
		Use:   "bayes",
		Short: "Posterior probabilities; without flags solves the three-urn example",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var res probability.BayesResult
			if priors == "" && likelihoods == "" {
				res = a.services.Probability.UrnExample(c.Context())
			} else {
				p, err := input.ParseProbabilityList("priors", priors)
				if err != nil {
					return err
				}
				l, err := input.ParseProbabilityList("likelihoods", likelihoods)
				if err != nil {
					return err
				}
				if res, err = a.services.Probability.Bayes(c.Context(), p, l); err != nil {
					return err
				}
			}

			a.print.title("Bayes' theorem")
			a.print.note("P(Hi|E) = P(Hi)·P(E|Hi) / Σ P(Hj)·P(E|Hj)")
			for i := range res.Priors {
				a.print.lines([]string{fmt.Sprintf("H%d  prior %.4f  likelihood %.4f  posterior %.4f",
					i+1, res.Priors[i], res.Likelihoods[i], res.Posteriors[i])})
			}
			a.print.answer("P(E)", utils.FormatProbability(res.Evidence))
			return a.writePNG(png, func() ([]byte, error) { return render.BarChart(render.BayesChart(res)) })
		},
	}
	cmd.Flags().StringVar(&priors, "priors", "", "comma-separated P(Hi)")
	cmd.Flags().StringVar(&likelihoods, "likelihoods", "", "comma-separated P(E|Hi)")
	cmd.Flags().StringVar(&png, "png", "", "write priors and posteriors as a PNG chart")
	return cmd
}

func newMedicalCmd(a *app) *cobra.Command {
	var sensitivity, specificity, prevalence string
	cmd := &cobra.Command{
		Use:   "medical",
		Short: "Probability of disease after a positive test",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			se, err := input.ParsePercent("sensitivity", sensitivity)
			if err != nil {
				return err
			}
			sp, err := input.ParsePercent("specificity", specificity)
			if err != nil {
				return err
			}
			pr, err := input.ParsePercent("prevalence", prevalence)
			if err != nil {
				return err
			}
			res, err := a.services.Probability.MedicalTest(c.Context(), se, sp, pr)
			if err != nil {
				return err
			}

			a.print.title("Diagnostic test")
			a.print.field("P(+)", utils.FormatProbability(res.PositiveRate))
			a.print.field("False positive rate", utils.FormatProbability(res.FalsePositiveRate))
			a.print.answer("P(sick | +)", utils.FormatProbability(res.SickGivenPositive))
			a.print.field("P(healthy | +)", utils.FormatProbability(res.HealthyGivenPositive()))
			return nil
		},
	}
	cmd.Flags().StringVar(&sensitivity, "sensitivity", "95", "P(+|sick) in percent")
	cmd.Flags().StringVar(&specificity, "specificity", "90", "P(-|healthy) in percent")
	cmd.Flags().StringVar(&prevalence, "prevalence", "1", "P(sick) in percent")
	return cmd
}

func newContingencyCmd(a *app) *cobra.Command {
	var table, png string
	cmd := &cobra.Command{
		Use:   "contingency",
		Short: "Marginal and conditional probabilities of a table, e.g. --table \"30,20;10,40\"",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var counts [][]int
			if table != "" {
				var err error
				if counts, err = input.ParseMatrix("table", table); err != nil {
					return err
				}
			}
			t, err := a.services.Probability.Contingency(c.Context(), counts)
			if err != nil {
				return err
			}

			a.print.title("Contingency table")
			a.print.lines(t.Lines())
			p, ok := t.Probabilities()
			if !ok {
				a.print.note("The table has no observations.")
				return nil
			}
			for i, v := range p.Row {
				a.print.field(fmt.Sprintf("P(A%d)", i+1), fmt.Sprintf("%.4f", v))
			}
			for j, v := range p.Col {
				a.print.field(fmt.Sprintf("P(B%d)", j+1), fmt.Sprintf("%.4f", v))
			}
			for i, row := range p.ColGivenRow {
				for j, v := range row {
					a.print.field(fmt.Sprintf("P(B%d|A%d)", j+1, i+1), fmt.Sprintf("%.4f", v))
				}
			}
			return a.writePNG(png, func() ([]byte, error) {
				chart, err := render.ContingencyChart(t)
				if err != nil {
					return nil, err
				}
				return render.BarChart(chart)
			})
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "rows separated by ';' (default: a random example table)")
	cmd.Flags().StringVar(&png, "png", "", "write P(Bj|Ai) as a PNG chart")
	return cmd
}
