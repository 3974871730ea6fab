package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"probtutor/domain/probability"
	"probtutor/domain/utils"
	"probtutor/infrastructure/render"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Random experiments compared with their exact probabilities",
	}
	cmd.AddCommand(
		newCoinCmd(a),
		newDiceCmd(a),
		newCardCmd(a),
		newDependencyCmd(a),
		newUrnCmd(a),
		newBernoulliCmd(a),
	)
	return cmd
}

func (a *app) frequency(label string, count, total int) {
	share := 0.0
	if total > 0 {
		share = float64(count) / float64(total)
	}
	a.print.lines([]string{fmt.Sprintf("%-10s %7d  %6.2f%%", label, count, share*100)})
}

func newCoinCmd(a *app) *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "coin",
		Short: "Flip a fair coin",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			last, tally, err := a.services.Simulation.FlipCoins(c.Context(), times, probability.CoinTally{})
			if err != nil {
				return err
			}
			a.print.title(fmt.Sprintf("Coin flips (%s)", utils.FormatNumber(int64(tally.Total()))))
			a.frequency("Heads", tally.Heads, tally.Total())
			a.frequency("Tails", tally.Tails, tally.Total())
			a.print.field("Last flip", string(last))
			a.print.note("Theory: P(heads) = P(tails) = 0.5")
			return nil
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 100, "number of flips")
	return cmd
}

func newDiceCmd(a *app) *cobra.Command {
	var (
		times int
		png   string
	)
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Roll a fair die and test the tally for fairness",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			last, tally, report, err := a.services.Simulation.RollDice(c.Context(), times, probability.DiceTally{})
			if err != nil {
				return err
			}
			a.print.title(fmt.Sprintf("Die rolls (%s)", utils.FormatNumber(int64(tally.Total()))))
			for i, n := range tally {
				a.frequency(fmt.Sprintf("Face %d", i+1), n, tally.Total())
			}
			a.print.field("Last roll", fmt.Sprint(last))
			verdict := "consistent with a fair die"
			if !report.Fair() {
				verdict = "unusual for a fair die"
			}
			a.print.answer("Chi-squared", fmt.Sprintf("%.3f (critical %.3f, df %d), %s",
				report.ChiSquared, report.Critical, report.DegreesOfFreedom, verdict))
			return a.writePNG(png, func() ([]byte, error) {
				chart, err := render.DiceChart(tally)
				if err != nil {
					return nil, err
				}
				return render.BarChart(chart)
			})
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 600, "number of rolls")
	cmd.Flags().StringVar(&png, "png", "", "write the face frequencies as a PNG chart")
	return cmd
}

func newCardCmd(a *app) *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Draw cards with replacement from a 52-card deck",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			last, tally, err := a.services.Simulation.DrawCards(c.Context(), times, probability.CardTally{})
			if err != nil {
				return err
			}
			a.print.title(fmt.Sprintf("Card draws (%s)", utils.FormatNumber(int64(tally.Total()))))
			for i, n := range tally {
				suit := probability.Suit(i)
				a.frequency(suit.Symbol()+" "+suit.String(), n, tally.Total())
			}
			a.print.field("Last card", last.String())
			a.print.note("Theory: P(suit) = 13/52 = 0.25")
			return nil
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 52, "number of draws")
	return cmd
}

func newDependencyCmd(a *app) *cobra.Command {
	var (
		trials int
		png    string
	)
	cmd := &cobra.Command{
		Use:       "dependency KIND",
		Short:     "Simulate independent, positively or negatively dependent events",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(probability.Independent), string(probability.Positive), string(probability.Negative)},
		RunE: func(c *cobra.Command, args []string) error {
			stats, err := a.services.Simulation.Dependency(c.Context(), probability.DependencyKind(args[0]), trials)
			if err != nil {
				return err
			}
			pA, pB, pAB, err := probability.ExpectedDependency(stats.Kind)
			if err != nil {
				return err
			}

			a.print.title(fmt.Sprintf("%s events (%s trials)", utils.Capitalize(string(stats.Kind)), utils.FormatNumber(int64(stats.Trials))))
			a.print.lines([]string{
				fmt.Sprintf("%-8s %9s %9s", "", "simulated", "exact"),
				fmt.Sprintf("%-8s %9.4f %9.4f", "P(A)", stats.PA(), pA),
				fmt.Sprintf("%-8s %9.4f %9.4f", "P(B)", stats.PB(), pB),
				fmt.Sprintf("%-8s %9.4f %9.4f", "P(A∩B)", stats.PAB(), pAB),
				fmt.Sprintf("%-8s %9.4f %9.4f", "P(A)P(B)", stats.PA()*stats.PB(), pA*pB),
			})
			a.print.answer("P(B|A)", fmt.Sprintf("%.4f", stats.PBGivenA()))
			a.print.answer("P(A|B)", fmt.Sprintf("%.4f", stats.PAGivenB()))
			return a.writePNG(png, func() ([]byte, error) {
				chart, err := render.DependencyChart(stats)
				if err != nil {
					return nil, err
				}
				return render.BarChart(chart)
			})
		},
	}
	cmd.Flags().IntVarP(&trials, "trials", "n", 10000, "number of trials")
	cmd.Flags().StringVar(&png, "png", "", "write simulated and exact probabilities as a PNG chart")
	return cmd
}

func newUrnCmd(a *app) *cobra.Command {
	var trials int
	cmd := &cobra.Command{
		Use:   "urn",
		Short: "Draw two balls without replacement from 3 red and 2 blue",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			stats, err := a.services.Simulation.Urn(c.Context(), trials)
			if err != nil {
				return err
			}
			a.print.title("Urn without replacement")
			a.print.field("Blue first", fmt.Sprintf("%s of %s trials",
				utils.FormatNumber(int64(stats.BlueFirst)), utils.FormatNumber(int64(stats.Trials))))
			a.print.field("Then red", utils.FormatNumber(int64(stats.BlueThenRed)))
			a.print.answer("P(red 2nd | blue 1st)", fmt.Sprintf("simulated %.4f, exact %.4f (3/4)", stats.Estimate(), probability.UrnExpected))
			return nil
		},
	}
	cmd.Flags().IntVarP(&trials, "trials", "n", 10000, "number of trials")
	return cmd
}

func newBernoulliCmd(a *app) *cobra.Command {
	var (
		p      float64
		trials int
		stake  float64
	)
	cmd := &cobra.Command{
		Use:   "bernoulli",
		Short: "Repeated trials of an event with probability p, and the fair payout of a bet on it",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			stats, uniformity, err := a.services.Simulation.Bernoulli(c.Context(), p, trials)
			if err != nil {
				return err
			}

			a.print.title(fmt.Sprintf("Bernoulli trials, p = %.4f (%s)", stats.P, utils.FormatNumber(int64(stats.Trials))))
			a.print.answer("Observed rate", fmt.Sprintf("%.4f (%+.4f)", stats.Rate(), stats.Deviation()))
			for i, n := range stats.Buckets {
				lo := float64(i) / probability.BernoulliBuckets
				a.frequency(fmt.Sprintf("[%.1f,%.1f)", lo, lo+1.0/probability.BernoulliBuckets), n, stats.Trials)
			}
			verdict := "draws are spread evenly"
			if !uniformity.Fair() {
				verdict = "draws are unevenly spread"
			}
			a.print.field("Chi-squared", fmt.Sprintf("%.3f (critical %.3f, df %d), %s",
				uniformity.ChiSquared, uniformity.Critical, uniformity.DegreesOfFreedom, verdict))

			if bet, err := probability.FairBet(p, stake); err == nil {
				a.print.field("Fair payout", fmt.Sprintf("%.2f on a stake of %.2f (expected value %.2f)", bet.Payout, bet.Stake, bet.ExpectedValue()))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&p, "p", "p", 0.5, "probability of success")
	cmd.Flags().IntVarP(&trials, "trials", "n", 10000, "number of trials")
	cmd.Flags().Float64Var(&stake, "stake", 1000, "stake used for the fair payout")
	return cmd
}
