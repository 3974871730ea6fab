package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"probtutor/domain/problems"
	"probtutor/domain/utils"
)

func newProblemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problem",
		Short: "Practice problems and worked solutions",
	}
	cmd.AddCommand(newGenerateCmd(a), newWorkedCmd(a))
	return cmd
}

func newGenerateCmd(a *app) *cobra.Command {
	var kind, difficulty string
	var reveal bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random counting problem",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			p, err := a.services.Problems.Generate(c.Context(), kind, difficulty)
			if err != nil {
				return err
			}
			a.print.title(fmt.Sprintf("%s problem (%s)", utils.Capitalize(p.Kind), p.Difficulty))
			a.print.card(p.Text)
			a.print.field("Hint", p.Hint)
			if !reveal {
				a.print.note("Run again with --reveal to see the formula and answer.")
				return nil
			}
			a.print.field("Formula", p.Formula)
			a.print.answer("Answer", utils.FormatCount(p.Answer))
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", problems.KindMixed, strings.Join(problems.Kinds, ", "))
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", problems.Easy, strings.Join(problems.Difficulties, ", "))
	cmd.Flags().BoolVar(&reveal, "reveal", false, "show the formula and answer")
	return cmd
}

func newWorkedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worked [ID]",
		Short: "Show a worked problem step by step; without an ID lists the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.print.title("Worked problems")
				for _, w := range a.services.Problems.ListWorked(c.Context()) {
					a.print.lines([]string{fmt.Sprintf("%-14s %s", w.ID, w.Title)})
				}
				return nil
			}

			w, answer, err := a.services.Problems.Worked(c.Context(), args[0])
			if err != nil {
				return err
			}
			a.print.title(w.Title)
			a.print.card(w.Statement)
			for i, s := range w.Steps {
				a.print.lines([]string{fmt.Sprintf("%d. %s", i+1, s)})
			}
			a.print.answer("Answer", utils.FormatCount(answer))
			return nil
		},
	}
}
