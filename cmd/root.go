// Package cmd implements the probtutor command line: one subcommand per
// lesson topic plus serve, which runs the Discord bot.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"probtutor/config"
	"probtutor/events"
)

// Execute runs the command line and reports the invoked command on the
// event bus.
func Execute(ctx context.Context) error {
	root, a := newRootCmd(os.Stdout)
	c, err := root.ExecuteContextC(ctx)
	if a.bus != nil && c != nil {
		a.bus.Emit(ctx, events.CommandEvent{
			Surface: "cli",
			Command: commandName(c),
			Failed:  err != nil,
		})
	}
	return err
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "probtutor",
		Short:        "Probability and combinatorics tutor",
		Long:         "Worked counting, probability and simulation lessons for the terminal and Discord.",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			a.print = printer{out: c.OutOrStdout(), theme: DefaultTheme()}
			cfg, err := config.Init()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return a.init(cfg)
		},
	}
	cmd.SetOut(out)

	cmd.AddCommand(
		newCountCmd(a),
		newProbCmd(a),
		newSimulateCmd(a),
		newSetsCmd(a),
		newProblemCmd(a),
		newServeCmd(a),
	)
	return cmd, a
}

// commandName drops the binary name, e.g. "count factorial".
func commandName(c *cobra.Command) string {
	path := c.CommandPath()
	if i := strings.IndexByte(path, ' '); i >= 0 {
		return path[i+1:]
	}
	return path
}
