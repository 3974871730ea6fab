package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probtutor/config"
	"probtutor/domain/counting"
	"probtutor/domain/probability"
	"probtutor/domain/services"
	"probtutor/events"
)

func run(t *testing.T, mutate func(*config.Config), args ...string) (string, error) {
	t.Helper()
	cfg := config.NewTestConfig()
	if mutate != nil {
		mutate(cfg)
	}
	config.SetTestConfig(cfg)
	t.Cleanup(config.ResetConfig)

	var out bytes.Buffer
	root, _ := newRootCmd(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCountCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"factorial", []string{"count", "factorial", "5"}, []string{"5!", "120"}},
		{"factorial overflow", []string{"count", "factorial", "21"}, []string{"too large to represent exactly", "64-bit"}},
		{"permutations", []string{"count", "permutations", "5", "3"}, []string{"P(5,3)", "60"}},
		{"permutations undefined", []string{"count", "permutations", "3", "5"}, []string{counting.UndefinedMarker}},
		{"combinations", []string{"count", "combinations", "12", "5"}, []string{"C(12,5)", "792"}},
		{"combinations with repetition", []string{"count", "combinations", "--repetition", "3", "8"}, []string{"CR(3,8)", "45"}},
		{"variations", []string{"count", "variations", "2", "3"}, []string{"VR(2,3) = 2^3", "8"}},
		{"multiset", []string{"count", "multiset", "estadística"}, []string{"ESTADISTICA", "2,494,800"}},
		{"stages", []string{"count", "stages", "2,3,2"}, []string{"2 × 3 × 2", "12"}},
		{"paths", []string{"count", "paths", "-x", "3", "-y", "2"}, []string{"C(5, 3)", "10"}},
		{"teams", []string{"count", "teams"}, []string{"By cases: 250", "By complement: 250"}},
		{"tree", []string{"count", "tree", "A,B,C", "--depth", "2"}, []string{"└─ ", "Paths: 6"}},
		{"enumerate", []string{"count", "enumerate", "A,B,C,D", "-k", "2"}, []string{"Combination examples", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCountCommands_InvalidInput(t *testing.T) {
	_, err := run(t, nil, "count", "factorial", "five")
	assert.Error(t, err)

	_, err = run(t, nil, "count", "stages", "2,x")
	assert.Error(t, err)

	_, err = run(t, nil, "count", "pascal", "--rows", "40")
	assert.ErrorIs(t, err, counting.ErrRowOutOfRange)
}

func TestCountCommands_InputLimits(t *testing.T) {
	limit := func(c *config.Config) { c.MaxCountInput = 50 }
	tests := []struct {
		name string
		args []string
	}{
		{"paths", []string{"count", "paths", "-x", "40", "-y", "11"}},
		{"huge paths", []string{"count", "paths", "-x", "1099511627776", "-y", "1"}},
		{"teams", []string{"count", "teams", "--experienced", "1099511627776", "--size", "1099511627776"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, limit, tt.args...)
			assert.ErrorIs(t, err, services.ErrInputTooLarge)
		})
	}

	out, err := run(t, limit, "count", "variations", "1", "1099511627776")
	require.NoError(t, err)
	assert.Contains(t, out, "VR(1,1099511627776)")
}

func TestRoot_MalformedEnvironment(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Setenv("MAX_EXAMPLES", "abc")

	var out bytes.Buffer
	root, _ := newRootCmd(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"count", "factorial", "3"})

	var err error
	require.NotPanics(t, func() { err = root.ExecuteContext(context.Background()) })
	assert.ErrorContains(t, err, "load config")
}

func TestPascalCommand_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pascal.png")

	out, err := run(t, nil, "count", "pascal", "--rows", "4", "-k", "2", "--png", path)
	require.NoError(t, err)
	assert.Contains(t, out, "C(4, 2) = 6")
	assert.Contains(t, out, "Chart written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestProbCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"basic", []string{"prob", "basic", "1", "4"}, []string{"0.2500 (25.00%)"}},
		{"conditional", []string{"prob", "conditional", "--p-ab", "0.12", "--p-a", "0.4", "--p-b", "0.3"}, []string{"0.4000", "independent"}},
		{"bayes example", []string{"prob", "bayes"}, []string{"H3", "P(E)"}},
		{"bayes", []string{"prob", "bayes", "--priors", "0.5,0.5", "--likelihoods", "0.2,0.6"}, []string{"posterior 0.2500", "posterior 0.7500"}},
		{"medical", []string{"probability", "medical"}, []string{"P(sick | +): 0.0876"}},
		{"contingency", []string{"prob", "contingency", "--table", "30,20;10,40"}, []string{"Total    40    60    100", "P(A1): 0.5000", "P(B1|A1): 0.6000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, nil, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestProbCommands_InvalidInput(t *testing.T) {
	_, err := run(t, nil, "prob", "basic", "5", "4")
	assert.Error(t, err)

	_, err = run(t, nil, "prob", "bayes", "--priors", "0.5,0.5", "--likelihoods", "0.2")
	assert.Error(t, err)

	_, err = run(t, nil, "prob", "medical", "--sensitivity", "120")
	assert.Error(t, err)
}

func TestSimulateCommands(t *testing.T) {
	out, err := run(t, nil, "simulate", "urn", "-n", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "exact 0.7500")

	out, err = run(t, nil, "simulate", "coin", "-n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Coin flips (10)")

	out, err = run(t, nil, "simulate", "card", "-n", "52")
	require.NoError(t, err)
	assert.Contains(t, out, "Card draws (52)")

	out, err = run(t, nil, "simulate", "dependency", "positive", "-n", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Positive events")
}

func TestBernoulliCommand(t *testing.T) {
	out, err := run(t, nil, "simulate", "bernoulli", "-p", "0.1", "-n", "5000")
	require.NoError(t, err)
	assert.Contains(t, out, "p = 0.1000 (5,000)")
	assert.Contains(t, out, "[0.9,1.0)")
	assert.Contains(t, out, "Fair payout: 9000.00 on a stake of 1000.00")

	out, err = run(t, nil, "simulate", "bernoulli", "-p", "1", "-n", "10")
	require.NoError(t, err)
	assert.NotContains(t, out, "Fair payout")

	_, err = run(t, nil, "simulate", "bernoulli", "-p", "2")
	assert.ErrorIs(t, err, probability.ErrInvalidProbability)
}

func TestSimulateCommands_Limits(t *testing.T) {
	_, err := run(t, nil, "simulate", "coin", "-n", "0")
	assert.ErrorIs(t, err, probability.ErrNoTrials)

	_, err = run(t, func(c *config.Config) { c.MaxSimulations = 100 }, "simulate", "urn", "-n", "101")
	assert.ErrorIs(t, err, services.ErrTooManyTrials)
}

func TestDiceCommand_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.png")

	out, err := run(t, nil, "simulate", "dice", "-n", "600", "--png", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Face 6")
	assert.Contains(t, out, "Chi-squared")
	assert.FileExists(t, path)
}

func TestSetsCommand(t *testing.T) {
	out, err := run(t, nil, "sets", "1,2,3", "2,3,4", "-u", "1,2,3,4,5")
	require.NoError(t, err)
	assert.Contains(t, out, "A ∪ B: {1, 2, 3, 4}")
	assert.Contains(t, out, "A ∩ B: {2, 3}")
	assert.Contains(t, out, "(A ∪ B)': {5}")

	_, err = run(t, nil, "sets", ",", "1")
	assert.Error(t, err)
}

func TestProblemCommands(t *testing.T) {
	out, err := run(t, nil, "problem", "worked")
	require.NoError(t, err)
	assert.Contains(t, out, "estadistica")
	assert.Contains(t, out, "team")

	out, err = run(t, nil, "problem", "worked", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "Answer: 250")

	_, err = run(t, nil, "problem", "worked", "missing")
	assert.ErrorIs(t, err, services.ErrUnknownProblem)

	out, err = run(t, nil, "problem", "generate", "--kind", "combination", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, "Combination problem (easy)")
	assert.Contains(t, out, "Answer:")

	out, err = run(t, nil, "problem", "generate")
	require.NoError(t, err)
	assert.NotContains(t, out, "Answer:")

	_, err = run(t, nil, "problem", "generate", "--difficulty", "impossible")
	assert.Error(t, err)
}

func TestServe_RequiresToken(t *testing.T) {
	_, err := run(t, func(c *config.Config) { c.DiscordToken = "" }, "serve")
	assert.ErrorIs(t, err, config.ErrMissingToken)
}

func TestStartMetrics(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"listens", "127.0.0.1:0", false},
		{"bad address", "127.0.0.1:-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.MetricsAddr = tt.addr
			a := &app{cfg: cfg, bus: events.NewBus()}

			m, err := a.startMetrics(context.Background())
			require.NoError(t, err)

			if tt.wantErr {
				select {
				case <-m.done:
				case <-time.After(5 * time.Second):
					t.Fatal("metrics server did not stop")
				}
				assert.ErrorContains(t, m.shutdown(time.Second), "metrics server")
				return
			}
			assert.NoError(t, m.shutdown(5*time.Second))
		})
	}
}

func TestInit_InvalidLogFormat(t *testing.T) {
	_, err := run(t, func(c *config.Config) { c.LogFormat = "xml" }, "count", "factorial", "3")
	assert.Error(t, err)
}

func TestCommandName(t *testing.T) {
	root := &cobra.Command{Use: "probtutor"}
	count := &cobra.Command{Use: "count"}
	factorial := &cobra.Command{Use: "factorial N"}
	root.AddCommand(count)
	count.AddCommand(factorial)

	assert.Equal(t, "count factorial", commandName(factorial))
	assert.Equal(t, "probtutor", commandName(root))
}
