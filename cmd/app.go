package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"probtutor/bot"
	"probtutor/config"
	"probtutor/domain/input"
	"probtutor/domain/problems"
	"probtutor/domain/random"
	"probtutor/domain/services"
	"probtutor/events"

	log "github.com/sirupsen/logrus"
)

// app is the dependency graph shared by every subcommand. It is built in
// the root command's pre-run so configuration errors surface as command
// errors.
type app struct {
	cfg      *config.Config
	bus      *events.Bus
	services bot.Services
	print    printer
}

func (a *app) init(cfg *config.Config) error {
	if err := setupLogging(cfg); err != nil {
		return err
	}
	catalog, err := problems.Load()
	if err != nil {
		return fmt.Errorf("load problem catalog: %w", err)
	}

	a.cfg = cfg
	a.bus = events.NewBus()
	a.bus.Subscribe(events.EventTypeCalculation, logEvent)
	a.bus.Subscribe(events.EventTypeSimulation, logEvent)
	a.bus.Subscribe(events.EventTypeCommand, logEvent)

	src, err := newSource(cfg.RandomSeed)
	if err != nil {
		return err
	}
	a.services = bot.Services{
		Counting:    services.NewCountingService(src, a.bus),
		Probability: services.NewProbabilityService(src, a.bus),
		Simulation:  services.NewSimulationService(src, a.bus),
		Problems:    services.NewProblemService(src, catalog, a.bus),
	}
	return nil
}

// newSource seeds from crypto/rand when seed is 0. The source is shared by
// the bot's concurrent handlers, so it is always locked.
func newSource(seed int64) (random.Source, error) {
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return nil, fmt.Errorf("seed random source: %w", err)
		}
	}
	return random.NewLocked(random.New(seed)), nil
}

func setupLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}
	return nil
}

func logEvent(_ context.Context, event events.Event) {
	log.WithField("event_type", event.Type()).Tracef("%+v", event)
}

// intArgs parses positional arguments in order, named for error messages.
func intArgs(args []string, names ...string) ([]int, error) {
	values := make([]int, len(names))
	for i, name := range names {
		v, err := input.ParseInt(name, args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// writePNG saves a rendered chart when path is set.
func (a *app) writePNG(path string, render func() ([]byte, error)) error {
	if path == "" {
		return nil
	}
	png, err := render()
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	a.print.note("Chart written to " + path)
	return nil
}
