package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"probtutor/bot"
	"probtutor/infrastructure/observability"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot and the Prometheus metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.serve(c.Context())
		},
	}
}

// serve runs until ctx is cancelled or the metrics endpoint fails.
func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.ValidateForBot(); err != nil {
		return err
	}
	log.WithField("environment", a.cfg.Environment).Info("Starting probtutor bot")

	metrics, err := a.startMetrics(ctx)
	if err != nil {
		return err
	}
	defer metrics.stop()

	discordBot, err := bot.New(bot.Config{
		Token:   a.cfg.DiscordToken,
		GuildID: a.cfg.GuildID,
	}, a.services, a.bus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	if err := discordBot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	log.Info("Bot is running, press Ctrl+C to stop")

	select {
	case <-ctx.Done():
	case <-metrics.done:
	}

	log.Info("Shutting down bot")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	if err := metrics.shutdown(10 * time.Second); err != nil {
		return err
	}
	log.Info("Shutdown completed")
	return nil
}

// metricsServer is the Prometheus endpoint running in the background.
type metricsServer struct {
	done chan struct{}
	stop context.CancelFunc
	err  error // set before done is closed
}

func (a *app) startMetrics(ctx context.Context) (*metricsServer, error) {
	metrics, err := observability.NewMetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	metrics.Subscribe(a.bus)

	ctx, stop := context.WithCancel(ctx)
	m := &metricsServer{done: make(chan struct{}), stop: stop}
	go func() {
		defer close(m.done)
		if m.err = metrics.Serve(ctx, a.cfg.MetricsAddr); m.err != nil {
			log.WithError(m.err).Error("Metrics server stopped")
		}
	}()
	return m, nil
}

// shutdown stops the endpoint and returns the error it stopped with.
func (m *metricsServer) shutdown(timeout time.Duration) error {
	m.stop()
	select {
	case <-m.done:
		return m.err
	case <-time.After(timeout):
		log.Warn("Shutdown timeout exceeded")
		return nil
	}
}
