package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"probtutor/events"
)

// MetricsProvider turns bus events into Prometheus metrics.
type MetricsProvider struct {
	registry *prometheus.Registry

	calculations        *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	examples            *prometheus.CounterVec
	simulations         *prometheus.CounterVec
	simulationTrials    *prometheus.CounterVec
	commands            *prometheus.CounterVec
}

// NewMetricsProvider creates the instruments on a fresh registry. The Go
// runtime and process collectors are registered alongside them.
func NewMetricsProvider() (*MetricsProvider, error) {
	mp := &MetricsProvider{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: CalculationsTotal,
			Help: "Total number of calculations by operation and outcome.",
		}, []string{LabelOperation, LabelOutcome}),
		calculationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    CalculationDuration,
			Help:    "Duration of calculations in seconds.",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{LabelOperation}),
		examples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ExamplesTotal,
			Help: "Total number of enumeration examples produced.",
		}, []string{LabelOperation}),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SimulationsTotal,
			Help: "Total number of simulation runs.",
		}, []string{LabelKind}),
		simulationTrials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: SimulationTrialsTotal,
			Help: "Total number of simulated trials.",
		}, []string{LabelKind}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: CommandsTotal,
			Help: "Total number of user commands handled.",
		}, []string{LabelSurface, LabelCommand, LabelStatus}),
	}

	for _, c := range []prometheus.Collector{
		mp.calculations,
		mp.calculationDuration,
		mp.examples,
		mp.simulations,
		mp.simulationTrials,
		mp.commands,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := mp.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return mp, nil
}

// Registry exposes the underlying registry.
func (mp *MetricsProvider) Registry() *prometheus.Registry {
	return mp.registry
}

// Subscribe attaches the provider to every event type it records.
func (mp *MetricsProvider) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeCalculation, mp.handle)
	bus.Subscribe(events.EventTypeSimulation, mp.handle)
	bus.Subscribe(events.EventTypeCommand, mp.handle)
}

func (mp *MetricsProvider) handle(_ context.Context, event events.Event) {
	switch e := event.(type) {
	case events.CalculationEvent:
		mp.RecordCalculation(e.Operation, e.Outcome, e.Examples, e.Duration)
	case events.SimulationEvent:
		mp.RecordSimulation(e.Kind, e.Trials)
	case events.CommandEvent:
		mp.RecordCommand(e.Surface, e.Command, e.Failed)
	}
}

// RecordCalculation records one calculation.
func (mp *MetricsProvider) RecordCalculation(operation, outcome string, examples int, d time.Duration) {
	mp.calculations.WithLabelValues(operation, outcome).Inc()
	mp.calculationDuration.WithLabelValues(operation).Observe(d.Seconds())
	if examples > 0 {
		mp.examples.WithLabelValues(operation).Add(float64(examples))
	}
}

// RecordSimulation records a simulation run of trials trials.
func (mp *MetricsProvider) RecordSimulation(kind string, trials int) {
	mp.simulations.WithLabelValues(kind).Inc()
	mp.simulationTrials.WithLabelValues(kind).Add(float64(trials))
}

// RecordCommand records a finished user command.
func (mp *MetricsProvider) RecordCommand(surface, command string, failed bool) {
	status := StatusOK
	if failed {
		status = StatusError
	}
	mp.commands.WithLabelValues(surface, command, status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (mp *MetricsProvider) Handler() http.Handler {
	return promhttp.HandlerFor(mp.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (mp *MetricsProvider) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", mp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("Serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	}
}
