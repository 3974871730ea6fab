package observability

// Metric name prefixes
const (
	MetricPrefix = "probtutor"
)

// Metric names
const (
	// Calculation metrics
	CalculationsTotal   = MetricPrefix + "_calculations_total"
	CalculationDuration = MetricPrefix + "_calculation_duration_seconds"
	ExamplesTotal       = MetricPrefix + "_examples_generated_total"

	// Simulation metrics
	SimulationsTotal      = MetricPrefix + "_simulations_total"
	SimulationTrialsTotal = MetricPrefix + "_simulation_trials_total"

	// Command metrics
	CommandsTotal = MetricPrefix + "_commands_total"
)

// Label keys
const (
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
	LabelSurface   = "surface"
	LabelCommand   = "command"
	LabelStatus    = "status"
)

// Label values
const (
	StatusOK    = "ok"
	StatusError = "error"
)
