package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"probtutor/domain/counting"
	"probtutor/events"
)

// outcome maps a Count status to an event outcome label.
func outcome(c counting.Count) string {
	switch {
	case c.IsOverflow():
		return events.OutcomeOverflow
	case c.IsUndefined():
		return events.OutcomeUndefined
	default:
		return events.OutcomeExact
	}
}

func errOutcome(err error) string {
	if err != nil {
		return events.OutcomeError
	}
	return events.OutcomeExact
}

// emitCalculation logs and publishes one finished calculation.
func emitCalculation(ctx context.Context, pub events.Publisher, op, result string, examples int, start time.Time) {
	d := time.Since(start)
	log.WithFields(log.Fields{
		"operation": op,
		"outcome":   result,
		"examples":  examples,
		"duration":  d,
	}).Debug("Calculation completed")

	if pub == nil {
		return
	}
	pub.Emit(ctx, events.CalculationEvent{
		Operation: op,
		Outcome:   result,
		Examples:  examples,
		Duration:  d,
	})
}
