package simulate

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// Feature answers the /simulate command. Every command starts from an
// empty tally; nothing is kept between interactions.
type Feature struct {
	service interfaces.SimulationService
}

// NewFeature creates a new simulation feature instance
func NewFeature(service interfaces.SimulationService) *Feature {
	return &Feature{service: service}
}

// Reply routes /simulate subcommands
func (f *Feature) Reply(ctx context.Context, req common.Request) (*common.Reply, error) {
	switch req.Subcommand {
	case "coin":
		return f.handleCoin(ctx, req.Options)
	case "dice":
		return f.handleDice(ctx, req.Options)
	case "card":
		return f.handleCard(ctx, req.Options)
	case "dependency":
		return f.handleDependency(ctx, req.Options)
	case "urn":
		return f.handleUrn(ctx, req.Options)
	case "bernoulli":
		return f.handleBernoulli(ctx, req.Options)
	default:
		log.Warnf("Unknown simulate subcommand: %s", req.Subcommand)
		return nil, common.NewUserError("Unknown subcommand", "unknown simulate subcommand "+req.Subcommand)
	}
}
