package probability

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// Feature answers the /probability command
type Feature struct {
	service interfaces.ProbabilityService
}

// NewFeature creates a new probability feature instance
func NewFeature(service interfaces.ProbabilityService) *Feature {
	return &Feature{service: service}
}

// Reply routes /probability subcommands
func (f *Feature) Reply(ctx context.Context, req common.Request) (*common.Reply, error) {
	switch req.Subcommand {
	case "basic":
		return f.handleBasic(ctx, req.Options)
	case "conditional":
		return f.handleConditional(ctx, req.Options)
	case "bayes":
		return f.handleBayes(ctx, req.Options)
	case "medical":
		return f.handleMedical(ctx, req.Options)
	case "contingency":
		return f.handleContingency(ctx, req.Options)
	default:
		log.Warnf("Unknown probability subcommand: %s", req.Subcommand)
		return nil, common.NewUserError("Unknown subcommand", "unknown probability subcommand "+req.Subcommand)
	}
}
