package counting

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// Feature answers the /count command
type Feature struct {
	service interfaces.CountingService
}

// NewFeature creates a new counting feature instance
func NewFeature(service interfaces.CountingService) *Feature {
	return &Feature{service: service}
}

// Reply routes /count subcommands
func (f *Feature) Reply(ctx context.Context, req common.Request) (*common.Reply, error) {
	opts := req.Options

	switch req.Subcommand {
	case "factorial":
		return f.handleFactorial(ctx, opts)
	case "permutations":
		return f.handlePermutations(ctx, opts)
	case "combinations":
		return f.handleCombinations(ctx, opts)
	case "variations":
		return f.handleVariations(ctx, opts)
	case "multiset":
		return f.handleMultiset(ctx, opts)
	case "stages":
		return f.handleStages(ctx, opts)
	case "pascal":
		return f.handlePascal(ctx, opts)
	case "enumerate":
		return f.handleEnumerate(ctx, opts)
	case "tree":
		return f.handleTree(ctx, opts)
	case "paths":
		return f.handlePaths(ctx, opts)
	case "teams":
		return f.handleTeams(ctx, opts)
	default:
		log.Warnf("Unknown count subcommand: %s", req.Subcommand)
		return nil, common.NewUserError("Unknown subcommand", "unknown count subcommand "+req.Subcommand)
	}
}
