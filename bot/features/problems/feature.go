package problems

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/interfaces"
	"probtutor/domain/problems"

	log "github.com/sirupsen/logrus"
)

// Feature answers the /problem command
type Feature struct {
	service interfaces.ProblemService
}

// NewFeature creates a new problems feature instance
func NewFeature(service interfaces.ProblemService) *Feature {
	return &Feature{service: service}
}

// Reply routes /problem subcommands
func (f *Feature) Reply(ctx context.Context, req common.Request) (*common.Reply, error) {
	opts := req.Options

	switch req.Subcommand {
	case "generate":
		p, err := f.service.Generate(ctx,
			opts.String("kind", problems.KindMixed),
			opts.String("difficulty", problems.Easy))
		if err != nil {
			return nil, common.NewInputError(err)
		}
		return &common.Reply{Embed: generatedEmbed(p)}, nil

	case "worked":
		id := opts.String("id", "")
		if id == "" {
			return &common.Reply{Embed: catalogEmbed(f.service.ListWorked(ctx))}, nil
		}
		w, answer, err := f.service.Worked(ctx, id)
		if err != nil {
			return nil, common.NewInputError(err)
		}
		return &common.Reply{Embed: workedEmbed(w, answer)}, nil

	default:
		log.Warnf("Unknown problem subcommand: %s", req.Subcommand)
		return nil, common.NewUserError("Unknown subcommand", "unknown problem subcommand "+req.Subcommand)
	}
}
