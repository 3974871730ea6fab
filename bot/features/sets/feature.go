package sets

import (
	"context"
	"fmt"

	"probtutor/bot/common"
	"probtutor/domain/input"
	"probtutor/domain/interfaces"
)

// Feature answers the /sets command
type Feature struct {
	service interfaces.ProbabilityService
}

// NewFeature creates a new set calculator feature instance
func NewFeature(service interfaces.ProbabilityService) *Feature {
	return &Feature{service: service}
}

// Reply runs every set operation on the A and B options
func (f *Feature) Reply(ctx context.Context, req common.Request) (*common.Reply, error) {
	opts := req.Options

	a, err := parseSet(opts, "a")
	if err != nil {
		return nil, err
	}
	b, err := parseSet(opts, "b")
	if err != nil {
		return nil, err
	}

	var universe []string
	if opts.Has("universe") {
		if universe, err = parseSet(opts, "universe"); err != nil {
			return nil, err
		}
	}

	report := f.service.Sets(ctx, a, b, universe)
	return &common.Reply{Embed: reportEmbed(report, universe == nil)}, nil
}

func parseSet(opts common.Options, name string) ([]string, error) {
	text, err := opts.RequireString(name)
	if err != nil {
		return nil, err
	}
	labels, err := input.ParseLabels(text)
	if err != nil {
		return nil, common.NewInputError(fmt.Errorf("%s: %w", name, err))
	}
	if len(labels) > common.MaxSetSize {
		return nil, common.NewUserError(
			fmt.Sprintf("Set %s has %d elements; at most %d are allowed", name, len(labels), common.MaxSetSize),
			"set too large")
	}
	return labels, nil
}
