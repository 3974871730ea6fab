package probability

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/input"
	"probtutor/domain/probability"
	"probtutor/infrastructure/render"

	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleBasic(ctx context.Context, opts common.Options) (*common.Reply, error) {
	res, err := f.service.Basic(ctx, opts.Int("favorable", 0), opts.Int("total", 0))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: basicEmbed(res)}, nil
}

func (f *Feature) handleConditional(ctx context.Context, opts common.Options) (*common.Reply, error) {
	res, err := f.service.Conditional(ctx, opts.Float("p_ab", 0), opts.Float("p_a", 0), opts.Float("p_b", 0))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: conditionalEmbed(res)}, nil
}

// handleBayes solves the three-urn lesson when no priors are given
func (f *Feature) handleBayes(ctx context.Context, opts common.Options) (*common.Reply, error) {
	var (
		res probability.BayesResult
		err error
	)
	if !opts.Has("priors") && !opts.Has("likelihoods") {
		res = f.service.UrnExample(ctx)
	} else {
		priors, perr := input.ParseProbabilityList("priors", opts.String("priors", ""))
		if perr != nil {
			return nil, common.NewInputError(perr)
		}
		likelihoods, lerr := input.ParseProbabilityList("likelihoods", opts.String("likelihoods", ""))
		if lerr != nil {
			return nil, common.NewInputError(lerr)
		}
		res, err = f.service.Bayes(ctx, priors, likelihoods)
		if err != nil {
			return nil, common.NewInputError(err)
		}
	}

	png, err := render.BarChart(render.BayesChart(res))
	if err != nil {
		return nil, common.NewSystemError(err, "failed to render bayes chart")
	}
	return &common.Reply{Embed: bayesEmbed(res), Image: png}, nil
}

func (f *Feature) handleMedical(ctx context.Context, opts common.Options) (*common.Reply, error) {
	sensitivity, err := input.ParsePercent("sensitivity", opts.String("sensitivity", "95"))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	specificity, err := input.ParsePercent("specificity", opts.String("specificity", "90"))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	prevalence, err := input.ParsePercent("prevalence", opts.String("prevalence", "1"))
	if err != nil {
		return nil, common.NewInputError(err)
	}

	res, err := f.service.MedicalTest(ctx, sensitivity, specificity, prevalence)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: medicalEmbed(res)}, nil
}

func (f *Feature) handleContingency(ctx context.Context, opts common.Options) (*common.Reply, error) {
	var counts [][]int
	if opts.Has("table") {
		var err error
		counts, err = input.ParseMatrix("table", opts.String("table", ""))
		if err != nil {
			return nil, common.NewInputError(err)
		}
	}

	table, err := f.service.Contingency(ctx, counts)
	if err != nil {
		return nil, common.NewInputError(err)
	}

	r := &common.Reply{Embed: contingencyEmbed(table)}
	chart, err := render.ContingencyChart(table)
	if err != nil {
		log.WithError(err).WithField("total", table.Total).Debug("Skipping contingency chart")
		return r, nil
	}
	if r.Image, err = render.BarChart(chart); err != nil {
		return nil, common.NewSystemError(err, "failed to render contingency chart")
	}
	return r, nil
}
