package simulate

import (
	"context"

	"probtutor/bot/common"
	"probtutor/domain/input"
	"probtutor/domain/probability"
	"probtutor/infrastructure/render"

	log "github.com/sirupsen/logrus"
)

func trials(opts common.Options, name string, def int) (int, error) {
	n := opts.Int(name, def)
	if err := input.IntInRange(name, n, 1, common.MaxTrialsPerCommand); err != nil {
		return 0, common.NewInputError(err)
	}
	return n, nil
}

func (f *Feature) handleCoin(ctx context.Context, opts common.Options) (*common.Reply, error) {
	times, err := trials(opts, "times", 1)
	if err != nil {
		return nil, err
	}

	last, tally, err := f.service.FlipCoins(ctx, times, probability.CoinTally{})
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: coinEmbed(last, times, tally)}, nil
}

func (f *Feature) handleDice(ctx context.Context, opts common.Options) (*common.Reply, error) {
	times, err := trials(opts, "times", 1)
	if err != nil {
		return nil, err
	}

	last, tally, report, err := f.service.RollDice(ctx, times, probability.DiceTally{})
	if err != nil {
		return nil, common.NewInputError(err)
	}

	r := &common.Reply{Embed: diceEmbed(last, times, tally, report)}
	chart, err := render.DiceChart(tally)
	if err != nil {
		log.WithError(err).WithField("rolls", tally.Total()).Warn("Skipping dice chart")
		return r, nil
	}
	if r.Image, err = render.BarChart(chart); err != nil {
		return nil, common.NewSystemError(err, "failed to render dice chart")
	}
	return r, nil
}

func (f *Feature) handleCard(ctx context.Context, opts common.Options) (*common.Reply, error) {
	times, err := trials(opts, "times", 1)
	if err != nil {
		return nil, err
	}

	last, tally, err := f.service.DrawCards(ctx, times, probability.CardTally{})
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: cardEmbed(last, times, tally)}, nil
}

func (f *Feature) handleDependency(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, err := trials(opts, "trials", 1000)
	if err != nil {
		return nil, err
	}
	kind := probability.DependencyKind(opts.String("type", string(probability.Independent)))

	stats, err := f.service.Dependency(ctx, kind, n)
	if err != nil {
		return nil, common.NewInputError(err)
	}

	chart, err := render.DependencyChart(stats)
	if err != nil {
		return nil, common.NewSystemError(err, "failed to build dependency chart")
	}
	png, err := render.BarChart(chart)
	if err != nil {
		return nil, common.NewSystemError(err, "failed to render dependency chart")
	}
	return &common.Reply{Embed: dependencyEmbed(stats), Image: png}, nil
}

func (f *Feature) handleUrn(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, err := trials(opts, "trials", 1000)
	if err != nil {
		return nil, err
	}
	stats, err := f.service.Urn(ctx, n)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: urnEmbed(stats)}, nil
}

func (f *Feature) handleBernoulli(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, err := trials(opts, "trials", 1000)
	if err != nil {
		return nil, err
	}
	stats, report, err := f.service.Bernoulli(ctx, opts.Float("p", 0.5), n)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return &common.Reply{Embed: bernoulliEmbed(stats, report)}, nil
}
