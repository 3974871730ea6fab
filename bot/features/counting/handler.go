package counting

import (
	"context"
	"fmt"

	"probtutor/bot/common"
	"probtutor/domain/counting"
	"probtutor/domain/input"
	"probtutor/domain/interfaces"
	"probtutor/infrastructure/render"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handleFactorial(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n := opts.Int("n", 0)
	if err := input.IntInRange("n", n, 0, common.MaxFactorialInput); err != nil {
		return nil, common.NewInputError(err)
	}
	c := f.service.Factorial(ctx, n)
	return reply(countEmbed("Factorial", fmt.Sprintf("%d!", n), c, "Number of ways to order all the elements.")), nil
}

func (f *Feature) handlePermutations(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, k := opts.Int("n", 0), opts.Int("k", 0)
	c := f.service.Permutations(ctx, n, k)
	return reply(countEmbed("Permutations", fmt.Sprintf("P(%d,%d) = %d!/(%d-%d)!", n, k, n, n, k), c,
		"Ordered selections without repetition: order matters.")), nil
}

func (f *Feature) handleCombinations(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, k := opts.Int("n", 0), opts.Int("k", 0)
	if opts.Bool("repetition", false) {
		c := f.service.CombinationsWithRepetition(ctx, n, k)
		return reply(countEmbed("Combinations with repetition", fmt.Sprintf("CR(%d,%d) = C(%d+%d-1, %d)", n, k, n, k, k), c,
			"Unordered selections where an element may be chosen more than once.")), nil
	}
	c := f.service.Combinations(ctx, n, k)
	return reply(countEmbed("Combinations", fmt.Sprintf("C(%d,%d) = %d!/(%d!·(%d-%d)!)", n, k, n, k, n, k), c,
		"Unordered selections without repetition: order does not matter.")), nil
}

func (f *Feature) handleVariations(ctx context.Context, opts common.Options) (*common.Reply, error) {
	n, r := opts.Int("n", 0), opts.Int("r", 0)
	c := f.service.Variations(ctx, n, r)
	return reply(countEmbed("Variations with repetition", fmt.Sprintf("VR(%d,%d) = %d^%d", n, r, n, r), c,
		"Ordered selections where every position can take any of the n elements.")), nil
}

func (f *Feature) handleMultiset(ctx context.Context, opts common.Options) (*common.Reply, error) {
	text, err := opts.RequireString("word")
	if err != nil {
		return nil, err
	}
	word, err := input.ParseWord(text)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	c := f.service.Multiset(ctx, word.Length(), word.Repeats())
	return reply(multisetEmbed(word, c)), nil
}

func (f *Feature) handleStages(ctx context.Context, opts common.Options) (*common.Reply, error) {
	text, err := opts.RequireString("options")
	if err != nil {
		return nil, err
	}
	stages, err := input.ParseIntList("options", text)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	c := f.service.Stages(ctx, stages)
	return reply(countEmbed("Fundamental counting principle", stagesFormula(stages), c,
		"Multiply the number of options of every independent stage.")), nil
}

func (f *Feature) handlePascal(ctx context.Context, opts common.Options) (*common.Reply, error) {
	rows := opts.Int("rows", 5)
	tri, h, err := f.service.Pascal(ctx, rows, opts.Int("k", 0))
	if err != nil {
		return nil, common.NewInputError(err)
	}

	png, err := render.PascalTriangle(tri, h)
	if err != nil {
		return nil, common.NewSystemError(err, "failed to render pascal triangle")
	}
	r := reply(pascalEmbed(tri, h))
	r.Image = png
	return r, nil
}

func (f *Feature) handleEnumerate(ctx context.Context, opts common.Options) (*common.Reply, error) {
	text, err := opts.RequireString("elements")
	if err != nil {
		return nil, err
	}
	elements, err := input.ParseLabels(text)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	kind := counting.Kind(opts.String("type", string(counting.KindCombination)))

	res, err := f.service.Enumerate(ctx, kind, elements, opts.Int("k", len(elements)))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return reply(enumerationEmbed(res)), nil
}

func (f *Feature) handleTree(ctx context.Context, opts common.Options) (*common.Reply, error) {
	text, err := opts.RequireString("elements")
	if err != nil {
		return nil, err
	}
	elements, err := input.ParseLabels(text)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	res := f.service.DecisionTree(ctx, elements, opts.Int("depth", len(elements)))
	return reply(treeEmbed(res)), nil
}

func (f *Feature) handlePaths(ctx context.Context, opts common.Options) (*common.Reply, error) {
	res, err := f.service.LatticePaths(ctx, opts.Int("x", 3), opts.Int("y", 2))
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return reply(pathsEmbed(res)), nil
}

func (f *Feature) handleTeams(ctx context.Context, opts common.Options) (*common.Reply, error) {
	req := interfaces.TeamRequest{
		Experienced:    opts.Int("experienced", 6),
		Novices:        opts.Int("novices", 5),
		Size:           opts.Int("size", 4),
		MinExperienced: opts.Int("min_experienced", 2),
		MinNovices:     opts.Int("min_novices", 1),
	}
	direct, complement, err := f.service.TeamSelections(ctx, req)
	if err != nil {
		return nil, common.NewInputError(err)
	}
	return reply(teamsEmbed(req, direct, complement)), nil
}

func reply(embed *discordgo.MessageEmbed) *common.Reply {
	return &common.Reply{Embed: embed}
}
