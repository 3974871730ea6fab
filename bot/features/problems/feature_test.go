package problems

import (
	"context"
	"testing"

	"probtutor/bot/common"
	"probtutor/domain/counting"
	"probtutor/domain/problems"
	"probtutor/domain/services"
	"probtutor/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func request(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) common.Request {
	return common.Request{Command: "problem", Subcommand: sub, Options: common.NewOptions(opts)}
}

func TestReply_GenerateHidesAnswer(t *testing.T) {
	ctx := context.Background()
	p := problems.Problem{
		Kind:       problems.KindCombination,
		Difficulty: problems.Easy,
		Text:       "From a group of 5 students, in how many ways can a committee of 2 be chosen?",
		Hint:       "This is a simple combination C(n,r).",
		N:          5,
		R:          2,
		Formula:    "C(5,2)",
		Answer:     counting.Of(10),
	}

	mockService := new(testhelpers.MockProblemService)
	mockService.On("Generate", ctx, problems.KindCombination, problems.Easy).Return(p, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("generate", strOpt("kind", "combination")))
	require.NoError(t, err)
	assert.Equal(t, "📝 Combination problem (easy)", r.Embed.Title)
	assert.Equal(t, "||10||", r.Embed.Fields[2].Value)
	assert.Equal(t, common.ColorSuccess, r.Embed.Color)
}

func TestReply_GenerateUnknownKind(t *testing.T) {
	ctx := context.Background()
	mockService := new(testhelpers.MockProblemService)
	mockService.On("Generate", ctx, "lottery", problems.Easy).Return(problems.Problem{}, problems.ErrUnknownKind)

	_, err := NewFeature(mockService).Reply(ctx, request("generate", strOpt("kind", "lottery")))
	assert.ErrorIs(t, err, problems.ErrUnknownKind)
}

func TestReply_Worked(t *testing.T) {
	ctx := context.Background()
	catalog := problems.MustLoad()
	w, ok := catalog.WorkedByID("estadistica")
	require.True(t, ok)

	mockService := new(testhelpers.MockProblemService)
	mockService.On("Worked", ctx, "estadistica").Return(w, counting.Of(2494800), nil)
	mockService.On("Worked", ctx, "missing").Return(problems.WorkedExample{}, counting.Count{}, services.ErrUnknownProblem)

	feature := NewFeature(mockService)
	r, err := feature.Reply(ctx, request("worked", strOpt("id", "estadistica")))
	require.NoError(t, err)
	assert.Equal(t, "**2,494,800**", r.Embed.Fields[1].Value)
	assert.Contains(t, r.Embed.Fields[0].Value, "1. ")

	_, err = feature.Reply(ctx, request("worked", strOpt("id", "missing")))
	assert.ErrorIs(t, err, services.ErrUnknownProblem)
}

func TestReply_WorkedListsCatalog(t *testing.T) {
	ctx := context.Background()
	catalog := problems.MustLoad()

	mockService := new(testhelpers.MockProblemService)
	mockService.On("ListWorked", ctx).Return(catalog.Worked)

	r, err := NewFeature(mockService).Reply(ctx, request("worked"))
	require.NoError(t, err)
	assert.Contains(t, r.Embed.Description, "`team`")
}
