package sets

import (
	"context"
	"testing"

	"probtutor/bot/common"
	"probtutor/domain/sets"
	"probtutor/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func TestReply_Sets(t *testing.T) {
	ctx := context.Background()
	a, b := []string{"1", "2", "3"}, []string{"3", "4"}

	mockService := new(testhelpers.MockProbabilityService)
	mockService.On("Sets", ctx, a, b, []string(nil)).Return(sets.Calculate(a, b, nil))

	r, err := NewFeature(mockService).Reply(ctx, common.Request{
		Command: "sets",
		Options: common.NewOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			strOpt("a", "1, 2, 3"), strOpt("b", "3,4"),
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "U = A ∪ B", r.Embed.Fields[2].Name)
	assert.Equal(t, "`{3}`", r.Embed.Fields[4].Value)
	assert.Contains(t, r.Embed.Fields[len(r.Embed.Fields)-1].Value, "Disjoint: no")
	mockService.AssertExpectations(t)
}

func TestReply_SetsWithUniverse(t *testing.T) {
	ctx := context.Background()
	a, b, u := []string{"1"}, []string{"2"}, []string{"1", "2", "3"}

	mockService := new(testhelpers.MockProbabilityService)
	mockService.On("Sets", ctx, a, b, u).Return(sets.Calculate(a, b, u))

	r, err := NewFeature(mockService).Reply(ctx, common.Request{
		Options: common.NewOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			strOpt("a", "1"), strOpt("b", "2"), strOpt("universe", "1,2,3"),
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "U", r.Embed.Fields[2].Name)
	assert.Equal(t, "`{2, 3}`", r.Embed.Fields[8].Value)
}

func TestReply_SetsRequiresBothSets(t *testing.T) {
	mockService := new(testhelpers.MockProbabilityService)

	_, err := NewFeature(mockService).Reply(context.Background(), common.Request{
		Options: common.NewOptions([]*discordgo.ApplicationCommandInteractionDataOption{strOpt("a", "1")}),
	})
	assert.Error(t, err)
	mockService.AssertNotCalled(t, "Sets", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
