package simulate

import (
	"context"
	"sync"
	"testing"

	"probtutor/bot/common"
	"probtutor/domain/probability"
	"probtutor/domain/testhelpers"
	"probtutor/infrastructure/render"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func request(user, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) common.Request {
	return common.Request{UserID: user, Command: "simulate", Subcommand: sub, Options: common.NewOptions(opts)}
}

func TestReply_CoinStartsFreshEachCommand(t *testing.T) {
	ctx := context.Background()
	mockService := new(testhelpers.MockSimulationService)
	mockService.On("FlipCoins", ctx, 3, probability.CoinTally{}).
		Return(probability.Heads, probability.CoinTally{Heads: 2, Tails: 1}, nil).Once()
	mockService.On("FlipCoins", ctx, 1, probability.CoinTally{}).
		Return(probability.Tails, probability.CoinTally{Tails: 1}, nil).Once()

	feature := NewFeature(mockService)

	_, err := feature.Reply(ctx, request("alice", "coin", intOpt("times", 3)))
	require.NoError(t, err)
	r, err := feature.Reply(ctx, request("alice", "coin"))
	require.NoError(t, err)
	assert.Contains(t, r.Embed.Description, "tails")
	assert.Equal(t, "Tally (1 flips)", r.Embed.Fields[0].Name)

	mockService.AssertExpectations(t)
}

func TestReply_ConcurrentCommandsSameUser(t *testing.T) {
	ctx := context.Background()
	const workers = 8

	mockService := new(testhelpers.MockSimulationService)
	mockService.On("FlipCoins", ctx, 5, probability.CoinTally{}).
		Return(probability.Heads, probability.CoinTally{Heads: 5}, nil).Times(workers)
	mockService.On("DrawCards", ctx, 2, probability.CardTally{}).
		Return(probability.Card{Value: "A", Suit: probability.Hearts}, probability.CardTally{2, 0, 0, 0}, nil).Times(workers)

	feature := NewFeature(mockService)

	var wg sync.WaitGroup
	replies := make([]*common.Reply, 2*workers)
	errs := make([]error, 2*workers)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			replies[2*i], errs[2*i] = feature.Reply(ctx, request("alice", "coin", intOpt("times", 5)))
		}(i)
		go func(i int) {
			defer wg.Done()
			replies[2*i+1], errs[2*i+1] = feature.Reply(ctx, request("alice", "card", intOpt("times", 2)))
		}(i)
	}
	wg.Wait()

	for i := range replies {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			assert.Equal(t, "Tally (5 flips)", replies[i].Embed.Fields[0].Name)
		} else {
			assert.Equal(t, "Suits (2 draws)", replies[i].Embed.Fields[0].Name)
		}
	}
	mockService.AssertExpectations(t)
}

func TestReply_TrialsOutOfRange(t *testing.T) {
	mockService := new(testhelpers.MockSimulationService)
	feature := NewFeature(mockService)

	_, err := feature.Reply(context.Background(), request("u", "coin", intOpt("times", 0)))
	assert.Error(t, err)
	_, err = feature.Reply(context.Background(), request("u", "urn", intOpt("trials", common.MaxTrialsPerCommand+1)))
	assert.Error(t, err)

	mockService.AssertNotCalled(t, "FlipCoins", mock.Anything, mock.Anything, mock.Anything)
	mockService.AssertNotCalled(t, "Urn", mock.Anything, mock.Anything)
}

func TestReply_DiceAttachesChart(t *testing.T) {
	ctx := context.Background()
	tally := probability.DiceTally{10, 10, 10, 10, 10, 10}
	report, err := probability.AnalyzeFairness(tally[:], probability.Uniform(6))
	require.NoError(t, err)

	mockService := new(testhelpers.MockSimulationService)
	mockService.On("RollDice", ctx, 60, probability.DiceTally{}).Return(4, tally, report, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("u", "dice", intOpt("times", 60)))
	require.NoError(t, err)
	assert.NotEmpty(t, r.Image)
	assert.Equal(t, common.ColorSuccess, r.Embed.Color)
	assert.Contains(t, r.Embed.Description, "**4**")
}

func TestReply_DiceLogsSkippedChart(t *testing.T) {
	ctx := context.Background()
	hook := logtest.NewGlobal()
	t.Cleanup(hook.Reset)

	mockService := new(testhelpers.MockSimulationService)
	mockService.On("RollDice", ctx, 1, probability.DiceTally{}).
		Return(3, probability.DiceTally{}, probability.FairnessReport{}, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("u", "dice"))
	require.NoError(t, err)
	assert.Empty(t, r.Image)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, "Skipping dice chart", entry.Message)
	assert.ErrorIs(t, entry.Data[log.ErrorKey].(error), render.ErrEmptyChart)
}

func TestReply_Card(t *testing.T) {
	ctx := context.Background()
	card := probability.Card{Value: "Q", Suit: probability.Spades}

	mockService := new(testhelpers.MockSimulationService)
	mockService.On("DrawCards", ctx, 1, probability.CardTally{}).Return(card, probability.CardTally{0, 0, 0, 1}, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("u", "card"))
	require.NoError(t, err)
	assert.Contains(t, r.Embed.Description, "Q♠")
	assert.Contains(t, r.Embed.Fields[0].Value, "♠ spades")
}

func TestReply_Dependency(t *testing.T) {
	ctx := context.Background()
	stats := probability.DependencyStats{Kind: probability.Negative, Trials: 1000, A: 400, B: 340, AB: 40}

	mockService := new(testhelpers.MockSimulationService)
	mockService.On("Dependency", ctx, probability.Negative, 1000).Return(stats, nil)
	mockService.On("Dependency", ctx, probability.DependencyKind("odd"), 1000).
		Return(probability.DependencyStats{}, probability.ErrUnknownDependency)

	feature := NewFeature(mockService)
	r, err := feature.Reply(ctx, request("u", "dependency", strOpt("type", "negative")))
	require.NoError(t, err)
	assert.Equal(t, "🔬 Negative events", r.Embed.Title)
	assert.NotEmpty(t, r.Image)

	_, err = feature.Reply(ctx, request("u", "dependency", strOpt("type", "odd")))
	assert.ErrorIs(t, err, probability.ErrUnknownDependency)
}

func TestReply_Urn(t *testing.T) {
	ctx := context.Background()
	mockService := new(testhelpers.MockSimulationService)
	mockService.On("Urn", ctx, 500).Return(probability.UrnStats{Trials: 500, BlueFirst: 200, BlueThenRed: 150}, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("u", "urn", intOpt("trials", 500)))
	require.NoError(t, err)
	assert.Contains(t, r.Embed.Fields[2].Value, "0.7500")
}

func TestReply_Bernoulli(t *testing.T) {
	ctx := context.Background()
	mockService := new(testhelpers.MockSimulationService)
	stats := probability.BernoulliStats{P: 0.1, Trials: 1000, Successes: 98, Buckets: [10]int{98, 100, 101, 99, 102, 100, 100, 100, 100, 100}}
	report := probability.FairnessReport{ChiSquared: 0.1, Critical: 16.919, DegreesOfFreedom: 9}
	mockService.On("Bernoulli", ctx, 0.1, 1000).Return(stats, report, nil)

	r, err := NewFeature(mockService).Reply(ctx, request("u", "bernoulli",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "p", Type: discordgo.ApplicationCommandOptionNumber, Value: 0.1},
		intOpt("trials", 1000)))
	require.NoError(t, err)
	assert.Contains(t, r.Embed.Fields[1].Value, "0.0980")
	assert.Contains(t, r.Embed.Fields[3].Value, "evenly")
	require.NotNil(t, r.Embed.Footer)
	assert.Contains(t, r.Embed.Footer.Text, "9000.00")
}
