package bot

import (
	"context"
	"fmt"
	"time"

	"probtutor/bot/common"
	"probtutor/bot/features/counting"
	"probtutor/bot/features/probability"
	"probtutor/bot/features/problems"
	"probtutor/bot/features/sets"
	"probtutor/bot/features/simulate"
	"probtutor/domain/interfaces"
	"probtutor/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string // empty registers commands globally
}

// Services are the domain services the features answer from
type Services struct {
	Counting    interfaces.CountingService
	Probability interfaces.ProbabilityService
	Simulation  interfaces.SimulationService
	Problems    interfaces.ProblemService
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session

	// Event publishing
	eventPublisher events.Publisher

	// Feature modules by slash command name
	features map[string]common.Responder

	problems interfaces.ProblemService
}

// New creates a new bot instance with all features. The session is not
// opened until Start.
func New(config Config, services Services, eventPublisher events.Publisher) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := newBot(config, services, eventPublisher)
	bot.session = dg
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithFields(log.Fields{
			"user":   r.User.Username,
			"guilds": len(r.Guilds),
		}).Info("Bot is ready")
	})

	return bot, nil
}

func newBot(config Config, services Services, eventPublisher events.Publisher) *Bot {
	return &Bot{
		config:         config,
		eventPublisher: eventPublisher,
		problems:       services.Problems,
		features: map[string]common.Responder{
			"count":       counting.NewFeature(services.Counting),
			"probability": probability.NewFeature(services.Probability),
			"simulate":    simulate.NewFeature(services.Simulation),
			"sets":        sets.NewFeature(services.Probability),
			"problem":     problems.NewFeature(services.Problems),
		},
	}
}

// Start opens the websocket connection and registers slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return fmt.Errorf("error registering commands: %w", err)
	}
	return nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	log.Info("Closing Discord session")
	return b.session.Close()
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	req := common.NewRequest(i)
	feature, ok := b.features[req.Command]
	if !ok {
		log.Warnf("Unknown command: %s", req.Command)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := b.dispatch(ctx, feature, req, func(r *common.Reply) error {
		return common.Respond(s, i, r)
	})
	if err != nil {
		common.HandleError(s, i, err)
	}
}

// dispatch runs a feature, sends its reply and records the command outcome.
// Only feature errors are returned for an error reply; a failed send is
// logged and recorded, since the interaction cannot be answered again.
func (b *Bot) dispatch(ctx context.Context, feature common.Responder, req common.Request, send func(*common.Reply) error) error {
	reply, err := feature.Reply(ctx, req)
	failed := err != nil
	if err == nil {
		if sendErr := send(reply); sendErr != nil {
			failed = true
			log.WithFields(log.Fields{
				"command":    req.Command,
				"subcommand": req.Subcommand,
				"error":      sendErr,
			}).Error("Failed to send interaction response")
		}
	}

	if b.eventPublisher != nil {
		b.eventPublisher.Emit(ctx, events.CommandEvent{
			Surface: "discord",
			Command: commandName(req),
			Failed:  failed,
		})
	}
	return err
}

func commandName(req common.Request) string {
	if req.Subcommand == "" {
		return req.Command
	}
	return req.Command + " " + req.Subcommand
}
