package bot

import (
	"context"
	"fmt"

	"probtutor/bot/common"
	"probtutor/domain/probability"
	"probtutor/domain/problems"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func floatPtr(v float64) *float64 { return &v }

func intOption(name, description string, required bool, min, max float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    floatPtr(min),
		MaxValue:    max,
	}
}

func numberOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        name,
		Description: description,
		Required:    true,
		MinValue:    floatPtr(0),
		MaxValue:    1,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func boolOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
	}
}

func choiceOption(name, description string, values []string) *discordgo.ApplicationCommandOption {
	opt := stringOption(name, description, false)
	for _, v := range values {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return opt
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// commandDefinitions describes every slash command. worked lists the ids
// offered as choices for /problem worked.
func commandDefinitions(worked []problems.WorkedExample) []*discordgo.ApplicationCommand {
	const maxN = 1000

	dependencyKinds := make([]string, len(probability.DependencyKinds))
	for i, k := range probability.DependencyKinds {
		dependencyKinds[i] = string(k)
	}

	workedID := stringOption("id", "Problem to solve; leave empty to list them", false)
	for _, w := range worked {
		if len(workedID.Choices) == common.MaxOptionChoices {
			break
		}
		workedID.Choices = append(workedID.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  common.Truncate(w.Title, 100),
			Value: w.ID,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "count",
			Description: "Counting techniques and combinatorics",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("factorial", "n! ways to order n elements",
					intOption("n", "Number of elements", true, 0, common.MaxFactorialInput)),
				subcommand("permutations", "P(n,k) ordered selections",
					intOption("n", "Elements available", true, 0, maxN),
					intOption("k", "Elements chosen", true, 0, maxN)),
				subcommand("combinations", "C(n,k) unordered selections",
					intOption("n", "Elements available", true, 0, maxN),
					intOption("k", "Elements chosen", true, 0, maxN),
					boolOption("repetition", "Allow choosing an element more than once")),
				subcommand("variations", "n^r ordered selections with repetition",
					intOption("n", "Elements available", true, 0, maxN),
					intOption("r", "Positions to fill", true, 0, maxN)),
				subcommand("multiset", "Arrangements of a word with repeated letters",
					stringOption("word", "Word, e.g. ESTADÍSTICA", true)),
				subcommand("stages", "Fundamental counting principle",
					stringOption("options", "Options per stage, e.g. 3,4,2", true)),
				subcommand("pascal", "Draw Pascal's triangle",
					intOption("rows", "Last row to draw", false, 0, 15),
					intOption("k", "Column of the last row to highlight", false, 0, 15)),
				subcommand("enumerate", "List example permutations or combinations",
					stringOption("elements", "Comma-separated elements, e.g. A,B,C,D", true),
					intOption("k", "Elements per selection", false, 0, 100),
					choiceOption("type", "What to list", []string{"permutation", "combination"})),
				subcommand("tree", "Decision tree of ordered choices",
					stringOption("elements", "Comma-separated choices", true),
					intOption("depth", "Number of levels", false, 1, 10)),
				subcommand("paths", "Right/up grid paths",
					intOption("x", "Right moves", true, 0, 30),
					intOption("y", "Up moves", true, 0, 30)),
				subcommand("teams", "Teams with minimum experienced and novice members",
					intOption("experienced", "Experienced people available", false, 0, 60),
					intOption("novices", "Novices available", false, 0, 60),
					intOption("size", "Team size", false, 0, 60),
					intOption("min_experienced", "Minimum experienced members", false, 0, 60),
					intOption("min_novices", "Minimum novice members", false, 0, 60)),
			},
		},
		{
			Name:        "probability",
			Description: "Probability calculators",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("basic", "Classical probability favorable/total",
					intOption("favorable", "Favorable cases", true, 0, 1e9),
					intOption("total", "Possible cases", true, 1, 1e9)),
				subcommand("conditional", "P(A|B) and P(B|A) from P(A∩B), P(A), P(B)",
					numberOption("p_ab", "P(A∩B)"),
					numberOption("p_a", "P(A)"),
					numberOption("p_b", "P(B)")),
				subcommand("bayes", "Bayes' theorem; leave empty for the three-urn example",
					stringOption("priors", "Comma-separated P(Hi)", false),
					stringOption("likelihoods", "Comma-separated P(E|Hi)", false)),
				subcommand("medical", "Probability of disease after a positive test",
					stringOption("sensitivity", "P(+|sick), e.g. 95%", false),
					stringOption("specificity", "P(-|healthy), e.g. 90%", false),
					stringOption("prevalence", "P(sick), e.g. 1%", false)),
				subcommand("contingency", "Probabilities from a two-way table",
					stringOption("table", "Rows separated by ';', e.g. 20,30,10; 15,25,20", false)),
			},
		},
		{
			Name:        "simulate",
			Description: "Random experiments",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("coin", "Flip a coin",
					intOption("times", "Number of flips", false, 1, common.MaxTrialsPerCommand)),
				subcommand("dice", "Roll a die and test its fairness",
					intOption("times", "Number of rolls", false, 1, common.MaxTrialsPerCommand)),
				subcommand("card", "Draw cards with replacement",
					intOption("times", "Number of draws", false, 1, common.MaxTrialsPerCommand)),
				subcommand("dependency", "Dependent and independent events",
					choiceOption("type", "Relationship between A and B", dependencyKinds),
					intOption("trials", "Number of trials", false, 1, common.MaxTrialsPerCommand)),
				subcommand("urn", "Two draws without replacement",
					intOption("trials", "Number of trials", false, 1, common.MaxTrialsPerCommand)),
				subcommand("bernoulli", "Repeated trials of an event with probability p",
					numberOption("p", "Probability of success"),
					intOption("trials", "Number of trials", false, 1, common.MaxTrialsPerCommand)),
			},
		},
		{
			Name:        "sets",
			Description: "Set operations on two sets",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("a", "Elements of A, comma-separated", true),
				stringOption("b", "Elements of B, comma-separated", true),
				stringOption("universe", "Universe for complements (default A ∪ B)", false),
			},
		},
		{
			Name:        "problem",
			Description: "Practice problems",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("generate", "Generate a random problem",
					choiceOption("kind", "Topic", problems.Kinds),
					choiceOption("difficulty", "Difficulty", problems.Difficulties)),
				subcommand("worked", "Step-by-step solved problems", workedID),
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := commandDefinitions(b.problems.ListWorked(context.Background()))

	appID := b.session.State.User.ID
	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}

	scope := "global"
	if b.config.GuildID != "" {
		scope = "guild " + b.config.GuildID
	}
	log.WithFields(log.Fields{
		"count": len(registered),
		"scope": scope,
	}).Info("Registered slash commands")
	return nil
}
