package problems

import (
	"fmt"
	"strings"

	"probtutor/bot/common"
	"probtutor/domain/counting"
	"probtutor/domain/problems"
	"probtutor/domain/utils"

	"github.com/bwmarrin/discordgo"
)

var difficultyColors = map[string]int{
	problems.Easy:   common.ColorSuccess,
	problems.Medium: common.ColorWarning,
	problems.Hard:   common.ColorDanger,
}

// generatedEmbed hides the answer behind a spoiler so students can try first
func generatedEmbed(p problems.Problem) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📝 %s problem (%s)", utils.Capitalize(p.Kind), p.Difficulty),
		Description: p.Text,
		Color:       difficultyColors[p.Difficulty],
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Hint", Value: "||" + p.Hint + "||"},
			{Name: "Formula", Value: "||`" + p.Formula + "`||", Inline: true},
			{Name: "Answer", Value: "||" + utils.FormatCount(p.Answer) + "||", Inline: true},
		},
	}
}

// workedEmbed walks through a solved problem step by step
func workedEmbed(w problems.WorkedExample, answer counting.Count) *discordgo.MessageEmbed {
	steps := make([]string, len(w.Steps))
	for i, s := range w.Steps {
		steps[i] = fmt.Sprintf("%d. %s", i+1, s)
	}

	return &discordgo.MessageEmbed{
		Title:       "📘 " + w.Title,
		Description: w.Statement,
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Solution", Value: common.Truncate(strings.Join(steps, "\n"), common.MaxFieldValueLength)},
			{Name: "Answer", Value: "**" + utils.FormatCount(answer) + "**"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Topic: " + w.Kind},
	}
}

// catalogEmbed lists the worked problems by id
func catalogEmbed(list []problems.WorkedExample) *discordgo.MessageEmbed {
	lines := make([]string, len(list))
	for i, w := range list {
		lines[i] = fmt.Sprintf("`%s` %s", w.ID, w.Title)
	}
	return &discordgo.MessageEmbed{
		Title:       "📚 Worked problems",
		Description: common.Truncate(strings.Join(lines, "\n"), common.MaxDescriptionLength),
		Color:       common.ColorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Use /problem worked id:<id> to see a solution."},
	}
}
