package probability

import (
	"fmt"

	"probtutor/bot/common"
	"probtutor/domain/probability"
	"probtutor/domain/utils"

	"github.com/bwmarrin/discordgo"
)

func basicEmbed(res probability.BasicResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎲 Classical probability",
		Description: "P(E) = favorable cases / possible cases",
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Calculation", Value: fmt.Sprintf("`%d / %d`", res.Favorable, res.Total), Inline: true},
			{Name: "P(E)", Value: "**" + utils.FormatProbability(res.Value) + "**", Inline: true},
			{Name: "Scale", Value: "`" + common.Bar(res.Value, 20) + "`"},
		},
	}
}

func conditionalEmbed(res probability.ConditionalResult) *discordgo.MessageEmbed {
	verdict := "❌ A and B are **dependent**: P(A|B) ≠ P(A)."
	color := common.ColorWarning
	if res.Independent {
		verdict = "✅ A and B are **independent**: P(A|B) = P(A)."
		color = common.ColorSuccess
	}

	return &discordgo.MessageEmbed{
		Title:       "🔗 Conditional probability",
		Description: verdict,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "P(A|B) = P(A∩B) / P(B)", Value: fmt.Sprintf("%.4f / %.4f = **%.4f**", res.PAB, res.PB, res.PAGivenB)},
			{Name: "P(B|A) = P(A∩B) / P(A)", Value: fmt.Sprintf("%.4f / %.4f = **%.4f**", res.PAB, res.PA, res.PBGivenA)},
		},
	}
}

func bayesEmbed(res probability.BayesResult) *discordgo.MessageEmbed {
	lines := make([]string, len(res.Priors))
	for i := range res.Priors {
		lines[i] = fmt.Sprintf("H%d  prior %.4f  likelihood %.4f  posterior %.4f",
			i+1, res.Priors[i], res.Likelihoods[i], res.Posteriors[i])
	}

	return &discordgo.MessageEmbed{
		Title:       "🧮 Bayes' theorem",
		Description: "P(Hi|E) = P(Hi)·P(E|Hi) / Σ P(Hj)·P(E|Hj)",
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "P(E), total probability", Value: "**" + utils.FormatProbability(res.Evidence) + "**"},
			{Name: "Hypotheses", Value: common.CodeBlock(lines, common.MaxFieldValueLength)},
		},
	}
}

func medicalEmbed(res probability.MedicalTestResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🩺 Diagnostic test",
		Description: fmt.Sprintf("Sensitivity %.2f%%, specificity %.2f%%, prevalence %.2f%%.",
			res.Sensitivity*100, res.Specificity*100, res.Prevalence*100),
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "P(+)", Value: utils.FormatProbability(res.PositiveRate), Inline: true},
			{Name: "False positive rate", Value: utils.FormatProbability(res.FalsePositiveRate), Inline: true},
			{Name: "P(sick | +)", Value: "**" + utils.FormatProbability(res.SickGivenPositive) + "**"},
			{Name: "P(healthy | +)", Value: utils.FormatProbability(res.HealthyGivenPositive())},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "With a rare disease most positive results are false positives."},
	}
}

func contingencyEmbed(t *probability.ContingencyTable) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "📊 Contingency table",
		Description: common.CodeBlock(t.Lines(), common.MaxDescriptionLength),
		Color:       common.ColorInfo,
	}

	p, ok := t.Probabilities()
	if !ok {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "The table has no observations."}
		return embed
	}

	var marginals []string
	for i, v := range p.Row {
		marginals = append(marginals, fmt.Sprintf("P(A%d) = %.4f", i+1, v))
	}
	for j, v := range p.Col {
		marginals = append(marginals, fmt.Sprintf("P(B%d) = %.4f", j+1, v))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Marginal probabilities",
		Value: common.CodeBlock(marginals, common.MaxFieldValueLength),
	})

	var conditionals []string
	for i, row := range p.ColGivenRow {
		if row == nil {
			conditionals = append(conditionals, fmt.Sprintf("A%d has no observations", i+1))
			continue
		}
		for j, v := range row {
			conditionals = append(conditionals, fmt.Sprintf("P(B%d|A%d) = %.4f", j+1, i+1, v))
		}
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Conditional probabilities",
		Value: common.CodeBlock(conditionals, common.MaxFieldValueLength),
	})
	return embed
}
