package simulate

import (
	"fmt"

	"probtutor/bot/common"
	"probtutor/domain/probability"
	"probtutor/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// frequencyLine renders one category of a tally as count, share and bar
func frequencyLine(label string, count, total int) string {
	share := 0.0
	if total > 0 {
		share = float64(count) / float64(total)
	}
	return fmt.Sprintf("%-8s %6d  %6.2f%%  %s", label, count, share*100, common.Bar(share, 12))
}

func coinEmbed(last probability.CoinSide, times int, tally probability.CoinTally) *discordgo.MessageEmbed {
	lines := []string{
		frequencyLine("Heads", tally.Heads, tally.Total()),
		frequencyLine("Tails", tally.Tails, tally.Total()),
	}
	return &discordgo.MessageEmbed{
		Title:       "🪙 Coin flips",
		Description: fmt.Sprintf("Flipped %d time(s); last result: **%s**.", times, last),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("Tally (%s flips)", utils.FormatNumber(int64(tally.Total()))), Value: common.CodeBlock(lines, common.MaxFieldValueLength)},
			{Name: "Theory", Value: "P(heads) = P(tails) = 0.5"},
		},
	}
}

func diceEmbed(last, times int, tally probability.DiceTally, report probability.FairnessReport) *discordgo.MessageEmbed {
	lines := make([]string, len(tally))
	for i, n := range tally {
		lines[i] = frequencyLine(fmt.Sprintf("Face %d", i+1), n, tally.Total())
	}

	verdict := "✅ Consistent with a fair die"
	color := common.ColorSuccess
	if !report.Fair() {
		verdict = "⚠️ Unusual for a fair die"
		color = common.ColorWarning
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 Die rolls",
		Description: fmt.Sprintf("Rolled %d time(s); last result: **%d**.", times, last),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("Tally (%s rolls)", utils.FormatNumber(int64(tally.Total()))), Value: common.CodeBlock(lines, common.MaxFieldValueLength)},
			{Name: "Chi-squared test (95%)", Value: fmt.Sprintf("χ² = %.3f, critical %.3f, df %d\n%s",
				report.ChiSquared, report.Critical, report.DegreesOfFreedom, verdict)},
		},
	}
}

func cardEmbed(last probability.Card, times int, tally probability.CardTally) *discordgo.MessageEmbed {
	lines := make([]string, len(tally))
	for i, n := range tally {
		suit := probability.Suit(i)
		lines[i] = frequencyLine(suit.Symbol()+" "+suit.String(), n, tally.Total())
	}
	return &discordgo.MessageEmbed{
		Title:       "🃏 Card draws",
		Description: fmt.Sprintf("Drew %d card(s) with replacement; last card: **%s**.", times, last),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("Suits (%s draws)", utils.FormatNumber(int64(tally.Total()))), Value: common.CodeBlock(lines, common.MaxFieldValueLength)},
			{Name: "Theory", Value: "P(suit) = 13/52 = 0.25"},
		},
	}
}

func dependencyEmbed(stats probability.DependencyStats) *discordgo.MessageEmbed {
	pA, pB, pAB, _ := probability.ExpectedDependency(stats.Kind)
	rows := []string{
		fmt.Sprintf("%-8s %9s %9s", "", "simulated", "exact"),
		fmt.Sprintf("%-8s %9.4f %9.4f", "P(A)", stats.PA(), pA),
		fmt.Sprintf("%-8s %9.4f %9.4f", "P(B)", stats.PB(), pB),
		fmt.Sprintf("%-8s %9.4f %9.4f", "P(A∩B)", stats.PAB(), pAB),
		fmt.Sprintf("%-8s %9.4f %9.4f", "P(A)P(B)", stats.PA()*stats.PB(), pA*pB),
		fmt.Sprintf("%-8s %9.4f", "P(B|A)", stats.PBGivenA()),
		fmt.Sprintf("%-8s %9.4f", "P(A|B)", stats.PAGivenB()),
	}

	var explanation string
	switch stats.Kind {
	case probability.Positive:
		explanation = "A makes B more likely: P(B|A) > P(B)."
	case probability.Negative:
		explanation = "A makes B less likely: P(B|A) < P(B)."
	default:
		explanation = "A does not change B: P(A∩B) = P(A)·P(B)."
	}

	return &discordgo.MessageEmbed{
		Title:       "🔬 " + utils.Capitalize(string(stats.Kind)) + " events",
		Description: fmt.Sprintf("%s\n%s trials.", explanation, utils.FormatNumber(int64(stats.Trials))),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Frequencies", Value: common.CodeBlock(rows, common.MaxFieldValueLength)},
		},
	}
}

func urnEmbed(stats probability.UrnStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🏺 Urn without replacement",
		Description: "3 red and 2 blue balls; draw two without putting the first back.",
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Blue first", Value: fmt.Sprintf("%s of %s trials", utils.FormatNumber(int64(stats.BlueFirst)), utils.FormatNumber(int64(stats.Trials))), Inline: true},
			{Name: "Then red", Value: utils.FormatNumber(int64(stats.BlueThenRed)), Inline: true},
			{Name: "P(red 2nd | blue 1st)", Value: fmt.Sprintf("simulated **%.4f**, exact %.4f (3/4)", stats.Estimate(), probability.UrnExpected)},
		},
	}
}

// bernoulliEmbed compares the observed rate with p and shows the fair payout
func bernoulliEmbed(stats probability.BernoulliStats, uniformity probability.FairnessReport) *discordgo.MessageEmbed {
	lines := make([]string, len(stats.Buckets))
	for i, n := range stats.Buckets {
		lo := float64(i) / probability.BernoulliBuckets
		lines[i] = frequencyLine(fmt.Sprintf("[%.1f,%.1f)", lo, lo+1.0/probability.BernoulliBuckets), n, stats.Trials)
	}

	verdict := "✅ Draws are spread evenly"
	if !uniformity.Fair() {
		verdict = "⚠️ Draws are unevenly spread"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎯 Bernoulli trials",
		Description: fmt.Sprintf("Each trial succeeds when a uniform draw u < p = %.4f.", stats.P),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Successes", Value: fmt.Sprintf("%s of %s", utils.FormatNumber(int64(stats.Successes)), utils.FormatNumber(int64(stats.Trials))), Inline: true},
			{Name: "Observed rate", Value: fmt.Sprintf("**%.4f** (%+.4f)", stats.Rate(), stats.Deviation()), Inline: true},
			{Name: "Uniform draws", Value: common.CodeBlock(lines, common.MaxFieldValueLength)},
			{Name: "Chi-squared test (95%)", Value: fmt.Sprintf("χ² = %.3f, critical %.3f, df %d\n%s",
				uniformity.ChiSquared, uniformity.Critical, uniformity.DegreesOfFreedom, verdict)},
		},
	}
	if bet, err := probability.FairBet(stats.P, 1000); err == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("A fair game pays %.2f on a stake of 1000 (expected value %.2f).", bet.Payout, bet.ExpectedValue()),
		}
	}
	return embed
}
