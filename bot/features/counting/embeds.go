package counting

import (
	"fmt"
	"strings"

	"probtutor/bot/common"
	"probtutor/domain/counting"
	"probtutor/domain/input"
	"probtutor/domain/interfaces"
	"probtutor/domain/utils"

	"github.com/bwmarrin/discordgo"
)

// countColor picks the embed color for a result status
func countColor(c counting.Count) int {
	switch {
	case c.IsOverflow():
		return common.ColorWarning
	case c.IsUndefined():
		return common.ColorDanger
	default:
		return common.ColorPrimary
	}
}

// countEmbed shows a single counting result
func countEmbed(title, formula string, c counting.Count, explanation string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🔢 " + title,
		Description: explanation,
		Color:       countColor(c),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Formula", Value: "`" + formula + "`", Inline: true},
			{Name: "Result", Value: "**" + utils.FormatCount(c) + "**", Inline: true},
		},
	}

	switch {
	case c.IsOverflow():
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "The exact value does not fit in a 64-bit integer."}
	case c.IsUndefined():
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Check that n and k are non-negative and k ≤ n."}
	}
	return embed
}

func stagesFormula(stages []int) string {
	parts := make([]string, len(stages))
	for i, s := range stages {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, " × ")
}

// multisetEmbed explains the arrangements of a word with repeated letters
func multisetEmbed(word input.Word, c counting.Count) *discordgo.MessageEmbed {
	var letters, denominator []string
	for _, l := range word.Letters {
		letters = append(letters, fmt.Sprintf("%c×%d", l.Letter, l.Count))
		if l.Count > 1 {
			denominator = append(denominator, fmt.Sprintf("%d!", l.Count))
		}
	}

	formula := fmt.Sprintf("%d!", word.Length())
	if len(denominator) > 0 {
		formula += " / (" + strings.Join(denominator, "·") + ")"
	}

	embed := countEmbed("Permutations with repetition", formula, c,
		fmt.Sprintf("Distinct arrangements of the letters of **%s**.", word.Normalized))
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Letters",
		Value: common.Truncate(strings.Join(letters, " "), common.MaxFieldValueLength),
	})
	return embed
}

// pascalEmbed summarises the triangle; the image carries the rows
func pascalEmbed(tri *counting.Triangle, h counting.Highlight) *discordgo.MessageEmbed {
	lastRow := tri.Row(tri.MaxRow)
	values := make([]string, len(lastRow))
	for i, v := range lastRow {
		values[i] = utils.FormatCountShort(v)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔺 Pascal's triangle, rows 0–%d", tri.MaxRow),
		Description: "Every entry is the sum of the two above it: C(n,k) = C(n-1,k-1) + C(n-1,k).",
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: fmt.Sprintf("Row %d", tri.MaxRow), Value: "`" + strings.Join(values, " ") + "`"},
			{Name: "Highlight", Value: h.Note()},
		},
	}
}

// enumerationEmbed lists the sampled arrangements
func enumerationEmbed(res counting.Result) *discordgo.MessageEmbed {
	title := "🔀 Permutation examples"
	if res.Kind == counting.KindCombination {
		title = "🧺 Combination examples"
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: countColor(res.Total),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Formula", Value: "`" + res.Formula + "`", Inline: true},
			{Name: "Total", Value: "**" + utils.FormatCount(res.Total) + "**", Inline: true},
		},
	}

	if res.Message != "" {
		embed.Description = res.Message
		return embed
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("Examples (%d shown)", len(res.Examples)),
		Value: common.CodeBlock(res.Examples, common.MaxFieldValueLength),
	})
	if rest := res.Remaining(); rest.IsExact() && rest.Value > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("… and %s more", utils.FormatNumber(rest.Value))}
	} else if rest.IsOverflow() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "… and too many more to count exactly"}
	}
	return embed
}

// treeLines draws the tree as indented text, one node per line
func treeLines(node *counting.TreeNode, prefix string, last bool, out []string) []string {
	branch := "├─ "
	next := prefix + "│  "
	if last {
		branch = "└─ "
		next = prefix + "   "
	}
	out = append(out, prefix+branch+node.Label)
	for i, child := range node.Children {
		out = treeLines(child, next, i == len(node.Children)-1, out)
	}
	return out
}

// treeEmbed shows a decision tree and its complete paths
func treeEmbed(res counting.DecisionTreeResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🌳 Decision tree",
		Color: countColor(res.Total),
	}
	if res.Root == nil {
		embed.Description = res.Message
		return embed
	}

	lines := []string{res.Root.Label}
	for i, child := range res.Root.Children {
		lines = treeLines(child, "", i == len(res.Root.Children)-1, lines)
	}

	embed.Description = common.CodeBlock(lines, common.MaxDescriptionLength)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Depth", Value: fmt.Sprint(res.Depth), Inline: true},
		{Name: "Paths", Value: "**" + utils.FormatCount(res.Total) + "**", Inline: true},
	}
	if res.Truncated {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Only the first %d paths are drawn.", len(res.Paths)),
		}
	}
	return embed
}

// pathsEmbed shows grid path counts with sample routes
func pathsEmbed(res counting.PathsResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🧭 Grid paths to (%d, %d)", res.X, res.Y),
		Description: fmt.Sprintf("Every path uses %d right moves (R) and %d up moves (U); choose where the R moves go.", res.X, res.Y),
		Color:       countColor(res.Total),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Formula", Value: "`" + res.Formula + "`", Inline: true},
			{Name: "Paths", Value: "**" + utils.FormatCount(res.Total) + "**", Inline: true},
		},
	}
	if len(res.Examples) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Examples",
			Value: common.CodeBlock(res.Examples, common.MaxFieldValueLength),
		})
	}
	return embed
}

// teamsEmbed shows the case-by-case count next to the complement check
func teamsEmbed(req interfaces.TeamRequest, direct counting.TeamSelectionResult, complement counting.Count) *discordgo.MessageEmbed {
	var cases []string
	for _, c := range direct.Cases {
		cases = append(cases, fmt.Sprintf("%d exp + %d nov: %s = %s",
			c.Experienced, c.Novices, c.Formula(req.Experienced, req.Novices), utils.FormatCount(c.Ways)))
	}
	if len(cases) == 0 {
		cases = []string{"no admissible split"}
	}

	embed := &discordgo.MessageEmbed{
		Title: "👥 Team selection",
		Description: fmt.Sprintf("Teams of %d from %d experienced and %d novices, with at least %d experienced and %d novices.",
			req.Size, req.Experienced, req.Novices, req.MinExperienced, req.MinNovices),
		Color: countColor(direct.Total),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Cases", Value: common.CodeBlock(cases, common.MaxFieldValueLength)},
			{Name: "Direct count", Value: "**" + utils.FormatCount(direct.Total) + "**", Inline: true},
			{Name: "By complement", Value: "**" + utils.FormatCount(complement) + "**", Inline: true},
		},
	}
	if direct.Total != complement {
		embed.Color = common.ColorDanger
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "The two methods disagree."}
	}
	return embed
}
