package sets

import (
	"probtutor/bot/common"
	"probtutor/domain/sets"

	"github.com/bwmarrin/discordgo"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func setField(name string, s sets.Set, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  "`" + common.Truncate(s.String(), common.MaxFieldValueLength-2) + "`",
		Inline: inline,
	}
}

// reportEmbed lays out every set operation
func reportEmbed(r sets.Report, implicitUniverse bool) *discordgo.MessageEmbed {
	universe := "U"
	if implicitUniverse {
		universe = "U = A ∪ B"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔵 Set operations",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			setField("A", r.A, true),
			setField("B", r.B, true),
			setField(universe, r.Universe, true),
			setField("A ∪ B", r.Union, true),
			setField("A ∩ B", r.Intersection, true),
			setField("A Δ B", r.SymmetricDifference, true),
			setField("A − B", r.DifferenceAB, true),
			setField("B − A", r.DifferenceBA, true),
			setField("A'", r.ComplementA, true),
			setField("B'", r.ComplementB, true),
			setField("(A ∪ B)'", r.ComplementUnion, true),
			setField("(A ∩ B)'", r.ComplementIntersection, true),
			{Name: "Relations", Value: "Disjoint: " + yesNo(r.Disjoint) +
				"\nA ⊆ B: " + yesNo(r.ASubsetB) +
				"\nB ⊆ A: " + yesNo(r.BSubsetA) +
				"\nA = B: " + yesNo(r.Equal)},
		},
	}
	return embed
}
