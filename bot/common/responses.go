package common

import (
	"bytes"
	"context"

	"github.com/bwmarrin/discordgo"
)

// ImageName is the attachment name used for rendered charts.
const ImageName = "chart.png"

// Request is a parsed slash command invocation.
type Request struct {
	UserID     string
	Command    string
	Subcommand string
	Options    Options
}

// NewRequest parses the command data of i.
func NewRequest(i *discordgo.InteractionCreate) Request {
	data := i.ApplicationCommandData()
	sub, opts := Subcommand(data)
	return Request{
		UserID:     InteractionUserID(i),
		Command:    data.Name,
		Subcommand: sub,
		Options:    opts,
	}
}

// Reply is what a feature answers with. Image, when set, is attached as a
// PNG and shown inside the embed.
type Reply struct {
	Embed     *discordgo.MessageEmbed
	Image     []byte
	Ephemeral bool
}

// Responder is implemented by every slash command feature.
type Responder interface {
	Reply(ctx context.Context, req Request) (*Reply, error)
}

// Respond sends r as the interaction response
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, r *Reply) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{r.Embed},
	}

	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	if len(r.Image) > 0 {
		r.Embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + ImageName}
		data.Files = []*discordgo.File{{
			Name:        ImageName,
			ContentType: "image/png",
			Reader:      bytes.NewReader(r.Image),
		}}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}
