package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Options indexes slash command options by name.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// Subcommand returns the invoked subcommand and its options. Commands
// without subcommands return an empty name and the top-level options.
func Subcommand(data discordgo.ApplicationCommandInteractionData) (string, Options) {
	if len(data.Options) == 1 && data.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		return data.Options[0].Name, NewOptions(data.Options[0].Options)
	}
	return "", NewOptions(data.Options)
}

// NewOptions builds an Options index.
func NewOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	m := make(Options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// Has reports whether the user supplied name.
func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Int returns the integer option name, or def when it is absent.
func (o Options) Int(name string, def int) int {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue())
	}
	return def
}

// Float returns the number option name, or def when it is absent.
func (o Options) Float(name string, def float64) float64 {
	if opt, ok := o[name]; ok {
		return opt.FloatValue()
	}
	return def
}

// String returns the string option name, or def when it is absent.
func (o Options) String(name, def string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return def
}

// Bool returns the boolean option name, or def when it is absent.
func (o Options) Bool(name string, def bool) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return def
}

// RequireString returns the string option name or a user error naming it.
func (o Options) RequireString(name string) (string, error) {
	opt, ok := o[name]
	if !ok || opt.StringValue() == "" {
		return "", NewUserError(fmt.Sprintf("`%s` is required", name), "missing option "+name)
	}
	return opt.StringValue(), nil
}
