package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the terminal styles of the CLI output.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style
	Answer lipgloss.Style
	Card   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// printer writes styled lesson output.
type printer struct {
	out   io.Writer
	theme Theme
}

func (p printer) title(text string) {
	fmt.Fprintln(p.out, p.theme.Title.Render(text))
}

func (p printer) field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.theme.Label.Render(label+":"), value)
}

func (p printer) answer(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.theme.Label.Render(label+":"), p.theme.Answer.Render(value))
}

func (p printer) note(text string) {
	fmt.Fprintln(p.out, p.theme.Muted.Render(text))
}

func (p printer) lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.out, "  "+l)
	}
}

func (p printer) card(lines ...string) {
	fmt.Fprintln(p.out, p.theme.Card.Render(strings.Join(lines, "\n")))
}
