package common

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Truncate shortens s to at most limit runes, marking the cut with "…".
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// CodeBlock wraps lines in a Discord code block, dropping trailing lines
// that would push it past limit characters.
func CodeBlock(lines []string, limit int) string {
	const fence = "```"
	budget := limit - 2*len(fence) - 2

	var b strings.Builder
	shown := 0
	for _, l := range lines {
		if b.Len()+len(l)+1 > budget-len("… 999 more") {
			break
		}
		b.WriteString(l)
		b.WriteByte('\n')
		shown++
	}
	if rest := len(lines) - shown; rest > 0 {
		fmt.Fprintf(&b, "… %d more", rest)
	}
	return fence + "\n" + strings.TrimRight(b.String(), "\n") + "\n" + fence
}

// Bar draws a text progress bar for a fraction in [0, 1].
func Bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
