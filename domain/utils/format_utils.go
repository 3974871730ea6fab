package utils

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"probtutor/domain/counting"
)

var printer = message.NewPrinter(language.English)

// FormatShortNotation formats a number using short notation (e.g., 50k instead of 50000)
func FormatShortNotation(value int64) string {
	absValue := value
	sign := ""
	if value < 0 {
		absValue = -value
		sign = "-"
	}

	switch {
	case absValue >= 1_000_000_000_000:
		return fmt.Sprintf("%s%.2fT", sign, float64(absValue)/1_000_000_000_000)
	case absValue >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fB", sign, float64(absValue)/1_000_000_000)
	case absValue >= 1_000_000:
		return fmt.Sprintf("%s%.2fM", sign, float64(absValue)/1_000_000)
	case absValue >= 10_000:
		return fmt.Sprintf("%s%dk", sign, absValue/1_000)
	case absValue >= 1_000:
		return fmt.Sprintf("%s%.1fk", sign, float64(absValue)/1_000)
	default:
		return fmt.Sprintf("%s%d", sign, absValue)
	}
}

// FormatNumber groups thousands, e.g. 2494800 -> "2,494,800".
func FormatNumber(value int64) string {
	return printer.Sprintf("%d", value)
}

// FormatCount renders a counting result for display.
func FormatCount(c counting.Count) string {
	switch {
	case c.IsExact():
		return FormatNumber(c.Value)
	case c.IsOverflow():
		return "too large to represent exactly"
	default:
		return counting.UndefinedMarker
	}
}

// FormatCountShort is FormatCount with short notation for large values.
func FormatCountShort(c counting.Count) string {
	if c.IsExact() {
		return FormatShortNotation(c.Value)
	}
	return c.String()
}

// FormatProbability renders p as "0.2500 (25.00%)".
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.4f (%.2f%%)", p, p*100)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
