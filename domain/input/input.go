// Package input parses raw text fields into the typed, constrained values
// the domain packages accept.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmpty      = errors.New("value is empty")
	ErrNotInteger = errors.New("not a whole number")
	ErrNegative   = errors.New("must not be negative")
	ErrOutOfRange = errors.New("out of range")
	ErrNotNumber  = errors.New("not a number")
	ErrNoLabels   = errors.New("no labels given")
)

// ParseLabels splits comma-separated text into trimmed labels. Empty labels
// are dropped, duplicates are kept.
func ParseLabels(text string) ([]string, error) {
	var labels []string
	for _, part := range strings.Split(text, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return labels, nil
}

// ParseInt parses a whole number of either sign.
func ParseInt(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, text, ErrNotInteger)
	}
	return v, nil
}

// ParseNonNegativeInt parses a whole number >= 0.
func ParseNonNegativeInt(field, text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, text, ErrNotInteger)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s %d: %w", field, v, ErrNegative)
	}
	return v, nil
}

// IntInRange checks that v lies in [lo, hi].
func IntInRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s %d: %w (want %d..%d)", field, v, ErrOutOfRange, lo, hi)
	}
	return nil
}

// ParseIntList parses comma-separated non-negative integers such as the
// options per stage or letter repetitions.
func ParseIntList(field, text string) ([]int, error) {
	parts := strings.Split(text, ",")
	values := make([]int, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParseNonNegativeInt(fmt.Sprintf("%s[%d]", field, i), part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	return values, nil
}

// ParseProbability parses a decimal in [0, 1].
func ParseProbability(field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, text, ErrNotNumber)
	}
	return v, CheckProbability(field, v)
}

// CheckProbability validates a value already parsed elsewhere, e.g. a
// Discord number option.
func CheckProbability(field string, v float64) error {
	if v != v || v < 0 || v > 1 {
		return fmt.Errorf("%s %g: %w (want 0..1)", field, v, ErrOutOfRange)
	}
	return nil
}

// ParseProbabilityList parses comma-separated probabilities.
func ParseProbabilityList(field, text string) ([]float64, error) {
	var values []float64
	for i, part := range strings.Split(text, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := ParseProbability(fmt.Sprintf("%s[%d]", field, i), part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	return values, nil
}

// ParsePercent parses a percentage such as "95" or "95%" into [0, 1].
func ParsePercent(field, text string) (float64, error) {
	text = strings.TrimSuffix(strings.TrimSpace(text), "%")
	if text == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, text, ErrNotNumber)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%s %g%%: %w (want 0..100)", field, v, ErrOutOfRange)
	}
	return v / 100, nil
}

// ParseMatrix parses rows separated by ';' of comma-separated non-negative
// integers, e.g. "20,30,10; 15,25,20".
func ParseMatrix(field, text string) ([][]int, error) {
	var rows [][]int
	for i, line := range strings.Split(text, ";") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseIntList(fmt.Sprintf("%s row %d", field, i+1), line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", field, ErrEmpty)
	}
	return rows, nil
}
