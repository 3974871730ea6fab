package input

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrNoLetters = errors.New("word has no letters")

// LetterCount is how often one letter occurs in a word.
type LetterCount struct {
	Letter rune
	Count  int
}

// Word is a word reduced to the letter counts needed for multiset
// permutations.
type Word struct {
	Normalized string
	Letters    []LetterCount // in order of first appearance
}

// Length is the number of letters in the word.
func (w Word) Length() int {
	n := 0
	for _, l := range w.Letters {
		n += l.Count
	}
	return n
}

// Repeats returns the counts of letters that occur more than once.
func (w Word) Repeats() []int {
	var reps []int
	for _, l := range w.Letters {
		if l.Count > 1 {
			reps = append(reps, l.Count)
		}
	}
	return reps
}

// ParseWord upper-cases text, strips accents so that "Í" counts as "I", and
// counts letters. Anything that is not a letter is ignored.
func ParseWord(text string) (Word, error) {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripAccents, strings.ToUpper(text))
	if err != nil {
		return Word{}, err
	}

	var (
		b     strings.Builder
		w     Word
		index = map[rune]int{}
	)
	for _, r := range plain {
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(r)
		if i, ok := index[r]; ok {
			w.Letters[i].Count++
			continue
		}
		index[r] = len(w.Letters)
		w.Letters = append(w.Letters, LetterCount{Letter: r, Count: 1})
	}
	if len(w.Letters) == 0 {
		return Word{}, ErrNoLetters
	}
	w.Normalized = b.String()
	return w, nil
}
