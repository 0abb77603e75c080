// Package textproc turns raw Indonesian free text into clean token
// sequences: Unicode normalization, lowercasing, punctuation and digit
// stripping, stopword removal, whitespace tokenization.
package textproc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	digits  = regexp.MustCompile(`\p{Nd}+`)
)

// Normalize lowercases the text, replaces every non-word character with a
// space, strips digit runs and collapses whitespace. Blank input yields "".
// Normalize is idempotent.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	text = digits.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Tokenize splits text on whitespace. Empty input yields an empty sequence.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Stopwords is a fixed set of function words to drop before tokenization.
type Stopwords map[string]struct{}

// NewStopwords builds a set from a word list.
func NewStopwords(words []string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether the word is a stopword.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// RemoveStopwords filters whitespace-split words against the set and
// rejoins with single spaces. Empty input is returned unchanged.
func RemoveStopwords(text string, stop Stopwords) string {
	if text == "" {
		return ""
	}
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !stop.Contains(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
