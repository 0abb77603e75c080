package stemmer

import (
	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
)

// Sastrawi stems with the go-sastrawi port of the Sastrawi Indonesian
// stemmer, using its stock root-word dictionary.
type Sastrawi struct {
	stemmer sastrawi.Stemmer
}

// NewSastrawi creates the Indonesian stemmer. Construction is cheap; the
// dictionary is the library's built-in root-word set.
func NewSastrawi() *Sastrawi {
	return &Sastrawi{stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary())}
}

// Stem returns the Indonesian root of the word.
func (s *Sastrawi) Stem(word string) string {
	return s.stemmer.Stem(word)
}
