// Package stemmer maps tokens to canonical Indonesian stems. The stemming
// capability itself is pluggable: callers inject a Stemmer and may
// substitute Noop to run the pipeline in a no-stemming degraded mode.
package stemmer

// Stemmer maps a single token to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Noop returns every token unchanged. It is the degraded-mode and test
// substitute for the real stemmer.
type Noop struct{}

// Stem returns the word as-is.
func (Noop) Stem(word string) string { return word }

// DefaultRules are domain-significant terms the generic stemmer would get
// wrong ("peserta" must survive, "perawatan" must become "rawat").
func DefaultRules() map[string]string {
	return map[string]string{
		"peserta":   "peserta",
		"perawatan": "rawat",
	}
}

// Overlay applies caller-supplied override rules before falling back to the
// wrapped stemmer.
type Overlay struct {
	rules map[string]string
	next  Stemmer
}

// NewOverlay wraps next with the given override rules. A nil rules map is
// allowed and makes the overlay a plain pass-through to next.
func NewOverlay(rules map[string]string, next Stemmer) *Overlay {
	return &Overlay{rules: rules, next: next}
}

// Stem returns the override for the word when one exists, otherwise the
// wrapped stemmer's result.
func (o *Overlay) Stem(word string) string {
	if stem, ok := o.rules[word]; ok {
		return stem
	}
	return o.next.Stem(word)
}

// Tokens stems every token, preserving length and order.
func Tokens(s Stemmer, tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = s.Stem(tok)
	}
	return out
}
