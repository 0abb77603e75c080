package tfidf

import (
	"math"
	"sort"
)

// Vectorizer builds TF-IDF vectors over a single vocabulary fitted from a
// whole document collection. Weights use raw term counts, the smoothed IDF
// and L2 row normalization; these defaults are fixed because downstream
// scores must stay reproducible. Under L2 normalization, raw counts and
// relative frequencies yield identical rows.
type Vectorizer struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Fit builds the vocabulary (sorted alphabetically) and IDF table from the
// documents' token lists. To compare two corpora, fit over their
// concatenation: scores are only comparable on a joint vocabulary.
func Fit(docs [][]string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := len(docs)
	for i, term := range terms {
		index[term] = i
		idf[i] = IDFSmoothed.Weight(n, df[term])
	}

	return &Vectorizer{terms: terms, index: index, idf: idf}
}

// Terms returns the fitted vocabulary in alphabetical order.
func (v *Vectorizer) Terms() []string { return v.terms }

// Transform returns the L2-normalized TF-IDF vector of one document.
// A document with no known terms yields an all-zero vector.
func (v *Vectorizer) Transform(tokens []string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range tokens {
		if i, ok := v.index[tok]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// TransformAll transforms every document, in order.
func (v *Vectorizer) TransformAll(docs [][]string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// FitTransform fits a vocabulary over the documents and returns their
// vectors in one pass.
func FitTransform(docs [][]string) (*Vectorizer, [][]float64) {
	v := Fit(docs)
	return v, v.TransformAll(docs)
}
