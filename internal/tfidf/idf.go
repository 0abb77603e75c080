// Package tfidf computes term statistics and TF-IDF weight vectors, both
// as a step-by-step two-document trace and as a corpus-wide vectorizer
// over a joint vocabulary.
package tfidf

import "math"

// IDFVariant selects the inverse-document-frequency formula.
//
// Two formulas historically coexisted for the pairwise comparison and they
// are not interchangeable; Smoothed is the system default and Unsmoothed is
// kept only as an explicitly requested variant.
type IDFVariant string

const (
	// IDFSmoothed is ln((N+1)/(df+1)) + 1. Default everywhere.
	IDFSmoothed IDFVariant = "smoothed"
	// IDFUnsmoothed is ln(N/df), 0 when df is 0. Pairwise reports only.
	IDFUnsmoothed IDFVariant = "unsmoothed"
)

// IsValid checks if the variant is one of the supported values.
func (v IDFVariant) IsValid() bool {
	return v == IDFSmoothed || v == IDFUnsmoothed
}

// Weight returns the IDF of a term with document frequency df in a
// collection of n documents.
func (v IDFVariant) Weight(n, df int) float64 {
	if v == IDFUnsmoothed {
		if df == 0 {
			return 0
		}
		return math.Log(float64(n) / float64(df))
	}
	return math.Log(float64(n+1)/float64(df+1)) + 1
}
