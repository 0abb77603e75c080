package tfidf

import (
	"math"
	"sort"
)

// TermStat holds the raw count and relative frequency of one term in one
// document.
type TermStat struct {
	Count int     `json:"count" yaml:"count"`
	TF    float64 `json:"tf" yaml:"tf"`
}

// PairTrace records every intermediate step of a two-document TF-IDF
// cosine comparison. It is an immutable value returned to the caller;
// nothing is stashed between stages.
type PairTrace struct {
	Variant IDFVariant `json:"variant" yaml:"variant"`

	// Terms is the sorted union of both token lists. Alphabetical order is
	// part of the contract: display and fixtures index into it.
	Terms []string `json:"terms" yaml:"terms"`

	StatsA map[string]TermStat `json:"stats_a" yaml:"stats_a"`
	StatsB map[string]TermStat `json:"stats_b" yaml:"stats_b"`
	DF     map[string]int      `json:"df" yaml:"df"` // per term, in {0,1,2}
	IDF    map[string]float64  `json:"idf" yaml:"idf"`

	WeightsA map[string]float64 `json:"weights_a" yaml:"weights_a"`
	WeightsB map[string]float64 `json:"weights_b" yaml:"weights_b"`

	// VecA and VecB are the weight vectors aligned with Terms.
	VecA []float64 `json:"vec_a" yaml:"vec_a"`
	VecB []float64 `json:"vec_b" yaml:"vec_b"`

	Dot        float64 `json:"dot" yaml:"dot"`
	MagA       float64 `json:"mag_a" yaml:"mag_a"`
	MagB       float64 `json:"mag_b" yaml:"mag_b"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// ComparePair runs the full pairwise TF-IDF comparison with N fixed at 2.
// A zero-token document contributes an all-zero vector and the resulting
// similarity is 0, never an error.
func ComparePair(tokensA, tokensB []string, variant IDFVariant) PairTrace {
	if !variant.IsValid() {
		variant = IDFSmoothed
	}

	seen := make(map[string]struct{}, len(tokensA)+len(tokensB))
	for _, tok := range tokensA {
		seen[tok] = struct{}{}
	}
	for _, tok := range tokensB {
		seen[tok] = struct{}{}
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	statsA := termStats(terms, tokensA)
	statsB := termStats(terms, tokensB)

	df := make(map[string]int, len(terms))
	idf := make(map[string]float64, len(terms))
	for _, term := range terms {
		n := 0
		if statsA[term].Count > 0 {
			n++
		}
		if statsB[term].Count > 0 {
			n++
		}
		df[term] = n
		idf[term] = variant.Weight(2, n)
	}

	weightsA := make(map[string]float64, len(terms))
	weightsB := make(map[string]float64, len(terms))
	vecA := make([]float64, len(terms))
	vecB := make([]float64, len(terms))
	var dot, magA, magB float64
	for i, term := range terms {
		wa := statsA[term].TF * idf[term]
		wb := statsB[term].TF * idf[term]
		weightsA[term] = wa
		weightsB[term] = wb
		vecA[i] = wa
		vecB[i] = wb
		dot += wa * wb
		magA += wa * wa
		magB += wb * wb
	}
	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)

	sim := 0.0
	if magA > 0 && magB > 0 {
		sim = dot / (magA * magB)
	}

	return PairTrace{
		Variant:    variant,
		Terms:      terms,
		StatsA:     statsA,
		StatsB:     statsB,
		DF:         df,
		IDF:        idf,
		WeightsA:   weightsA,
		WeightsB:   weightsB,
		VecA:       vecA,
		VecB:       vecB,
		Dot:        dot,
		MagA:       magA,
		MagB:       magB,
		Similarity: sim,
	}
}

// termStats counts each vocabulary term in the token list. TF is
// count/len(tokens), 0 for a zero-token document.
func termStats(terms, tokens []string) map[string]TermStat {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	stats := make(map[string]TermStat, len(terms))
	for _, term := range terms {
		c := counts[term]
		tf := 0.0
		if len(tokens) > 0 {
			tf = float64(c) / float64(len(tokens))
		}
		stats[term] = TermStat{Count: c, TF: tf}
	}
	return stats
}
