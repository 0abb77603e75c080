package similarity

import "sort"

// JaccardTrace records the set construction behind one Jaccard score.
// All lists are sorted for stable display.
type JaccardTrace struct {
	SetA         []string `json:"set_a" yaml:"set_a"`
	SetB         []string `json:"set_b" yaml:"set_b"`
	Intersection []string `json:"intersection" yaml:"intersection"`
	Union        []string `json:"union" yaml:"union"`
	Score        float64  `json:"score" yaml:"score"`
}

// Jaccard returns |A ∩ B| / |A ∪ B| over the token sets (duplicates
// collapse, order is irrelevant). Returns 0 when the union is empty.
func Jaccard(tokensA, tokensB []string) float64 {
	setA := toSet(tokensA)
	setB := toSet(tokensB)

	inter := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// JaccardPair computes the score together with its full trace.
func JaccardPair(tokensA, tokensB []string) JaccardTrace {
	setA := toSet(tokensA)
	setB := toSet(tokensB)

	var inter, union []string
	for tok := range setA {
		union = append(union, tok)
		if _, ok := setB[tok]; ok {
			inter = append(inter, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			union = append(union, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(union)

	score := 0.0
	if len(union) > 0 {
		score = float64(len(inter)) / float64(len(union))
	}

	return JaccardTrace{
		SetA:         sortedKeys(setA),
		SetB:         sortedKeys(setB),
		Intersection: inter,
		Union:        union,
		Score:        score,
	}
}

// JaccardMatrix evaluates every (row, column) token-list pair. No
// shortcuts: this is O(len(a) × len(b)) pair evaluations with per-pair set
// construction, so callers should cache the result rather than recompute.
func JaccardMatrix(a, b [][]string) Matrix {
	m := NewMatrix(len(a), len(b))
	for i, ta := range a {
		for j, tb := range b {
			m[i][j] = Jaccard(ta, tb)
		}
	}
	return m
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
