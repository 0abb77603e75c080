// Package recommend reduces a similarity matrix to ranked source→target
// recommendation lists.
package recommend

import (
	"sort"

	"github.com/kerjamatch/kerjamatch/internal/domain/level"
	"github.com/kerjamatch/kerjamatch/internal/similarity"
)

// Status marks whether a recommendation names an existing target.
type Status string

const (
	// StatusMatch names an existing target.
	StatusMatch Status = "MATCH"
	// StatusNoMatch is the zero-score sentinel: no existing target serves
	// this source and a new one should be opened.
	StatusNoMatch Status = "NO_MATCH"
)

// DefaultNoMatchNote is the report wording attached to a zero-score slot.
const DefaultNoMatchNote = "Rekomendasi dibuka pelatihan baru"

// Recommendation is one ranked source→target suggestion.
type Recommendation struct {
	SourceIndex int    `json:"source_index" yaml:"source_index"`
	SourceName  string `json:"source_name" yaml:"source_name"`
	Rank        int    `json:"rank" yaml:"rank"` // dense, 1-based per source

	// TargetIndex is nil and TargetName blank when Status is NO_MATCH, so
	// downstream reporting never names an unrelated target for a zero score.
	TargetIndex *int   `json:"target_index" yaml:"target_index"`
	TargetName  string `json:"target_name" yaml:"target_name"`

	Score        float64     `json:"score" yaml:"score"`
	ScorePercent float64     `json:"score_percent" yaml:"score_percent"`
	Status       Status      `json:"status" yaml:"status"`
	Level        level.Level `json:"level" yaml:"level"`
	Note         string      `json:"note,omitempty" yaml:"note,omitempty"`
}

// Options control threshold filtering, ranking and classification.
type Options struct {
	Threshold   float64
	TopN        int
	Levels      level.Thresholds
	NoMatchNote string // defaults to DefaultNoMatchNote when empty
}

// Reduce filters target scores by threshold, orders the survivors by
// descending score (ties keep original index order), truncates to TopN and
// assigns dense 1-based ranks. Zero candidates above threshold yield an
// empty sequence, not an error. targetNames may be nil.
func Reduce(scores []float64, sourceIdx int, sourceName string, targetNames []string, opts Options) []Recommendation {
	if opts.TopN <= 0 {
		return nil
	}
	note := opts.NoMatchNote
	if note == "" {
		note = DefaultNoMatchNote
	}

	kept := make([]int, 0, len(scores))
	for i, score := range scores {
		if score >= opts.Threshold {
			kept = append(kept, i)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return scores[kept[i]] > scores[kept[j]]
	})
	if len(kept) > opts.TopN {
		kept = kept[:opts.TopN]
	}

	recs := make([]Recommendation, 0, len(kept))
	for rank, target := range kept {
		score := scores[target]
		rec := Recommendation{
			SourceIndex:  sourceIdx,
			SourceName:   sourceName,
			Rank:         rank + 1,
			Score:        score,
			ScorePercent: score * 100,
			Status:       StatusMatch,
			Level:        opts.Levels.Classify(score),
		}
		if score == 0 {
			rec.Status = StatusNoMatch
			rec.Note = note
		} else {
			idx := target
			rec.TargetIndex = &idx
			if targetNames != nil {
				rec.TargetName = targetNames[target]
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

// ByRow recommends column targets for one fixed row of the matrix
// (training → jobs when rows are training programs).
func ByRow(m similarity.Matrix, row int, rowNames, colNames []string, opts Options) []Recommendation {
	return Reduce(m.Row(row), row, name(rowNames, row), colNames, opts)
}

// ByColumn recommends row targets for one fixed column of the matrix
// (jobs → training when columns are job positions).
func ByColumn(m similarity.Matrix, col int, rowNames, colNames []string, opts Options) []Recommendation {
	return Reduce(m.Col(col), col, name(colNames, col), rowNames, opts)
}

// AllRows runs ByRow for every row and flattens the results in row order.
func AllRows(m similarity.Matrix, rowNames, colNames []string, opts Options) []Recommendation {
	var all []Recommendation
	for row := range m {
		all = append(all, ByRow(m, row, rowNames, colNames, opts)...)
	}
	return all
}

// AllColumns runs ByColumn for every column and flattens the results in
// column order.
func AllColumns(m similarity.Matrix, rowNames, colNames []string, opts Options) []Recommendation {
	_, cols := m.Dims()
	var all []Recommendation
	for col := 0; col < cols; col++ {
		all = append(all, ByColumn(m, col, rowNames, colNames, opts)...)
	}
	return all
}

func name(names []string, i int) string {
	if names == nil {
		return ""
	}
	return names[i]
}
