package level

import (
	"fmt"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

// Level is the ordinal quality bucket of a similarity score.
type Level string

// Match levels, best first.
const (
	Excellent Level = "excellent"
	VeryGood  Level = "very_good"
	Good      Level = "good"
	Fair      Level = "fair"
	Weak      Level = "weak"
)

// Thresholds holds the four lower bounds that split [0,1] into five levels.
// Invariant: Excellent > VeryGood > Good > Fair >= 0.
type Thresholds struct {
	Excellent float64
	VeryGood  float64
	Good      float64
	Fair      float64
}

// Default are the thresholds the system ships with.
var Default = Thresholds{Excellent: 0.80, VeryGood: 0.65, Good: 0.50, Fair: 0.35}

// Validate checks the descending-order invariant. A violation is a
// configuration error and must stop the run before any score is classified.
func (t Thresholds) Validate() error {
	if t.Excellent > 1 {
		return fmt.Errorf("%w: excellent %.3f exceeds 1", domain.ErrInvalidThresholds, t.Excellent)
	}
	if !(t.Excellent > t.VeryGood && t.VeryGood > t.Good && t.Good > t.Fair) {
		return fmt.Errorf(
			"%w: want excellent > very_good > good > fair, got %.3f, %.3f, %.3f, %.3f",
			domain.ErrInvalidThresholds, t.Excellent, t.VeryGood, t.Good, t.Fair,
		)
	}
	if t.Fair < 0 {
		return fmt.Errorf("%w: fair %.3f is negative", domain.ErrInvalidThresholds, t.Fair)
	}
	return nil
}

// Classify maps a similarity score to its level.
func (t Thresholds) Classify(score float64) Level {
	switch {
	case score >= t.Excellent:
		return Excellent
	case score >= t.VeryGood:
		return VeryGood
	case score >= t.Good:
		return Good
	case score >= t.Fair:
		return Fair
	default:
		return Weak
	}
}
