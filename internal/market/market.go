// Package market analyzes supply/demand gaps per training program by
// chaining two cosine-matching passes: realization → training, then the
// precomputed training → job matrix, folded with headcount numbers.
package market

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

// Status classifies the placement-vs-capacity gap of one program.
type Status string

// Gap statuses. Unmatched means no training program resembled the
// realization record closely enough to analyze at all.
const (
	StatusOversupply          Status = "OVERSUPPLY"
	StatusHighExternal        Status = "HIGH_EXTERNAL"
	StatusBalanced            Status = "BALANCED"
	StatusUndersupply         Status = "UNDERSUPPLY"
	StatusCriticalUndersupply Status = "CRITICAL_UNDERSUPPLY"
	StatusUnmatched           Status = "UNMATCHED"
)

// ClassifyGap maps a gap (placement rate minus market capacity, in
// percentage points) to its status bucket.
func ClassifyGap(gap float64) Status {
	switch {
	case gap > 20:
		return StatusOversupply
	case gap > 10:
		return StatusHighExternal
	case gap >= -10:
		return StatusBalanced
	case gap >= -20:
		return StatusUndersupply
	default:
		return StatusCriticalUndersupply
	}
}

// ParsePlacementRate normalizes a placement-rate field to a 0-100
// percentage. Upstream spreadsheets are inconsistent: the field is either
// a pre-formatted percentage string ("50.00%") or a raw fraction ("0.5").
// Anything else is a hard error; silently defaulting would corrupt every
// downstream gap.
func ParsePlacementRate(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", domain.ErrInvalidPlacementRate)
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPlacementRate, raw)
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPlacementRate, raw)
	}
	return v * 100, nil
}

// JobMatch is one job posting matched to a program, with its vacancy count.
type JobMatch struct {
	JobName     string  `json:"job_name" yaml:"job_name"`
	CompanyName string  `json:"company_name" yaml:"company_name"`
	Similarity  float64 `json:"similarity" yaml:"similarity"` // percent
	Vacancies   int     `json:"vacancies" yaml:"vacancies"`
}

// Result is the gap analysis of one realization program.
type Result struct {
	ProgramName    string     `json:"program_name" yaml:"program_name"`
	Graduates      int        `json:"graduates" yaml:"graduates"`
	Placed         int        `json:"placed" yaml:"placed"`
	PlacementRate  float64    `json:"placement_rate" yaml:"placement_rate"`
	TrainingMatch  string     `json:"training_match" yaml:"training_match"`
	Confidence     float64    `json:"confidence" yaml:"confidence"` // percent
	MatchingJobs   int        `json:"matching_jobs" yaml:"matching_jobs"`
	TotalVacancies int        `json:"total_vacancies" yaml:"total_vacancies"`
	MarketCapacity float64    `json:"market_capacity" yaml:"market_capacity"`
	Gap            float64    `json:"gap" yaml:"gap"`
	Status         Status     `json:"status" yaml:"status"`
	TopJobs        []JobMatch `json:"top_jobs,omitempty" yaml:"top_jobs,omitempty"`
}

// Unmatched describes a realization program no training program served.
type Unmatched struct {
	ProgramName string  `json:"program_name" yaml:"program_name"`
	BestMatch   string  `json:"best_match" yaml:"best_match"`
	Confidence  float64 `json:"confidence" yaml:"confidence"` // percent
}

// Summary aggregates the whole report.
type Summary struct {
	TotalPrograms  int     `json:"total_programs" yaml:"total_programs"`
	TotalGraduates int     `json:"total_graduates" yaml:"total_graduates"`
	TotalPlaced    int     `json:"total_placed" yaml:"total_placed"`
	TotalVacancies int     `json:"total_vacancies" yaml:"total_vacancies"`
	PlacementRate  float64 `json:"placement_rate" yaml:"placement_rate"`
	MarketCapacity float64 `json:"market_capacity" yaml:"market_capacity"`
	Gap            float64 `json:"gap" yaml:"gap"`
}

// Report is the full market analysis output. The result set is complete:
// unmatched programs appear as UNMATCHED results, never dropped rows.
type Report struct {
	Results   []Result    `json:"results" yaml:"results"`
	Unmatched []Unmatched `json:"unmatched,omitempty" yaml:"unmatched,omitempty"`
	Summary   Summary     `json:"summary" yaml:"summary"`
}
