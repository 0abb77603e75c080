package market

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/similarity"
)

// Matcher computes the joint-vocabulary cosine matrix between two corpora.
type Matcher interface {
	CosineMatrix(a, b domain.Corpus) (similarity.Matrix, error)
}

// Config holds the analyzer thresholds.
type Config struct {
	// ProgramThreshold is the minimum realization → training similarity
	// below which a program is reported UNMATCHED.
	ProgramThreshold float64
	// JobThreshold is the minimum training → job similarity for a posting
	// to count toward market capacity.
	JobThreshold float64
	// TopJobs caps the per-program matched-job detail list.
	TopJobs int
}

// Service runs the market-gap analysis.
type Service struct {
	matcher Matcher
	cfg     Config
	log     *zap.Logger
}

// New creates a market analysis service.
func New(matcher Matcher, cfg Config, log *zap.Logger) *Service {
	if cfg.TopJobs <= 0 {
		cfg.TopJobs = 10
	}
	return &Service{matcher: matcher, cfg: cfg, log: log}
}

// Analyze matches every realization program to its closest training
// program, sums the vacancies of that program's matching jobs, and
// classifies the placement-vs-capacity gap. trainingToJobs must be the
// precomputed (training × jobs) cosine matrix. A malformed placement rate
// aborts the run.
func (s *Service) Analyze(
	realization, training, jobs domain.Corpus,
	trainingToJobs similarity.Matrix,
) (Report, error) {
	if realization.Len() == 0 || training.Len() == 0 || jobs.Len() == 0 {
		return Report{}, domain.ErrEmptyCorpus
	}
	if rows, cols := trainingToJobs.Dims(); rows != training.Len() || cols != jobs.Len() {
		return Report{}, fmt.Errorf(
			"%w: matrix is %dx%d, corpora are %dx%d",
			domain.ErrMatrixShape, rows, cols, training.Len(), jobs.Len(),
		)
	}

	realToTraining, err := s.matcher.CosineMatrix(realization, training)
	if err != nil {
		return Report{}, fmt.Errorf("match realization to training: %w", err)
	}

	report := Report{}
	for i, program := range realization.Docs {
		rate, err := ParsePlacementRate(program.PlacementRate)
		if err != nil {
			return Report{}, fmt.Errorf("program %q: %w", program.Name, err)
		}

		bestIdx, bestScore := argmax(realToTraining.Row(i))
		trainingName := training.Docs[bestIdx].Name
		confidence := bestScore * 100

		if bestScore < s.cfg.ProgramThreshold {
			s.log.Debug("realization program unmatched",
				zap.String("program", program.Name),
				zap.String("best_match", trainingName),
				zap.Float64("score", bestScore),
			)
			report.Unmatched = append(report.Unmatched, Unmatched{
				ProgramName: program.Name,
				BestMatch:   trainingName,
				Confidence:  confidence,
			})
			report.Results = append(report.Results, Result{
				ProgramName:   program.Name,
				Graduates:     program.Graduates,
				Placed:        program.Placed,
				PlacementRate: rate,
				TrainingMatch: trainingName,
				Confidence:    confidence,
				Gap:           rate, // capacity is 0 for an unmatched program
				Status:        StatusUnmatched,
			})
			continue
		}

		jobRow := trainingToJobs.Row(bestIdx)
		totalVacancies := 0
		var matched []JobMatch
		for j, score := range jobRow {
			if score < s.cfg.JobThreshold {
				continue
			}
			job := jobs.Docs[j]
			vacancies := job.Vacancies
			if vacancies <= 0 {
				vacancies = 1
			}
			totalVacancies += vacancies
			matched = append(matched, JobMatch{
				JobName:     job.Name,
				CompanyName: job.Company,
				Similarity:  score * 100,
				Vacancies:   vacancies,
			})
		}
		sort.SliceStable(matched, func(a, b int) bool {
			return matched[a].Similarity > matched[b].Similarity
		})
		topJobs := matched
		if len(topJobs) > s.cfg.TopJobs {
			topJobs = topJobs[:s.cfg.TopJobs]
		}

		capacity := 0.0
		if program.Graduates > 0 {
			capacity = float64(totalVacancies) / float64(program.Graduates) * 100
		}
		gap := rate - capacity

		report.Results = append(report.Results, Result{
			ProgramName:    program.Name,
			Graduates:      program.Graduates,
			Placed:         program.Placed,
			PlacementRate:  rate,
			TrainingMatch:  trainingName,
			Confidence:     confidence,
			MatchingJobs:   len(matched),
			TotalVacancies: totalVacancies,
			MarketCapacity: capacity,
			Gap:            gap,
			Status:         ClassifyGap(gap),
			TopJobs:        topJobs,
		})
	}

	report.Summary = summarize(report.Results)
	s.log.Info("market analysis complete",
		zap.Int("programs", report.Summary.TotalPrograms),
		zap.Int("unmatched", len(report.Unmatched)),
		zap.Float64("overall_gap", report.Summary.Gap),
	)
	return report, nil
}

func summarize(results []Result) Summary {
	sum := Summary{TotalPrograms: len(results)}
	for _, r := range results {
		sum.TotalGraduates += r.Graduates
		sum.TotalPlaced += r.Placed
		sum.TotalVacancies += r.TotalVacancies
	}
	if sum.TotalGraduates > 0 {
		sum.PlacementRate = float64(sum.TotalPlaced) / float64(sum.TotalGraduates) * 100
		sum.MarketCapacity = float64(sum.TotalVacancies) / float64(sum.TotalGraduates) * 100
	}
	sum.Gap = sum.PlacementRate - sum.MarketCapacity
	return sum
}

func argmax(scores []float64) (int, float64) {
	best, bestScore := 0, scores[0]
	for i, s := range scores {
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}
