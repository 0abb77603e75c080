// Package match orchestrates cross-corpus similarity: joint-vocabulary
// TF-IDF + cosine, Jaccard over stem sets, pairwise traces, and the
// reduction to ranked recommendations.
package match

import (
	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/recommend"
	"github.com/kerjamatch/kerjamatch/internal/similarity"
	"github.com/kerjamatch/kerjamatch/internal/tfidf"
)

// Service computes similarity matrices between two preprocessed corpora.
// The matrix computations are O(rows × columns); callers should keep the
// result around instead of recomputing per request.
type Service struct {
	log *zap.Logger
}

// New creates a matching service.
func New(log *zap.Logger) *Service {
	return &Service{log: log}
}

// CosineMatrix fits one TF-IDF vocabulary over the concatenation of both
// corpora, then compares every row document of a against every document of
// b. Fitting jointly is what makes scores comparable across the matrix.
func (s *Service) CosineMatrix(a, b domain.Corpus) (similarity.Matrix, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	stemsA := a.StemLists()
	stemsB := b.StemLists()
	combined := make([][]string, 0, len(stemsA)+len(stemsB))
	combined = append(combined, stemsA...)
	combined = append(combined, stemsB...)

	vec, rows := tfidf.FitTransform(combined)
	m := similarity.CosineMatrix(rows[:a.Len()], rows[a.Len():])

	s.log.Debug("cosine matrix computed",
		zap.Int("rows", a.Len()),
		zap.Int("cols", b.Len()),
		zap.Int("vocabulary", len(vec.Terms())),
	)
	return m, nil
}

// JaccardMatrix compares every stem-set pair across the two corpora.
func (s *Service) JaccardMatrix(a, b domain.Corpus) (similarity.Matrix, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	m := similarity.JaccardMatrix(a.StemLists(), b.StemLists())
	s.log.Debug("jaccard matrix computed",
		zap.Int("rows", a.Len()),
		zap.Int("cols", b.Len()),
	)
	return m, nil
}

// Pair runs the step-by-step two-document TF-IDF comparison between one
// document of each corpus.
func (s *Service) Pair(a, b domain.Document, variant tfidf.IDFVariant) tfidf.PairTrace {
	return tfidf.ComparePair(a.Stems, b.Stems, variant)
}

// JaccardPair runs the traced Jaccard comparison between two documents.
func (s *Service) JaccardPair(a, b domain.Document) similarity.JaccardTrace {
	return similarity.JaccardPair(a.Stems, b.Stems)
}

// Recommend reduces a similarity matrix into ranked lists. When sourceIdx
// is negative the batch mode runs over every source.
func (s *Service) Recommend(
	m similarity.Matrix, byRow bool, sourceIdx int,
	rowNames, colNames []string, opts recommend.Options,
) []recommend.Recommendation {
	switch {
	case byRow && sourceIdx >= 0:
		return recommend.ByRow(m, sourceIdx, rowNames, colNames, opts)
	case byRow:
		return recommend.AllRows(m, rowNames, colNames, opts)
	case sourceIdx >= 0:
		return recommend.ByColumn(m, sourceIdx, rowNames, colNames, opts)
	default:
		return recommend.AllColumns(m, rowNames, colNames, opts)
	}
}
