package domain

import "errors"

var (
	// ErrInvalidThresholds signals match-level thresholds that violate the
	// descending-order invariant.
	ErrInvalidThresholds = errors.New("invalid match thresholds")
	// ErrInvalidPlacementRate signals a placement-rate field that is neither
	// a percentage string nor a parseable number.
	ErrInvalidPlacementRate = errors.New("invalid placement rate")
	// ErrEmptyCorpus signals a corpus with no documents where at least one
	// is required.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrMatrixShape signals a similarity matrix whose dimensions do not
	// match the corpora being compared.
	ErrMatrixShape = errors.New("matrix shape mismatch")
)
