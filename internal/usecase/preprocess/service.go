// Package preprocess derives the token pipeline for whole corpora:
// fill blank source text from the program name, normalize, drop
// stopwords, tokenize, stem.
package preprocess

import (
	"strings"

	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/stemmer"
	"github.com/kerjamatch/kerjamatch/internal/textproc"
)

// namePlaceholder marks where the lowercased program name goes in a fill
// template.
const namePlaceholder = "{program}"

// DefaultObjectiveTemplate fills a blank training objective from the
// program name. The wording is a caller-owned constant, not core logic.
const DefaultObjectiveTemplate = "Setelah mengikuti pelatihan ini peserta kompeten" +
	" dalam melaksanakan pekerjaan {program} sesuai standar dan SOP di tempat kerja."

// DefaultDescriptionTemplate fills a blank program description.
const DefaultDescriptionTemplate = "Pelatihan ini adalah pelatihan untuk melaksanakan" +
	" pekerjaan {program} sesuai standar dan SOP di tempat kerja."

// Config holds the caller-owned preprocessing settings.
type Config struct {
	Stopwords textproc.Stopwords
	// FillTemplate replaces a blank SourceText, with {program} substituted
	// by the lowercased document name. Empty disables filling.
	FillTemplate string
}

// Service runs the preprocessing pipeline over corpora. Every invocation
// operates on its own documents, so a single Service is safe to share.
type Service struct {
	stem Stemmer
	cfg  Config
	log  *zap.Logger
}

// New creates a preprocessing service. A Noop stemmer puts the pipeline in
// degraded no-stemming mode; that is a capability decision made by the
// caller, not an error.
func New(stem Stemmer, cfg Config, log *zap.Logger) *Service {
	if cfg.Stopwords == nil {
		cfg.Stopwords = textproc.DefaultStopwords()
	}
	if _, ok := stem.(stemmer.Noop); ok {
		log.Warn("stemming disabled, similarity quality will degrade")
	}
	return &Service{stem: stem, cfg: cfg, log: log}
}

// Corpus preprocesses the documents and returns them as a corpus of the
// given role. Documents are transformed in place stage by stage; a blank
// SourceText becomes the fill template, and a document that still ends up
// with zero tokens stays in the corpus with empty stem lists.
func (s *Service) Corpus(role domain.Role, docs []domain.Document) domain.Corpus {
	filled := 0
	for i := range docs {
		doc := &docs[i]
		if strings.TrimSpace(doc.SourceText) == "" && s.cfg.FillTemplate != "" {
			doc.SourceText = strings.ReplaceAll(
				s.cfg.FillTemplate, namePlaceholder,
				strings.ToLower(strings.TrimSpace(doc.Name)),
			)
			filled++
		}
		doc.Normalized = textproc.Normalize(doc.SourceText)
		doc.Filtered = textproc.RemoveStopwords(doc.Normalized, s.cfg.Stopwords)
		doc.Tokens = textproc.Tokenize(doc.Filtered)
		doc.Stems = stemmer.Tokens(s.stem, doc.Tokens)
		doc.TokenCount = len(doc.Stems)
	}
	s.log.Debug("corpus preprocessed",
		zap.String("role", string(role)),
		zap.Int("documents", len(docs)),
		zap.Int("filled_from_template", filled),
	)
	return domain.Corpus{Role: role, Docs: docs}
}
