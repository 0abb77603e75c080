// Package cli wires the kerjamatch commands: corpus loading, the
// preprocessing pipeline and the similarity services behind a cobra
// command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/config"
	"github.com/kerjamatch/kerjamatch/internal/dataset"
	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/logger"
	"github.com/kerjamatch/kerjamatch/internal/stemmer"
	"github.com/kerjamatch/kerjamatch/internal/textproc"
	"github.com/kerjamatch/kerjamatch/internal/usecase/match"
	"github.com/kerjamatch/kerjamatch/internal/usecase/preprocess"
)

const appName = "kerjamatch"

var (
	// Used for flags.
	cfgFile   string
	logFormat string
	logLevel  string
	outFormat string

	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "kerjamatch matches vocational training programs to job postings",
		Long: appName + ` compares training-program descriptions against job postings
with TF-IDF cosine and Jaccard similarity, reduces the scores to ranked
recommendations, and analyzes placement-vs-market gaps per program.`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "json", "output format: json or yaml")
}

// app is the composition root shared by every command.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	pre     *preprocess.Service
	matcher *match.Service
}

// setup loads the configuration and builds the service graph.
func setup() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	var stem preprocess.Stemmer
	switch cfg.Preprocess.Stemmer {
	case config.StemmerSastrawi:
		stem = stemmer.NewOverlay(cfg.Preprocess.StemRules, stemmer.NewSastrawi())
	case config.StemmerNone:
		stem = stemmer.NewOverlay(cfg.Preprocess.StemRules, stemmer.Noop{})
	default:
		return nil, fmt.Errorf("unknown stemmer %q", cfg.Preprocess.Stemmer)
	}

	preCfg := preprocess.Config{FillTemplate: cfg.Preprocess.FillTemplate}
	if len(cfg.Preprocess.Stopwords) > 0 {
		preCfg.Stopwords = textproc.NewStopwords(cfg.Preprocess.Stopwords)
	}

	return &app{
		cfg:     cfg,
		log:     log,
		pre:     preprocess.New(stem, preCfg, log),
		matcher: match.New(log),
	}, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.log.Sync()
}

// loadCorpus reads one dataset file and runs the preprocessing pipeline.
func (a *app) loadCorpus(role domain.Role, path string) (domain.Corpus, error) {
	var mapping dataset.Mapping
	switch role {
	case domain.RoleTraining:
		mapping = a.cfg.TrainingMapping()
	case domain.RoleJob:
		mapping = a.cfg.JobMapping()
	case domain.RoleRealization:
		mapping = a.cfg.RealizationMapping()
	default:
		return domain.Corpus{}, fmt.Errorf("unknown corpus role %q", role)
	}

	docs, err := dataset.Load(path, mapping)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("loading %s dataset: %w", role, err)
	}
	a.log.Info("dataset loaded",
		zap.String("role", string(role)),
		zap.String("path", path),
		zap.Int("documents", len(docs)),
	)
	return a.pre.Corpus(role, docs), nil
}
