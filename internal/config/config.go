// Package config loads the kerjamatch YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kerjamatch/kerjamatch/internal/dataset"
	"github.com/kerjamatch/kerjamatch/internal/domain/level"
	"github.com/kerjamatch/kerjamatch/internal/tfidf"
	"github.com/kerjamatch/kerjamatch/internal/usecase/preprocess"
)

// Stemmer strategy names.
const (
	StemmerSastrawi = "sastrawi"
	StemmerNone     = "none"
)

// Config holds the full kerjamatch configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Preprocess PreprocessConfig `yaml:"preprocess"`
	TFIDF      TFIDFConfig      `yaml:"tfidf"`
	Recommend  RecommendConfig  `yaml:"recommend"`
	Levels     LevelsConfig     `yaml:"match_levels"`
	Market     MarketConfig     `yaml:"market"`
	Datasets   DatasetsConfig   `yaml:"datasets"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Format string `yaml:"format"` // json, console (default: console)
	Level  string `yaml:"level"`  // debug, info, warn, error
}

// PreprocessConfig holds the text-pipeline settings.
type PreprocessConfig struct {
	// Stemmer selects the stemming strategy: sastrawi (default) or none.
	// "none" runs the whole system in degraded no-stemming mode.
	Stemmer string `yaml:"stemmer"`
	// Stopwords replaces the stock Indonesian stopword list when set.
	Stopwords []string `yaml:"stopwords"`
	// StemRules are override stems checked before the stemmer.
	StemRules map[string]string `yaml:"stem_rules"`
	// FillTemplate fills a blank description from the program name;
	// {program} is the lowercased name.
	FillTemplate string `yaml:"fill_template"`
}

// TFIDFConfig holds term-statistics settings.
type TFIDFConfig struct {
	// PairIDF is the pairwise-trace IDF variant: smoothed (default) or
	// unsmoothed. The corpus vectorizer is always smoothed.
	PairIDF string `yaml:"pair_idf"`
}

// RecommendConfig holds recommendation-reducer defaults.
type RecommendConfig struct {
	Threshold   float64 `yaml:"threshold"`
	TopN        int     `yaml:"top_n"`
	NoMatchNote string  `yaml:"no_match_note"`
}

// LevelsConfig holds the 4 match-level thresholds.
type LevelsConfig struct {
	Excellent float64 `yaml:"excellent"`
	VeryGood  float64 `yaml:"very_good"`
	Good      float64 `yaml:"good"`
	Fair      float64 `yaml:"fair"`
}

// Thresholds converts to the domain value.
func (l LevelsConfig) Thresholds() level.Thresholds {
	return level.Thresholds{
		Excellent: l.Excellent,
		VeryGood:  l.VeryGood,
		Good:      l.Good,
		Fair:      l.Fair,
	}
}

// MarketConfig holds the gap-analyzer thresholds.
type MarketConfig struct {
	ProgramThreshold float64 `yaml:"program_threshold"`
	JobThreshold     float64 `yaml:"job_threshold"`
	TopJobs          int     `yaml:"top_jobs"`
}

// DatasetsConfig lets a deployment rename dataset columns without code
// changes. Unset mappings fall back to the stock column names.
type DatasetsConfig struct {
	Training    *dataset.Mapping `yaml:"training"`
	Job         *dataset.Mapping `yaml:"job"`
	Realization *dataset.Mapping `yaml:"realization"`
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults. ${VAR} and ${VAR:-default} are substituted from the
// environment before parsing.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Preprocess.Stemmer == "" {
		c.Preprocess.Stemmer = StemmerSastrawi
	}
	if c.Preprocess.StemRules == nil {
		c.Preprocess.StemRules = map[string]string{
			"peserta":   "peserta",
			"perawatan": "rawat",
		}
	}
	if c.Preprocess.FillTemplate == "" {
		c.Preprocess.FillTemplate = preprocess.DefaultObjectiveTemplate
	}
	if c.TFIDF.PairIDF == "" {
		c.TFIDF.PairIDF = string(tfidf.IDFSmoothed)
	}
	if c.Recommend.Threshold == 0 {
		c.Recommend.Threshold = 0.01
	}
	if c.Recommend.TopN <= 0 {
		c.Recommend.TopN = 3
	}
	if c.Levels == (LevelsConfig{}) {
		c.Levels = LevelsConfig{
			Excellent: level.Default.Excellent,
			VeryGood:  level.Default.VeryGood,
			Good:      level.Default.Good,
			Fair:      level.Default.Fair,
		}
	}
	if c.Market.ProgramThreshold == 0 {
		c.Market.ProgramThreshold = 0.3
	}
	if c.Market.JobThreshold == 0 {
		c.Market.JobThreshold = 0.3
	}
	if c.Market.TopJobs <= 0 {
		c.Market.TopJobs = 10
	}
}

// Validate checks the configuration for correctness. Threshold violations
// fail fast here: silently proceeding would corrupt every downstream
// score.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be \"json\" or \"console\", got %q", c.Logging.Format)
	}
	switch c.Preprocess.Stemmer {
	case StemmerSastrawi, StemmerNone:
	default:
		return fmt.Errorf("preprocess.stemmer must be %q or %q, got %q",
			StemmerSastrawi, StemmerNone, c.Preprocess.Stemmer)
	}
	if !tfidf.IDFVariant(c.TFIDF.PairIDF).IsValid() {
		return fmt.Errorf("tfidf.pair_idf must be %q or %q, got %q",
			tfidf.IDFSmoothed, tfidf.IDFUnsmoothed, c.TFIDF.PairIDF)
	}
	if err := c.Levels.Thresholds().Validate(); err != nil {
		return fmt.Errorf("match_levels: %w", err)
	}
	if c.Recommend.Threshold < 0 || c.Recommend.Threshold > 1 {
		return fmt.Errorf("recommend.threshold must be in [0,1], got %f", c.Recommend.Threshold)
	}
	if c.Market.ProgramThreshold < 0 || c.Market.ProgramThreshold > 1 {
		return fmt.Errorf("market.program_threshold must be in [0,1], got %f", c.Market.ProgramThreshold)
	}
	if c.Market.JobThreshold < 0 || c.Market.JobThreshold > 1 {
		return fmt.Errorf("market.job_threshold must be in [0,1], got %f", c.Market.JobThreshold)
	}
	return nil
}

// TrainingMapping returns the configured or stock training columns.
func (c *Config) TrainingMapping() dataset.Mapping {
	if c.Datasets.Training != nil {
		return *c.Datasets.Training
	}
	return dataset.TrainingMapping()
}

// JobMapping returns the configured or stock job columns.
func (c *Config) JobMapping() dataset.Mapping {
	if c.Datasets.Job != nil {
		return *c.Datasets.Job
	}
	return dataset.JobMapping()
}

// RealizationMapping returns the configured or stock realization columns.
func (c *Config) RealizationMapping() dataset.Mapping {
	if c.Datasets.Realization != nil {
		return *c.Datasets.Realization
	}
	return dataset.RealizationMapping()
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
