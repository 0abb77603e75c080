package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kerjamatch.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Preprocess.Stemmer != StemmerSastrawi {
		t.Errorf("Stemmer = %q, want sastrawi", cfg.Preprocess.Stemmer)
	}
	if cfg.Recommend.TopN != 3 || cfg.Recommend.Threshold != 0.01 {
		t.Errorf("recommend defaults = %+v", cfg.Recommend)
	}
	if cfg.Levels.Excellent != 0.80 || cfg.Levels.Fair != 0.35 {
		t.Errorf("level defaults = %+v", cfg.Levels)
	}
	if cfg.Market.ProgramThreshold != 0.3 || cfg.Market.TopJobs != 10 {
		t.Errorf("market defaults = %+v", cfg.Market)
	}
	if cfg.Preprocess.StemRules["perawatan"] != "rawat" {
		t.Errorf("stem rules = %v", cfg.Preprocess.StemRules)
	}
	if cfg.TrainingMapping().Name != "PROGRAM PELATIHAN" {
		t.Errorf("training mapping = %+v", cfg.TrainingMapping())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  format: json
  level: debug
preprocess:
  stemmer: none
recommend:
  threshold: 0.3
  top_n: 5
market:
  program_threshold: 0.4
datasets:
  training:
    name: "Program"
    text: "Deskripsi"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Preprocess.Stemmer != StemmerNone {
		t.Errorf("Stemmer = %q", cfg.Preprocess.Stemmer)
	}
	if cfg.Recommend.Threshold != 0.3 || cfg.Recommend.TopN != 5 {
		t.Errorf("recommend = %+v", cfg.Recommend)
	}
	if cfg.Market.ProgramThreshold != 0.4 {
		t.Errorf("program threshold = %f", cfg.Market.ProgramThreshold)
	}
	// Defaults still fill unset sections.
	if cfg.Market.JobThreshold != 0.3 {
		t.Errorf("job threshold = %f, want default", cfg.Market.JobThreshold)
	}
	if cfg.TrainingMapping().Name != "Program" || cfg.TrainingMapping().Text != "Deskripsi" {
		t.Errorf("training mapping = %+v", cfg.TrainingMapping())
	}
	if cfg.JobMapping().Name == "" {
		t.Error("job mapping should fall back to stock columns")
	}
}

func TestLoadEnvExpansion(t *testing.T) {
	t.Setenv("KM_TOPN", "7")
	path := writeConfig(t, "recommend:\n  top_n: ${KM_TOPN}\n  threshold: ${KM_MISSING:-0.2}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Recommend.TopN != 7 {
		t.Errorf("TopN = %d, want 7", cfg.Recommend.TopN)
	}
	if cfg.Recommend.Threshold != 0.2 {
		t.Errorf("Threshold = %f, want default-expanded 0.2", cfg.Recommend.Threshold)
	}
}

func TestValidate(t *testing.T) {
	t.Run("bad threshold ordering fails fast", func(t *testing.T) {
		path := writeConfig(t, "match_levels:\n  excellent: 0.5\n  very_good: 0.65\n  good: 0.5\n  fair: 0.35\n")
		_, err := Load(path)
		if !errors.Is(err, domain.ErrInvalidThresholds) {
			t.Fatalf("err = %v, want ErrInvalidThresholds", err)
		}
	})

	t.Run("bad stemmer", func(t *testing.T) {
		path := writeConfig(t, "preprocess:\n  stemmer: porter\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for unknown stemmer")
		}
	})

	t.Run("bad idf variant", func(t *testing.T) {
		path := writeConfig(t, "tfidf:\n  pair_idf: bm25\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for unknown idf variant")
		}
	})

	t.Run("recommend threshold out of range", func(t *testing.T) {
		path := writeConfig(t, "recommend:\n  threshold: 1.5\n")
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for threshold > 1")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
