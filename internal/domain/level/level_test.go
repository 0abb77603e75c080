package level

import (
	"errors"
	"testing"

	"github.com/kerjamatch/kerjamatch/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		score float64
		want  Level
	}{
		{0.95, Excellent},
		{0.80, Excellent}, // lower bound is inclusive
		{0.79, VeryGood},
		{0.65, VeryGood},
		{0.50, Good},
		{0.35, Fair},
		{0.34, Weak},
		{0.0, Weak},
	}
	for _, c := range cases {
		if got := Default.Classify(c.score); got != c.want {
			t.Errorf("Classify(%.2f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		if err := Default.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non-descending order", func(t *testing.T) {
		bad := Thresholds{Excellent: 0.5, VeryGood: 0.65, Good: 0.5, Fair: 0.35}
		err := bad.Validate()
		if !errors.Is(err, domain.ErrInvalidThresholds) {
			t.Fatalf("expected ErrInvalidThresholds, got %v", err)
		}
	})

	t.Run("rejects equal neighbors", func(t *testing.T) {
		bad := Thresholds{Excellent: 0.8, VeryGood: 0.8, Good: 0.5, Fair: 0.35}
		if err := bad.Validate(); err == nil {
			t.Fatal("expected error for equal thresholds")
		}
	})

	t.Run("rejects negative fair", func(t *testing.T) {
		bad := Thresholds{Excellent: 0.8, VeryGood: 0.65, Good: 0.5, Fair: -0.1}
		if err := bad.Validate(); err == nil {
			t.Fatal("expected error for negative fair")
		}
	})

	t.Run("rejects excellent above one", func(t *testing.T) {
		bad := Thresholds{Excellent: 1.2, VeryGood: 0.65, Good: 0.5, Fair: 0.35}
		if err := bad.Validate(); err == nil {
			t.Fatal("expected error for excellent > 1")
		}
	})
}
