package stemmer

import (
	"reflect"
	"testing"
)

// suffixFake drops a trailing "-an" so tests can observe delegation without
// depending on the real dictionary.
type suffixFake struct{}

func (suffixFake) Stem(word string) string {
	if len(word) > 2 && word[len(word)-2:] == "an" {
		return word[:len(word)-2]
	}
	return word
}

func TestNoop(t *testing.T) {
	var s Stemmer = Noop{}
	for _, w := range []string{"", "pemasangan", "ac"} {
		if got := s.Stem(w); got != w {
			t.Errorf("Noop.Stem(%q) = %q, want input unchanged", w, got)
		}
	}
}

func TestOverlay(t *testing.T) {
	o := NewOverlay(DefaultRules(), suffixFake{})

	t.Run("override wins over delegate", func(t *testing.T) {
		// The fake would produce "perawat"; the rule forces "rawat".
		if got := o.Stem("perawatan"); got != "rawat" {
			t.Errorf("Stem(perawatan) = %q, want rawat", got)
		}
		if got := o.Stem("peserta"); got != "peserta" {
			t.Errorf("Stem(peserta) = %q, want peserta", got)
		}
	})

	t.Run("falls back to delegate", func(t *testing.T) {
		if got := o.Stem("pemasangan"); got != "pemasang" {
			t.Errorf("Stem(pemasangan) = %q, want pemasang", got)
		}
	})

	t.Run("nil rules pass through", func(t *testing.T) {
		o := NewOverlay(nil, Noop{})
		if got := o.Stem("perawatan"); got != "perawatan" {
			t.Errorf("Stem = %q, want input unchanged", got)
		}
	})
}

func TestTokens(t *testing.T) {
	t.Run("preserves length and order", func(t *testing.T) {
		in := []string{"pemasangan", "ac", "perawatan"}
		got := Tokens(NewOverlay(DefaultRules(), suffixFake{}), in)
		want := []string{"pemasang", "ac", "rawat"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Tokens = %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Tokens(Noop{}, nil); len(got) != 0 {
			t.Errorf("Tokens(nil) = %v, want empty", got)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := []string{"perawatan"}
		Tokens(NewOverlay(DefaultRules(), Noop{}), in)
		if in[0] != "perawatan" {
			t.Error("input slice was mutated")
		}
	})
}
