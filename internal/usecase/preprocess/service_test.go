package preprocess

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/stemmer"
)

// prefixFake strips a leading "pe" so delegation is observable.
type prefixFake struct{}

func (prefixFake) Stem(word string) string {
	if len(word) > 4 && word[:2] == "pe" {
		return word[2:]
	}
	return word
}

func TestCorpusPipeline(t *testing.T) {
	svc := New(prefixFake{}, Config{}, zap.NewNop())

	docs := []domain.Document{
		{Name: "Teknisi AC", SourceText: "Pemasangan dan perawatan AC Split 2 PK."},
	}
	corpus := svc.Corpus(domain.RoleTraining, docs)

	if corpus.Role != domain.RoleTraining || corpus.Len() != 1 {
		t.Fatalf("corpus = %+v", corpus)
	}
	doc := corpus.Docs[0]

	if doc.Normalized != "pemasangan dan perawatan ac split pk" {
		t.Errorf("Normalized = %q", doc.Normalized)
	}
	if doc.Filtered != "pemasangan perawatan ac split pk" {
		t.Errorf("Filtered = %q", doc.Filtered)
	}
	wantTokens := []string{"pemasangan", "perawatan", "ac", "split", "pk"}
	if !reflect.DeepEqual(doc.Tokens, wantTokens) {
		t.Errorf("Tokens = %v, want %v", doc.Tokens, wantTokens)
	}
	wantStems := []string{"masangan", "rawatan", "ac", "split", "pk"}
	if !reflect.DeepEqual(doc.Stems, wantStems) {
		t.Errorf("Stems = %v, want %v", doc.Stems, wantStems)
	}
	if doc.TokenCount != 5 {
		t.Errorf("TokenCount = %d, want 5", doc.TokenCount)
	}
}

func TestCorpusFillsBlankText(t *testing.T) {
	svc := New(stemmer.Noop{}, Config{FillTemplate: DefaultObjectiveTemplate}, zap.NewNop())

	docs := []domain.Document{
		{Name: "Las Listrik", SourceText: "   "},
		{Name: "Barista", SourceText: "Meracik kopi untuk pelanggan."},
	}
	corpus := svc.Corpus(domain.RoleTraining, docs)

	t.Run("blank text filled from template", func(t *testing.T) {
		doc := corpus.Docs[0]
		want := "Setelah mengikuti pelatihan ini peserta kompeten dalam melaksanakan" +
			" pekerjaan las listrik sesuai standar dan SOP di tempat kerja."
		if doc.SourceText != want {
			t.Errorf("SourceText = %q, want %q", doc.SourceText, want)
		}
		// Template boilerplate is stopworded away; the program name survives.
		for _, tok := range []string{"las", "listrik"} {
			if !contains(doc.Stems, tok) {
				t.Errorf("stems %v missing %q", doc.Stems, tok)
			}
		}
	})

	t.Run("non-blank text untouched", func(t *testing.T) {
		if corpus.Docs[1].SourceText != "Meracik kopi untuk pelanggan." {
			t.Errorf("SourceText = %q", corpus.Docs[1].SourceText)
		}
	})
}

func TestCorpusEmptyDocument(t *testing.T) {
	// No fill template: a blank document flows through as zero tokens, the
	// documented source of 0-similarity matches.
	svc := New(stemmer.Noop{}, Config{}, zap.NewNop())
	corpus := svc.Corpus(domain.RoleJob, []domain.Document{{Name: "Kosong"}})

	doc := corpus.Docs[0]
	if doc.Normalized != "" || doc.Filtered != "" {
		t.Errorf("expected empty stages, got %q / %q", doc.Normalized, doc.Filtered)
	}
	if len(doc.Tokens) != 0 || len(doc.Stems) != 0 || doc.TokenCount != 0 {
		t.Errorf("expected zero tokens, got %v / %v", doc.Tokens, doc.Stems)
	}
}

func TestCorpusRealizationUsesNameAsText(t *testing.T) {
	// Realization records have no description; the loader sets SourceText
	// to the program name and the pipeline just runs.
	svc := New(stemmer.Noop{}, Config{}, zap.NewNop())
	corpus := svc.Corpus(domain.RoleRealization, []domain.Document{
		{Name: "Pembuatan Roti", SourceText: "Pembuatan Roti"},
	})
	want := []string{"pembuatan", "roti"}
	if !reflect.DeepEqual(corpus.Docs[0].Stems, want) {
		t.Errorf("Stems = %v, want %v", corpus.Docs[0].Stems, want)
	}
}

func contains(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}
