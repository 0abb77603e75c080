package match

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/domain/level"
	"github.com/kerjamatch/kerjamatch/internal/recommend"
	"github.com/kerjamatch/kerjamatch/internal/tfidf"
)

func trainingCorpus() domain.Corpus {
	return domain.Corpus{Role: domain.RoleTraining, Docs: []domain.Document{
		{Name: "Pemasangan AC", Stems: []string{"pasang", "ac", "split"}},
		{Name: "Las SMAW", Stems: []string{"las", "smaw", "plat"}},
		{Name: "Kosong", Stems: nil},
	}}
}

func jobCorpus() domain.Corpus {
	return domain.Corpus{Role: domain.RoleJob, Docs: []domain.Document{
		{Name: "Teknisi AC", Stems: []string{"ac", "split", "maintenance"}},
		{Name: "Welder", Stems: []string{"las", "baja"}},
	}}
}

func TestCosineMatrix(t *testing.T) {
	svc := New(zap.NewNop())

	m, err := svc.CosineMatrix(trainingCorpus(), jobCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", rows, cols)
	}

	t.Run("related pairs outscore unrelated", func(t *testing.T) {
		if m[0][0] <= m[0][1] {
			t.Errorf("AC training vs AC job %f should beat welder job %f", m[0][0], m[0][1])
		}
		if m[1][1] <= m[1][0] {
			t.Errorf("welding training vs welder job %f should beat AC job %f", m[1][1], m[1][0])
		}
	})

	t.Run("values stay in unit interval", func(t *testing.T) {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if m[i][j] < 0 || m[i][j] > 1+1e-12 {
					t.Errorf("m[%d][%d] = %f outside [0,1]", i, j, m[i][j])
				}
			}
		}
	})

	t.Run("empty document row is all zeros", func(t *testing.T) {
		for j := 0; j < cols; j++ {
			if m[2][j] != 0 {
				t.Errorf("m[2][%d] = %f, want 0", j, m[2][j])
			}
		}
	})

	t.Run("empty corpus is an error", func(t *testing.T) {
		_, err := svc.CosineMatrix(domain.Corpus{}, jobCorpus())
		if !errors.Is(err, domain.ErrEmptyCorpus) {
			t.Errorf("err = %v, want ErrEmptyCorpus", err)
		}
	})
}

func TestJaccardMatrix(t *testing.T) {
	svc := New(zap.NewNop())

	m, err := svc.JaccardMatrix(trainingCorpus(), jobCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// {pasang,ac,split} vs {ac,split,maintenance}: 2 shared of 4 = 0.5.
	if math.Abs(m[0][0]-0.5) > 1e-12 {
		t.Errorf("m[0][0] = %f, want 0.5", m[0][0])
	}
	// {las,smaw,plat} vs {las,baja}: 1 shared of 4 = 0.25.
	if math.Abs(m[1][1]-0.25) > 1e-12 {
		t.Errorf("m[1][1] = %f, want 0.25", m[1][1])
	}
}

func TestPairTraceThroughService(t *testing.T) {
	svc := New(zap.NewNop())
	trace := svc.Pair(trainingCorpus().Docs[0], jobCorpus().Docs[0], tfidf.IDFSmoothed)

	if len(trace.Terms) != 4 {
		t.Fatalf("Terms = %v, want 4 terms", trace.Terms)
	}
	if trace.Similarity <= 0 {
		t.Errorf("Similarity = %f, want > 0", trace.Similarity)
	}

	jt := svc.JaccardPair(trainingCorpus().Docs[0], jobCorpus().Docs[0])
	if math.Abs(jt.Score-0.5) > 1e-12 {
		t.Errorf("jaccard = %f, want 0.5", jt.Score)
	}
}

func TestRecommendModes(t *testing.T) {
	svc := New(zap.NewNop())
	training := trainingCorpus()
	jobs := jobCorpus()
	m, err := svc.CosineMatrix(training, jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := recommend.Options{Threshold: 0.01, TopN: 2, Levels: level.Default}

	t.Run("single row", func(t *testing.T) {
		recs := svc.Recommend(m, true, 0, training.Names(), jobs.Names(), opts)
		if len(recs) == 0 {
			t.Fatal("expected recommendations for AC training")
		}
		if recs[0].SourceName != "Pemasangan AC" || recs[0].TargetName != "Teknisi AC" {
			t.Errorf("top = %+v", recs[0])
		}
	})

	t.Run("batch by column", func(t *testing.T) {
		recs := svc.Recommend(m, false, -1, training.Names(), jobs.Names(), opts)
		for _, r := range recs {
			if r.Score < opts.Threshold {
				t.Errorf("score %f below threshold", r.Score)
			}
		}
	})

	t.Run("empty document source gets nothing above threshold", func(t *testing.T) {
		recs := svc.Recommend(m, true, 2, training.Names(), jobs.Names(), opts)
		if len(recs) != 0 {
			t.Errorf("got %d recommendations for the empty document, want 0", len(recs))
		}
	})
}
