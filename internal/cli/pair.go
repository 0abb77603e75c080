package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/similarity"
	"github.com/kerjamatch/kerjamatch/internal/tfidf"
)

var pairOpts struct {
	trainingFile string
	jobsFile     string
	row          int
	col          int
	idf          string
}

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Trace one training-to-job comparison step by step",
	Long: `pair shows every intermediate stage of a single two-document
comparison: the preprocessing pipeline per document, term counts, TF,
DF, IDF, the weight vectors, dot product and magnitudes, plus the
stem-set Jaccard construction.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPair(cmd)
	},
}

func init() {
	rootCmd.AddCommand(pairCmd)
	pairCmd.Flags().StringVar(&pairOpts.trainingFile, "training", "", "training-program dataset file (json or csv)")
	pairCmd.Flags().StringVar(&pairOpts.jobsFile, "jobs", "", "job-posting dataset file (json or csv)")
	pairCmd.Flags().IntVar(&pairOpts.row, "row", 0, "training document index")
	pairCmd.Flags().IntVar(&pairOpts.col, "col", 0, "job document index")
	pairCmd.Flags().StringVar(&pairOpts.idf, "idf", "",
		fmt.Sprintf("IDF variant: %s or %s (overrides config)", tfidf.IDFSmoothed, tfidf.IDFUnsmoothed))
	_ = pairCmd.MarkFlagRequired("training")
	_ = pairCmd.MarkFlagRequired("jobs")
}

// pairDocument is the per-document pipeline view of the pair report.
type pairDocument struct {
	Name       string   `json:"name" yaml:"name"`
	SourceText string   `json:"source_text" yaml:"source_text"`
	Normalized string   `json:"normalized" yaml:"normalized"`
	Filtered   string   `json:"filtered" yaml:"filtered"`
	Tokens     []string `json:"tokens" yaml:"tokens"`
	Stems      []string `json:"stems" yaml:"stems"`
}

// pairReport is the encoded output of the pair command.
type pairReport struct {
	Training pairDocument            `json:"training" yaml:"training"`
	Job      pairDocument            `json:"job" yaml:"job"`
	TFIDF    tfidf.PairTrace         `json:"tfidf" yaml:"tfidf"`
	Jaccard  similarity.JaccardTrace `json:"jaccard" yaml:"jaccard"`
}

func runPair(cmd *cobra.Command) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	variant := tfidf.IDFVariant(a.cfg.TFIDF.PairIDF)
	if pairOpts.idf != "" {
		variant = tfidf.IDFVariant(pairOpts.idf)
		if !variant.IsValid() {
			return fmt.Errorf("unknown idf variant %q, want %s or %s",
				pairOpts.idf, tfidf.IDFSmoothed, tfidf.IDFUnsmoothed)
		}
	}

	training, err := a.loadCorpus(domain.RoleTraining, pairOpts.trainingFile)
	if err != nil {
		return err
	}
	jobs, err := a.loadCorpus(domain.RoleJob, pairOpts.jobsFile)
	if err != nil {
		return err
	}

	if pairOpts.row < 0 || pairOpts.row >= training.Len() {
		return fmt.Errorf("row %d out of range, training corpus has %d documents", pairOpts.row, training.Len())
	}
	if pairOpts.col < 0 || pairOpts.col >= jobs.Len() {
		return fmt.Errorf("col %d out of range, job corpus has %d documents", pairOpts.col, jobs.Len())
	}

	docA := training.Docs[pairOpts.row]
	docB := jobs.Docs[pairOpts.col]

	return writeOutput(cmd.OutOrStdout(), outFormat, pairReport{
		Training: pipelineView(docA),
		Job:      pipelineView(docB),
		TFIDF:    a.matcher.Pair(docA, docB, variant),
		Jaccard:  a.matcher.JaccardPair(docA, docB),
	})
}

func pipelineView(d domain.Document) pairDocument {
	return pairDocument{
		Name:       d.Name,
		SourceText: d.SourceText,
		Normalized: d.Normalized,
		Filtered:   d.Filtered,
		Tokens:     d.Tokens,
		Stems:      d.Stems,
	}
}
