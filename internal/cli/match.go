package cli

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/recommend"
	"github.com/kerjamatch/kerjamatch/internal/similarity"
)

const (
	directionTrainingToJobs = "training-to-jobs"
	directionJobsToTraining = "jobs-to-training"

	metricCosine  = "cosine"
	metricJaccard = "jaccard"

	promptLowerThreshold = "Lower the threshold and retry"
	promptExit           = "Exit"
)

// matchOptions are the flags shared by the match and jaccard commands.
type matchOptions struct {
	trainingFile string
	jobsFile     string
	direction    string
	index        int
	threshold    float64
	topN         int
	interactive  bool
}

func addMatchFlags(cmd *cobra.Command, o *matchOptions) {
	cmd.Flags().StringVar(&o.trainingFile, "training", "", "training-program dataset file (json or csv)")
	cmd.Flags().StringVar(&o.jobsFile, "jobs", "", "job-posting dataset file (json or csv)")
	cmd.Flags().StringVar(&o.direction, "direction", directionTrainingToJobs,
		fmt.Sprintf("%s or %s", directionTrainingToJobs, directionJobsToTraining))
	cmd.Flags().IntVar(&o.index, "index", -1, "source document index, -1 runs every source")
	cmd.Flags().Float64Var(&o.threshold, "threshold", -1, "minimum similarity score (overrides config)")
	cmd.Flags().IntVar(&o.topN, "top-n", 0, "recommendations per source (overrides config)")
	cmd.Flags().BoolVar(&o.interactive, "interactive", false,
		"offer to lower the threshold when nothing clears it")
	_ = cmd.MarkFlagRequired("training")
	_ = cmd.MarkFlagRequired("jobs")
}

// matchReport is the encoded output of the match and jaccard commands.
type matchReport struct {
	Metric          string                     `json:"metric" yaml:"metric"`
	Direction       string                     `json:"direction" yaml:"direction"`
	Threshold       float64                    `json:"threshold" yaml:"threshold"`
	TopN            int                        `json:"top_n" yaml:"top_n"`
	Recommendations []recommend.Recommendation `json:"recommendations" yaml:"recommendations"`
}

var matchOpts matchOptions

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings per training program by TF-IDF cosine similarity",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMatch(metricCosine, &matchOpts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	addMatchFlags(matchCmd, &matchOpts)
}

func runMatch(metric string, o *matchOptions, out io.Writer) error {
	var byRow bool
	switch o.direction {
	case directionTrainingToJobs:
		byRow = true
	case directionJobsToTraining:
		byRow = false
	default:
		return fmt.Errorf("unknown direction %q, want %s or %s",
			o.direction, directionTrainingToJobs, directionJobsToTraining)
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	training, err := a.loadCorpus(domain.RoleTraining, o.trainingFile)
	if err != nil {
		return err
	}
	jobs, err := a.loadCorpus(domain.RoleJob, o.jobsFile)
	if err != nil {
		return err
	}

	var m similarity.Matrix
	switch metric {
	case metricCosine:
		m, err = a.matcher.CosineMatrix(training, jobs)
	case metricJaccard:
		m, err = a.matcher.JaccardMatrix(training, jobs)
	default:
		return fmt.Errorf("unknown metric %q", metric)
	}
	if err != nil {
		return fmt.Errorf("computing %s matrix: %w", metric, err)
	}

	opts := recommend.Options{
		Threshold:   a.cfg.Recommend.Threshold,
		TopN:        a.cfg.Recommend.TopN,
		Levels:      a.cfg.Levels.Thresholds(),
		NoMatchNote: a.cfg.Recommend.NoMatchNote,
	}
	if o.threshold >= 0 {
		opts.Threshold = o.threshold
	}
	if o.topN > 0 {
		opts.TopN = o.topN
	}

	rowNames, colNames := training.Names(), jobs.Names()
	for {
		recs := a.matcher.Recommend(m, byRow, o.index, rowNames, colNames, opts)
		if len(recs) == 0 && o.interactive && opts.Threshold > 0 {
			lowered, err := askLowerThreshold(opts.Threshold)
			if err != nil {
				return err
			}
			if lowered {
				opts.Threshold /= 2
				a.log.Info("threshold lowered", zap.Float64("threshold", opts.Threshold))
				continue
			}
		}
		return writeOutput(out, outFormat, matchReport{
			Metric:          metric,
			Direction:       o.direction,
			Threshold:       opts.Threshold,
			TopN:            opts.TopN,
			Recommendations: recs,
		})
	}
}

// askLowerThreshold prompts when a threshold filtered everything out.
func askLowerThreshold(threshold float64) (bool, error) {
	prompt := promptui.Select{
		Label: fmt.Sprintf("No recommendations above %.4f", threshold),
		Items: []string{promptLowerThreshold, promptExit},
	}
	_, action, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return action == promptLowerThreshold, nil
}
