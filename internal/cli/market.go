package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerjamatch/kerjamatch/internal/domain"
	"github.com/kerjamatch/kerjamatch/internal/market"
)

var marketOpts struct {
	trainingFile     string
	jobsFile         string
	realizationFile  string
	programThreshold float64
	jobThreshold     float64
	topJobs          int
}

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Analyze placement-vs-market-capacity gaps per training program",
	Long: `market matches every realization program to its closest training
program, sums the vacancies of the jobs that program serves, and
classifies the gap between the placement rate and the market capacity.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMarket(cmd)
	},
}

func init() {
	rootCmd.AddCommand(marketCmd)
	marketCmd.Flags().StringVar(&marketOpts.trainingFile, "training", "", "training-program dataset file (json or csv)")
	marketCmd.Flags().StringVar(&marketOpts.jobsFile, "jobs", "", "job-posting dataset file (json or csv)")
	marketCmd.Flags().StringVar(&marketOpts.realizationFile, "realization", "", "realization/placement dataset file (json or csv)")
	marketCmd.Flags().Float64Var(&marketOpts.programThreshold, "program-threshold", -1,
		"minimum realization-to-training similarity (overrides config)")
	marketCmd.Flags().Float64Var(&marketOpts.jobThreshold, "job-threshold", -1,
		"minimum training-to-job similarity (overrides config)")
	marketCmd.Flags().IntVar(&marketOpts.topJobs, "top-jobs", 0,
		"matched jobs listed per program (overrides config)")
	_ = marketCmd.MarkFlagRequired("training")
	_ = marketCmd.MarkFlagRequired("jobs")
	_ = marketCmd.MarkFlagRequired("realization")
}

func runMarket(cmd *cobra.Command) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	training, err := a.loadCorpus(domain.RoleTraining, marketOpts.trainingFile)
	if err != nil {
		return err
	}
	jobs, err := a.loadCorpus(domain.RoleJob, marketOpts.jobsFile)
	if err != nil {
		return err
	}
	realization, err := a.loadCorpus(domain.RoleRealization, marketOpts.realizationFile)
	if err != nil {
		return err
	}

	cfg := market.Config{
		ProgramThreshold: a.cfg.Market.ProgramThreshold,
		JobThreshold:     a.cfg.Market.JobThreshold,
		TopJobs:          a.cfg.Market.TopJobs,
	}
	if marketOpts.programThreshold >= 0 {
		cfg.ProgramThreshold = marketOpts.programThreshold
	}
	if marketOpts.jobThreshold >= 0 {
		cfg.JobThreshold = marketOpts.jobThreshold
	}
	if marketOpts.topJobs > 0 {
		cfg.TopJobs = marketOpts.topJobs
	}

	trainingToJobs, err := a.matcher.CosineMatrix(training, jobs)
	if err != nil {
		return fmt.Errorf("matching training to jobs: %w", err)
	}

	report, err := market.New(a.matcher, cfg, a.log).Analyze(realization, training, jobs, trainingToJobs)
	if err != nil {
		return fmt.Errorf("market analysis: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), outFormat, report)
}
