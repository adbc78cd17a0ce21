package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardwatch/fraudml/config"
	"github.com/cardwatch/fraudml/dataset"
	"github.com/cardwatch/fraudml/journal"
	"github.com/cardwatch/fraudml/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full training and prediction pipeline",
	Long: `Run loads the train and test tables, engineers features, balances the
label distribution, trains the classifier, prints the validation report and
writes the submission file.

Examples:
  fraudml run --train fraudTrain.csv --test fraudTest.csv --out submission.csv
  fraudml run --config run.yaml
  fraudml run --demo`,
	RunE: runPipeline,
}

var (
	runConfigPath string
	runTrainPath  string
	runTestPath   string
	runOutPath    string
	runTrees      int
	runLR         float64
	runDepth      int
	runThreshold  float64
	runSeed       int64
	runJournal    string
	runDemo       bool
	runDemoRows   int
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON run config")
	runCmd.Flags().StringVar(&runTrainPath, "train", "", "path to training CSV (overrides config)")
	runCmd.Flags().StringVar(&runTestPath, "test", "", "path to test CSV (overrides config)")
	runCmd.Flags().StringVarP(&runOutPath, "out", "o", "", "submission output path (overrides config)")

	runCmd.Flags().IntVar(&runTrees, "trees", 0, "number of boosting trees (overrides config)")
	runCmd.Flags().Float64Var(&runLR, "lr", 0, "learning rate (overrides config)")
	runCmd.Flags().IntVar(&runDepth, "depth", 0, "max tree depth (overrides config)")
	runCmd.Flags().Float64Var(&runThreshold, "threshold", 0, "decision threshold (overrides config)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "seed for split, sampler and model (overrides config)")

	runCmd.Flags().StringVarP(&runJournal, "journal", "j", "", "run journal: path ending in .csv or .sqlite, or 'none'")

	runCmd.Flags().BoolVar(&runDemo, "demo", false, "generate synthetic train/test data instead of reading files")
	runCmd.Flags().IntVar(&runDemoRows, "demo-rows", 2000, "synthetic training rows for --demo")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if runDemo {
		if err := writeDemoData(cfg); err != nil {
			return fmt.Errorf("demo data: %w", err)
		}
	}

	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	r := &pipeline.Runner{Config: cfg, Journal: j, Out: os.Stdout}
	res, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("\nRun %s complete\n\n", res.RunID)
	res.Report.Render(os.Stdout)
	fmt.Printf("\nSubmission: %s (%d rows)\n", res.SubmissionPath, res.TestRows)

	return nil
}

func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if runTrainPath != "" {
		cfg.Data.TrainPath = runTrainPath
	}
	if runTestPath != "" {
		cfg.Data.TestPath = runTestPath
	}
	if runOutPath != "" {
		cfg.Data.SubmissionPath = runOutPath
	}
	if runTrees > 0 {
		cfg.Model.Trees = runTrees
	}
	if runLR > 0 {
		cfg.Model.LearningRate = runLR
	}
	if runDepth > 0 {
		cfg.Model.MaxDepth = runDepth
	}
	if runThreshold > 0 {
		cfg.Model.Threshold = runThreshold
	}
	if runSeed != 0 {
		cfg.Split.Seed = runSeed
		cfg.Sampler.Seed = runSeed
		cfg.Model.Seed = runSeed
	}

	switch {
	case runJournal == "none":
		cfg.Journal = config.JournalConfig{Type: "none"}
	case runJournal != "":
		typ := "csv"
		if len(runJournal) > 7 && runJournal[len(runJournal)-7:] == ".sqlite" {
			typ = "sqlite"
		}
		cfg.Journal = config.JournalConfig{Type: typ, Path: runJournal}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.Path)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.Path)
	default:
		return nil, nil
	}
}

func writeDemoData(cfg *config.Config) error {
	train := dataset.GenerateSynthetic(runDemoRows, 0.1, cfg.Sampler.Seed)
	test := dataset.GenerateSynthetic(runDemoRows/4, 0.1, cfg.Sampler.Seed+1).DropLabel()

	if err := dataset.SaveCSV(cfg.Data.TrainPath, train); err != nil {
		return err
	}
	if err := dataset.SaveCSV(cfg.Data.TestPath, test); err != nil {
		return err
	}
	fmt.Printf("Generated %d train rows and %d test rows\n", train.NumRows(), test.NumRows())
	return nil
}
