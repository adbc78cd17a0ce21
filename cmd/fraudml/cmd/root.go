package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fraudml",
	Short: "Offline card-fraud detection training pipeline",
	Long: `Fraudml trains and evaluates a fraud classifier over tabular
transaction data in a single batch run.

It provides tools for:
  - Engineering temporal, geographic and behavioral features from raw transactions
  - Balancing skewed fraud labels with synthetic minority oversampling
  - Training a gradient-boosted tree classifier with fixed, seeded hyperparameters
  - Evaluating precision/recall/F1 and the confusion matrix on a held-out split
  - Writing a submission file of per-transaction predictions
  - Journaling run metrics to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
