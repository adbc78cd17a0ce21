package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fraudml version %s\n", version)
		fmt.Println("Offline card-fraud detection training pipeline")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
