package main

import (
	"os"

	"github.com/cardwatch/fraudml/cmd/fraudml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
