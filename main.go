package main

import (
	"os"

	"github.com/careerforge/negosim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
