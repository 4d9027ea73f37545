package cmd

import (
	"fmt"
	"log"

	"github.com/careerforge/negosim/internal/catalog"
	"github.com/careerforge/negosim/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios available to play",
	Run: func(_ *cobra.Command, _ []string) {
		listScenarios()
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func listScenarios() {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	raw, _ := viper.Get("scenarios").([]any)
	scenarios, err := catalog.FromRaw(raw)
	if err != nil {
		zlog.Fatal("loading scenario catalog", zap.Error(err))
	}

	for _, s := range scenarios.Items {
		fmt.Printf("%-14s %-8s target %.0f, ceiling %.0f  %s\n",
			s.ID, s.Difficulty, s.TargetSalary, s.MaxOffer, s.Title)
	}
}
