package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/careerforge/negosim/internal/ai"
	"github.com/careerforge/negosim/internal/ai/gemini"
	"github.com/careerforge/negosim/internal/catalog"
	"github.com/careerforge/negosim/internal/logger"
	"github.com/careerforge/negosim/internal/negotiation"
	"github.com/careerforge/negosim/internal/scoring"
	"github.com/careerforge/negosim/internal/secrets"
	"github.com/careerforge/negosim/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const emptyUtteranceHint = "Please type a message. Say something like 'I accept' or make your case for a higher offer."

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a salary negotiation scenario against the simulated employer",
	Run: func(cmd *cobra.Command, _ []string) {
		play(cmd)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("scenario", "s", "", "scenario id to play. Default is interactive selection.")
}

// play is the interactive negotiation loop: one session, one turn at a time.
func play(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	raw, _ := viper.Get("scenarios").([]any)
	scenarios, err := catalog.FromRaw(raw)
	if err != nil {
		zlog.Fatal("loading scenario catalog", zap.Error(err))
	}

	scenario, err := pickScenario(cmd, scenarios)
	if err != nil {
		zlog.Fatal("selecting a scenario", zap.Error(err))
	}

	zlog = logger.WithSessionFields(zlog, scenario.ID, string(scenario.Difficulty))
	zlog.Debug("starting session",
		zap.Float64("target_salary", scenario.TargetSalary),
		zap.Float64("max_offer", scenario.MaxOffer),
	)

	session, err := negotiation.Start(*scenario)
	if err != nil {
		zlog.Fatal("starting session", zap.Error(err))
	}

	printScenarioIntro(scenario)
	for _, entry := range session.Transcript() {
		printEntry(entry)
	}

	result := runTurns(ctx, session, config, zlog)
	if result == nil {
		return
	}

	printReport(result, scenario)

	if config.AI != nil && config.AI.Enabled {
		debrief(ctx, config.AI, scenario, result, session.Transcript(), zlog)
	}
}

// runTurns drives the session until it concludes or the user bails out.
// Returns nil when no report should be printed (interrupt or abandoned
// session).
func runTurns(ctx context.Context, session *negotiation.Session, config *Config, zlog *zap.Logger) *scoring.Result {
	input := promptui.Prompt{Label: "You"}

	for {
		utterance, err := input.Run()
		if err != nil {
			zlog.Info("exiting", zap.String("reason", "input aborted"), zap.Error(err))
			return nil
		}

		delta, err := session.Submit(utterance)
		switch {
		case errors.Is(err, negotiation.ErrEmptyUtterance):
			// Rejected input: re-prompt with an inline message.
			fmt.Println(emptyUtteranceHint)
			continue
		case err != nil:
			// Remaining taxonomy entries are caller bugs; log, do not retry.
			zlog.Error("submitting utterance", zap.Error(err))
			return nil
		}

		if delta.Concluded {
			result, err := scoring.Score(session)
			if err != nil {
				zlog.Error("scoring session", zap.Error(err))
				return nil
			}
			return result
		}

		// Presentation latency only. When interrupted, the pending reply is
		// dropped rather than applied to a discarded session.
		if err := utils.WaitFor(ctx, config.ThinkingDelay); err != nil {
			zlog.Info("exiting", zap.String("reason", "interrupted while employer was thinking"))
			return nil
		}

		for _, entry := range delta.Entries {
			if entry.Role == negotiation.RoleEmployer {
				printEntry(entry)
			}
		}
	}
}

func pickScenario(cmd *cobra.Command, scenarios *catalog.Catalog) (*negotiation.Scenario, error) {
	if id := strings.TrimSpace(cmd.Flag("scenario").Value.String()); id != "" {
		scenario := scenarios.FindByID(id)
		if scenario == nil {
			return nil, fmt.Errorf("no scenario with id %q, known ids: %s", id, strings.Join(scenarioIDs(scenarios), ", "))
		}
		return scenario, nil
	}

	selectPrompt := promptui.Select{
		Label: "Choose a scenario",
		Items: scenarios.Titles(),
	}

	_, title, err := selectPrompt.Run()
	if err != nil {
		return nil, err
	}

	scenario := scenarios.FindByTitle(title)
	if scenario == nil {
		return nil, fmt.Errorf("no scenario with title %q", title)
	}

	return scenario, nil
}

func scenarioIDs(scenarios *catalog.Catalog) []string {
	ids := make([]string, 0, scenarios.Len())
	for _, s := range scenarios.Items {
		ids = append(ids, s.ID)
	}
	return ids
}

func printScenarioIntro(scenario *negotiation.Scenario) {
	fmt.Printf("\n%s (%s)\n", scenario.Title, scenario.Difficulty)
	if scenario.Context != "" {
		fmt.Println(scenario.Context)
	}
	fmt.Printf("Your target: %.0f, your walk-away floor: %.0f\n\n", scenario.TargetSalary, scenario.MinAcceptable)
}

func printEntry(entry negotiation.Entry) {
	fmt.Printf("Employer: %s\n", entry.Text)
}

func printReport(result *scoring.Result, scenario *negotiation.Scenario) {
	fmt.Println()
	if result.Success {
		fmt.Printf("Deal closed at %.0f (target was %.0f).\n", result.FinalOffer, scenario.TargetSalary)
	} else {
		fmt.Printf("You walked away. The last offer was %.0f.\n", result.FinalOffer)
	}
	fmt.Printf("Score: %d/100\n", result.Score)
	for _, line := range result.Feedback {
		fmt.Printf("  - %s\n", line)
	}
}

func debrief(ctx context.Context, config *AIConfig, scenario *negotiation.Scenario, result *scoring.Result, transcript []negotiation.Entry, zlog *zap.Logger) {
	coach, err := newAICoach(ctx, config, zlog)
	if err != nil {
		zlog.Warn("skipping AI debrief", zap.Error(err))
		return
	}

	commentary, err := coach.Debrief(ctx, *scenario, result, transcript)
	if err != nil {
		zlog.Warn("AI debrief failed", zap.Error(err))
		return
	}

	fmt.Println("\nCoach notes:")
	fmt.Println(commentary.Summary)
	for _, tip := range commentary.Tips {
		fmt.Printf("  - %s\n", tip)
	}
}

func newAICoach(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) (ai.Coach, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai debrief is enabled")
	}

	keyFile := strings.TrimSpace(cfg.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("ai.gemini.api-key-file"))
	}

	apiKey, err := secrets.Load("gemini api key", keyFile, "")
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := zlog.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewCoach(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}
