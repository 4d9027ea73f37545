package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/careerforge/negosim/internal/ai"
	"github.com/careerforge/negosim/internal/logger"
	"github.com/careerforge/negosim/internal/negotiation"
	"github.com/careerforge/negosim/internal/scoring"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Coach produces a narrative debrief of a concluded session using Gemini.
type Coach struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewCoach(generator contentGenerator, maxLogLength int, log *zap.Logger) *Coach {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Coach{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Debrief sends the session summary to the model and parses its commentary.
func (c *Coach) Debrief(ctx context.Context, scenario negotiation.Scenario, result *scoring.Result, transcript []negotiation.Entry) (*ai.Commentary, error) {
	if result == nil {
		return nil, fmt.Errorf("scoring result is required")
	}

	prompt, err := buildPrompt(scenario, result, transcript)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini debrief request",
		zap.String(logger.FieldScenario, scenario.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini debrief response",
		zap.String(logger.FieldScenario, scenario.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	commentary, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	commentary.Raw = raw
	return commentary, nil
}

func buildPrompt(scenario negotiation.Scenario, result *scoring.Result, transcript []negotiation.Entry) (string, error) {
	lines := make([]map[string]any, 0, len(transcript))
	for _, entry := range transcript {
		lines = append(lines, map[string]any{
			"role": string(entry.Role),
			"turn": entry.AtTurn,
			"text": entry.Text,
		})
	}

	payload := map[string]any{
		"scenario": map[string]any{
			"title":          scenario.Title,
			"difficulty":     string(scenario.Difficulty),
			"target_salary":  scenario.TargetSalary,
			"min_acceptable": scenario.MinAcceptable,
			"max_offer":      scenario.MaxOffer,
			"context":        scenario.Context,
		},
		"report": map[string]any{
			"accepted":    result.Success,
			"final_offer": result.FinalOffer,
			"target_met":  result.TargetMet,
			"score":       result.Score,
			"feedback":    result.Feedback,
		},
		"transcript": lines,
	}

	sessionJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal session payload: %w", err)
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Session:\n{{SESSION_JSON}}\n\nJSON Response:"
	}

	return strings.ReplaceAll(template, "{{SESSION_JSON}}", string(sessionJSON)), nil
}

func parseResponse(raw string) (*ai.Commentary, error) {
	cleaned := extractJSON(raw)

	var data struct {
		Summary string `json:"summary"`
		Tips    []any  `json:"tips"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	tips := make([]string, 0, len(data.Tips))
	for _, tip := range data.Tips {
		text, ok := tip.(string)
		if !ok {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			tips = append(tips, text)
		}
	}

	return &ai.Commentary{
		Summary: strings.TrimSpace(data.Summary),
		Tips:    tips,
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
