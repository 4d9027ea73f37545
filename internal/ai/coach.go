package ai

import (
	"context"

	"github.com/careerforge/negosim/internal/negotiation"
	"github.com/careerforge/negosim/internal/scoring"
)

// Commentary is a narrative debrief of a finished negotiation. It is
// advisory text layered on top of the rule-based score, never an input to
// the simulator.
type Commentary struct {
	Summary string
	Tips    []string
	Raw     string
}

type Coach interface {
	Debrief(ctx context.Context, scenario negotiation.Scenario, result *scoring.Result, transcript []negotiation.Entry) (*Commentary, error)
}
