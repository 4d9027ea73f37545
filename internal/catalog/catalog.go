// Package catalog resolves negotiation scenarios from configuration and
// provides lookup helpers for the CLI layer. The simulator itself never
// touches the catalog; it only receives fully-resolved scenarios.
package catalog

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/careerforge/negosim/internal/negotiation"
)

// Catalog holds the scenarios available to play.
type Catalog struct {
	Items []*negotiation.Scenario
}

// FromRaw decodes scenarios from untyped configuration values (as produced
// by viper for the "scenarios" key) and validates each of them. An empty or
// nil input yields the built-in catalog.
func FromRaw(raw []any) (*Catalog, error) {
	if len(raw) == 0 {
		return Builtin(), nil
	}

	var scenarios []*negotiation.Scenario
	if err := mapstructure.Decode(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}

	for i, scenario := range scenarios {
		if err := scenario.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}

	return &Catalog{Items: scenarios}, nil
}

// Builtin returns the default scenario set shipped with the binary, one per
// difficulty tier.
func Builtin() *Catalog {
	return &Catalog{Items: []*negotiation.Scenario{
		{
			ID:              "junior-dev",
			Title:           "Junior Developer at a friendly startup",
			Difficulty:      negotiation.DifficultyEasy,
			TargetSalary:    70000,
			MinAcceptable:   60000,
			MaxOffer:        80000,
			OpeningFraction: 0.85,
			EmployerProfile: "A 20-person startup with flexible budgets and a collegial culture.",
			Context:         "You passed the final interview and the hiring manager wants to close quickly.",
		},
		{
			ID:              "senior-eng",
			Title:           "Senior Engineer at a scale-up",
			Difficulty:      negotiation.DifficultyMedium,
			TargetSalary:    130000,
			MinAcceptable:   115000,
			MaxOffer:        145000,
			OpeningFraction: 0.85,
			EmployerProfile: "A 300-person company with salary bands but room at the top of the band.",
			Context:         "They know you have a competing offer, but their process is band-driven.",
		},
		{
			ID:              "staff-bigco",
			Title:           "Staff Engineer at a large enterprise",
			Difficulty:      negotiation.DifficultyHard,
			TargetSalary:    180000,
			MinAcceptable:   165000,
			MaxOffer:        185000,
			OpeningFraction: 0.85,
			EmployerProfile: "A large enterprise with rigid compensation committees and little headroom.",
			Context:         "The recruiter insists the opening offer is already near the ceiling.",
		},
	}}
}

func (c *Catalog) Len() int {
	return len(c.Items)
}

// Titles returns the scenario titles in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.Items))

	for _, s := range c.Items {
		titles = append(titles, s.Title)
	}

	return titles
}

func (c *Catalog) FindByID(id string) *negotiation.Scenario {
	for _, s := range c.Items {
		if s.ID == id {
			return s
		}
	}

	return nil
}

func (c *Catalog) FindByTitle(title string) *negotiation.Scenario {
	for _, s := range c.Items {
		if s.Title == title {
			return s
		}
	}

	return nil
}
