package negotiation

import (
	"fmt"
	"strings"
)

// DefaultOpeningFraction is applied to the target salary to derive the
// employer's first offer when a scenario does not set its own fraction.
const DefaultOpeningFraction = 0.85

// Difficulty is a coarse tier used by the catalog to order scenarios.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Scenario is the static configuration for one negotiation exercise. It is
// resolved by the catalog and read-only to the simulator.
type Scenario struct {
	ID         string     `mapstructure:"id"`
	Title      string     `mapstructure:"title"`
	Difficulty Difficulty `mapstructure:"difficulty"`

	// TargetSalary is the user's aspirational compensation.
	TargetSalary float64 `mapstructure:"target-salary"`
	// MinAcceptable is the user's walk-away floor. Must be below TargetSalary.
	MinAcceptable float64 `mapstructure:"min-acceptable"`
	// MaxOffer is the hard ceiling the simulated employer will ever reach.
	// Must be at least TargetSalary.
	MaxOffer float64 `mapstructure:"max-offer"`
	// OpeningFraction scales TargetSalary into the employer's opening offer.
	// Zero means DefaultOpeningFraction.
	OpeningFraction float64 `mapstructure:"opening-fraction"`

	// EmployerProfile and Context are descriptive only; the engine never
	// inspects them.
	EmployerProfile string `mapstructure:"employer-profile"`
	Context         string `mapstructure:"context"`
}

// Validate checks the salary bounds. All returned errors wrap
// ErrInvalidScenario.
func (s *Scenario) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: scenario is required", ErrInvalidScenario)
	}
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidScenario)
	}
	if s.MinAcceptable >= s.TargetSalary {
		return fmt.Errorf("%w: min acceptable %.0f must be below target salary %.0f",
			ErrInvalidScenario, s.MinAcceptable, s.TargetSalary)
	}
	if s.MaxOffer < s.TargetSalary {
		return fmt.Errorf("%w: max offer %.0f must be at least target salary %.0f",
			ErrInvalidScenario, s.MaxOffer, s.TargetSalary)
	}
	return nil
}

// OpeningOffer returns the employer's first offer for this scenario.
func (s *Scenario) OpeningOffer() float64 {
	fraction := s.OpeningFraction
	if fraction == 0 {
		fraction = DefaultOpeningFraction
	}
	return s.TargetSalary * fraction
}
