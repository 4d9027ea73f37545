package negotiation

import (
	"fmt"
	"math"
)

// Proposal is the employer's response to one user turn: the adjusted offer,
// the scripted remark that accompanies it, and the name of the pricing rule
// that fired.
type Proposal struct {
	Offer  float64
	Remark string
	Rule   string
}

// offerRule is one row of the priority table. Rules are checked in slice
// order and the first match wins; combinations of signals are not mutually
// exclusive, so reordering the table changes behavior.
type offerRule struct {
	name       string
	matches    func(TacticSignature) bool
	multiplier float64
	remark     string
}

var offerRules = []offerRule{
	{
		name:       "research_value_collaborative",
		matches:    func(s TacticSignature) bool { return s.HasResearch && s.ShowsValue && s.IsCollaborative },
		multiplier: 1.08,
		remark:     "You have clearly done your homework, and the value you describe is hard to argue with.",
	},
	{
		name:       "value",
		matches:    func(s TacticSignature) bool { return s.ShowsValue },
		multiplier: 1.05,
		remark:     "Your track record does stand out, so we can stretch a little further.",
	},
	{
		name:       "aggressive",
		matches:    func(s TacticSignature) bool { return s.IsAggressive && !s.ShowsValue },
		multiplier: 1.02,
		remark:     "We hear you, but the budget for this role is largely fixed.",
	},
	{
		name:       "collaborative",
		matches:    func(s TacticSignature) bool { return s.IsCollaborative },
		multiplier: 1.03,
		remark:     "We appreciate the constructive tone. Let's see if we can close the gap.",
	},
	{
		name:       "default",
		matches:    func(TacticSignature) bool { return true },
		multiplier: 1.01,
		remark:     "We can move a little, but not by much.",
	},
}

// NextOffer computes the employer's next offer from the current one and the
// tactic signature of the latest user utterance. The offer never decreases
// and is clamped at the scenario ceiling.
func NextOffer(current float64, signature TacticSignature, scenario Scenario) Proposal {
	rule := matchOfferRule(signature)

	offer := math.Min(current*rule.multiplier, scenario.MaxOffer)

	remark := fmt.Sprintf("%s Our offer is now %.0f.", rule.remark, offer)
	remark += " " + closingClause(offer, scenario)

	return Proposal{Offer: offer, Remark: remark, Rule: rule.name}
}

func matchOfferRule(signature TacticSignature) offerRule {
	for _, rule := range offerRules {
		if rule.matches(signature) {
			return rule
		}
	}
	// The last rule matches everything.
	return offerRules[len(offerRules)-1]
}

// closingClause depends only on where the new offer lands relative to the
// scenario bounds, never on which pricing rule fired.
func closingClause(offer float64, scenario Scenario) string {
	switch {
	case offer >= scenario.MaxOffer:
		return "This is the maximum we can offer."
	case offer >= scenario.TargetSalary:
		return "We believe this is a strong offer. What do you think?"
	default:
		return "What would it take to make this offer work for you?"
	}
}
