package negotiation

import "strings"

// TacticSignature is the 4-boolean classification of a single user
// utterance. Signals are independent and may co-occur; the offer rules
// decide which combination wins.
type TacticSignature struct {
	HasResearch     bool
	ShowsValue      bool
	IsAggressive    bool
	IsCollaborative bool
}

// Keyword sets for each signal. These are deliberately small literal lists:
// matching is plain substring search over the lowercased utterance, so stem
// variants match only by prefix ("achieve" catches "achieved"). Scoring
// depends on this exact behavior, so the lists must not be extended without
// revisiting the scoring tests.
var (
	researchKeywords      = []string{"market", "industry", "data"}
	valueKeywords         = []string{"experience", "skills", "achieve"}
	aggressiveKeywords    = []string{"need", "expect", "must"}
	collaborativeKeywords = []string{"understand", "together", "fair"}
)

// Classify derives the tactic signature of one utterance. Pure function;
// false positives and negatives are expected and acceptable.
func Classify(utterance string) TacticSignature {
	lower := strings.ToLower(utterance)

	return TacticSignature{
		HasResearch:     containsAny(lower, researchKeywords),
		ShowsValue:      containsAny(lower, valueKeywords),
		IsAggressive:    containsAny(lower, aggressiveKeywords),
		IsCollaborative: containsAny(lower, collaborativeKeywords),
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
