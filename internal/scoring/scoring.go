// Package scoring turns a concluded negotiation session into a 0-100
// performance score with ordered human-readable feedback.
package scoring

import (
	"strings"

	"github.com/careerforge/negosim/internal/negotiation"
)

// Result is the performance report derived once from a concluded session.
type Result struct {
	Success    bool
	FinalOffer float64
	TargetMet  bool
	Score      int
	Feedback   []string
}

const (
	feedbackDeclined = "You walked away from the offer. Sometimes that is the right call, but try countering at least once before declining."

	feedbackTargetMet = "Excellent result: the final offer met or beat your target salary."
	feedbackMinMet    = "Solid result: the final offer cleared your walk-away floor, though it fell short of your target."
	feedbackBelowMin  = "You accepted below your walk-away floor. Know your minimum before you say yes."
	feedbackFastClose = "You closed the deal quickly and efficiently."
	feedbackSlowClose = "The negotiation dragged on. Long back-and-forth can erode goodwill."
	feedbackResearch  = "Good use of market research to anchor your position."
	feedbackValue     = "You backed your ask with concrete value. Employers respond to that."
	feedbackDemanding = "Phrasing asks as hard demands without acknowledging the other side can backfire."
)

// Score computes the negotiation result for a concluded session. It is a
// pure function of the session's final state: identical transcripts and
// outcomes always produce identical results.
func Score(session *negotiation.Session) (*Result, error) {
	if session == nil || session.State() != negotiation.StateConcluded {
		return nil, negotiation.ErrSessionNotConcluded
	}

	scenario := session.Scenario()
	outcome := session.Outcome()
	finalOffer := session.CurrentOffer()

	result := &Result{
		Success:    outcome.Accepted,
		FinalOffer: finalOffer,
		TargetMet:  finalOffer >= scenario.TargetSalary,
	}

	if !outcome.Accepted {
		// Walking away is a flat score with a single feedback line; no
		// efficiency or content adjustments apply.
		result.Score = 30
		result.Feedback = []string{feedbackDeclined}
		return result, nil
	}

	score := 50
	tierMessage := feedbackBelowMin
	switch {
	case result.TargetMet:
		score = 95
		tierMessage = feedbackTargetMet
	case finalOffer >= scenario.MinAcceptable:
		score = 75
		tierMessage = feedbackMinMet
	}
	result.Feedback = append(result.Feedback, tierMessage)

	switch turns := session.TurnCount(); {
	case turns <= 3:
		score += 5
		result.Feedback = append(result.Feedback, feedbackFastClose)
	case turns > 6:
		score -= 5
		result.Feedback = append(result.Feedback, feedbackSlowClose)
	}

	userText := collectUserText(session)

	if strings.Contains(userText, "market") || strings.Contains(userText, "research") {
		score += 5
		result.Feedback = append(result.Feedback, feedbackResearch)
	}
	if strings.Contains(userText, "value") || strings.Contains(userText, "achieve") {
		score += 5
		result.Feedback = append(result.Feedback, feedbackValue)
	}
	if strings.Contains(userText, "need") && !strings.Contains(userText, "understand") {
		score -= 5
		result.Feedback = append(result.Feedback, feedbackDemanding)
	}

	result.Score = clamp(score, 0, 100)

	return result, nil
}

func collectUserText(session *negotiation.Session) string {
	var b strings.Builder
	for _, entry := range session.Transcript() {
		if entry.Role != negotiation.RoleUser {
			continue
		}
		b.WriteString(entry.Text)
		b.WriteString(" ")
	}
	return strings.ToLower(b.String())
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
