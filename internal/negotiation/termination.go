package negotiation

import "strings"

// Verdict is the outcome of termination detection for one utterance.
type Verdict int

const (
	// VerdictNone means the session continues to a regular offer turn.
	VerdictNone Verdict = iota
	// VerdictAccept means the user accepted the current offer.
	VerdictAccept
	// VerdictDecline means the user walked away.
	VerdictDecline
)

var (
	acceptKeywords  = []string{"accept", "yes", "agree"}
	declineKeywords = []string{"decline", "no thank", "pass"}
)

// DetectTermination decides whether an utterance concludes the session.
// It runs before classification on every turn. Accept is checked first, so
// a contradictory utterance matching both keyword sets resolves to Accept.
// This tie-break is a defined part of the contract.
func DetectTermination(utterance string) Verdict {
	lower := strings.ToLower(utterance)

	if containsAny(lower, acceptKeywords) {
		return VerdictAccept
	}
	if containsAny(lower, declineKeywords) {
		return VerdictDecline
	}

	return VerdictNone
}
