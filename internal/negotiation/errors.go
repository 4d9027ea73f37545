package negotiation

import "errors"

// Sentinel errors returned by the simulator. Callers are expected to match
// them with errors.Is and decide how to recover; none of them are retried
// internally since every failure is a contract violation, not an I/O fault.
var (
	// ErrInvalidScenario marks a scenario whose salary bounds are inconsistent.
	// A session must not be started from such a scenario.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrInvalidStateTransition marks a Start or Submit call made while the
	// session is in the wrong state. The caller should resynchronize instead
	// of retrying.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrEmptyUtterance marks a blank or whitespace-only user message. It is
	// returned before any session state is mutated.
	ErrEmptyUtterance = errors.New("empty utterance")

	// ErrSessionNotConcluded marks an attempt to score a session that is
	// still negotiating.
	ErrSessionNotConcluded = errors.New("session is not concluded")
)
