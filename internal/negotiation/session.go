package negotiation

import (
	"fmt"
	"strings"
)

// Role marks who produced a transcript entry.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployer Role = "employer"
)

// Entry is one line of the negotiation history. The transcript is
// append-only and its order is meaningful.
type Entry struct {
	Role   Role
	Text   string
	AtTurn int
}

// State is the lifecycle phase of a session. Transitions only move forward:
// Idle -> Negotiating -> Concluded.
type State int

const (
	StateIdle State = iota
	StateNegotiating
	StateConcluded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNegotiating:
		return "negotiating"
	case StateConcluded:
		return "concluded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome records how a concluded session ended.
type Outcome struct {
	Accepted bool
}

// Delta reports what one Submit call appended: the user entry, the employer
// reply when the session continued, the offer after the turn and whether the
// session concluded.
type Delta struct {
	Entries   []Entry
	Offer     float64
	Concluded bool
}

// Session is the mutable unit of work. It is owned by a single caller and
// must not be mutated from two goroutines: turn order is the sole source of
// the turn-count and offer invariants.
type Session struct {
	scenario     Scenario
	transcript   []Entry
	currentOffer float64
	turnCount    int
	state        State
	outcome      *Outcome
}

// Start validates the scenario and opens a session in the Negotiating state,
// seeded with the employer's opening offer and one employer transcript entry
// announcing it.
func Start(scenario Scenario) (*Session, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		scenario: scenario,
		state:    StateIdle,
	}

	s.currentOffer = scenario.OpeningOffer()
	s.appendEntry(RoleEmployer, fmt.Sprintf(
		"Thanks for your interest in the role. We are prepared to offer %.0f. How does that sound?",
		s.currentOffer,
	))
	s.state = StateNegotiating

	return s, nil
}

// Submit processes one user utterance. Blank input is rejected before any
// state changes. Termination detection runs before classification; when it
// fires, the session concludes with no employer reply. Otherwise the tactic
// signature drives the next offer and an employer entry is appended.
func (s *Session) Submit(utterance string) (*Delta, error) {
	if s.state != StateNegotiating {
		return nil, fmt.Errorf("%w: submit called while %s", ErrInvalidStateTransition, s.state)
	}
	if strings.TrimSpace(utterance) == "" {
		return nil, ErrEmptyUtterance
	}

	s.turnCount++
	userEntry := s.appendEntry(RoleUser, utterance)

	delta := &Delta{Entries: []Entry{userEntry}}

	switch DetectTermination(utterance) {
	case VerdictAccept:
		s.conclude(true)
	case VerdictDecline:
		s.conclude(false)
	default:
		proposal := NextOffer(s.currentOffer, Classify(utterance), s.scenario)
		s.currentOffer = proposal.Offer
		delta.Entries = append(delta.Entries, s.appendEntry(RoleEmployer, proposal.Remark))
	}

	delta.Offer = s.currentOffer
	delta.Concluded = s.state == StateConcluded

	return delta, nil
}

func (s *Session) conclude(accepted bool) {
	s.outcome = &Outcome{Accepted: accepted}
	s.state = StateConcluded
}

func (s *Session) appendEntry(role Role, text string) Entry {
	entry := Entry{Role: role, Text: text, AtTurn: s.turnCount}
	s.transcript = append(s.transcript, entry)
	return entry
}

// Scenario returns the scenario the session was started from.
func (s *Session) Scenario() Scenario { return s.scenario }

// Transcript returns a copy of the negotiation history in insertion order.
func (s *Session) Transcript() []Entry {
	out := make([]Entry, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// CurrentOffer returns the employer's latest offer.
func (s *Session) CurrentOffer() float64 { return s.currentOffer }

// TurnCount returns the number of user utterances processed so far.
func (s *Session) TurnCount() int { return s.turnCount }

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Outcome returns how the session ended, or nil while it is still running.
func (s *Session) Outcome() *Outcome {
	if s.outcome == nil {
		return nil
	}
	out := *s.outcome
	return &out
}
