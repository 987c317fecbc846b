package nfa

import (
	"fmt"
	"strconv"
)

// StateID identifies an NFA state by its index in the state arena.
type StateID uint32

// Special state constants
const (
	// StartState is where every automaton built by Compile begins.
	StartState StateID = 0

	// AcceptState is the single accepting state of an automaton built by Compile.
	AcceptState StateID = 1

	// InvalidState represents an invalid/uninitialized state ID
	InvalidState StateID = 0xFFFFFFFF
)

// TransitionKind identifies what input a transition consumes.
type TransitionKind uint8

const (
	// TransitionChar consumes one specific character
	TransitionChar TransitionKind = iota

	// TransitionAny consumes any single character
	TransitionAny

	// TransitionEpsilon consumes no input
	TransitionEpsilon
)

// String returns a human-readable representation of the TransitionKind
func (k TransitionKind) String() string {
	switch k {
	case TransitionChar:
		return "Char"
	case TransitionAny:
		return "Any"
	case TransitionEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Transition is a labelled edge to Next.
// Char is only meaningful for TransitionChar.
type Transition struct {
	Kind TransitionKind
	Char rune
	Next StateID
}

// OnChar returns a transition consuming c.
func OnChar(c rune, next StateID) Transition {
	return Transition{Kind: TransitionChar, Char: c, Next: next}
}

// OnAny returns a transition consuming any character.
func OnAny(next StateID) Transition {
	return Transition{Kind: TransitionAny, Next: next}
}

// OnEpsilon returns a transition that consumes nothing.
func OnEpsilon(next StateID) Transition {
	return Transition{Kind: TransitionEpsilon, Next: next}
}

// Accepts reports whether the transition can be taken on input c.
// Epsilon transitions never consume input and report false.
func (t Transition) Accepts(c rune) bool {
	switch t.Kind {
	case TransitionChar:
		return t.Char == c
	case TransitionAny:
		return true
	default:
		return false
	}
}

// String returns a human-readable representation of the transition
func (t Transition) String() string {
	switch t.Kind {
	case TransitionChar:
		return fmt.Sprintf("%s -> %d", strconv.QuoteRune(t.Char), t.Next)
	case TransitionAny:
		return fmt.Sprintf("any -> %d", t.Next)
	case TransitionEpsilon:
		return fmt.Sprintf("epsilon -> %d", t.Next)
	default:
		return fmt.Sprintf("%s -> %d", t.Kind, t.Next)
	}
}

// State is a node of the automaton with its ordered outgoing transitions.
type State struct {
	id          StateID
	transitions []Transition
}

// ID returns the state's unique identifier
func (s *State) ID() StateID {
	return s.id
}

// Transitions returns the outgoing transitions in insertion order.
// The slice must not be modified.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// IsStart reports whether this is the start state
func (s *State) IsStart() bool {
	return s.id == StartState
}

// IsAccept reports whether this is the accept state
func (s *State) IsAccept() bool {
	return s.id == AcceptState
}

// String returns a human-readable representation of the state
func (s *State) String() string {
	return fmt.Sprintf("State(%d, %v)", s.id, s.transitions)
}

// NFA is a Thompson automaton stored as an arena of states indexed by StateID.
//
// State 0 is the start state and state 1 the accept state. An NFA is immutable
// once built and safe for concurrent use by multiple goroutines.
type NFA struct {
	states []State
}

// Start returns the start state ID
func (n *NFA) Start() StateID {
	return StartState
}

// Accept returns the accept state ID
func (n *NFA) Accept() StateID {
	return AcceptState
}

// State returns the state with the given ID.
// Returns nil if the ID is invalid.
func (n *NFA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(n.states) {
		return nil
	}
	return &n.states[id]
}

// IsAccept returns true if the given state is the accept state
func (n *NFA) IsAccept(id StateID) bool {
	return id == AcceptState && n.State(id) != nil
}

// States returns the total number of states in the NFA
func (n *NFA) States() int {
	return len(n.states)
}

// TransitionCount returns the total number of transitions over all states.
func (n *NFA) TransitionCount() int {
	count := 0
	for i := range n.states {
		count += len(n.states[i].transitions)
	}
	return count
}

// Validate checks that the start and accept states exist and that every
// transition targets an existing state.
func (n *NFA) Validate() error {
	return validate(n.states)
}

// Iter returns an iterator over all states in the NFA
func (n *NFA) Iter() *StateIter {
	return &StateIter{
		nfa: n,
		pos: 0,
	}
}

// StateIter is an iterator over NFA states
type StateIter struct {
	nfa *NFA
	pos int
}

// Next returns the next state in the iteration.
// Returns nil when iteration is complete.
func (it *StateIter) Next() *State {
	if it.pos >= len(it.nfa.states) {
		return nil
	}
	s := &it.nfa.states[it.pos]
	it.pos++
	return s
}

// HasNext returns true if there are more states to iterate
func (it *StateIter) HasNext() bool {
	return it.pos < len(it.nfa.states)
}

// String returns a human-readable representation of the NFA
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, transitions: %d, start: %d, accept: %d}",
		len(n.states), n.TransitionCount(), StartState, AcceptState)
}
