// Package nfa builds Thompson NFAs from syntax trees and steps them over input.
//
// An NFA is an arena of states addressed by StateID. Every automaton produced
// by Compile has exactly one start state (0) and one accept state (1); other
// states are appended as sequences are laid out and are never removed.
//
// Step performs a single relaxation and does not follow chains of epsilon
// transitions. Drivers that need the full closure call EpsilonClosure.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrInvalidTransition indicates a transition targets a state that does not exist
	ErrInvalidTransition = errors.New("invalid NFA transition")
)

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns the underlying sentinel error
func (e *BuildError) Unwrap() error {
	return e.Err
}
