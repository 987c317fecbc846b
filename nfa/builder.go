package nfa

import (
	"fmt"

	"github.com/Y-jiji/my-regex/internal/conv"
)

// Builder constructs NFAs incrementally using a low-level API.
// A fresh builder already holds the start (0) and accept (1) states.
// The Compiler uses it to lay out syntax trees.
type Builder struct {
	states []State
}

// NewBuilder creates a new NFA builder with default capacity
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a new NFA builder with room for capacity
// states before the arena has to grow.
func NewBuilderWithCapacity(capacity int) *Builder {
	if capacity < 2 {
		capacity = 2
	}
	b := &Builder{states: make([]State, 0, capacity)}
	b.AddState() // StartState
	b.AddState() // AcceptState
	return b
}

// AddState appends a state with no transitions and returns its ID
func (b *Builder) AddState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id})
	return id
}

// AddTransition appends t to the outgoing transitions of from.
// Both from and t.Next must already exist.
func (b *Builder) AddTransition(from StateID, t Transition) error {
	if !b.valid(from) {
		return &BuildError{
			Message: "source state out of bounds",
			StateID: from,
			Err:     ErrInvalidState,
		}
	}
	if !b.valid(t.Next) {
		return &BuildError{
			Message: fmt.Sprintf("target state %d out of bounds", t.Next),
			StateID: from,
			Err:     ErrInvalidTransition,
		}
	}
	if t.Kind > TransitionEpsilon {
		return &BuildError{
			Message: fmt.Sprintf("unknown transition kind %s", t.Kind),
			StateID: from,
			Err:     ErrInvalidTransition,
		}
	}
	b.push(from, t)
	return nil
}

// AddChar adds a transition from -> to consuming c
func (b *Builder) AddChar(from StateID, c rune, to StateID) error {
	return b.AddTransition(from, OnChar(c, to))
}

// AddAny adds a transition from -> to consuming any character
func (b *Builder) AddAny(from, to StateID) error {
	return b.AddTransition(from, OnAny(to))
}

// AddEpsilon adds a transition from -> to consuming no input
func (b *Builder) AddEpsilon(from, to StateID) error {
	return b.AddTransition(from, OnEpsilon(to))
}

// push appends without bounds checks; callers guarantee both ends exist.
func (b *Builder) push(from StateID, t Transition) {
	s := &b.states[from]
	s.transitions = append(s.transitions, t)
}

func (b *Builder) valid(id StateID) bool {
	return id != InvalidState && int(id) < len(b.states)
}

// States returns the current number of states
func (b *Builder) States() int {
	return len(b.states)
}

// Validate checks that the NFA is well-formed:
// - Start and accept states exist
// - All transitions point to valid states
func (b *Builder) Validate() error {
	return validate(b.states)
}

// Build finalizes and returns the constructed NFA.
// The builder hands its states over and must not be used afterwards.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	nfa := &NFA{states: b.states}
	b.states = nil
	return nfa, nil
}

func validate(states []State) error {
	if len(states) <= int(AcceptState) {
		return &BuildError{
			Message: "start or accept state missing",
			StateID: InvalidState,
			Err:     ErrInvalidState,
		}
	}
	for i := range states {
		for j, t := range states[i].transitions {
			if t.Next == InvalidState || int(t.Next) >= len(states) {
				return &BuildError{
					Message: fmt.Sprintf("invalid transition %d target %d", j, t.Next),
					StateID: states[i].id,
					Err:     ErrInvalidTransition,
				}
			}
		}
	}
	return nil
}
