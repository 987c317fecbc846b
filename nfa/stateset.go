package nfa

import (
	"fmt"
	"slices"

	"github.com/Y-jiji/my-regex/internal/conv"
	"github.com/Y-jiji/my-regex/internal/sparse"
)

// StateSet is a set of state IDs with O(1) insertion and membership tests.
//
// A set holds IDs below the capacity it was created with; IDs outside that
// range are never stored. The zero value is an empty set with no capacity:
// it reads as empty and rejects every insertion. Use NewStateSet or
// NFA.NewStateSet to get a set that can hold states.
//
// A StateSet is not safe for concurrent mutation.
type StateSet struct {
	set *sparse.SparseSet
}

// NewStateSet creates a set holding IDs in [0, capacity) and inserts ids.
// IDs outside that range are dropped.
func NewStateSet(capacity int, ids ...StateID) *StateSet {
	s := &StateSet{set: sparse.NewSparseSet(conv.IntToUint32(max(capacity, 0)))}
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

// NewStateSet creates a set sized for the states of n holding ids.
// IDs that name no state of n are dropped.
func (n *NFA) NewStateSet(ids ...StateID) *StateSet {
	return NewStateSet(len(n.states), ids...)
}

// Capacity returns the exclusive upper bound of storable IDs.
func (s *StateSet) Capacity() int {
	if s.set == nil {
		return 0
	}
	return int(s.set.Capacity())
}

// Insert adds id and reports whether it was absent.
// IDs at or above Capacity, InvalidState included, are not stored.
func (s *StateSet) Insert(id StateID) bool {
	if int64(id) >= int64(s.Capacity()) {
		return false
	}
	return s.set.Insert(uint32(id))
}

// Contains reports whether id is in the set.
func (s *StateSet) Contains(id StateID) bool {
	return s.set != nil && s.set.Contains(uint32(id))
}

// Len returns the number of states in the set.
func (s *StateSet) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Len()
}

// IsEmpty reports whether the set holds no states.
func (s *StateSet) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes every state from the set.
func (s *StateSet) Clear() {
	if s.set != nil {
		s.set.Clear()
	}
}

// IDs returns the members in ascending order as a new slice.
func (s *StateSet) IDs() []StateID {
	ids := make([]StateID, 0, s.Len())
	s.each(func(id StateID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// each calls f for every member in insertion order. f must not mutate s.
func (s *StateSet) each(f func(StateID)) {
	if s.set == nil {
		return
	}
	for _, v := range s.set.Values() {
		f(StateID(v))
	}
}

// String returns the members in ascending order, e.g. "{0, 3}".
func (s *StateSet) String() string {
	ids := s.IDs()
	out := make([]byte, 0, 2+4*len(ids))
	out = append(out, '{')
	for i, id := range ids {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = fmt.Appendf(out, "%d", id)
	}
	return string(append(out, '}'))
}
