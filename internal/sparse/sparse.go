// Package sparse provides a sparse set of small unsigned integers.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of its elements in insertion order. The automaton uses it
// to hold sets of active state IDs, whose universe is the number of states.
package sparse

import "github.com/Y-jiji/my-regex/internal/conv"

// SparseSet is a set of uint32 values below its capacity.
// The sparse slice maps a value to its index in dense; dense holds the values.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
}

// NewSparseSet creates a set that can hold values in [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Capacity returns the exclusive upper bound of storable values.
func (s *SparseSet) Capacity() uint32 {
	return conv.IntToUint32(len(s.sparse))
}

// Insert adds value to the set and reports whether it was absent.
// Panics if value >= Capacity().
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = conv.IntToUint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if value >= s.Capacity() {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear empties the set in O(1).
func (s *SparseSet) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of elements.
func (s *SparseSet) Len() int {
	return len(s.dense)
}

// Values returns the elements in insertion order.
// The returned slice is only valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense
}
