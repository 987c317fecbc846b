package nfa

// Step moves the active states over one input character and returns the new
// set. active is not modified.
//
// For each active state, a character transition contributes its target when
// its character equals c and an any transition always contributes its target.
// An epsilon transition contributes both its target and the state it leaves.
//
// Epsilon transitions are relaxed once, not transitively: a chain of two
// epsilon edges is not followed to its end. Callers that need the full
// closure apply EpsilonClosure. IDs in active that name no state of n are
// ignored, and an empty active set yields an empty result.
func (n *NFA) Step(active *StateSet, c rune) *StateSet {
	next := n.NewStateSet()
	if active == nil {
		return next
	}
	active.each(func(id StateID) {
		s := n.State(id)
		if s == nil {
			return
		}
		for _, t := range s.transitions {
			switch {
			case t.Kind == TransitionEpsilon:
				next.Insert(t.Next)
				next.Insert(id)
			case t.Accepts(c):
				next.Insert(t.Next)
			}
		}
	})
	return next
}

// EpsilonClosure returns the states of set together with every state reachable
// from them through one or more epsilon transitions. set is not modified.
func (n *NFA) EpsilonClosure(set *StateSet) *StateSet {
	closure := n.NewStateSet()
	if set == nil {
		return closure
	}

	stack := make([]StateID, 0, set.Len())
	set.each(func(id StateID) {
		if closure.Insert(id) {
			stack = append(stack, id)
		}
	})

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := n.State(id)
		if s == nil {
			continue
		}
		for _, t := range s.transitions {
			if t.Kind == TransitionEpsilon && closure.Insert(t.Next) {
				stack = append(stack, t.Next)
			}
		}
	}
	return closure
}
