// Package myregex compiles a small pattern language into a Thompson NFA.
//
// Compilation has two stages: syntax.Parse turns the pattern into a tree and
// nfa.Build lays the tree out as an automaton with a start state (0) and an
// accept state (1). Neither stage can fail; malformed patterns are closed
// implicitly at the end of input.
//
// Pattern language:
//
//	c      the character c
//	.      any character
//	xy     x followed by y
//	x|y    x or y; the right side extends to the end of the enclosing group
//	x*     zero or more repetitions of everything before '*' in the group
//	(x)    grouping
//	[xy]   character class: x or y; brackets inside flip back to sequencing
//	{x}    x taken literally, balanced braces included
//
// Basic usage:
//
//	re := myregex.Compile("ab*")
//	active := re.Step(re.Start(), 'a')
//	fmt.Println(re.DOT()) // Graphviz rendering for inspection
//
// The package does not run matches itself. Step relaxes epsilon transitions a
// single time; drivers combine it with nfa.NFA.EpsilonClosure.
package myregex

import (
	"github.com/Y-jiji/my-regex/nfa"
	"github.com/Y-jiji/my-regex/syntax"
)

// Regex is a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple goroutines.
// The state sets passed to and returned by Step are not.
type Regex struct {
	pattern string
	ast     *syntax.Regexp
	nfa     *nfa.NFA
}

// Compile parses pattern and builds its automaton.
func Compile(pattern string) *Regex {
	ast := syntax.Parse(pattern)
	return &Regex{
		pattern: pattern,
		ast:     ast,
		nfa:     nfa.Build(ast),
	}
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// AST returns the parsed syntax tree. It must not be modified.
func (r *Regex) AST() *syntax.Regexp {
	return r.ast
}

// NFA returns the compiled automaton.
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}

// Start returns a new set holding only the start state.
func (r *Regex) Start() *nfa.StateSet {
	return r.nfa.NewStateSet(r.nfa.Start())
}

// Step advances active over c. See nfa.NFA.Step.
func (r *Regex) Step(active *nfa.StateSet, c rune) *nfa.StateSet {
	return r.nfa.Step(active, c)
}

// IsAccepting reports whether active contains the accept state.
func (r *Regex) IsAccepting(active *nfa.StateSet) bool {
	return active != nil && active.Contains(r.nfa.Accept())
}

// DOT renders the automaton as a Graphviz digraph. See nfa.NFA.WriteDOT.
func (r *Regex) DOT(opts ...nfa.DOTOption) string {
	return r.nfa.DOT(opts...)
}
