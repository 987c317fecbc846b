package nfa

import (
	"github.com/Y-jiji/my-regex/syntax"
)

// Compiler lays syntax trees out as Thompson NFAs.
//
// Every node is wired between a pair of existing states; only concatenation
// allocates a new state (the boundary between its operands). Identical
// subtrees are wired independently, so the result is correct but not minimal.
type Compiler struct {
	builder *Builder
}

// NewCompiler creates a new NFA compiler
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Build compiles re into a new NFA. See Compiler.Compile.
func Build(re *syntax.Regexp) *NFA {
	return NewCompiler().Compile(re)
}

// Compile lays re out between StartState and AcceptState.
//
// Compile never fails and does not modify re; the returned NFA holds no
// reference to the tree. A nil re compiles like syntax.Empty().
func (c *Compiler) Compile(re *syntax.Regexp) *NFA {
	c.builder = NewBuilderWithCapacity(2 + countConcat(re))
	c.wire(re, StartState, AcceptState)

	nfa := &NFA{states: c.builder.states}
	c.builder = nil
	return nfa
}

// wire adds the transitions recognizing re from start to end.
func (c *Compiler) wire(re *syntax.Regexp, start, end StateID) {
	if re.IsEmpty() {
		if start != end {
			c.builder.push(start, OnEpsilon(end))
		}
		return
	}

	switch re.Op {
	case syntax.OpLiteral:
		c.builder.push(start, OnChar(re.Rune, end))
	case syntax.OpWildcard:
		c.builder.push(start, OnAny(end))
	case syntax.OpAlternate:
		// parallel paths between the same pair of states
		c.wire(re.Sub[0], start, end)
		c.wire(re.Sub[1], start, end)
	case syntax.OpConcat:
		// the shared middle state is the boundary, no epsilon needed
		mid := c.builder.AddState()
		c.wire(re.Sub[0], start, mid)
		c.wire(re.Sub[1], mid, end)
	case syntax.OpRepeat:
		c.wire(re.Sub[0], start, start)
		if start != end {
			c.builder.push(start, OnEpsilon(end))
		}
	}
}

// countConcat returns the number of states wire will allocate for re.
func countConcat(re *syntax.Regexp) int {
	if re == nil {
		return 0
	}
	n := 0
	if re.Op == syntax.OpConcat {
		n++
	}
	for _, sub := range re.Sub {
		n += countConcat(sub)
	}
	return n
}
