// Package syntax parses the pattern language into an abstract syntax tree.
//
// The language has no error cases. Plain characters concatenate, '|' alternates,
// '*' repeats everything accumulated so far at the current nesting level, '.'
// matches any character, '(' groups, '[' flips between sequence and character
// class mode, and '{...}' quotes a balanced run of literal characters.
//
// Parse never fails; unbalanced delimiters are closed implicitly at the end of
// the pattern.
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of a Regexp node.
type Op uint8

const (
	// OpEmpty matches the empty string.
	OpEmpty Op = iota

	// OpLiteral matches exactly Rune.
	OpLiteral

	// OpWildcard matches any single character.
	OpWildcard

	// OpConcat matches Sub[0] immediately followed by Sub[1].
	OpConcat

	// OpAlternate matches Sub[0] or Sub[1].
	OpAlternate

	// OpRepeat matches zero or more consecutive occurrences of Sub[0].
	OpRepeat
)

// String returns a human-readable name of the Op
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "Empty"
	case OpLiteral:
		return "Literal"
	case OpWildcard:
		return "Wildcard"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Regexp is a node in the syntax tree.
//
// The tree is never shared: each node owns its Sub children. A nil *Regexp is
// treated as an Empty node everywhere in this package.
type Regexp struct {
	Op   Op
	Rune rune      // for OpLiteral
	Sub  []*Regexp // two operands for OpConcat/OpAlternate, one for OpRepeat
}

// Empty returns a node matching the empty string.
func Empty() *Regexp {
	return &Regexp{Op: OpEmpty}
}

// Literal returns a node matching r.
func Literal(r rune) *Regexp {
	return &Regexp{Op: OpLiteral, Rune: r}
}

// Wildcard returns a node matching any single character.
func Wildcard() *Regexp {
	return &Regexp{Op: OpWildcard}
}

// Concat returns the sequence a then b without collapsing Empty operands.
// Use Chain to build sequences during parsing.
func Concat(a, b *Regexp) *Regexp {
	return &Regexp{Op: OpConcat, Sub: []*Regexp{orEmpty(a), orEmpty(b)}}
}

// Alternate returns the choice between a and b without collapsing Empty operands.
// Use Join to build alternations during parsing.
func Alternate(a, b *Regexp) *Regexp {
	return &Regexp{Op: OpAlternate, Sub: []*Regexp{orEmpty(a), orEmpty(b)}}
}

// Repeat returns the Kleene star of re.
func Repeat(re *Regexp) *Regexp {
	return &Regexp{Op: OpRepeat, Sub: []*Regexp{orEmpty(re)}}
}

// Chain concatenates a and b, treating Empty as the identity element.
func Chain(a, b *Regexp) *Regexp {
	switch {
	case a.IsEmpty():
		return orEmpty(b)
	case b.IsEmpty():
		return a
	}
	return Concat(a, b)
}

// Join alternates a and b, treating Empty as the identity element.
func Join(a, b *Regexp) *Regexp {
	switch {
	case a.IsEmpty():
		return orEmpty(b)
	case b.IsEmpty():
		return a
	}
	return Alternate(a, b)
}

func orEmpty(re *Regexp) *Regexp {
	if re == nil {
		return Empty()
	}
	return re
}

// IsEmpty reports whether re is nil or an OpEmpty node.
func (re *Regexp) IsEmpty() bool {
	return re == nil || re.Op == OpEmpty
}

// Equal reports whether re and other are structurally identical trees.
func (re *Regexp) Equal(other *Regexp) bool {
	if re.IsEmpty() || other.IsEmpty() {
		return re.IsEmpty() && other.IsEmpty()
	}
	if re.Op != other.Op || len(re.Sub) != len(other.Sub) {
		return false
	}
	if re.Op == OpLiteral && re.Rune != other.Rune {
		return false
	}
	for i := range re.Sub {
		if !re.Sub[i].Equal(other.Sub[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes in the tree.
func (re *Regexp) Size() int {
	if re == nil {
		return 1
	}
	n := 1
	for _, sub := range re.Sub {
		n += sub.Size()
	}
	return n
}

// String renders the tree fully parenthesized: "(x)(y)" for a sequence,
// "(x|y)" for a choice, "(x*)" for repetition and "ε" for the empty string.
func (re *Regexp) String() string {
	var b strings.Builder
	re.writeTo(&b)
	return b.String()
}

func (re *Regexp) writeTo(b *strings.Builder) {
	if re.IsEmpty() {
		b.WriteString("ε")
		return
	}
	switch re.Op {
	case OpLiteral:
		b.WriteRune(re.Rune)
	case OpWildcard:
		b.WriteByte('.')
	case OpConcat:
		b.WriteByte('(')
		re.Sub[0].writeTo(b)
		b.WriteString(")(")
		re.Sub[1].writeTo(b)
		b.WriteByte(')')
	case OpAlternate:
		b.WriteByte('(')
		re.Sub[0].writeTo(b)
		b.WriteByte('|')
		re.Sub[1].writeTo(b)
		b.WriteByte(')')
	case OpRepeat:
		b.WriteByte('(')
		re.Sub[0].writeTo(b)
		b.WriteString("*)")
	default:
		fmt.Fprintf(b, "<%s>", re.Op)
	}
}
