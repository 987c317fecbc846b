package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	lit = Literal
	dot = Wildcard
	cat = Concat
	alt = Alternate
	rep = Repeat
)

// chainAll concatenates the runes of s left to right.
func chainAll(s string) *Regexp {
	acc := Empty()
	for _, r := range s {
		acc = Chain(acc, Literal(r))
	}
	return acc
}

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    *Regexp
	}{
		// plain sequences
		{"", Empty()},
		{"a", lit('a')},
		{"ab", cat(lit('a'), lit('b'))},
		{"abc", cat(cat(lit('a'), lit('b')), lit('c'))},
		{"a.b", cat(cat(lit('a'), dot()), lit('b'))},
		{"日本", cat(lit('日'), lit('本'))},

		// '*' wraps everything accumulated at the current level
		{"a*", rep(lit('a'))},
		{"ab*", rep(cat(lit('a'), lit('b')))},
		{"ab**", rep(rep(cat(lit('a'), lit('b'))))},
		{"*a", cat(rep(Empty()), lit('a'))},
		{"x(ab)*", rep(cat(lit('x'), cat(lit('a'), lit('b'))))},
		{"x(ab*)", cat(lit('x'), rep(cat(lit('a'), lit('b'))))},

		// alternation takes the rest of the frame
		{"a|b", alt(lit('a'), lit('b'))},
		{"a|b|c", alt(lit('a'), alt(lit('b'), lit('c')))},
		{"ab|c*", alt(cat(lit('a'), lit('b')), rep(lit('c')))},
		{"a|", lit('a')},
		{"|a", lit('a')},
		{"(a|b)c", cat(alt(lit('a'), lit('b')), lit('c'))},
		{"(a|b)*", rep(alt(lit('a'), lit('b')))},
		{"x(a|bc)y", cat(cat(lit('x'), alt(lit('a'), cat(lit('b'), lit('c')))), lit('y'))},

		// groups
		{"(ab)c", cat(cat(lit('a'), lit('b')), lit('c'))},
		{"((a))", lit('a')},
		{"()a", lit('a')},

		// character classes
		{"[ab]", alt(lit('a'), lit('b'))},
		{"[a.]", alt(lit('a'), dot())},
		{"x[ab]y", cat(cat(lit('x'), alt(lit('a'), lit('b'))), lit('y'))},
		{"[ab]*", rep(alt(lit('a'), lit('b')))},
		{"[a|bc]", cat(lit('a'), alt(lit('b'), lit('c')))},
		{"[ab[cd]e]", alt(alt(alt(lit('a'), lit('b')), cat(lit('c'), lit('d'))), lit('e'))},
		{"[a(bc)]", alt(lit('a'), alt(alt(lit('b'), lit('c')), lit(')')))},

		// literal escapes
		{"{a{b}c}", chainAll("a{b}c")},
		{"{(a|b)*}", chainAll("(a|b)*")},
		{"{}", Empty()},
		{"a{}b", cat(lit('a'), lit('b'))},
		{"ab{cd}", alt(cat(lit('a'), lit('b')), cat(lit('c'), lit('d')))},
		{"[a{bc}]", cat(lit('a'), alt(lit('b'), lit('c')))},
		{"{.}", lit('.')},

		// stray closers at the top level are literals
		{"a)", cat(lit('a'), lit(')'))},
		{"]", lit(']')},
		{"}", lit('}')},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := Parse(tt.pattern)
			assert.Truef(t, tt.want.Equal(got), "Parse(%q) = %s, want %s", tt.pattern, got, tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	patterns := []string{
		"(a", "[a", "{a", "((", "[[", "{{", "a|", "|", "(|", "[|", "{a{b",
		"(a[b{c", "***", "\xff\xfe", "([)]", "[(])",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.NotNil(t, Parse(p))
			})
		})
	}

	// an unterminated group keeps what it accumulated
	assert.True(t, lit('a').Equal(Parse("(a")))
	assert.True(t, chainAll("ab").Equal(Parse("{ab")))
	assert.True(t, lit(0xFFFD).Equal(Parse("\xff")))
}

func TestParse_String(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"ab*", "((a)(b)*)"},
		{"a|b", "(a|b)"},
		{"[abc]", "((a|b)|c)"},
		{"a.", "(a)(.)"},
		{"", "ε"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.pattern).String())
		})
	}
}

func TestParse_NoEmptyOperands(t *testing.T) {
	var check func(t *testing.T, re *Regexp)
	check = func(t *testing.T, re *Regexp) {
		if re.Op == OpConcat || re.Op == OpAlternate {
			for _, sub := range re.Sub {
				assert.NotEqual(t, OpEmpty, sub.Op, "empty operand under %s", re.Op)
			}
		}
		for _, sub := range re.Sub {
			check(t, sub)
		}
	}

	for _, p := range []string{"a()b", "a{}b|", "[a[]b]", "(|)x", "x*{}y"} {
		t.Run(p, func(t *testing.T) {
			check(t, Parse(p))
		})
	}
}
