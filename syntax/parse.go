package syntax

import "unicode/utf8"

// polarity selects how adjacent atoms combine at one nesting level.
type polarity bool

const (
	sequence polarity = false // atoms concatenate
	charset  polarity = true  // atoms alternate
)

// combine applies the default combinator of p.
func (p polarity) combine(a, b *Regexp) *Regexp {
	if p == charset {
		return Join(a, b)
	}
	return Chain(a, b)
}

// invert returns the opposite polarity.
func (p polarity) invert() polarity {
	return !p
}

// closer returns the delimiter that ends a group opened with '(' under p.
func (p polarity) closer() rune {
	if p == charset {
		return ']'
	}
	return ')'
}

// frame is the parsing context of one nesting level. It is passed by value to
// each recursive call and never modified.
type frame struct {
	pol     polarity
	bounded bool // stop at closer; only the outermost frame is unbounded
	closer  rune
}

// parser is a forward-only cursor over the pattern.
type parser struct {
	input string
	pos   int
}

// next consumes and returns the next rune. ok is false at end of input.
func (p *parser) next() (r rune, ok bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	p.pos += size
	return r, true
}

// Parse converts pattern into a syntax tree.
//
// Parse is total: unterminated groups, brackets and escape blocks end at the
// end of the pattern, and closing delimiters with nothing to close are
// ordinary characters. Invalid UTF-8 bytes are read as utf8.RuneError.
func Parse(pattern string) *Regexp {
	p := &parser{input: pattern}
	return p.parseFrame(frame{pol: sequence})
}

// parseFrame consumes runes until the frame's closing delimiter (if bounded)
// or the end of input, and returns everything accumulated at this level.
func (p *parser) parseFrame(f frame) *Regexp {
	acc := Empty()
	for {
		c, ok := p.next()
		if !ok {
			return acc
		}
		switch {
		case f.bounded && c == f.closer:
			return acc
		case c == '*':
			// binds to the whole accumulator, not just the last atom
			acc = Repeat(acc)
		case c == '.':
			acc = f.pol.combine(acc, Wildcard())
		case c == '(':
			sub := p.parseFrame(frame{pol: f.pol, bounded: true, closer: f.pol.closer()})
			acc = f.pol.combine(acc, sub)
		case c == '[':
			// a bracket always closes on ']', whichever polarity it switches to
			sub := p.parseFrame(frame{pol: f.pol.invert(), bounded: true, closer: ']'})
			acc = f.pol.combine(acc, sub)
		case c == '|':
			// The right operand takes the rest of this frame, closing
			// delimiter included, so nothing is left to scan here.
			sub := p.parseFrame(f)
			return f.pol.invert().combine(acc, sub)
		case c == '{':
			sub := p.parseEscape(f.pol)
			// escape blocks merge with the inverse pairing of '(' and '['
			acc = f.pol.invert().combine(acc, sub)
		default:
			acc = f.pol.combine(acc, Literal(c))
		}
	}
}

// parseEscape consumes a literal block whose opening '{' has already been read.
// Every rune up to the matching '}' is literal, including balanced inner braces.
func (p *parser) parseEscape(pol polarity) *Regexp {
	acc := Empty()
	depth := 1
	for {
		c, ok := p.next()
		if !ok {
			return acc
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			return acc
		}
		acc = pol.combine(acc, Literal(c))
	}
}
