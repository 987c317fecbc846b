package nfa

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dotConfig holds DOT rendering settings.
type dotConfig struct {
	name    string
	rankDir string
}

// DOTOption is a functional option for configuring DOT output
type DOTOption func(*dotConfig)

// WithGraphName sets the digraph identifier. Default: "nfa".
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) {
		c.name = name
	}
}

// WithRankDir sets the Graphviz rankdir attribute (e.g. "LR").
// By default no rankdir is emitted.
func WithRankDir(dir string) DOTOption {
	return func(c *dotConfig) {
		c.rankDir = dir
	}
}

// DOT renders the automaton as a Graphviz digraph. See WriteDOT.
func (n *NFA) DOT(opts ...DOTOption) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = n.WriteDOT(&b, opts...)
	return b.String()
}

// WriteDOT writes the automaton to w as a Graphviz digraph.
//
// Every state appears once: the start state is bold with an entry arrow, the
// accept state is a double circle, and the rest are plain circles. Every
// transition appears once, labelled with its quoted character, "any" or
// "epsilon".
func (n *NFA) WriteDOT(w io.Writer, opts ...DOTOption) error {
	cfg := dotConfig{name: "nfa"}
	for _, opt := range opts {
		opt(&cfg)
	}

	ew := &errWriter{w: w}
	ew.printf("digraph %s {\n", strconv.Quote(cfg.name))
	if cfg.rankDir != "" {
		ew.printf("\trankdir=%s;\n", strconv.Quote(cfg.rankDir))
	}
	for i := range n.states {
		s := &n.states[i]
		switch {
		case s.IsStart():
			ew.printf("\t%d [shape=circle, style=bold];\n", s.id)
		case s.IsAccept():
			ew.printf("\t%d [shape=doublecircle];\n", s.id)
		default:
			ew.printf("\t%d [shape=circle];\n", s.id)
		}
	}
	if len(n.states) > 0 {
		ew.printf("\t_start [shape=point];\n\t_start -> %d;\n", StartState)
	}
	for i := range n.states {
		s := &n.states[i]
		for _, t := range s.transitions {
			ew.printf("\t%d -> %d [label=%s];\n", s.id, t.Next, strconv.Quote(dotLabel(t)))
		}
	}
	ew.printf("}\n")
	return ew.err
}

func dotLabel(t Transition) string {
	switch t.Kind {
	case TransitionChar:
		return strconv.QuoteRune(t.Char)
	case TransitionAny:
		return "any"
	case TransitionEpsilon:
		return "epsilon"
	default:
		return t.Kind.String()
	}
}

// errWriter stops writing after the first error and remembers it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
