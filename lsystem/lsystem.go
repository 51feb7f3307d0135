// Package lsystem draws Lindenmayer systems: an axiom is rewritten by
// production rules for a number of generations and the result is walked by
// a turtle that emits line segments.
package lsystem

import (
	"strings"

	"github.com/scottkirkwood/fractals/geom"
	"github.com/scottkirkwood/fractals/style"
)

// TerminalSymbols always mean something to the turtle
const TerminalSymbols = "F+-[]"

// RuleDelimiter separates the symbol from its replacement in a rule line
const RuleDelimiter = " -> "

// IsTerminal reports whether r is one of TerminalSymbols
func IsTerminal(r rune) bool {
	return strings.ContainsRune(TerminalSymbols, r)
}

// Rewrite applies rules to axiom for the given number of generations.
// Symbols without a rule are copied. The result grows exponentially and is
// never truncated.
func Rewrite(axiom string, rules map[rune]string, generations int) string {
	path := axiom
	for g := 0; g < generations; g++ {
		var next strings.Builder
		next.Grow(len(path))
		for _, c := range path {
			if repl, ok := rules[c]; ok {
				next.WriteString(repl)
			} else {
				next.WriteRune(c)
			}
		}
		path = next.String()
	}
	return path
}

// Model is an immutable snapshot of a validated L-System
type Model struct {
	Axiom      string
	Rules      map[rune]string
	Turn       geom.Angle
	Heading    geom.Angle
	Iterations int
	Length     float64
	Stroke     style.Stroke
}

// Path returns the rewritten axiom
func (m Model) Path() string {
	return Rewrite(m.Axiom, m.Rules, m.Iterations)
}

// Lines rewrites the axiom and walks the result with the turtle
func (m Model) Lines() []geom.Line {
	return Interpret(m.Path(), m.Turn, m.Heading, m.Length, m.Stroke)
}
