// Package glushkov turns rational expressions into finite automata with the
// Glushkov position construction, and back with Arden's lemma. It also
// carries the usual algebra on automata: accessible part, mirror, product,
// subset construction, minimization and language equivalence.
//
//	a, err := glushkov.BuildGlushkov(glushkov.MustParse("(a+b)*a"))
//	m := glushkov.Minimize(a)
//	fmt.Println(glushkov.AutomatonToRegex(m))
package glushkov

import (
	"fmt"

	"glushkov/internal/arden"
	"glushkov/internal/autfile"
	"glushkov/internal/automaton"
	gl "glushkov/internal/glushkov"
	"glushkov/internal/parser"
	"glushkov/internal/regex"
)

type (
	Automaton = automaton.Automaton
	Tree      = regex.Tree
)

// Parse reads an expression. See MustParse for the syntax.
func Parse(text string) (*Tree, error) {
	return parser.Parse(text)
}

// MustParse is Parse for known-good input. Expressions use `+` for union,
// juxtaposition for concatenation, postfix `*`, parentheses, `ε` or `#` for
// the empty word and `∅` for the empty language; `\c` is the letter c.
func MustParse(text string) *Tree {
	return parser.MustParse(text)
}

// BuildGlushkov returns the position automaton of t, indexing t if needed.
func BuildGlushkov(t *Tree) (*Automaton, error) {
	return gl.Build(t)
}

func Determinize(a *Automaton) *Automaton {
	return automaton.Determinize(a)
}

func Minimize(a *Automaton) *Automaton {
	return automaton.Minimize(a)
}

func Mirror(a *Automaton) *Automaton {
	return automaton.Mirror(a)
}

func Accessible(a *Automaton) *Automaton {
	return automaton.Accessible(a)
}

func Intersect(a, b *Automaton) *Automaton {
	return automaton.Intersect(a, b)
}

// EquivalentLanguages parses both expressions and reports whether they
// denote the same language.
func EquivalentLanguages(expr1, expr2 string) (bool, error) {
	a, err := fromText(expr1)
	if err != nil {
		return false, err
	}
	b, err := fromText(expr2)
	if err != nil {
		return false, err
	}
	return automaton.Equivalent(a, b), nil
}

// AutomatonToRegex solves the equation system of a.
func AutomatonToRegex(a *Automaton) *Tree {
	return arden.ToRegex(a)
}

// ToDot renders a in Graphviz format.
func ToDot(a *Automaton) string {
	return autfile.Dot(a, "automaton")
}

func fromText(expr string) (*Automaton, error) {
	t, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	a, err := gl.Build(t)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", expr, err)
	}
	return a, nil
}
