// Package glushkov builds the position automaton of a rational expression.
package glushkov

import (
	"fmt"

	"glushkov/internal/automaton"
	"glushkov/internal/regex"
)

// Build returns the Glushkov automaton of t. The tree is indexed and linked
// in place if it is not already.
//
// State p, for p in 1..n, stands for the letter at position p and state 0 is
// the only initial state. Every transition into p is labelled with the symbol
// of p, so no transition enters 0. The finals are Last(t), plus 0 when t is
// nullable. The empty language gives a lone non-final state 0.
func Build(t *regex.Tree) (*automaton.Automaton, error) {
	if !t.IsIndexed() {
		t.Index()
	}
	if !t.IsLinked() {
		t.Link()
	}
	n := t.Letters()

	a := automaton.New()
	for s := 0; s <= n; s++ {
		a.AddState(s)
	}
	for _, r := range t.Alphabet() {
		a.AddSymbol(r)
	}
	a.AddInitial(0)

	symbols := make([]rune, n+1)
	for p := 1; p <= n; p++ {
		r, err := t.SymbolAt(p)
		if err != nil {
			return nil, fmt.Errorf("glushkov: %w", err)
		}
		symbols[p] = r
	}

	first, err := t.First(t.Root())
	if err != nil {
		return nil, fmt.Errorf("glushkov: %w", err)
	}
	for _, q := range first.Elements() {
		a.AddTransition(0, symbols[q], q)
	}

	for p := 1; p <= n; p++ {
		follow, err := t.Follow(p)
		if err != nil {
			return nil, fmt.Errorf("glushkov: %w", err)
		}
		for _, q := range follow.Elements() {
			a.AddTransition(p, symbols[q], q)
		}
	}

	last, err := t.Last(t.Root())
	if err != nil {
		return nil, fmt.Errorf("glushkov: %w", err)
	}
	last.Each(a.AddFinal)
	if t.Nullable(t.Root()) {
		a.AddFinal(0)
	}
	return a, nil
}
