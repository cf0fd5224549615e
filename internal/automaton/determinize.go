package automaton

import (
	"glushkov/internal/intset"
)

// Determinize runs the subset construction from the initial set of a. DFA
// states are numbered in discovery order, breadth-first with the symbols in
// increasing order, so the numbering only depends on the language structure
// of a. The result is partial: a symbol leading to no state gets no
// transition. When a has no initial state the result is a single non-final
// state.
func Determinize(a *Automaton) *Automaton {
	d, _ := Subsets(a)
	return d
}

// Subsets is Determinize that also returns, for each DFA state, the set of
// states of a it stands for.
func Subsets(a *Automaton) (*Automaton, []*intset.Set) {
	d := New()
	syms := a.Alphabet()
	for _, r := range syms {
		d.AddSymbol(r)
	}

	start := a.Initial()
	ids := map[string]int{start.Key(): 0}
	subsets := []*intset.Set{start}
	d.AddInitial(0)
	if start.Intersects(a.final) {
		d.AddFinal(0)
	}

	for id := 0; id < len(subsets); id++ {
		cur := subsets[id]
		for _, r := range syms {
			next := a.Delta(cur, r)
			if next.Empty() {
				continue
			}
			k := next.Key()
			to, ok := ids[k]
			if !ok {
				to = len(subsets)
				ids[k] = to
				subsets = append(subsets, next)
				d.AddState(to)
				if next.Intersects(a.final) {
					d.AddFinal(to)
				}
			}
			d.AddTransition(id, r, to)
		}
	}
	return d, subsets
}

// IsDeterministic reports whether a has at most one initial state and at most
// one target for every state and symbol.
func IsDeterministic(a *Automaton) bool {
	if a.initial.Len() > 1 {
		return false
	}
	for _, targets := range a.trans {
		if targets.Len() > 1 {
			return false
		}
	}
	return true
}
