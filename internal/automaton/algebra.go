package automaton

import (
	"glushkov/internal/intset"
)

// Reachable returns the states reachable from the states of from, those
// included.
func Reachable(a *Automaton, from *intset.Set) *intset.Set {
	seen := intset.New()
	var stack []int
	from.Each(func(s int) {
		if a.IsState(s) && !seen.Has(s) {
			seen.Add(s)
			stack = append(stack, s)
		}
	})

	syms := a.Alphabet()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, r := range syms {
			a.Targets(s, r).Each(func(t int) {
				if !seen.Has(t) {
					seen.Add(t)
					stack = append(stack, t)
				}
			})
		}
	}
	return seen
}

// Accessible restricts a to the states reachable from its initial states. The
// alphabet is kept whole.
func Accessible(a *Automaton) *Automaton {
	keep := Reachable(a, a.initial)

	out := New()
	for r := range a.alphabet {
		out.AddSymbol(r)
	}
	keep.Each(func(s int) {
		out.AddState(s)
		if a.IsInitial(s) {
			out.AddInitial(s)
		}
		if a.IsFinal(s) {
			out.AddFinal(s)
		}
	})
	for _, t := range a.Transitions() {
		if keep.Has(t.From) {
			out.AddTransition(t.From, t.Symbol, t.To)
		}
	}
	return out
}

// Mirror reverses every transition and swaps the initial and final sets.
func Mirror(a *Automaton) *Automaton {
	out := New()
	for r := range a.alphabet {
		out.AddSymbol(r)
	}
	a.states.Each(out.AddState)
	a.final.Each(out.AddInitial)
	a.initial.Each(out.AddFinal)
	for _, t := range a.Transitions() {
		out.AddTransition(t.To, t.Symbol, t.From)
	}
	return out
}

// PairID is the product state standing for (s, t) when the right operand's
// largest state is maxB.
func PairID(s, t, maxB int) int {
	return s*(maxB+1) + t
}

// Intersect builds the product automaton of a and b. Its states are all the
// pairs of states, numbered with PairID, and its alphabet is the intersection
// of both alphabets. Disjoint alphabets give an automaton without
// transitions, whose language is empty (or {ε} if a pair of initial states is
// final in both).
func Intersect(a, b *Automaton) *Automaton {
	maxB := b.MaxState()
	out := New()
	for r := range a.alphabet {
		if b.HasSymbol(r) {
			out.AddSymbol(r)
		}
	}

	a.states.Each(func(s int) {
		b.states.Each(func(t int) {
			id := PairID(s, t, maxB)
			out.AddState(id)
			if a.IsInitial(s) && b.IsInitial(t) {
				out.AddInitial(id)
			}
			if a.IsFinal(s) && b.IsFinal(t) {
				out.AddFinal(id)
			}
		})
	})

	for _, ta := range a.Transitions() {
		if !b.HasSymbol(ta.Symbol) {
			continue
		}
		b.states.Each(func(t int) {
			b.Targets(t, ta.Symbol).Each(func(u int) {
				out.AddTransition(PairID(ta.From, t, maxB), ta.Symbol, PairID(ta.To, u, maxB))
			})
		})
	}
	return out
}

// ShortestWord returns a shortest word accepted by a, found breadth-first
// with symbols tried in increasing order. ok is false when the language is
// empty.
func ShortestWord(a *Automaton) (word string, ok bool) {
	type step struct {
		prev   int
		symbol rune
	}

	// from[s] is how s was first reached; initial states have prev -1.
	from := map[int]step{}
	var queue []int
	a.initial.Each(func(s int) {
		from[s] = step{prev: -1}
		queue = append(queue, s)
	})

	syms := a.Alphabet()
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if a.IsFinal(s) {
			var rev []rune
			for cur := s; from[cur].prev != -1; cur = from[cur].prev {
				rev = append(rev, from[cur].symbol)
			}
			out := make([]rune, len(rev))
			for i, r := range rev {
				out[len(rev)-1-i] = r
			}
			return string(out), true
		}

		for _, r := range syms {
			a.Targets(s, r).Each(func(t int) {
				if _, seen := from[t]; !seen {
					from[t] = step{prev: s, symbol: r}
					queue = append(queue, t)
				}
			})
		}
	}
	return "", false
}
