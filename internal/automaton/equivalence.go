package automaton

// Canonical relabels the part of a reachable from its initial state
// breadth-first, symbols in increasing order, so that isomorphic DFAs get
// identical labels. Non-deterministic input is determinized first. An
// automaton without initial state has an empty canonical form.
func Canonical(a *Automaton) *Automaton {
	if !IsDeterministic(a) {
		a = Determinize(a)
	}

	out := New()
	syms := a.Alphabet()
	for _, r := range syms {
		out.AddSymbol(r)
	}
	if a.initial.Empty() {
		return out
	}

	start := a.initial.Min()
	ids := map[int]int{start: 0}
	order := []int{start}
	out.AddInitial(0)

	for id := 0; id < len(order); id++ {
		s := order[id]
		if a.IsFinal(s) {
			out.AddFinal(id)
		}
		for _, r := range syms {
			targets := a.Targets(s, r)
			if targets.Empty() {
				continue
			}
			t := targets.Min()
			to, ok := ids[t]
			if !ok {
				to = len(order)
				ids[t] = to
				order = append(order, t)
			}
			out.AddTransition(id, r, to)
		}
	}
	return out
}

// Equal compares a and b field by field: alphabet, states, initial and final
// sets and transitions. It does not relabel.
func Equal(a, b *Automaton) bool {
	if len(a.alphabet) != len(b.alphabet) {
		return false
	}
	for r := range a.alphabet {
		if !b.HasSymbol(r) {
			return false
		}
	}
	if !a.states.Equal(b.states) || !a.initial.Equal(b.initial) || !a.final.Equal(b.final) {
		return false
	}
	if a.NumTransitions() != b.NumTransitions() {
		return false
	}
	for k, targets := range a.trans {
		other, ok := b.trans[k]
		if !ok || !targets.Equal(other) {
			return false
		}
	}
	return true
}

// Equivalent reports whether a and b accept the same language over the same
// alphabet, by comparing the canonical forms of their minimal DFAs.
func Equivalent(a, b *Automaton) bool {
	return Equal(Canonical(Minimize(a)), Canonical(Minimize(b)))
}
