package automaton

// Minimize returns the minimal DFA of a by double reversal:
//
//	Determinize(Mirror(Accessible(Determinize(Mirror(Accessible(a))))))
//
// The result is accessible and its states are numbered breadth-first from
// the initial state 0.
func Minimize(a *Automaton) *Automaton {
	rev := Determinize(Mirror(Accessible(a)))
	return Determinize(Mirror(Accessible(rev)))
}
