// Package automaton implements finite automata over runes and the algebra on
// them: accessible pruning, mirror, product, subset construction, Brzozowski
// minimization and language equivalence.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"glushkov/internal/intset"
)

type transKey struct {
	state  int
	symbol rune
}

// Transition is one edge of the transition relation.
type Transition struct {
	From   int
	Symbol rune
	To     int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%c-> %d", t.From, t.Symbol, t.To)
}

// Automaton is a possibly non-deterministic finite automaton. States are
// small non-negative ints. Every state and symbol used by a transition or by
// the initial and final sets belongs to the automaton: the Add methods insert
// whatever is missing.
type Automaton struct {
	states   *intset.Set
	alphabet map[rune]struct{}
	trans    map[transKey]*intset.Set
	initial  *intset.Set
	final    *intset.Set
}

func New() *Automaton {
	return &Automaton{
		states:   intset.New(),
		alphabet: map[rune]struct{}{},
		trans:    map[transKey]*intset.Set{},
		initial:  intset.New(),
		final:    intset.New(),
	}
}

func (a *Automaton) AddState(s int) {
	a.states.Add(s)
}

func (a *Automaton) AddSymbol(r rune) {
	a.alphabet[r] = struct{}{}
}

func (a *Automaton) AddTransition(from int, r rune, to int) {
	a.AddState(from)
	a.AddState(to)
	a.AddSymbol(r)

	k := transKey{state: from, symbol: r}
	targets, ok := a.trans[k]
	if !ok {
		targets = intset.New()
		a.trans[k] = targets
	}
	targets.Add(to)
}

func (a *Automaton) AddInitial(s int) {
	a.AddState(s)
	a.initial.Add(s)
}

func (a *Automaton) AddFinal(s int) {
	a.AddState(s)
	a.final.Add(s)
}

// States returns a copy of the state set.
func (a *Automaton) States() *intset.Set {
	return a.states.Copy()
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return a.states.Len()
}

// Alphabet returns the symbols in increasing order.
func (a *Automaton) Alphabet() []rune {
	syms := maps.Keys(a.alphabet)
	slices.Sort(syms)
	return syms
}

func (a *Automaton) Initial() *intset.Set {
	return a.initial.Copy()
}

func (a *Automaton) Final() *intset.Set {
	return a.final.Copy()
}

func (a *Automaton) IsState(s int) bool {
	return a.states.Has(s)
}

func (a *Automaton) IsInitial(s int) bool {
	return a.initial.Has(s)
}

func (a *Automaton) IsFinal(s int) bool {
	return a.final.Has(s)
}

func (a *Automaton) HasSymbol(r rune) bool {
	_, ok := a.alphabet[r]
	return ok
}

func (a *Automaton) HasTransition(from int, r rune, to int) bool {
	targets, ok := a.trans[transKey{state: from, symbol: r}]
	return ok && targets.Has(to)
}

// Targets returns the states reached from s on r. The result is a fresh set.
func (a *Automaton) Targets(s int, r rune) *intset.Set {
	if targets, ok := a.trans[transKey{state: s, symbol: r}]; ok {
		return targets.Copy()
	}
	return intset.New()
}

// Transitions lists the relation ordered by source, symbol and target.
func (a *Automaton) Transitions() []Transition {
	keys := maps.Keys(a.trans)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].symbol < keys[j].symbol
	})

	var out []Transition
	for _, k := range keys {
		a.trans[k].Each(func(to int) {
			out = append(out, Transition{From: k.state, Symbol: k.symbol, To: to})
		})
	}
	return out
}

func (a *Automaton) NumTransitions() int {
	n := 0
	for _, targets := range a.trans {
		n += targets.Len()
	}
	return n
}

// MinState returns the smallest state, or -1 if there is none.
func (a *Automaton) MinState() int {
	return a.states.Min()
}

// MaxState returns the largest state, or -1 if there is none.
func (a *Automaton) MaxState() int {
	return a.states.Max()
}

// Delta returns the union of the targets of every state of from on r.
func (a *Automaton) Delta(from *intset.Set, r rune) *intset.Set {
	out := intset.New()
	from.Each(func(s int) {
		if targets, ok := a.trans[transKey{state: s, symbol: r}]; ok {
			out.AddAll(targets)
		}
	})
	return out
}

// DeltaStar runs word from the states of from.
func (a *Automaton) DeltaStar(from *intset.Set, word string) *intset.Set {
	cur := from.Copy()
	for _, r := range word {
		if cur.Empty() {
			break
		}
		cur = a.Delta(cur, r)
	}
	return cur
}

// Accepts reports whether word is in the language of a.
func (a *Automaton) Accepts(word string) bool {
	return a.DeltaStar(a.initial, word).Intersects(a.final)
}

func (a *Automaton) Copy() *Automaton {
	c := &Automaton{
		states:   a.states.Copy(),
		alphabet: maps.Clone(a.alphabet),
		trans:    make(map[transKey]*intset.Set, len(a.trans)),
		initial:  a.initial.Copy(),
		final:    a.final.Copy(),
	}
	for k, targets := range a.trans {
		c.trans[k] = targets.Copy()
	}
	return c
}

func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "states: %s\n", a.states)

	syms := make([]string, 0, len(a.alphabet))
	for _, r := range a.Alphabet() {
		syms = append(syms, string(r))
	}
	fmt.Fprintf(&sb, "alphabet: {%s}\n", strings.Join(syms, ", "))
	fmt.Fprintf(&sb, "initial: %s\n", a.initial)
	fmt.Fprintf(&sb, "final: %s\n", a.final)
	sb.WriteString("transitions:\n")
	for _, t := range a.Transitions() {
		fmt.Fprintf(&sb, "  %s\n", t)
	}
	return sb.String()
}
