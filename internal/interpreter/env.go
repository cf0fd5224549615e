package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"glushkov/internal/automaton"
)

// Environment holds the named automata of a session.
type Environment struct {
	vars map[string]*automaton.Automaton
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*automaton.Automaton)}
}

func (e *Environment) Get(name string) (*automaton.Automaton, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Lookup is Get with an ErrUndefined error for unknown names.
func (e *Environment) Lookup(name string) (*automaton.Automaton, error) {
	v, ok := e.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	return v, nil
}

func (e *Environment) Set(name string, val *automaton.Automaton) {
	e.vars[name] = val
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := maps.Keys(e.vars)
	slices.Sort(names)
	return names
}

func (e *Environment) String() string {
	var parts []string
	for _, name := range e.Names() {
		a := e.vars[name]
		parts = append(parts, fmt.Sprintf("%s: %d states, %d transitions", name, a.Len(), a.NumTransitions()))
	}
	return strings.Join(parts, "\n")
}
