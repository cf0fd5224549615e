package interpreter

import (
	"fmt"

	"glushkov/internal/arden"
	"glushkov/internal/automaton"
)

func (c *Context) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.Out, format, args...)
	return err
}

// show prints a with a one-line summary in front.
func (c *Context) show(name string, a *automaton.Automaton) error {
	kind := "non-deterministic"
	if automaton.IsDeterministic(a) {
		kind = "deterministic"
	}
	if err := c.printf("%s: %d states, %d transitions, %s\n", name, a.Len(), a.NumTransitions(), kind); err != nil {
		return err
	}
	return c.printf("%s", a)
}

func (c *Context) witness(name string, a *automaton.Automaton) error {
	word, ok := automaton.ShortestWord(a)
	if !ok {
		return c.printf("%s accepts no word\n", name)
	}
	return c.printf("%s accepts %q\n", name, word)
}

// system prints the equations of a before and after solving.
func (c *Context) system(a *automaton.Automaton) error {
	sys := arden.NewSystem(a)
	if err := c.printf("%s\n%s", sys.Table(), sys); err != nil {
		return err
	}
	sys.Solve()
	return c.printf("solved:\n%s", sys)
}
