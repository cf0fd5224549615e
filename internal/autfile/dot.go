package autfile

import (
	"fmt"
	"strings"

	"glushkov/internal/automaton"
)

// Dot renders a in Graphviz format, left to right. Final states are double
// circles and every initial state gets an arrow from an invisible point.
// Parallel transitions between two states share one edge whose label lists
// their symbols.
func Dot(a *automaton.Automaton, title string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %q {\n", title)
	sb.WriteString("    rankdir=LR;\n")

	a.States().Each(func(s int) {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "    q%d [shape=%s, label=\"%d\"];\n", s, shape, s)
	})

	a.Initial().Each(func(s int) {
		fmt.Fprintf(&sb, "    _start%d [shape=point]; _start%d -> q%d;\n", s, s, s)
	})

	type edge struct{ from, to int }
	var order []edge
	labels := map[edge][]string{}
	for _, t := range a.Transitions() {
		e := edge{from: t.From, to: t.To}
		if _, ok := labels[e]; !ok {
			order = append(order, e)
		}
		labels[e] = append(labels[e], string(t.Symbol))
	}
	for _, e := range order {
		fmt.Fprintf(&sb, "    q%d -> q%d [label=%q];\n", e.from, e.to, strings.Join(labels[e], ","))
	}

	sb.WriteString("}\n")
	return sb.String()
}
