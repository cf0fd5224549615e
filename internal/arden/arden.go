// Package arden turns an automaton back into a rational expression by
// solving its system of language equations with Arden's lemma.
//
// Row i of a System is the equation
//
//	X_i = c_i0 X_0 + ... + c_i(n-1) X_(n-1) + c_in
//
// where X_i is the language read from the i-th state, c_ij the expression of
// the letters going from it to the j-th state and c_in is ε for final states.
// No coefficient c_ij with j < n is ever nullable, which is what Arden's
// lemma needs for X = αX + β to have the unique solution α*β.
package arden

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"glushkov/internal/automaton"
	"glushkov/internal/regex"
)

// System is the equation system of an automaton. Cells are references into
// a shared regex.Builder; regex.None is the empty coefficient.
type System struct {
	b      *regex.Builder
	n      int
	states []int
	rows   [][]int
	init   int
}

// NewSystem writes one equation per state of a. Initial states come first,
// then the others, each group in increasing order.
func NewSystem(a *automaton.Automaton) *System {
	var order []int
	a.Initial().Each(func(s int) { order = append(order, s) })
	init := len(order)
	a.States().Each(func(s int) {
		if !a.IsInitial(s) {
			order = append(order, s)
		}
	})

	n := len(order)
	row := make(map[int]int, n)
	for i, s := range order {
		row[s] = i
	}

	sys := &System{
		b:      regex.NewBuilder(),
		n:      n,
		states: order,
		rows:   make([][]int, n),
		init:   init,
	}
	for i := range sys.rows {
		sys.rows[i] = make([]int, n+1)
		for j := range sys.rows[i] {
			sys.rows[i][j] = regex.None
		}
	}

	for _, t := range a.Transitions() {
		i, j := row[t.From], row[t.To]
		sys.rows[i][j] = sys.b.Union(sys.rows[i][j], sys.b.Letter(t.Symbol))
	}
	for i, s := range order {
		if a.IsFinal(s) {
			sys.rows[i][n] = sys.b.Epsilon()
		}
	}
	return sys
}

// Len returns the number of equations.
func (s *System) Len() int {
	return s.n
}

// State returns the automaton state behind variable X_i.
func (s *System) State(i int) int {
	return s.states[i]
}

// Coefficient returns cell (i, j) as a tree; j == Len() is the constant
// column.
func (s *System) Coefficient(i, j int) *regex.Tree {
	return s.b.Tree(s.rows[i][j])
}

// ArdenStep removes X_i from its own equation: X_i = αX_i + β becomes
// X_i = α*β.
func (s *System) ArdenStep(i int) {
	row := s.rows[i]
	alpha := row[i]
	if alpha == regex.None {
		return
	}
	star := s.b.Star(alpha)
	row[i] = regex.None
	for j := range row {
		if j != i {
			row[j] = s.b.Concat(star, row[j])
		}
	}
}

// Substitute replaces X_i in equation j by the right-hand side of equation i,
// after applying ArdenStep to i.
func (s *System) Substitute(j, i int) {
	if j == i {
		panic(fmt.Sprintf("arden: substitute X%d into itself", i))
	}
	s.ArdenStep(i)

	c := s.rows[j][i]
	if c == regex.None {
		return
	}
	s.rows[j][i] = regex.None
	for k, ref := range s.rows[i] {
		if k == i || ref == regex.None {
			continue
		}
		s.rows[j][k] = s.b.Union(s.rows[j][k], s.b.Concat(c, ref))
	}
}

// Solve eliminates X_(n-1) down to X_0, then substitutes back so that every
// equation ends up with a constant right-hand side.
func (s *System) Solve() {
	for i := s.n - 1; i >= 0; i-- {
		s.ArdenStep(i)
		for j := 0; j < i; j++ {
			s.Substitute(j, i)
		}
	}
	for i := 1; i < s.n; i++ {
		for k := 0; k < i; k++ {
			s.Substitute(i, k)
		}
	}
}

// Solution returns the constant right-hand side of equation i, which is the
// language of state State(i) once the system is solved.
func (s *System) Solution(i int) *regex.Tree {
	return s.b.Tree(s.rows[i][s.n])
}

// Regex returns the union of the solutions of the initial states.
func (s *System) Regex() *regex.Tree {
	ref := regex.None
	for i := 0; i < s.init; i++ {
		ref = s.b.Union(ref, s.rows[i][s.n])
	}
	return s.b.Tree(ref)
}

// ToRegex returns an expression for the language of a. An automaton without
// initial state gives the empty language.
func ToRegex(a *automaton.Automaton) *regex.Tree {
	sys := NewSystem(a)
	sys.Solve()
	return sys.Regex()
}

func (s *System) term(ref int) string {
	text := s.b.String(ref)
	if s.b.Kind(ref) == regex.Union {
		return "(" + text + ")"
	}
	return text
}

func (s *System) String() string {
	var sb strings.Builder
	for i, row := range s.rows {
		var terms []string
		for j := 0; j < s.n; j++ {
			if row[j] != regex.None {
				terms = append(terms, fmt.Sprintf("%s X%d", s.term(row[j]), j))
			}
		}
		if row[s.n] != regex.None {
			terms = append(terms, s.b.String(row[s.n]))
		}
		if len(terms) == 0 {
			terms = append(terms, regex.EmptyText)
		}
		fmt.Fprintf(&sb, "X%d = %s\n", i, strings.Join(terms, " + "))
	}
	return sb.String()
}

// Table renders the coefficient matrix, one row per equation and one column
// per variable plus the constant column. The header is an ordinary first row
// so that its cells keep their case.
func (s *System) Table() string {
	header := []string{"", "state"}
	for j := 0; j < s.n; j++ {
		header = append(header, fmt.Sprintf("X%d", j))
	}
	header = append(header, regex.EpsilonText)

	data := [][]string{header}
	for i, row := range s.rows {
		line := []string{fmt.Sprintf("X%d", i), fmt.Sprint(s.states[i])}
		for _, ref := range row {
			cell := ""
			if ref != regex.None {
				cell = s.b.String(ref)
			}
			line = append(line, cell)
		}
		data = append(data, line)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Uses returns the equations whose right-hand side mentions X_i.
func (s *System) Uses(i int) []int {
	var out []int
	for j := range s.rows {
		if s.rows[j][i] != regex.None {
			out = append(out, j)
		}
	}
	return out
}
