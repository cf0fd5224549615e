package arden_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glushkov/internal/arden"
	"glushkov/internal/automaton"
	"glushkov/internal/glushkov"
	"glushkov/internal/parser"
	"glushkov/internal/regex"
)

func buildExpr(t *testing.T, expr string) *automaton.Automaton {
	t.Helper()
	tree, err := parser.Parse(expr)
	require.NoError(t, err)
	a, err := glushkov.Build(tree)
	require.NoError(t, err)
	return a
}

func TestRoundTrip(t *testing.T) {
	for _, expr := range []string{
		"a",
		"a+b",
		"ab*",
		"(a+b)*a",
		"ε",
		"a*",
		"(ab+a)*b",
		"a(b+c)*d",
		"(a*b*)*c",
		"((ab)*+c)*b",
	} {
		t.Run(expr, func(t *testing.T) {
			a := buildExpr(t, expr)
			solved := arden.ToRegex(a)

			text := solved.String()
			back := buildExpr(t, text)
			assert.True(t, automaton.Equivalent(a, back), "%q came back as %q", expr, text)
		})
	}
}

func TestNewSystem(t *testing.T) {
	sys := arden.NewSystem(buildExpr(t, "ab*"))

	assert.Equal(t, 3, sys.Len())
	assert.Equal(t, "X0 = a X1\nX1 = b X2 + ε\nX2 = b X2 + ε\n", sys.String())
}

func TestNewSystemOrdersInitialStatesFirst(t *testing.T) {
	a := automaton.New()
	a.AddTransition(0, 'a', 1)
	a.AddTransition(1, 'b', 2)
	a.AddInitial(2)
	a.AddFinal(1)

	sys := arden.NewSystem(a)
	assert.Equal(t, 2, sys.State(0))
	assert.Equal(t, 0, sys.State(1))
	assert.Equal(t, 1, sys.State(2))
}

func TestSolveKeepsLanguages(t *testing.T) {
	sys := arden.NewSystem(buildExpr(t, "ab*"))
	sys.Solve()

	for i := 0; i < sys.Len(); i++ {
		for j := 0; j < sys.Len(); j++ {
			assert.True(t, sys.Coefficient(i, j).Empty(), "X%d still uses X%d", i, j)
		}
	}
	assert.Equal(t, "a(ε+bb*)", sys.Solution(0).String())
	assert.Equal(t, "b*", sys.Solution(2).String())
	assert.True(t, regex.Match(sys.Solution(1), "bbb"))
	assert.False(t, regex.Match(sys.Solution(1), "a"))
}

func TestArdenStep(t *testing.T) {
	a := automaton.New()
	a.AddInitial(0)
	a.AddTransition(0, 'a', 0)
	a.AddTransition(0, 'b', 1)
	a.AddFinal(1)

	sys := arden.NewSystem(a)
	sys.ArdenStep(0)

	assert.True(t, sys.Coefficient(0, 0).Empty())
	assert.Equal(t, "a*b", sys.Coefficient(0, 1).String())
	assert.Equal(t, []int{0}, sys.Uses(1))

	// a second step is a no-op
	sys.ArdenStep(0)
	assert.Equal(t, "a*b", sys.Coefficient(0, 1).String())
}

func TestSubstitute(t *testing.T) {
	sys := arden.NewSystem(buildExpr(t, "ab*"))

	sys.Substitute(1, 2)
	assert.Equal(t, "X0 = a X1\nX1 = ε+bb*\nX2 = b*\n", sys.String())
	assert.Empty(t, sys.Uses(2))

	assert.Panics(t, func() { sys.Substitute(1, 1) })
}

func TestToRegexSeveralInitialStates(t *testing.T) {
	a := automaton.New()
	a.AddInitial(0)
	a.AddInitial(1)
	a.AddTransition(0, 'a', 2)
	a.AddTransition(1, 'b', 2)
	a.AddFinal(2)

	got := arden.ToRegex(a)
	assert.True(t, automaton.Equivalent(a, buildExpr(t, got.String())), "got %q", got)
	assert.True(t, regex.Match(got, "a"))
	assert.True(t, regex.Match(got, "b"))
}

func TestToRegexEmptyLanguage(t *testing.T) {
	assert.True(t, arden.ToRegex(automaton.New()).Empty())

	a := automaton.New()
	a.AddInitial(0)
	a.AddTransition(0, 'a', 1)
	assert.Equal(t, "∅", arden.ToRegex(a).String())
}

func TestTable(t *testing.T) {
	table := arden.NewSystem(buildExpr(t, "ab")).Table()

	var header []string
	for _, line := range strings.Split(table, "\n") {
		if strings.Contains(line, "state") {
			for _, cell := range strings.Fields(line) {
				if cell = strings.Trim(cell, "|"); cell != "" {
					header = append(header, cell)
				}
			}
			break
		}
	}
	assert.Equal(t, []string{"state", "X0", "X1", "X2", regex.EpsilonText}, header)
	assert.NotContains(t, table, "STATE")
	assert.NotContains(t, table, "Ε", "epsilon must keep its case")
}
