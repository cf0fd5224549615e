package autfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glushkov/internal/autfile"
	"glushkov/internal/automaton"
)

func sample() *automaton.Automaton {
	a := automaton.New()
	a.AddInitial(0)
	a.AddTransition(0, 'a', 0)
	a.AddTransition(0, 'b', 0)
	a.AddTransition(0, 'a', 1)
	a.AddFinal(1)
	a.AddState(4)
	return a
}

func TestDecode(t *testing.T) {
	input := `
format = "automaton"
alphabet = ["a", "b", "λ"]
states = [0, 1, 2]
initial = [0]
final = [2]

[[transition]]
from = 0
symbol = "a"
to = 1

[[transition]]
from = 1
symbol = "λ"
to = 2
`
	a, err := autfile.Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []rune{'a', 'b', 'λ'}, a.Alphabet())
	assert.Equal(t, []int{0, 1, 2}, a.States().Elements())
	assert.True(t, a.Accepts("aλ"))
	assert.False(t, a.Accepts("a"))
}

func TestDecodeAddsMissingStates(t *testing.T) {
	input := `
format = "AUTOMATON"
initial = [0]
final = [3]

[[transition]]
from = 0
symbol = "x"
to = 3
`
	a, err := autfile.Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3}, a.States().Elements())
	assert.Equal(t, []rune{'x'}, a.Alphabet())
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect error
	}{
		{name: "missing format", input: `states = [0]`, expect: autfile.ErrFormat},
		{name: "wrong format", input: `format = "TUNA"`, expect: autfile.ErrFormat},
		{name: "long symbol", input: "format = \"AUTOMATON\"\nalphabet = [\"ab\"]", expect: autfile.ErrSymbol},
		{name: "empty symbol", input: "format = \"AUTOMATON\"\n[[transition]]\nfrom = 0\nsymbol = \"\"\nto = 1", expect: autfile.ErrSymbol},
		{name: "negative state", input: "format = \"AUTOMATON\"\nfinal = [-1]", expect: autfile.ErrNegative},
		{name: "negative target", input: "format = \"AUTOMATON\"\n[[transition]]\nfrom = 0\nsymbol = \"a\"\nto = -2", expect: autfile.ErrNegative},
		{name: "unknown key", input: "format = \"AUTOMATON\"\nstart = 0", expect: autfile.ErrUnknownField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := autfile.Decode(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.expect)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := autfile.Decode(strings.NewReader("format = "))
	assert.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, autfile.Encode(&buf, sample()))
	assert.Contains(t, buf.String(), `format = "AUTOMATON"`)
	assert.Contains(t, buf.String(), "[[transition]]")

	back, err := autfile.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, automaton.Equal(sample(), back))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.toml")
	require.NoError(t, autfile.Save(path, sample()))

	back, err := autfile.Load(path)
	require.NoError(t, err)
	assert.True(t, automaton.Equal(sample(), back))

	_, err = autfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	dot := autfile.Dot(sample(), "sample")

	assert.True(t, strings.HasPrefix(dot, `digraph "sample" {`))
	assert.Contains(t, dot, "q1 [shape=doublecircle")
	assert.Contains(t, dot, "q4 [shape=circle")
	assert.Contains(t, dot, "_start0 -> q0;")
	assert.Contains(t, dot, `q0 -> q0 [label="a,b"];`)
	assert.Contains(t, dot, `q0 -> q1 [label="a"];`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, autfile.WriteTable(&buf, sample()))

	out := buf.String()
	assert.Contains(t, out, autfile.InitialMark)
	assert.Contains(t, out, autfile.FinalMark)
	assert.Contains(t, out, "{0, 1}")
	assert.Contains(t, out, "4")
}
