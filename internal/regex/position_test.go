package regex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glushkov/internal/parser"
	"glushkov/internal/regex"
)

func indexed(t *testing.T, expr string) *regex.Tree {
	tree, err := parser.Parse(expr)
	require.NoError(t, err, "parse %q", expr)
	tree.Prepare()
	return tree
}

// checkRanges verifies the position-range invariant below every node.
func checkRanges(t *testing.T, tree *regex.Tree) {
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		for _, c := range []int{n.Left, n.Right} {
			if c == regex.None {
				continue
			}
			child := tree.Node(c)
			if child.Kind == regex.Epsilon || child.PosMax < child.PosMin {
				// no letters below
				continue
			}
			assert.LessOrEqual(t, n.PosMin, child.PosMin, "node %d child %d", i, c)
			assert.LessOrEqual(t, child.PosMin, child.PosMax, "node %d child %d", i, c)
			assert.LessOrEqual(t, child.PosMax, n.PosMax, "node %d child %d", i, c)
		}
	}
}

func TestIndex(t *testing.T) {
	testCases := []struct {
		expr    string
		letters int
		symbols string
	}{
		{expr: "a", letters: 1, symbols: "a"},
		{expr: "ε", letters: 0, symbols: ""},
		{expr: "a(b+ε)*c", letters: 3, symbols: "abc"},
		{expr: "(a+b)*a(a+b)", letters: 5, symbols: "abaab"},
		{expr: "((ab)*(c+d*))*e", letters: 5, symbols: "abcde"},
	}

	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			assert := assert.New(t)
			tree, err := parser.Parse(tc.expr)
			require.NoError(t, err)

			assert.False(tree.IsIndexed())
			assert.Equal(-1, tree.Letters())

			assert.Equal(tc.letters+1, tree.Index())
			assert.Equal(tc.letters, tree.Letters())

			var got []rune
			for p := 1; p <= tree.Letters(); p++ {
				r, err := tree.SymbolAt(p)
				require.NoError(t, err)
				got = append(got, r)

				i, err := tree.LetterAt(p)
				require.NoError(t, err)
				assert.Equal(p, tree.Node(i).PosMin)
				assert.Equal(p, tree.Node(i).PosMax)
			}
			assert.Equal(tc.symbols, string(got))

			checkRanges(t, tree)

			// indexing again gives the same numbering
			assert.Equal(tc.letters+1, tree.Index())
		})
	}
}

func TestIndexRootRange(t *testing.T) {
	tree := indexed(t, "a(b+ε)*c")
	root := tree.Node(tree.Root())

	assert.Equal(t, 1, root.PosMin)
	assert.Equal(t, 3, root.PosMax)
}

func TestIndexEpsilonTakesCurrentCounter(t *testing.T) {
	tree := indexed(t, "εa")

	root := tree.Node(tree.Root())
	require.Equal(t, regex.Concat, root.Kind)

	eps := tree.Node(root.Left)
	assert.Equal(t, regex.Epsilon, eps.Kind)
	assert.Equal(t, 1, eps.PosMin)
	assert.Equal(t, 1, eps.PosMax)

	letter := tree.Node(root.Right)
	assert.Equal(t, 1, letter.PosMin)
}

func TestIndexDeepTree(t *testing.T) {
	b := regex.NewBuilder()
	ref := b.Letter('a')
	for i := 0; i < 20000; i++ {
		ref = b.RawConcat(ref, b.Letter('b'))
	}
	tree := b.Tree(ref)

	assert.Equal(t, 20002, tree.Index())
	tree.Link()

	follow, err := tree.Follow(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, follow.Elements())
}

func TestLink(t *testing.T) {
	tree, err := parser.Parse("ab")
	require.NoError(t, err)

	_, err = tree.Parent(0)
	assert.ErrorIs(t, err, regex.ErrNotLinked)

	tree.Link()
	root := tree.Root()
	p, err := tree.Parent(root)
	require.NoError(t, err)
	assert.Equal(t, regex.None, p)

	p, err = tree.Parent(tree.Left(root))
	require.NoError(t, err)
	assert.Equal(t, root, p)
}

func TestPositionErrors(t *testing.T) {
	tree, err := parser.Parse("ab")
	require.NoError(t, err)

	_, err = tree.SymbolAt(1)
	assert.ErrorIs(t, err, regex.ErrNotIndexed)
	assert.ErrorIs(t, err, regex.ErrUninitialized)

	tree.Index()
	_, err = tree.SymbolAt(3)
	assert.ErrorIs(t, err, regex.ErrNoPosition)
	assert.False(t, errors.Is(err, regex.ErrUninitialized))

	var ierr *regex.IndexError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 3, ierr.Pos)
}
