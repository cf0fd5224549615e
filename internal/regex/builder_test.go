package regex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glushkov/internal/parser"
	"glushkov/internal/regex"
)

func TestBuilderSimplifies(t *testing.T) {
	assert := assert.New(t)
	b := regex.NewBuilder()

	a := b.Letter('a')
	eps := b.Epsilon()

	assert.Equal(a, b.Letter('a'), "letters are interned")
	assert.Equal(a, b.Union(regex.None, a))
	assert.Equal(a, b.Union(a, regex.None))
	assert.Equal(a, b.Union(a, a))
	assert.Equal(regex.None, b.Concat(a, regex.None))
	assert.Equal(regex.None, b.Concat(regex.None, a))
	assert.Equal(a, b.Concat(eps, a))
	assert.Equal(a, b.Concat(a, eps))
	assert.Equal(eps, b.Star(regex.None))
	assert.Equal(eps, b.Star(eps))

	star := b.Star(a)
	assert.Equal(star, b.Star(star))
	assert.Equal(regex.Star, b.Kind(star))

	assert.Equal("a*", b.String(star))
	assert.Equal("∅", b.String(regex.None))
}

func TestBuilderTreeUnsharesNodes(t *testing.T) {
	b := regex.NewBuilder()
	a := b.Letter('a')
	aa := b.RawConcat(a, a)

	tree := b.Tree(aa)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 3, tree.Index())
	assert.Equal(t, "aa", tree.String())
}

func TestBuilderImport(t *testing.T) {
	tree, err := parser.Parse("a(b+ε)*")
	require.NoError(t, err)

	b := regex.NewBuilder()
	ref := b.Import(tree)

	assert.Equal(t, tree.String(), b.String(ref))
	assert.True(t, b.Nullable(b.Star(ref)))
	assert.False(t, b.Nullable(ref))
}

func TestAlphabet(t *testing.T) {
	tree, err := parser.Parse("b(a+b)*c")
	require.NoError(t, err)

	assert.Equal(t, []rune{'b', 'a', 'c'}, tree.Alphabet())
}

func TestDeepTreeCopyImportAndPrint(t *testing.T) {
	const depth = 20000
	assert := assert.New(t)

	b := regex.NewBuilder()
	ref := b.Letter('a')
	for i := 0; i < depth; i++ {
		ref = b.RawConcat(ref, b.Letter('b'))
	}
	tree := b.Tree(ref)

	assert.Equal(2*depth+1, tree.Len())
	assert.Equal(0, tree.Root())
	assert.Equal("a"+strings.Repeat("b", depth), tree.String())
	assert.True(strings.HasPrefix(tree.Bracketed(), strings.Repeat("[", depth)+"a . b]"))

	other := regex.NewBuilder()
	assert.Equal(tree.String(), other.String(other.Import(tree)))

	stars := b.Letter('c')
	for i := 0; i < depth; i++ {
		stars = b.RawStar(stars)
	}
	assert.Equal("c"+strings.Repeat("*", depth), b.String(stars))
}
