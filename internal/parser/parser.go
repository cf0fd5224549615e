// Package parser reads rational expressions written with `+` for union,
// juxtaposition for concatenation, postfix `*`, parentheses, `ε` (or `#`) for
// the empty word and `∅` for the empty language. A backslash makes the next
// character a plain letter. Whitespace is ignored.
package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"glushkov/internal/regex"
)

type Expr struct {
	Terms []*Term `parser:"@@ ( '+' @@ )*"`
}

type Term struct {
	Factors []*Factor `parser:"@@+"`
}

type Factor struct {
	Atom  *Atom    `parser:"@@"`
	Stars []string `parser:"( @'*' )*"`
}

type Atom struct {
	Escaped *string `parser:"  @Escaped"`
	Letter  *string `parser:"| @Letter"`
	Epsilon bool    `parser:"| @Epsilon"`
	Empty   bool    `parser:"| @Empty"`
	Group   *Expr   `parser:"| '(' @@ ')'"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Escaped", Pattern: `\\(?s:.)`},
	{Name: "Epsilon", Pattern: `ε|#`},
	{Name: "Empty", Pattern: `∅`},
	{Name: "Punct", Pattern: `[+*()]`},
	{Name: "Letter", Pattern: `.`},
})

var parser = participle.MustBuild[Expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// ParseError is returned for malformed expressions. Offset is the byte offset
// in Input where parsing failed.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %v", e.Input, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads text into an unindexed tree. Union and concatenation associate
// to the left and the tree keeps the literal shape of the text, except that
// the empty language absorbs as it does in regex.Builder.
func Parse(text string) (*regex.Tree, error) {
	ast, err := parser.ParseString("", text)
	if err != nil {
		perr := &ParseError{Input: text, Offset: len(text), Err: err}
		var pe participle.Error
		if errors.As(err, &pe) {
			perr.Offset = pe.Position().Offset
		}
		return nil, perr
	}

	b := regex.NewBuilder()
	return b.Tree(ast.build(b)), nil
}

// MustParse is Parse for expressions known to be valid. It panics on error.
func MustParse(text string) *regex.Tree {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

func (e *Expr) build(b *regex.Builder) int {
	ref := e.Terms[0].build(b)
	for _, t := range e.Terms[1:] {
		r := t.build(b)
		switch {
		case ref == regex.None:
			ref = r
		case r != regex.None:
			ref = b.RawUnion(ref, r)
		}
	}
	return ref
}

func (t *Term) build(b *regex.Builder) int {
	ref := t.Factors[0].build(b)
	for _, f := range t.Factors[1:] {
		r := f.build(b)
		if ref == regex.None || r == regex.None {
			ref = regex.None
			continue
		}
		ref = b.RawConcat(ref, r)
	}
	return ref
}

func (f *Factor) build(b *regex.Builder) int {
	ref := f.Atom.build(b)
	for range f.Stars {
		if ref == regex.None {
			ref = b.Epsilon()
			continue
		}
		ref = b.RawStar(ref)
	}
	return ref
}

func (a *Atom) build(b *regex.Builder) int {
	switch {
	case a.Escaped != nil:
		r := []rune(*a.Escaped)
		return b.Letter(r[1])
	case a.Letter != nil:
		return b.Letter([]rune(*a.Letter)[0])
	case a.Epsilon:
		return b.Epsilon()
	case a.Empty:
		return regex.None
	case a.Group != nil:
		return a.Group.build(b)
	}
	panic("parser: empty atom")
}
