package interpreter

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"glushkov/internal/arden"
	"glushkov/internal/autfile"
	"glushkov/internal/automaton"
	"glushkov/internal/glushkov"
	"glushkov/internal/parser"
)

var ErrUndefined = errors.New("undefined automaton")

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Let     *Let     `parser:"  @@ ';'"`
	Command *Command `parser:"| @@ ';'"`
}

type Let struct {
	Name string `parser:"'let' @Ident '='"`
	Expr *Expr  `parser:"@@"`
}

type Expr struct {
	Regex *string `parser:"  'regex' @String"`
	Load  *string `parser:"| 'load' @String"`
	Unary *Unary  `parser:"| @@"`
	Inter *Inter  `parser:"| @@"`
	Ref   *string `parser:"| @Ident"`
}

type Unary struct {
	Op  string `parser:"@('det'|'min'|'mirror'|'access')"`
	Arg string `parser:"@Ident"`
}

type Inter struct {
	Left  string `parser:"'inter' @Ident"`
	Right string `parser:"@Ident"`
}

type Command struct {
	Op    string  `parser:"@('show'|'dot'|'table'|'equiv'|'arden'|'accepts'|'witness'|'system'|'save')"`
	Name  string  `parser:"@Ident"`
	Other *string `parser:"@Ident?"`
	Text  *string `parser:"@String?"`
}

var programParser = participle.MustBuild[Program](
	participle.Unquote("String"),
)

func Parse(data string) (*Program, error) {
	return programParser.ParseString("input", data)
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	var err error
	switch {
	case s.Let != nil:
		var a *automaton.Automaton
		a, err = s.Let.Expr.Eval(ctx)
		if err == nil {
			ctx.Env.Set(s.Let.Name, a)
		}
	case s.Command != nil:
		err = s.Command.Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", s.Pos.Line, err)
	}
	return nil
}

func (e *Expr) Eval(ctx *Context) (*automaton.Automaton, error) {
	switch {
	case e.Regex != nil:
		tree, err := parser.Parse(*e.Regex)
		if err != nil {
			return nil, err
		}
		return glushkov.Build(tree)
	case e.Load != nil:
		return autfile.Load(ctx.Path(*e.Load))
	case e.Unary != nil:
		a, err := ctx.Env.Lookup(e.Unary.Arg)
		if err != nil {
			return nil, err
		}
		switch e.Unary.Op {
		case "det":
			return automaton.Determinize(a), nil
		case "min":
			return automaton.Minimize(a), nil
		case "mirror":
			return automaton.Mirror(a), nil
		case "access":
			return automaton.Accessible(a), nil
		}
	case e.Inter != nil:
		a, err := ctx.Env.Lookup(e.Inter.Left)
		if err != nil {
			return nil, err
		}
		b, err := ctx.Env.Lookup(e.Inter.Right)
		if err != nil {
			return nil, err
		}
		return automaton.Intersect(a, b), nil
	case e.Ref != nil:
		a, err := ctx.Env.Lookup(*e.Ref)
		if err != nil {
			return nil, err
		}
		return a.Copy(), nil
	}
	return nil, fmt.Errorf("invalid expression")
}

// arity checks the optional parts of a command.
func (c *Command) arity(other, text bool) error {
	if (c.Other != nil) != other {
		if other {
			return fmt.Errorf("%s needs a second automaton", c.Op)
		}
		return fmt.Errorf("%s takes one automaton", c.Op)
	}
	if (c.Text != nil) != text {
		if text {
			return fmt.Errorf("%s needs a quoted argument", c.Op)
		}
		return fmt.Errorf("%s takes no quoted argument", c.Op)
	}
	return nil
}

func (c *Command) Exec(ctx *Context) error {
	var err error
	switch c.Op {
	case "equiv":
		err = c.arity(true, false)
	case "accepts", "save":
		err = c.arity(false, true)
	default:
		err = c.arity(false, false)
	}
	if err != nil {
		return err
	}

	a, err := ctx.Env.Lookup(c.Name)
	if err != nil {
		return err
	}

	switch c.Op {
	case "show":
		return ctx.show(c.Name, a)
	case "dot":
		return ctx.printf("%s", autfile.Dot(a, c.Name))
	case "table":
		return autfile.WriteTable(ctx.Out, a)
	case "equiv":
		b, err := ctx.Env.Lookup(*c.Other)
		if err != nil {
			return err
		}
		return ctx.printf("%s == %s: %t\n", c.Name, *c.Other, automaton.Equivalent(a, b))
	case "arden":
		return ctx.printf("%s\n", arden.ToRegex(a))
	case "accepts":
		return ctx.printf("%s accepts %q: %t\n", c.Name, *c.Text, a.Accepts(*c.Text))
	case "witness":
		return ctx.witness(c.Name, a)
	case "system":
		return ctx.system(a)
	case "save":
		return autfile.Save(ctx.Path(*c.Text), a)
	}
	return fmt.Errorf("unknown command %q", c.Op)
}
