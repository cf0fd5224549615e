/*
Glushkov builds finite automata from rational expressions and runs the
automaton algebra on them.

Usage:

	glushkov [flags] build EXPR
	glushkov [flags] det EXPR
	glushkov [flags] min EXPR
	glushkov [flags] arden EXPR
	glushkov [flags] match EXPR WORD...
	glushkov [flags] equiv EXPR1 EXPR2
	glushkov [flags] run SCRIPT
	glushkov [flags] repl

Expressions use `+` for union, juxtaposition for concatenation, postfix `*`,
parentheses, `ε` or `#` for the empty word and `∅` for the empty language. A
backslash turns the next character into a plain letter.

build prints the Glushkov automaton of EXPR, det its subset construction and
min its minimal DFA. arden solves the equation system of the automaton and
prints the resulting expression. match tells for each WORD whether EXPR
accepts it. equiv tells whether both expressions denote the same language.
run executes a script of statements such as

	let A = regex "(a+b)*a";
	let M = min A;
	equiv A M;

and repl reads the same statements interactively.

The flags are:

	-a, --automaton FILE
		Read the automaton from a TOML automaton file instead of building it
		from EXPR. Applies to build, det, min, arden and match; EXPR is then
		omitted.

	-f, --format FORMAT
		Print automata as text (default), dot, table or toml.

	-o, --output FILE
		Write the result to FILE instead of stdout.

	-c, --config FILE
		Read defaults from a TOML config file with the keys format, verbose
		and history. If not given, the value of environment variable
		GLUSHKOV_CONFIG is used, if set.

	-v, --verbose
		Log the size of each intermediate automaton to stderr.

	--version
		Give the current version and then exit.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"glushkov/internal/arden"
	"glushkov/internal/autfile"
	"glushkov/internal/automaton"
	"glushkov/internal/glushkov"
	"glushkov/internal/interpreter"
	"glushkov/internal/parser"
)

const Version = "0.3.0"

var (
	flagVersion   = pflag.Bool("version", false, "Give the current version and then exit.")
	flagAutomaton = pflag.StringP("automaton", "a", "", "Read the automaton from a TOML file instead of an expression.")
	flagFormat    = pflag.StringP("format", "f", "", "Print automata as text, dot, table or toml.")
	flagOutput    = pflag.StringP("output", "o", "", "Write the result to the given file.")
	flagConfig    = pflag.StringP("config", "c", "", "Read defaults from the given TOML config file.")
	flagVerbose   = pflag.BoolP("verbose", "v", false, "Log the size of intermediate automata.")
)

var errUsage = errors.New("bad usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("glushkov: ")

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("glushkov v%s\n", Version)
		return
	}

	cfgPath := os.Getenv(EnvConfig)
	if pflag.Lookup("config").Changed {
		cfgPath = *flagConfig
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if pflag.Lookup("format").Changed {
		cfg.Format = *flagFormat
	}
	if pflag.Lookup("verbose").Changed {
		cfg.Verbose = *flagVerbose
	}
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	out := io.Writer(os.Stdout)
	if *flagOutput != "" {
		fh, err := os.Create(*flagOutput)
		if err != nil {
			log.Fatal(err)
		}
		defer fh.Close()
		out = fh
	}

	c := &cli{
		cfg:           cfg,
		automatonFile: *flagAutomaton,
		out:           out,
		log:           log.Default(),
	}
	if err := c.run(pflag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			log.Printf("%v\nDo -h for help.", err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type cli struct {
	cfg           Config
	automatonFile string
	out           io.Writer
	log           *log.Logger
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "build", "det", "min":
		a, rest, err := c.source(args)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("%w: %s takes one expression", errUsage, cmd)
		}
		switch cmd {
		case "det":
			a = automaton.Determinize(a)
			c.trace("determinized", a)
		case "min":
			a = automaton.Minimize(a)
			c.trace("minimized", a)
		}
		return c.emit(a)
	case "arden":
		a, rest, err := c.source(args)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("%w: arden takes one expression", errUsage)
		}
		_, err = fmt.Fprintln(c.out, arden.ToRegex(a))
		return err
	case "match":
		a, words, err := c.source(args)
		if err != nil {
			return err
		}
		for _, w := range words {
			if _, err := fmt.Fprintf(c.out, "%q: %t\n", w, a.Accepts(w)); err != nil {
				return err
			}
		}
		return nil
	case "equiv":
		if len(args) != 2 {
			return fmt.Errorf("%w: equiv takes two expressions", errUsage)
		}
		a, err := c.build(args[0])
		if err != nil {
			return err
		}
		b, err := c.build(args[1])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, automaton.Equivalent(a, b))
		return err
	case "run":
		if len(args) != 1 {
			return fmt.Errorf("%w: run takes one script file", errUsage)
		}
		return c.script(args[0])
	case "repl":
		return c.repl()
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// source returns the automaton a command works on and the arguments left
// after it.
func (c *cli) source(args []string) (*automaton.Automaton, []string, error) {
	if c.automatonFile != "" {
		a, err := autfile.Load(c.automatonFile)
		if err != nil {
			return nil, nil, err
		}
		c.trace("loaded", a)
		return a, args, nil
	}
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: missing expression", errUsage)
	}
	a, err := c.build(args[0])
	return a, args[1:], err
}

func (c *cli) build(expr string) (*automaton.Automaton, error) {
	tree, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	a, err := glushkov.Build(tree)
	if err != nil {
		return nil, err
	}
	c.trace(fmt.Sprintf("built %s", tree), a)
	return a, nil
}

func (c *cli) trace(stage string, a *automaton.Automaton) {
	if c.cfg.Verbose {
		c.log.Printf("%s: %d states, %d transitions", stage, a.Len(), a.NumTransitions())
	}
}

func (c *cli) emit(a *automaton.Automaton) error {
	switch c.cfg.Format {
	case "dot":
		_, err := io.WriteString(c.out, autfile.Dot(a, "automaton"))
		return err
	case "table":
		return autfile.WriteTable(c.out, a)
	case "toml":
		return autfile.Encode(c.out, a)
	default:
		_, err := io.WriteString(c.out, a.String())
		return err
	}
}

func (c *cli) script(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ctx := interpreter.NewContext(c.out)
	ctx.Dir = filepath.Dir(path)
	if err := ctx.Run(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *cli) repl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: c.cfg.History,
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	ctx := interpreter.NewContext(rl.Stdout())
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "env":
			fmt.Fprintln(rl.Stdout(), ctx.Env)
			continue
		}
		if !strings.HasSuffix(line, ";") {
			line += ";"
		}
		if err := ctx.Run(line); err != nil {
			fmt.Fprintln(rl.Stderr(), err)
		}
	}
}
