// Package autfile reads and writes automata: TOML files for storage, Graphviz
// for pictures and plain-text transition tables.
package autfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"glushkov/internal/automaton"
)

// FormatName is the value of the format key every automaton file starts with.
const FormatName = "AUTOMATON"

var (
	ErrFormat       = errors.New("not an automaton file")
	ErrSymbol       = errors.New("symbol must be exactly one character")
	ErrNegative     = errors.New("states must be non-negative")
	ErrUnknownField = errors.New("unknown field")
)

type transition struct {
	From   int    `toml:"from"`
	Symbol string `toml:"symbol"`
	To     int    `toml:"to"`
}

type file struct {
	Format      string       `toml:"format"`
	Alphabet    []string     `toml:"alphabet"`
	States      []int        `toml:"states"`
	Initial     []int        `toml:"initial"`
	Final       []int        `toml:"final"`
	Transitions []transition `toml:"transition"`
}

// Decode reads an automaton in TOML form:
//
//	format = "AUTOMATON"
//	alphabet = ["a", "b"]
//	states = [0, 1]
//	initial = [0]
//	final = [1]
//
//	[[transition]]
//	from = 0
//	symbol = "a"
//	to = 1
//
// Only format is required. States and symbols used by transitions are added
// even if they are not listed.
func Decode(r io.Reader) (*automaton.Automaton, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
	}
	if strings.ToUpper(f.Format) != FormatName {
		return nil, fmt.Errorf("%w: format is %q, want %q", ErrFormat, f.Format, FormatName)
	}

	a := automaton.New()
	for _, sym := range f.Alphabet {
		r, err := symbol(sym)
		if err != nil {
			return nil, fmt.Errorf("alphabet: %w", err)
		}
		a.AddSymbol(r)
	}

	states := func(what string, list []int, add func(int)) error {
		for _, s := range list {
			if s < 0 {
				return fmt.Errorf("%s: %w: %d", what, ErrNegative, s)
			}
			add(s)
		}
		return nil
	}
	if err := states("states", f.States, a.AddState); err != nil {
		return nil, err
	}
	if err := states("initial", f.Initial, a.AddInitial); err != nil {
		return nil, err
	}
	if err := states("final", f.Final, a.AddFinal); err != nil {
		return nil, err
	}

	for i, t := range f.Transitions {
		r, err := symbol(t.Symbol)
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i+1, err)
		}
		if t.From < 0 || t.To < 0 {
			return nil, fmt.Errorf("transition %d: %w", i+1, ErrNegative)
		}
		a.AddTransition(t.From, r, t.To)
	}
	return a, nil
}

func symbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrSymbol, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Load reads the automaton file at path.
func Load(path string) (*automaton.Automaton, error) {
	path = filepath.Clean(path)
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%q: reading from disk: %w", path, err)
	}
	defer fh.Close()

	a, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return a, nil
}

// Encode writes a in the form read by Decode, with every list sorted.
func Encode(w io.Writer, a *automaton.Automaton) error {
	f := file{
		Format:  FormatName,
		States:  a.States().Elements(),
		Initial: a.Initial().Elements(),
		Final:   a.Final().Elements(),
	}
	for _, r := range a.Alphabet() {
		f.Alphabet = append(f.Alphabet, string(r))
	}
	for _, t := range a.Transitions() {
		f.Transitions = append(f.Transitions, transition{From: t.From, Symbol: string(t.Symbol), To: t.To})
	}
	return toml.NewEncoder(w).Encode(f)
}

// Save writes a to the file at path, replacing it.
func Save(path string, a *automaton.Automaton) error {
	path = filepath.Clean(path)
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}
	if err := Encode(fh, a); err != nil {
		fh.Close()
		return fmt.Errorf("%q: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}
	return nil
}
