package interpreter

import (
	"io"
	"path/filepath"
)

// Context stores the environment and where results go.
type Context struct {
	Env *Environment
	Out io.Writer

	// Dir is the base of relative paths given to load and save. Empty means
	// the working directory.
	Dir string
}

func NewContext(out io.Writer) *Context {
	return &Context{Env: NewEnvironment(), Out: out}
}

// Path resolves a path written in a script.
func (c *Context) Path(p string) string {
	if c.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Run parses and executes a script in c.
func (c *Context) Run(script string) error {
	prog, err := Parse(script)
	if err != nil {
		return err
	}
	return prog.Exec(c)
}
