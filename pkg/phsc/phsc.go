// Package phsc is the embedding API of the compiler core. It loads the
// project options, streams diagnostics as they are reported and compiles
// parsed units against one shared global scope.
package phsc

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/compiler"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
)

type (
	Unit       = ast.Unit
	Options    = config.Options
	Diagnostic = diagnostics.Diagnostic
)

// Compiler wraps one compilation session.
type Compiler struct {
	session *compiler.Session
	emitter *diagnostics.Emitter
}

// Load builds a compiler from the options file governing dir, or from
// the defaults when dir and its parents have none.
func Load(dir string, w io.Writer) (*Compiler, error) {
	path, err := config.FindOptions(dir)
	if err != nil {
		return nil, err
	}
	opts := config.Default()
	if path != "" {
		if opts, err = config.LoadOptions(path); err != nil {
			return nil, err
		}
	}
	return New(opts, w)
}

// New builds a compiler from opts. Diagnostics are written to w as they
// are reported; a nil w means standard error.
func New(opts *Options, w io.Writer) (*Compiler, error) {
	if opts == nil {
		opts = config.Default()
	}
	level, err := opts.Level()
	if err != nil {
		return nil, fmt.Errorf("phsc: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	emitter := diagnostics.NewEmitter(w, diagnostics.ColorMode(opts.Color))
	sink := diagnostics.NewSink(level, opts.Bail).WithEmitter(emitter)
	return &Compiler{session: compiler.NewSession(opts, sink), emitter: emitter}, nil
}

// Compile analyses one unit and reports whether it is valid.
func (c *Compiler) Compile(unit *Unit) bool {
	return c.session.Compile(unit).Valid
}

// CompileAll analyses units in order and closes the output with a
// summary line.
func (c *Compiler) CompileAll(units ...*Unit) bool {
	_, ok := c.session.CompileAll(units...)
	c.emitter.Summary(c.session.Sink)
	return ok
}

// Diagnostics returns everything reported so far.
func (c *Compiler) Diagnostics() []*Diagnostic {
	return c.session.Sink.Diagnostics()
}

// ID identifies the session in debug output.
func (c *Compiler) ID() string {
	return c.session.ID.String()
}
