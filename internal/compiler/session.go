// Package compiler runs the semantic passes over the units of one
// compilation session.
package compiler

import (
	"github.com/google/uuid"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/collect"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/desugar"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/export"
	"github.com/funvibe/phsc/internal/mangle"
	"github.com/funvibe/phsc/internal/pipeline"
	"github.com/funvibe/phsc/internal/reducer"
	"github.com/funvibe/phsc/internal/source"
	"github.com/funvibe/phsc/internal/symbols"
	"github.com/funvibe/phsc/internal/validator"
)

// Session owns everything units compiled together share: the options,
// the diagnostic sink, the scope id source and the global scope. Units
// are compiled one at a time; a Session is not safe for concurrent use.
type Session struct {
	ID      uuid.UUID
	Options *config.Options
	Sink    *diagnostics.Sink
	IDs     *symbols.IDSource
	Global  *symbols.Scope
}

func NewSession(opts *config.Options, sink *diagnostics.Sink) *Session {
	if opts == nil {
		opts = config.Default()
	}
	if sink == nil {
		level, err := opts.Level()
		if err != nil {
			level = diagnostics.Info
		}
		sink = diagnostics.NewSink(level, opts.Bail)
	}
	ids := &symbols.IDSource{}
	s := &Session{
		ID:      uuid.New(),
		Options: opts,
		Sink:    sink,
		IDs:     ids,
		Global:  symbols.NewGlobalScope(ids),
	}
	s.runtime()
	return s
}

// runtime declares the helper every rewritten throw calls.
func (s *Session) runtime() {
	loc := source.Generated()
	mod, clash := s.Global.Fetch([]string{s.Options.RuntimeModule}, loc)
	if clash != nil {
		panic("compiler: runtime module name is taken in a fresh global scope")
	}
	helper := symbols.NewFn(s.Options.ThrowHelper, loc, symbols.FlagExtern|symbols.FlagPublic)
	mod.Add(s.Options.ThrowHelper, helper)
}

func (s *Session) pipeline() *pipeline.Pipeline {
	return pipeline.New(
		&desugar.Processor{},
		&collect.Processor{},
		&reducer.Processor{},
		&validator.Processor{},
		&mangle.Processor{},
		&export.Processor{},
	)
}

// Compile runs every pass over unit. The unit is valid when every
// reference resolved and no pass reported an error; Halted names the
// pass the pipeline stopped in front of, if any.
func (s *Session) Compile(unit *ast.Unit) *pipeline.PipelineContext {
	s.Sink.ResetAbort()
	s.Sink.Debugf(nil, "session %s: compiling %s", s.ID, unit.File)

	errs := s.Sink.Count(diagnostics.Error)
	ctx := pipeline.NewContext(unit, s.Options, s.Sink, s.IDs, s.Global)
	ctx = s.pipeline().Run(ctx)
	if ctx.Halted != "" || s.Sink.Count(diagnostics.Error) > errs {
		ctx.Valid = false
	}

	s.Sink.Debugf(nil, "session %s: %s done, valid=%t", s.ID, unit.File, ctx.Valid)
	return ctx
}

// CompileAll compiles units in order and reports whether all of them
// are valid. A failing unit does not stop the ones after it.
func (s *Session) CompileAll(units ...*ast.Unit) ([]*pipeline.PipelineContext, bool) {
	ok := true
	out := make([]*pipeline.PipelineContext, 0, len(units))
	for _, u := range units {
		ctx := s.Compile(u)
		ok = ok && ctx.Valid
		out = append(out, ctx)
	}
	return out, ok
}
