package pipeline

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/symbols"
)

// PipelineContext carries one unit through the passes.
type PipelineContext struct {
	Unit    *ast.Unit
	Options *config.Options
	Sink    *diagnostics.Sink
	IDs     *symbols.IDSource

	// Global is shared by every unit of the session; Scope is the unit's
	// root scope, created by collect.
	Global *symbols.Scope
	Scope  *symbols.Scope
	Info   *symbols.Info

	// Valid is the validator's verdict.
	Valid bool
	// Halted names the pass the pipeline stopped in front of, if any.
	Halted string
}

// Processor is one pass over a unit.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

func NewContext(unit *ast.Unit, opts *config.Options, sink *diagnostics.Sink, ids *symbols.IDSource, global *symbols.Scope) *PipelineContext {
	return &PipelineContext{
		Unit:    unit,
		Options: opts,
		Sink:    sink,
		IDs:     ids,
		Global:  global,
		Info:    symbols.NewInfo(),
	}
}

// File is the unit's file name, for messages.
func (ctx *PipelineContext) File() string {
	if ctx.Unit == nil {
		return "<no unit>"
	}
	return ctx.Unit.File
}
