package validator

import "github.com/funvibe/phsc/internal/pipeline"

type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil || ctx.Scope == nil {
		return ctx
	}
	ctx.Valid = New(ctx.Info, ctx.Sink).Validate(ctx.Unit)
	if !ctx.Valid {
		ctx.Sink.Debugf(nil, "%s has unknown references", ctx.File())
	}
	return ctx
}
