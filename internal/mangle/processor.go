package mangle

import "github.com/funvibe/phsc/internal/pipeline"

type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil || ctx.Scope == nil {
		return ctx
	}
	New(ctx.Info, ctx.Options).Mangle(ctx.Unit)
	return ctx
}
