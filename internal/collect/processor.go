package collect

import "github.com/funvibe/phsc/internal/pipeline"

type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil {
		return ctx
	}
	ctx.Scope = New(ctx.Global, ctx.IDs, ctx.Info, ctx.Sink, ctx.Options).Collect(ctx.Unit)
	ctx.Sink.Debugf(nil, "collected %d scopes in %s", len(ctx.Info.Scopes), ctx.File())
	return ctx
}
