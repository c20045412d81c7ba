package export

import "github.com/funvibe/phsc/internal/pipeline"

type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Scope == nil || ctx.Global == nil {
		return ctx
	}
	New(ctx.Global, ctx.Sink).Export(ctx.Scope)
	ctx.Sink.Debugf(nil, "exported %s", ctx.File())
	return ctx
}
