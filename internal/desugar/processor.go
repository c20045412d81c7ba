package desugar

import "github.com/funvibe/phsc/internal/pipeline"

type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil {
		return ctx
	}
	New(ctx.Options.RuntimeModule, ctx.Options.ThrowHelper).Desugar(ctx.Unit)
	return ctx
}
