package reducer

import "github.com/funvibe/phsc/internal/pipeline"

// Processor folds initializers and counts symbol usage. It needs the
// scopes built by collect.
type Processor struct{}

func (p *Processor) Name() string { return "fold" }

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Unit == nil || ctx.Scope == nil {
		return ctx
	}
	NewFolder(ctx.Info, ctx.Sink).Fold(ctx.Unit)
	return ctx
}
