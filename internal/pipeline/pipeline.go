package pipeline

import (
	"fmt"
	"strings"
)

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run hands the context through every processor in order. The sink's
// abort flag is checked at each pass boundary; once it is raised no
// further processor runs.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Sink.Aborted() {
			ctx.Halted = name(processor)
			ctx.Sink.Debugf(nil, "pipeline halted before %s", ctx.Halted)
			break
		}
		ctx.Sink.Debugf(nil, "running %s on %s", name(processor), ctx.File())
		ctx = processor.Process(ctx)
	}
	return ctx
}

// name turns *collect.Processor into "collect".
func name(p Processor) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	t := strings.TrimPrefix(fmt.Sprintf("%T", p), "*")
	if pkg, _, ok := strings.Cut(t, "."); ok {
		return pkg
	}
	return t
}
