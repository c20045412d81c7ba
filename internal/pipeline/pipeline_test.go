package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/symbols"
)

type recorder struct {
	label string
	fail  bool
	seen  *[]string
}

func (r *recorder) Name() string { return r.label }

func (r *recorder) Process(ctx *PipelineContext) *PipelineContext {
	*r.seen = append(*r.seen, r.label)
	if r.fail {
		ctx.Sink.Errorf(diagnostics.ErrV001, nil, "%s failed", r.label)
	}
	return ctx
}

func newTestContext(bail bool) *PipelineContext {
	ids := &symbols.IDSource{}
	sink := diagnostics.NewSink(diagnostics.Debug, bail)
	return NewContext(&ast.Unit{File: "p.phs"}, config.Default(), sink, ids, symbols.NewGlobalScope(ids))
}

func TestRunStopsAtPassBoundary(t *testing.T) {
	var seen []string
	p := New(
		&recorder{label: "one", seen: &seen},
		&recorder{label: "two", fail: true, seen: &seen},
		&recorder{label: "three", seen: &seen},
	)
	ctx := p.Run(newTestContext(true))

	assert.Equal(t, []string{"one", "two"}, seen)
	assert.Equal(t, "three", ctx.Halted)
	assert.Len(t, ctx.Sink.Filter(diagnostics.Error), 1)
}

func TestRunWithoutBailRunsEverything(t *testing.T) {
	var seen []string
	p := New(
		&recorder{label: "one", fail: true, seen: &seen},
		&recorder{label: "two", fail: true, seen: &seen},
	)
	ctx := p.Run(newTestContext(false))

	assert.Equal(t, []string{"one", "two"}, seen)
	assert.Empty(t, ctx.Halted)
	assert.Len(t, ctx.Sink.Filter(diagnostics.Error), 2)
}

type anonymous struct{}

func (anonymous) Process(ctx *PipelineContext) *PipelineContext { return ctx }

func TestProcessorName(t *testing.T) {
	assert.Equal(t, "pipeline", name(&anonymous{}))
	assert.Equal(t, "x", name(&recorder{label: "x"}))
}
