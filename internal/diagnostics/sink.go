package diagnostics

import (
	"fmt"

	"github.com/funvibe/phsc/internal/source"
)

// Sink collects the diagnostics of one compilation session in the order
// they were reported. It is the only place that decides whether the
// pipeline has to stop: with bail enabled the first error raises the
// abort flag, which the pipeline checks between passes.
type Sink struct {
	level   Severity
	bail    bool
	aborted bool
	diags   []*Diagnostic
	counts  [Error + 1]int
	emitter *Emitter
}

func NewSink(level Severity, bail bool) *Sink {
	return &Sink{level: level, bail: bail}
}

// WithEmitter streams every accepted diagnostic to e as it is reported.
func (s *Sink) WithEmitter(e *Emitter) *Sink {
	s.emitter = e
	return s
}

func (s *Sink) Report(d *Diagnostic) {
	if d.Severity < s.level {
		return
	}
	s.diags = append(s.diags, d)
	s.counts[d.Severity]++
	if d.Severity == Error && s.bail {
		s.aborted = true
	}
	if s.emitter != nil {
		s.emitter.Emit(d)
	}
}

func (s *Sink) Errorf(code ErrorCode, loc *source.Location, format string, args ...any) {
	s.Report(NewError(code, loc, fmt.Sprintf(format, args...)))
}

func (s *Sink) Warnf(code ErrorCode, loc *source.Location, format string, args ...any) {
	s.Report(NewWarning(code, loc, fmt.Sprintf(format, args...)))
}

func (s *Sink) Infof(loc *source.Location, format string, args ...any) {
	s.Report(&Diagnostic{Severity: Info, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

func (s *Sink) Verbosef(loc *source.Location, format string, args ...any) {
	if Verbose < s.level {
		return
	}
	s.Report(&Diagnostic{Severity: Verbose, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

func (s *Sink) Debugf(loc *source.Location, format string, args ...any) {
	if Debug < s.level {
		return
	}
	s.Report(&Diagnostic{Severity: Debug, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// Aborted reports whether an error was seen while bailing is enabled.
func (s *Sink) Aborted() bool {
	return s.aborted
}

// ResetAbort clears the abort flag; the flag is scoped to one unit.
func (s *Sink) ResetAbort() {
	s.aborted = false
}

func (s *Sink) HasErrors() bool {
	return s.counts[Error] > 0
}

func (s *Sink) Count(sev Severity) int {
	if sev < Debug || sev > Error {
		return 0
	}
	return s.counts[sev]
}

// Diagnostics returns everything reported so far, in report order.
func (s *Sink) Diagnostics() []*Diagnostic {
	out := make([]*Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// Filter returns the reported diagnostics with the given severity.
func (s *Sink) Filter(sev Severity) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
