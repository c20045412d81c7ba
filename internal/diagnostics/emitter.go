package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ColorMode selects when the emitter colours its output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var severityStyles = map[Severity]*pterm.Style{
	Debug:   pterm.NewStyle(pterm.FgGray),
	Verbose: pterm.NewStyle(pterm.FgGray),
	Info:    pterm.NewStyle(pterm.FgCyan),
	Warning: pterm.NewStyle(pterm.FgYellow, pterm.Bold),
	Error:   pterm.NewStyle(pterm.FgRed, pterm.Bold),
}

// Emitter renders diagnostics as text, one per line.
type Emitter struct {
	w     io.Writer
	color bool
}

func NewEmitter(w io.Writer, mode ColorMode) *Emitter {
	return &Emitter{w: w, color: useColor(w, mode)}
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Emit writes one line: `file:line:col: severity: message [code]`.
func (e *Emitter) Emit(d *Diagnostic) {
	label := d.Severity.String()
	if e.color {
		label = severityStyles[d.Severity].Sprint(label)
	}
	msg := d.Message
	if d.Code != "" {
		msg += " [" + string(d.Code) + "]"
	}
	if d.Loc != nil {
		fmt.Fprintf(e.w, "%s: %s: %s\n", d.Loc, label, msg)
		return
	}
	fmt.Fprintf(e.w, "%s: %s\n", label, msg)
}

// EmitAll writes every diagnostic of the sink followed by the summary.
func (e *Emitter) EmitAll(s *Sink) {
	for _, d := range s.diags {
		e.Emit(d)
	}
	e.Summary(s)
}

func (e *Emitter) Summary(s *Sink) {
	fmt.Fprintln(e.w, summaryLine(s.Count(Error), s.Count(Warning)))
}

func summaryLine(errors, warnings int) string {
	switch {
	case errors > 0 && warnings > 0:
		return fmt.Sprintf("compilation failed with %s and %s",
			english.Plural(errors, "error", ""), english.Plural(warnings, "warning", ""))
	case errors > 0:
		return "compilation failed with " + english.Plural(errors, "error", "")
	case warnings > 0:
		return "compilation succeeded with " + english.Plural(warnings, "warning", "")
	}
	return "compilation succeeded"
}
