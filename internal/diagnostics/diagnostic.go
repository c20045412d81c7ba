package diagnostics

import (
	"fmt"
	"strings"

	"github.com/funvibe/phsc/internal/source"
)

// Severity orders diagnostics from chatty to fatal.
type Severity int

const (
	Debug Severity = iota
	Verbose
	Info
	Warning
	Error
)

var severityNames = [...]string{"debug", "verbose", "info", "warning", "error"}

func (s Severity) String() string {
	if s < Debug || s > Error {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a level name (case-insensitive) to its Severity.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warn" {
		return Warning, nil
	}
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Debug, fmt.Errorf("unknown log level %q", name)
}

type ErrorCode string

const (
	// Collect
	ErrC001 ErrorCode = "C001" // duplicate import
	ErrC002 ErrorCode = "C002" // redefinition of a symbol
	ErrC003 ErrorCode = "C003" // module path collides with a symbol
	ErrC004 ErrorCode = "C004" // duplicate constructor/destructor
	ErrC005 ErrorCode = "C005" // unresolved super class
	ErrC006 ErrorCode = "C006" // unresolved or invalid trait
	ErrC007 ErrorCode = "C007" // unresolved or invalid interface

	// Reduce
	ErrR001 ErrorCode = "R001" // division by zero
	ErrR002 ErrorCode = "R002" // zero caused by implicit conversion

	// Validate
	ErrV001 ErrorCode = "V001" // unknown reference

	// Export
	ErrX001 ErrorCode = "X001" // conflicting global symbol
)

// Diagnostic is a single message attached to a source location.
type Diagnostic struct {
	Severity Severity
	Code     ErrorCode
	Loc      *source.Location
	Message  string
}

func NewError(code ErrorCode, loc *source.Location, msg string) *Diagnostic {
	return &Diagnostic{Severity: Error, Code: code, Loc: loc, Message: msg}
}

func NewWarning(code ErrorCode, loc *source.Location, msg string) *Diagnostic {
	return &Diagnostic{Severity: Warning, Code: code, Loc: loc, Message: msg}
}

func (d *Diagnostic) Error() string {
	return d.String()
}

func (d *Diagnostic) String() string {
	var sb strings.Builder
	if d.Loc != nil {
		sb.WriteString(d.Loc.String())
		sb.WriteString(": ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Code != "" {
		sb.WriteString(" [" + string(d.Code) + "]")
	}
	return sb.String()
}
