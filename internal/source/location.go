package source

import "fmt"

// GeneratedFile is the file name carried by locations of nodes the
// compiler synthesizes itself.
const GeneratedFile = "{generated code}"

// Location is a position in a source file. Lines and columns are
// 1-based; generated code sits at 0:0.
type Location struct {
	File   string
	Line   uint
	Column uint
}

func New(file string, line, column uint) *Location {
	return &Location{File: file, Line: line, Column: column}
}

// Generated returns a fresh location for synthesized nodes.
func Generated() *Location {
	return &Location{File: GeneratedFile}
}

func (l *Location) IsGenerated() bool {
	return l == nil || l.File == GeneratedFile
}

func (l *Location) String() string {
	if l == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
