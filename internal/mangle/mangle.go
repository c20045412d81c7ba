// Package mangle rewrites declared names into collision-free identifiers
// of the output language.
//
// A mangled name is
//
//	_<part>N<part>...Z<len><name>
//
// where each part is a flag followed by its payload:
//
//	L<scope id>      local variable, nested or literal function
//	M<module path>   variable declared directly in a module
//	U<file crc32>    private symbol at the top of a unit
//
// Names that are reserved words of the output language get a trailing
// underscore after that.
package mangle

import (
	"hash/crc32"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/symbols"
)

var reservedWords = []string{
	"__halt_compiler", "abstract", "and", "array", "as",
	"break", "callable", "case", "catch", "class",
	"clone", "const", "continue", "declare", "default",
	"die", "do", "echo", "else", "elseif", "empty",
	"enddeclare", "endfor", "endforeach", "endif",
	"endswitch", "endwhile", "eval", "exit", "extends",
	"final", "finally", "for", "foreach", "function",
	"global", "goto", "if", "implements", "include",
	"include_once", "instanceof", "insteadof", "interface",
	"isset", "list", "namespace", "new", "or", "print",
	"private", "protected", "public", "require", "require_once",
	"return", "static", "switch", "throw", "trait", "try",
	"unset", "use", "var", "while", "xor", "yield",
	"__class__", "__dir__", "__file__", "__function__",
	"__line__", "__method__", "__namespace__", "__trait__",
}

// Mangler renames every symbol of a unit once. nest counts the function,
// block and loop levels around the current scope and imod the modules.
type Mangler struct {
	ast.Walker

	info     *symbols.Info
	fold     cases.Caser
	reserved map[string]bool

	nest int
	imod int
	mod  *symbols.Scope
}

func New(info *symbols.Info, opts *config.Options) *Mangler {
	m := &Mangler{
		info:     info,
		fold:     cases.Fold(),
		reserved: make(map[string]bool, len(reservedWords)),
	}
	m.Walker = ast.Walker{Self: m}
	for _, w := range reservedWords {
		m.reserved[w] = true
	}
	if opts != nil {
		for _, w := range opts.ReservedWords {
			m.reserved[m.fold.String(w)] = true
		}
	}
	return m
}

func (m *Mangler) Mangle(unit *ast.Unit) {
	unit.Accept(m)
}

// Reserved reports whether name collides with a reserved word, ignoring
// case.
func (m *Mangler) Reserved(name string) bool {
	return m.reserved[m.fold.String(name)]
}

// Escape appends the escape marker to reserved words.
func (m *Mangler) Escape(name string) string {
	if m.Reserved(name) {
		return name + config.MangleEscape
	}
	return name
}

// Symbol mangles sym for the current position. Symbols already mangled,
// temporaries and unsafe symbols keep their names.
func (m *Mangler) Symbol(sym symbols.Symbol) {
	b := sym.Common()
	if b.Mangled() {
		return
	}
	b.MarkMangled()
	if strings.HasPrefix(b.Name, config.TempMarker) || b.Flags.Has(symbols.FlagUnsafe) {
		return
	}
	if b.Flags.Has(symbols.FlagExtern) || sym.Kind() == symbols.KindModule {
		b.Name = m.escape(b.Name, b.Raw)
		return
	}

	var parts []string
	switch s := sym.(type) {
	case *symbols.VarSymbol:
		if s.Flags.Has(symbols.FlagConst) && s.Value.Known() && m.nest == 0 {
			break
		}
		if m.imod > 0 && m.nest == 0 && m.mod != nil {
			parts = append(parts, config.ModuleFlag+pathUID(m.mod.Path()))
		} else {
			parts = append(parts, local(b))
		}
	case *symbols.FnSymbol:
		if s.Expr || m.nest > 0 {
			parts = append(parts, local(b))
		}
	}
	if m.imod == 0 && m.nest == 0 && b.Flags.Has(symbols.FlagPrivate) {
		parts = append(parts, config.PrivateFlag+fileUID(b))
	}

	name := b.Name
	if len(parts) > 0 {
		name = config.ManglePrefix + strings.Join(parts, config.MangleSeparator) +
			config.MangleTerminal + strconv.Itoa(len(name)) + name
	}
	b.Name = m.escape(name, b.Raw)
}

// escape checks the declared name, so a prefixed name is escaped as
// well.
func (m *Mangler) escape(name, raw string) string {
	if raw == "" {
		raw = name
	}
	if m.Reserved(raw) {
		return name + config.MangleEscape
	}
	return name
}

// escapeOnly renames class members, whose names are looked up by text
// at run time.
func (m *Mangler) escapeOnly(sym symbols.Symbol) {
	b := sym.Common()
	if b.Mangled() {
		return
	}
	b.MarkMangled()
	if strings.HasPrefix(b.Name, config.TempMarker) || b.Flags.Has(symbols.FlagUnsafe) {
		return
	}
	b.Name = m.escape(b.Name, b.Raw)
}

func local(b *symbols.Base) string {
	id := 0
	if b.Scope != nil {
		id = b.Scope.ID()
	}
	return config.LocalFlag + strconv.Itoa(id)
}

// pathUID encodes a module path as length-prefixed segments.
func pathUID(path []string) string {
	var sb strings.Builder
	for _, seg := range path {
		sb.WriteString(strconv.Itoa(len(seg)))
		sb.WriteString(seg)
	}
	return sb.String()
}

func fileUID(b *symbols.Base) string {
	file := ""
	if b.Loc != nil {
		file = b.Loc.File
	}
	return strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(file))), 10)
}
