package symbols

import (
	"fmt"
	"strings"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/source"
)

type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindTrait
	KindIface
	KindVar
	KindFn
	KindRef
)

var kindNames = [...]string{"module", "class", "trait", "iface", "var", "fn", "ref"}

func (k Kind) String() string {
	if k < KindModule || k > KindRef {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

type Flags uint32

const (
	FlagConst Flags = 1 << iota
	FlagFinal
	FlagStatic
	FlagPublic
	FlagPrivate
	FlagProtected
	FlagAbstract
	FlagExtern
	FlagUnsafe // never renamed
	FlagParam
	FlagRest
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagConst, "const"},
	{FlagFinal, "final"},
	{FlagStatic, "static"},
	{FlagPublic, "public"},
	{FlagPrivate, "private"},
	{FlagProtected, "protected"},
	{FlagAbstract, "abstract"},
	{FlagExtern, "extern"},
	{FlagUnsafe, "unsafe"},
	{FlagParam, "param"},
	{FlagRest, "rest"},
}

func (f Flags) Has(x Flags) bool { return f&x != 0 }

func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

var modFlags = map[ast.Mods]Flags{
	ast.ModPublic:    FlagPublic,
	ast.ModPrivate:   FlagPrivate,
	ast.ModProtected: FlagProtected,
	ast.ModStatic:    FlagStatic,
	ast.ModConst:     FlagConst,
	ast.ModFinal:     FlagFinal,
	ast.ModAbstract:  FlagAbstract,
	ast.ModExtern:    FlagExtern,
	ast.ModUnsafe:    FlagUnsafe,
}

// FlagsFromMods converts declaration modifiers to symbol flags.
func FlagsFromMods(m ast.Mods) Flags {
	var f Flags
	for mod, flag := range modFlags {
		if m.Has(mod) {
			f |= flag
		}
	}
	return f
}

// Symbol is a declaration known to the compiler.
type Symbol interface {
	Common() *Base
	Kind() Kind
	String() string
}

// Base holds what every symbol variant has in common.
type Base struct {
	Name  string // current identifier, rewritten by the mangler
	Raw   string // identifier as declared
	Loc   *source.Location
	Flags Flags
	Scope *Scope // owning scope; never an ownership edge

	Reads  int
	Writes int

	Exported    bool
	ExportAlias string

	// Origin is the trait member a mixed-in symbol was cloned from.
	Origin Symbol
	// Node is the declaring node.
	Node ast.Node

	mangled bool
}

func (b *Base) Common() *Base { return b }

func newBase(name string, loc *source.Location, flags Flags) Base {
	return Base{Name: name, Raw: name, Loc: loc, Flags: flags}
}

// Mangled reports whether the identifier was already rewritten.
func (b *Base) Mangled() bool { return b.mangled }

// MarkMangled records that the identifier reached its final form.
func (b *Base) MarkMangled() { b.mangled = true }

type VarSymbol struct {
	Base
	Value Value
	Hint  string // parameter type hint
}

func NewVar(name string, loc *source.Location, flags Flags) *VarSymbol {
	return &VarSymbol{Base: newBase(name, loc, flags)}
}

func (v *VarSymbol) Kind() Kind { return KindVar }

func (v *VarSymbol) String() string {
	if v.Flags.Has(FlagParam) {
		return "param " + v.Name
	}
	return "var " + v.Name
}

// Clone returns a copy with the same name, flags and value.
func (v *VarSymbol) Clone() *VarSymbol {
	cp := *v
	cp.Value = v.Value.Copy()
	return &cp
}

type FnSymbol struct {
	Base
	Params []*VarSymbol
	Nested bool // declared inside another function
	Expr   bool // function literal
	Calls  int
}

func NewFn(name string, loc *source.Location, flags Flags) *FnSymbol {
	return &FnSymbol{Base: newBase(name, loc, flags)}
}

func (f *FnSymbol) Kind() Kind     { return KindFn }
func (f *FnSymbol) String() string { return "fn " + f.Name }

// ClassSymbol describes classes, traits and interfaces.
type ClassSymbol struct {
	Base
	kind Kind

	// Members are declared on this type; Inherit is the flattened set
	// reachable through the super class.
	Members *Scope
	Inherit *Table

	SuperName  *ast.Name
	Super      *ClassSymbol
	IfaceNames []*ast.Name
	Ifaces     []*ClassSymbol // resolved from IfaceNames by collect
	Traits     []*ast.Name
}

func NewClass(kind Kind, name string, loc *source.Location, flags Flags) *ClassSymbol {
	switch kind {
	case KindClass, KindTrait, KindIface:
	default:
		panic(fmt.Sprintf("symbols: %s is not a class-like kind", kind))
	}
	return &ClassSymbol{Base: newBase(name, loc, flags), kind: kind, Inherit: NewTable()}
}

func (c *ClassSymbol) Kind() Kind     { return c.kind }
func (c *ClassSymbol) String() string { return c.kind.String() + " " + c.Name }

// Member finds name among the declared members, then the inherited ones.
func (c *ClassSymbol) Member(name string) Symbol {
	if c.Members != nil {
		if sym := c.Members.Get(name, false); sym != nil {
			return sym
		}
	}
	return c.Inherit.Get(name)
}

type ModuleSymbol struct {
	Base
	Module *Scope
}

func NewModule(name string, loc *source.Location, mod *Scope) *ModuleSymbol {
	return &ModuleSymbol{Base: newBase(name, loc, 0), Module: mod}
}

func (m *ModuleSymbol) Kind() Kind     { return KindModule }
func (m *ModuleSymbol) String() string { return "module " + m.Name }

// Ref aliases a real symbol reached through Path. A Ref never targets
// another Ref.
type Ref struct {
	Base
	Target Symbol
	Path   []string
}

// NewRef builds a reference to target, collapsing references to
// references onto the original symbol.
func NewRef(name string, loc *source.Location, target Symbol, path []string) *Ref {
	if r, ok := target.(*Ref); ok {
		target = r.Target
	}
	return &Ref{Base: newBase(name, loc, target.Common().Flags), Target: target, Path: path}
}

func (r *Ref) Kind() Kind { return KindRef }

// TargetKind is the kind of the referenced symbol.
func (r *Ref) TargetKind() Kind { return r.Target.Kind() }

func (r *Ref) String() string {
	return fmt.Sprintf("ref %s -> %s", strings.Join(r.Path, "::"), r.Target)
}

// Deref unwraps a reference. Other symbols are returned unchanged.
func Deref(sym Symbol) Symbol {
	if r, ok := sym.(*Ref); ok {
		return r.Target
	}
	return sym
}

// ModuleOf returns the module scope sym denotes: a module symbol, a
// reference to one, or a variable currently holding one.
func ModuleOf(sym Symbol) *Scope {
	switch s := Deref(sym).(type) {
	case *ModuleSymbol:
		return s.Module
	case *VarSymbol:
		if s.Value.Kind == ValSymbol && s.Value.Sym != nil {
			if m, ok := Deref(s.Value.Sym).(*ModuleSymbol); ok {
				return m.Module
			}
		}
	}
	return nil
}
