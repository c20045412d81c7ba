package symbols

import (
	"fmt"

	"github.com/funvibe/phsc/internal/ast"
)

type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota // shared by all units of a session
	ScopeUnit                    // one compiled file
	ScopeModule
	ScopeMember // class, trait or interface body
	ScopeFunction
	ScopeBlock
	ScopeLoop // for and for-in headers
)

var scopeKindNames = [...]string{"global", "unit", "module", "member", "function", "block", "loop"}

func (k ScopeKind) String() string {
	if k < ScopeGlobal || k > ScopeLoop {
		return fmt.Sprintf("scope(%d)", int(k))
	}
	return scopeKindNames[k]
}

// IDSource hands out scope ids. One source is shared by every scope of
// a session so ids never repeat across units.
type IDSource struct {
	last int
}

func (s *IDSource) Next() int {
	s.last++
	return s.last
}

// Env is anything a name can be resolved against: a scope or a branch
// overlaying one.
type Env interface {
	// Find resolves a plain name through the lexical chain.
	Find(name string) Symbol
	// Scope is the innermost real scope.
	Scope() *Scope
}

// Scope is one level of the lexical hierarchy.
type Scope struct {
	id    int
	kind  ScopeKind
	outer *Scope
	ids   *IDSource
	table *Table

	global *Scope // unit scopes only

	// Name is the module name of module scopes and the file of unit scopes.
	Name string
	// Node is the syntax node the scope belongs to.
	Node ast.Node

	// unit, module and global scopes
	Usages     *UsageMap
	childNames []string
	children   map[string]*Scope

	// member scopes
	Host    *ClassSymbol
	Ctor    *FnSymbol
	Dtor    *FnSymbol
	Getters *Table
	Setters *Table
}

func newScope(ids *IDSource, kind ScopeKind, outer *Scope) *Scope {
	s := &Scope{id: ids.Next(), kind: kind, outer: outer, ids: ids, table: NewTable()}
	switch kind {
	case ScopeGlobal, ScopeUnit, ScopeModule:
		s.Usages = NewUsageMap()
		s.children = make(map[string]*Scope)
	case ScopeMember:
		s.Getters = NewTable()
		s.Setters = NewTable()
	}
	return s
}

func NewGlobalScope(ids *IDSource) *Scope {
	return newScope(ids, ScopeGlobal, nil)
}

// NewUnitScope creates the root scope of one compiled file. Unit scopes
// have no outer scope; global is only consulted by module and import
// lookups and may be nil.
func NewUnitScope(ids *IDSource, file string, global *Scope) *Scope {
	s := newScope(ids, ScopeUnit, nil)
	s.Name = file
	s.global = global
	return s
}

// NewScope creates a function, block or loop scope nested in outer.
func NewScope(kind ScopeKind, outer *Scope) *Scope {
	switch kind {
	case ScopeFunction, ScopeBlock, ScopeLoop:
	default:
		panic(fmt.Sprintf("symbols: NewScope cannot create a %s scope", kind))
	}
	return newScope(outer.ids, kind, outer)
}

// NewMemberScope creates the member scope of a class-like symbol.
func NewMemberScope(outer *Scope, host *ClassSymbol) *Scope {
	s := newScope(outer.ids, ScopeMember, outer)
	s.Name = host.Name
	s.Host = host
	host.Members = s
	return s
}

func (s *Scope) ID() int           { return s.id }
func (s *Scope) Kind() ScopeKind   { return s.kind }
func (s *Scope) Outer() *Scope     { return s.outer }
func (s *Scope) Table() *Table     { return s.table }
func (s *Scope) Scope() *Scope     { return s }
func (s *Scope) IDs() *IDSource    { return s.ids }
func (s *Scope) String() string    { return fmt.Sprintf("%s scope #%d", s.kind, s.id) }
func (s *Scope) Symbols() []Symbol { return s.table.Symbols() }

// Get returns the symbol bound to name, walking outer scopes when walk
// is set.
func (s *Scope) Get(name string, walk bool) Symbol {
	for sc := s; sc != nil; sc = sc.outer {
		if sym := sc.table.Get(name); sym != nil {
			return sym
		}
		if !walk {
			break
		}
	}
	return nil
}

func (s *Scope) Find(name string) Symbol { return s.Get(name, true) }

// Has reports a local binding.
func (s *Scope) Has(name string) bool { return s.table.Has(name) }

// Add binds sym to name and makes s its owner. It returns false, and
// changes nothing, when name is already bound in s.
func (s *Scope) Add(name string, sym Symbol) bool {
	if !s.table.Add(name, sym) {
		return false
	}
	sym.Common().Scope = s
	return true
}

// Share binds sym without taking ownership of it.
func (s *Scope) Share(name string, sym Symbol) bool {
	return s.table.Add(name, sym)
}

// Set binds sym to name, replacing and returning any previous binding.
func (s *Scope) Set(name string, sym Symbol) Symbol {
	prev := s.table.Set(name, sym)
	sym.Common().Scope = s
	return prev
}

// IsRoot reports whether s is a unit or the global scope.
func (s *Scope) IsRoot() bool {
	return s.kind == ScopeUnit || s.kind == ScopeGlobal
}

// Root returns the unit (or global) scope s belongs to.
func (s *Scope) Root() *Scope {
	sc := s
	for !sc.IsRoot() && sc.outer != nil {
		sc = sc.outer
	}
	return sc
}

// Global returns the session's global scope, or nil when s belongs to a
// unit compiled without one.
func (s *Scope) Global() *Scope {
	r := s.Root()
	if r.kind == ScopeGlobal {
		return r
	}
	return r.global
}

// Module returns the nearest enclosing module, unit or global scope.
func (s *Scope) Module() *Scope {
	sc := s
	for sc.Usages == nil && sc.outer != nil {
		sc = sc.outer
	}
	return sc
}

// Path is the module path from the root to s.
func (s *Scope) Path() []string {
	var path []string
	for sc := s.Module(); sc != nil && sc.kind == ScopeModule; sc = sc.outer {
		path = append([]string{sc.Name}, path...)
	}
	return path
}
