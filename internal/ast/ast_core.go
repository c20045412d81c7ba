package ast

import (
	"strings"

	"github.com/funvibe/phsc/internal/source"
)

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() string
	Loc() *source.Location
	Accept(v Visitor)
}

// Stmt is a Node that can appear in a statement list. Declarations are
// statements too.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	exprNode()
}

// UseItem is one item of a use declaration: a plain path, an aliased
// path or a nested group.
type UseItem interface {
	Node
	useItem()
}

// Pos is embedded by every node and carries its location.
type Pos struct {
	Location *source.Location
}

func At(loc *source.Location) Pos { return Pos{Location: loc} }

func (p *Pos) Loc() *source.Location { return p.Location }

// Mods is the set of modifiers written in front of a declaration.
type Mods uint16

const (
	ModPublic Mods = 1 << iota
	ModPrivate
	ModProtected
	ModStatic
	ModConst
	ModFinal
	ModAbstract
	ModExtern
	ModUnsafe
)

var modNames = []struct {
	mod  Mods
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModStatic, "static"},
	{ModConst, "const"},
	{ModFinal, "final"},
	{ModAbstract, "abstract"},
	{ModExtern, "extern"},
	{ModUnsafe, "unsafe"},
}

func (m Mods) Has(x Mods) bool { return m&x != 0 }

func (m Mods) String() string {
	var parts []string
	for _, mn := range modNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}

// Unit is the root node of one compiled source file.
type Unit struct {
	Pos
	File string
	Body []Stmt
}

func (u *Unit) Kind() string     { return "unit" }
func (u *Unit) Accept(v Visitor) { v.VisitUnit(u) }

// Module groups declarations under a path. A nil Name denotes the root
// module of the unit.
// module a::b { ... }
type Module struct {
	Pos
	Name *Name
	Body []Stmt
}

func (m *Module) Kind() string     { return "module" }
func (m *Module) Accept(v Visitor) { v.VisitModule(m) }
func (m *Module) stmtNode()        {}

type Block struct {
	Pos
	Body []Stmt
}

func (b *Block) Kind() string     { return "block" }
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }
func (b *Block) stmtNode()        {}

// NewBlock wraps statements in a block sharing the first statement's
// location, or a generated one.
func NewBlock(loc *source.Location, body ...Stmt) *Block {
	if loc == nil {
		loc = source.Generated()
	}
	return &Block{Pos: At(loc), Body: body}
}
