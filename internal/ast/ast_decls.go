package ast

// UseDecl imports one item into the enclosing scope.
// use a::b;  pub use a::{b, c as d};
type UseDecl struct {
	Pos
	Pub  bool
	Item UseItem
}

func (u *UseDecl) Kind() string     { return "use_decl" }
func (u *UseDecl) Accept(v Visitor) { v.VisitUseDecl(u) }
func (u *UseDecl) stmtNode()        {}

type UseAlias struct {
	Pos
	Name  *Name
	Alias string
}

func (u *UseAlias) Kind() string     { return "use_alias" }
func (u *UseAlias) Accept(v Visitor) { v.VisitUseAlias(u) }
func (u *UseAlias) useItem()         {}

// UseUnpack is a group import sharing a base path.
// use a::{b, c::d};
type UseUnpack struct {
	Pos
	Base  *Name
	Items []UseItem
}

func (u *UseUnpack) Kind() string     { return "use_unpack" }
func (u *UseUnpack) Accept(v Visitor) { v.VisitUseUnpack(u) }
func (u *UseUnpack) useItem()         {}

type ClassDecl struct {
	Pos
	Mods    Mods
	Name    string
	Super   *Name
	Ifaces  []*Name
	Members []Stmt
}

func (c *ClassDecl) Kind() string     { return "class_decl" }
func (c *ClassDecl) Accept(v Visitor) { v.VisitClassDecl(c) }
func (c *ClassDecl) stmtNode()        {}

type TraitDecl struct {
	Pos
	Mods    Mods
	Name    string
	Members []Stmt
}

func (t *TraitDecl) Kind() string     { return "trait_decl" }
func (t *TraitDecl) Accept(v Visitor) { v.VisitTraitDecl(t) }
func (t *TraitDecl) stmtNode()        {}

type IfaceDecl struct {
	Pos
	Mods    Mods
	Name    string
	Ifaces  []*Name
	Members []Stmt
}

func (i *IfaceDecl) Kind() string     { return "iface_decl" }
func (i *IfaceDecl) Accept(v Visitor) { v.VisitIfaceDecl(i) }
func (i *IfaceDecl) stmtNode()        {}

// TraitUse mixes traits into the enclosing class.
type TraitUse struct {
	Pos
	Traits []*Name
}

func (t *TraitUse) Kind() string     { return "trait_use" }
func (t *TraitUse) Accept(v Visitor) { v.VisitTraitUse(t) }
func (t *TraitUse) stmtNode()        {}

// NestedMods applies its modifiers to every member it groups.
// private static { var a; fn f() {} }
type NestedMods struct {
	Pos
	Mods    Mods
	Members []Stmt
}

func (n *NestedMods) Kind() string     { return "nested_mods" }
func (n *NestedMods) Accept(v Visitor) { v.VisitNestedMods(n) }
func (n *NestedMods) stmtNode()        {}

type VarDecl struct {
	Pos
	Mods  Mods
	Items []*VarItem
}

func (d *VarDecl) Kind() string     { return "var_decl" }
func (d *VarDecl) Accept(v Visitor) { v.VisitVarDecl(d) }
func (d *VarDecl) stmtNode()        {}

type VarItem struct {
	Pos
	Name string
	Init Expr
}

func (i *VarItem) Kind() string     { return "var_item" }
func (i *VarItem) Accept(v Visitor) { v.VisitVarItem(i) }

type EnumDecl struct {
	Pos
	Mods  Mods
	Items []*VarItem
}

func (e *EnumDecl) Kind() string     { return "enum_decl" }
func (e *EnumDecl) Accept(v Visitor) { v.VisitEnumDecl(e) }
func (e *EnumDecl) stmtNode()        {}

// FnDecl declares a named function or method. Body is a *Block, an Expr
// for expression-bodied functions, or nil when there is no body.
type FnDecl struct {
	Pos
	Mods   Mods
	Name   string
	Params []*Param
	Body   Node
}

func (f *FnDecl) Kind() string     { return "fn_decl" }
func (f *FnDecl) Accept(v Visitor) { v.VisitFnDecl(f) }
func (f *FnDecl) stmtNode()        {}

type CtorDecl struct {
	Pos
	Mods   Mods
	Params []*Param
	Body   Node
}

func (c *CtorDecl) Kind() string     { return "ctor_decl" }
func (c *CtorDecl) Accept(v Visitor) { v.VisitCtorDecl(c) }
func (c *CtorDecl) stmtNode()        {}

type DtorDecl struct {
	Pos
	Mods   Mods
	Params []*Param
	Body   Node
}

func (d *DtorDecl) Kind() string     { return "dtor_decl" }
func (d *DtorDecl) Accept(v Visitor) { v.VisitDtorDecl(d) }
func (d *DtorDecl) stmtNode()        {}

type GetterDecl struct {
	Pos
	Mods   Mods
	Name   string
	Params []*Param
	Body   Node
}

func (g *GetterDecl) Kind() string     { return "getter_decl" }
func (g *GetterDecl) Accept(v Visitor) { v.VisitGetterDecl(g) }
func (g *GetterDecl) stmtNode()        {}

type SetterDecl struct {
	Pos
	Mods   Mods
	Name   string
	Params []*Param
	Body   Node
}

func (s *SetterDecl) Kind() string     { return "setter_decl" }
func (s *SetterDecl) Accept(v Visitor) { v.VisitSetterDecl(s) }
func (s *SetterDecl) stmtNode()        {}

type Param struct {
	Pos
	Mods Mods
	Hint string
	Name string
	Init Expr
	Rest bool
}

func (p *Param) Kind() string     { return "param" }
func (p *Param) Accept(v Visitor) { v.VisitParam(p) }
