package mangle

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/symbols"
)

func (m *Mangler) handle(n ast.Node) {
	s := m.info.ScopeOf(n)
	if s == nil {
		return
	}
	for _, sym := range s.Symbols() {
		m.Symbol(sym)
	}
}

// nested handles the scope of n one level deeper than the code around it.
func (m *Mangler) nested(n ast.Node, walk func()) {
	m.nest++
	m.handle(n)
	walk()
	m.nest--
}

func (m *Mangler) VisitUnit(n *ast.Unit) {
	m.handle(n)
	m.Walker.VisitUnit(n)
}

func (m *Mangler) VisitModule(n *ast.Module) {
	if n.Name == nil {
		m.Walker.VisitModule(n)
		return
	}
	prev := m.mod
	m.imod++
	m.mod = m.info.ScopeOf(n)
	m.modulePath(m.mod)
	m.handle(n)
	m.Walker.VisitModule(n)
	m.imod--
	m.mod = prev
}

// modulePath escapes every module along a qualified module path. The
// intermediate modules of `module a::b` have no node of their own.
func (m *Mangler) modulePath(mod *symbols.Scope) {
	for s := mod; s != nil && s.Kind() == symbols.ScopeModule; s = s.Outer() {
		if outer := s.Outer(); outer != nil {
			if sym, ok := outer.Get(s.Name, false).(*symbols.ModuleSymbol); ok && sym.Module == s {
				m.Symbol(sym)
			}
		}
	}
}

func (m *Mangler) VisitClassDecl(n *ast.ClassDecl) {
	ms := m.info.ScopeOf(n)
	if ms == nil {
		return
	}
	m.members(ms)
	m.mixed(ms)
	m.Walker.VisitClassDecl(n)
}

func (m *Mangler) VisitIfaceDecl(n *ast.IfaceDecl) {
	if ms := m.info.ScopeOf(n); ms != nil {
		m.members(ms)
	}
	m.Walker.VisitIfaceDecl(n)
}

// VisitTraitDecl does nothing: trait members are renamed in the classes
// they are mixed into.
func (m *Mangler) VisitTraitDecl(n *ast.TraitDecl) {}

func (m *Mangler) members(ms *symbols.Scope) {
	for _, sym := range ms.Symbols() {
		m.escapeOnly(sym)
	}
	for _, t := range []*symbols.Table{ms.Getters, ms.Setters} {
		t.Each(func(_ string, sym symbols.Symbol) { m.escapeOnly(sym) })
	}
}

// mixed visits the declarations cloned from traits, which are not part
// of the member list.
func (m *Mangler) mixed(ms *symbols.Scope) {
	seen := make(map[ast.Node]bool)
	visit := func(sym symbols.Symbol) {
		b := sym.Common()
		if b.Origin == nil || b.Node == nil || seen[b.Node] {
			return
		}
		seen[b.Node] = true
		b.Node.Accept(m)
	}
	for _, sym := range ms.Symbols() {
		visit(sym)
	}
	if ms.Ctor != nil {
		visit(ms.Ctor)
	}
	if ms.Dtor != nil {
		visit(ms.Dtor)
	}
	ms.Getters.Each(func(_ string, sym symbols.Symbol) { visit(sym) })
	ms.Setters.Each(func(_ string, sym symbols.Symbol) { visit(sym) })
}

func (m *Mangler) VisitBlock(n *ast.Block) {
	m.nested(n, func() { m.Walker.VisitBlock(n) })
}

func (m *Mangler) VisitFnDecl(n *ast.FnDecl) {
	m.nested(n, func() { m.Walker.VisitFnDecl(n) })
}

func (m *Mangler) VisitCtorDecl(n *ast.CtorDecl) {
	m.nested(n, func() { m.Walker.VisitCtorDecl(n) })
}

func (m *Mangler) VisitDtorDecl(n *ast.DtorDecl) {
	m.nested(n, func() { m.Walker.VisitDtorDecl(n) })
}

func (m *Mangler) VisitGetterDecl(n *ast.GetterDecl) {
	m.nested(n, func() { m.Walker.VisitGetterDecl(n) })
}

func (m *Mangler) VisitSetterDecl(n *ast.SetterDecl) {
	m.nested(n, func() { m.Walker.VisitSetterDecl(n) })
}

func (m *Mangler) VisitFnExpr(n *ast.FnExpr) {
	m.nested(n, func() { m.Walker.VisitFnExpr(n) })
}

func (m *Mangler) VisitForStmt(n *ast.ForStmt) {
	m.nested(n, func() { m.Walker.VisitForStmt(n) })
}

func (m *Mangler) VisitForInStmt(n *ast.ForInStmt) {
	m.nested(n, func() { m.Walker.VisitForInStmt(n) })
}

func (m *Mangler) VisitSwitchStmt(n *ast.SwitchStmt) {
	m.nested(n, func() { m.Walker.VisitSwitchStmt(n) })
}

func (m *Mangler) VisitTryStmt(n *ast.TryStmt) {
	m.nested(n, func() { m.Walker.VisitTryStmt(n) })
}

func (m *Mangler) VisitCatchItem(n *ast.CatchItem) {
	m.nested(n, func() { m.Walker.VisitCatchItem(n) })
}

func (m *Mangler) VisitMemberExpr(n *ast.MemberExpr) {
	if id, ok := n.Prop.(*ast.Ident); ok && !n.Computed {
		id.Value = m.Escape(id.Value)
	}
	m.Walker.VisitMemberExpr(n)
}
