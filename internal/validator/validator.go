// Package validator checks that every name in a collected unit refers
// to a declared symbol.
package validator

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/lookup"
	"github.com/funvibe/phsc/internal/symbols"
)

// Validator resolves names and records them in Info.Uses. It keeps going
// after a failure so one run reports every unknown reference.
type Validator struct {
	ast.Walker

	info  *symbols.Info
	sink  *diagnostics.Sink
	scope *symbols.Scope
	valid bool
}

func New(info *symbols.Info, sink *diagnostics.Sink) *Validator {
	v := &Validator{info: info, sink: sink}
	v.Walker = ast.Walker{Self: v}
	return v
}

// Validate walks n, which must have been collected, and reports whether
// every reference resolved.
func (v *Validator) Validate(n ast.Node) bool {
	v.valid = true
	n.Accept(v)
	return v.valid
}

// scoped runs walk in the scope of n, if collect gave it one.
func (v *Validator) scoped(n ast.Node, walk func()) {
	s := v.info.ScopeOf(n)
	if s == nil {
		walk()
		return
	}
	prev := v.scope
	v.scope = s
	walk()
	v.scope = prev
}

func (v *Validator) accept(n ast.Node) {
	if n != nil {
		n.Accept(v)
	}
}

func (v *Validator) VisitUnit(n *ast.Unit) {
	v.scoped(n, func() { v.Walker.VisitUnit(n) })
}

func (v *Validator) VisitModule(n *ast.Module) {
	v.scoped(n, func() { v.Walker.VisitModule(n) })
}

func (v *Validator) VisitBlock(n *ast.Block) {
	v.scoped(n, func() { v.Walker.VisitBlock(n) })
}

func (v *Validator) VisitClassDecl(n *ast.ClassDecl) {
	v.scoped(n, func() {
		v.Walker.VisitClassDecl(n)
		v.mixed()
	})
}

// mixed validates the members a class got from its traits.
func (v *Validator) mixed() {
	ms := v.scope
	seen := make(map[ast.Node]bool)
	visit := func(sym symbols.Symbol) {
		b := sym.Common()
		if b.Origin == nil || b.Node == nil || seen[b.Node] {
			return
		}
		seen[b.Node] = true
		b.Node.Accept(v)
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

// VisitTraitDecl skips trait bodies; they are checked in the classes
// using them.
func (v *Validator) VisitTraitDecl(n *ast.TraitDecl) {}

func (v *Validator) VisitIfaceDecl(n *ast.IfaceDecl) {
	v.scoped(n, func() { v.Walker.VisitIfaceDecl(n) })
}

func (v *Validator) VisitFnDecl(n *ast.FnDecl) {
	v.scoped(n, func() { v.Walker.VisitFnDecl(n) })
}

func (v *Validator) VisitCtorDecl(n *ast.CtorDecl) {
	v.scoped(n, func() { v.Walker.VisitCtorDecl(n) })
}

func (v *Validator) VisitDtorDecl(n *ast.DtorDecl) {
	v.scoped(n, func() { v.Walker.VisitDtorDecl(n) })
}

func (v *Validator) VisitGetterDecl(n *ast.GetterDecl) {
	v.scoped(n, func() { v.Walker.VisitGetterDecl(n) })
}

func (v *Validator) VisitSetterDecl(n *ast.SetterDecl) {
	v.scoped(n, func() { v.Walker.VisitSetterDecl(n) })
}

func (v *Validator) VisitFnExpr(n *ast.FnExpr) {
	v.scoped(n, func() { v.Walker.VisitFnExpr(n) })
}

func (v *Validator) VisitForStmt(n *ast.ForStmt) {
	v.scoped(n, func() { v.Walker.VisitForStmt(n) })
}

// The iterated expression and the switch subject are evaluated outside
// the scopes of their statements.
func (v *Validator) VisitForInStmt(n *ast.ForInStmt) {
	v.accept(n.Expr)
	v.scoped(n, func() {
		if n.Key != nil {
			n.Key.Accept(v)
		}
		n.Value.Accept(v)
		v.accept(n.Body)
	})
}

func (v *Validator) VisitSwitchStmt(n *ast.SwitchStmt) {
	v.accept(n.Expr)
	v.scoped(n, func() {
		for _, c := range n.Cases {
			c.Accept(v)
		}
	})
}

func (v *Validator) VisitTryStmt(n *ast.TryStmt) {
	v.scoped(n, func() { v.Walker.VisitTryStmt(n) })
}

func (v *Validator) VisitCatchItem(n *ast.CatchItem) {
	v.scoped(n, func() { v.Walker.VisitCatchItem(n) })
}

func (v *Validator) VisitCallExpr(n *ast.CallExpr) {
	v.accept(n.Callee)
	for _, arg := range n.Args {
		v.accept(arg)
	}
}

func (v *Validator) VisitName(n *ast.Name) {
	sym := lookup.Name(n, v.scope, false)
	if sym == nil {
		v.sink.Errorf(diagnostics.ErrV001, n.Loc(), "unknown reference to `%s`", n)
		v.valid = false
		return
	}
	v.info.Uses[n] = sym
}
