// Package desugar rewrites a parsed unit into the canonical shape the
// later passes expect.
package desugar

import (
	"fmt"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/source"
)

// Desugarer mutates a unit in place:
//   - bodies of if/elsif/else/while/do/for/for-in become blocks; empty
//     statements become empty blocks
//   - expression-bodied functions get a block returning the expression
//   - nested modifier groups in member lists are flattened onto their
//     members
//   - non-trivial throw operands are routed through the runtime helper
type Desugarer struct {
	ast.Walker
	runtime string
	helper  string
}

// New returns a desugarer routing throws through runtime::helper.
func New(runtime, helper string) *Desugarer {
	d := &Desugarer{runtime: runtime, helper: helper}
	d.Walker = ast.Walker{Self: d}
	return d
}

func (d *Desugarer) Desugar(unit *ast.Unit) {
	unit.Accept(d)
}

// block makes a body a block. Bare statements are wrapped; an empty
// statement becomes an empty block.
func block(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case nil:
		return nil
	case *ast.Block:
		return n
	case *ast.ExprStmt:
		if n.Expr == nil {
			return ast.NewBlock(source.Generated())
		}
	}
	return ast.NewBlock(source.Generated(), s)
}

// body gives an expression body an explicit block with a single return.
// Missing bodies stay missing.
func body(b ast.Node) ast.Node {
	expr, ok := b.(ast.Expr)
	if !ok {
		return b
	}
	ret := &ast.ReturnStmt{Pos: ast.At(source.Generated()), Expr: expr}
	return ast.NewBlock(source.Generated(), ret)
}

func (d *Desugarer) VisitIfStmt(n *ast.IfStmt) {
	n.Then = block(n.Then)
	for _, elsif := range n.Elsifs {
		elsif.Body = block(elsif.Body)
	}
	if n.Else != nil {
		n.Else.Body = block(n.Else.Body)
	}
	d.Walker.VisitIfStmt(n)
}

func (d *Desugarer) VisitWhileStmt(n *ast.WhileStmt) {
	n.Body = block(n.Body)
	d.Walker.VisitWhileStmt(n)
}

func (d *Desugarer) VisitDoStmt(n *ast.DoStmt) {
	n.Body = block(n.Body)
	d.Walker.VisitDoStmt(n)
}

func (d *Desugarer) VisitForStmt(n *ast.ForStmt) {
	n.Body = block(n.Body)
	d.Walker.VisitForStmt(n)
}

func (d *Desugarer) VisitForInStmt(n *ast.ForInStmt) {
	n.Body = block(n.Body)
	d.Walker.VisitForInStmt(n)
}

func (d *Desugarer) VisitFnDecl(n *ast.FnDecl) {
	n.Body = body(n.Body)
	d.Walker.VisitFnDecl(n)
}

func (d *Desugarer) VisitCtorDecl(n *ast.CtorDecl) {
	n.Body = body(n.Body)
	d.Walker.VisitCtorDecl(n)
}

func (d *Desugarer) VisitDtorDecl(n *ast.DtorDecl) {
	n.Body = body(n.Body)
	d.Walker.VisitDtorDecl(n)
}

func (d *Desugarer) VisitGetterDecl(n *ast.GetterDecl) {
	n.Body = body(n.Body)
	d.Walker.VisitGetterDecl(n)
}

func (d *Desugarer) VisitSetterDecl(n *ast.SetterDecl) {
	n.Body = body(n.Body)
	d.Walker.VisitSetterDecl(n)
}

func (d *Desugarer) VisitFnExpr(n *ast.FnExpr) {
	n.Body = body(n.Body)
	d.Walker.VisitFnExpr(n)
}

func (d *Desugarer) VisitClassDecl(n *ast.ClassDecl) {
	n.Members = flatten(n.Members, 0)
	d.Walker.VisitClassDecl(n)
}

func (d *Desugarer) VisitTraitDecl(n *ast.TraitDecl) {
	n.Members = flatten(n.Members, 0)
	d.Walker.VisitTraitDecl(n)
}

func (d *Desugarer) VisitIfaceDecl(n *ast.IfaceDecl) {
	n.Members = flatten(n.Members, 0)
	d.Walker.VisitIfaceDecl(n)
}

// Member lists are flattened before they are walked, so reaching a
// group here means one sits where no member list is.
func (d *Desugarer) VisitNestedMods(n *ast.NestedMods) {
	panic(fmt.Sprintf("desugar: nested modifiers at %s outside a member list", n.Loc()))
}

func (d *Desugarer) VisitThrowStmt(n *ast.ThrowStmt) {
	switch n.Expr.(type) {
	case *ast.Name, *ast.Ident, *ast.NewExpr, *ast.CallExpr:
	default:
		gen := source.Generated()
		callee := &ast.Name{Pos: ast.At(gen), Parts: []string{d.runtime, d.helper}, Root: true}
		n.Expr = &ast.CallExpr{Pos: ast.At(gen), Callee: callee, Args: []ast.Expr{n.Expr}}
	}
	d.Walker.VisitThrowStmt(n)
}
