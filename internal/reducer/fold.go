package reducer

import (
	"math"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/lookup"
	"github.com/funvibe/phsc/internal/symbols"
)

// Folder walks a collected unit, stores the folded initializers of
// variables in their symbols and counts reads, writes and calls.
// Conditional and repeated code is analysed in a branch so that its
// writes only reach the enclosing code as "written, value unknown".
type Folder struct {
	ast.Walker

	info *symbols.Info
	sink *diagnostics.Sink

	env    symbols.Env
	branch *symbols.Branch
}

func NewFolder(info *symbols.Info, sink *diagnostics.Sink) *Folder {
	f := &Folder{info: info, sink: sink}
	f.Walker = ast.Walker{Self: f}
	return f
}

func (f *Folder) Fold(unit *ast.Unit) {
	unit.Accept(f)
}

func (f *Folder) reduce(e ast.Expr) symbols.Value {
	return newReducer(f.env, f.sink).reduce(e)
}

// enter switches to the scope of n, if it has one. Inside a branch the
// scope is overlaid as well, so nested code keeps writing to clones.
func (f *Folder) enter(n ast.Node) func() {
	s := f.info.ScopeOf(n)
	if s == nil {
		return func() {}
	}
	env, branch := f.env, f.branch
	if f.branch != nil {
		f.branch = symbols.NewBranch(s, f.branch)
		f.env = f.branch
	} else {
		f.env = s
	}
	return func() {
		if f.branch != branch {
			f.branch.Merge()
		}
		f.env, f.branch = env, branch
	}
}

// isolate analyses a function or class body on its own: writes there
// happen whenever the code runs, so they go straight to the symbols.
func (f *Folder) isolate(n ast.Node, walk func()) {
	s := f.info.ScopeOf(n)
	if s == nil {
		return
	}
	env, branch := f.env, f.branch
	f.env, f.branch = s, nil
	walk()
	f.env, f.branch = env, branch
}

// arm analyses one conditional path under a fresh branch.
func (f *Folder) arm(walk func()) {
	env, branch := f.env, f.branch
	f.branch = symbols.NewBranch(f.env.Scope(), f.branch)
	f.env = f.branch
	walk()
	f.branch.Merge()
	f.env, f.branch = env, branch
}

func (f *Folder) armNode(n ast.Node) {
	if n != nil {
		f.arm(func() { n.Accept(f) })
	}
}

func (f *Folder) accept(n ast.Node) {
	if n != nil {
		n.Accept(f)
	}
}

func (f *Folder) VisitUnit(n *ast.Unit) {
	defer f.enter(n)()
	f.Walker.VisitUnit(n)
}

func (f *Folder) VisitModule(n *ast.Module) {
	defer f.enter(n)()
	f.Walker.VisitModule(n)
}

func (f *Folder) VisitBlock(n *ast.Block) {
	defer f.enter(n)()
	f.Walker.VisitBlock(n)
}

func (f *Folder) VisitClassDecl(n *ast.ClassDecl) {
	f.isolate(n, func() {
		f.Walker.VisitClassDecl(n)
		f.mixed(f.info.ScopeOf(n))
	})
}

func (f *Folder) VisitIfaceDecl(n *ast.IfaceDecl) {
	f.isolate(n, func() { f.Walker.VisitIfaceDecl(n) })
}

// VisitTraitDecl does nothing: trait members are analysed where they are
// mixed in.
func (f *Folder) VisitTraitDecl(n *ast.TraitDecl) {}

// mixed folds the members a class got from its traits. Their nodes are
// clones that are not part of the member list.
func (f *Folder) mixed(ms *symbols.Scope) {
	seen := make(map[ast.Node]bool)
	for _, sym := range ms.Symbols() {
		b := sym.Common()
		if b.Origin == nil || b.Node == nil || seen[b.Node] {
			continue
		}
		seen[b.Node] = true
		b.Node.Accept(f)
	}
	for _, slot := range []*symbols.FnSymbol{ms.Ctor, ms.Dtor} {
		if slot != nil && slot.Origin != nil {
			slot.Node.Accept(f)
		}
	}
	for _, t := range []*symbols.Table{ms.Getters, ms.Setters} {
		t.Each(func(_ string, sym symbols.Symbol) {
			if sym.Common().Origin != nil {
				sym.Common().Node.Accept(f)
			}
		})
	}
}

func (f *Folder) VisitFnDecl(n *ast.FnDecl) {
	f.isolate(n, func() { f.Walker.VisitFnDecl(n) })
}

func (f *Folder) VisitCtorDecl(n *ast.CtorDecl) {
	f.isolate(n, func() { f.Walker.VisitCtorDecl(n) })
}

func (f *Folder) VisitDtorDecl(n *ast.DtorDecl) {
	f.isolate(n, func() { f.Walker.VisitDtorDecl(n) })
}

func (f *Folder) VisitGetterDecl(n *ast.GetterDecl) {
	f.isolate(n, func() { f.Walker.VisitGetterDecl(n) })
}

func (f *Folder) VisitSetterDecl(n *ast.SetterDecl) {
	f.isolate(n, func() { f.Walker.VisitSetterDecl(n) })
}

func (f *Folder) VisitFnExpr(n *ast.FnExpr) {
	f.isolate(n, func() { f.Walker.VisitFnExpr(n) })
}

func (f *Folder) VisitVarItem(n *ast.VarItem) {
	// constants read before their declaration were folded on demand
	if v, ok := f.info.DefOf(n).(*symbols.VarSymbol); ok && v.Value.Kind == symbols.ValNone {
		if n.Init == nil {
			v.Value = symbols.Null()
		} else {
			v.Value = f.reduce(n.Init)
		}
	}
	f.Walker.VisitVarItem(n)
}

// VisitEnumDecl numbers items without an initializer after the previous
// item, starting at zero.
func (f *Folder) VisitEnumDecl(n *ast.EnumDecl) {
	next := symbols.Int(0)
	for _, item := range n.Items {
		val := next
		if item.Init != nil {
			val = f.reduce(item.Init)
		}
		f.accept(item.Init)
		if v, ok := f.info.DefOf(item).(*symbols.VarSymbol); ok {
			v.Value = val
		}
		if val.Kind == symbols.ValInt && val.Int < math.MaxInt64 {
			next = symbols.Int(val.Int + 1)
		} else {
			next = symbols.Unknown()
		}
	}
}

// VisitParam leaves the value unknown: arguments are only known at run
// time. Defaults are still walked for their reads.
func (f *Folder) VisitParam(n *ast.Param) {
	if v, ok := f.info.DefOf(n).(*symbols.VarSymbol); ok {
		v.Value = symbols.Unknown()
	}
	f.Walker.VisitParam(n)
}

func (f *Folder) VisitIfStmt(n *ast.IfStmt) {
	f.accept(n.Cond)
	f.armNode(n.Then)
	for _, elsif := range n.Elsifs {
		f.accept(elsif.Cond)
		f.armNode(elsif.Body)
	}
	if n.Else != nil {
		f.armNode(n.Else.Body)
	}
}

func (f *Folder) VisitWhileStmt(n *ast.WhileStmt) {
	f.arm(func() {
		f.accept(n.Cond)
		f.accept(n.Body)
	})
}

func (f *Folder) VisitDoStmt(n *ast.DoStmt) {
	f.arm(func() {
		f.accept(n.Body)
		f.accept(n.Cond)
	})
}

func (f *Folder) VisitForStmt(n *ast.ForStmt) {
	defer f.enter(n)()
	f.accept(n.Init)
	f.arm(func() {
		f.accept(n.Cond)
		f.accept(n.Body)
		f.accept(n.Step)
	})
}

func (f *Folder) VisitForInStmt(n *ast.ForInStmt) {
	f.accept(n.Expr)
	defer f.enter(n)()
	if n.Key != nil {
		n.Key.Accept(f)
	}
	n.Value.Accept(f)
	f.armNode(n.Body)
}

func (f *Folder) VisitSwitchStmt(n *ast.SwitchStmt) {
	f.accept(n.Expr)
	defer f.enter(n)()
	for _, c := range n.Cases {
		f.armNode(c)
	}
}

func (f *Folder) VisitTryStmt(n *ast.TryStmt) {
	defer f.enter(n)()
	f.armNode(n.Body)
	for _, c := range n.Catches {
		f.armNode(c)
	}
	if n.Finally != nil {
		n.Finally.Accept(f)
	}
}

func (f *Folder) VisitCatchItem(n *ast.CatchItem) {
	defer f.enter(n)()
	n.Body.Accept(f)
}

func (f *Folder) VisitName(n *ast.Name) {
	lookup.Name(n, f.env, true)
}

func (f *Folder) VisitAssignExpr(n *ast.AssignExpr) {
	f.accept(n.Right)
	f.write(n.Left)
}

func (f *Folder) VisitUpdateExpr(n *ast.UpdateExpr) {
	f.write(n.Expr)
}

func (f *Folder) VisitCallExpr(n *ast.CallExpr) {
	if name, ok := n.Callee.(*ast.Name); ok {
		if fn, ok := lookup.Name(name, f.env, true).(*symbols.FnSymbol); ok {
			fn.Calls++
		}
	} else {
		f.accept(n.Callee)
	}
	for _, arg := range n.Args {
		f.accept(arg)
	}
}

// write records an assignment to target. Writing into an element or a
// static member counts as writing the variable or member itself.
func (f *Folder) write(target ast.Expr) {
	switch t := target.(type) {
	case *ast.Name:
		sym := lookup.Name(t, f.env, false)
		if sym == nil {
			return
		}
		sym.Common().Writes++
		if v, ok := sym.(*symbols.VarSymbol); ok {
			v.Value = symbols.Unknown()
		}
	case *ast.ParenExpr:
		f.write(t.Expr)
	case *ast.OffsetExpr:
		f.accept(t.Offset)
		f.write(t.Object)
	case *ast.MemberExpr:
		if obj, ok := t.Object.(*ast.Name); ok && t.Static {
			if cls, ok := lookup.Name(obj, f.env, false).(*symbols.ClassSymbol); ok {
				if id, ok := t.Prop.(*ast.Ident); ok {
					if m := cls.Member(id.Value); m != nil {
						m.Common().Writes++
					}
				}
				return
			}
		}
		target.Accept(f)
	case *ast.TupleExpr:
		for _, item := range t.Items {
			f.write(item)
		}
	case *ast.ArrLit:
		for _, item := range t.Items {
			f.write(item)
		}
	default:
		f.accept(target)
	}
}
