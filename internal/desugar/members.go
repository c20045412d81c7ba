package desugar

import "github.com/funvibe/phsc/internal/ast"

const visibility = ast.ModPublic | ast.ModPrivate | ast.ModProtected

// flatten splices nested modifier groups out of a member list. Every
// member of a group receives the modifiers of all enclosing groups, outer
// first; a member that states its own visibility keeps it.
func flatten(members []ast.Stmt, outer ast.Mods) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(members))
	for _, m := range members {
		if group, ok := m.(*ast.NestedMods); ok {
			out = append(out, flatten(group.Members, merge(outer, group.Mods))...)
			continue
		}
		if outer != 0 {
			applyMods(m, outer)
		}
		out = append(out, m)
	}
	return out
}

// merge adds inner to outer. Visibility is exclusive, so an inner
// visibility replaces the outer one.
func merge(outer, inner ast.Mods) ast.Mods {
	if inner&visibility != 0 {
		outer &^= visibility
	}
	return outer | inner
}

func applyMods(m ast.Stmt, mods ast.Mods) {
	switch n := m.(type) {
	case *ast.VarDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.EnumDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.FnDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.CtorDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.DtorDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.GetterDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.SetterDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.ClassDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.TraitDecl:
		n.Mods = merge(mods, n.Mods)
	case *ast.IfaceDecl:
		n.Mods = merge(mods, n.Mods)
	}
}
