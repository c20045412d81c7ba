// Package lookup resolves names to symbols. Lookups fail closed: a name
// that cannot be resolved yields nil and it is up to the caller to
// report it.
package lookup

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/symbols"
)

// Name resolves n as seen from env. When track is set the resolved
// symbol's read counter is incremented.
func Name(n *ast.Name, env symbols.Env, track bool) symbols.Symbol {
	r := newResolver()
	sym := r.name(n, env)
	if sym != nil && track {
		sym.Common().Reads++
	}
	return sym
}

// Import resolves a use-import declared in scope.
func Import(u *symbols.Usage, scope *symbols.Scope) symbols.Symbol {
	ref := newResolver().usage(u, scope)
	if ref == nil {
		return nil
	}
	return ref
}

// Path resolves an absolute path against the unit root of scope, then
// against the global root.
func Path(path []string, scope *symbols.Scope) symbols.Symbol {
	return newResolver().absolute(path, scope, false)
}

type resolver struct {
	active map[*symbols.Usage]bool
}

func newResolver() *resolver {
	return &resolver{active: make(map[*symbols.Usage]bool)}
}

func (r *resolver) name(n *ast.Name, env symbols.Env) symbols.Symbol {
	scope := env.Scope()
	switch {
	case n.Root:
		return r.absolute(n.Parts, scope, false)
	case n.Self:
		return r.inModule(scope.Module(), n.Parts, false, false)
	}

	base := env.Find(n.Base())
	if base == nil {
		if u, home := visibleUsage(scope, n.Base()); u != nil {
			if ref := r.usage(u, home); ref != nil {
				base = ref
			}
		}
	}
	if base == nil {
		if g := scope.Global(); g != nil && g.Child(n.Base()) != nil {
			base = g.Get(n.Base(), false)
		}
	}
	if base == nil {
		return nil
	}
	base = symbols.Deref(base)
	if !n.Qualified() {
		return base
	}
	mod := symbols.ModuleOf(base)
	if mod == nil {
		return nil
	}
	return r.inModule(mod, n.Parts[1:], true, false)
}

// visibleUsage finds an import called key in the module scopes enclosing
// scope, innermost first.
func visibleUsage(scope *symbols.Scope, key string) (*symbols.Usage, *symbols.Scope) {
	for sc := scope.Module(); sc != nil; sc = sc.Outer() {
		if sc.Usages == nil {
			continue
		}
		if u := sc.Usages.Get(key); u != nil {
			return u, sc
		}
	}
	return nil, nil
}

// absolute walks path from the unit root, then from the global root.
func (r *resolver) absolute(path []string, scope *symbols.Scope, allowModule bool) symbols.Symbol {
	if sym := r.inModule(scope.Root(), path, false, allowModule); sym != nil {
		return sym
	}
	if g := scope.Global(); g != nil && g != scope.Root() {
		return r.inModule(g, path, true, allowModule)
	}
	return nil
}

// inModule resolves path inside mod. Intermediate segments must name
// modules (or imports of modules); the final one must name a symbol.
// Once the walk has crossed into another module only public imports are
// followed.
func (r *resolver) inModule(mod *symbols.Scope, path []string, crossed, allowModule bool) symbols.Symbol {
	last := len(path) - 1
	for _, part := range path[:last] {
		if next := mod.Child(part); next != nil {
			mod, crossed = next, true
			continue
		}
		ref := r.moduleUsage(mod, part, crossed)
		if ref == nil {
			return nil
		}
		next := symbols.ModuleOf(ref)
		if next == nil {
			return nil
		}
		mod, crossed = next, true
	}

	item := path[last]
	if mod.Child(item) != nil {
		if !allowModule {
			return nil
		}
		return mod.Get(item, false)
	}
	if sym := mod.Get(item, false); sym != nil {
		return symbols.Deref(sym)
	}
	if ref := r.moduleUsage(mod, item, crossed); ref != nil {
		if !allowModule && symbols.Deref(ref).Kind() == symbols.KindModule {
			return nil
		}
		return symbols.Deref(ref)
	}
	return nil
}

func (r *resolver) moduleUsage(mod *symbols.Scope, key string, crossed bool) *symbols.Ref {
	if mod.Usages == nil {
		return nil
	}
	u := mod.Usages.Get(key)
	if u == nil || (crossed && !u.Pub) {
		return nil
	}
	return r.usage(u, mod)
}

// usage resolves u, declared in home, and caches the result on it.
func (r *resolver) usage(u *symbols.Usage, home *symbols.Scope) *symbols.Ref {
	if u.Ref != nil {
		return u.Ref
	}
	if r.active[u] {
		return nil
	}
	r.active[u] = true
	defer delete(r.active, u)

	var target symbols.Symbol
	if u.Self {
		target = r.inModule(home.Module(), u.Path, false, true)
	} else {
		target = r.absolute(u.Path, home, true)
	}
	if target == nil {
		return nil
	}
	u.Ref = symbols.NewRef(u.Item, u.Loc, target, u.Path)
	return u.Ref
}
