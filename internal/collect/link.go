package collect

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/lookup"
	"github.com/funvibe/phsc/internal/symbols"
)

type linkState int

const (
	unlinked linkState = iota
	linking
	linked
)

// link runs after the walk: traits are mixed into classes first, so
// that a subclass inherits mixed-in members, then every class inherits
// from its super class.
func (c *Collector) link() {
	homes := make(map[*symbols.ClassSymbol]*symbols.Scope, len(c.classes))
	for _, d := range c.classes {
		homes[d.sym] = d.home
		if d.sym.Kind() == symbols.KindClass {
			c.mix(d)
		}
	}

	state := make(map[*symbols.ClassSymbol]linkState)
	var inherit func(cls *symbols.ClassSymbol)
	inherit = func(cls *symbols.ClassSymbol) {
		home, local := homes[cls]
		if !local || state[cls] != unlinked {
			return
		}
		state[cls] = linking
		defer func() { state[cls] = linked }()

		if cls.SuperName == nil {
			return
		}
		sup := resolveClass(cls.SuperName, home)
		switch {
		case sup == nil || sup.Kind() != symbols.KindClass:
			c.sink.Errorf(diagnostics.ErrC005, cls.SuperName.Loc(), "unknown super class `%s`", cls.SuperName)
			return
		case sup == cls || state[sup] == linking:
			c.sink.Errorf(diagnostics.ErrC005, cls.SuperName.Loc(), "class `%s` inherits from itself", cls.Name)
			return
		}
		inherit(sup)
		cls.Super = sup

		sup.Inherit.Each(func(name string, sym symbols.Symbol) {
			if !sym.Common().Flags.Has(symbols.FlagPrivate) {
				cls.Inherit.Set(name, sym)
			}
		})
		sup.Members.Table().Each(func(name string, sym symbols.Symbol) {
			if !sym.Common().Flags.Has(symbols.FlagPrivate) {
				cls.Inherit.Set(name, sym)
			}
		})
	}
	for _, d := range c.classes {
		inherit(d.sym)
	}
	for _, d := range c.classes {
		c.implement(d)
	}
}

// implement resolves the interfaces a class implements or an interface
// extends.
func (c *Collector) implement(d *classDecl) {
	for _, name := range d.sym.IfaceNames {
		iface := resolveClass(name, d.home)
		switch {
		case iface == nil:
			c.sink.Errorf(diagnostics.ErrC007, name.Loc(), "unknown interface `%s`", name)
			continue
		case iface.Kind() != symbols.KindIface:
			c.sink.Errorf(diagnostics.ErrC007, name.Loc(), "`%s` is a %s, not an interface", name, iface.Kind())
			continue
		}
		c.info.Uses[name] = iface
		d.sym.Ifaces = append(d.sym.Ifaces, iface)
	}
}

func resolveClass(name *ast.Name, home *symbols.Scope) *symbols.ClassSymbol {
	cls, _ := symbols.Deref(lookup.Name(name, home, false)).(*symbols.ClassSymbol)
	return cls
}

// mix clones the members of every trait used by d into d's member
// scope. Members the class declares itself win over trait members.
// Traits used by traits are mixed in as well, each at most once.
func (c *Collector) mix(d *classDecl) {
	cls := d.sym
	queue := append([]*ast.Name(nil), cls.Traits...)
	seen := make(map[*symbols.ClassSymbol]bool)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		t := resolveClass(name, d.home)
		if t == nil {
			c.sink.Errorf(diagnostics.ErrC006, name.Loc(), "unknown trait `%s`", name)
			continue
		}
		if t.Kind() != symbols.KindTrait {
			c.sink.Errorf(diagnostics.ErrC006, name.Loc(), "`%s` is a %s, not a trait", name, t.Kind())
			continue
		}
		if seen[t] {
			continue
		}
		seen[t] = true

		decl, ok := t.Node.(*ast.TraitDecl)
		if !ok {
			continue
		}
		for _, m := range decl.Members {
			if use, ok := m.(*ast.TraitUse); ok {
				queue = append(queue, use.Traits...)
				continue
			}
			c.mixMember(cls, t, m)
		}
	}
}

func (c *Collector) mixMember(cls, t *symbols.ClassSymbol, orig ast.Stmt) {
	ms := cls.Members
	cp := ast.Clone(orig)
	switch n := cp.(type) {
	case *ast.VarDecl:
		if n.Items = free(ms, n.Items); len(n.Items) == 0 {
			return
		}
	case *ast.EnumDecl:
		if n.Items = free(ms, n.Items); len(n.Items) == 0 {
			return
		}
	case *ast.FnDecl:
		if ms.Has(n.Name) {
			return
		}
	case *ast.CtorDecl:
		if ms.Ctor != nil {
			return
		}
	case *ast.DtorDecl:
		if ms.Dtor != nil {
			return
		}
	case *ast.GetterDecl:
		if ms.Getters.Has(n.Name) {
			return
		}
	case *ast.SetterDecl:
		if ms.Setters.Has(n.Name) {
			return
		}
	}

	restore := c.enter(ms)
	level, inTrait := c.level, c.trait
	c.level, c.trait = 0, false
	cp.Accept(c)
	restore()
	c.level, c.trait = level, inTrait

	c.origins(t, cp)
}

// free keeps the items whose names the class has not declared yet.
func free(ms *symbols.Scope, items []*ast.VarItem) []*ast.VarItem {
	var out []*ast.VarItem
	for _, item := range items {
		if !ms.Has(item.Name) {
			out = append(out, item)
		}
	}
	return out
}

// origins points each symbol declared by the clone cp at the member of
// trait t it was cloned from.
func (c *Collector) origins(t *symbols.ClassSymbol, cp ast.Stmt) {
	src := t.Members
	set := func(n ast.Node, origin symbols.Symbol) {
		if sym := c.info.Defs[n]; sym != nil && origin != nil {
			sym.Common().Origin = origin
		}
	}
	switch n := cp.(type) {
	case *ast.VarDecl:
		for _, item := range n.Items {
			set(item, src.Get(item.Name, false))
		}
	case *ast.EnumDecl:
		for _, item := range n.Items {
			set(item, src.Get(item.Name, false))
		}
	case *ast.FnDecl:
		set(n, src.Get(n.Name, false))
	case *ast.CtorDecl:
		if src.Ctor != nil {
			set(n, src.Ctor)
		}
	case *ast.DtorDecl:
		if src.Dtor != nil {
			set(n, src.Dtor)
		}
	case *ast.GetterDecl:
		set(n, src.Getters.Get(n.Name))
	case *ast.SetterDecl:
		set(n, src.Setters.Get(n.Name))
	}
}
