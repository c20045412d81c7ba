// Package collect builds the scope tree of a unit. Every declaration is
// registered as a symbol, every scope-creating node gets its scope in
// Info.Scopes, and use declarations become Usage records on the
// enclosing module.
package collect

import (
	"fmt"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/source"
	"github.com/funvibe/phsc/internal/symbols"
)

const (
	ctorName = "constructor"
	dtorName = "destructor"
)

type Collector struct {
	ast.Walker

	sink   *diagnostics.Sink
	info   *symbols.Info
	opts   *config.Options
	ids    *symbols.IDSource
	global *symbols.Scope

	unit  *symbols.Scope
	scope *symbols.Scope
	level int  // function nesting depth
	trait bool // collecting a trait body: bodies are not entered

	// groups holds one overlay per open use group, innermost last.
	groups  []*symbols.UsageMap
	classes []*classDecl
}

// classDecl remembers where a class-like was declared for linking.
type classDecl struct {
	sym  *symbols.ClassSymbol
	home *symbols.Scope
}

func New(global *symbols.Scope, ids *symbols.IDSource, info *symbols.Info, sink *diagnostics.Sink, opts *config.Options) *Collector {
	c := &Collector{sink: sink, info: info, opts: opts, ids: ids, global: global}
	c.Walker = ast.Walker{Self: c}
	return c
}

// Collect walks unit and returns its root scope. Inheritance and trait
// composition are linked once the whole unit is known.
func (c *Collector) Collect(unit *ast.Unit) *symbols.Scope {
	unit.Accept(c)
	c.link()
	return c.unit
}

// attach records the scope of node. Scoping a node twice means an
// earlier pass handed us a shared subtree.
func (c *Collector) attach(node ast.Node, scope *symbols.Scope) {
	if prev, ok := c.info.Scopes[node]; ok {
		panic(fmt.Sprintf("collect: %s at %s already owns %s", node.Kind(), node.Loc(), prev))
	}
	c.info.Scopes[node] = scope
	if scope.Node == nil {
		scope.Node = node
	}
}

// enter makes scope current and returns the function restoring the
// previous one.
func (c *Collector) enter(scope *symbols.Scope) func() {
	prev := c.scope
	c.scope = scope
	return func() { c.scope = prev }
}

// declare binds sym in the current scope. A name already bound there is
// reported and the new symbol stays unbound, but it is still recorded
// as the node's definition.
func (c *Collector) declare(name string, sym symbols.Symbol, node ast.Node) bool {
	b := sym.Common()
	b.Node = node
	c.info.Defs[node] = sym
	if c.scope.Add(name, sym) {
		return true
	}
	prev := c.scope.Get(name, false)
	c.sink.Errorf(diagnostics.ErrC002, b.Loc, "redefinition of symbol `%s`", name)
	c.sink.Infof(prev.Common().Loc, "previous symbol was here")
	return false
}

func (c *Collector) VisitUnit(n *ast.Unit) {
	c.unit = symbols.NewUnitScope(c.ids, n.File, c.global)
	c.attach(n, c.unit)
	c.scope = c.unit
	c.Walker.VisitUnit(n)
}

func (c *Collector) VisitModule(n *ast.Module) {
	if n.Name == nil {
		c.attach(n, c.unit)
		defer c.enter(c.unit)()
		c.Walker.VisitModule(n)
		return
	}

	base := c.scope.Module()
	if n.Name.Root {
		base = c.unit
	}
	mod, clash := base.Fetch(n.Name.Parts, n.Loc())
	if clash != nil {
		c.sink.Errorf(diagnostics.ErrC003, n.Loc(), "cannot declare module `%s`: `%s` is already a %s",
			n.Name, clash.Common().Raw, clash.Kind())
		c.sink.Infof(clash.Common().Loc, "previous symbol was here")
		return
	}
	c.attach(n, mod)
	defer c.enter(mod)()
	c.Walker.VisitModule(n)
}

func (c *Collector) VisitBlock(n *ast.Block) {
	s := symbols.NewScope(symbols.ScopeBlock, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	c.Walker.VisitBlock(n)
}

func (c *Collector) VisitVarDecl(n *ast.VarDecl) {
	c.variables(n.Items, symbols.FlagsFromMods(n.Mods))
}

func (c *Collector) VisitEnumDecl(n *ast.EnumDecl) {
	c.variables(n.Items, symbols.FlagsFromMods(n.Mods)|symbols.FlagConst)
}

// variables declares one symbol per item. Values start out as None so
// the reducer can tell unanalysed from unknown.
func (c *Collector) variables(items []*ast.VarItem, flags symbols.Flags) {
	for _, item := range items {
		sym := symbols.NewVar(item.Name, item.Loc(), flags)
		sym.Value = symbols.None()
		c.declare(item.Name, sym, item)
		if item.Init != nil && !c.trait {
			item.Init.Accept(c)
		}
	}
}

func (c *Collector) VisitFnDecl(n *ast.FnDecl) {
	sym := symbols.NewFn(n.Name, n.Loc(), symbols.FlagsFromMods(n.Mods))
	sym.Nested = c.level > 0
	c.declare(n.Name, sym, n)
	c.function(n, sym, n.Params, n.Body, "")
}

func (c *Collector) VisitFnExpr(n *ast.FnExpr) {
	if c.trait {
		return
	}
	sym := symbols.NewFn(n.Name, n.Loc(), 0)
	sym.Expr = true
	sym.Nested = c.level > 0
	sym.Node = n
	c.info.Defs[n] = sym
	c.function(n, sym, n.Params, n.Body, n.Name)
}

func (c *Collector) VisitCtorDecl(n *ast.CtorDecl) {
	ms := c.members("constructor")
	sym := c.slot(ctorName, n, n.Mods, ms)
	if ms.Ctor != nil {
		c.sink.Warnf(diagnostics.ErrC004, n.Loc(), "duplicate constructor")
	}
	ms.Ctor = sym
	c.function(n, sym, n.Params, n.Body, "")
}

func (c *Collector) VisitDtorDecl(n *ast.DtorDecl) {
	ms := c.members("destructor")
	sym := c.slot(dtorName, n, n.Mods, ms)
	if ms.Dtor != nil {
		c.sink.Warnf(diagnostics.ErrC004, n.Loc(), "duplicate destructor")
	}
	ms.Dtor = sym
	c.function(n, sym, n.Params, n.Body, "")
}

func (c *Collector) VisitGetterDecl(n *ast.GetterDecl) {
	ms := c.members("getter")
	sym := c.slot(n.Name, n, n.Mods, ms)
	if ms.Getters.Set(n.Name, sym) != nil {
		c.sink.Warnf(diagnostics.ErrC004, n.Loc(), "duplicate getter `%s`", n.Name)
	}
	c.function(n, sym, n.Params, n.Body, "")
}

func (c *Collector) VisitSetterDecl(n *ast.SetterDecl) {
	ms := c.members("setter")
	sym := c.slot(n.Name, n, n.Mods, ms)
	if ms.Setters.Set(n.Name, sym) != nil {
		c.sink.Warnf(diagnostics.ErrC004, n.Loc(), "duplicate setter `%s`", n.Name)
	}
	c.function(n, sym, n.Params, n.Body, "")
}

// members returns the current member scope; what names the declaration
// that needs one.
func (c *Collector) members(what string) *symbols.Scope {
	if c.scope.Kind() != symbols.ScopeMember {
		panic(fmt.Sprintf("collect: %s declared in a %s", what, c.scope))
	}
	return c.scope
}

// slot builds the symbol of a member stored outside the member table.
func (c *Collector) slot(name string, n ast.Node, mods ast.Mods, ms *symbols.Scope) *symbols.FnSymbol {
	sym := symbols.NewFn(name, n.Loc(), symbols.FlagsFromMods(mods))
	sym.Node = n
	sym.Scope = ms
	c.info.Defs[n] = sym
	return sym
}

// function creates the parameter scope of a function-like and collects
// its body one level deeper. A named function literal can see itself
// under self.
func (c *Collector) function(n ast.Node, sym *symbols.FnSymbol, params []*ast.Param, body ast.Node, self string) {
	if c.trait {
		return
	}
	fs := symbols.NewScope(symbols.ScopeFunction, c.scope)
	c.attach(n, fs)
	defer c.enter(fs)()

	if self != "" {
		fs.Add(self, sym)
	}
	for _, p := range params {
		sym.Params = append(sym.Params, c.param(p, symbols.FlagParam))
	}

	c.level++
	defer func() { c.level-- }()
	if body != nil {
		body.Accept(c)
	}
}

func (c *Collector) param(p *ast.Param, extra symbols.Flags) *symbols.VarSymbol {
	flags := symbols.FlagsFromMods(p.Mods) | extra
	if p.Rest {
		flags |= symbols.FlagRest
	}
	sym := symbols.NewVar(p.Name, p.Loc(), flags)
	sym.Value = symbols.None()
	sym.Hint = p.Hint
	c.declare(p.Name, sym, p)
	if p.Init != nil {
		p.Init.Accept(c)
	}
	return sym
}

func (c *Collector) VisitForStmt(n *ast.ForStmt) {
	s := symbols.NewScope(symbols.ScopeLoop, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	c.Walker.VisitForStmt(n)
}

func (c *Collector) VisitForInStmt(n *ast.ForInStmt) {
	if n.Expr != nil {
		n.Expr.Accept(c)
	}

	s := symbols.NewScope(symbols.ScopeLoop, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	if n.Key != nil {
		c.param(n.Key, 0)
	}
	c.param(n.Value, 0)
	if n.Body != nil {
		n.Body.Accept(c)
	}
}

func (c *Collector) VisitSwitchStmt(n *ast.SwitchStmt) {
	if n.Expr != nil {
		n.Expr.Accept(c)
	}

	s := symbols.NewScope(symbols.ScopeBlock, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	for _, cs := range n.Cases {
		cs.Accept(c)
	}
}

func (c *Collector) VisitTryStmt(n *ast.TryStmt) {
	s := symbols.NewScope(symbols.ScopeBlock, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	c.Walker.VisitTryStmt(n)
}

func (c *Collector) VisitCatchItem(n *ast.CatchItem) {
	s := symbols.NewScope(symbols.ScopeBlock, c.scope)
	c.attach(n, s)
	defer c.enter(s)()
	if n.Var != "" {
		sym := symbols.NewVar(n.Var, n.Loc(), 0)
		sym.Value = symbols.Unknown()
		c.declare(n.Var, sym, n)
	}
	n.Body.Accept(c)
}

func (c *Collector) VisitUseDecl(n *ast.UseDecl) {
	c.use(n.Item, nil, n.Pub)
}

func (c *Collector) use(item ast.UseItem, group *symbols.Usage, pub bool) {
	switch it := item.(type) {
	case *ast.Name:
		c.addUsage(c.usage(it.Loc(), it, "", group, pub))
	case *ast.UseAlias:
		c.addUsage(c.usage(it.Loc(), it.Name, it.Alias, group, pub))
	case *ast.UseUnpack:
		base := c.usage(it.Loc(), it.Base, "", group, pub)
		c.groups = append(c.groups, symbols.NewUsageMap())
		for _, sub := range it.Items {
			c.use(sub, base, pub)
		}
		c.groups = c.groups[:len(c.groups)-1]
	default:
		panic(fmt.Sprintf("collect: unexpected use item %T", item))
	}
}

// usage builds the record for name imported inside group. With relative
// imports a leading segment naming a visible import is replaced by that
// import's path; otherwise group members extend the group's path.
func (c *Collector) usage(loc *source.Location, name *ast.Name, alias string, group *symbols.Usage, pub bool) *symbols.Usage {
	path := name.Parts
	root, self := name.Root, name.Self

	var rel *symbols.Usage
	if c.opts.RelativeImports && !root && !self {
		rel = c.visibleUsage(name.Base())
	}
	switch {
	case rel != nil:
		path = join(rel.Path, name.Parts[1:])
		root, self = rel.Root, rel.Self
	case group != nil:
		path = join(group.Path, name.Parts)
		root, self = group.Root, group.Self
	}

	u := symbols.NewUsage(loc, path, alias, pub)
	u.Root, u.Self = root, self
	u.Base = group
	return u
}

// visibleUsage looks key up in the open groups, innermost first, then
// in the enclosing module.
func (c *Collector) visibleUsage(key string) *symbols.Usage {
	for i := len(c.groups) - 1; i >= 0; i-- {
		if u := c.groups[i].Get(key); u != nil {
			return u
		}
	}
	return c.scope.Module().Usages.Get(key)
}

func (c *Collector) addUsage(u *symbols.Usage) {
	umap := c.scope.Module().Usages
	if !umap.Add(u) {
		prev := umap.Get(u.Key())
		c.sink.Errorf(diagnostics.ErrC001, u.Loc, "duplicate import of a symbol named `%s`", u.Key())
		c.sink.Infof(prev.Loc, "previous import was here")
		return
	}
	if n := len(c.groups); n > 0 {
		c.groups[n-1].Add(u)
	}
}

func join(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}
