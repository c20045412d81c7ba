package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/source"
	"github.com/funvibe/phsc/internal/symbols"
)

func loc(line uint) *source.Location { return source.New("c.phs", line, 1) }
func at(line uint) ast.Pos           { return ast.At(loc(line)) }

type result struct {
	unit *symbols.Scope
	info *symbols.Info
	sink *diagnostics.Sink
}

func collectWith(opts *config.Options, stmts ...ast.Stmt) *result {
	ids := &symbols.IDSource{}
	info := symbols.NewInfo()
	sink := diagnostics.NewSink(diagnostics.Info, false)
	unit := &ast.Unit{Pos: at(1), File: "c.phs", Body: stmts}
	scope := New(symbols.NewGlobalScope(ids), ids, info, sink, opts).Collect(unit)
	return &result{unit: scope, info: info, sink: sink}
}

func collect(stmts ...ast.Stmt) *result {
	return collectWith(config.Default(), stmts...)
}

func use(line uint, path string) *ast.UseDecl {
	return &ast.UseDecl{Pos: at(line), Item: ast.NewName(loc(line), path)}
}

func varDecl(line uint, mods ast.Mods, names ...string) *ast.VarDecl {
	d := &ast.VarDecl{Pos: at(line), Mods: mods}
	for _, n := range names {
		d.Items = append(d.Items, &ast.VarItem{Pos: at(line), Name: n})
	}
	return d
}

func fn(line uint, name string, params []*ast.Param, body ...ast.Stmt) *ast.FnDecl {
	return &ast.FnDecl{Pos: at(line), Name: name, Params: params, Body: ast.NewBlock(loc(line), body...)}
}

func codes(sink *diagnostics.Sink, sev diagnostics.Severity) []diagnostics.ErrorCode {
	var out []diagnostics.ErrorCode
	for _, d := range sink.Filter(sev) {
		out = append(out, d.Code)
	}
	return out
}

func TestDuplicateImportKeepsFirst(t *testing.T) {
	first, second := use(1, "a::b"), use(2, "a::b")
	r := collect(first, second)

	errs := r.sink.Filter(diagnostics.Error)
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrC001, errs[0].Code)
	assert.Equal(t, "duplicate import of a symbol named `b`", errs[0].Message)
	assert.Equal(t, uint(2), errs[0].Loc.Line)

	infos := r.sink.Filter(diagnostics.Info)
	require.Len(t, infos, 1)
	assert.Equal(t, "previous import was here", infos[0].Message)
	assert.Equal(t, uint(1), infos[0].Loc.Line)

	require.Equal(t, 1, r.unit.Usages.Len())
	assert.Equal(t, uint(1), r.unit.Usages.Get("b").Loc.Line)
}

func TestUseGroupsAndAliases(t *testing.T) {
	group := &ast.UseUnpack{Pos: at(1), Base: ast.NewName(loc(1), "::a"), Items: []ast.UseItem{
		ast.NewName(loc(1), "b"),
		&ast.UseAlias{Pos: at(1), Name: ast.NewName(loc(1), "c::d"), Alias: "e"},
	}}
	r := collect(&ast.UseDecl{Pos: at(1), Pub: true, Item: group})

	require.Equal(t, 2, r.unit.Usages.Len())
	b := r.unit.Usages.Get("b")
	assert.Equal(t, []string{"a", "b"}, b.Path)
	assert.True(t, b.Root)
	assert.True(t, b.Pub)
	require.NotNil(t, b.Base)
	assert.Equal(t, []string{"a"}, b.Base.Path)

	e := r.unit.Usages.Get("e")
	assert.Equal(t, []string{"a", "c", "d"}, e.Path)
	assert.Equal(t, "d", e.Orig)
	assert.False(t, r.unit.Usages.Has("a"), "group base is not an import")
}

func TestRelativeImports(t *testing.T) {
	stmts := func() []ast.Stmt {
		return []ast.Stmt{
			&ast.UseDecl{Pos: at(1), Item: &ast.UseAlias{Pos: at(1), Name: ast.NewName(loc(1), "x::y"), Alias: "z"}},
			use(2, "z::w"),
		}
	}

	r := collect(stmts()...)
	assert.Equal(t, []string{"z", "w"}, r.unit.Usages.Get("w").Path)

	opts := config.Default()
	opts.RelativeImports = true
	r = collectWith(opts, stmts()...)
	assert.Equal(t, []string{"x", "y", "w"}, r.unit.Usages.Get("w").Path)
}

func TestFunctionScopes(t *testing.T) {
	inner := fn(3, "inner", nil)
	outer := fn(1, "outer", []*ast.Param{
		{Pos: at(1), Name: "a", Hint: "int"},
		{Pos: at(1), Name: "rest", Rest: true},
	}, varDecl(2, 0, "local"), inner)
	r := collect(outer)

	sym, ok := r.unit.Get("outer", false).(*symbols.FnSymbol)
	require.True(t, ok)
	assert.False(t, sym.Nested)
	require.Len(t, sym.Params, 2)
	assert.True(t, sym.Params[0].Flags.Has(symbols.FlagParam))
	assert.Equal(t, "int", sym.Params[0].Hint)
	assert.True(t, sym.Params[1].Flags.Has(symbols.FlagRest))
	assert.Equal(t, symbols.ValNone, sym.Params[0].Value.Kind)

	fs := r.info.ScopeOf(outer)
	require.NotNil(t, fs)
	assert.Equal(t, symbols.ScopeFunction, fs.Kind())
	assert.True(t, fs.Has("a"))

	body := r.info.ScopeOf(outer.Body)
	require.NotNil(t, body)
	assert.Same(t, fs, body.Outer())
	assert.True(t, body.Has("local"))

	nested, ok := body.Get("inner", false).(*symbols.FnSymbol)
	require.True(t, ok)
	assert.True(t, nested.Nested)
	assert.Same(t, inner, nested.Node)
}

func TestFnExprSeesItself(t *testing.T) {
	expr := &ast.FnExpr{Pos: at(1), Name: "self", Body: ast.NewBlock(loc(1))}
	decl := &ast.VarDecl{Pos: at(1), Items: []*ast.VarItem{{Pos: at(1), Name: "f", Init: expr}}}
	r := collect(decl)

	sym, ok := r.info.DefOf(expr).(*symbols.FnSymbol)
	require.True(t, ok)
	assert.True(t, sym.Expr)
	assert.Same(t, sym, r.info.ScopeOf(expr).Get("self", false))
	assert.Nil(t, r.unit.Get("self", false))
}

func TestRedefinition(t *testing.T) {
	r := collect(varDecl(1, 0, "x"), fn(2, "x", nil))

	assert.Equal(t, []diagnostics.ErrorCode{diagnostics.ErrC002}, codes(r.sink, diagnostics.Error))
	infos := r.sink.Filter(diagnostics.Info)
	require.Len(t, infos, 1)
	assert.Equal(t, uint(1), infos[0].Loc.Line)
	assert.Equal(t, symbols.KindVar, r.unit.Get("x", false).Kind())
}

func TestModules(t *testing.T) {
	mod := &ast.Module{Pos: at(1), Name: ast.NewName(loc(1), "a::b"), Body: []ast.Stmt{varDecl(2, 0, "x")}}
	again := &ast.Module{Pos: at(3), Name: ast.NewName(loc(3), "a"), Body: []ast.Stmt{varDecl(4, 0, "y")}}
	root := &ast.Module{Pos: at(5), Body: []ast.Stmt{varDecl(6, 0, "z")}}
	r := collect(mod, again, root)

	ab := r.unit.Resolve([]string{"a", "b"})
	require.NotNil(t, ab)
	assert.Same(t, ab, r.info.ScopeOf(mod))
	assert.True(t, ab.Has("x"))
	assert.True(t, r.unit.Child("a").Has("y"))
	assert.True(t, r.unit.Has("z"))
	assert.Empty(t, r.sink.Filter(diagnostics.Error))
}

func TestModuleCollisionSkipsBody(t *testing.T) {
	mod := &ast.Module{Pos: at(2), Name: ast.NewName(loc(2), "a"), Body: []ast.Stmt{varDecl(3, 0, "x")}}
	r := collect(varDecl(1, 0, "a"), mod)

	assert.Equal(t, []diagnostics.ErrorCode{diagnostics.ErrC003}, codes(r.sink, diagnostics.Error))
	assert.Nil(t, r.unit.Child("a"))
	assert.Nil(t, r.info.ScopeOf(mod))
}

func TestMemberSlots(t *testing.T) {
	first := &ast.CtorDecl{Pos: at(2), Body: ast.NewBlock(loc(2))}
	second := &ast.CtorDecl{Pos: at(3), Body: ast.NewBlock(loc(3))}
	getter := &ast.GetterDecl{Pos: at(4), Name: "len", Body: ast.NewBlock(loc(4))}
	cls := &ast.ClassDecl{Pos: at(1), Name: "C", Members: []ast.Stmt{
		first, second, getter, varDecl(5, ast.ModPrivate|ast.ModStatic, "count"),
	}}
	r := collect(cls)

	warnings := r.sink.Filter(diagnostics.Warning)
	require.Len(t, warnings, 1)
	assert.Equal(t, diagnostics.ErrC004, warnings[0].Code)
	assert.Equal(t, "duplicate constructor", warnings[0].Message)
	assert.False(t, r.sink.HasErrors())

	sym := r.unit.Get("C", false).(*symbols.ClassSymbol)
	ms := sym.Members
	require.NotNil(t, ms)
	assert.Same(t, ms, r.info.ScopeOf(cls))
	assert.Same(t, second, ms.Ctor.Node)
	assert.True(t, ms.Getters.Has("len"))
	assert.False(t, ms.Has("len"), "accessors live outside the member table")

	count := ms.Get("count", false)
	require.NotNil(t, count)
	assert.True(t, count.Common().Flags.Has(symbols.FlagPrivate|symbols.FlagStatic))
}

func TestEnumItemsAreConstants(t *testing.T) {
	enum := &ast.EnumDecl{Pos: at(1), Items: []*ast.VarItem{{Pos: at(1), Name: "A"}, {Pos: at(1), Name: "B"}}}
	r := collect(enum)
	for _, n := range []string{"A", "B"} {
		assert.True(t, r.unit.Get(n, false).Common().Flags.Has(symbols.FlagConst), n)
	}
}

func TestLoopAndCatchScopes(t *testing.T) {
	forIn := &ast.ForInStmt{
		Pos:   at(1),
		Key:   &ast.Param{Pos: at(1), Name: "k"},
		Value: &ast.Param{Pos: at(1), Name: "v"},
		Expr:  ast.NewName(loc(1), "list"),
		Body:  ast.NewBlock(loc(1)),
	}
	catch := &ast.CatchItem{Pos: at(3), Var: "e", Body: ast.NewBlock(loc(3))}
	try := &ast.TryStmt{Pos: at(2), Body: ast.NewBlock(loc(2)), Catches: []*ast.CatchItem{catch}}
	r := collect(forIn, try)

	ls := r.info.ScopeOf(forIn)
	require.NotNil(t, ls)
	assert.Equal(t, symbols.ScopeLoop, ls.Kind())
	assert.Equal(t, []string{"k", "v"}, ls.Table().Names())
	assert.Same(t, ls, r.info.ScopeOf(forIn.Body).Outer())

	cs := r.info.ScopeOf(catch)
	require.NotNil(t, cs)
	assert.True(t, cs.Has("e"))
	assert.Same(t, r.info.ScopeOf(try), cs.Outer())
}

func TestTraitBodiesAreNotEntered(t *testing.T) {
	method := fn(2, "f", []*ast.Param{{Pos: at(2), Name: "p"}})
	trait := &ast.TraitDecl{Pos: at(1), Name: "T", Members: []ast.Stmt{method}}
	r := collect(trait)

	sym := r.unit.Get("T", false).(*symbols.ClassSymbol)
	assert.Equal(t, symbols.KindTrait, sym.Kind())
	assert.NotNil(t, sym.Members.Get("f", false))
	assert.Nil(t, r.info.ScopeOf(method))
	assert.Nil(t, r.info.ScopeOf(method.Body))
}

func TestTraitMixing(t *testing.T) {
	method := fn(2, "f", nil, varDecl(2, 0, "tmp"))
	trait := &ast.TraitDecl{Pos: at(1), Name: "T", Members: []ast.Stmt{
		method, varDecl(3, 0, "x", "y"),
	}}
	cls := &ast.ClassDecl{Pos: at(4), Name: "C", Members: []ast.Stmt{
		&ast.TraitUse{Pos: at(5), Traits: []*ast.Name{ast.NewName(loc(5), "T")}},
		varDecl(6, 0, "x"),
	}}
	r := collect(trait, cls)
	require.False(t, r.sink.HasErrors(), "%v", r.sink.Diagnostics())

	tsym := r.unit.Get("T", false).(*symbols.ClassSymbol)
	csym := r.unit.Get("C", false).(*symbols.ClassSymbol)

	f := csym.Members.Get("f", false)
	require.NotNil(t, f)
	assert.Same(t, tsym.Members.Get("f", false), f.Common().Origin)
	assert.NotSame(t, method, f.Common().Node, "member node is a clone")
	assert.NotNil(t, r.info.ScopeOf(f.Common().Node), "mixed bodies are collected")

	y := csym.Members.Get("y", false)
	require.NotNil(t, y)
	assert.Same(t, tsym.Members.Get("y", false), y.Common().Origin)

	x := csym.Members.Get("x", false)
	assert.Nil(t, x.Common().Origin, "class members win over trait members")
	assert.Equal(t, uint(6), x.Common().Loc.Line)
}

func TestUnknownTrait(t *testing.T) {
	cls := &ast.ClassDecl{Pos: at(2), Name: "C", Members: []ast.Stmt{
		&ast.TraitUse{Pos: at(3), Traits: []*ast.Name{ast.NewName(loc(3), "Nope"), ast.NewName(loc(3), "D")}},
	}}
	other := &ast.ClassDecl{Pos: at(1), Name: "D"}
	r := collect(other, cls)
	assert.Equal(t, []diagnostics.ErrorCode{diagnostics.ErrC006, diagnostics.ErrC006}, codes(r.sink, diagnostics.Error))
}

func TestInheritance(t *testing.T) {
	base := &ast.ClassDecl{Pos: at(1), Name: "A", Members: []ast.Stmt{
		fn(2, "pub", nil),
		&ast.FnDecl{Pos: at(3), Mods: ast.ModPrivate, Name: "hidden", Body: ast.NewBlock(loc(3))},
	}}
	mid := &ast.ClassDecl{Pos: at(4), Name: "B", Super: ast.NewName(loc(4), "A")}
	leaf := &ast.ClassDecl{Pos: at(5), Name: "C", Super: ast.NewName(loc(5), "B")}
	r := collect(leaf, mid, base)
	require.False(t, r.sink.HasErrors())

	a := r.unit.Get("A", false).(*symbols.ClassSymbol)
	b := r.unit.Get("B", false).(*symbols.ClassSymbol)
	c := r.unit.Get("C", false).(*symbols.ClassSymbol)
	assert.Same(t, a, b.Super)
	assert.Same(t, b, c.Super)

	assert.True(t, c.Inherit.Has("pub"))
	assert.False(t, c.Inherit.Has("hidden"))
	assert.Same(t, a.Members.Get("pub", false), c.Member("pub"))
}

func TestUnknownSuperClass(t *testing.T) {
	self := &ast.ClassDecl{Pos: at(1), Name: "S", Super: ast.NewName(loc(1), "S")}
	missing := &ast.ClassDecl{Pos: at(2), Name: "M", Super: ast.NewName(loc(2), "Gone")}
	r := collect(self, missing)
	assert.Equal(t, []diagnostics.ErrorCode{diagnostics.ErrC005, diagnostics.ErrC005}, codes(r.sink, diagnostics.Error))
}

func TestInterfaces(t *testing.T) {
	base := &ast.IfaceDecl{Pos: at(1), Name: "Countable"}
	sub := &ast.IfaceDecl{Pos: at(2), Name: "Sized", Ifaces: []*ast.Name{ast.NewName(loc(2), "Countable")}}
	implName := ast.NewName(loc(3), "Sized")
	cls := &ast.ClassDecl{Pos: at(3), Name: "List", Ifaces: []*ast.Name{implName}}
	r := collect(cls, sub, base)
	require.False(t, r.sink.HasErrors(), "%v", r.sink.Diagnostics())

	countable := r.unit.Get("Countable", false).(*symbols.ClassSymbol)
	sized := r.unit.Get("Sized", false).(*symbols.ClassSymbol)
	list := r.unit.Get("List", false).(*symbols.ClassSymbol)
	assert.Equal(t, []*symbols.ClassSymbol{countable}, sized.Ifaces)
	assert.Equal(t, []*symbols.ClassSymbol{sized}, list.Ifaces)
	assert.Same(t, sized, r.info.Uses[implName])
}

func TestUnknownInterface(t *testing.T) {
	missing := &ast.ClassDecl{Pos: at(1), Name: "A", Ifaces: []*ast.Name{ast.NewName(loc(1), "NoSuchIface")}}
	wrong := &ast.ClassDecl{Pos: at(2), Name: "B", Ifaces: []*ast.Name{ast.NewName(loc(2), "A")}}
	r := collect(missing, wrong)

	errs := r.sink.Filter(diagnostics.Error)
	require.Len(t, errs, 2)
	assert.Equal(t, diagnostics.ErrC007, errs[0].Code)
	assert.Equal(t, "unknown interface `NoSuchIface`", errs[0].Message)
	assert.Equal(t, "`A` is a class, not an interface", errs[1].Message)
	assert.Empty(t, r.unit.Get("A", false).(*symbols.ClassSymbol).Ifaces)
}

func TestScopedNodeTwicePanics(t *testing.T) {
	block := ast.NewBlock(loc(1))
	assert.Panics(t, func() { collect(block, block) })
}
