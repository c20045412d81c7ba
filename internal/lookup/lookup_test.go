package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/source"
	"github.com/funvibe/phsc/internal/symbols"
)

var here = source.New("l.phs", 1, 1)

func name(path string) *ast.Name { return ast.NewName(here, path) }

type fixture struct {
	ids    *symbols.IDSource
	global *symbols.Scope
	unit   *symbols.Scope
}

func newFixture() *fixture {
	ids := &symbols.IDSource{}
	g := symbols.NewGlobalScope(ids)
	return &fixture{ids: ids, global: g, unit: symbols.NewUnitScope(ids, "l.phs", g)}
}

func (f *fixture) module(t *testing.T, root *symbols.Scope, path ...string) *symbols.Scope {
	t.Helper()
	mod, clash := root.Fetch(path, here)
	require.Nil(t, clash)
	return mod
}

func TestQualifiedNameResolvesDeclaredSymbol(t *testing.T) {
	f := newFixture()
	ab := f.module(t, f.unit, "a", "b")
	c := symbols.NewFn("c", here, 0)
	ab.Add("c", c)

	assert.Same(t, c, Name(name("a::b::c"), f.unit, false))

	block := symbols.NewScope(symbols.ScopeBlock, symbols.NewScope(symbols.ScopeFunction, f.unit))
	assert.Same(t, c, Name(name("a::b::c"), block, false), "resolves from nested scopes")
}

func TestQualifiedNameNamingModuleFails(t *testing.T) {
	f := newFixture()
	f.module(t, f.unit, "a", "b", "c")
	assert.Nil(t, Name(name("a::b::c"), f.unit, false))
	assert.Nil(t, Name(name("a::b::missing"), f.unit, false))
	assert.Nil(t, Name(name("nope::x"), f.unit, false))
}

func TestPlainNameReturnsModuleSymbol(t *testing.T) {
	f := newFixture()
	f.module(t, f.unit, "a")
	sym := Name(name("a"), f.unit, false)
	require.NotNil(t, sym)
	assert.Equal(t, symbols.KindModule, sym.Kind())
}

func TestNonModuleBaseFailsClosed(t *testing.T) {
	f := newFixture()
	f.unit.Add("v", symbols.NewVar("v", here, 0))
	assert.Nil(t, Name(name("v::x"), f.unit, false))
}

func TestVariableHoldingModule(t *testing.T) {
	f := newFixture()
	m := f.module(t, f.unit, "m")
	x := symbols.NewVar("x", here, symbols.FlagConst)
	m.Add("x", x)

	holder := symbols.NewVar("alias", here, 0)
	holder.Value = symbols.SymbolOf(f.unit.Get("m", false))
	f.unit.Add("alias", holder)

	assert.Same(t, x, Name(name("alias::x"), f.unit, false))
}

func TestGlobalModuleFallback(t *testing.T) {
	f := newFixture()
	rt := f.module(t, f.global, "phs")
	ex := symbols.NewFn("ex", nil, symbols.FlagExtern)
	rt.Add("ex", ex)

	assert.Same(t, ex, Name(name("phs::ex"), f.unit, false))
	assert.Same(t, ex, Name(name("::phs::ex"), f.unit, false))
	assert.Nil(t, Name(name("::phs"), f.unit, false))
}

func TestRootNameSkipsLexicalScopes(t *testing.T) {
	f := newFixture()
	top := symbols.NewVar("x", here, 0)
	f.unit.Add("x", top)
	fn := symbols.NewScope(symbols.ScopeFunction, f.unit)
	fn.Add("x", symbols.NewVar("x", here, 0))

	assert.Same(t, top, Name(name("::x"), fn, false))
	assert.NotSame(t, top, Name(name("x"), fn, false))
}

func TestSelfNameStartsAtEnclosingModule(t *testing.T) {
	f := newFixture()
	m := f.module(t, f.unit, "m")
	inner := symbols.NewVar("y", here, 0)
	m.Add("y", inner)
	f.unit.Add("y", symbols.NewVar("y", here, 0))

	fn := symbols.NewScope(symbols.ScopeFunction, m)
	assert.Same(t, inner, Name(name("self::y"), fn, false))
}

func TestDereferencesReferences(t *testing.T) {
	f := newFixture()
	target := symbols.NewFn("f", here, 0)
	f.unit.Add("f", target)
	f.unit.Add("g", symbols.NewRef("g", here, target, []string{"f"}))
	assert.Same(t, target, Name(name("g"), f.unit, false))
}

func TestTrackCountsReads(t *testing.T) {
	f := newFixture()
	x := symbols.NewVar("x", here, 0)
	f.unit.Add("x", x)

	Name(name("x"), f.unit, false)
	assert.Equal(t, 0, x.Reads)
	Name(name("x"), f.unit, true)
	Name(name("x"), f.unit, true)
	assert.Equal(t, 2, x.Reads)
}

func TestImportResolution(t *testing.T) {
	f := newFixture()
	ab := f.module(t, f.unit, "a", "b")
	c := symbols.NewFn("c", here, 0)
	ab.Add("c", c)

	u := symbols.NewUsage(here, []string{"a", "b", "c"}, "d", false)
	require.True(t, f.unit.Usages.Add(u))

	fn := symbols.NewScope(symbols.ScopeFunction, f.unit)
	assert.Same(t, c, Name(name("d"), fn, false))
	require.NotNil(t, u.Ref, "resolution is cached on the usage")
	assert.Same(t, c, u.Ref.Target)

	modUse := symbols.NewUsage(here, []string{"a", "b"}, "", false)
	require.True(t, f.unit.Usages.Add(modUse))
	assert.Same(t, c, Name(name("b::c"), fn, false), "imported modules can be walked")
}

func TestImportsAcrossModulesMustBePublic(t *testing.T) {
	f := newFixture()
	lib := f.module(t, f.unit, "lib")
	impl := f.module(t, f.unit, "impl")
	secret := symbols.NewFn("secret", here, 0)
	impl.Add("secret", secret)

	lib.Usages.Add(symbols.NewUsage(here, []string{"impl", "secret"}, "hidden", false))
	lib.Usages.Add(symbols.NewUsage(here, []string{"impl", "secret"}, "shown", true))

	assert.Nil(t, Name(name("lib::hidden"), f.unit, false))
	assert.Same(t, secret, Name(name("lib::shown"), f.unit, false))

	inside := symbols.NewScope(symbols.ScopeFunction, lib)
	assert.Same(t, secret, Name(name("hidden"), inside, false), "private imports are visible at home")
}

func TestSelfReferentialImportTerminates(t *testing.T) {
	f := newFixture()
	u := symbols.NewUsage(here, []string{"loop"}, "", false)
	f.unit.Usages.Add(u)
	assert.Nil(t, Name(name("loop"), f.unit, false))
	assert.Nil(t, Import(u, f.unit))
}

func TestPath(t *testing.T) {
	f := newFixture()
	m := f.module(t, f.global, "std")
	x := symbols.NewVar("x", nil, 0)
	m.Add("x", x)
	assert.Same(t, x, Path([]string{"std", "x"}, f.unit))
	assert.Nil(t, Path([]string{"std"}, f.unit))
}

func TestLookupThroughBranch(t *testing.T) {
	f := newFixture()
	x := symbols.NewVar("x", here, 0)
	f.unit.Add("x", x)

	br := symbols.NewBranch(f.unit, nil)
	got := Name(name("x"), br, true)
	require.NotNil(t, got)
	assert.NotSame(t, x, got)
	assert.Equal(t, 0, x.Reads, "reads land on the branch copy")
}
