package reducer

import (
	"math"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/collect"
	"github.com/funvibe/phsc/internal/config"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/source"
	"github.com/funvibe/phsc/internal/symbols"
)

func loc(line uint) *source.Location { return source.New("r.phs", line, 1) }
func at(line uint) ast.Pos           { return ast.At(loc(line)) }

func num(i int64) *ast.IntLit     { return &ast.IntLit{Pos: at(1), Value: i} }
func flt(f float64) *ast.FloatLit { return &ast.FloatLit{Pos: at(1), Value: f} }
func str(s string) *ast.StrLit    { return &ast.StrLit{Pos: at(1), Value: s} }
func null() *ast.NullLit          { return &ast.NullLit{Pos: at(1)} }
func boolean(b bool) *ast.BoolLit { return &ast.BoolLit{Pos: at(1), Value: b} }
func name(s string) *ast.Name     { return ast.NewName(loc(1), s) }

func bin(op string, l, r ast.Expr) *ast.BinExpr {
	return &ast.BinExpr{Pos: at(1), Op: op, Left: l, Right: r}
}

func arr(items ...ast.Expr) *ast.ArrLit { return &ast.ArrLit{Pos: at(1), Items: items} }

func varDecl(line uint, mods ast.Mods, n string, init ast.Expr) *ast.VarDecl {
	return &ast.VarDecl{Pos: at(line), Mods: mods, Items: []*ast.VarItem{{Pos: at(line), Name: n, Init: init}}}
}

func assign(line uint, n string, val ast.Expr) *ast.ExprStmt {
	return &ast.ExprStmt{Pos: at(line), Expr: &ast.AssignExpr{Pos: at(line), Op: "=", Left: name(n), Right: val}}
}

type folded struct {
	unit *symbols.Scope
	info *symbols.Info
	sink *diagnostics.Sink
}

func fold(stmts ...ast.Stmt) *folded {
	ids := &symbols.IDSource{}
	info := symbols.NewInfo()
	sink := diagnostics.NewSink(diagnostics.Info, false)
	unit := &ast.Unit{Pos: at(1), File: "r.phs", Body: stmts}
	scope := collect.New(symbols.NewGlobalScope(ids), ids, info, sink, config.Default()).Collect(unit)
	NewFolder(info, sink).Fold(unit)
	return &folded{unit: scope, info: info, sink: sink}
}

func (f *folded) v(t *testing.T, n string) *symbols.VarSymbol {
	t.Helper()
	v, ok := f.unit.Get(n, false).(*symbols.VarSymbol)
	require.True(t, ok, "no variable %s", n)
	return v
}

func reduce(e ast.Expr) (symbols.Value, *diagnostics.Sink) {
	sink := diagnostics.NewSink(diagnostics.Info, false)
	env := symbols.NewUnitScope(&symbols.IDSource{}, "r.phs", nil)
	return Reduce(e, env, sink), sink
}

func TestConstantInitializer(t *testing.T) {
	f := fold(varDecl(1, ast.ModConst, "X", bin(ast.OpAdd, num(1), num(2))))
	x := f.v(t, "X")
	assert.Equal(t, symbols.ValInt, x.Value.Kind)
	assert.Equal(t, int64(3), x.Value.Int)
	assert.Empty(t, f.sink.Diagnostics())
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		want symbols.Value
	}{
		{"exact division stays int", bin(ast.OpDiv, num(6), num(3)), symbols.Int(2)},
		{"float operand", bin(ast.OpAdd, num(1), flt(1.5)), symbols.Float(2.5)},
		{"int power", bin(ast.OpPow, num(2), num(10)), symbols.Int(1024)},
		{"float exponent", bin(ast.OpPow, num(2), flt(-1)), symbols.Float(0.5)},
		{"modulo", bin(ast.OpMod, num(7), num(3)), symbols.Int(1)},
		{"numeric string", bin(ast.OpMul, str("4"), num(2)), symbols.Int(8)},
		{"shift", bin(ast.OpShl, num(1), num(4)), symbols.Int(16)},
		{"bitwise", bin(ast.OpBitAnd, num(6), num(3)), symbols.Int(2)},
		{"concat", bin(ast.OpConcat, num(1), str("a")), symbols.Str("1a")},
		{"negation", &ast.UnaryExpr{Pos: at(1), Op: "-", Expr: num(3)}, symbols.Int(-3)},
		{"float negation", &ast.UnaryExpr{Pos: at(1), Op: "-", Expr: flt(1.5)}, symbols.Float(-1.5)},
		{"plus on numeric string", &ast.UnaryExpr{Pos: at(1), Op: "+", Expr: str("12")}, symbols.Int(12)},
		{"not", &ast.UnaryExpr{Pos: at(1), Op: "!", Expr: str("")}, symbols.Bool(true)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, sink := reduce(tc.expr)
			assert.True(t, symbols.Identical(tc.want, got), "%# v", pretty.Formatter(got))
			assert.Empty(t, sink.Diagnostics())
		})
	}
}

func TestIntegerOperandsNeverFoldToFloat(t *testing.T) {
	for what, e := range map[string]ast.Expr{
		"inexact division":      bin(ast.OpDiv, num(7), num(2)),
		"overflowing sum":       bin(ast.OpAdd, num(math.MaxInt64), num(1)),
		"overflowing product":   bin(ast.OpMul, num(1<<62), num(4)),
		"negative exponent":     bin(ast.OpPow, num(2), num(-1)),
		"float string":          bin(ast.OpAdd, str("1.5"), num(1)),
		"float string negation": &ast.UnaryExpr{Pos: at(1), Op: "-", Expr: str("1.5")},
		"min int negation":      &ast.UnaryExpr{Pos: at(1), Op: "-", Expr: num(math.MinInt64)},
		"float modulo":          bin(ast.OpMod, flt(7.5), num(2)),
	} {
		got, sink := reduce(e)
		assert.Equal(t, symbols.ValUnknown, got.Kind, "%s: %# v", what, pretty.Formatter(got))
		assert.Empty(t, sink.Diagnostics(), what)
	}

	got, _ := reduce(bin(ast.OpMul, bin(ast.OpAdd, num(1), num(2)), bin(ast.OpSub, num(10), num(4))))
	assert.Equal(t, symbols.ValInt, got.Kind)
	got, _ = reduce(bin(ast.OpMul, bin(ast.OpAdd, num(1), num(2)), bin(ast.OpSub, flt(10), num(4))))
	assert.Equal(t, symbols.ValFloat, got.Kind)
}

func TestDivisionByZero(t *testing.T) {
	got, sink := reduce(bin(ast.OpDiv, num(1), num(0)))
	assert.True(t, symbols.Identical(symbols.Bool(false), got))
	warns := sink.Filter(diagnostics.Warning)
	require.Len(t, warns, 1)
	assert.Equal(t, diagnostics.ErrR001, warns[0].Code)
	assert.Equal(t, "division by zero", warns[0].Message)

	got, sink = reduce(bin(ast.OpMod, num(1), str("abc")))
	assert.True(t, symbols.Identical(symbols.Bool(false), got))
	warns = sink.Filter(diagnostics.Warning)
	require.Len(t, warns, 2)
	assert.Equal(t, diagnostics.ErrR001, warns[0].Code)
	assert.Equal(t, diagnostics.ErrR002, warns[1].Code)
	assert.Contains(t, warns[1].Message, "caused by implicit conversion")
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		name string
		expr ast.Expr
		want bool
	}{
		{"ints", bin(ast.OpLt, num(1), num(2)), true},
		{"strings", bin(ast.OpLt, str("abc"), str("abd")), true},
		{"numeric strings", bin(ast.OpLt, str("10"), str("9")), false},
		{"null and string", bin(ast.OpLt, null(), str("a")), true},
		{"bool", bin(ast.OpGt, boolean(true), num(0)), true},
		{"strict equality", bin(ast.OpEq, boolean(true), num(1)), false},
		{"strict inequality", bin(ast.OpNeq, num(1), flt(1)), true},
		{"equal arrays", bin(ast.OpEq, arr(num(1)), arr(num(1))), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := reduce(tc.expr)
			require.Equal(t, symbols.ValBool, got.Kind, "%# v", pretty.Formatter(got))
			assert.Equal(t, tc.want, got.Bool)
		})
	}
}

func TestUndecidable(t *testing.T) {
	for _, e := range []ast.Expr{
		bin(ast.OpRange, num(1), num(3)),
		bin(ast.OpIn, num(1), arr(num(1))),
		&ast.CallExpr{Pos: at(1), Callee: name("f")},
		&ast.CondExpr{Pos: at(1), Test: boolean(true), Then: num(1), Else: num(2)},
		bin(ast.OpShl, num(1), num(-1)),
	} {
		got, _ := reduce(e)
		assert.False(t, got.Known(), "%s", e.Kind())
	}
}

func TestCompositeValues(t *testing.T) {
	got, _ := reduce(arr(num(1), str("a")))
	require.Equal(t, symbols.ValArray, got.Kind)
	assert.Len(t, got.Items, 2)

	got, _ = reduce(arr(num(1), name("nope")))
	assert.Equal(t, symbols.ValUnknown, got.Kind, "one unknown item spoils the array")

	got, _ = reduce(&ast.OffsetExpr{Pos: at(1), Object: arr(num(1), num(2), num(3)), Offset: num(1)})
	assert.True(t, symbols.Identical(symbols.Int(2), got))

	got, _ = reduce(&ast.OffsetExpr{Pos: at(1), Object: str("abc"), Offset: num(2)})
	assert.True(t, symbols.Identical(symbols.Str("c"), got))

	obj := &ast.ObjLit{Pos: at(1), Pairs: []*ast.ObjPair{
		{Pos: at(1), Key: &ast.Ident{Pos: at(1), Value: "a"}, Value: num(1)},
	}}
	got, _ = reduce(&ast.MemberExpr{Pos: at(1), Object: obj, Prop: &ast.Ident{Pos: at(1), Value: "a"}})
	assert.True(t, symbols.Identical(symbols.Int(1), got))
}

func TestNamesFoldThroughConstants(t *testing.T) {
	f := fold(
		varDecl(1, ast.ModConst, "A", bin(ast.OpMul, name("B"), num(2))),
		varDecl(2, ast.ModConst, "B", num(21)),
		varDecl(3, 0, "c", name("A")),
		varDecl(4, 0, "d", nil),
	)
	assert.True(t, symbols.Identical(symbols.Int(42), f.v(t, "A").Value), "constant read before its declaration")
	assert.True(t, symbols.Identical(symbols.Int(42), f.v(t, "c").Value))
	assert.Equal(t, symbols.ValNull, f.v(t, "d").Value.Kind)
}

func TestCyclicConstantsStayUnknown(t *testing.T) {
	f := fold(
		varDecl(1, ast.ModConst, "A", name("B")),
		varDecl(2, ast.ModConst, "B", name("A")),
	)
	assert.False(t, f.v(t, "A").Value.Known())
	assert.False(t, f.v(t, "B").Value.Known())
}

func TestVariablesReduceToTheirSymbol(t *testing.T) {
	f := fold(varDecl(1, 0, "a", num(1)))
	got := Reduce(name("a"), f.unit, nil)
	require.Equal(t, symbols.ValSymbol, got.Kind)
	assert.Same(t, f.v(t, "a"), got.Sym)
}

func TestEnumNumbering(t *testing.T) {
	enum := &ast.EnumDecl{Pos: at(1), Items: []*ast.VarItem{
		{Pos: at(1), Name: "A"},
		{Pos: at(1), Name: "B", Init: num(10)},
		{Pos: at(1), Name: "C"},
	}}
	f := fold(enum)
	assert.Equal(t, int64(0), f.v(t, "A").Value.Int)
	assert.Equal(t, int64(10), f.v(t, "B").Value.Int)
	assert.Equal(t, int64(11), f.v(t, "C").Value.Int)
}

func TestClassConstants(t *testing.T) {
	cls := &ast.ClassDecl{Pos: at(1), Name: "K", Members: []ast.Stmt{
		varDecl(2, ast.ModConst, "A", num(5)),
		varDecl(3, ast.ModStatic, "b", num(6)),
		varDecl(4, ast.ModStatic, "c", num(7)),
		varDecl(5, 0, "d", num(8)),
	}}
	write := &ast.ExprStmt{Pos: at(6), Expr: &ast.AssignExpr{Pos: at(6), Op: "=",
		Left:  &ast.MemberExpr{Pos: at(6), Object: name("K"), Prop: &ast.Ident{Pos: at(6), Value: "c"}, Static: true},
		Right: num(0),
	}}
	f := fold(cls, write)

	member := func(prop string) symbols.Value {
		return Reduce(&ast.MemberExpr{Pos: at(9), Object: name("K"), Prop: &ast.Ident{Pos: at(9), Value: prop}, Static: true}, f.unit, nil)
	}
	assert.True(t, symbols.Identical(symbols.Int(5), member("A")))
	assert.True(t, symbols.Identical(symbols.Int(6), member("b")), "static and never written")
	assert.False(t, member("c").Known(), "static but written")
	assert.False(t, member("d").Known(), "instance field")
}

func TestConditionalWritesMerge(t *testing.T) {
	f := fold(
		varDecl(1, 0, "a", num(1)),
		varDecl(2, 0, "b", num(2)),
		&ast.IfStmt{Pos: at(3), Cond: boolean(true), Then: ast.NewBlock(loc(3), assign(4, "a", num(5)))},
		assign(5, "b", num(3)),
	)
	a := f.v(t, "a")
	assert.Equal(t, 1, a.Writes)
	assert.Equal(t, symbols.ValUnknown, a.Value.Kind)

	b := f.v(t, "b")
	assert.Equal(t, 1, b.Writes)
	assert.Equal(t, symbols.ValUnknown, b.Value.Kind)
}

func TestBranchReadsValueBeforeWrite(t *testing.T) {
	f := fold(
		varDecl(1, 0, "a", num(1)),
		&ast.WhileStmt{Pos: at(2), Cond: name("a"), Body: ast.NewBlock(loc(2),
			varDecl(3, 0, "b", name("a")),
			assign(4, "a", num(0)),
		)},
	)
	a := f.v(t, "a")
	assert.Equal(t, 1, a.Writes)
	assert.Equal(t, 2, a.Reads)
}

func TestCallsAreCounted(t *testing.T) {
	call := &ast.ExprStmt{Pos: at(2), Expr: &ast.CallExpr{Pos: at(2), Callee: name("f")}}
	f := fold(
		&ast.FnDecl{Pos: at(1), Name: "f", Body: ast.NewBlock(loc(1))},
		call, call,
	)
	fn, ok := f.unit.Get("f", false).(*symbols.FnSymbol)
	require.True(t, ok)
	assert.Equal(t, 2, fn.Calls)
	assert.Equal(t, 2, fn.Reads)
}

func TestFunctionParamsAreUnknown(t *testing.T) {
	p := &ast.Param{Pos: at(1), Name: "x", Init: num(3)}
	f := fold(&ast.FnDecl{Pos: at(1), Name: "f", Params: []*ast.Param{p}, Body: ast.NewBlock(loc(1))})
	v, ok := f.info.DefOf(p).(*symbols.VarSymbol)
	require.True(t, ok)
	assert.Equal(t, symbols.ValUnknown, v.Value.Kind)
}
