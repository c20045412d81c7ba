package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/phsc/internal/source"
)

func loc(line uint) *source.Location { return source.New("t.phs", line, 1) }

func TestNewName(t *testing.T) {
	n := NewName(loc(1), "a::b::c")
	assert.Equal(t, []string{"a", "b", "c"}, n.Parts)
	assert.False(t, n.Root)
	assert.Equal(t, "a", n.Base())
	assert.Equal(t, "c", n.Last())
	assert.True(t, n.Qualified())
	assert.Equal(t, "a::b::c", n.String())

	root := NewName(loc(1), "::phs::ex")
	assert.True(t, root.Root)
	assert.Equal(t, []string{"phs", "ex"}, root.Parts)
	assert.Equal(t, "::phs::ex", root.String())

	self := NewName(loc(1), "self::x")
	assert.True(t, self.Self)
	assert.False(t, self.Qualified())
	assert.Equal(t, "self::x", self.String())
}

func TestModsString(t *testing.T) {
	assert.Equal(t, "private static", (ModStatic | ModPrivate).String())
	assert.Equal(t, "", Mods(0).String())
	assert.True(t, (ModConst | ModExtern).Has(ModExtern))
	assert.False(t, ModConst.Has(ModStatic))
}

func TestInspectPreOrder(t *testing.T) {
	unit := &Unit{Pos: At(loc(1)), Body: []Stmt{
		&VarDecl{Pos: At(loc(1)), Items: []*VarItem{{
			Pos:  At(loc(1)),
			Name: "x",
			Init: &BinExpr{Pos: At(loc(1)), Op: OpAdd,
				Left:  &IntLit{Pos: At(loc(1)), Value: 1},
				Right: &IntLit{Pos: At(loc(1)), Value: 2}},
		}}},
		&IfStmt{Pos: At(loc(2)), Cond: NewName(loc(2), "x"),
			Then: NewBlock(loc(2)),
			Else: &ElseItem{Pos: At(loc(3)), Body: NewBlock(loc(3))}},
	}}

	var kinds []string
	Inspect(unit, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != "bin_expr"
	})
	assert.Equal(t, []string{
		"unit", "var_decl", "var_item", "bin_expr",
		"if_stmt", "name", "block", "else_item", "block",
	}, kinds)
}

func TestCloneIsDeep(t *testing.T) {
	orig := &FnDecl{
		Pos:    At(loc(4)),
		Mods:   ModPublic,
		Name:   "f",
		Params: []*Param{{Pos: At(loc(4)), Name: "a", Init: &IntLit{Pos: At(loc(4)), Value: 1}}},
		Body: NewBlock(loc(4), &ReturnStmt{Pos: At(loc(5)),
			Expr: NewName(loc(5), "a")}),
	}

	cp := Clone(orig)
	require.NotSame(t, orig, cp)
	assert.Equal(t, orig, cp)
	assert.NotSame(t, orig.Params[0], cp.Params[0])
	assert.Same(t, orig.Loc(), cp.Loc(), "locations are shared")

	cp.Params[0].Name = "b"
	ret := cp.Body.(*Block).Body[0].(*ReturnStmt)
	ret.Expr.(*Name).Parts[0] = "b"

	assert.Equal(t, "a", orig.Params[0].Name)
	assert.Equal(t, "a", orig.Body.(*Block).Body[0].(*ReturnStmt).Expr.(*Name).Base())
}

func TestNewBlockWithoutLocation(t *testing.T) {
	b := NewBlock(nil)
	assert.True(t, b.Loc().IsGenerated())
}
