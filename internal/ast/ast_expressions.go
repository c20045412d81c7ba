package ast

import (
	"strings"

	"github.com/funvibe/phsc/internal/source"
)

// Name is a possibly qualified reference.
// a, a::b::c, ::a::b (Root), self::a (Self)
type Name struct {
	Pos
	Parts []string
	Root  bool
	Self  bool
}

func (n *Name) Kind() string     { return "name" }
func (n *Name) Accept(v Visitor) { v.VisitName(n) }
func (n *Name) exprNode()        {}
func (n *Name) useItem()         {}

// NewName parses a textual path such as "a::b" or "::a::b".
func NewName(loc *source.Location, path string) *Name {
	n := &Name{Pos: At(loc)}
	if strings.HasPrefix(path, "::") {
		n.Root = true
		path = path[2:]
	} else if strings.HasPrefix(path, "self::") {
		n.Self = true
		path = path[len("self::"):]
	}
	n.Parts = strings.Split(path, "::")
	return n
}

// Base is the first path segment.
func (n *Name) Base() string { return n.Parts[0] }

// Last is the final path segment.
func (n *Name) Last() string { return n.Parts[len(n.Parts)-1] }

func (n *Name) Qualified() bool { return len(n.Parts) > 1 }

func (n *Name) String() string {
	s := strings.Join(n.Parts, "::")
	switch {
	case n.Root:
		s = "::" + s
	case n.Self:
		s = "self::" + s
	}
	return s
}

// Ident is a bare identifier used for property names.
type Ident struct {
	Pos
	Value string
}

func (i *Ident) Kind() string     { return "ident" }
func (i *Ident) Accept(v Visitor) { v.VisitIdent(i) }
func (i *Ident) exprNode()        {}

type StrLit struct {
	Pos
	Value string
}

func (l *StrLit) Kind() string     { return "str_lit" }
func (l *StrLit) Accept(v Visitor) { v.VisitStrLit(l) }
func (l *StrLit) exprNode()        {}

type RegexpLit struct {
	Pos
	Pattern string
}

func (l *RegexpLit) Kind() string     { return "regexp_lit" }
func (l *RegexpLit) Accept(v Visitor) { v.VisitRegexpLit(l) }
func (l *RegexpLit) exprNode()        {}

type IntLit struct {
	Pos
	Value int64
}

func (l *IntLit) Kind() string     { return "int_lit" }
func (l *IntLit) Accept(v Visitor) { v.VisitIntLit(l) }
func (l *IntLit) exprNode()        {}

type FloatLit struct {
	Pos
	Value float64
}

func (l *FloatLit) Kind() string     { return "float_lit" }
func (l *FloatLit) Accept(v Visitor) { v.VisitFloatLit(l) }
func (l *FloatLit) exprNode()        {}

type BoolLit struct {
	Pos
	Value bool
}

func (l *BoolLit) Kind() string     { return "bool_lit" }
func (l *BoolLit) Accept(v Visitor) { v.VisitBoolLit(l) }
func (l *BoolLit) exprNode()        {}

type NullLit struct {
	Pos
}

func (l *NullLit) Kind() string     { return "null_lit" }
func (l *NullLit) Accept(v Visitor) { v.VisitNullLit(l) }
func (l *NullLit) exprNode()        {}

type ArrLit struct {
	Pos
	Items []Expr
}

func (l *ArrLit) Kind() string     { return "arr_lit" }
func (l *ArrLit) Accept(v Visitor) { v.VisitArrLit(l) }
func (l *ArrLit) exprNode()        {}

type ObjLit struct {
	Pos
	Pairs []*ObjPair
}

func (l *ObjLit) Kind() string     { return "obj_lit" }
func (l *ObjLit) Accept(v Visitor) { v.VisitObjLit(l) }
func (l *ObjLit) exprNode()        {}

// ObjPair is one key/value of an object literal. Key is an *Ident, a
// *StrLit or a computed expression.
type ObjPair struct {
	Pos
	Key   Expr
	Value Expr
}

func (p *ObjPair) Kind() string     { return "obj_pair" }
func (p *ObjPair) Accept(v Visitor) { v.VisitObjPair(p) }

type TupleExpr struct {
	Pos
	Items []Expr
}

func (e *TupleExpr) Kind() string     { return "tuple_expr" }
func (e *TupleExpr) Accept(v Visitor) { v.VisitTupleExpr(e) }
func (e *TupleExpr) exprNode()        {}

// UnaryExpr: Op is one of ! + - ~
type UnaryExpr struct {
	Pos
	Op   string
	Expr Expr
}

func (e *UnaryExpr) Kind() string     { return "unary_expr" }
func (e *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(e) }
func (e *UnaryExpr) exprNode()        {}

// Binary operators. Concat is distinct from arithmetic addition.
const (
	OpAdd    = "+"
	OpSub    = "-"
	OpMul    = "*"
	OpDiv    = "/"
	OpMod    = "%"
	OpPow    = "**"
	OpConcat = "~"
	OpBitAnd = "&"
	OpBitOr  = "|"
	OpBitXor = "^"
	OpShl    = "<<"
	OpShr    = ">>"
	OpLt     = "<"
	OpGt     = ">"
	OpLte    = "<="
	OpGte    = ">="
	OpEq     = "=="
	OpNeq    = "!="
	OpAnd    = "&&"
	OpOr     = "||"
	OpXor    = "xor"
	OpRange  = ".."
	OpIn     = "in"
	OpIs     = "is"
)

type BinExpr struct {
	Pos
	Op    string
	Left  Expr
	Right Expr
}

func (e *BinExpr) Kind() string     { return "bin_expr" }
func (e *BinExpr) Accept(v Visitor) { v.VisitBinExpr(e) }
func (e *BinExpr) exprNode()        {}

// AssignExpr: Op is "=" or a compound form such as "+=".
type AssignExpr struct {
	Pos
	Op    string
	Left  Expr
	Right Expr
}

func (e *AssignExpr) Kind() string     { return "assign_expr" }
func (e *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(e) }
func (e *AssignExpr) exprNode()        {}

type UpdateExpr struct {
	Pos
	Op     string
	Prefix bool
	Expr   Expr
}

func (e *UpdateExpr) Kind() string     { return "update_expr" }
func (e *UpdateExpr) Accept(v Visitor) { v.VisitUpdateExpr(e) }
func (e *UpdateExpr) exprNode()        {}

type CastExpr struct {
	Pos
	Type string
	Expr Expr
}

func (e *CastExpr) Kind() string     { return "cast_expr" }
func (e *CastExpr) Accept(v Visitor) { v.VisitCastExpr(e) }
func (e *CastExpr) exprNode()        {}

// CondExpr is test ? then : else. Then is nil for the short form.
type CondExpr struct {
	Pos
	Test Expr
	Then Expr
	Else Expr
}

func (e *CondExpr) Kind() string     { return "cond_expr" }
func (e *CondExpr) Accept(v Visitor) { v.VisitCondExpr(e) }
func (e *CondExpr) exprNode()        {}

// MemberExpr accesses Prop on Object. Prop is an *Ident unless Computed.
// Static accesses go through the class (A::b) rather than an instance.
type MemberExpr struct {
	Pos
	Object   Expr
	Prop     Expr
	Static   bool
	Computed bool
}

func (e *MemberExpr) Kind() string     { return "member_expr" }
func (e *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(e) }
func (e *MemberExpr) exprNode()        {}

type OffsetExpr struct {
	Pos
	Object Expr
	Offset Expr
}

func (e *OffsetExpr) Kind() string     { return "offset_expr" }
func (e *OffsetExpr) Accept(v Visitor) { v.VisitOffsetExpr(e) }
func (e *OffsetExpr) exprNode()        {}

type CallExpr struct {
	Pos
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Kind() string     { return "call_expr" }
func (e *CallExpr) Accept(v Visitor) { v.VisitCallExpr(e) }
func (e *CallExpr) exprNode()        {}

type NewExpr struct {
	Pos
	Class Expr
	Args  []Expr
}

func (e *NewExpr) Kind() string     { return "new_expr" }
func (e *NewExpr) Accept(v Visitor) { v.VisitNewExpr(e) }
func (e *NewExpr) exprNode()        {}

// FnExpr is a function literal. Name is optional and only visible
// inside the function itself.
type FnExpr struct {
	Pos
	Name   string
	Params []*Param
	Body   Node
}

func (e *FnExpr) Kind() string     { return "fn_expr" }
func (e *FnExpr) Accept(v Visitor) { v.VisitFnExpr(e) }
func (e *FnExpr) exprNode()        {}

type ThisExpr struct {
	Pos
}

func (e *ThisExpr) Kind() string     { return "this_expr" }
func (e *ThisExpr) Accept(v Visitor) { v.VisitThisExpr(e) }
func (e *ThisExpr) exprNode()        {}

type SuperExpr struct {
	Pos
}

func (e *SuperExpr) Kind() string     { return "super_expr" }
func (e *SuperExpr) Accept(v Visitor) { v.VisitSuperExpr(e) }
func (e *SuperExpr) exprNode()        {}

type ParenExpr struct {
	Pos
	Expr Expr
}

func (e *ParenExpr) Kind() string     { return "paren_expr" }
func (e *ParenExpr) Accept(v Visitor) { v.VisitParenExpr(e) }
func (e *ParenExpr) exprNode()        {}
