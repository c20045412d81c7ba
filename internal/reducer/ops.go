package reducer

import (
	"math"
	"strings"

	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/symbols"
)

func (r *reducer) unary(n *ast.UnaryExpr) symbols.Value {
	v := r.reduce(n.Expr)
	if !v.Scalar() {
		return symbols.Unknown()
	}
	switch n.Op {
	case "!":
		b, _ := v.ToBool()
		return symbols.Bool(!b)
	case "+", "-":
		num, ok := numeric(v)
		if !ok {
			return symbols.Unknown()
		}
		if n.Op == "+" {
			return num
		}
		if num.Kind == symbols.ValFloat {
			return symbols.Float(-num.Float)
		}
		if num.Int == math.MinInt64 {
			return symbols.Unknown()
		}
		return symbols.Int(-num.Int)
	case "~":
		if v.Kind != symbols.ValInt {
			return symbols.Unknown()
		}
		return symbols.Int(^v.Int)
	}
	return symbols.Unknown()
}

func (r *reducer) binary(n *ast.BinExpr) symbols.Value {
	switch n.Op {
	case ast.OpRange, ast.OpIn, ast.OpIs:
		return symbols.Unknown()
	}

	lhs, rhs := r.reduce(n.Left), r.reduce(n.Right)
	switch n.Op {
	case ast.OpEq, ast.OpNeq:
		if !lhs.Known() || !rhs.Known() {
			return symbols.Unknown()
		}
		same := symbols.Identical(lhs, rhs)
		return symbols.Bool(same == (n.Op == ast.OpEq))
	}
	if !lhs.Scalar() || !rhs.Scalar() {
		return symbols.Unknown()
	}

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod, ast.OpPow:
		return r.arithmetic(n, lhs, rhs)
	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpShl, ast.OpShr:
		return bitwise(n.Op, lhs, rhs)
	case ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte:
		return relational(n.Op, lhs, rhs)
	case ast.OpAnd, ast.OpOr, ast.OpXor:
		a, _ := lhs.ToBool()
		b, _ := rhs.ToBool()
		switch n.Op {
		case ast.OpAnd:
			return symbols.Bool(a && b)
		case ast.OpOr:
			return symbols.Bool(a || b)
		}
		return symbols.Bool(a != b)
	case ast.OpConcat:
		a, _ := lhs.ToString()
		b, _ := rhs.ToString()
		return symbols.Str(a + b)
	}
	return symbols.Unknown()
}

// arithmetic works on integers unless an operand is a float. An integer
// result that is inexact or does not fit an int64 is not folded.
func (r *reducer) arithmetic(n *ast.BinExpr, lhs, rhs symbols.Value) symbols.Value {
	if n.Op == ast.OpDiv || n.Op == ast.OpMod {
		if d, _ := rhs.ToFloat(); d == 0 {
			return r.divisionByZero(n, rhs)
		}
	}

	a, aok := numeric(lhs)
	b, bok := numeric(rhs)
	if !aok || !bok {
		return symbols.Unknown()
	}

	if n.Op == ast.OpMod {
		// the host truncates float operands of % to integers
		if a.Kind != symbols.ValInt || b.Kind != symbols.ValInt {
			return symbols.Unknown()
		}
		if a.Int == math.MinInt64 && b.Int == -1 {
			return symbols.Int(0)
		}
		return symbols.Int(a.Int % b.Int)
	}

	if a.Kind == symbols.ValInt && b.Kind == symbols.ValInt {
		if v, ok := intOp(n.Op, a.Int, b.Int); ok {
			return symbols.Int(v)
		}
		return symbols.Unknown()
	}

	af, _ := a.ToFloat()
	bf, _ := b.ToFloat()
	switch n.Op {
	case ast.OpAdd:
		return symbols.Float(af + bf)
	case ast.OpSub:
		return symbols.Float(af - bf)
	case ast.OpMul:
		return symbols.Float(af * bf)
	case ast.OpDiv:
		return symbols.Float(af / bf)
	case ast.OpPow:
		return symbols.Float(math.Pow(af, bf))
	}
	return symbols.Unknown()
}

// numeric converts an operand for arithmetic. Only float values count
// as floats; anything else has to read as an integer.
func numeric(v symbols.Value) (symbols.Value, bool) {
	if v.Kind == symbols.ValFloat {
		return v, true
	}
	num, ok := v.ToNumber()
	if !ok || num.Kind != symbols.ValInt {
		return symbols.Unknown(), false
	}
	return num, true
}

// intOp computes an integer result; ok is false when the result is not
// an exact int64.
func intOp(op string, a, b int64) (int64, bool) {
	switch op {
	case ast.OpAdd:
		s := a + b
		return s, (s > a) == (b > 0)
	case ast.OpSub:
		d := a - b
		return d, (d < a) == (b > 0)
	case ast.OpMul:
		return mul(a, b)
	case ast.OpDiv:
		if a%b != 0 || (a == math.MinInt64 && b == -1) {
			return 0, false
		}
		return a / b, true
	case ast.OpPow:
		return pow(a, b)
	}
	return 0, false
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}

func pow(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	result := int64(1)
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = mul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// divisionByZero mirrors the host language: the result is false and the
// program keeps going.
func (r *reducer) divisionByZero(n *ast.BinExpr, rhs symbols.Value) symbols.Value {
	if r.sink != nil {
		r.sink.Warnf(diagnostics.ErrR001, n.Loc(), "division by zero")
		if !rhs.IsNumeric() {
			r.sink.Warnf(diagnostics.ErrR002, n.Right.Loc(), "^ caused by implicit conversion of %s", rhs)
		}
	}
	return symbols.Bool(false)
}

func bitwise(op string, lhs, rhs symbols.Value) symbols.Value {
	a, _ := lhs.ToInt()
	b, _ := rhs.ToInt()
	switch op {
	case ast.OpBitAnd:
		return symbols.Int(a & b)
	case ast.OpBitOr:
		return symbols.Int(a | b)
	case ast.OpBitXor:
		return symbols.Int(a ^ b)
	}

	// negative shifts throw at run time
	if b < 0 {
		return symbols.Unknown()
	}
	if op == ast.OpShl {
		if b >= 64 {
			return symbols.Int(0)
		}
		return symbols.Int(a << uint(b))
	}
	if b >= 64 {
		b = 63
	}
	return symbols.Int(a >> uint(b))
}

func relational(op string, lhs, rhs symbols.Value) symbols.Value {
	c, ok := compare(lhs, rhs)
	if !ok {
		return symbols.Unknown()
	}
	switch op {
	case ast.OpLt:
		return symbols.Bool(c < 0)
	case ast.OpGt:
		return symbols.Bool(c > 0)
	case ast.OpLte:
		return symbols.Bool(c <= 0)
	}
	return symbols.Bool(c >= 0)
}

// compare orders two scalars the way the host language's loose
// comparison does.
func compare(a, b symbols.Value) (int, bool) {
	switch {
	case a.Kind == symbols.ValNull && b.Kind == symbols.ValStr:
		return strings.Compare("", b.Str), true
	case a.Kind == symbols.ValStr && b.Kind == symbols.ValNull:
		return strings.Compare(a.Str, ""), true
	case isBoolish(a) || isBoolish(b):
		x, _ := a.ToBool()
		y, _ := b.ToBool()
		return boolInt(x) - boolInt(y), true
	case numericPair(a, b):
		x, _ := a.ToNumber()
		y, _ := b.ToNumber()
		return compareNumbers(x, y)
	}
	x, _ := a.ToString()
	y, _ := b.ToString()
	return strings.Compare(x, y), true
}

func isBoolish(v symbols.Value) bool {
	return v.Kind == symbols.ValBool || v.Kind == symbols.ValNull
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isNumber(v symbols.Value) bool {
	return v.Kind == symbols.ValInt || v.Kind == symbols.ValFloat
}

// numericPair: numbers with numbers or numeric strings, or two numeric
// strings.
func numericPair(a, b symbols.Value) bool {
	switch {
	case isNumber(a) && isNumber(b):
		return true
	case isNumber(a):
		return b.IsNumeric()
	case isNumber(b):
		return a.IsNumeric()
	}
	return a.IsNumeric() && b.IsNumeric()
}

func compareNumbers(x, y symbols.Value) (int, bool) {
	if x.Kind == symbols.ValInt && y.Kind == symbols.ValInt {
		switch {
		case x.Int < y.Int:
			return -1, true
		case x.Int > y.Int:
			return 1, true
		}
		return 0, true
	}
	xf, _ := x.ToFloat()
	yf, _ := y.ToFloat()
	switch {
	case math.IsNaN(xf) || math.IsNaN(yf):
		return 0, false
	case xf < yf:
		return -1, true
	case xf > yf:
		return 1, true
	}
	return 0, true
}
