// Package reducer folds expressions to compile-time values. Reduce never
// fails: anything it cannot decide comes back as an unknown value.
package reducer

import (
	"github.com/funvibe/phsc/internal/ast"
	"github.com/funvibe/phsc/internal/diagnostics"
	"github.com/funvibe/phsc/internal/lookup"
	"github.com/funvibe/phsc/internal/symbols"
)

// Reduce folds expr as seen from env. Diagnostics (division by zero)
// go to sink, which may be nil.
func Reduce(expr ast.Expr, env symbols.Env, sink *diagnostics.Sink) symbols.Value {
	return newReducer(env, sink).reduce(expr)
}

type reducer struct {
	env  symbols.Env
	sink *diagnostics.Sink

	// active holds the constants whose initializers are being reduced on
	// demand, so cyclic definitions stay unknown.
	active map[*symbols.VarSymbol]bool
}

func newReducer(env symbols.Env, sink *diagnostics.Sink) *reducer {
	return &reducer{env: env, sink: sink, active: make(map[*symbols.VarSymbol]bool)}
}

func (r *reducer) reduce(expr ast.Expr) symbols.Value {
	switch n := expr.(type) {
	case nil:
		return symbols.Unknown()
	case *ast.ParenExpr:
		return r.reduce(n.Expr)

	case *ast.IntLit:
		return symbols.Int(n.Value)
	case *ast.FloatLit:
		return symbols.Float(n.Value)
	case *ast.StrLit:
		return symbols.Str(n.Value)
	case *ast.RegexpLit:
		return symbols.Regexp(n.Pattern)
	case *ast.BoolLit:
		return symbols.Bool(n.Value)
	case *ast.NullLit:
		return symbols.Null()

	case *ast.ArrLit:
		items, ok := r.all(n.Items)
		if !ok {
			return symbols.Unknown()
		}
		return symbols.Array(items)
	case *ast.TupleExpr:
		items, ok := r.all(n.Items)
		if !ok {
			return symbols.Unknown()
		}
		return symbols.Tuple(items)
	case *ast.ObjLit:
		return r.object(n)

	case *ast.Name:
		return r.name(n)
	case *ast.UnaryExpr:
		return r.unary(n)
	case *ast.BinExpr:
		return r.binary(n)
	case *ast.MemberExpr:
		return r.member(n)
	case *ast.OffsetExpr:
		return r.offset(n)
	}

	// assignments, updates, casts, conditionals, calls, instantiation,
	// function literals, this/super and bare identifiers
	return symbols.Unknown()
}

// all reduces every expression; a single unknown fails the whole list.
func (r *reducer) all(list []ast.Expr) ([]symbols.Value, bool) {
	out := make([]symbols.Value, len(list))
	for i, e := range list {
		v := r.reduce(e)
		if !v.Known() {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (r *reducer) object(n *ast.ObjLit) symbols.Value {
	keys := make([]string, len(n.Pairs))
	vals := make([]symbols.Value, len(n.Pairs))
	for i, p := range n.Pairs {
		key, ok := r.key(p.Key)
		if !ok {
			return symbols.Unknown()
		}
		v := r.reduce(p.Value)
		if !v.Known() {
			return symbols.Unknown()
		}
		keys[i], vals[i] = key, v
	}
	return symbols.Object(keys, vals)
}

// key is the textual form of an object key or property: identifiers
// stand for themselves, anything else must fold to a scalar.
func (r *reducer) key(e ast.Expr) (string, bool) {
	if id, ok := e.(*ast.Ident); ok {
		return id.Value, true
	}
	v := r.reduce(e)
	if !v.Scalar() {
		return "", false
	}
	return v.ToString()
}

// name yields the value of a constant, or an unknown that remembers the
// symbol it came from.
func (r *reducer) name(n *ast.Name) symbols.Value {
	sym := lookup.Name(n, r.env, false)
	if sym == nil {
		return symbols.Unknown()
	}
	v, ok := sym.(*symbols.VarSymbol)
	if !ok || !v.Flags.Has(symbols.FlagConst) {
		return symbols.SymbolOf(sym)
	}
	if v.Value.Kind == symbols.ValNone {
		r.pending(v)
	}
	if v.Value.Known() {
		return v.Value.Copy()
	}
	return symbols.SymbolOf(sym)
}

// pending reduces the initializer of a constant that is read before its
// declaration was folded.
func (r *reducer) pending(v *symbols.VarSymbol) {
	item, ok := v.Node.(*ast.VarItem)
	if !ok || item.Init == nil || v.Scope == nil || r.active[v] {
		return
	}
	r.active[v] = true
	defer delete(r.active, v)

	env := r.env
	r.env = v.Scope
	val := r.reduce(item.Init)
	r.env = env
	v.Value = val
}

// member folds static access to class constants and to static members
// that are never written, and field access on folded objects.
func (r *reducer) member(n *ast.MemberExpr) symbols.Value {
	prop, ok := r.key(n.Prop)
	if !ok {
		return symbols.Unknown()
	}

	if obj, isName := n.Object.(*ast.Name); isName {
		if cls, isClass := lookup.Name(obj, r.env, false).(*symbols.ClassSymbol); isClass {
			return r.classMember(cls, prop)
		}
	}

	obj := r.reduce(n.Object)
	if obj.Kind != symbols.ValObject {
		return symbols.Unknown()
	}
	if v, ok := obj.Field(prop); ok {
		return v.Copy()
	}
	return symbols.Unknown()
}

func (r *reducer) classMember(cls *symbols.ClassSymbol, prop string) symbols.Value {
	v, ok := cls.Member(prop).(*symbols.VarSymbol)
	if !ok {
		return symbols.Unknown()
	}
	if v.Value.Kind == symbols.ValNone {
		r.pending(v)
	}
	constant := v.Flags.Has(symbols.FlagConst) ||
		(v.Flags.Has(symbols.FlagStatic) && v.Writes == 0)
	if !constant || !v.Value.Known() {
		return symbols.Unknown()
	}
	return v.Value.Copy()
}

func (r *reducer) offset(n *ast.OffsetExpr) symbols.Value {
	obj := r.reduce(n.Object)
	off := r.reduce(n.Offset)
	if !off.Scalar() {
		return symbols.Unknown()
	}
	switch obj.Kind {
	case symbols.ValArray, symbols.ValTuple:
		i, ok := off.ToInt()
		if !ok || i < 0 || i >= int64(len(obj.Items)) {
			return symbols.Unknown()
		}
		return obj.Items[i].Copy()
	case symbols.ValObject:
		key, _ := off.ToString()
		if v, ok := obj.Field(key); ok {
			return v.Copy()
		}
	case symbols.ValStr:
		i, ok := off.ToInt()
		if !ok || i < 0 || i >= int64(len(obj.Str)) {
			return symbols.Unknown()
		}
		return symbols.Str(obj.Str[i : i+1])
	}
	return symbols.Unknown()
}
