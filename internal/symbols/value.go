package symbols

import (
	"fmt"
	"strings"
)

type ValueKind int

const (
	// ValNone marks a declaration the reducer has not looked at yet.
	// It is the zero Value.
	ValNone ValueKind = iota
	// ValUnknown is a value that is known to be undecidable at compile time.
	ValUnknown
	ValStr
	ValRegexp
	ValInt
	ValFloat
	ValBool
	ValNull
	// ValSymbol is an unknown value that is known to come from Sym.
	ValSymbol
	ValArray
	ValObject
	ValTuple
)

var valueKindNames = [...]string{
	"none", "unknown", "str", "regexp", "int", "float", "bool", "null",
	"symbol", "array", "object", "tuple",
}

func (k ValueKind) String() string {
	if k < ValNone || k > ValTuple {
		return fmt.Sprintf("value(%d)", int(k))
	}
	return valueKindNames[k]
}

// Value is the compile-time value of an expression.
type Value struct {
	Kind  ValueKind
	Str   string // str, regexp
	Int   int64
	Float float64
	Bool  bool
	Sym   Symbol

	// Items holds array and tuple elements and object values; Keys holds
	// object keys in declaration order.
	Items []Value
	Keys  []string
}

func None() Value    { return Value{} }
func Unknown() Value { return Value{Kind: ValUnknown} }
func Null() Value    { return Value{Kind: ValNull} }

func Str(s string) Value        { return Value{Kind: ValStr, Str: s} }
func Regexp(s string) Value     { return Value{Kind: ValRegexp, Str: s} }
func Int(i int64) Value         { return Value{Kind: ValInt, Int: i} }
func Float(f float64) Value     { return Value{Kind: ValFloat, Float: f} }
func Bool(b bool) Value         { return Value{Kind: ValBool, Bool: b} }
func SymbolOf(sym Symbol) Value { return Value{Kind: ValSymbol, Sym: sym} }

func Array(items []Value) Value { return Value{Kind: ValArray, Items: items} }
func Tuple(items []Value) Value { return Value{Kind: ValTuple, Items: items} }

func Object(keys []string, values []Value) Value {
	return Value{Kind: ValObject, Keys: keys, Items: values}
}

// Known reports whether v carries a concrete compile-time value.
func (v Value) Known() bool {
	switch v.Kind {
	case ValNone, ValUnknown, ValSymbol:
		return false
	}
	return true
}

// Scalar reports whether v is a known non-aggregate value.
func (v Value) Scalar() bool {
	switch v.Kind {
	case ValStr, ValRegexp, ValInt, ValFloat, ValBool, ValNull:
		return true
	}
	return false
}

// Field returns the object value stored under key.
func (v Value) Field(key string) (Value, bool) {
	for i, k := range v.Keys {
		if k == key {
			return v.Items[i], true
		}
	}
	return Value{}, false
}

// Copy duplicates aggregate storage so the copy can be changed freely.
func (v Value) Copy() Value {
	if v.Items != nil {
		items := make([]Value, len(v.Items))
		for i, it := range v.Items {
			items[i] = it.Copy()
		}
		v.Items = items
	}
	if v.Keys != nil {
		v.Keys = append([]string(nil), v.Keys...)
	}
	return v
}

func (v Value) String() string {
	switch v.Kind {
	case ValStr:
		return fmt.Sprintf("%q", v.Str)
	case ValRegexp:
		return "/" + v.Str + "/"
	case ValInt:
		return fmt.Sprintf("%d", v.Int)
	case ValFloat:
		return formatFloat(v.Float)
	case ValBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValNull:
		return "null"
	case ValSymbol:
		if v.Sym == nil {
			return "<symbol>"
		}
		return "<" + v.Sym.String() + ">"
	case ValArray, ValTuple:
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = it.String()
		}
		if v.Kind == ValTuple {
			return "(" + strings.Join(parts, ", ") + ")"
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValObject:
		parts := make([]string, len(v.Items))
		for i, it := range v.Items {
			parts[i] = v.Keys[i] + ": " + it.String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "<" + v.Kind.String() + ">"
}

// Identical is strict equality: same kind and same payload.
func Identical(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValStr, ValRegexp:
		return a.Str == b.Str
	case ValInt:
		return a.Int == b.Int
	case ValFloat:
		return a.Float == b.Float
	case ValBool:
		return a.Bool == b.Bool
	case ValNull:
		return true
	case ValSymbol:
		return a.Sym == b.Sym
	case ValArray, ValTuple, ValObject:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if a.Kind == ValObject && a.Keys[i] != b.Keys[i] {
				return false
			}
			if !Identical(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
