package symbols

import (
	"math"
	"strconv"
	"strings"
)

// Conversions follow the host language's rules for scalars. Each
// returns ok=false when the operand has no compile-time conversion.

// ToBool converts v to a boolean.
func (v Value) ToBool() (bool, bool) {
	switch v.Kind {
	case ValBool:
		return v.Bool, true
	case ValInt:
		return v.Int != 0, true
	case ValFloat:
		return v.Float != 0, true
	case ValStr:
		return v.Str != "" && v.Str != "0", true
	case ValNull:
		return false, true
	case ValRegexp, ValObject:
		return true, true
	case ValArray, ValTuple:
		return len(v.Items) > 0, true
	}
	return false, false
}

// ToString converts a scalar to its string form.
func (v Value) ToString() (string, bool) {
	switch v.Kind {
	case ValStr, ValRegexp:
		return v.Str, true
	case ValInt:
		return strconv.FormatInt(v.Int, 10), true
	case ValFloat:
		return formatFloat(v.Float), true
	case ValBool:
		if v.Bool {
			return "1", true
		}
		return "", true
	case ValNull:
		return "", true
	}
	return "", false
}

// ToNumber converts a scalar to an int or float value. Strings use their
// leading numeric prefix; a string without one is 0.
func (v Value) ToNumber() (Value, bool) {
	switch v.Kind {
	case ValInt, ValFloat:
		return v, true
	case ValBool:
		if v.Bool {
			return Int(1), true
		}
		return Int(0), true
	case ValNull:
		return Int(0), true
	case ValStr:
		n, _ := parseNumericPrefix(v.Str)
		return n, true
	}
	return Value{}, false
}

// ToInt converts a scalar to an integer, truncating floats.
func (v Value) ToInt() (int64, bool) {
	n, ok := v.ToNumber()
	if !ok {
		return 0, false
	}
	if n.Kind == ValInt {
		return n.Int, true
	}
	return floatToInt(n.Float), true
}

// ToFloat converts a scalar to a float.
func (v Value) ToFloat() (float64, bool) {
	n, ok := v.ToNumber()
	if !ok {
		return 0, false
	}
	if n.Kind == ValInt {
		return float64(n.Int), true
	}
	return n.Float, true
}

// IsNumeric reports whether v is a number or a string that is a number
// as a whole (surrounding whitespace allowed).
func (v Value) IsNumeric() bool {
	switch v.Kind {
	case ValInt, ValFloat:
		return true
	case ValStr:
		_, whole := parseNumericPrefix(v.Str)
		return whole
	}
	return false
}

func floatToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

// parseNumericPrefix reads the longest numeric prefix of s after leading
// whitespace. whole is true when nothing but whitespace follows it.
func parseNumericPrefix(s string) (Value, bool) {
	t := strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		i++
	}
	digits := 0
	for i < len(t) && isDigit(t[i]) {
		i++
		digits++
	}
	isFloat := false
	if i < len(t) && t[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(t) && isDigit(t[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
			isFloat = true
		}
	}
	if digits == 0 {
		return Int(0), false
	}
	if i < len(t) && (t[i] == 'e' || t[i] == 'E') {
		j := i + 1
		if j < len(t) && (t[j] == '+' || t[j] == '-') {
			j++
		}
		if j < len(t) && isDigit(t[j]) {
			for j < len(t) && isDigit(t[j]) {
				j++
			}
			i = j
			isFloat = true
		}
	}
	num, rest := t[:i], t[i:]
	whole := strings.TrimRight(rest, " \t\n\r\v\f") == ""
	if !isFloat {
		if n, err := strconv.ParseInt(num, 10, 64); err == nil {
			return Int(n), whole
		}
	}
	f, _ := strconv.ParseFloat(num, 64)
	return Float(f), whole
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// formatFloat renders f the way the host prints floats: 14 significant
// digits, integral values without a fraction, exponents as 1.0E+20.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	s := strconv.FormatFloat(f, 'G', 14, 64)
	mant, exp, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := exp[0]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "E" + string(sign) + exp
}
