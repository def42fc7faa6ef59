// Package value implements mv: the tagged value the DSL runtime operates on.
// Records hold only strings; mv.Value is strictly internal to the DSL and to
// the sec2gmt verb's scan/format contract.
package value

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent marks "no value" — distinct from the empty string. It
	// never appears as a record field value; it exists only inside the
	// DSL runtime (e.g. an unset local, or a function that fell off the
	// end of its body without returning).
	KindAbsent Kind = iota
	KindEmpty
	KindString
	KindInt
	KindFloat
	KindError
)

// Value is the mv sum type: absent, empty, string, int, float, or error.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	err  string
}

// Absent returns the absent value.
func Absent() Value { return Value{kind: KindAbsent} }

// Empty returns the empty-string value, distinct from Absent.
func Empty() Value { return Value{kind: KindEmpty} }

// String wraps a non-numeric string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int wraps an integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Error wraps an error-message value. Errors are ordinary mv values, not Go
// errors: they propagate through DSL expressions per the value library's
// own semantics rather than via Go's error-return convention.
func Error(msg string) Value { return Value{kind: KindError, err: msg} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the absent value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsError reports whether v is an error value.
func (v Value) IsError() bool { return v.kind == KindError }

// String renders v for diagnostics and for DSL string concatenation.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "(absent)"
	case KindEmpty:
		return ""
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindError:
		return "(error: " + v.err + ")"
	default:
		return ""
	}
}

// Scan converts a non-empty string into an mv: Int if it parses as an
// integer, else Float if numeric, else Error. The empty string is not a
// valid input to Scan; callers must special-case it to Empty as §4.4
// requires (empty values pass through sec2gmt unchanged, they are not
// scanned).
func Scan(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Error(fmt.Sprintf("could not parse %q as number", s))
}

// ScanNumberOrDie is the mv_scan_number_or_die contract: it returns the
// scanned value, and a second value of false if the string did not parse as
// a number. Callers in the fatal-on-type-error path (sec2gmt) check the
// bool and invoke their own diagnostic/exit logic; ScanNumberOrDie itself
// never exits the process, matching the rest of this package's "errors are
// values" discipline.
func ScanNumberOrDie(s string) (Value, bool) {
	v := Scan(s)
	return v, !v.IsError()
}

// AsFloat returns v's numeric value and whether v was numeric (Int or
// Float).
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Add implements the DSL's "+" operator for the numeric cases this
// interpreter supports: int+int stays int, anything involving a float
// promotes to float, and anything non-numeric yields an Error value.
func Add(a, b Value) Value {
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i + b.i)
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if aok && bok {
		return Float(af + bf)
	}
	return Error("non-numeric operand to +")
}

// Mul implements the DSL's "*" operator, with the same int/float promotion
// rule as Add.
func Mul(a, b Value) Value {
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i * b.i)
	}
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	if aok && bok {
		return Float(af * bf)
	}
	return Error("non-numeric operand to *")
}

// ISO8601GMTFormat is the wire format for sec2gmt/FormatISO8601GMT output.
const ISO8601GMTFormat = "2006-01-02T15:04:05Z"

// FormatISO8601GMT formats a numeric (Int or Float) seconds-since-epoch
// value as an ISO-8601 GMT string value, per §3's "formatting float/int
// seconds as ISO-8601 GMT yields a string" conversion rule.
func FormatISO8601GMT(v Value) (Value, bool) {
	f, ok := v.AsFloat()
	if !ok {
		return Error("sec2gmt: non-numeric value"), false
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	t := time.Unix(sec, nsec).UTC()
	return String(t.Format(ISO8601GMTFormat)), true
}
