package params

import (
	"math"
	"reflect"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uribuilder/internal/errorutil"
)

// ErrInvalidType is returned when a non-scalar value is used as a parameter value.
const ErrInvalidType errorutil.Error = "invalid parameter value type"

// Kind identifies the variant stored in a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
)

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a scalar parameter value: a string, a number, a boolean or null.
// The zero Value is null.
//
// Values are comparable with ==.
type Value struct {
	kind Kind
	str  string
	num  uint64 // int64, uint64, float64 bits or bool
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns a signed integer Value.
func Int(i int64) Value { return Value{kind: KindInt, num: uint64(i)} }

// Uint returns an unsigned integer Value.
func Uint(u uint64) Value { return Value{kind: KindUint, num: u} }

// Float returns a floating point Value.
func Float(f float64) Value { return Value{kind: KindFloat, num: math.Float64bits(f)} }

// Bool returns a boolean Value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Null returns the null Value.
func Null() Value { return Value{} }

// ValueOf converts a Go scalar to a Value.
//
// Accepted are nil, strings, booleans, integers, unsigned integers, floats,
// named types with one of those underlying kinds and Value itself.
// Any other type (slices, arrays, maps, structs, pointers, ...) results in [ErrInvalidType].
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		// keep the shortest float32 representation, 0.1 must not become 0.10000000149011612
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), 64)
		return Float(f), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	default:
		return Value{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidType, "%T", v))
	}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the stored string and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the stored signed integer and whether v is a signed integer.
func (v Value) AsInt() (int64, bool) { return int64(v.num), v.kind == KindInt }

// AsUint returns the stored unsigned integer and whether v is an unsigned integer.
func (v Value) AsUint() (uint64, bool) { return v.num, v.kind == KindUint }

// AsFloat returns the stored float and whether v is a float.
func (v Value) AsFloat() (float64, bool) { return math.Float64frombits(v.num), v.kind == KindFloat }

// AsBool returns the stored boolean and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.num != 0, v.kind == KindBool }

// Interface returns the stored value as a Go value: nil, string, int64, uint64, float64 or bool.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return int64(v.num)
	case KindUint:
		return v.num
	case KindFloat:
		return math.Float64frombits(v.num)
	case KindBool:
		return v.num != 0
	default:
		return nil
	}
}

// String returns the natural string representation of the value.
// Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindUint:
		return strconv.FormatUint(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	default:
		return ""
	}
}

// Equal reports whether v and val hold the same variant and value.
// val can be a Value or a *Value.
func (v Value) Equal(val any) bool {
	switch other := val.(type) {
	case Value:
		return v == other
	case *Value:
		return other != nil && v == *other
	default:
		return false
	}
}
