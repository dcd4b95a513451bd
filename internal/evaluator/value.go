package evaluator

import "fmt"

// ValueType names the runtime tag of a Value, surfaced to user code by the
// type() built-in (spec §4.7).
type ValueType string

const (
	IntegerType     ValueType = "int"
	FloatType       ValueType = "float"
	StringType      ValueType = "str"
	BooleanType     ValueType = "bool"
	ListType        ValueType = "list"
	DictType        ValueType = "dict"
	NullType        ValueType = "Null"
	UninitType      ValueType = "Uninitialized"
	UserFunctionT   ValueType = "Function"
	BoundMethodT    ValueType = "BoundMethod"
	ClassType       ValueType = "Class"
	InstanceType    ValueType = "Instance"
	SuperHandleType ValueType = "Super"
	NativeType      ValueType = "Native"
	ErrorValueType  ValueType = "Error"
	returnSignalT   ValueType = "ReturnSignal"
)

// Value is the tagged runtime variant every expression evaluates to
// (spec §3). Inspect renders the value the way print/str()/interpolation do.
type Value interface {
	Type() ValueType
	Inspect() string
}

// Integer is a 64-bit signed integer (spec §3's Integer case).
type Integer struct{ Value int64 }

func (i *Integer) Type() ValueType { return IntegerType }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Float is an IEEE-754 double.
type Float struct{ Value float64 }

func (f *Float) Type() ValueType { return FloatType }
func (f *Float) Inspect() string { return formatFloat(f.Value) }

func formatFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}

// String is a Unicode scalar sequence.
type String struct{ Value string }

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }

// Boolean is true or false.
type Boolean struct{ Value bool }

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

// Null is the implicit-return sentinel (spec §3).
type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Inspect() string { return "Null" }

var NULL = &Null{}

// Uninitialized marks a declared-but-unassigned binding; reading it raises
// NameUninitialized (spec §3, §7).
type Uninitialized struct{}

func (u *Uninitialized) Type() ValueType { return UninitType }
func (u *Uninitialized) Inspect() string { return "Uninitialized" }

var UNINITIALIZED = &Uninitialized{}

// isTruthy implements spec §4.2's truthiness rule: not false, not 0/0.0, not
// empty String/List/Dict, not Null.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case *Boolean:
		return val.Value
	case *Integer:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *List:
		return len(val.Elements) != 0
	case *Dict:
		return dictLen(val) != 0
	case *Null:
		return false
	default:
		return true
	}
}
