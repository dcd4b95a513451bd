package evaluator

import (
	"strconv"
	"strings"

	"github.com/gglang-dev/gglang/internal/ast"
)

func (ev *Evaluator) evalInterpolatedString(n *ast.InterpolatedString, env *Environment) Value {
	var sb strings.Builder
	for _, part := range n.Parts {
		v := ev.Eval(part, env)
		if isError(v) {
			return v
		}
		sb.WriteString(stringify(v))
	}
	return &String{Value: sb.String()}
}

// stringify renders a Value the way str(x) and interpolation do: bare for
// String, Inspect for everything else.
func stringify(v Value) string {
	if s, ok := v.(*String); ok {
		return s.Value
	}
	return v.Inspect()
}

func (ev *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, env *Environment) Value {
	elems := make([]Value, 0, len(n.Elements))
	for _, elNode := range n.Elements {
		v := ev.Eval(elNode, env)
		if isError(v) {
			return v
		}
		elems = append(elems, v)
	}
	return &List{Elements: elems}
}

func (ev *Evaluator) evalDictionary(n *ast.Dictionary, env *Environment) Value {
	d := NewDict()
	for _, pair := range n.Pairs {
		key := ev.Eval(pair.Key, env)
		if isError(key) {
			return key
		}
		val := ev.Eval(pair.Value, env)
		if isError(val) {
			return val
		}
		d.Set(key, val)
	}
	return d
}

func (ev *Evaluator) evalArrayAccess(n *ast.ArrayAccess, env *Environment) Value {
	container := ev.Eval(n.Array, env)
	if isError(container) {
		return container
	}
	index := ev.Eval(n.Index, env)
	if isError(index) {
		return index
	}

	switch c := container.(type) {
	case *List:
		idx, ok := index.(*Integer)
		if !ok {
			return newError(TypeMismatch, "list index must be an integer, got %s", index.Type())
		}
		i := int(idx.Value)
		if i < 0 || i >= len(c.Elements) {
			return newError(IndexOutOfRange, "list index %d out of range (length %d)", i, len(c.Elements))
		}
		return c.Elements[i]
	case *Dict:
		v, ok := c.Get(index)
		if !ok {
			return newError(KeyMissing, "key %s not found", index.Inspect())
		}
		return v
	case *String:
		idx, ok := index.(*Integer)
		if !ok {
			return newError(TypeMismatch, "string index must be an integer, got %s", index.Type())
		}
		runes := []rune(c.Value)
		i := int(idx.Value)
		if i < 0 || i >= len(runes) {
			return newError(IndexOutOfRange, "string index %d out of range (length %d)", i, len(runes))
		}
		return &String{Value: string(runes[i])}
	default:
		return newError(TypeMismatch, "%s is not subscriptable", container.Type())
	}
}

// evalBinOp implements spec §4.2's arithmetic/comparison table: Integer
// division floors (matching the language's `//`-style operator, exposed here
// as plain `/` since GGLang's surface syntax has one division operator),
// Float division is IEEE division, String `+` concatenates, `==`/`!=` use
// structural equality with Int/Float cross-promotion.
func (ev *Evaluator) evalBinOp(n *ast.BinOp, env *Environment) Value {
	left := ev.Eval(n.Left, env)
	if isError(left) {
		return left
	}
	right := ev.Eval(n.Right, env)
	if isError(right) {
		return right
	}

	switch n.Op {
	case "==":
		return nativeBool(valuesEqual(left, right))
	case "!=":
		return nativeBool(!valuesEqual(left, right))
	}

	if ls, ok := left.(*String); ok {
		if n.Op == "+" {
			rs, ok := right.(*String)
			if !ok {
				return newError(TypeMismatch, "cannot concatenate str with %s", right.Type())
			}
			return &String{Value: ls.Value + rs.Value}
		}
		return newError(TypeMismatch, "operator '%s' not supported between str and %s", n.Op, right.Type())
	}

	li, lIsInt := left.(*Integer)
	ri, rIsInt := right.(*Integer)
	if lIsInt && rIsInt {
		return intBinOp(n.Op, li.Value, ri.Value)
	}

	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return newError(TypeMismatch, "operator '%s' not supported between %s and %s", n.Op, left.Type(), right.Type())
	}
	return floatBinOp(n.Op, lf, rf)
}

func numericValue(v Value) (float64, bool) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), true
	case *Float:
		return n.Value, true
	}
	return 0, false
}

// floorDiv is Python-style floor division: the quotient rounds
// toward negative infinity, so -7/2 == -4 (spec §8, §9 Open Question
// resolved toward floor semantics as the spec requires).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func intBinOp(op string, a, b int64) Value {
	switch op {
	case "+":
		return &Integer{Value: a + b}
	case "-":
		return &Integer{Value: a - b}
	case "*":
		return &Integer{Value: a * b}
	case "/":
		if b == 0 {
			return newError(DivideByZero, "integer division by zero")
		}
		return &Integer{Value: floorDiv(a, b)}
	case ">":
		return nativeBool(a > b)
	case "<":
		return nativeBool(a < b)
	case ">=":
		return nativeBool(a >= b)
	case "<=":
		return nativeBool(a <= b)
	}
	return newError(RuntimeOther, "unknown operator '%s'", op)
}

func floatBinOp(op string, a, b float64) Value {
	switch op {
	case "+":
		return &Float{Value: a + b}
	case "-":
		return &Float{Value: a - b}
	case "*":
		return &Float{Value: a * b}
	case "/":
		if b == 0 {
			return newError(DivideByZero, "float division by zero")
		}
		return &Float{Value: a / b}
	case ">":
		return nativeBool(a > b)
	case "<":
		return nativeBool(a < b)
	case ">=":
		return nativeBool(a >= b)
	case "<=":
		return nativeBool(a <= b)
	}
	return newError(RuntimeOther, "unknown operator '%s'", op)
}

// coerceTo applies one of the four primitive coercers by name, the same
// conversions int()/float()/str()/bool() perform (spec §4.6, §4.7).
func coerceTo(typeName string, v Value) (Value, bool) {
	switch typeName {
	case "int":
		return coerceToInt(v)
	case "float":
		return coerceToFloat(v)
	case "str":
		return &String{Value: stringify(v)}, true
	case "bool":
		return nativeBool(isTruthy(v)), true
	}
	return nil, false
}

func coerceToInt(v Value) (Value, bool) {
	switch val := v.(type) {
	case *Integer:
		return val, true
	case *Float:
		return &Integer{Value: int64(val.Value)}, true
	case *String:
		n, err := strconv.ParseInt(strings.TrimSpace(val.Value), 10, 64)
		if err != nil {
			return nil, false
		}
		return &Integer{Value: n}, true
	case *Boolean:
		if val.Value {
			return &Integer{Value: 1}, true
		}
		return &Integer{Value: 0}, true
	}
	return nil, false
}

func coerceToFloat(v Value) (Value, bool) {
	switch val := v.(type) {
	case *Float:
		return val, true
	case *Integer:
		return &Float{Value: float64(val.Value)}, true
	case *String:
		f, err := strconv.ParseFloat(strings.TrimSpace(val.Value), 64)
		if err != nil {
			return nil, false
		}
		return &Float{Value: f}, true
	case *Boolean:
		if val.Value {
			return &Float{Value: 1}, true
		}
		return &Float{Value: 0}, true
	}
	return nil, false
}
