package evaluator

import (
	"fmt"
	"os"
	"strings"

	"github.com/gglang-dev/gglang/internal/config"
	"github.com/mattn/go-isatty"
)

// registerBuiltins preseeds the global environment with the native
// functions spec §4.7 requires, plus the four primitive coercers the
// coercion pipe resolves by name.
func registerBuiltins(ev *Evaluator) {
	define := func(name string, min, max int, fn NativeFunc) {
		ev.Global.Define(name, &Native{Name: name, MinArgs: min, MaxArgs: max, Fn: fn})
	}

	define(config.PrintFuncName, 0, -1, builtinPrint)
	define(config.LenFuncName, 1, 1, builtinLen)
	define(config.AppendFuncName, 2, 2, builtinAppend)
	define(config.PopFuncName, 1, 2, builtinPop)
	define(config.RemoveFuncName, 2, 2, builtinRemove)
	define(config.TypeFuncName, 1, 1, builtinType)
	define(config.InputFuncName, 0, 1, builtinInput)
	define(config.AssertFuncName, 1, 2, builtinAssert)

	for name := range config.PrimitiveTypeNames {
		fn, ok := primitiveCoercers[name]
		if !ok {
			continue
		}
		define(name, 1, 1, fn)
	}
}

// primitiveCoercers maps each of config.PrimitiveTypeNames to the native
// function that implements it, so registerBuiltins and the `~~>` coercion
// pipe (coerceTo in eval_expressions.go) stay driven by the same name set.
var primitiveCoercers = map[string]NativeFunc{
	"int":   builtinInt,
	"float": builtinFloat,
	"str":   builtinStr,
	"bool":  builtinBool,
}

func builtinPrint(ev *Evaluator, args []Value) Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = stringify(a)
	}
	fmt.Fprintln(ev.Stdout, strings.Join(parts, " "))
	return NULL
}

func builtinLen(ev *Evaluator, args []Value) Value {
	switch v := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len([]rune(v.Value)))}
	case *List:
		return &Integer{Value: int64(len(v.Elements))}
	case *Dict:
		return &Integer{Value: int64(dictLen(v))}
	default:
		return newError(TypeMismatch, "object of type %s has no len()", args[0].Type())
	}
}

func builtinAppend(ev *Evaluator, args []Value) Value {
	list, ok := args[0].(*List)
	if !ok {
		return newError(TypeMismatch, "append() expects a list as first argument, got %s", args[0].Type())
	}
	list.Elements = append(list.Elements, args[1])
	return NULL
}

func builtinPop(ev *Evaluator, args []Value) Value {
	list, ok := args[0].(*List)
	if !ok {
		return newError(TypeMismatch, "pop() expects a list as first argument, got %s", args[0].Type())
	}
	index := -1
	if len(args) == 2 {
		idx, ok := args[1].(*Integer)
		if !ok {
			return newError(TypeMismatch, "pop() index must be an integer, got %s", args[1].Type())
		}
		index = int(idx.Value)
	}
	n := len(list.Elements)
	if n == 0 {
		return newError(IndexOutOfRange, "pop from empty list")
	}
	if index < 0 {
		index += n
	}
	if index < 0 || index >= n {
		return newError(IndexOutOfRange, "pop index %d out of range (length %d)", index, n)
	}
	val := list.Elements[index]
	list.Elements = append(list.Elements[:index], list.Elements[index+1:]...)
	return val
}

func builtinRemove(ev *Evaluator, args []Value) Value {
	list, ok := args[0].(*List)
	if !ok {
		return newError(TypeMismatch, "remove() expects a list as first argument, got %s", args[0].Type())
	}
	for i, el := range list.Elements {
		if valuesEqual(el, args[1]) {
			list.Elements = append(list.Elements[:i], list.Elements[i+1:]...)
			return NULL
		}
	}
	return newError(ValueNotFound, "value %s not found in list", args[1].Inspect())
}

func builtinType(ev *Evaluator, args []Value) Value {
	v := args[0]
	switch v.(type) {
	case *Integer:
		return &String{Value: "int"}
	case *Float:
		return &String{Value: "float"}
	case *String:
		return &String{Value: "str"}
	case *Boolean:
		return &String{Value: "bool"}
	case *List:
		return &String{Value: "list"}
	case *Dict:
		return &String{Value: "dict"}
	case *Instance:
		return &String{Value: "Instance"}
	case *Null:
		return &String{Value: "Null"}
	default:
		return &String{Value: string(v.Type())}
	}
}

// builtinInput prints prompt (if any) only when standard input is an
// interactive terminal, so piped/scripted input doesn't get a stray prompt
// line mixed into its output (spec §4.7, §6 standard streams).
func builtinInput(ev *Evaluator, args []Value) Value {
	if len(args) == 1 {
		prompt, ok := args[0].(*String)
		if !ok {
			return newError(TypeMismatch, "input() prompt must be a str, got %s", args[0].Type())
		}
		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprint(ev.Stdout, prompt.Value)
		}
	}
	line, err := ev.Stdin.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return &String{Value: ""}
	}
	return &String{Value: line}
}

func builtinAssert(ev *Evaluator, args []Value) Value {
	if isTruthy(args[0]) {
		return NULL
	}
	message := "Assertion failed."
	if len(args) == 2 && isTruthy(args[1]) {
		message = stringify(args[1])
	}
	return newError(AssertionFailed, "%s", message)
}

func builtinInt(ev *Evaluator, args []Value) Value {
	v, ok := coerceToInt(args[0])
	if !ok {
		return newError(CoercionFailed, "could not convert %s to int", args[0].Inspect())
	}
	return v
}

func builtinFloat(ev *Evaluator, args []Value) Value {
	v, ok := coerceToFloat(args[0])
	if !ok {
		return newError(CoercionFailed, "could not convert %s to float", args[0].Inspect())
	}
	return v
}

func builtinStr(ev *Evaluator, args []Value) Value {
	return &String{Value: stringify(args[0])}
}

func builtinBool(ev *Evaluator, args []Value) Value {
	return nativeBool(isTruthy(args[0]))
}
