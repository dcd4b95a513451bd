package evaluator

import (
	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/config"
	"github.com/gglang-dev/gglang/internal/pipeline"
)

// evalPipe implements spec §4.6's Pipe evaluation: the coercion pipe `~~>`
// converts its input before stepping; the plain pipe `-->` steps directly.
func (ev *Evaluator) evalPipe(n *ast.Pipe, env *Environment) Value {
	left := ev.Eval(n.Left, env)
	if isError(left) {
		return left
	}
	if n.Op == "~~>" {
		return ev.evalCoercionPipe(n, left, env)
	}
	return ev.executePipeStep(n.Right, left, env)
}

func (ev *Evaluator) evalCoercionPipe(n *ast.Pipe, left Value, env *Environment) Value {
	callNode, ok := n.Right.(*ast.Call)
	if !ok {
		return newError(TypeMismatch, "coercion pipe '~~>' must be followed by a function call")
	}

	placeholderIndex := -1
	for i, a := range callNode.Args {
		if v, ok := a.(*ast.Variable); ok && v.Name == "_" {
			placeholderIndex = i
			break
		}
	}
	if placeholderIndex == -1 {
		// No placeholder: behave like a plain pipe (spec §4.6 step 2).
		return ev.executePipeStep(n.Right, left, env)
	}

	calleeVal := ev.Eval(callNode.Callee, env)
	if isError(calleeVal) {
		return calleeVal
	}
	fn, ok := calleeVal.(*UserFunction)
	if !ok {
		return newError(TypeMismatch, "coercion pipe '~~>' is currently only supported for user-defined functions")
	}
	if placeholderIndex >= len(fn.Decl.Params) {
		return newError(ArityMismatch, "too many arguments for function '%s'", fn.Decl.Name)
	}
	param := fn.Decl.Params[placeholderIndex]
	typeName := ""
	if param.Type != nil {
		typeName = param.Type.Name
	}
	if !config.PrimitiveTypeNames[typeName] {
		return newError(CoercionFailed, "unknown type '%s' for coercion", typeName)
	}
	coerced, ok := coerceTo(typeName, left)
	if !ok {
		return newError(CoercionFailed, "could not coerce value '%s' to type '%s'", left.Inspect(), typeName)
	}
	return ev.executePipeStep(n.Right, coerced, env)
}

func (ev *Evaluator) evalAssignmentPipe(n *ast.AssignmentPipe, env *Environment) Value {
	val := ev.Eval(n.Value, env)
	if isError(val) {
		return val
	}
	env.Define(n.Target, val)
	return val
}

// executePipeStep runs one pipeline step node (spec §4.6 "Step execution").
func (ev *Evaluator) executePipeStep(step ast.Node, input Value, env *Environment) Value {
	switch s := step.(type) {
	case *ast.ModifiedExpression:
		result, errv := ev.executeModifiedStep(s, input, env)
		if errv != nil {
			return errv
		}
		return result
	case *ast.TypedPipeTarget:
		env.Define(s.Name, input)
		return input
	default:
		return ev.executeSimpleStep(step, input, env)
	}
}

// executeSimpleStep evaluates expr in a child environment with `_` bound to
// input; the child environment is discarded afterward (spec §4.6, invariant
// that `_` never leaks outward).
//
// A bare function-name step (`x --> double`, spec §8 scenario 2) is point-free
// sugar for calling that function with `_`: if expr is a plain Variable and
// it resolves to a Callable, it is invoked with the current value as its
// sole argument rather than returned as a function value. A Variable that
// resolves to a non-callable is returned unchanged, preserving the law that
// `v --> E` equals `E` for any E that does not itself reference `_`.
func (ev *Evaluator) executeSimpleStep(expr ast.Node, input Value, env *Environment) Value {
	stepEnv := NewEnclosedEnvironment(env)
	stepEnv.Define("_", input)

	if v, ok := expr.(*ast.Variable); ok {
		fn, found := stepEnv.Get(v.Name)
		if !found {
			return newError(NameUndefined, "name '%s' is not defined", v.Name)
		}
		if callable, ok := fn.(Callable); ok {
			return ev.applyCall(callable, []Value{input})
		}
		return fn
	}

	return ev.Eval(expr, stepEnv)
}

// runtimeErrAsError adapts a *RuntimeError to the plain `error` interface
// pipeline.Repeat expects, so the generic step runner stays evaluator-agnostic.
type runtimeErrAsError struct{ re *RuntimeError }

func (e runtimeErrAsError) Error() string { return e.re.Message }

// executeModifiedStep implements spec §4.6's modifier algebra: conditional
// modifiers gate on the original input value; at most one repetition
// modifier is honored, threading each iteration's output as the next input.
//
// This is built as one pipeline.Run call: a step per `?cond` modifier, then a
// final step that applies the expression (repetitionCount times, via
// pipeline.Repeat). Each `?cond` step never transforms the value — it only
// ever reports ok=false, per pipeline.Run's "skip this step, pass input
// through unchanged" contract — and latches shouldRun to false when its
// condition is falsy. The final step also reports ok=false (skip) once
// shouldRun has gone false, so a failed condition leaves input untouched
// exactly as if the whole modified expression had never run.
func (ev *Evaluator) executeModifiedStep(n *ast.ModifiedExpression, input Value, env *Environment) (Value, *RuntimeError) {
	shouldRun := true

	steps := make([]pipeline.Step[Value], 0, len(n.Modifiers)+1)
	for _, m := range n.Modifiers {
		cond, ok := m.(*ast.ConditionalModifier)
		if !ok {
			continue
		}
		steps = append(steps, pipeline.Step[Value]{Run: func(in Value) (Value, bool, error) {
			if !shouldRun {
				return in, false, nil
			}
			result := ev.executeSimpleStep(cond.Condition, in, env)
			if isError(result) {
				return nil, false, runtimeErrAsError{result.(*RuntimeError)}
			}
			if !isTruthy(result) {
				shouldRun = false
			}
			return in, false, nil
		}})
	}

	repetitionCount := 1
	for _, m := range n.Modifiers {
		if rep, ok := m.(*ast.RepetitionModifier); ok {
			repetitionCount = rep.Count
			break
		}
	}

	steps = append(steps, pipeline.Step[Value]{Run: func(in Value) (Value, bool, error) {
		if !shouldRun {
			return in, false, nil
		}
		repStep := pipeline.Step[Value]{Run: func(in2 Value) (Value, bool, error) {
			result := ev.executeSimpleStep(n.Expression, in2, env)
			if isError(result) {
				return nil, false, runtimeErrAsError{result.(*RuntimeError)}
			}
			return result, true, nil
		}}
		out, err := pipeline.Repeat(in, repetitionCount, repStep)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	}})

	out, err := pipeline.Run(input, steps...)
	if err != nil {
		if wrapped, ok := err.(runtimeErrAsError); ok {
			return nil, wrapped.re
		}
		return nil, newError(RuntimeOther, "%s", err.Error())
	}
	return out, nil
}
