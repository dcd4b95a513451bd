package evaluator

import "strings"

// stringMethod exposes the handful of callables spec §4.2 requires on
// String values: upper() and lower(). Each closes over the receiver so it
// can be called with zero further arguments.
func stringMethod(receiver *String, name string) Value {
	switch name {
	case "upper":
		return &Native{
			Name: "upper", MinArgs: 0, MaxArgs: 0,
			Fn: func(ev *Evaluator, args []Value) Value {
				return &String{Value: strings.ToUpper(receiver.Value)}
			},
		}
	case "lower":
		return &Native{
			Name: "lower", MinArgs: 0, MaxArgs: 0,
			Fn: func(ev *Evaluator, args []Value) Value {
				return &String{Value: strings.ToLower(receiver.Value)}
			},
		}
	default:
		return newError(TypeMismatch, "str has no property '%s'", name)
	}
}
