package evaluator

// ReturnSignal wraps a function body's return value so Eval's block-walking
// loop can unwind to the call site without using Go panics (mirrors the
// teacher's sentinel-object control flow).
type ReturnSignal struct {
	Value Value
}

func (r *ReturnSignal) Type() ValueType { return returnSignalT }
func (r *ReturnSignal) Inspect() string { return r.Value.Inspect() }

func isReturn(v Value) bool {
	_, ok := v.(*ReturnSignal)
	return ok
}
