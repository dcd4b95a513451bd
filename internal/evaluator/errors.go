package evaluator

import "fmt"

// ErrorKind tags a RuntimeError the way spec §7 enumerates them, so catch
// blocks and the CLI can report a stable, user-meaningful category.
type ErrorKind string

const (
	NameUndefined     ErrorKind = "NameUndefined"
	NameUninitialized ErrorKind = "NameUninitialized"
	TypeMismatch      ErrorKind = "TypeMismatch"
	ArityMismatch     ErrorKind = "ArityMismatch"
	IndexOutOfRange   ErrorKind = "IndexOutOfRange"
	KeyMissing        ErrorKind = "KeyMissing"
	ValueNotFound     ErrorKind = "ValueNotFound"
	DivideByZero      ErrorKind = "DivideByZero"
	CoercionFailed    ErrorKind = "CoercionFailed"
	AssertionFailed   ErrorKind = "AssertionFailed"
	NotCallable       ErrorKind = "NotCallable"
	RuntimeOther      ErrorKind = "RuntimeOther"
)

// RuntimeError is the evaluator's one error Value. Like the teacher's
// evaluator, errors flow as ordinary Objects returned from Eval rather than
// as Go errors or panics, so a single isError check after every recursive
// Eval call is enough to propagate a failure.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
}

func (e *RuntimeError) Type() ValueType { return ErrorValueType }
func (e *RuntimeError) Inspect() string { return string(e.Kind) + ": " + e.Message }

func newError(kind ErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func isError(v Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(*RuntimeError)
	return ok
}
