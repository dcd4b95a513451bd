package evaluator

import "github.com/gglang-dev/gglang/internal/ast"

// Callable is implemented by every Value that Call can invoke: user-defined
// functions and methods, bound methods, classes (as constructors), and
// natives.
type Callable interface {
	Value
	Arity() int
}

// UserFunction is a `fn` declaration closed over the environment it was
// defined in.
type UserFunction struct {
	Decl *ast.FuncDecl
	Env  *Environment
}

func (f *UserFunction) Type() ValueType { return UserFunctionT }
func (f *UserFunction) Inspect() string { return "<function " + f.Decl.Name + ">" }
func (f *UserFunction) Arity() int      { return len(f.Decl.Params) }

// BoundMethod pairs a method's UserFunction with the Instance it was looked
// up on, so `this` (and, via DefiningClass, `super`) resolve correctly even
// after the method value is passed around independently of its receiver.
type BoundMethod struct {
	Receiver      *Instance
	Method        *UserFunction
	DefiningClass *Class
}

func (m *BoundMethod) Type() ValueType { return BoundMethodT }
func (m *BoundMethod) Inspect() string { return "<bound method " + m.Method.Decl.Name + ">" }
func (m *BoundMethod) Arity() int      { return len(m.Method.Decl.Params) }

// NativeFunc is a built-in implemented in Go (spec §4.7). args excludes any
// receiver; it returns a Value, which may be a *RuntimeError.
type NativeFunc func(ev *Evaluator, args []Value) Value

// Native wraps a NativeFunc as a callable Value.
type Native struct {
	Name string
	Fn   NativeFunc
	// MinArgs/MaxArgs bound accepted arity; MaxArgs -1 means unbounded.
	MinArgs, MaxArgs int
}

func (n *Native) Type() ValueType { return NativeType }
func (n *Native) Inspect() string { return "<built-in " + n.Name + ">" }
func (n *Native) Arity() int      { return n.MinArgs }
