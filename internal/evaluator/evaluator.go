// Package evaluator walks the AST produced by internal/parser and executes
// it directly, per the tagged-Value/Environment/Callable/Class/Pipeline
// design this interpreter is built around.
package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/gglang-dev/gglang/internal/ast"
	"github.com/gglang-dev/gglang/internal/config"
)

// Evaluator holds the one piece of process-wide state execution needs: the
// global environment, I/O streams built-ins read/write through, and the
// --debug trace flag. Everything else (the "current environment") is
// threaded explicitly through Eval's env parameter.
type Evaluator struct {
	Global *Environment
	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer
	Debug  bool

	depth int
}

// New builds an Evaluator with the built-in functions and literals
// preseeded into the global environment (spec §4.1, §4.7).
func New() *Evaluator {
	ev := &Evaluator{
		Global: NewEnvironment(),
		Stdin:  bufio.NewReader(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	ev.Global.Define("true", TRUE)
	ev.Global.Define("false", FALSE)
	registerBuiltins(ev)
	return ev
}

// Run executes a program's top-level statements in order, then, if `main`
// names a user-defined function, invokes it with zero arguments (spec §4.8).
func (ev *Evaluator) Run(program *ast.Program) Value {
	result := ev.Eval(program, ev.Global)
	if isError(result) {
		return result
	}
	main, ok := ev.Global.Get("main")
	if !ok {
		return NULL
	}
	fn, ok := main.(*UserFunction)
	if !ok {
		return NULL
	}
	return ev.callUserFunction(fn, nil)
}

// Eval dispatches node to its evalCore handler, guarding recursion depth and
// emitting a --debug trace line per visited node, the way the teacher's
// Eval/evalCore split keeps the depth check and tracing out of every case.
func (ev *Evaluator) Eval(node ast.Node, env *Environment) Value {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > config.MaxEvalDepth {
		return newError(RuntimeOther, "maximum recursion depth exceeded")
	}
	if ev.Debug {
		fmt.Fprintf(ev.Stderr, "[DEBUG] Executing node: %s\n", nodeTypeName(node))
	}
	return ev.evalCore(node, env)
}

func nodeTypeName(node ast.Node) string {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func (ev *Evaluator) evalCore(node ast.Node, env *Environment) Value {
	switch n := node.(type) {

	case *ast.Program:
		return ev.evalStatements(n.Statements, env)
	case *ast.Block:
		return ev.evalStatements(n.Statements, env)

	case *ast.Integer:
		return &Integer{Value: n.Value}
	case *ast.Float:
		return &Float{Value: n.Value}
	case *ast.String:
		return &String{Value: n.Value}
	case *ast.InterpolatedString:
		return ev.evalInterpolatedString(n, env)

	case *ast.Variable:
		v, ok := env.Get(n.Name)
		if !ok {
			return newError(NameUndefined, "name '%s' is not defined", n.Name)
		}
		if _, uninit := v.(*Uninitialized); uninit {
			return newError(NameUninitialized, "name '%s' was declared but not assigned a value", n.Name)
		}
		return v

	case *ast.BinOp:
		return ev.evalBinOp(n, env)
	case *ast.Ternary:
		cond := ev.Eval(n.Cond, env)
		if isError(cond) {
			return cond
		}
		if isTruthy(cond) {
			return ev.Eval(n.Then, env)
		}
		return ev.Eval(n.Else, env)

	case *ast.ArrayLiteral:
		return ev.evalArrayLiteral(n, env)
	case *ast.Dictionary:
		return ev.evalDictionary(n, env)
	case *ast.ArrayAccess:
		return ev.evalArrayAccess(n, env)

	case *ast.VarDecl:
		return ev.evalVarDecl(n, env)
	case *ast.ConstDecl:
		val := ev.Eval(n.Value, env)
		if isError(val) {
			return val
		}
		env.Define(n.Name, val)
		return NULL
	case *ast.Assignment:
		return ev.evalAssignment(n, env)
	case *ast.CompoundAssignment:
		return ev.evalCompoundAssignment(n, env)

	case *ast.ForLoop:
		return ev.evalForLoop(n, env)

	case *ast.FuncDecl:
		env.Define(n.Name, &UserFunction{Decl: n, Env: env})
		return NULL
	case *ast.Return:
		val := Value(NULL)
		if n.Value != nil {
			val = ev.Eval(n.Value, env)
			if isError(val) {
				return val
			}
		}
		return &ReturnSignal{Value: val}

	case *ast.Call:
		return ev.evalCall(n, env)
	case *ast.PropertyAccess:
		return ev.evalPropertyAccess(n, env)
	case *ast.MethodCall:
		return ev.evalMethodCall(n, env)
	case *ast.InstanceVar:
		return ev.evalInstanceVar(n, env)
	case *ast.InstanceVarDecl:
		return ev.evalInstanceVarDecl(n, env)
	case *ast.InstanceConstDecl:
		return ev.evalInstanceVarDecl(&ast.InstanceVarDecl{
			Name: n.Name, Value: n.Value,
		}, env)
	case *ast.Super:
		v, ok := env.Get("super")
		if !ok {
			return newError(RuntimeOther, "'super' used outside a subclass method")
		}
		return v

	case *ast.ClassDecl:
		return ev.evalClassDecl(n, env)

	case *ast.CreateReference:
		return ev.Eval(n.Value, env)

	case *ast.TryCatch:
		return ev.evalTryCatch(n, env)

	case *ast.Pipe:
		return ev.evalPipe(n, env)
	case *ast.AssignmentPipe:
		return ev.evalAssignmentPipe(n, env)
	case *ast.TypedPipeTarget:
		return newError(RuntimeOther, "typed pipe target evaluated outside a pipeline")
	case *ast.ModifiedExpression:
		v, err := ev.executeModifiedStep(n, NULL, env)
		if err != nil {
			return err
		}
		return v
	}

	return newError(RuntimeOther, "no evaluation rule for node type %s", nodeTypeName(node))
}

// evalStatements runs a statement list in env, short-circuiting on the first
// error or ReturnSignal.
func (ev *Evaluator) evalStatements(stmts []ast.Node, env *Environment) Value {
	var result Value = NULL
	for _, stmt := range stmts {
		result = ev.Eval(stmt, env)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return result
}
