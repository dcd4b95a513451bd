package evaluator

import "github.com/gglang-dev/gglang/internal/ast"

func (ev *Evaluator) evalCall(n *ast.Call, env *Environment) Value {
	callee := ev.Eval(n.Callee, env)
	if isError(callee) {
		return callee
	}
	args, errv := ev.evalArgs(n.Args, env)
	if errv != nil {
		return errv
	}
	return ev.applyCall(callee, args)
}

func (ev *Evaluator) evalArgs(argNodes []ast.Node, env *Environment) ([]Value, Value) {
	args := make([]Value, 0, len(argNodes))
	for _, a := range argNodes {
		v := ev.Eval(a, env)
		if isError(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}

// applyCall dispatches to the right invocation rule per spec §4.3 based on
// the callee's runtime kind.
func (ev *Evaluator) applyCall(callee Value, args []Value) Value {
	switch fn := callee.(type) {
	case *UserFunction:
		return ev.callUserFunction(fn, args)
	case *BoundMethod:
		return ev.callBoundMethod(fn, args)
	case *Class:
		return ev.instantiateClass(fn, args)
	case *Native:
		return ev.callNative(fn, args)
	default:
		return newError(NotCallable, "object of type %s is not callable", callee.Type())
	}
}

func (ev *Evaluator) callNative(n *Native, args []Value) Value {
	if len(args) < n.MinArgs || (n.MaxArgs >= 0 && len(args) > n.MaxArgs) {
		return newError(ArityMismatch, "'%s' expected %s, got %d arguments", n.Name, arityDesc(n.MinArgs, n.MaxArgs), len(args))
	}
	return n.Fn(ev, args)
}

func arityDesc(min, max int) string {
	if max < 0 {
		return "at least " + itoa(min)
	}
	if min == max {
		return itoa(min)
	}
	return "between " + itoa(min) + " and " + itoa(max)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (ev *Evaluator) callUserFunction(fn *UserFunction, args []Value) Value {
	if len(args) != len(fn.Decl.Params) {
		return newError(ArityMismatch, "function '%s' expected %d arguments, but got %d", fn.Decl.Name, len(fn.Decl.Params), len(args))
	}
	callEnv := NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Decl.Params {
		if errv := checkPrimitiveType(param.Type, args[i], "argument '"+param.Name+"' for function '"+fn.Decl.Name+"'"); errv != nil {
			return errv
		}
		callEnv.Define(param.Name, args[i])
	}
	result := ev.Eval(fn.Decl.Body, callEnv)
	if isError(result) {
		return result
	}
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value
	}
	return NULL
}

// callBoundMethod runs the method's body in an environment that additionally
// defines `this` (and `super`, if the defining class has a superclass)
// before parameter binding (spec §4.3).
func (ev *Evaluator) callBoundMethod(m *BoundMethod, args []Value) Value {
	if len(args) != len(m.Method.Decl.Params) {
		return newError(ArityMismatch, "method '%s' expected %d arguments, but got %d", m.Method.Decl.Name, len(m.Method.Decl.Params), len(args))
	}
	methodEnv := NewEnclosedEnvironment(m.Method.Env)
	methodEnv.Define("this", m.Receiver)
	if m.DefiningClass.Superclass != nil {
		methodEnv.Define("super", &SuperHandle{Receiver: m.Receiver, StartingClass: m.DefiningClass.Superclass})
	}
	for i, param := range m.Method.Decl.Params {
		if errv := checkPrimitiveType(param.Type, args[i], "argument '"+param.Name+"' for method '"+m.Method.Decl.Name+"'"); errv != nil {
			return errv
		}
		methodEnv.Define(param.Name, args[i])
	}
	result := ev.Eval(m.Method.Decl.Body, methodEnv)
	if isError(result) {
		return result
	}
	if ret, ok := result.(*ReturnSignal); ok {
		return ret.Value
	}
	return NULL
}

// instantiateClass builds a fresh Instance and runs `initialize` if the
// class chain defines one (spec §4.3: the instance is returned regardless
// of initialize's return value; fields are set by InstanceVarDecl/Assignment
// statements the initializer body runs, not by class-level defaults).
func (ev *Evaluator) instantiateClass(class *Class, args []Value) Value {
	instance := NewInstance(class)
	if initFn, ok := class.FindMethod("initialize"); ok {
		bound := &BoundMethod{Receiver: instance, Method: initFn, DefiningClass: definingClassOf(class, "initialize")}
		result := ev.callBoundMethod(bound, args)
		if isError(result) {
			return result
		}
	} else if len(args) != 0 {
		return newError(ArityMismatch, "class '%s' has no initializer but was called with %d arguments", class.Name, len(args))
	}
	return instance
}

// definingClassOf walks from class toward its root looking for the class
// that actually declares methodName, so a BoundMethod's `super` starts one
// level above where the method was textually written rather than above the
// instance's dynamic (possibly more-derived) class.
func definingClassOf(class *Class, methodName string) *Class {
	for cur := class; cur != nil; cur = cur.Superclass {
		if _, ok := cur.Methods[methodName]; ok {
			return cur
		}
	}
	return class
}

func (ev *Evaluator) evalClassDecl(n *ast.ClassDecl, env *Environment) Value {
	var superclass *Class
	if n.Superclass != "" {
		sc, ok := env.Get(n.Superclass)
		if !ok {
			return newError(NameUndefined, "superclass '%s' is not defined", n.Superclass)
		}
		superclass, ok = sc.(*Class)
		if !ok {
			return newError(TypeMismatch, "superclass must be a class, got %s", sc.Type())
		}
	}

	// Only FuncDecl statements populate the method table (spec §4.4); each
	// method's closure is the class-declaration-time environment, so
	// methods can reference sibling top-level names at call time.
	class := &Class{Name: n.Name, Superclass: superclass, Methods: make(map[string]*UserFunction)}
	for _, stmt := range n.Body.Statements {
		if decl, ok := stmt.(*ast.FuncDecl); ok {
			class.Methods[decl.Name] = &UserFunction{Decl: decl, Env: env}
		}
	}
	env.Define(n.Name, class)
	return NULL
}

// evalPropertyAccess implements spec §4.2's PropertyAccess rule across
// Instance, SuperHandle, and String.
func (ev *Evaluator) evalPropertyAccess(n *ast.PropertyAccess, env *Environment) Value {
	obj := ev.Eval(n.Object, env)
	if isError(obj) {
		return obj
	}
	return ev.lookupProperty(obj, n.Name)
}

func (ev *Evaluator) lookupProperty(obj Value, name string) Value {
	switch o := obj.(type) {
	case *Instance:
		if v, ok := o.GetField(name); ok {
			return v
		}
		if method, ok := o.Class.FindMethod(name); ok {
			return &BoundMethod{Receiver: o, Method: method, DefiningClass: definingClassOf(o.Class, name)}
		}
		return newError(TypeMismatch, "object of type %s has no property '%s'", o.Class.Name, name)
	case *SuperHandle:
		method, ok := o.StartingClass.FindMethod(name)
		if !ok {
			return newError(NameUndefined, "undefined method '%s' on super", name)
		}
		return &BoundMethod{Receiver: o.Receiver, Method: method, DefiningClass: definingClassOf(o.StartingClass, name)}
	case *String:
		return stringMethod(o, name)
	default:
		return newError(TypeMismatch, "object of type %s has no property '%s'", obj.Type(), name)
	}
}

func (ev *Evaluator) evalMethodCall(n *ast.MethodCall, env *Environment) Value {
	obj := ev.Eval(n.Callee.Object, env)
	if isError(obj) {
		return obj
	}
	callee := ev.lookupProperty(obj, n.Callee.Name)
	if isError(callee) {
		return callee
	}
	args, errv := ev.evalArgs(n.Args, env)
	if errv != nil {
		return errv
	}
	return ev.applyCall(callee, args)
}
