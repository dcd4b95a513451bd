package evaluator

import "github.com/gglang-dev/gglang/internal/ast"

// checkPrimitiveType enforces spec §4.3/§4.4's limited runtime type
// checking: only the four primitive names are checked; any other declared
// type name is accepted without verification.
func checkPrimitiveType(typ *ast.Type, v Value, context string) *RuntimeError {
	if typ == nil {
		return nil
	}
	var wantKind ValueType
	switch typ.Name {
	case "int":
		wantKind = IntegerType
	case "float":
		wantKind = FloatType
	case "str":
		wantKind = StringType
	case "bool":
		wantKind = BooleanType
	default:
		return nil
	}
	if v.Type() != wantKind {
		return newError(TypeMismatch, "cannot assign value of type %s to %s of type '%s'", v.Type(), context, typ.Name)
	}
	return nil
}

func (ev *Evaluator) evalVarDecl(n *ast.VarDecl, env *Environment) Value {
	if n.Value == nil {
		env.Define(n.Name, UNINITIALIZED)
		return NULL
	}
	val := ev.Eval(n.Value, env)
	if isError(val) {
		return val
	}
	if errv := checkPrimitiveType(n.Type, val, "variable '"+n.Name+"'"); errv != nil {
		return errv
	}
	env.Define(n.Name, val)
	return NULL
}

func (ev *Evaluator) evalAssignment(n *ast.Assignment, env *Environment) Value {
	val := ev.Eval(n.Value, env)
	if isError(val) {
		return val
	}
	return ev.assignToTarget(n.Target, val, env)
}

// assignToTarget implements spec §4.5's Assignment target kinds, shared by
// plain Assignment and CompoundAssignment's read-modify-write.
func (ev *Evaluator) assignToTarget(target ast.Node, val Value, env *Environment) Value {
	switch t := target.(type) {
	case *ast.Variable:
		if !env.Assign(t.Name, val) {
			return newError(NameUndefined, "cannot assign to undefined name '%s'", t.Name)
		}
		return val
	case *ast.InstanceVar:
		this, errv := ev.currentInstance(env)
		if errv != nil {
			return errv
		}
		this.SetField(t.Name, val)
		return val
	case *ast.PropertyAccess:
		obj := ev.Eval(t.Object, env)
		if isError(obj) {
			return obj
		}
		instance, ok := obj.(*Instance)
		if !ok {
			return newError(TypeMismatch, "object of type %s does not support field assignment", obj.Type())
		}
		instance.SetField(t.Name, val)
		return val
	case *ast.ArrayAccess:
		return ev.assignArrayAccess(t, val, env)
	}
	return newError(RuntimeOther, "invalid assignment target")
}

func (ev *Evaluator) assignArrayAccess(target *ast.ArrayAccess, val Value, env *Environment) Value {
	container := ev.Eval(target.Array, env)
	if isError(container) {
		return container
	}
	index := ev.Eval(target.Index, env)
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
		c.Elements[i] = val
		return val
	case *Dict:
		c.Set(index, val)
		return val
	default:
		return newError(TypeMismatch, "object of type %s does not support subscript assignment", container.Type())
	}
}

func (ev *Evaluator) evalCompoundAssignment(n *ast.CompoundAssignment, env *Environment) Value {
	current := ev.Eval(n.Target, env)
	if isError(current) {
		return current
	}
	rhs := ev.Eval(n.Value, env)
	if isError(rhs) {
		return rhs
	}
	op := n.Op[:len(n.Op)-1] // "+=" -> "+"
	newVal := applyBinOp(op, current, rhs)
	if isError(newVal) {
		return newVal
	}
	return ev.assignToTarget(n.Target, newVal, env)
}

// applyBinOp runs the same arithmetic rules evalBinOp uses, but on already
// evaluated Values (used by compound assignment's read-modify-write).
func applyBinOp(op string, left, right Value) Value {
	if ls, ok := left.(*String); ok && op == "+" {
		rs, ok := right.(*String)
		if !ok {
			return newError(TypeMismatch, "cannot concatenate str with %s", right.Type())
		}
		return &String{Value: ls.Value + rs.Value}
	}
	li, lIsInt := left.(*Integer)
	ri, rIsInt := right.(*Integer)
	if lIsInt && rIsInt {
		return intBinOp(op, li.Value, ri.Value)
	}
	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return newError(TypeMismatch, "operator '%s' not supported between %s and %s", op, left.Type(), right.Type())
	}
	return floatBinOp(op, lf, rf)
}

func (ev *Evaluator) evalForLoop(n *ast.ForLoop, env *Environment) Value {
	iterable := ev.Eval(n.Iterable, env)
	if isError(iterable) {
		return iterable
	}

	var items []Value
	switch c := iterable.(type) {
	case *List:
		items = append(items, c.Elements...) // snapshot: mutation during iteration is well-defined
	case *Dict:
		items = append(items, c.Keys()...)
	case *String:
		for _, r := range c.Value {
			items = append(items, &String{Value: string(r)})
		}
	default:
		return newError(TypeMismatch, "%s is not iterable", iterable.Type())
	}

	for _, item := range items {
		iterEnv := NewEnclosedEnvironment(env)
		iterEnv.Define(n.Var, item)
		result := ev.Eval(n.Body, iterEnv)
		if isError(result) || isReturn(result) {
			return result
		}
	}
	return NULL
}

func (ev *Evaluator) currentInstance(env *Environment) (*Instance, *RuntimeError) {
	this, ok := env.Get("this")
	if !ok {
		return nil, newError(RuntimeOther, "instance variable access outside a method body")
	}
	inst, ok := this.(*Instance)
	if !ok {
		return nil, newError(RuntimeOther, "'this' is not an instance")
	}
	return inst, nil
}

func (ev *Evaluator) evalInstanceVar(n *ast.InstanceVar, env *Environment) Value {
	this, errv := ev.currentInstance(env)
	if errv != nil {
		return errv
	}
	v, ok := this.GetField(n.Name)
	if !ok {
		return newError(NameUndefined, "instance variable '@%s' is not defined", n.Name)
	}
	return v
}

func (ev *Evaluator) evalInstanceVarDecl(n *ast.InstanceVarDecl, env *Environment) Value {
	this, errv := ev.currentInstance(env)
	if errv != nil {
		return errv
	}
	if n.Value == nil {
		this.SetField(n.Name, UNINITIALIZED)
		return NULL
	}
	val := ev.Eval(n.Value, env)
	if isError(val) {
		return val
	}
	if errv := checkPrimitiveType(n.Type, val, "instance variable '@"+n.Name+"'"); errv != nil {
		return errv
	}
	this.SetField(n.Name, val)
	return NULL
}

func (ev *Evaluator) evalTryCatch(n *ast.TryCatch, env *Environment) Value {
	tryEnv := NewEnclosedEnvironment(env)
	result := ev.Eval(n.TryBlock, tryEnv)
	if isReturn(result) {
		return result // Return is never caught (spec §4.5, §7)
	}
	if !isError(result) {
		return NULL
	}

	runtimeErr := result.(*RuntimeError)
	catchEnv := NewEnclosedEnvironment(env)
	catchEnv.Define(n.ExceptionVar, &String{Value: runtimeErr.Message})
	return ev.Eval(n.CatchBlock, catchEnv)
}
