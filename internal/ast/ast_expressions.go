package ast

// Integer is an integer literal.
type Integer struct {
	Base
	Value int64
}

// Float is a floating-point literal.
type Float struct {
	Base
	Value float64
}

// String is a plain (non-interpolated) string literal.
type String struct {
	Base
	Value string
}

// InterpolatedString holds alternating literal/expression Parts; non-String
// parts are stringified the same way str(x) would (spec §4.2).
type InterpolatedString struct {
	Base
	Parts []Node
}

// Variable references a name in the current environment.
type Variable struct {
	Base
	Name string
}

// BinOp is a binary arithmetic or comparison expression.
type BinOp struct {
	Base
	Left  Node
	Op    string
	Right Node
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	Base
	Cond Node
	Then Node
	Else Node
}

// ArrayLiteral constructs a List from Elements, evaluated left-to-right.
type ArrayLiteral struct {
	Base
	Elements []Node
}

// KeyValuePair is one entry of a Dictionary literal.
type KeyValuePair struct {
	Base
	Key   Node
	Value Node
}

// Dictionary constructs an insertion-ordered Dict from Pairs.
type Dictionary struct {
	Base
	Pairs []*KeyValuePair
}

// ArrayAccess indexes a List or Dict.
type ArrayAccess struct {
	Base
	Array Node
	Index Node
}

// PropertyAccess reads a field or method off an Instance, SuperHandle, or String.
type PropertyAccess struct {
	Base
	Object Node
	Name   string
}

// MethodCall is PropertyAccess(Callee) immediately invoked with Args.
type MethodCall struct {
	Base
	Callee *PropertyAccess
	Args   []Node
}

// InstanceVar reads a field named Name on the enclosing `this`.
type InstanceVar struct {
	Base
	Name string
}

// Super resolves to the SuperHandle bound in the current environment.
type Super struct {
	Base
}

// Call invokes Callee (evaluated first) with Args (evaluated left-to-right).
type Call struct {
	Base
	Callee Node
	Args   []Node
}

// CreateReference preserves the source's reference-capture syntax but, per
// spec §9, evaluates as the plain inner value; is_ref is accepted-but-ignored.
type CreateReference struct {
	Base
	Value Node
}

// Pipe is one `-->` (plain) or `~~>` (coercion) pipeline stage.
type Pipe struct {
	Base
	Left  Node
	Op    string // "-->" or "~~>"
	Right Node
}

// AssignmentPipe is the `value -> target[:Type]` pipeline terminus shape
// that defines a brand-new name rather than invoking an expression.
type AssignmentPipe struct {
	Base
	Target string
	Value  Node
	Type   *Type // nil if untyped
}

// TypedPipeTarget binds the piped-in value to Name under a declared
// (unenforced) Type; used as a pipeline step's Right node.
type TypedPipeTarget struct {
	Base
	Name string
	Type *Type
}

// Modifier is implemented by RepetitionModifier and ConditionalModifier.
type Modifier interface {
	Node
	isModifier()
}

// RepetitionModifier is the `×N` pipeline step modifier.
type RepetitionModifier struct {
	Base
	Count int
}

func (RepetitionModifier) isModifier() {}

// ConditionalModifier is the `?cond` pipeline step modifier.
type ConditionalModifier struct {
	Base
	Condition Node
}

func (ConditionalModifier) isModifier() {}

// ModifiedExpression is a pipeline step annotated with repetition and/or
// conditional modifiers (spec §4.6's "modifier algebra").
type ModifiedExpression struct {
	Base
	Expression Node
	Modifiers  []Modifier
}
