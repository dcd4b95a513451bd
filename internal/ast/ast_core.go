// Package ast defines the node shapes the evaluator consumes, per spec §3.
package ast

import "github.com/gglang-dev/gglang/internal/token"

// Node is implemented by every AST node. Tok returns the token the node was
// built from, used for error-location reporting.
type Node interface {
	Tok() token.Token
}

type Base struct {
	Token token.Token
}

func (b Base) Tok() token.Token { return b.Token }

// At builds a Base from t, for node construction outside the package.
func At(t token.Token) Base { return Base{Token: t} }

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Base
	Statements []Node
}

// Type names a declared (but not runtime-enforced, except for the four
// primitives) type annotation, e.g. a Param's or VarDecl's type.
type Type struct {
	Base
	Name string
}

// Block groups statements executed sequentially in the current environment.
type Block struct {
	Base
	Statements []Node
}

// VarDecl declares a variable, optionally typed, optionally initialized.
type VarDecl struct {
	Base
	Name  string
	Type  *Type // nil if untyped
	Value Node  // nil if uninitialized
}

// ConstDecl declares a constant; GGLang does not enforce immutability (spec §4.5).
type ConstDecl struct {
	Base
	Name  string
	Value Node
}

// Assignment assigns Value to Target (Variable, InstanceVar, PropertyAccess, or ArrayAccess).
type Assignment struct {
	Base
	Target Node
	Value  Node
}

// CompoundAssignment is a read-modify-write assignment (+=, -=, *=, /=).
type CompoundAssignment struct {
	Base
	Target Node
	Op     string
	Value  Node
}

// ForLoop iterates Iterable, binding Var to each element in turn.
type ForLoop struct {
	Base
	Var      string
	Iterable Node
	Body     *Block
}

// ClassDecl declares a class, optionally extending Superclass, whose Body
// contains only FuncDecl method declarations.
type ClassDecl struct {
	Base
	Name       string
	Superclass string // "" if none
	Body       *Block
}

// Param is one formal parameter of a FuncDecl.
type Param struct {
	Base
	Name  string
	Type  *Type
	IsRef bool
}

// FuncDecl declares a named function or method.
type FuncDecl struct {
	Base
	Name       string
	Params     []*Param
	ReturnType *Type
	Body       *Block
}

// Return unwinds the nearest enclosing function invocation with Value.
type Return struct {
	Base
	Value Node
}

// TryCatch runs TryBlock, capturing any raised runtime error (but never a
// Return) into ExceptionVar as a string, then runs CatchBlock.
type TryCatch struct {
	Base
	TryBlock    *Block
	ExceptionVar string
	CatchBlock  *Block
}

// InstanceVarDecl declares/initializes a field on the enclosing `this`.
type InstanceVarDecl struct {
	Base
	Name  string
	Type  *Type
	Value Node // nil if uninitialized
}

// InstanceConstDecl is semantically identical to InstanceVarDecl (spec §4.5).
type InstanceConstDecl struct {
	Base
	Name  string
	Value Node
}
