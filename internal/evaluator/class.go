package evaluator

import (
	"github.com/google/uuid"
)

// Class is a GGLang class: a name, an optional single superclass, and a
// method table (spec §4.5 — single inheritance only, no mixins/interfaces).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func (c *Class) Type() ValueType { return ClassType }
func (c *Class) Inspect() string { return "<class " + c.Name + ">" }
func (c *Class) Arity() int {
	if ctor, ok := c.FindMethod("initialize"); ok {
		return len(ctor.Decl.Params)
	}
	return 0
}

// FindMethod looks up a method by name, walking the inheritance chain from
// c upward — this is what makes an overriding subclass method win and what
// lets `super.method()` reach the parent's implementation.
func (c *Class) FindMethod(name string) (*UserFunction, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// IsSubclassOf reports whether c is class or a descendant of class,
// following the single-inheritance chain.
func (c *Class) IsSubclassOf(class *Class) bool {
	for cur := c; cur != nil; cur = cur.Superclass {
		if cur == class {
			return true
		}
	}
	return false
}

// Instance is a live object: its class, a uuid identity (so `==` on two
// distinct instances with equal-valued fields is false, matching reference
// semantics — spec §4.5), and its mutable field store.
type Instance struct {
	Class  *Class
	ID     string
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		ID:     uuid.NewString(),
		Fields: make(map[string]Value),
	}
}

func (i *Instance) Type() ValueType { return InstanceType }

// Inspect renders a short, stable identity tag (first 8 hex chars of the
// instance's uuid) the way the original's default object repr embeds id(),
// but fixed-width. The uuid is random, so the tag differs between runs.
func (i *Instance) Inspect() string { return "<" + i.Class.Name + "#" + i.ID[:8] + ">" }

// GetField reads a field, returning NameUndefined-style ok=false if it was
// never set on this instance.
func (i *Instance) GetField(name string) (Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

func (i *Instance) SetField(name string, v Value) {
	i.Fields[name] = v
}

// SuperHandle is what `super` evaluates to inside a method body: it carries
// the receiver (so fields/this still resolve) plus the class one level above
// where the currently-executing method was defined, so super.method() looks
// up starting there rather than restarting from the receiver's dynamic class.
type SuperHandle struct {
	Receiver      *Instance
	StartingClass *Class
}

func (s *SuperHandle) Type() ValueType { return SuperHandleType }
func (s *SuperHandle) Inspect() string { return "<super>" }
