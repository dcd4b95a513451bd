package evaluator

// List is a mutable, ordered sequence. Unlike the teacher's persistent,
// structurally-shared vector, GGLang's append/pop/remove mutate in place
// (spec §4.4), so List is a thin wrapper around a Go slice.
type List struct {
	Elements []Value
}

func (l *List) Type() ValueType { return ListType }

func (l *List) Inspect() string {
	s := "["
	for i, e := range l.Elements {
		if i > 0 {
			s += ", "
		}
		s += inspectElement(e)
	}
	return s + "]"
}

// dictEntry is one insertion-ordered key/value pair. Keys compare by
// structural equality (valuesEqual), not by hashing — GGLang dict keys are
// small and this avoids giving Value a Hash() method it has no other use for.
type dictEntry struct {
	Key   Value
	Value Value
}

// Dict is a mutable, insertion-ordered mapping (spec §4.4: iteration and
// Inspect order must match insertion order).
type Dict struct {
	entries []dictEntry
}

func NewDict() *Dict { return &Dict{} }

func (d *Dict) Type() ValueType { return DictType }

func (d *Dict) Inspect() string {
	s := "{"
	for i, e := range d.entries {
		if i > 0 {
			s += ", "
		}
		s += inspectElement(e.Key) + ": " + inspectElement(e.Value)
	}
	return s + "}"
}

func dictLen(d *Dict) int { return len(d.entries) }

func (d *Dict) Get(key Value) (Value, bool) {
	for _, e := range d.entries {
		if valuesEqual(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Set inserts key/value, or overwrites value in place if key already exists
// (existing position is preserved, matching the original's dict semantics).
func (d *Dict) Set(key, value Value) {
	for i, e := range d.entries {
		if valuesEqual(e.Key, key) {
			d.entries[i].Value = value
			return
		}
	}
	d.entries = append(d.entries, dictEntry{Key: key, Value: value})
}

func (d *Dict) Delete(key Value) bool {
	for i, e := range d.entries {
		if valuesEqual(e.Key, key) {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Dict) Keys() []Value {
	keys := make([]Value, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

func (d *Dict) Entries() []dictEntry { return d.entries }

// inspectElement quotes strings nested inside a List/Dict the way the
// original renders container members, while top-level print(str) leaves the
// string bare.
func inspectElement(v Value) string {
	if s, ok := v.(*String); ok {
		return `"` + s.Value + `"`
	}
	return v.Inspect()
}

// valuesEqual is structural equality used by ==, dict key lookup, and
// remove(). Integer and Float compare equal across type when
// numerically equal (spec §9 Open Question, resolved in favor of numeric
// equality since GGLang has no separate numeric tower).
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || len(av.entries) != len(bv.entries) {
			return false
		}
		for _, e := range av.entries {
			other, found := bv.Get(e.Key)
			if !found || !valuesEqual(e.Value, other) {
				return false
			}
		}
		return true
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.ID == bv.ID
	}
	return a == b
}
