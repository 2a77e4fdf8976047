package types

import "strings"

// ListValue represents an ordered sequence of values. A list coerced
// from the environment (env.Coerce) is always flat: nested arrays and
// objects collapse to Null. A list built from an array literal keeps
// whatever its elements evaluate to, including a List or Range.
type ListValue struct {
	Elements []Value
}

// NewList creates a new ListValue from a pre-built slice.
func NewList(elements []Value) ListValue {
	if elements == nil {
		elements = []Value{}
	}
	return ListValue{Elements: elements}
}

func (l ListValue) Kind() Kind   { return KindList }
func (l ListValue) Len() int     { return len(l.Elements) }
func (l ListValue) Truthy() bool { return len(l.Elements) > 0 }

func (l ListValue) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l ListValue) Equal(other Value) bool {
	o, ok := other.(ListValue)
	if !ok || len(o.Elements) != len(l.Elements) {
		return false
	}
	for i := range l.Elements {
		if !l.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}
