// Package types defines the value domain produced and consumed by the
// rule evaluator: a small tagged sum of null, bool, int, float, str,
// list, and range variants.
package types

// Value is the interface every rule-language runtime value implements.
type Value interface {
	Kind() Kind
	String() string   // textual form of the value
	Equal(Value) bool // structural equality
	Truthy() bool     // general emptiness/zero test; and/or/not/if require exact Bool and never fall back to this
}

// IsNumeric reports whether v is Int or Float.
func IsNumeric(v Value) bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

// AsFloat64 returns v's numeric value as a float64. The second return
// is false if v is not Int or Float.
func AsFloat64(v Value) (float64, bool) {
	switch x := v.(type) {
	case IntValue:
		return float64(x.Val), true
	case FloatValue:
		return x.Val, true
	default:
		return 0, false
	}
}
