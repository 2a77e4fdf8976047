package types

import "fmt"

// RangeValue represents an inclusive [Lo, Hi] span of integers. Unlike
// ListValue, a Range is never materialized into its member elements;
// membership and size are computed arithmetically so that a CIDR
// block spanning billions of addresses costs the same as a span of
// one.
type RangeValue struct {
	Lo, Hi int64
}

// NewRange creates a RangeValue. Callers must check Lo <= Hi
// themselves (see eval's RangeLit handling); NewRange does not
// enforce the invariant so that it can also represent an
// already-validated range cheaply.
func NewRange(lo, hi int64) RangeValue {
	return RangeValue{Lo: lo, Hi: hi}
}

func (r RangeValue) Kind() Kind     { return KindRange }
func (r RangeValue) String() string { return fmt.Sprintf("[%d:%d]", r.Lo, r.Hi) }
func (r RangeValue) Truthy() bool   { return r.Size() > 0 }

// Size returns the number of integers the range spans.
func (r RangeValue) Size() int64 {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Contains reports whether x falls within [Lo, Hi].
func (r RangeValue) Contains(x int64) bool {
	return x >= r.Lo && x <= r.Hi
}

func (r RangeValue) Equal(other Value) bool {
	o, ok := other.(RangeValue)
	return ok && o.Lo == r.Lo && o.Hi == r.Hi
}
