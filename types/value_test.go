package types

import "testing"

func TestEqualAcrossIntFloat(t *testing.T) {
	if !NewInt(2).Equal(NewFloat(2.0)) {
		t.Errorf("expected Int(2) == Float(2.0)")
	}
	if NewInt(2).Equal(NewFloat(2.5)) {
		t.Errorf("expected Int(2) != Float(2.5)")
	}
}

func TestListEqual(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewStr("x")})
	b := NewList([]Value{NewInt(1), NewStr("x")})
	c := NewList([]Value{NewInt(1), NewStr("y")})

	if !a.Equal(b) {
		t.Errorf("expected equal lists to compare equal")
	}
	if a.Equal(c) {
		t.Errorf("expected differing lists to compare unequal")
	}
}

func TestRangeContainsAndSize(t *testing.T) {
	r := NewRange(100, 500)
	if !r.Contains(300) {
		t.Errorf("expected 300 to be in [100:500]")
	}
	if r.Contains(99) || r.Contains(501) {
		t.Errorf("expected bounds to be exclusive outside [100:500]")
	}
	if r.Size() != 401 {
		t.Errorf("expected size 401, got %d", r.Size())
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NewBool(true), true},
		{NewBool(false), false},
		{NewInt(0), false},
		{NewInt(5), true},
		{NewFloat(0), false},
		{Null, false},
		{NewList(nil), false},
		{NewList([]Value{NewInt(1)}), true},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%v.Truthy() = %v, want %v", c.v, got, c.want)
		}
	}
}
