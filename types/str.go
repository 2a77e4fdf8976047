package types

import "strings"

// StrValue represents a rule-language UTF-8 string.
type StrValue struct {
	Val string
}

// NewStr creates a new StrValue.
func NewStr(val string) StrValue {
	return StrValue{Val: val}
}

func (s StrValue) Kind() Kind     { return KindStr }
func (s StrValue) String() string { return s.Val }

// Truthy follows the same "all whitespace" notion as isblank (see
// eval/builtin_info.go): a string is truthy unless it is empty or
// consists only of whitespace.
func (s StrValue) Truthy() bool { return strings.TrimSpace(s.Val) != "" }

func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	return ok && o.Val == s.Val
}
