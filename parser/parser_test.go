package parser

import "testing"

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		check func(t *testing.T, e Expr)
	}{
		{"true", func(t *testing.T, e Expr) {
			b, ok := e.(BoolLit)
			if !ok || !b.Value {
				t.Fatalf("want BoolLit(true), got %#v", e)
			}
		}},
		{"false", func(t *testing.T, e Expr) {
			b, ok := e.(BoolLit)
			if !ok || b.Value {
				t.Fatalf("want BoolLit(false), got %#v", e)
			}
		}},
		{"42", func(t *testing.T, e Expr) {
			n, ok := e.(NumLit)
			if !ok || n.IsFloat || n.IntVal != 42 {
				t.Fatalf("want NumLit(int 42), got %#v", e)
			}
		}},
		{"-7", func(t *testing.T, e Expr) {
			n, ok := e.(NumLit)
			if !ok || n.IsFloat || n.IntVal != -7 {
				t.Fatalf("want NumLit(int -7), got %#v", e)
			}
		}},
		{"3.5", func(t *testing.T, e Expr) {
			n, ok := e.(NumLit)
			if !ok || !n.IsFloat || n.FloatVal != 3.5 {
				t.Fatalf("want NumLit(float 3.5), got %#v", e)
			}
		}},
		{"-0.25", func(t *testing.T, e Expr) {
			n, ok := e.(NumLit)
			if !ok || !n.IsFloat || n.FloatVal != -0.25 {
				t.Fatalf("want NumLit(float -0.25), got %#v", e)
			}
		}},
		{".5", func(t *testing.T, e Expr) {
			n, ok := e.(NumLit)
			if !ok || !n.IsFloat || n.FloatVal != 0.5 {
				t.Fatalf("want NumLit(float 0.5), got %#v", e)
			}
		}},
		{`"hello"`, func(t *testing.T, e Expr) {
			s, ok := e.(StrLit)
			if !ok || s.Value != "hello" {
				t.Fatalf("want StrLit(hello), got %#v", e)
			}
		}},
		{`"a\.b\.c"`, func(t *testing.T, e Expr) {
			s, ok := e.(StrLit)
			if !ok || s.Value != `a\.b\.c` {
				t.Fatalf(`want StrLit(a\.b\.c), got %#v`, e)
			}
		}},
		{`env["country"]`, func(t *testing.T, e Expr) {
			g, ok := e.(EnvGet)
			if !ok || g.Key != "country" {
				t.Fatalf("want EnvGet(country), got %#v", e)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			tt.check(t, e)
		})
	}
}

func TestParseArrayLiteral(t *testing.T) {
	e, err := Parse(`[1, 2, "x", true]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := e.(ArrayLit)
	if !ok {
		t.Fatalf("want ArrayLit, got %#v", e)
	}
	if len(arr.Elements) != 4 {
		t.Fatalf("want 4 elements, got %d", len(arr.Elements))
	}
}

func TestParseEmptyArray(t *testing.T) {
	e, err := Parse(`[]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := e.(ArrayLit)
	if !ok || len(arr.Elements) != 0 {
		t.Fatalf("want empty ArrayLit, got %#v", e)
	}
}

func TestParseRangeLiteral(t *testing.T) {
	e, err := Parse(`[1:100]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := e.(RangeLit)
	if !ok {
		t.Fatalf("want RangeLit, got %#v", e)
	}
	lo, ok := r.Lo.(NumLit)
	if !ok || lo.IntVal != 1 {
		t.Fatalf("want Lo=1, got %#v", r.Lo)
	}
	hi, ok := r.Hi.(NumLit)
	if !ok || hi.IntVal != 100 {
		t.Fatalf("want Hi=100, got %#v", r.Hi)
	}
}

func TestParseCall(t *testing.T) {
	e, err := Parse(`contains(env["country"], ["US", "CA"])`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := e.(Call)
	if !ok {
		t.Fatalf("want Call, got %#v", e)
	}
	if c.Name != "contains" {
		t.Fatalf("want name contains, got %s", c.Name)
	}
	if len(c.Args) != 2 {
		t.Fatalf("want 2 args, got %d", len(c.Args))
	}
}

func TestParseNestedCall(t *testing.T) {
	e, err := Parse(`and(gt(env["age"], 18), not(eq(env["banned"], true)))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := e.(Call)
	if !ok || c.Name != "and" || len(c.Args) != 2 {
		t.Fatalf("want and(...) with 2 args, got %#v", e)
	}
}

func TestParseTrailingInputFails(t *testing.T) {
	_, err := Parse(`true false`)
	if err == nil {
		t.Fatalf("expected error for trailing input")
	}
}

func TestParseUnterminatedCallFails(t *testing.T) {
	_, err := Parse(`and(true, false`)
	if err == nil {
		t.Fatalf("expected error for unterminated call")
	}
}

func TestParseMismatchedBracketFails(t *testing.T) {
	_, err := Parse(`[1, 2`)
	if err == nil {
		t.Fatalf("expected error for unterminated array")
	}
}

func TestParseEnvKeyMustBeStringLiteral(t *testing.T) {
	_, err := Parse(`env[1]`)
	if err == nil {
		t.Fatalf("expected error for non-string env key")
	}
}

func TestParseEmptyInputFails(t *testing.T) {
	_, err := Parse(``)
	if err == nil {
		t.Fatalf("expected error for empty formula")
	}
}
