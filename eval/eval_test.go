package eval

import (
	"testing"

	"github.com/kemasdimas/ffs/env"
	"github.com/kemasdimas/ffs/parser"
)

func mustEval(t *testing.T, formula string, envMap map[string]any) float32 {
	t.Helper()
	e, err := parser.Parse(formula)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", formula, err)
	}
	ev := New(formula, env.FromMap(envMap))
	v, err := ev.Eval(e)
	if err != nil {
		t.Fatalf("Eval(%q) error: %v", formula, err)
	}
	return Project(v)
}

func TestConcreteScenarios(t *testing.T) {
	tests := []struct {
		formula string
		env     map[string]any
		want    float32
	}{
		{`matches("test@test.test", ".+@test.test")`, nil, 1.0},
		{`contains("+01:00", ["+01:00","+02:00"])`, nil, 1.0},
		{`contains(300, [100:500])`, nil, 1.0},
		{`if(true, 0.6, 0.4)`, nil, 0.6},
		{`div(7, 8)`, nil, 0.875},
		{`map(0.75, 0, 1, 2, 4)`, nil, 3.5},
		{`contains(ip("192.167.233.6"), cidr("192.167.233.10/28"))`, nil, 1.0},
		{`datetime("2010-06-01")`, nil, 1275350400.0},
		{`isblank(env["n"])`, map[string]any{"n": nil}, 1.0},
		{`env["s"]`, map[string]any{"s": "0.5"}, 0.5},
		{`1`, nil, 1.0},
		{`0`, nil, 0.0},
		{`true`, nil, 1.0},
		{`false`, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			got := mustEval(t, tt.formula, tt.env)
			if got != tt.want {
				t.Errorf("evaluate(%q) = %v, want %v", tt.formula, got, tt.want)
			}
		})
	}
}

func TestErrorScenarios(t *testing.T) {
	formulas := []string{
		`log10(2)`,
		`gt(1)`,
		`ip("10.0.0")`,
		`contains(7, [10:0])`,
		`plus(true, false)`,
		`not("true")`,
		`datetime("2021")`,
	}

	for _, f := range formulas {
		t.Run(f, func(t *testing.T) {
			e, err := parser.Parse(f)
			if err != nil {
				return // ParseError also satisfies "raises InvalidArgument"
			}
			ev := New(f, env.FromMap(nil))
			if _, err := ev.Eval(e); err == nil {
				t.Errorf("evaluate(%q) succeeded, want an error", f)
			}
		})
	}
}

func TestArithmeticPromotion(t *testing.T) {
	tests := []struct {
		formula  string
		wantKind string
	}{
		{"plus(1, 2)", "int"},
		{"plus(1, 2.0)", "float"},
		{"div(8, 4)", "int"},
		{"div(7, 8)", "float"},
	}
	for _, tt := range tests {
		e, err := parser.Parse(tt.formula)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		ev := New(tt.formula, nil)
		v, err := ev.Eval(e)
		if err != nil {
			t.Fatalf("Eval error: %v", err)
		}
		if v.Kind().String() != tt.wantKind {
			t.Errorf("%s: kind = %s, want %s", tt.formula, v.Kind(), tt.wantKind)
		}
	}
}

func TestRangeContainsProperty(t *testing.T) {
	e, err := parser.Parse("contains(250, [100:500])")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ev := New("contains(250, [100:500])", nil)
	v, err := ev.Eval(e)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if Project(v) != 1.0 {
		t.Errorf("expected 250 to be contained in [100:500]")
	}
}

func TestCIDRRangeSize(t *testing.T) {
	e, err := parser.Parse(`cidr("10.0.0.0/28")`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ev := New(`cidr("10.0.0.0/28")`, nil)
	v, err := ev.Eval(e)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	r, ok := v.(interface{ Size() int64 })
	if !ok {
		t.Fatalf("expected a Range value, got %#v", v)
	}
	if r.Size() != 16 { // 2^(32-28)
		t.Errorf("cidr size = %d, want 16", r.Size())
	}
}

func TestInvertedRangeIsDomainError(t *testing.T) {
	e, err := parser.Parse("[10:0]")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ev := New("[10:0]", nil)
	if _, err := ev.Eval(e); err == nil {
		t.Errorf("expected an error for an inverted range literal")
	}
}
