package arith

import "testing"

func TestParserSimpleExpr(t *testing.T) {
	p := NewParser(NewLexer("42"))
	expr, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	simple, ok := expr.(*SimpleExpr)
	if !ok {
		t.Fatalf("expr = %T, want *SimpleExpr", expr)
	}
	if simple.Value != 42 {
		t.Errorf("Value = %d, want 42", simple.Value)
	}
}

func TestParserCompoundExpr(t *testing.T) {
	input := []string{
		"(1 + 2)",
		"(10 - 3)",
		"(6 * 7)",
		"(8 / 2)",
		"((1 + 2) * 3)",
	}
	want := []int{3, 7, 42, 4, 9}

	for i := range input {
		p := NewParser(NewLexer(input[i]))
		expr, err := p.Next()
		if err != nil {
			t.Errorf("%q: unexpected error: %v", input[i], err)
			continue
		}
		if got := expr.Eval(); got != want[i] {
			t.Errorf("%q evaluates to %d, want %d", input[i], got, want[i])
		}
	}
}

func TestParserMultipleTopLevelExpressions(t *testing.T) {
	p := NewParser(NewLexer("1 2 3"))
	for _, want := range []int{1, 2, 3} {
		expr, err := p.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expr == nil {
			t.Fatalf("expected an expression, got nil")
		}
		if got := expr.Eval(); got != want {
			t.Errorf("Eval() = %d, want %d", got, want)
		}
	}
	expr, err := p.Next()
	if err != nil {
		t.Fatalf("unexpected error at EOF: %v", err)
	}
	if expr != nil {
		t.Errorf("expected nil at EOF, got %v", expr)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []string{
		"(1 + 2",
		"(1 +)",
		"(+ 1 2)",
		")",
	}
	for _, in := range cases {
		p := NewParser(NewLexer(in))
		if _, err := p.Next(); err == nil {
			t.Errorf("%q: expected an error, got nil", in)
		}
	}
}
