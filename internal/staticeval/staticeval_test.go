package staticeval

import "testing"

func TestConst_Eval(t *testing.T) {
	c := Const(7)
	if got := c.String(); got != "7" {
		t.Errorf("String() = %q, want %q", got, "7")
	}
	v, ok := c.Eval(nil)
	if !ok || v != 7 {
		t.Errorf("Eval() = (%d, %v), want (7, true)", v, ok)
	}
}

func TestVar_EvalRequiresBinding(t *testing.T) {
	v := Var("N")
	if _, ok := v.Eval(map[string]int{}); ok {
		t.Errorf("Eval() should fail on an unbound variable")
	}
	n, ok := v.Eval(map[string]int{"N": 3})
	if !ok || n != 3 {
		t.Errorf("Eval() = (%d, %v), want (3, true)", n, ok)
	}
}

func TestBinOp_StringIsSyntactic(t *testing.T) {
	nPlusOne := Add(Var("N"), Const(1))
	onePlusN := Add(Const(1), Var("N"))
	if nPlusOne.String() == onePlusN.String() {
		t.Errorf("N+1 and 1+N must have distinct printed forms")
	}
	if got, want := nPlusOne.String(), "N+1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBinOp_Eval(t *testing.T) {
	expr := Mul(Add(Var("N"), Const(1)), Const(2))
	got, ok := expr.Eval(map[string]int{"N": 3})
	if !ok {
		t.Fatalf("Eval() should succeed with N bound")
	}
	if want := 8; got != want {
		t.Errorf("Eval() = %d, want %d", got, want)
	}
}

func TestDiv_ByZeroIsNotReady(t *testing.T) {
	expr := Div(Var("N"), Const(0))
	if _, ok := expr.Eval(map[string]int{"N": 5}); ok {
		t.Errorf("division by zero should report not-ready, not a crash")
	}
}
