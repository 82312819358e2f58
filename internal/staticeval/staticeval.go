// Package staticeval implements the reference "expression reducer" for
// compile-time integer expressions: the external collaborator that
// typesystem.Static leans on for syntactic equality (its String method)
// and for producing a realized value once every variable it mentions is
// bound (its Eval method). The real collaborator lives in the analyzer
// that owns const-generic arithmetic; this package is a small,
// self-contained stand-in used by tests and by cmd/typecore's scenario
// runner.
package staticeval

import (
	"fmt"
	"strconv"

	"github.com/funvibe/typecore/internal/typesystem"
)

// Expr is a compile-time integer expression tree. It implements
// typesystem.ExpressionReducer, so any Expr can be dropped directly into
// a typesystem.Static's Expr field.
type Expr interface {
	typesystem.ExpressionReducer
	isExpr()
}

// Const is an integer literal.
type Const int

func (Const) isExpr()                           {}
func (c Const) String() string                  { return strconv.Itoa(int(c)) }
func (c Const) Eval(map[string]int) (int, bool) { return int(c), true }

// Var is a reference to one of a Static's explicit generics by name.
type Var string

func (Var) isExpr()          {}
func (v Var) String() string { return string(v) }
func (v Var) Eval(bindings map[string]int) (int, bool) {
	n, ok := bindings[string(v)]
	return n, ok
}

// BinOp is a binary arithmetic node. Op must be one of "+", "-", "*",
// "/"; anything else is a caller bug and panics.
type BinOp struct {
	Op          string
	Left, Right Expr
}

func (BinOp) isExpr() {}

func (b BinOp) String() string {
	return fmt.Sprintf("%s%s%s", b.Left.String(), b.Op, b.Right.String())
}

func (b BinOp) Eval(bindings map[string]int) (int, bool) {
	l, ok := b.Left.Eval(bindings)
	if !ok {
		return 0, false
	}
	r, ok := b.Right.Eval(bindings)
	if !ok {
		return 0, false
	}
	switch b.Op {
	case "+":
		return l + r, true
	case "-":
		return l - r, true
	case "*":
		return l * r, true
	case "/":
		if r == 0 {
			return 0, false
		}
		return l / r, true
	default:
		panic(fmt.Sprintf("staticeval: unknown operator %q", b.Op))
	}
}

// Add, Sub, Mul, Div are convenience constructors mirroring the
// BinOp shape; they read better at call sites than spelling out the Op
// field each time.
func Add(l, r Expr) BinOp { return BinOp{Op: "+", Left: l, Right: r} }
func Sub(l, r Expr) BinOp { return BinOp{Op: "-", Left: l, Right: r} }
func Mul(l, r Expr) BinOp { return BinOp{Op: "*", Left: l, Right: r} }
func Div(l, r Expr) BinOp { return BinOp{Op: "/", Left: l, Right: r} }
