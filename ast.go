package gocalc

import (
	"fmt"
)

// Expr is an arithmetic expression tree. The only implementations are Int,
// Add and Mul.
type Expr interface {
	fmt.Stringer
	expr()
}

type Int struct {
	Value int
}

type Add struct {
	Left  Expr
	Right Expr
}

type Mul struct {
	Left  Expr
	Right Expr
}

func (Int) expr() {}
func (Add) expr() {}
func (Mul) expr() {}

func (e Int) String() string { return PrintFull(e) }
func (e Add) String() string { return PrintFull(e) }
func (e Mul) String() string { return PrintFull(e) }

func NewInt(v int) Expr {
	return Int{Value: v}
}

func NewAdd(l, r Expr) Expr {
	return Add{Left: l, Right: r}
}

func NewMul(l, r Expr) Expr {
	return Mul{Left: l, Right: r}
}

// Eval computes the value of e. Overflow wraps the same way it does in the
// VM.
func Eval(e Expr) int {
	switch e := e.(type) {
	case Int:
		return e.Value
	case Add:
		return Eval(e.Left) + Eval(e.Right)
	case Mul:
		return Eval(e.Left) * Eval(e.Right)
	}
	panic(fmt.Sprintf("gocalc: unknown expression %T", e))
}
