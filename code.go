package gocalc

import (
	"fmt"
	"strconv"
	"strings"
)

type OpCode int

const (
	OpPush OpCode = iota
	OpAdd
	OpMul
)

// Inst is a single VM instruction. Value is only meaningful for OpPush.
type Inst struct {
	Op    OpCode
	Value int
}

func Push(v int) Inst {
	return Inst{Op: OpPush, Value: v}
}

func Plus() Inst {
	return Inst{Op: OpAdd}
}

func Mult() Inst {
	return Inst{Op: OpMul}
}

func (inst Inst) String() string {
	switch inst.Op {
	case OpPush:
		return "Push " + strconv.Itoa(inst.Value) + ";"
	case OpAdd:
		return "Plus;"
	case OpMul:
		return "Mult;"
	}
	return "UNK;"
}

// CodeString renders code as space separated instructions.
func CodeString(code []Inst) string {
	ss := make([]string, len(code))
	for i, inst := range code {
		ss[i] = inst.String()
	}
	return strings.Join(ss, " ")
}

// Compile linearizes e in post-order. Running the result on an empty stack
// leaves exactly one value, Eval(e).
func Compile(e Expr) []Inst {
	return compile(nil, e)
}

func compile(code []Inst, e Expr) []Inst {
	switch e := e.(type) {
	case Int:
		return append(code, Push(e.Value))
	case Add:
		code = compile(code, e.Left)
		code = compile(code, e.Right)
		return append(code, Plus())
	case Mul:
		code = compile(code, e.Left)
		code = compile(code, e.Right)
		return append(code, Mult())
	}
	panic(fmt.Sprintf("gocalc: unknown expression %T", e))
}
