package gocalc

import (
	"bytes"
	"fmt"
	"strconv"
)

// PrintFull renders e with every binary node wrapped in parentheses.
func PrintFull(e Expr) string {
	var buf bytes.Buffer
	writeFull(&buf, e)
	return buf.String()
}

func writeFull(buf *bytes.Buffer, e Expr) {
	switch e := e.(type) {
	case Int:
		buf.WriteString(strconv.Itoa(e.Value))
	case Add:
		buf.WriteByte('(')
		writeFull(buf, e.Left)
		buf.WriteByte('+')
		writeFull(buf, e.Right)
		buf.WriteByte(')')
	case Mul:
		buf.WriteByte('(')
		writeFull(buf, e.Left)
		buf.WriteByte('*')
		writeFull(buf, e.Right)
		buf.WriteByte(')')
	default:
		panic(fmt.Sprintf("gocalc: unknown expression %T", e))
	}
}

// PrintMinimal renders e with the fewest parentheses that keep its value
// when parsed again.
func PrintMinimal(e Expr) string {
	return PrintMinimalOperand(e, false)
}

// PrintMinimalOperand is PrintMinimal for an expression that is a direct
// operand of a multiplication when operandOfMul is set.
func PrintMinimalOperand(e Expr, operandOfMul bool) string {
	var buf bytes.Buffer
	writeMinimal(&buf, e, operandOfMul)
	return buf.String()
}

// Only a sum below a product needs grouping: a product already binds
// tighter than anything around it, and + and * are associative.
func writeMinimal(buf *bytes.Buffer, e Expr, operandOfMul bool) {
	switch e := e.(type) {
	case Int:
		buf.WriteString(strconv.Itoa(e.Value))
	case Add:
		if operandOfMul {
			buf.WriteByte('(')
		}
		writeMinimal(buf, e.Left, false)
		buf.WriteByte('+')
		writeMinimal(buf, e.Right, false)
		if operandOfMul {
			buf.WriteByte(')')
		}
	case Mul:
		writeMinimal(buf, e.Left, true)
		buf.WriteByte('*')
		writeMinimal(buf, e.Right, true)
	default:
		panic(fmt.Sprintf("gocalc: unknown expression %T", e))
	}
}
