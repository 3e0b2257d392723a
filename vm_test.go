package gocalc_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/mattn/gocalc"
)

var _ = Describe("VM", func() {

	compile := func(input string) []Inst {
		e, ok := Parse(input).Get()
		Expect(ok).To(BeTrue())
		return Compile(e)
	}

	DescribeTable("running compiled expressions",
		func(input string, want int) {
			e := Parse(input).FromJust()
			got := Run(Compile(e))
			Expect(got.IsJust()).To(BeTrue())
			Expect(got.FromJust()).To(Equal(want))
			Expect(got.FromJust()).To(Equal(Eval(e)))
		},
		Entry("constant", "1", 1),
		Entry("precedence", "1 + 2 * (2+1)", 7),
		Entry("grouping", "2 * (2 + 1)", 6),
		Entry("zero product", "1 + 2 * 0 ", 1),
		Entry("product first", "1 * 2 + 0 ", 2),
		Entry("grouped zero product", "(1 + 2) * 0 ", 0),
		Entry("long sum", "1+  1+   1+1+ 1 +1 + 1+  1", 8),
		Entry("long product", "2*2*2*2*2*2*2*2*2*2*2", 2048),
		Entry("two to the thirty", "2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2*2", 1<<30),
		Entry("nested", "2*((2*1)*2) + (2*2)*1 + 0 + 0*0", 12),
		Entry("mixed", "(2) + (2*2+0) * (2)+2+ (2*2)*1", 16),
		Entry("mixed groups", "(2*1*2) + (2) + 2 * (2+1)*(0*1+1)", 12),
		Entry("product of sums", "(1+2)*(0*2+2*2+1)", 15),
		Entry("sum of sums times sum", "((2+2) + (2*2+1)) * (1+1+2+1)", 45),
	)

	DescribeTable("running malformed code",
		func(code []Inst, want error) {
			Expect(Run(code).IsNothing()).To(BeTrue())
			_, err := NewVM(code).Exec()
			Expect(err).To(MatchError(want))
			var execErr *ExecutionError
			Expect(err).To(BeAssignableToTypeOf(execErr))
		},
		Entry("operator first", []Inst{Plus(), Push(1), Push(2)}, ErrStackUnderflow),
		Entry("one operator too many", []Inst{Push(1), Push(2), Plus(), Plus()}, ErrStackUnderflow),
		Entry("single operand", []Inst{Push(1), Mult()}, ErrStackUnderflow),
		Entry("empty code", []Inst{}, ErrEmptyStack),
		Entry("nil code", []Inst(nil), ErrEmptyStack),
		Entry("two results", []Inst{Push(1), Push(2)}, ErrStackResidue),
		Entry("unknown opcode", []Inst{Push(1), {Op: OpCode(7)}}, ErrUnexpectedInst),
	)

	Context("when running the same vm twice", func() {
		It("should start from an empty stack each time", func() {
			vm := NewVM(compile("(1+2)*3"))
			Expect(vm.Run().FromJust()).To(Equal(9))
			Expect(vm.Run().FromJust()).To(Equal(9))
			stack := vm.Stack()
			Expect(stack.Len()).To(Equal(1))
		})
	})

	Context("when an instruction underflows", func() {
		It("should report its position", func() {
			_, err := NewVM([]Inst{Push(1), Push(2), Plus(), Mult()}).Exec()
			execErr, ok := err.(*ExecutionError)
			Expect(ok).To(BeTrue())
			Expect(execErr.PC).To(Equal(3))
		})
	})

	Context("when printing a vm", func() {
		It("should show code and stack", func() {
			vm := NewVM([]Inst{Push(1), Push(2), Plus()})
			vm.Run()
			Expect(vm.String()).To(Equal("Code: Push 1; Push 2; Plus; Stack: [3]"))
		})
	})
})
