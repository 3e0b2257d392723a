package gocalc_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/mattn/gocalc"
)

var _ = Describe("Stack", func() {

	buildFullStack := func(cap int) Stack {
		stack := NewStack(cap)
		for i := 0; i < cap; i++ {
			stack.Push(i)
		}
		return stack
	}

	table := []struct {
		cap int
	}{
		{1}, {2}, {16}, {256},
	}

	for _, entry := range table {
		entry := entry

		Context("when the stack is full", func() {
			It("should be full and not empty", func() {
				stack := buildFullStack(entry.cap)
				Expect(stack.IsFull()).To(BeTrue())
				Expect(stack.IsEmpty()).To(BeFalse())
				Expect(stack.Len()).To(Equal(entry.cap))
			})

			It("should return a stack overflow when pushing", func() {
				stack := buildFullStack(entry.cap)
				Expect(stack.Push(0)).To(Equal(ErrStackOverflow))
			})

			It("should pop all values in reverse order", func() {
				stack := buildFullStack(entry.cap)
				for i := 0; i < entry.cap; i++ {
					top, err := stack.Peek()
					Expect(err).To(BeNil())
					v, err := stack.Pop()
					Expect(err).To(BeNil())
					Expect(v).To(Equal(top))
					Expect(v).To(Equal(entry.cap - (i + 1)))
				}
				Expect(stack.IsEmpty()).To(BeTrue())
			})
		})

		Context("when the stack is empty", func() {
			It("should be empty and not full", func() {
				stack := NewStack(entry.cap)
				Expect(stack.IsEmpty()).To(BeTrue())
				Expect(stack.IsFull()).To(BeFalse())
				Expect(stack.Cap()).To(Equal(entry.cap))
			})

			It("should return a stack underflow when popping", func() {
				stack := NewStack(entry.cap)
				v, err := stack.Pop()
				Expect(err).To(Equal(ErrStackUnderflow))
				Expect(v).To(Equal(0))
				_, err = stack.Peek()
				Expect(err).To(Equal(ErrStackUnderflow))
			})
		})
	}

	Context("when building a stack with zero capacity", func() {
		It("should be empty and full", func() {
			stack := NewStack(0)
			Expect(stack.IsEmpty()).To(BeTrue())
			Expect(stack.IsFull()).To(BeTrue())
			Expect(stack.Push(1)).To(Equal(ErrStackOverflow))
		})
	})

	Context("when building a stack with negative capacity", func() {
		It("should panic", func() {
			Expect(func() { NewStack(-1) }).To(Panic())
		})
	})

	Context("when printing a stack", func() {
		It("should list values bottom first", func() {
			stack := NewStack(4)
			stack.Push(1)
			stack.Push(2)
			Expect(stack.String()).To(Equal("[1, 2]"))
		})
	})
})
