package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyStack     = errors.New("no value left on stack")
	ErrStackResidue   = errors.New("more than one value left on stack")
	ErrUnexpectedInst = errors.New("unexpected instruction")
)

// ExecutionError reports the instruction at which a run stopped. PC equals
// the code length when the final stack is wrong.
type ExecutionError struct {
	PC  int
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error at instruction %v: %v", e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// VM is a stack machine running a fixed instruction sequence. A VM is not
// safe for concurrent use; separate VMs share nothing.
type VM struct {
	code  []Inst
	stack Stack
}

func NewVM(code []Inst) *VM {
	return &VM{
		code: code,
	}
}

// Run executes the code on an empty stack. It returns Nothing if any
// instruction underflows the stack or if the run does not end with exactly
// one value.
func (vm *VM) Run() Option[int] {
	v, err := vm.Exec()
	if err != nil {
		return Nothing[int]()
	}
	return Just(v)
}

// Exec is Run reporting why a run failed.
func (vm *VM) Exec() (int, error) {
	// every run starts from an empty stack; no value can outlive len(code) pushes
	vm.stack = NewStack(len(vm.code))

	for pc, inst := range vm.code {
		if err := vm.exec(inst); err != nil {
			return 0, &ExecutionError{PC: pc, Err: err}
		}
	}

	switch vm.stack.Len() {
	case 0:
		return 0, &ExecutionError{PC: len(vm.code), Err: ErrEmptyStack}
	case 1:
		return vm.stack.Peek()
	}
	return 0, &ExecutionError{PC: len(vm.code), Err: ErrStackResidue}
}

func (vm *VM) exec(inst Inst) error {
	switch inst.Op {
	case OpPush:
		return vm.stack.Push(inst.Value)
	case OpAdd, OpMul:
		if vm.stack.Len() < 2 {
			return ErrStackUnderflow
		}
		right, _ := vm.stack.Pop()
		left, _ := vm.stack.Pop()
		if inst.Op == OpAdd {
			return vm.stack.Push(left + right)
		}
		return vm.stack.Push(left * right)
	}
	return fmt.Errorf("%w: %v", ErrUnexpectedInst, inst)
}

// Stack returns the stack as left by the last run.
func (vm *VM) Stack() Stack {
	return vm.stack
}

func (vm *VM) String() string {
	return fmt.Sprintf("Code: %s Stack: %s", CodeString(vm.code), vm.stack.String())
}

// Run executes code on a fresh VM.
func Run(code []Inst) Option[int] {
	return NewVM(code).Run()
}
