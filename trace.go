package gocalc

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrMismatch = errors.New("vm result differs from evaluation")
)

// Trace parses input and writes every rendering of it to w: both printers,
// the evaluated value, the compiled code and the VM result.
func Trace(w io.Writer, input string) error {
	if _, err := fmt.Fprintf(w, "input:   %s\n", input); err != nil {
		return err
	}
	e, ok := Parse(input).Get()
	if !ok {
		_, err := fmt.Fprintln(w, "result:  nothing")
		return err
	}

	code := Compile(e)
	want := Eval(e)
	got := Run(code)

	_, err := fmt.Fprintf(w, "full:    %s\nminimal: %s\neval:    %d\ncode:    %s\nvm:      %v\n",
		PrintFull(e), PrintMinimal(e), want, CodeString(code), got)
	if err != nil {
		return err
	}
	if v, ok := got.Get(); !ok || v != want {
		return fmt.Errorf("%w: %q: vm %v, eval %d", ErrMismatch, input, got, want)
	}
	return nil
}
