package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=checks -f

// A check file spells a failed parse as nothing.
const nothing = "nothing"

// Check is one line of a check file: an input with the minimal rendering
// and value it must produce.
type Check struct {
	File    string
	Line    int
	Input   string
	Minimal string
	Value   string
}

type CheckError struct {
	Check Check
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.Check.File, e.Check.Line, e.Check.Input, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// LoadChecks reads every check file embedded in the binary.
func LoadChecks() ([]Check, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })

	var checks []Check
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".calc" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		cs, err := ParseChecks(fi.Name(), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		checks = append(checks, cs...)
	}
	return checks, nil
}

// ParseChecks reads lines of the form "input | minimal | value". Blank lines
// and lines starting with '#' are skipped.
func ParseChecks(name string, r io.Reader) ([]Check, error) {
	var checks []Check
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 fields, got %d", name, n, len(fields))
		}
		checks = append(checks, Check{
			File:    name,
			Line:    n,
			Input:   strings.TrimSpace(fields[0]),
			Minimal: strings.TrimSpace(fields[1]),
			Value:   strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return checks, nil
}

// Run verifies c: the minimal rendering and the value must match, both
// renderings must parse back to the same value and the VM must agree with
// the evaluator.
func (c Check) Run() error {
	fail := func(format string, args ...interface{}) error {
		return &CheckError{Check: c, Err: fmt.Errorf(format, args...)}
	}

	e, ok := Parse(c.Input).Get()
	if !ok {
		if c.Minimal != nothing || c.Value != nothing {
			return fail("parse failed")
		}
		return nil
	}

	minimal := PrintMinimal(e)
	if minimal != c.Minimal {
		return fail("minimal: want %q, got %q", c.Minimal, minimal)
	}
	want := Eval(e)
	if value := strconv.Itoa(want); value != c.Value {
		return fail("value: want %s, got %s", c.Value, value)
	}
	for _, s := range []string{PrintFull(e), minimal} {
		back, ok := Parse(s).Get()
		if !ok {
			return fail("%q does not parse", s)
		}
		if v := Eval(back); v != want {
			return fail("%q evaluates to %d, want %d", s, v, want)
		}
	}
	v, err := NewVM(Compile(e)).Exec()
	if err != nil {
		return &CheckError{Check: c, Err: err}
	}
	if v != want {
		return &CheckError{Check: c, Err: fmt.Errorf("%w: vm %d, eval %d", ErrMismatch, v, want)}
	}
	return nil
}
