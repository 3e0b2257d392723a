package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
	"github.com/peterh/liner"
)

const historyFile = ".gocalc_history"

var errParse = errors.New("invalid expression")

var cli struct {
	Mode  string   `short:"m" enum:"eval,full,minimal,code,vm,ast,trace" default:"eval" help:"Output: eval, full, minimal, code, vm, ast or trace."`
	Check bool     `help:"Run the built-in check suite."`
	Expr  []string `arg:"" optional:"" help:"Expression. Read from stdin when omitted."`
}

func process(w io.Writer, mode, input string) error {
	if mode == "trace" {
		return gocalc.Trace(w, input)
	}
	e, ok := gocalc.Parse(input).Get()
	if !ok {
		return fmt.Errorf("%w: %q", errParse, input)
	}
	switch mode {
	case "full":
		fmt.Fprintln(w, gocalc.PrintFull(e))
	case "minimal":
		fmt.Fprintln(w, gocalc.PrintMinimal(e))
	case "code":
		fmt.Fprintln(w, gocalc.CodeString(gocalc.Compile(e)))
	case "vm":
		v, err := gocalc.NewVM(gocalc.Compile(e)).Exec()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	case "ast":
		repr.New(w).Println(e)
	default:
		fmt.Fprintln(w, gocalc.Eval(e))
	}
	return nil
}

func check(w io.Writer) bool {
	checks, err := gocalc.LoadChecks()
	if err != nil {
		log.Fatal(err)
	}
	pass := 0
	for _, c := range checks {
		if err := c.Run(); err != nil {
			fmt.Fprintf(w, "FAIL %v\n", err)
			continue
		}
		fmt.Fprintf(w, "PASS %s:%d %q\n", c.File, c.Line, c.Input)
		pass++
	}
	fmt.Fprintf(w, "Test summary: %d/%d passed\n", pass, len(checks))
	return pass == len(checks)
}

func repl(mode string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFile)
		if f, err := os.Open(history); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			if err != io.EOF && err != liner.ErrPromptAborted {
				log.Print(err)
			}
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		if err := process(os.Stdout, mode, input); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gocalc: ")

	kctx := kong.Parse(&cli, kong.Description(`
Parse integer expressions over + and *, then evaluate them, print them fully
or minimally parenthesized, or compile and run them on a stack machine.
`))

	if cli.Check {
		if !check(os.Stdout) {
			kctx.Exit(1)
		}
		return
	}

	if len(cli.Expr) > 0 {
		err := process(os.Stdout, cli.Mode, strings.Join(cli.Expr, " "))
		kctx.FatalIfErrorf(err)
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		repl(cli.Mode)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := scanner.Text()
		if strings.TrimSpace(input) == "" {
			continue
		}
		if err := process(os.Stdout, cli.Mode, input); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
