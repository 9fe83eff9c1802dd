/*
Fstc is an interactive finite-state transducer compiler shell.

It reads relation expressions, one per line, and prints the FST each
one denotes. A line whose parentheses are not yet closed continues on
the following line(s), and lines holding only a "#" comment are skipped. Expressions combine single-symbol mappings with
concatenation, union ("|"), intersection ("&"), subtraction ("-"),
Kleene star ("*"), and parenthesized grouping; see internal/miniexpr
for the full grammar. To exit the shell, send end-of-file (Ctrl-D).

Usage:

	fstc [flags]

The flags are:

	-v, --version
		Give the current version of fstc and then exit.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a
		tty with stdin and stdout.

	-c, --config FILE
		Load shell configuration from the given TOML file. Defaults to
		"fstc.toml" in the current working directory; a missing file is
		not an error.

	-e, --expr EXPRESSIONS
		Immediately evaluate the given expression(s) and exit. Can be
		multiple expressions separated by the ";" character.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/fstrel/eval"
	"github.com/dekarrin/fstrel/internal/config"
	"github.com/dekarrin/fstrel/internal/input"
	"github.com/dekarrin/fstrel/internal/miniexpr"
	"github.com/dekarrin/fstrel/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitEvalError indicates an unsuccessful program execution due to a
	// problem evaluating an expression.
	ExitEvalError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the shell.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	configFile  = pflag.StringP("config", "c", "fstc.toml", "TOML file of shell configuration to load")
	startExprs  = pflag.StringP("expr", "e", "", "Evaluate the given expression(s) immediately and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	var exprs []string
	if *startExprs != "" {
		exprs = strings.Split(*startExprs, ";")
	}

	if err := run(cfg, exprs, *forceDirect); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitEvalError
	}
}

type exprReader interface {
	ReadExpr() (string, error)
	AllowBlank(bool)
	Close() error
}

func run(cfg config.Config, startExprs []string, direct bool) error {
	for _, src := range startExprs {
		if err := evalAndPrint(cfg, src); err != nil {
			return err
		}
	}
	if len(startExprs) > 0 {
		return nil
	}

	reader, err := newReader(direct)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		line, err := reader.ReadExpr()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := evalAndPrint(cfg, line); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
	}
}

func newReader(direct bool) (exprReader, error) {
	if direct || !isInteractive() {
		return input.NewDirectReader(os.Stdin), nil
	}
	return input.NewInteractiveReader()
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func evalAndPrint(cfg config.Config, src string) error {
	node, err := miniexpr.Parse(src)
	if err != nil {
		return err
	}

	f, err := eval.Evaluate(node)
	if err != nil {
		return err
	}

	if max := cfg.Determinize.MaxStates; max > 0 && len(f.States) > max {
		return fmt.Errorf("result has %d states, over the configured limit of %d", len(f.States), max)
	}

	width := cfg.Print.WrapWidth
	if width <= 0 {
		width = 76
	}
	fmt.Println(f.StringWithWrap(width))
	return nil
}
