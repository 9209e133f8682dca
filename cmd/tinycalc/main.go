package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mblakely/tinycalc"
)

var (
	promptColor = color.New(color.FgCyan)
	errColor    = color.New(color.FgRed)
)

func repl() {
	env := tinycalc.NewEnv()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print("calc > ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		tokens, err := tinycalc.Tokenize(line)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("tokens: %v\n", tokens)

		expr, err := tinycalc.Parse(tokens)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("parsed: %v\n", expr)

		out, err := env.Eval(expr)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
}

// runLines evaluates r line by line against one environment, printing each
// non-empty line's result. The first failure aborts.
func runLines(r io.Reader) error {
	env := tinycalc.NewEnv()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out, err := env.EvalString(line)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return scanner.Err()
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl()
			return
		}
		if err := runLines(os.Stdin); err != nil {
			errColor.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := runLines(f); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
