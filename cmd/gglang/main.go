package main

import (
	"fmt"
	"os"

	"github.com/gglang-dev/gglang/internal/config"
	"github.com/gglang-dev/gglang/internal/evaluator"
	"github.com/gglang-dev/gglang/internal/lexer"
	"github.com/gglang-dev/gglang/internal/parser"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // re-panic to get a stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	debugMode := false
	var fileArg string
	for _, arg := range os.Args[1:] {
		if arg == "-debug" || arg == "--debug" {
			debugMode = true
			continue
		}
		if arg == "-version" || arg == "--version" {
			fmt.Println(config.Version)
			os.Exit(0)
		}
		if fileArg == "" {
			fileArg = arg
		}
	}

	if fileArg == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s <filename%s> [--debug] [--version]\n", os.Args[0], config.SourceFileExt)
		os.Exit(1)
	}
	if !config.HasSourceExt(fileArg) {
		fmt.Fprintf(os.Stderr, "%s: not a recognized source file (expected one of %v)\n", fileArg, config.SourceFileExtensions)
		os.Exit(1)
	}
	// programName labels diagnostics below; TrimSourceExt drops the
	// extension the same way a stack trace names its module.
	programName := config.TrimSourceExt(fileArg)

	source, err := os.ReadFile(fileArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: parse error: %s\n", programName, e)
		}
		os.Exit(1)
	}

	ev := evaluator.New()
	ev.Debug = debugMode

	result := ev.Run(program)
	if runtimeErr, ok := result.(*evaluator.RuntimeError); ok {
		fmt.Fprintf(os.Stderr, "%s: runtime error: %s\n", programName, runtimeErr.Inspect())
		os.Exit(1)
	}
}
