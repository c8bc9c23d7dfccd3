package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/endive-xyz/go-endive/parser"
)

func reduce(args []string) error {
	fs := flag.NewFlagSet("reduce", flag.ExitOnError)
	debug := fs.Bool("debug", false, "Log engine activity to stderr")
	maxSteps := fs.Int("max-steps", 0, "Normalization step limit (0 uses the default)")
	jsonOut := fs.Bool("json", false, "Print the normal form as JSON instead of surface syntax")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: endive reduce "<object>" [options]

Normalize one object and print the result.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  endive reduce "(A | (A => B)) | (B => C)"
  endive reduce "plus(0, 3) | (plus(zero, [n]) => [n])"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("object required")
	}

	e := newEngine(*debug, *maxSteps, false)
	outcome := e.Process("Reduce " + strings.Join(fs.Args(), " "))
	if !outcome.OK {
		return fmt.Errorf("%s", outcome.Message)
	}
	if *jsonOut {
		data, err := parser.ToJSON(outcome.Objects[0])
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(outcome.Message)
	return nil
}
