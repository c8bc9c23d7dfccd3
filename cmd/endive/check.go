package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	debug := fs.Bool("debug", false, "Log engine activity to stderr")
	unify := fs.Bool("unify", false, "Match buildability context entries by unification")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: endive check "<object>" [options]

Report whether an object is buildable from an empty context. A failing
check exits nonzero and names the first unbuildable subterm.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("object required")
	}

	e := newEngine(*debug, 0, *unify)
	outcome := e.Process("Check " + strings.Join(fs.Args(), " "))
	if !outcome.OK {
		return fmt.Errorf("%s", outcome.Message)
	}
	fmt.Println(outcome.Message)
	return nil
}
