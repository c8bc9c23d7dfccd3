package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	debug := fs.Bool("debug", false, "Log engine activity to stderr")
	logPath := fs.String("log", "", "Append the session to a JSONL log")
	dbPath := fs.String("db", "", "Record the session in a SQLite database")
	maxSteps := fs.Int("max-steps", 0, "Normalization step limit (0 uses the default)")
	unify := fs.Bool("unify", false, "Match buildability context entries by unification")
	quiet := fs.Bool("quiet", false, "Only print failures")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: endive run <script.end> [options]

Execute a proof script. Imports named by Using resolve relative to the
script's directory. Execution stops at the first failing directive.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}
	script := fs.Arg(0)

	f, err := os.Open(script)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	rec, err := newRecorder(*logPath, *dbPath)
	if err != nil {
		return err
	}
	defer rec.close()

	e := newEngine(*debug, *maxSteps, *unify).WithBasePath(filepath.Dir(script))

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		outcome := e.Process(line)
		if recErr := rec.record(line, outcome); recErr != nil {
			return fmt.Errorf("record: %w", recErr)
		}
		if !outcome.OK {
			return fmt.Errorf("%s:%d: %s", script, lineNum, outcome.Message)
		}
		if outcome.Message != "" && !*quiet {
			fmt.Println(outcome.Message)
		}
	}
	return scanner.Err()
}
