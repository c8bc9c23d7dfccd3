package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
)

func repl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	debug := fs.Bool("debug", false, "Log engine activity to stderr")
	logPath := fs.String("log", "", "Append the session to a JSONL log")
	dbPath := fs.String("db", "", "Record the session in a SQLite database")
	maxSteps := fs.Int("max-steps", 0, "Normalization step limit (0 uses the default)")
	unify := fs.Bool("unify", false, "Match buildability context entries by unification")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: endive repl [options]

Start an interactive proof session. Directives are read line by line;
"exit" or "quit" ends the session.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rec, err := newRecorder(*logPath, *dbPath)
	if err != nil {
		return err
	}
	defer rec.close()

	e := newEngine(*debug, *maxSteps, *unify)
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("endive> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		outcome := e.Process(line)
		if outcome.Message != "" {
			fmt.Println(outcome.Message)
		}
		if err := rec.record(line, outcome); err != nil {
			return fmt.Errorf("record: %w", err)
		}
		fmt.Print("endive> ")
	}
	fmt.Println()
	return scanner.Err()
}
