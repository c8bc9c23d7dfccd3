package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "repl":
		if err := repl(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := run(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "reduce":
		if err := reduce(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sessions":
		if err := sessions(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("endive version 0.1.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`endive - rewriting-based proof assistant

Usage:
  endive <command> [options]

Commands:
  repl       Start an interactive proof session
  run        Execute a proof script
  reduce     Normalize a single object
  check      Check buildability of a single object
  sessions   List recorded proof sessions
  help       Show this help message
  version    Show version information

Examples:
  # Interactive session with a recorded log
  endive repl --log session.jsonl

  # Run a proof script
  endive run proofs/arith.end

  # One-shot reduction
  endive reduce "(A | (A => B)) | (B => C)"

  # Buildability check with unification matching
  endive check --unify "f(a) => f(a)"

For command-specific help, run:
  endive <command> --help`)
}
