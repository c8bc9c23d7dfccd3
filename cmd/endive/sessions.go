package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/endive-xyz/go-endive/prooflog"
)

func sessions(args []string) error {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite proof log database (required)")
	show := fs.String("show", "", "Print the entries of one session")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: endive sessions --db <file> [options]

List recorded proof sessions, or replay one session's directives.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		fs.Usage()
		return fmt.Errorf("--db is required")
	}

	store, err := prooflog.New(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if *show != "" {
		entries, err := store.Entries(*show)
		if err != nil {
			return err
		}
		for _, e := range entries {
			status := "ok"
			if !e.OK {
				status = "failed"
			}
			fmt.Printf("%3d  %-8s %-40s %s\n", e.Seq, status, e.Input, e.Output)
		}
		return nil
	}

	list, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}
	for _, s := range list {
		fmt.Printf("%s  %s  %d entries\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04:05"), s.Entries)
	}
	return nil
}
