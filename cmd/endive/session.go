package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/endive-xyz/go-endive/engine"
	"github.com/endive-xyz/go-endive/prooflog"
)

// newEngine builds an engine from the shared CLI options.
func newEngine(debug bool, maxSteps int, unify bool) *engine.Engine {
	e := engine.New()
	if debug {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
		e = e.WithLogger(logger)
	}
	if maxSteps > 0 {
		e = e.WithMaxSteps(maxSteps)
	}
	if unify {
		e = e.WithUnifyMatching()
	}
	return e
}

// recorder mirrors processed directives to a JSONL stream, a SQLite
// store, or both. A nil recorder records nothing.
type recorder struct {
	jsonl   io.WriteCloser
	store   *prooflog.Store
	session string
	seq     int
}

// newRecorder opens the requested log sinks. Both paths are optional;
// with neither set it returns nil.
func newRecorder(logPath, dbPath string) (*recorder, error) {
	if logPath == "" && dbPath == "" {
		return nil, nil
	}
	r := &recorder{session: uuid.NewString()}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		r.jsonl = f
	}
	if dbPath != "" {
		store, err := prooflog.New(dbPath)
		if err != nil {
			if r.jsonl != nil {
				r.jsonl.Close()
			}
			return nil, err
		}
		session, err := store.BeginSession()
		if err != nil {
			store.Close()
			if r.jsonl != nil {
				r.jsonl.Close()
			}
			return nil, err
		}
		r.store = store
		r.session = session
	}
	return r, nil
}

func (r *recorder) record(input string, outcome engine.Outcome) error {
	if r == nil || outcome.Directive == "" {
		return nil
	}
	r.seq++
	entry := prooflog.Entry{
		Session:   r.session,
		Seq:       r.seq,
		Timestamp: time.Now().UTC(),
		Directive: outcome.Directive,
		Input:     input,
		Output:    outcome.Message,
		OK:        outcome.OK,
	}
	if r.jsonl != nil {
		if err := prooflog.AppendJSONL(r.jsonl, entry); err != nil {
			return err
		}
	}
	if r.store != nil {
		if err := r.store.Append(entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *recorder) close() {
	if r == nil {
		return
	}
	if r.jsonl != nil {
		r.jsonl.Close()
	}
	if r.store != nil {
		r.store.Close()
	}
}
