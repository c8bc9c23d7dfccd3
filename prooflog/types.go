// Package prooflog records proof sessions: every directive processed by
// an engine, its rendered outcome, and whether it succeeded. Logs can be
// appended to JSONL streams for replay or kept in a SQLite database for
// querying across sessions.
package prooflog

import "time"

// Entry is one processed directive in a session.
type Entry struct {
	Session   string    `json:"session"`
	Seq       int       `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Directive string    `json:"directive"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	OK        bool      `json:"ok"`
}

// Session summarizes one recorded proof session.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Entries   int       `json:"entries"`
}
