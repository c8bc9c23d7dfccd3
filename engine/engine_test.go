package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func process(t *testing.T, e *Engine, line string) Outcome {
	t.Helper()
	outcome := e.Process(line)
	if !outcome.OK {
		t.Fatalf("Process(%q) failed: %s", line, outcome.Message)
	}
	return outcome
}

func TestBlankAndComment(t *testing.T) {
	e := New()
	for _, line := range []string{"", "   ", "# a comment"} {
		if outcome := e.Process(line); !outcome.OK || outcome.Message != "" {
			t.Errorf("Process(%q) = %+v, want silent success", line, outcome)
		}
	}
}

func TestUnknownDirective(t *testing.T) {
	e := New()
	outcome := e.Process("Frobnicate x")
	if outcome.OK {
		t.Fatal("unknown directive succeeded")
	}
	if outcome.Message != "no handler registered for directive: Frobnicate" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestDefineAndAlias(t *testing.T) {
	e := New()
	outcome := process(t, e, "Define step, (A => B)")
	if outcome.Message != "step defined" {
		t.Errorf("message = %q, want step defined", outcome.Message)
	}
	outcome = process(t, e, "Reduce A | step")
	if outcome.Message != "B" {
		t.Errorf("Reduce through alias = %q, want B", outcome.Message)
	}
}

func TestDefineRejectsCompoundName(t *testing.T) {
	e := New()
	outcome := e.Process("Define f(x), A")
	if outcome.OK {
		t.Fatal("compound name accepted")
	}
	if outcome.Message != "Name must be a simple term with no arguments" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestReduceChain(t *testing.T) {
	e := New()
	outcome := process(t, e, "Reduce (A | (A => B)) | (B => C)")
	if outcome.Message != "C" {
		t.Errorf("Reduce = %q, want C", outcome.Message)
	}
}

func TestNumeralSugar(t *testing.T) {
	e := New()
	// No arithmetic rules are loaded, so the term is inert; the round
	// trip through Peano encoding must restore the numerals on display.
	outcome := process(t, e, "Reduce plus(2, 3)")
	if outcome.Message != "plus(2, 3)" {
		t.Errorf("Reduce = %q, want plus(2, 3)", outcome.Message)
	}

	process(t, e, "Define addzero, (plus(zero, [n]) => [n])")
	outcome = process(t, e, "Reduce plus(0, 3) | addzero")
	if outcome.Message != "3" {
		t.Errorf("Reduce = %q, want 3", outcome.Message)
	}
}

func TestCheckDirective(t *testing.T) {
	e := New()
	outcome := process(t, e, "Check A => A")
	if outcome.Message != "A => A is buildable" {
		t.Errorf("message = %q", outcome.Message)
	}

	failed := e.Process("Check B")
	if failed.OK {
		t.Fatal("bare term checked as buildable")
	}
	if failed.Message != "B is not buildable" {
		t.Errorf("message = %q", failed.Message)
	}
	if len(failed.Objects) != 1 {
		t.Errorf("expected the culprit object, got %v", failed.Objects)
	}
}

func TestAxiomExtendsCheckContext(t *testing.T) {
	e := New()
	if outcome := e.Process("Check B"); outcome.OK {
		t.Fatal("B buildable without axioms")
	}
	outcome := process(t, e, "Axiom B")
	if outcome.Message != "Axiom added: B" {
		t.Errorf("message = %q", outcome.Message)
	}
	outcome = process(t, e, "Check B")
	if outcome.Message != "B is buildable" {
		t.Errorf("message = %q", outcome.Message)
	}
	// The axiom also discharges inside compositions.
	outcome = process(t, e, "Check B | (A => A)")
	if outcome.Message != "B | A => A is buildable" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestGoalIntroDone(t *testing.T) {
	e := New()
	outcome := process(t, e, "Goal (A => B) => (A => B)")
	if outcome.Message != "New goal: (A => B) => (A => B)" &&
		!strings.HasPrefix(outcome.Message, "New goal: ") {
		t.Errorf("message = %q", outcome.Message)
	}
	process(t, e, "Intro")
	outcome = process(t, e, "Done")
	if !strings.HasPrefix(outcome.Message, "Goal completed: ") {
		t.Errorf("message = %q, want Goal completed", outcome.Message)
	}
}

func TestGoalByForceDone(t *testing.T) {
	e := New()
	process(t, e, "Goal A => C")
	process(t, e, "Intro")

	// The rule is not an introduced assumption, so By requires Force.
	rejected := e.Process("By A => C")
	if rejected.OK {
		t.Fatal("By accepted an unknown rule without Force")
	}
	if !strings.Contains(rejected.Message, "not a known rewriting") {
		t.Errorf("message = %q", rejected.Message)
	}

	outcome := process(t, e, "By A => C, Force")
	if outcome.Message != "New goal: A" {
		t.Errorf("message = %q, want New goal: A", outcome.Message)
	}

	outcome = process(t, e, "Done")
	if outcome.Message != "Goal completed: C" {
		t.Errorf("message = %q, want Goal completed: C", outcome.Message)
	}
	if len(outcome.Objects) != 1 {
		t.Fatalf("expected the proved object, got %v", outcome.Objects)
	}
}

func TestDoneIncomplete(t *testing.T) {
	e := New()
	process(t, e, "Goal A => C")
	process(t, e, "Intro")
	outcome := e.Process("Done")
	if outcome.OK {
		t.Fatal("incomplete proof accepted")
	}
	if outcome.Message != "Goal not completed: C" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestStatus(t *testing.T) {
	e := New()
	outcome := process(t, e, "Status")
	if outcome.Message != "No active goal" {
		t.Errorf("message = %q", outcome.Message)
	}
	process(t, e, "Goal A => C")
	process(t, e, "Intro")
	outcome = process(t, e, "Status")
	if !strings.Contains(outcome.Message, "Goal: C") ||
		!strings.Contains(outcome.Message, "context: [A]") {
		t.Errorf("status = %q", outcome.Message)
	}
}

func TestTacticsWithoutGoal(t *testing.T) {
	e := New()
	for _, line := range []string{"Intro", "By A => B", "Done"} {
		outcome := e.Process(line)
		if outcome.OK || outcome.Message != "No active goal" {
			t.Errorf("Process(%q) = %+v, want No active goal", line, outcome)
		}
	}
}

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUsing(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "arith.end", "Define addzero, (plus(zero, [n]) => [n])\n")

	e := New().WithBasePath(dir)
	outcome := process(t, e, "Using arith")
	if outcome.Message != "Imported: arith" {
		t.Errorf("message = %q", outcome.Message)
	}

	// The imported definition is live.
	outcome = process(t, e, "Reduce plus(0, 1) | addzero")
	if outcome.Message != "1" {
		t.Errorf("Reduce = %q, want 1", outcome.Message)
	}

	// Re-import is skipped silently.
	outcome = process(t, e, "Using arith")
	if outcome.Message != "Already imported: arith" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestUsingCircular(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.end", "Using b\n")
	writeScript(t, dir, "b.end", "Using a\n")

	e := New().WithBasePath(dir)
	outcome := e.Process("Using a")
	if outcome.OK {
		t.Fatal("circular import accepted")
	}
	if outcome.Message != "Circular import: a" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestUsingMissingFile(t *testing.T) {
	e := New().WithBasePath(t.TempDir())
	outcome := e.Process("Using nothere")
	if outcome.OK || !strings.HasPrefix(outcome.Message, "File not found: ") {
		t.Errorf("outcome = %+v", outcome)
	}
}
