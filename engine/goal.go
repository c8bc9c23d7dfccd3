package engine

import (
	"strings"

	"github.com/endive-xyz/go-endive/object"
	"github.com/endive-xyz/go-endive/rewrite"
	"github.com/endive-xyz/go-endive/unify"
)

// goalState tracks one backward proof in progress. The stated goal is
// refined by Intro (moving a rule's pattern into the assumptions) and By
// (replacing the goal with the pattern of a rule whose result matches
// it); Done closes the proof and replays the applied rules forward as a
// composition witness.
type goalState struct {
	symbol      string
	stated      object.Object
	current     object.Object
	assumptions []object.Object
	applied     []object.Object
}

func (e *Engine) handleGoal(args []object.Object) Outcome {
	if len(args) != 1 {
		return Outcome{OK: false, Message: "Goal needs exactly one object"}
	}
	symbol := e.ruleSymbol
	if r, ok := args[0].(*object.Rewrite); ok {
		symbol = r.Symbol
	}
	e.goal = &goalState{symbol: symbol, stated: args[0], current: args[0]}
	return Outcome{OK: true, Message: "New goal: " + display(args[0])}
}

func (e *Engine) handleIntro(args []object.Object) Outcome {
	if e.goal == nil {
		return Outcome{OK: false, Message: "No active goal"}
	}
	r, ok := e.goal.current.(*object.Rewrite)
	if !ok {
		return Outcome{OK: false, Message: "Goal is not a rewriting"}
	}
	e.goal.symbol = r.Symbol
	e.goal.assumptions = append(e.goal.assumptions, r.Pattern)
	e.goal.current = r.Result
	return Outcome{OK: true, Message: "New goal: " + display(r.Result)}
}

func (e *Engine) handleBy(args []object.Object) Outcome {
	if e.goal == nil {
		return Outcome{OK: false, Message: "No active goal"}
	}
	if len(args) < 1 || len(args) > 2 {
		return Outcome{OK: false, Message: "By needs a rule and optionally Force"}
	}
	rule, ok := args[0].(*object.Rewrite)
	if !ok {
		return Outcome{OK: false, Message: display(args[0]) + " is not a rewriting"}
	}

	forced := false
	if len(args) == 2 {
		f, ok := args[1].(*object.Term)
		if !ok || !strings.EqualFold(f.Name, "force") || len(f.Children) != 0 {
			return Outcome{OK: false, Message: "second argument to By must be Force"}
		}
		forced = true
	}
	if !forced && !e.goal.assumed(rule) {
		return Outcome{OK: false,
			Message: display(rule) + " is not a known rewriting. Use Force to use it anyway."}
	}

	// Match the rule's result against the goal (its pattern side, when
	// the goal is itself a rule) and step back to the rule's pattern.
	target := e.goal.current
	if r, ok := target.(*object.Rewrite); ok {
		target = r.Pattern
	}
	subst, err := unify.Unify(rule.Result, target)
	if err != nil {
		return Outcome{OK: false,
			Message: "Can't apply " + display(rule) + " to obtain " + display(e.goal.current)}
	}
	newGoal := subst.Apply(rule.Pattern)
	e.goal.applied = append(e.goal.applied, rule)
	e.goal.current = newGoal
	return Outcome{OK: true, Message: "New goal: " + display(newGoal)}
}

func (e *Engine) handleDone(args []object.Object) Outcome {
	if e.goal == nil {
		return Outcome{OK: false, Message: "No active goal"}
	}
	if !e.goal.assumed(e.goal.current) {
		return Outcome{OK: false, Message: "Goal not completed: " + display(e.goal.current)}
	}
	witness := e.goal.witness(e.goal.current)
	normalized, err := rewrite.Normalize(witness, e.maxSteps)
	if err != nil {
		return Outcome{OK: false, Message: err.Error()}
	}
	e.goal = nil
	return Outcome{OK: true,
		Message: "Goal completed: " + display(normalized),
		Objects: []object.Object{normalized}}
}

func (e *Engine) handleStatus(args []object.Object) Outcome {
	if e.goal == nil {
		return Outcome{OK: true, Message: "No active goal"}
	}
	var b strings.Builder
	b.WriteString("Goal: " + display(e.goal.current))
	b.WriteString("\ncontext: [")
	for i, a := range e.goal.assumptions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(display(a))
	}
	b.WriteString("]")
	b.WriteString("\nproof: " + display(e.goal.witness(object.NewHole("..."))))
	return Outcome{OK: true, Message: b.String()}
}

// assumed reports whether o matches an introduced assumption.
func (g *goalState) assumed(o object.Object) bool {
	for _, a := range g.assumptions {
		if object.Equal(o, a) {
			return true
		}
	}
	return false
}

// witness replays the rules applied by By as forward compositions from
// seed: the innermost composition applies the most recently used rule.
// Reducing the witness of a completed proof yields the stated goal.
func (g *goalState) witness(seed object.Object) object.Object {
	result := seed
	for i := len(g.applied) - 1; i >= 0; i-- {
		result = object.NewComposition(result, g.applied[i])
	}
	return result
}
