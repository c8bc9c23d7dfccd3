// Package engine implements the stateful proof session above the
// kernel: directive dispatch, aliasing, numeral sugar, goal-directed
// proving and script imports. The kernel packages stay pure; all session
// state lives here.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/endive-xyz/go-endive/buildability"
	"github.com/endive-xyz/go-endive/object"
	"github.com/endive-xyz/go-endive/parser"
	"github.com/endive-xyz/go-endive/rewrite"
)

// DefaultRuleSymbol is the rule system used by Check when the checked
// object is not itself a rewrite.
const DefaultRuleSymbol = "=>"

// Outcome reports the result of processing one directive line.
type Outcome struct {
	Directive string
	OK        bool
	Message   string
	// Objects carries result objects for callers that want more than
	// the rendered message (nil for most directives).
	Objects []object.Object
}

// handler processes one directive's arguments.
type handler func(args []object.Object) Outcome

// Engine is a proof session. It is not safe for concurrent use; callers
// running sessions in parallel must use one Engine each.
type Engine struct {
	logger     zerolog.Logger
	handlers   map[string]handler
	aliases    map[string]object.Object
	axioms     []object.Object
	goal       *goalState
	ruleSymbol string
	maxSteps   int
	unifyCtx   bool

	// Import bookkeeping (Using directive).
	basePath  string
	imported  map[string]bool
	importing []string
}

// New creates an engine with no logging and default limits.
func New() *Engine {
	e := &Engine{
		logger:     zerolog.Nop(),
		aliases:    make(map[string]object.Object),
		ruleSymbol: DefaultRuleSymbol,
		maxSteps:   rewrite.DefaultMaxSteps,
		basePath:   ".",
		imported:   make(map[string]bool),
	}
	e.handlers = map[string]handler{
		"Define": e.handleDefine,
		"Axiom":  e.handleAxiom,
		"Reduce": e.handleReduce,
		"Check":  e.handleCheck,
		"Goal":   e.handleGoal,
		"Intro":  e.handleIntro,
		"By":     e.handleBy,
		"Done":   e.handleDone,
		"Status": e.handleStatus,
		"Using":  e.handleUsing,
	}
	return e
}

// WithLogger sets the session logger.
func (e *Engine) WithLogger(logger zerolog.Logger) *Engine {
	e.logger = logger
	return e
}

// WithMaxSteps bounds every normalization the session runs.
func (e *Engine) WithMaxSteps(max int) *Engine {
	e.maxSteps = max
	return e
}

// WithRuleSymbol sets the default rule system for buildability checks.
func (e *Engine) WithRuleSymbol(symbol string) *Engine {
	e.ruleSymbol = symbol
	return e
}

// WithUnifyMatching makes buildability checks match context entries by
// unification instead of structural equality.
func (e *Engine) WithUnifyMatching() *Engine {
	e.unifyCtx = true
	return e
}

// WithBasePath sets the directory against which Using resolves imports.
func (e *Engine) WithBasePath(path string) *Engine {
	e.basePath = path
	return e
}

// Process parses and executes one directive line. Empty lines and
// comments succeed with an empty message. Failures (parse errors,
// rejected proof steps, unknown directives) are reported in the Outcome,
// not as Go errors: a failed proof attempt is an expected result.
func (e *Engine) Process(line string) Outcome {
	directive, args, err := parser.ParseLine(line)
	if err != nil {
		e.logger.Debug().Str("line", line).Err(err).Msg("parse failed")
		return Outcome{OK: false, Message: err.Error()}
	}
	if directive == "" {
		return Outcome{OK: true}
	}

	h, ok := e.handlers[directive]
	if !ok {
		e.logger.Debug().Str("directive", directive).Msg("no handler")
		return Outcome{Directive: directive, OK: false,
			Message: fmt.Sprintf("no handler registered for directive: %s", directive)}
	}

	// Hooks run before the handler: numeral sugar, then aliases. Define
	// binds its name literally, so aliases are not expanded for it.
	args = hookNumerals(args)
	if directive != "Define" {
		args = e.hookAliases(args)
	}

	outcome := h(args)
	outcome.Directive = directive
	e.logger.Debug().
		Str("directive", directive).
		Bool("ok", outcome.OK).
		Str("message", outcome.Message).
		Msg("processed")
	return outcome
}

// display renders an object for user-facing messages, folding Peano
// chains back into numerals.
func display(o object.Object) string {
	return unhookNumerals(o).String()
}

func (e *Engine) handleDefine(args []object.Object) Outcome {
	if len(args) != 2 {
		return Outcome{OK: false, Message: "Define needs a name and an object"}
	}
	name, ok := args[0].(*object.Term)
	if !ok || len(name.Children) != 0 {
		return Outcome{OK: false, Message: "Name must be a simple term with no arguments"}
	}
	e.aliases[name.Name] = args[1]
	return Outcome{OK: true, Message: name.Name + " defined"}
}

func (e *Engine) handleAxiom(args []object.Object) Outcome {
	if len(args) != 1 {
		return Outcome{OK: false, Message: "Axiom needs exactly one object"}
	}
	e.axioms = append(e.axioms, args[0])
	return Outcome{OK: true, Message: "Axiom added: " + display(args[0])}
}

func (e *Engine) handleReduce(args []object.Object) Outcome {
	if len(args) != 1 {
		return Outcome{OK: false, Message: "Reduce needs exactly one object"}
	}
	reduced, err := rewrite.Normalize(args[0], e.maxSteps)
	if err != nil {
		return Outcome{OK: false, Message: err.Error()}
	}
	return Outcome{OK: true, Message: display(reduced), Objects: []object.Object{reduced}}
}

func (e *Engine) handleCheck(args []object.Object) Outcome {
	if len(args) != 1 {
		return Outcome{OK: false, Message: "Check needs exactly one object"}
	}
	o := args[0]
	symbol := e.ruleSymbol
	if r, ok := o.(*object.Rewrite); ok {
		symbol = r.Symbol
	}
	checker := buildability.NewChecker(e.axioms, symbol)
	if e.unifyCtx {
		checker = checker.WithUnifyMatching()
	}
	result := checker.Check(o)
	if !result.Buildable {
		return Outcome{OK: false,
			Message: display(result.Culprit) + " is not buildable",
			Objects: []object.Object{result.Culprit}}
	}
	return Outcome{OK: true, Message: display(o) + " is buildable"}
}
