// Package object implements the term algebra of the proof kernel.
// Every logical statement is an Object tree built from four variants:
// Holes (named placeholders), Terms (named nodes with fixed arity),
// Rewrites (rules "pattern symbol result") and Compositions (unevaluated
// applications "left | right").
package object

import (
	"strings"

	"github.com/google/uuid"
)

// Object is the common interface of the four term variants.
// Object trees are immutable values: kernel operations always build new
// trees and never mutate their inputs.
type Object interface {
	// Tag returns the node's identity tag, assigned at construction.
	// Tags exist for diagnostics only; no operation compares them.
	Tag() uuid.UUID

	// String renders the object in the minimal debug syntax.
	String() string

	isObject()
}

// Hole is a named placeholder (a logic variable). Two holes denote the
// same variable iff their names are equal; holes carry no scope of their
// own.
type Hole struct {
	tag  uuid.UUID
	Name string
}

// Term is a named node with fixed arity.
type Term struct {
	tag      uuid.UUID
	Name     string
	Children []Object
}

// Rewrite is a rule "Pattern Symbol Result". The symbol distinguishes
// rule systems (e.g. "=>", "->", "=").
type Rewrite struct {
	tag     uuid.UUID
	Symbol  string
	Pattern Object
	Result  Object
}

// Composition is the unevaluated application "Left | Right".
type Composition struct {
	tag   uuid.UUID
	Left  Object
	Right Object
}

// NewHole creates a hole with the given variable name.
func NewHole(name string) *Hole {
	return &Hole{tag: uuid.New(), Name: name}
}

// NewTerm creates a term node. children may be nil for a nullary term.
func NewTerm(name string, children ...Object) *Term {
	return &Term{tag: uuid.New(), Name: name, Children: children}
}

// NewRewrite creates a rewrite rule "pattern symbol result".
func NewRewrite(symbol string, pattern, result Object) *Rewrite {
	return &Rewrite{tag: uuid.New(), Symbol: symbol, Pattern: pattern, Result: result}
}

// NewComposition creates the unevaluated application "left | right".
func NewComposition(left, right Object) *Composition {
	return &Composition{tag: uuid.New(), Left: left, Right: right}
}

// Identify returns the degenerate self-rule "o symbol o". A plain term is
// read as this rule by the composer.
func Identify(o Object, symbol string) *Rewrite {
	return NewRewrite(symbol, o, o)
}

func (h *Hole) Tag() uuid.UUID        { return h.tag }
func (t *Term) Tag() uuid.UUID        { return t.tag }
func (r *Rewrite) Tag() uuid.UUID     { return r.tag }
func (c *Composition) Tag() uuid.UUID { return c.tag }

func (h *Hole) isObject()        {}
func (t *Term) isObject()        {}
func (r *Rewrite) isObject()     {}
func (c *Composition) isObject() {}

// String renders the hole as its name.
func (h *Hole) String() string { return h.Name }

// String renders a nullary term as its name and an n-ary term as
// "name(child1, ..., childN)".
func (t *Term) String() string {
	if len(t.Children) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Children))
	for i, child := range t.Children {
		parts[i] = child.String()
	}
	return t.Name + "(" + strings.Join(parts, ", ") + ")"
}

// String renders the rule as "pattern symbol result". No parenthesization
// by precedence is performed.
func (r *Rewrite) String() string {
	return r.Pattern.String() + " " + r.Symbol + " " + r.Result.String()
}

// String renders the application as "left | right". No parenthesization
// by precedence is performed.
func (c *Composition) String() string {
	return c.Left.String() + " | " + c.Right.String()
}

// Retag returns a structural copy of o in which every node carries a
// fresh identity tag. Equal(o, Retag(o)) always holds.
func Retag(o Object) Object {
	switch v := o.(type) {
	case *Hole:
		return NewHole(v.Name)
	case *Term:
		children := make([]Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = Retag(child)
		}
		return NewTerm(v.Name, children...)
	case *Rewrite:
		return NewRewrite(v.Symbol, Retag(v.Pattern), Retag(v.Result))
	case *Composition:
		return NewComposition(Retag(v.Left), Retag(v.Right))
	}
	return o
}
