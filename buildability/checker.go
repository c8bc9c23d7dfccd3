// Package buildability decides whether an object is derivable from a
// context of axioms under a fixed rule symbol. The check is a
// natural-deduction-style search over the shape of the object: axioms
// match the context, compositions need both halves derivable, and a
// rewrite under the active symbol may assume its pattern while deriving
// its result.
package buildability

import (
	"github.com/endive-xyz/go-endive/object"
	"github.com/endive-xyz/go-endive/unify"
)

// Checker decides buildability against a fixed context and rule symbol.
type Checker struct {
	context    []object.Object
	ruleSymbol string
	unifyMatch bool
	maxDepth   int
}

// NewChecker creates a checker for the given axiom context and rule
// symbol. The context is copied; later mutations of the argument do not
// affect the checker.
func NewChecker(context []object.Object, ruleSymbol string) *Checker {
	ctx := make([]object.Object, len(context))
	copy(ctx, context)
	return &Checker{
		context:    ctx,
		ruleSymbol: ruleSymbol,
		maxDepth:   1000,
	}
}

// WithUnifyMatching makes the axiom case match context entries by
// unification instead of structural equality. Equality is the default:
// "already in context" reads as identity, but unification can be more
// ergonomic for schematic axioms.
func (c *Checker) WithUnifyMatching() *Checker {
	c.unifyMatch = true
	return c
}

// WithMaxDepth bounds the recursion depth of the search.
func (c *Checker) WithMaxDepth(max int) *Checker {
	c.maxDepth = max
	return c
}

// Result reports the outcome of a buildability check.
type Result struct {
	Buildable bool
	// Culprit is the first non-buildable subterm found, left to right;
	// nil when Buildable.
	Culprit object.Object
	// Depth is the deepest rewrite nesting entered during the search.
	Depth int
}

// Check decides whether o is buildable. A failed check is an expected
// outcome (a rejected proof attempt), not an error; the culprit names
// the subterm that could not be derived.
func (c *Checker) Check(o object.Object) *Result {
	result := &Result{Buildable: true}
	if culprit := c.check(c.context, o, 0, result); culprit != nil {
		result.Buildable = false
		result.Culprit = culprit
	}
	return result
}

// check returns the first non-buildable subterm, or nil. Context growth
// from entering a rewrite body is local to that branch: each extension
// builds a fresh slice, so it never leaks into the sibling of a
// composition.
func (c *Checker) check(context []object.Object, o object.Object, depth int, result *Result) object.Object {
	if depth > result.Depth {
		result.Depth = depth
	}
	if depth > c.maxDepth {
		return o
	}

	if c.inContext(context, o) {
		return nil
	}

	switch v := o.(type) {
	case *object.Composition:
		if culprit := c.check(context, v.Left, depth, result); culprit != nil {
			return culprit
		}
		return c.check(context, v.Right, depth, result)
	case *object.Rewrite:
		if v.Symbol != c.ruleSymbol {
			return o
		}
		extended := make([]object.Object, 0, len(context)+1)
		extended = append(extended, v.Pattern)
		extended = append(extended, context...)
		return c.check(extended, v.Result, depth+1, result)
	}
	return o
}

// inContext reports whether o matches a context entry, by structural
// equality or, when enabled, by unification.
func (c *Checker) inContext(context []object.Object, o object.Object) bool {
	for _, axiom := range context {
		if object.Equal(o, axiom) {
			return true
		}
		if c.unifyMatch {
			if _, err := unify.Unify(o, object.AlphaConvert(o, axiom)); err == nil {
				return true
			}
		}
	}
	return false
}

// Check is a convenience wrapper: it returns nil when o is buildable
// from context under ruleSymbol, and the culprit subterm otherwise.
func Check(context []object.Object, ruleSymbol string, o object.Object) object.Object {
	return NewChecker(context, ruleSymbol).Check(o).Culprit
}
