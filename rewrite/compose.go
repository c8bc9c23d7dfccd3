// Package rewrite implements rule composition and term normalization.
// Composition chains two rules "A s B | B' s C" into "A s C" when B and
// B' unify; reduction applies the composer at every composition node.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/endive-xyz/go-endive/object"
	"github.com/endive-xyz/go-endive/unify"
)

// Error types for the rewrite package.
var (
	// ErrAmbiguousComposition is returned when two rewrites under
	// different rule systems are composed.
	ErrAmbiguousComposition = errors.New("ambiguous composition")

	// ErrNonReducible is returned when neither side of a composition can
	// supply a rewrite to unify against.
	ErrNonReducible = errors.New("cannot reduce non-rewrites")

	// ErrStepLimit is returned by Normalize when the step bound is
	// exhausted before a fixpoint is reached.
	ErrStepLimit = errors.New("step limit reached, reduction not finished")
)

// Compose chains left and right into a single object. Right is first
// alpha-converted against left so that no hole of one term captures a
// hole of the other.
//
// When both sides are rewrites under the same symbol, the result is the
// chained rule: left's result is unified with right's pattern and the
// substitution instantiates a new rewrite from left's pattern to right's
// result. A plain object on either side is read as its own degenerate
// self-rule and discharges to a plain object.
func Compose(left, right object.Object) (object.Object, error) {
	right = object.AlphaConvert(left, right)

	if lr, ok := left.(*object.Rewrite); ok {
		if rr, ok := right.(*object.Rewrite); ok {
			if lr.Symbol != rr.Symbol {
				return nil, fmt.Errorf("%w of %s and %s", ErrAmbiguousComposition, left, right)
			}
			subst, err := unify.Unify(lr.Result, rr.Pattern)
			if err != nil {
				return nil, err
			}
			return object.NewRewrite(lr.Symbol, subst.Apply(lr.Pattern), subst.Apply(rr.Result)), nil
		}
		// Plain value on the right: the rule discharges into its
		// instantiated pattern.
		subst, err := unify.Unify(lr.Result, right)
		if err != nil {
			return nil, err
		}
		return subst.Apply(lr.Pattern), nil
	}

	if rr, ok := right.(*object.Rewrite); ok {
		subst, err := unify.Unify(left, rr.Pattern)
		if err != nil {
			return nil, err
		}
		return subst.Apply(rr.Result), nil
	}

	return nil, fmt.Errorf("%w %s and %s", ErrNonReducible, left, right)
}
