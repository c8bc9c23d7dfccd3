package rewrite

import (
	"fmt"

	"github.com/endive-xyz/go-endive/object"
)

// DefaultMaxSteps bounds Normalize when callers have no tighter budget.
const DefaultMaxSteps = 100

// Reduce performs one bottom-up normalization pass over o. Children are
// reduced first; a composition node whose reduced halves compose is
// replaced by the composed object, otherwise it is kept as-is.
//
// One pass is not guaranteed to reach a normal form: substituting a bound
// sub-composition into a new position can create further reducible
// compositions. Use Normalize to iterate to a fixpoint.
func Reduce(o object.Object) object.Object {
	switch v := o.(type) {
	case *object.Hole:
		return v
	case *object.Term:
		children := make([]object.Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = Reduce(child)
		}
		return object.NewTerm(v.Name, children...)
	case *object.Rewrite:
		return object.NewRewrite(v.Symbol, Reduce(v.Pattern), Reduce(v.Result))
	case *object.Composition:
		left := Reduce(v.Left)
		right := Reduce(v.Right)
		composed, err := Compose(left, right)
		if err != nil {
			return object.NewComposition(left, right)
		}
		return composed
	}
	return o
}

// Normalize repeatedly applies Reduce until the result is structurally
// equal to the previous iteration, or maxSteps passes have run. The
// rewrite relation offers no termination guarantee beyond this bound;
// ErrStepLimit reports an unfinished reduction.
func Normalize(o object.Object, maxSteps int) (object.Object, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	current := o
	for i := 0; i < maxSteps; i++ {
		reduced := Reduce(current)
		if object.Equal(reduced, current) {
			return current, nil
		}
		current = reduced
	}
	return current, fmt.Errorf("%w after %d steps on %s", ErrStepLimit, maxSteps, current)
}
