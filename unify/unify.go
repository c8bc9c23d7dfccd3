package unify

import (
	"errors"
	"fmt"

	"github.com/endive-xyz/go-endive/object"
)

// Error types for the unify package.
var (
	// ErrUnification is returned when two objects have no common instance.
	ErrUnification = errors.New("cannot unify")

	// ErrOccursCheck is returned when a hole would be bound to an object
	// containing that hole, which has no finite solution.
	ErrOccursCheck = errors.New("occurs check failed")

	// ErrArityMismatch is returned when two terms share a name but differ
	// in child count.
	ErrArityMismatch = errors.New("arity mismatch")
)

// Error is a unification failure naming the two offending subterms.
type Error struct {
	Left  object.Object
	Right object.Object
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s and %s", e.cause, e.Left, e.Right)
}

func (e *Error) Unwrap() error { return e.cause }

func fail(cause error, left, right object.Object) error {
	return &Error{Left: left, Right: right, cause: cause}
}

// equation is one pending pair of objects to be made equal.
type equation struct {
	left  object.Object
	right object.Object
}

// Unify computes a most-general substitution making a and b structurally
// equal, or fails with an error naming the two non-unifiable subterms.
//
// It runs a worklist of pending equations. Binding a hole prepends the
// binding to the substitution and applies it to every remaining equation,
// so the final substitution needs only a single application pass. The
// occurs check rejects the one source of infinite substitutions, so the
// loop terminates for finite inputs.
func Unify(a, b object.Object) (*Substitution, error) {
	subst := NewSubstitution()
	pending := []equation{{a, b}}

	for len(pending) > 0 {
		eq := pending[0]
		pending = pending[1:]
		x, y := eq.left, eq.right

		if object.Equal(x, y) {
			continue
		}

		if hole, ok := x.(*object.Hole); ok {
			if object.HasHole(y, hole.Name) {
				return nil, fail(ErrOccursCheck, x, y)
			}
			bind(subst, pending, hole.Name, y)
			continue
		}
		if hole, ok := y.(*object.Hole); ok {
			if object.HasHole(x, hole.Name) {
				return nil, fail(ErrOccursCheck, y, x)
			}
			bind(subst, pending, hole.Name, x)
			continue
		}

		switch xv := x.(type) {
		case *object.Term:
			yv, ok := y.(*object.Term)
			if !ok || xv.Name != yv.Name {
				return nil, fail(ErrUnification, x, y)
			}
			if len(xv.Children) != len(yv.Children) {
				return nil, fail(ErrArityMismatch, x, y)
			}
			for i := range xv.Children {
				pending = append(pending, equation{xv.Children[i], yv.Children[i]})
			}
		case *object.Rewrite:
			yv, ok := y.(*object.Rewrite)
			if !ok || xv.Symbol != yv.Symbol {
				return nil, fail(ErrUnification, x, y)
			}
			pending = append(pending, equation{xv.Pattern, yv.Pattern})
			pending = append(pending, equation{xv.Result, yv.Result})
		case *object.Composition:
			yv, ok := y.(*object.Composition)
			if !ok {
				return nil, fail(ErrUnification, x, y)
			}
			pending = append(pending, equation{xv.Left, yv.Left})
			pending = append(pending, equation{xv.Right, yv.Right})
		default:
			return nil, fail(ErrUnification, x, y)
		}
	}

	return subst, nil
}

// bind records name -> value and propagates the new binding through every
// pending equation, keeping the substitution idempotent.
func bind(subst *Substitution, pending []equation, name string, value object.Object) {
	step := NewSubstitution()
	step.prepend(name, value)
	for i := range pending {
		pending[i].left = step.Apply(pending[i].left)
		pending[i].right = step.Apply(pending[i].right)
	}
	for i, b := range subst.bindings {
		updated := step.Apply(b.Value)
		subst.bindings[i].Value = updated
		subst.byName[b.Name] = updated
	}
	subst.prepend(name, value)
}
