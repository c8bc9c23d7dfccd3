package unify

import (
	"errors"
	"testing"

	"github.com/endive-xyz/go-endive/object"
)

func TestUnifyIdentical(t *testing.T) {
	a := object.NewTerm("f", object.NewTerm("x"), object.NewTerm("y"))
	subst, err := Unify(a, object.Retag(a))
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	if subst.Len() != 0 {
		t.Errorf("expected empty substitution, got %s", subst)
	}
}

func TestUnifyBindsHole(t *testing.T) {
	a := object.NewHole("a")
	b := object.NewTerm("f", object.NewTerm("x"))
	subst, err := Unify(a, b)
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	bound, ok := subst.Lookup("a")
	if !ok || !object.Equal(bound, b) {
		t.Errorf("expected a -> f(x), got %s", subst)
	}
}

func TestUnifySoundness(t *testing.T) {
	tests := []struct {
		name string
		a, b object.Object
	}{
		{
			"hole against term",
			object.NewTerm("f", object.NewHole("a"), object.NewTerm("y")),
			object.NewTerm("f", object.NewTerm("x"), object.NewHole("b")),
		},
		{
			"chained bindings",
			object.NewTerm("f", object.NewHole("a"), object.NewHole("b")),
			object.NewTerm("f", object.NewTerm("g", object.NewHole("b")), object.NewTerm("c")),
		},
		{
			"rewrites",
			object.NewRewrite("=>", object.NewHole("a"), object.NewTerm("f", object.NewHole("a"))),
			object.NewRewrite("=>", object.NewTerm("x"), object.NewHole("r")),
		},
		{
			"compositions",
			object.NewComposition(object.NewHole("a"), object.NewTerm("x")),
			object.NewComposition(object.NewTerm("y"), object.NewHole("b")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subst, err := Unify(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Unify failed: %v", err)
			}
			left := subst.Apply(tt.a)
			right := subst.Apply(tt.b)
			if !object.Equal(left, right) {
				t.Errorf("substitution is not a unifier: %s vs %s (map %s)", left, right, subst)
			}
		})
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	a := object.NewHole("x")
	b := object.NewTerm("f", object.NewHole("x"))
	_, err := Unify(a, b)
	if !errors.Is(err, ErrOccursCheck) {
		t.Errorf("expected ErrOccursCheck, got %v", err)
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	a := object.NewTerm("f", object.NewTerm("x"))
	b := object.NewTerm("f", object.NewTerm("x"), object.NewTerm("y"))
	_, err := Unify(a, b)
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("expected ErrArityMismatch, got %v", err)
	}
}

func TestUnifyMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b object.Object
	}{
		{"term names", object.NewTerm("f"), object.NewTerm("g")},
		{"rewrite symbols",
			object.NewRewrite("=>", object.NewTerm("A"), object.NewTerm("B")),
			object.NewRewrite("->", object.NewTerm("A"), object.NewTerm("B"))},
		{"term against rewrite",
			object.NewTerm("f"),
			object.NewRewrite("=>", object.NewTerm("A"), object.NewTerm("B"))},
		{"clashing bindings",
			object.NewTerm("f", object.NewHole("a"), object.NewHole("a")),
			object.NewTerm("f", object.NewTerm("x"), object.NewTerm("y"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unify(tt.a, tt.b); !errors.Is(err, ErrUnification) {
				t.Errorf("expected ErrUnification, got %v", err)
			}
		})
	}
}

func TestUnifyErrorNamesSubterms(t *testing.T) {
	a := object.NewTerm("f", object.NewTerm("x"))
	b := object.NewTerm("f", object.NewTerm("y"))
	_, err := Unify(a, b)
	var ue *Error
	if !errors.As(err, &ue) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ue.Left.String() != "x" || ue.Right.String() != "y" {
		t.Errorf("error names %s and %s, want x and y", ue.Left, ue.Right)
	}
}

func TestSubstitutionOrder(t *testing.T) {
	a := object.NewTerm("f", object.NewHole("a"), object.NewHole("b"))
	b := object.NewTerm("f", object.NewTerm("x"), object.NewTerm("y"))
	subst, err := Unify(a, b)
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	bindings := subst.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	// Most recent binding first.
	if bindings[0].Name != "b" || bindings[1].Name != "a" {
		t.Errorf("binding order = [%s, %s], want [b, a]", bindings[0].Name, bindings[1].Name)
	}
}

func TestApplyLeavesUnboundHoles(t *testing.T) {
	subst := NewSubstitution()
	subst.prepend("a", object.NewTerm("x"))
	o := object.NewTerm("f", object.NewHole("a"), object.NewHole("b"))
	applied := subst.Apply(o)
	want := object.NewTerm("f", object.NewTerm("x"), object.NewHole("b"))
	if !object.Equal(applied, want) {
		t.Errorf("Apply = %s, want %s", applied, want)
	}
}

func TestApplySinglePassSufficient(t *testing.T) {
	// After unification the final map must already be transitively
	// propagated: applying it once to either input yields equal objects
	// even when one binding's value mentioned a later-bound hole.
	a := object.NewTerm("pair", object.NewHole("a"), object.NewHole("b"))
	b := object.NewTerm("pair", object.NewTerm("g", object.NewHole("b")), object.NewTerm("c"))
	subst, err := Unify(a, b)
	if err != nil {
		t.Fatalf("Unify failed: %v", err)
	}
	bound, ok := subst.Lookup("a")
	if !ok {
		t.Fatal("a is unbound")
	}
	want := object.NewTerm("g", object.NewTerm("c"))
	if !object.Equal(bound, want) {
		t.Errorf("a -> %s, want %s (binding not propagated)", bound, want)
	}
}
