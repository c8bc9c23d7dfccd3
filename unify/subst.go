// Package unify implements syntactic unification over the term algebra
// and the substitutions it produces.
package unify

import (
	"strings"

	"github.com/endive-xyz/go-endive/object"
)

// Binding maps one hole name to the object it stands for.
type Binding struct {
	Name  string
	Value object.Object
}

// Substitution is an ordered mapping from hole names to objects. Order is
// the order bindings were discovered by the unifier, most recent first.
// Each name is bound at most once.
type Substitution struct {
	bindings []Binding
	byName   map[string]object.Object
}

// NewSubstitution creates an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{byName: make(map[string]object.Object)}
}

// Len returns the number of bindings.
func (s *Substitution) Len() int { return len(s.bindings) }

// Bindings returns the bindings, most recently discovered first.
func (s *Substitution) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Lookup returns the object bound to name, if any.
func (s *Substitution) Lookup(name string) (object.Object, bool) {
	value, ok := s.byName[name]
	return value, ok
}

// prepend inserts a new binding at the front of the substitution.
func (s *Substitution) prepend(name string, value object.Object) {
	s.bindings = append([]Binding{{Name: name, Value: value}}, s.bindings...)
	s.byName[name] = value
}

// Apply replaces every hole of o bound by s with its bound object. Bound
// objects are inserted as-is: the unifier already propagated bindings
// transitively while it ran, so a single pass suffices on its final map.
// Unbound holes pass through unchanged.
func (s *Substitution) Apply(o object.Object) object.Object {
	if s == nil || len(s.bindings) == 0 {
		return o
	}
	switch v := o.(type) {
	case *object.Hole:
		if value, ok := s.Lookup(v.Name); ok {
			return value
		}
		return v
	case *object.Term:
		children := make([]object.Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = s.Apply(child)
		}
		return object.NewTerm(v.Name, children...)
	case *object.Rewrite:
		return object.NewRewrite(v.Symbol, s.Apply(v.Pattern), s.Apply(v.Result))
	case *object.Composition:
		return object.NewComposition(s.Apply(v.Left), s.Apply(v.Right))
	}
	return o
}

// String renders the substitution as "{name -> value, ...}".
func (s *Substitution) String() string {
	parts := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		parts[i] = b.Name + " -> " + b.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
