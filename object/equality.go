package object

// Equal reports whether a and b are structurally identical. Identity tags
// are ignored. Cross-variant comparisons are always unequal, and two
// terms with the same name but different arities are unequal, never an
// error.
func Equal(a, b Object) bool {
	switch x := a.(type) {
	case *Hole:
		y, ok := b.(*Hole)
		return ok && x.Name == y.Name
	case *Term:
		y, ok := b.(*Term)
		if !ok || x.Name != y.Name || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	case *Rewrite:
		y, ok := b.(*Rewrite)
		return ok && x.Symbol == y.Symbol &&
			Equal(x.Pattern, y.Pattern) && Equal(x.Result, y.Result)
	case *Composition:
		y, ok := b.(*Composition)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Holes returns the names of all holes in o, in left-to-right order.
// Names repeat once per occurrence; callers that only need membership
// should use HasHole.
func Holes(o Object) []string {
	var names []string
	collectHoles(o, &names)
	return names
}

func collectHoles(o Object, names *[]string) {
	switch v := o.(type) {
	case *Hole:
		*names = append(*names, v.Name)
	case *Term:
		for _, child := range v.Children {
			collectHoles(child, names)
		}
	case *Rewrite:
		collectHoles(v.Pattern, names)
		collectHoles(v.Result, names)
	case *Composition:
		collectHoles(v.Left, names)
		collectHoles(v.Right, names)
	}
}

// HasHole reports whether a hole named name occurs anywhere in o.
func HasHole(o Object, name string) bool {
	switch v := o.(type) {
	case *Hole:
		return v.Name == name
	case *Term:
		for _, child := range v.Children {
			if HasHole(child, name) {
				return true
			}
		}
		return false
	case *Rewrite:
		return HasHole(v.Pattern, name) || HasHole(v.Result, name)
	case *Composition:
		return HasHole(v.Left, name) || HasHole(v.Right, name)
	}
	return false
}
