package object

// RenameHoles returns a copy of o in which every hole whose name appears
// in renames carries the mapped name instead. Subtrees without renamed
// holes are shared, not copied.
func RenameHoles(o Object, renames map[string]string) Object {
	if len(renames) == 0 {
		return o
	}
	switch v := o.(type) {
	case *Hole:
		if newName, ok := renames[v.Name]; ok && newName != v.Name {
			return NewHole(newName)
		}
		return v
	case *Term:
		children := make([]Object, len(v.Children))
		changed := false
		for i, child := range v.Children {
			children[i] = RenameHoles(child, renames)
			if children[i] != child {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return NewTerm(v.Name, children...)
	case *Rewrite:
		pattern := RenameHoles(v.Pattern, renames)
		result := RenameHoles(v.Result, renames)
		if pattern == v.Pattern && result == v.Result {
			return v
		}
		return NewRewrite(v.Symbol, pattern, result)
	case *Composition:
		left := RenameHoles(v.Left, renames)
		right := RenameHoles(v.Right, renames)
		if left == v.Left && right == v.Right {
			return v
		}
		return NewComposition(left, right)
	}
	return o
}

// AlphaConvert returns a copy of o in which every hole colliding with a
// hole of model is renamed by appending prime suffixes until the new name
// no longer collides with model's holes. Renaming is consistent: all
// occurrences of one name in o map to the same new name.
//
// Collisions are checked against model only, not against o's own other
// holes; two renamed holes inside o can still coincide with each other.
func AlphaConvert(model, o Object) Object {
	modelHoles := make(map[string]bool)
	for _, name := range Holes(model) {
		modelHoles[name] = true
	}
	if len(modelHoles) == 0 {
		return o
	}

	renames := make(map[string]string)
	for _, name := range Holes(o) {
		if !modelHoles[name] {
			continue
		}
		if _, done := renames[name]; done {
			continue
		}
		newName := name + "'"
		for modelHoles[newName] {
			newName += "'"
		}
		renames[name] = newName
	}
	if len(renames) == 0 {
		return o
	}
	return RenameHoles(o, renames)
}
