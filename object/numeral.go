package object

import "strconv"

// ExtractInteger recognizes integer-valued terms: either a nullary term
// whose name is a decimal numeral, or a Peano chain S(S(...(zero)...)).
// Returns the value and true on recognition.
func ExtractInteger(o Object) (int, bool) {
	t, ok := o.(*Term)
	if !ok {
		return 0, false
	}
	if len(t.Children) == 0 {
		if n, err := strconv.Atoi(t.Name); err == nil {
			return n, true
		}
		if t.Name == "zero" {
			return 0, true
		}
		return 0, false
	}
	if t.Name == "S" && len(t.Children) == 1 {
		inner, ok := ExtractInteger(t.Children[0])
		if ok {
			return inner + 1, true
		}
	}
	return 0, false
}

// PeanoTerm builds the Peano encoding of n: zero wrapped in n successor
// applications S(...).
func PeanoTerm(n int) Object {
	result := Object(NewTerm("zero"))
	for i := 0; i < n; i++ {
		result = NewTerm("S", result)
	}
	return result
}
