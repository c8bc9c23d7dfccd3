package engine

import (
	"strconv"

	"github.com/endive-xyz/go-endive/object"
)

// hookNumerals replaces nullary terms with decimal names by their Peano
// encoding, recursively, in every argument. "3" becomes S(S(S(zero))).
func hookNumerals(args []object.Object) []object.Object {
	out := make([]object.Object, len(args))
	for i, arg := range args {
		out[i] = numeralsToPeano(arg)
	}
	return out
}

func numeralsToPeano(o object.Object) object.Object {
	switch v := o.(type) {
	case *object.Term:
		if len(v.Children) == 0 {
			if isNumeral(v.Name) {
				n, _ := object.ExtractInteger(v)
				return object.PeanoTerm(n)
			}
			return v
		}
		children := make([]object.Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = numeralsToPeano(child)
		}
		return object.NewTerm(v.Name, children...)
	case *object.Rewrite:
		return object.NewRewrite(v.Symbol, numeralsToPeano(v.Pattern), numeralsToPeano(v.Result))
	case *object.Composition:
		return object.NewComposition(numeralsToPeano(v.Left), numeralsToPeano(v.Right))
	}
	return o
}

func isNumeral(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// unhookNumerals folds complete Peano chains S(...S(zero)) back into
// numeral terms for display.
func unhookNumerals(o object.Object) object.Object {
	switch v := o.(type) {
	case *object.Term:
		if v.Name == "zero" && len(v.Children) == 0 {
			return object.NewTerm("0")
		}
		if v.Name == "S" && len(v.Children) == 1 {
			if n, ok := object.ExtractInteger(v); ok {
				return object.NewTerm(strconv.Itoa(n))
			}
		}
		children := make([]object.Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = unhookNumerals(child)
		}
		return object.NewTerm(v.Name, children...)
	case *object.Rewrite:
		return object.NewRewrite(v.Symbol, unhookNumerals(v.Pattern), unhookNumerals(v.Result))
	case *object.Composition:
		return object.NewComposition(unhookNumerals(v.Left), unhookNumerals(v.Right))
	}
	return o
}

// hookAliases expands aliased names in every argument. An alias applies
// to nullary terms whose name was bound by Define.
func (e *Engine) hookAliases(args []object.Object) []object.Object {
	if len(e.aliases) == 0 {
		return args
	}
	out := make([]object.Object, len(args))
	for i, arg := range args {
		out[i] = e.applyAliases(arg)
	}
	return out
}

func (e *Engine) applyAliases(o object.Object) object.Object {
	switch v := o.(type) {
	case *object.Term:
		if len(v.Children) == 0 {
			if bound, ok := e.aliases[v.Name]; ok {
				return bound
			}
			return v
		}
		children := make([]object.Object, len(v.Children))
		for i, child := range v.Children {
			children[i] = e.applyAliases(child)
		}
		return object.NewTerm(v.Name, children...)
	case *object.Rewrite:
		return object.NewRewrite(v.Symbol, e.applyAliases(v.Pattern), e.applyAliases(v.Result))
	case *object.Composition:
		return object.NewComposition(e.applyAliases(v.Left), e.applyAliases(v.Right))
	}
	return o
}
