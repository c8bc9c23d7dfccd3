package parser

import (
	"encoding/json"
	"fmt"

	"github.com/endive-xyz/go-endive/object"
)

// jsonObject is the wire envelope for one object. Kind selects the
// variant and decides which of the remaining fields are meaningful.
type jsonObject struct {
	Kind     string        `json:"kind"`
	Name     string        `json:"name,omitempty"`
	Children []*jsonObject `json:"children,omitempty"`
	Symbol   string        `json:"symbol,omitempty"`
	Pattern  *jsonObject   `json:"pattern,omitempty"`
	Result   *jsonObject   `json:"result,omitempty"`
	Left     *jsonObject   `json:"left,omitempty"`
	Right    *jsonObject   `json:"right,omitempty"`
}

// ToJSON serializes an object to JSON bytes. Identity tags are not
// part of the wire format; decoding yields freshly tagged objects.
func ToJSON(o object.Object) ([]byte, error) {
	env, err := encodeObject(o)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(env, "", "  ")
}

// FromJSON parses an object from JSON bytes.
func FromJSON(data []byte) (object.Object, error) {
	var env jsonObject
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return decodeObject(&env)
}

func encodeObject(o object.Object) (*jsonObject, error) {
	switch v := o.(type) {
	case *object.Hole:
		return &jsonObject{Kind: "hole", Name: v.Name}, nil
	case *object.Term:
		env := &jsonObject{Kind: "term", Name: v.Name}
		for _, child := range v.Children {
			c, err := encodeObject(child)
			if err != nil {
				return nil, err
			}
			env.Children = append(env.Children, c)
		}
		return env, nil
	case *object.Rewrite:
		pattern, err := encodeObject(v.Pattern)
		if err != nil {
			return nil, err
		}
		result, err := encodeObject(v.Result)
		if err != nil {
			return nil, err
		}
		return &jsonObject{Kind: "rewrite", Symbol: v.Symbol, Pattern: pattern, Result: result}, nil
	case *object.Composition:
		left, err := encodeObject(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := encodeObject(v.Right)
		if err != nil {
			return nil, err
		}
		return &jsonObject{Kind: "composition", Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("unknown object variant %T", o)
}

func decodeObject(env *jsonObject) (object.Object, error) {
	if env == nil {
		return nil, fmt.Errorf("missing object")
	}
	switch env.Kind {
	case "hole":
		if env.Name == "" {
			return nil, fmt.Errorf("hole needs a name")
		}
		return object.NewHole(env.Name), nil
	case "term":
		if env.Name == "" {
			return nil, fmt.Errorf("term needs a name")
		}
		children := make([]object.Object, len(env.Children))
		for i, c := range env.Children {
			child, err := decodeObject(c)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return object.NewTerm(env.Name, children...), nil
	case "rewrite":
		if env.Symbol == "" {
			return nil, fmt.Errorf("rewrite needs a symbol")
		}
		pattern, err := decodeObject(env.Pattern)
		if err != nil {
			return nil, err
		}
		result, err := decodeObject(env.Result)
		if err != nil {
			return nil, err
		}
		return object.NewRewrite(env.Symbol, pattern, result), nil
	case "composition":
		left, err := decodeObject(env.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeObject(env.Right)
		if err != nil {
			return nil, err
		}
		return object.NewComposition(left, right), nil
	}
	return nil, fmt.Errorf("unknown object kind %q", env.Kind)
}
