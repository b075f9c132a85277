package d3tree

import (
	"encoding/json"

	"github.com/horiring/d3Network/pkg/errors"
	"github.com/horiring/d3Network/pkg/tree"
)

// Serialize encodes a tree value as compact JSON for the client-side script.
//
// Accepted roots are *tree.Node, tree.Node, and map[string]any for
// loosely-typed callers. Anything else (a scalar, a slice, or an already
// serialized string) fails with [errors.ErrCodeInvalidInput]. The function
// is pure: the same input yields byte-identical output on every call, and
// child order is preserved exactly as given.
func Serialize(v any) ([]byte, error) {
	root, err := containerRoot(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "encode tree")
	}
	return data, nil
}

// SerializeAssignment wraps the serialized tree in the variable assignment
// the script suffix expects, suitable for embedding verbatim in the
// document's script block.
func SerializeAssignment(v any) (string, error) {
	data, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return "var root = " + string(data) + " ;", nil
}

// ValidateRoot reports whether v is an acceptable tree root without
// serializing it. It applies the same container check as [Serialize].
func ValidateRoot(v any) error {
	_, err := containerRoot(v)
	return err
}

// containerRoot narrows v to a serializable container. Only the root-level
// type is checked; shape below the root belongs to the rendering library.
func containerRoot(v any) (any, error) {
	switch t := v.(type) {
	case *tree.Node:
		if t == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "tree root is nil")
		}
		return t, nil
	case tree.Node:
		return &t, nil
	case map[string]any:
		return t, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "tree root must be a container, got %T", v)
	}
}
