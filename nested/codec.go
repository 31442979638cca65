// SPDX-License-Identifier: MIT

package nested

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes v as a JSON number or array.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// UnmarshalJSON decodes a JSON number or (nested) array of numbers.
// Integers without fraction or exponent decode as ints.
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*v = out

	return nil
}

// DecodeJSON reads exactly one JSON document from r. Anything but
// whitespace after it yields ErrTrailingData or the decoder's syntax error.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, nestedErrorf("DecodeJSON", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return Value{}, nestedErrorf("DecodeJSON", err)
	}
	v, err := fromAny(raw, nil)
	if err != nil {
		return Value{}, nestedErrorf("DecodeJSON", err)
	}

	return v, nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.ToAny(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler over !!int, !!float and sequences.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := fromNode(node, nil)
	if err != nil {
		return nestedErrorf("UnmarshalYAML", err)
	}
	*v = out

	return nil
}

// DecodeYAML reads exactly one YAML document from r; a second document
// yields ErrTrailingData.
func DecodeYAML(r io.Reader) (Value, error) {
	dec := yaml.NewDecoder(r)

	var v Value
	if err := dec.Decode(&v); err != nil {
		return Value{}, nestedErrorf("DecodeYAML", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return Value{}, nestedErrorf("DecodeYAML", err)
	}

	return v, nil
}

func fromNode(n *yaml.Node, path []int) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return Value{}, fmt.Errorf("%w: empty document", ErrUnsupportedType)
		}
		return fromNode(n.Content[0], path)
	case yaml.AliasNode:
		return fromNode(n.Alias, path)
	case yaml.SequenceNode:
		items := make([]Value, len(n.Content))
		for i, c := range n.Content {
			it, err := fromNode(c, append(path, i))
			if err != nil {
				return Value{}, err
			}
			items[i] = it
		}

		return Value{kind: KindSeq, items: items}, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return Value{}, fmt.Errorf("%w: %q at %v: %v", ErrUnsupportedType, n.Value, path, err)
			}
			return Int(i), nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Value{}, fmt.Errorf("%w: %q at %v: %v", ErrUnsupportedType, n.Value, path, err)
			}
			return Float(f), nil
		}
	}

	return Value{}, fmt.Errorf("%w: yaml %s at line %d, path %v", ErrUnsupportedType, n.ShortTag(), n.Line, path)
}
