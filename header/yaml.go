package header

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the whole header as an ordered YAML mapping.
func (v *View) MarshalYAML() (interface{}, error) {
	tree, err := v.Tree()
	if err != nil {
		return nil, err
	}
	return YAMLNode(tree)
}

// YAMLNode converts a decoded value into a yaml.Node. Records keep their
// field order; arrays of scalars are rendered in flow style.
func YAMLNode(val interface{}) (*yaml.Node, error) {
	if m, ok := val.(*Map); ok {
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for el := m.Front(); el != nil; el = el.Next() {
			child, err := YAMLNode(el.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", el.Key, err)
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: el.Key},
				child)
		}
		return n, nil
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Slice {
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if isScalarKind(rv.Type().Elem().Kind()) {
			n.Style = yaml.FlowStyle
		}
		for i := 0; i < rv.Len(); i++ {
			child, err := YAMLNode(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	}

	n := &yaml.Node{}
	if err := n.Encode(val); err != nil {
		return nil, err
	}
	return n, nil
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Slice, reflect.Ptr, reflect.Map, reflect.Interface, reflect.Struct:
		return false
	default:
		return true
	}
}
