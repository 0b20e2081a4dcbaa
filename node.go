package formfield

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Node is one value of decoded form data: a [Scalar], a [List] or a *[Map].
type Node interface {
	node()
}

// Scalar is a single submitted value.
type Scalar string

// List is an ordered sequence of values, indexed from zero.
type List []Node

// Map associates string keys with values, keeping the order in which keys
// were first set.
type Map struct {
	keys   []string
	values map[string]Node

	// One past the largest integer key ever set; the key an empty bracket
	// appends at.
	next int
}

func (Scalar) node() {}
func (List) node()   {}
func (*Map) node()   {}

// NewMap returns an empty [Map].
func NewMap() *Map {
	return &Map{values: make(map[string]Node)}
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	n, ok := m.values[key]
	return n, ok
}

// Set stores n under key. Overwriting a key keeps its original position.
// Setting a nil node removes the key.
func (m *Map) Set(key string, n Node) {
	if n == nil {
		m.Delete(key)
		return
	}
	if m.values == nil {
		m.values = make(map[string]Node)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
		if i, ok := parseIndex(key); ok && i >= m.next {
			m.next = i + 1
		}
	}
	m.values[key] = n
}

// Delete removes key from the map.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// child returns the node addressed by key. Lists are addressed by canonical
// decimal index.
func child(n Node, key string) (Node, bool) {
	switch v := n.(type) {
	case *Map:
		return v.Get(key)
	case List:
		i, ok := parseIndex(key)
		if !ok {
			return nil, false
		}
		return element(v, i)
	}
	return nil, false
}

// parseIndex reports the list index a key denotes. Only canonical decimal
// forms ("0", "12", not "01" or "+1") are indices.
func parseIndex(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

// element returns the node at position i of a list, or under the key "i" of a
// map.
func element(n Node, i int) (Node, bool) {
	switch v := n.(type) {
	case List:
		if i >= len(v) || v[i] == nil {
			return nil, false
		}
		return v[i], true
	case *Map:
		return v.Get(strconv.Itoa(i))
	}
	return nil, false
}

// DecodeYAML reads a YAML or JSON document whose top level is a mapping.
func DecodeYAML(r io.Reader) (*Map, error) {
	m := NewMap()
	if err := yaml.NewDecoder(r).Decode(m); err != nil {
		if err == io.EOF {
			return m, nil
		}
		return nil, fmt.Errorf("form: invalid input document: %w", err)
	}
	return m, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Null values are left out.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	n, err := fromYAML(value, 0)
	if err != nil {
		return err
	}

	decoded, ok := n.(*Map)
	if !ok {
		return fmt.Errorf("form: top-level value must be a mapping")
	}
	*m = *decoded
	return nil
}

// MarshalYAML implements [yaml.Marshaler], keeping key order.
func (m *Map) MarshalYAML() (interface{}, error) {
	return toYAML(m), nil
}

func fromYAML(n *yaml.Node, depth int) (Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("form: input nested too deeply")
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewMap(), nil
		}
		return fromYAML(n.Content[0], depth)
	case yaml.AliasNode:
		return nil, fmt.Errorf("form: YAML aliases are not supported")
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return Scalar(n.Value), nil
	case yaml.SequenceNode:
		l := make(List, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c, depth+1)
			if err != nil {
				return nil, err
			}
			// A null element keeps its position but holds no value.
			l = append(l, v)
		}
		return l, nil
	case yaml.MappingNode:
		m := NewMap()
		// Content is [key1, value1, key2, value2, ...].
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(n.Content[i].Value, v)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("form: unsupported YAML node kind %v", n.Kind)
	}
}

func toYAML(n Node) *yaml.Node {
	switch v := n.(type) {
	case Scalar:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case List:
		out := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range v {
			out.Content = append(out.Content, toYAML(e))
		}
		return out
	case *Map:
		out := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range v.keys {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toYAML(v.values[k]),
			)
		}
		return out
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
