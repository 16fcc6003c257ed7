// Package orbrowser fetches the OpenRouter model catalog and provides
// search and display primitives over it.
package orbrowser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is one entry from the model catalog: an open-ended mapping of
// field names to heterogeneous values. The upstream payload's field
// order is preserved so the detailed view can re-emit fields exactly as
// the API sent them. Accessors return zero values for missing or
// mistyped fields, they never fail.
type Record struct {
	keys  []string
	nodes map[string]*yaml.Node
}

// UnmarshalYAML decodes a mapping node while keeping key order. The API
// responds with JSON, which is valid YAML, so records decode through
// yaml.v3 to get ordered mapping nodes.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("record: expected mapping, got %s", nodeKind(value.Kind))
	}
	r.keys = make([]string, 0, len(value.Content)/2)
	r.nodes = make(map[string]*yaml.Node, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		if _, dup := r.nodes[key]; !dup {
			r.keys = append(r.keys, key)
		}
		r.nodes[key] = value.Content[i+1]
	}
	return nil
}

// MarshalYAML re-emits the record as a mapping in original field order.
// Inline styles are cleared so JSON-flow input comes back out as block
// YAML.
func (r Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range r.keys {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			blockStyle(r.nodes[key]))
	}
	return n, nil
}

func blockStyle(n *yaml.Node) *yaml.Node {
	c := *n
	c.Style = 0
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = blockStyle(child)
		}
	}
	return &c
}

// Keys returns the field names in original order.
func (r Record) Keys() []string { return r.keys }

// Len returns the number of fields.
func (r Record) Len() int { return len(r.keys) }

// Has reports whether the field exists, even with a null value.
func (r Record) Has(key string) bool {
	_, ok := r.nodes[key]
	return ok
}

// Str returns the field as a string, or "" when it is missing, null, or
// not a scalar.
func (r Record) Str(key string) string {
	node, ok := r.nodes[key]
	if !ok || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return ""
	}
	return s
}

// Int returns the field as an integer and whether it was present and
// numeric.
func (r Record) Int(key string) (int64, bool) {
	node, ok := r.nodes[key]
	if !ok || node.Kind != yaml.ScalarNode {
		return 0, false
	}
	var i int64
	if err := node.Decode(&i); err != nil {
		return 0, false
	}
	return i, true
}

// Sub returns a nested mapping field as a Record. Missing or non-mapping
// fields yield an empty Record, so chained lookups stay total.
func (r Record) Sub(key string) Record {
	node, ok := r.nodes[key]
	if !ok || node.Kind != yaml.MappingNode {
		return Record{}
	}
	var sub Record
	if err := sub.UnmarshalYAML(node); err != nil {
		return Record{}
	}
	return sub
}

// Get returns the field decoded into a generic value. Null fields are
// present with a nil value.
func (r Record) Get(key string) (any, bool) {
	node, ok := r.nodes[key]
	if !ok {
		return nil, false
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// Without returns a copy of the record with the named fields removed.
// The receiver is left untouched.
func (r Record) Without(keys ...string) Record {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	out := Record{nodes: make(map[string]*yaml.Node, len(r.keys))}
	for _, k := range r.keys {
		if drop[k] {
			continue
		}
		out.keys = append(out.keys, k)
		out.nodes[k] = r.nodes[k]
	}
	return out
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
