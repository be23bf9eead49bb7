package translate

import (
	"bytes"
	"encoding/json"
)

// Ref is a JSON-LD reference object pointing at another node by IRI.
// The referenced IRI is not required to resolve to a node in the same
// graph.
type Ref struct {
	ID string `json:"@id"`
}

// Node is one translated JSON-LD object: an @id, an @type, and
// namespaced properties held in insertion order. Property order is
// what makes repeated translations of the same input byte-identical;
// a plain map would re-sort keys on marshal.
type Node struct {
	id    string
	typ   string
	keys  []string
	props map[string]any
}

// NewNode creates a node with the given @id and @type.
func NewNode(id, typ string) *Node {
	return &Node{id: id, typ: typ, props: make(map[string]any)}
}

// ID returns the node's @id.
func (n *Node) ID() string { return n.id }

// Type returns the node's @type.
func (n *Node) Type() string { return n.typ }

// Set stores a property value. Re-setting an existing key overwrites
// it without changing its position.
func (n *Node) Set(key string, value any) {
	if _, ok := n.props[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.props[key] = value
}

// Get returns a property value.
func (n *Node) Get(key string) (any, bool) {
	value, ok := n.props[key]
	return value, ok
}

// Len returns the number of properties, excluding @id and @type.
func (n *Node) Len() int { return len(n.keys) }

// Merge folds value into key: an absent key is set, an existing
// scalar is promoted to a two-element list, an existing list is
// appended to.
func (n *Node) Merge(key string, value any) {
	existing, ok := n.props[key]
	if !ok {
		n.Set(key, value)
		return
	}
	list, isList := existing.([]any)
	if !isList {
		list = []any{existing}
	}
	n.props[key] = append(list, value)
}

// MarshalJSON emits @id first, @type second, then properties in
// insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"@id":`)
	if err := writeJSONValue(&buf, n.id); err != nil {
		return nil, err
	}
	buf.WriteString(`,"@type":`)
	if err := writeJSONValue(&buf, n.typ); err != nil {
		return nil, err
	}
	for _, key := range n.keys {
		buf.WriteByte(',')
		if err := writeJSONValue(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, n.props[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
