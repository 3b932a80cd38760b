package core

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-drift/almost/pkg/errors"
)

// NodeKind selects the host primitive a Node is materialized as.
type NodeKind int

const (
	// KindBox is a generic block container.
	KindBox NodeKind = iota
	// KindText is an inline leaf holding literal text.
	KindText
)

// String returns a human-readable representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k NodeKind) MarshalText() ([]byte, error) {
	switch k {
	case KindBox, KindText:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown node kind %d", int(k))
}

// UnmarshalText decodes a kind name.
func (k *NodeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "box":
		*k = KindBox
	case "text":
		*k = KindText
	default:
		return fmt.Errorf("unknown node kind %q", text)
	}
	return nil
}

// Styles maps CSS property names to values.
type Styles map[string]string

// Keys returns the property names in sorted order.
func (s Styles) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Node is the description of a single renderable primitive.
//
// A Node has at most one of Child and Children. A text leaf has neither and
// carries its content in Text.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Child    *Node    `json:"child,omitempty"`
	Children []*Node  `json:"children,omitempty"`
	Text     string   `json:"text,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Styles   Styles   `json:"styles,omitempty"`
}

// Validate checks the shape invariants of n itself. Descendants are not
// visited.
func (n *Node) Validate() error {
	if n == nil {
		return &errors.ResolveError{Op: "core.Node.Validate", Err: errors.ErrInvalidNode}
	}
	switch n.Kind {
	case KindBox:
		if n.Child != nil && len(n.Children) > 0 {
			return invalidNode("box has both a child and children")
		}
		if n.Text != "" {
			return invalidNode("box carries text")
		}
	case KindText:
		if n.Child != nil || len(n.Children) > 0 {
			return invalidNode("text leaf has child nodes")
		}
	default:
		return &errors.ResolveError{
			Op:  "core.Node.Validate",
			Err: fmt.Errorf("%w: %v", errors.ErrUnknownKind, n.Kind),
		}
	}
	return nil
}

func invalidNode(reason string) error {
	return &errors.ResolveError{
		Op:  "core.Node.Validate",
		Err: fmt.Errorf("%w: %s", errors.ErrInvalidNode, reason),
	}
}

// ChildNodes returns the node's children in order, whichever form holds them.
func (n *Node) ChildNodes() []*Node {
	if n == nil {
		return nil
	}
	if n.Child != nil {
		return []*Node{n.Child}
	}
	return n.Children
}

// CountNodes returns the number of nodes in the tree rooted at n.
func CountNodes(n *Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.ChildNodes() {
		count += CountNodes(child)
	}
	return count
}
