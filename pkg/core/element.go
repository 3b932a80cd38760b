package core

import (
	stderrors "errors"
	"fmt"
)

// ErrAlreadyBound is returned when binding an ElementBinding a second time.
var ErrAlreadyBound = stderrors.New("element binding already set")

// ElementBinding holds the Node a terminal widget stands for. It can be set
// once; later attempts leave the first value in place.
type ElementBinding struct {
	node *Node
}

// Bind attaches n. It fails if n is nil or a node is already attached.
func (b *ElementBinding) Bind(n *Node) error {
	if n == nil {
		return fmt.Errorf("bind: nil node")
	}
	if b.node != nil {
		return ErrAlreadyBound
	}
	b.node = n
	return nil
}

// Node returns the bound node, or nil if nothing has been bound.
func (b *ElementBinding) Node() *Node {
	if b == nil {
		return nil
	}
	return b.node
}

// IsBound reports whether a node has been attached.
func (b *ElementBinding) IsBound() bool {
	return b.Node() != nil
}

// Terminal is a widget that already owns its Node. Its Build returns nil,
// which ends resolution.
type Terminal struct {
	binding ElementBinding
}

// Bind returns a terminal widget bound to n. It panics if n is nil.
func Bind(n *Node) *Terminal {
	t := &Terminal{}
	if err := t.binding.Bind(n); err != nil {
		panic(err)
	}
	return t
}

// Build returns nil.
func (t *Terminal) Build() Widget {
	return nil
}

// Node returns the bound node.
func (t *Terminal) Node() *Node {
	if t == nil {
		return nil
	}
	return t.binding.Node()
}

// Binding exposes the terminal's element binding.
func (t *Terminal) Binding() *ElementBinding {
	return &t.binding
}
