package core

import "github.com/go-drift/almost/pkg/graphics"

// Widget describes part of the UI. Build returns the next widget in the
// expansion chain, or nil for a terminal widget whose Node is already bound.
//
// Build must not mutate the receiver and must not have side effects beyond
// constructing its result.
type Widget interface {
	Build() Widget
}

// Bound is implemented by terminal widgets that carry a resolved Node.
type Bound interface {
	Widget
	Node() *Node
}

// PreferredSizeWidget is a widget that reports the size it would like to
// occupy before it is resolved. PreferredSize must be cheap and constant for
// a given widget value.
type PreferredSizeWidget interface {
	Widget
	PreferredSize() graphics.Size
}

// BuildFunc adapts a function into a composite widget.
type BuildFunc func() Widget

// Build calls f.
func (f BuildFunc) Build() Widget {
	return f()
}
