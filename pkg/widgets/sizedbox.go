package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// SizedBox gives its child a fixed width and/or height in pixels. A zero
// dimension is left to the child.
//
// Common uses:
//
//	// Fixed-size box
//	SizedBox{Width: 100, Height: 50, Child: child}
//
//	// Horizontal spacer in a Row
//	SizedBox{Width: 16}
//
// For convenience, use [HSpace] and [VSpace] helper functions for spacers.
type SizedBox struct {
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) Build() core.Widget {
	c := Container{Constraints: layout.BoxConstraintsLoose, ChildWidget: s.Child}
	if s.Width > 0 {
		c.Width = layout.Px(s.Width)
	}
	if s.Height > 0 {
		c.Height = layout.Px(s.Height)
	}
	return c
}
