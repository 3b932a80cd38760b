package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
)

// PreferredSize gives an arbitrary child a fixed preferred size, so it can
// be used wherever a [core.PreferredSizeWidget] is expected, such as
// Scaffold.AppBar.
//
//	PreferredSize{
//	    Size:  graphics.FromHeight(48),
//	    Child: Row{ChildrenWidgets: tabs},
//	}
type PreferredSize struct {
	Size  graphics.Size
	Child core.Widget
}

// PreferredSize returns the configured size.
func (p PreferredSize) PreferredSize() graphics.Size {
	return p.Size
}

// Build returns the child, or an empty box when there is none.
func (p PreferredSize) Build() core.Widget {
	if p.Child == nil {
		return Container{}
	}
	return p.Child
}
