package widgets

import (
	"math"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// Scaffold lays out a page: an optional app bar on top and a body below.
//
// The app bar's preferred height is read before the bar is resolved and
// fixes the height of the header region regardless of what the bar
// contains. An unbounded preferred height leaves the region unconstrained.
type Scaffold struct {
	AppBar core.PreferredSizeWidget
	Body   core.Widget
}

func (s Scaffold) Build() core.Widget {
	var children []core.Widget
	if s.AppBar != nil {
		header := Container{ChildWidget: s.AppBar}
		if height := s.AppBar.PreferredSize().Height; !math.IsInf(height, 0) && !math.IsNaN(height) {
			header.Height = layout.Px(height)
		}
		children = append(children, header)
	}
	if s.Body != nil {
		children = append(children, s.Body)
	}
	return Column{ChildrenWidgets: children}
}
