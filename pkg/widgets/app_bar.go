package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
)

// AppBarHeight is the default preferred height of an [AppBar].
const AppBarHeight = 70

// AppBar is a header bar showing a title. It reports a preferred size of
// unconstrained width and ToolbarHeight (default [AppBarHeight]), which
// [Scaffold] uses to reserve the header region.
type AppBar struct {
	Title core.Widget
	// BackgroundColor fills the bar. Zero leaves it transparent.
	BackgroundColor graphics.Color
	// ToolbarHeight overrides AppBarHeight when positive.
	ToolbarHeight float64
}

// PreferredSize returns the bar's size without resolving its title.
func (a AppBar) PreferredSize() graphics.Size {
	height := a.ToolbarHeight
	if height <= 0 {
		height = AppBarHeight
	}
	return graphics.FromHeight(height)
}

func (a AppBar) Build() core.Widget {
	return Container{ChildWidget: a.Title, Color: a.BackgroundColor}
}
