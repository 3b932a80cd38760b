package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
	"github.com/go-drift/almost/pkg/layout"
)

// Container is a box that combines sizing and a background color around an
// optional child.
//
// # Sizing Behavior
//
// Constraints selects the sizing mode; the zero value is
// [layout.BoxConstraintsExpand], which fills the parent. Width and Height
// override it per dimension. A pixel length renders as "70px", a raw length
// such as layout.Raw("50%") is passed through unchanged.
//
//	// Fixed-height colored band
//	Container{
//	    Color:       graphics.ColorRed,
//	    Height:      layout.Px(70),
//	    ChildWidget: Text{Content: "Header"},
//	}
//
//	// Half the parent's width
//	Container{Width: layout.Raw("50%"), ChildWidget: content}
type Container struct {
	ChildWidget core.Widget
	Constraints layout.BoxConstraints
	Color       graphics.Color
	Width       layout.Length
	Height      layout.Length
}

// WithColor returns a copy of the container with the specified background color.
func (c Container) WithColor(color graphics.Color) Container {
	c.Color = color
	return c
}

// WithSize returns a copy of the container with the specified width and height.
func (c Container) WithSize(width, height layout.Length) Container {
	c.Width = width
	c.Height = height
	return c
}

// WithConstraints returns a copy of the container with the specified sizing mode.
func (c Container) WithConstraints(constraints layout.BoxConstraints) Container {
	c.Constraints = constraints
	return c
}

func (c Container) Child() core.Widget {
	return c.ChildWidget
}

func (c Container) Build() core.Widget {
	styles := core.Styles{}
	if !c.Color.IsZero() {
		styles["background-color"] = c.Color.String()
	}
	if c.Width.IsSet() {
		styles["width"] = c.Width.CSS()
	}
	if c.Height.IsSet() {
		styles["height"] = c.Height.CSS()
	}
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Classes: []string{c.Constraints.ClassName()},
		Styles:  stylesOrNil(styles),
		Child:   resolveChild(c.ChildWidget),
	})
}
