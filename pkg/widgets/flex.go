package widgets

import (
	"fmt"

	"github.com/go-drift/almost/pkg/core"
)

// Axis represents the layout direction.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisSize controls how much space the flex container takes along its main axis.
type MainAxisSize int

const (
	// MainAxisSizeMin sizes the container to fit its children (shrink-wrap).
	MainAxisSizeMin MainAxisSize = iota
	// MainAxisSizeMax expands to fill all available space along the main axis.
	// This is required for [Expanded] children to receive space.
	MainAxisSizeMax
)

// String returns a human-readable representation of the main axis size.
func (s MainAxisSize) String() string {
	switch s {
	case MainAxisSizeMin:
		return "min"
	case MainAxisSizeMax:
		return "max"
	default:
		return fmt.Sprintf("MainAxisSize(%d)", int(s))
	}
}

// Flex lays out children in a single run along Direction. Row and Column
// are the usual entry points.
type Flex struct {
	Direction       Axis
	ChildrenWidgets []core.Widget
	MainAxisSize    MainAxisSize
}

func (f Flex) Children() []core.Widget {
	return f.ChildrenWidgets
}

func (f Flex) Build() core.Widget {
	class, mainProperty := "column", "height"
	if f.Direction == AxisHorizontal {
		class, mainProperty = "row", "width"
	}
	var styles core.Styles
	if f.MainAxisSize == MainAxisSizeMax {
		styles = core.Styles{mainProperty: "100%"}
	}
	return core.Bind(&core.Node{
		Kind:     core.KindBox,
		Classes:  []string{class},
		Styles:   styles,
		Children: resolveChildren(f.ChildrenWidgets),
	})
}

// Row lays out children horizontally from left to right.
//
// By default (MainAxisSizeMin), Row shrinks to fit its children. Set
// MainAxisSizeMax to fill the available width, which [Expanded] children
// need in order to receive space:
//
//	Row{
//	    MainAxisSize: MainAxisSizeMax,
//	    ChildrenWidgets: []core.Widget{
//	        Text{Content: "Label"},
//	        Expanded{ChildWidget: content},
//	    },
//	}
//
// For vertical layout, use [Column].
type Row struct {
	ChildrenWidgets []core.Widget
	MainAxisSize    MainAxisSize
}

// RowOf creates a horizontal layout with the specified sizing behavior.
func RowOf(size MainAxisSize, children ...core.Widget) Row {
	return Row{ChildrenWidgets: children, MainAxisSize: size}
}

func (r Row) Children() []core.Widget {
	return r.ChildrenWidgets
}

func (r Row) Build() core.Widget {
	return Flex{Direction: AxisHorizontal, ChildrenWidgets: r.ChildrenWidgets, MainAxisSize: r.MainAxisSize}
}

// Column lays out children vertically from top to bottom.
//
// MainAxisSizeMax makes the column fill the available height. For horizontal
// layout, use [Row].
type Column struct {
	ChildrenWidgets []core.Widget
	MainAxisSize    MainAxisSize
}

// ColumnOf creates a vertical layout with the specified sizing behavior.
func ColumnOf(size MainAxisSize, children ...core.Widget) Column {
	return Column{ChildrenWidgets: children, MainAxisSize: size}
}

func (c Column) Children() []core.Widget {
	return c.ChildrenWidgets
}

func (c Column) Build() core.Widget {
	return Flex{Direction: AxisVertical, ChildrenWidgets: c.ChildrenWidgets, MainAxisSize: c.MainAxisSize}
}
