package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// resolveChild resolves a single child. A nil child, typed or not, yields
// no node.
func resolveChild(child core.Widget) *core.Node {
	if core.IsNil(child) {
		return nil
	}
	return core.MustResolve(child)
}

// resolveChildren resolves children in order, skipping nil entries.
func resolveChildren(children []core.Widget) []*core.Node {
	if len(children) == 0 {
		return nil
	}
	nodes := make([]*core.Node, 0, len(children))
	for _, child := range children {
		if core.IsNil(child) {
			continue
		}
		nodes = append(nodes, core.MustResolve(child))
	}
	return nodes
}

// stylesOrNil drops an empty style map so the node carries no styles.
func stylesOrNil(s core.Styles) core.Styles {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Centered wraps a child in a Center widget.
func Centered(child core.Widget) Center {
	return Center{Child: child}
}

// Aligned wraps a child in an Align widget.
func Aligned(alignment layout.Alignment, child core.Widget) Align {
	return Align{Alignment: alignment, Child: child}
}

// Boxed wraps a child in a Container with default constraints.
func Boxed(child core.Widget) Container {
	return Container{ChildWidget: child}
}

// Padded wraps a child with the specified padding.
func Padded(padding layout.EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, Child: child}
}

// PaddingAll wraps a child with uniform padding on all sides.
func PaddingAll(value float64, child core.Widget) Padding {
	return Padding{Padding: layout.EdgeInsetsAll(value), Child: child}
}

// PaddingSym wraps a child with symmetric horizontal and vertical padding.
func PaddingSym(horizontal, vertical float64, child core.Widget) Padding {
	return Padding{Padding: layout.EdgeInsetsSymmetric(horizontal, vertical), Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}
