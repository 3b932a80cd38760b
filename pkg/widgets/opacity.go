package widgets

import (
	"strconv"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// Opacity applies transparency to its child widget.
//
//	widgets.Opacity{
//	    Opacity: 0.5,
//	    Child:   content,
//	}
//
// The Opacity value is clamped to 0.0 (fully transparent) through 1.0
// (fully opaque). At 1.0 no style is emitted.
type Opacity struct {
	// Opacity is the transparency value (0.0 to 1.0).
	Opacity float64
	// Child is the widget to which opacity is applied.
	Child core.Widget
}

func (o Opacity) ChildWidget() core.Widget {
	return o.Child
}

func (o Opacity) Build() core.Widget {
	var styles core.Styles
	if v := min(max(o.Opacity, 0), 1); v < 1 {
		styles = core.Styles{"opacity": strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Child:   resolveChild(o.Child),
		Classes: []string{layout.BoxConstraintsExpand.ClassName()},
		Styles:  styles,
	})
}
