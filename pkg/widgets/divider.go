package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
	"github.com/go-drift/almost/pkg/layout"
)

// Divider renders a thin horizontal line spanning the available width.
//
// Divider is explicit: a zero Thickness means no visible line and a zero
// Color is transparent.
//
//	widgets.Divider{
//	    Thickness: 1,
//	    Color:     graphics.RGB(200, 200, 200),
//	    Indent:    16,
//	}
type Divider struct {
	// Thickness is the line height in pixels.
	Thickness float64
	// Color is the line color.
	Color graphics.Color
	// Indent is the left inset in pixels.
	Indent float64
	// EndIndent is the right inset in pixels.
	EndIndent float64
}

func (d Divider) Build() core.Widget {
	styles := core.Styles{"height": layout.Px(d.Thickness).CSS()}
	if !d.Color.IsZero() {
		styles["background-color"] = d.Color.String()
	}
	if d.Indent > 0 {
		styles["margin-left"] = layout.Px(d.Indent).CSS()
	}
	if d.EndIndent > 0 {
		styles["margin-right"] = layout.Px(d.EndIndent).CSS()
	}
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Classes: []string{layout.BoxConstraintsLoose.ClassName()},
		Styles:  styles,
	})
}
