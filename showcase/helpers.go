package showcase

import (
	"golang.org/x/image/colornames"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
	"github.com/go-drift/almost/pkg/layout"
	"github.com/go-drift/almost/pkg/widgets"
)

var (
	headerColor = graphics.FromColor(colornames.Steelblue)
	swatchA     = graphics.FromColor(colornames.Coral)
	swatchB     = graphics.FromColor(colornames.Mediumseagreen)
	swatchC     = graphics.FromColor(colornames.Slateblue)
	panelColor  = graphics.FromColor(colornames.Whitesmoke)
)

// demoPage wraps a body in a Scaffold with a titled app bar.
func demoPage(title string, body core.Widget) core.Widget {
	return widgets.Scaffold{
		AppBar: widgets.AppBar{
			Title:           widgets.Centered(widgets.TextOf(title)),
			BackgroundColor: headerColor,
		},
		Body: body,
	}
}

// colorBox creates a labeled swatch of fixed size.
func colorBox(color graphics.Color, label string) core.Widget {
	return widgets.Container{
		Constraints: layout.BoxConstraintsLoose,
		Color:       color,
		Width:       layout.Px(60),
		Height:      layout.Px(60),
		ChildWidget: widgets.Centered(widgets.TextOf(label)),
	}
}
