package showcase

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
	"github.com/go-drift/almost/pkg/widgets"
)

// buildLayoutsApp demonstrates Row, Column, and Expanded.
func buildLayoutsApp() core.Widget {
	return demoPage("Layouts", widgets.ColumnOf(widgets.MainAxisSizeMax,
		widgets.TextOf("Row (min):"),
		widgets.RowOf(widgets.MainAxisSizeMin,
			colorBox(swatchA, "A"),
			colorBox(swatchB, "B"),
			colorBox(swatchC, "C"),
		),
		widgets.VSpace(12),

		widgets.TextOf("Row (max) with flex 1:2:"),
		widgets.RowOf(widgets.MainAxisSizeMax,
			widgets.Expanded{ChildWidget: colorBox(swatchA, "1")},
			widgets.Expanded{ChildWidget: colorBox(swatchB, "2"), Flex: 2},
		),
		widgets.VSpace(12),

		widgets.Expanded{
			ChildWidget: widgets.Container{
				Color: panelColor,
				ChildWidget: widgets.ColumnOf(widgets.MainAxisSizeMin,
					widgets.TextOf("Nested column"),
					widgets.HSpace(8),
					widgets.Container{Width: layout.Raw("50%"), ChildWidget: widgets.TextOf("Half width")},
				),
			},
		},
	))
}
