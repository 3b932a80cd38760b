package showcase

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
	"github.com/go-drift/almost/pkg/widgets"
)

// buildAlignmentApp places one label at each alignment inside a Stack.
func buildAlignmentApp() core.Widget {
	children := make([]core.Widget, 0, len(layout.Alignments))
	for _, a := range layout.Alignments {
		children = append(children, widgets.Aligned(a, widgets.TextOf(a.String())))
	}
	return demoPage("Alignment", widgets.Container{
		Color:       panelColor,
		ChildWidget: widgets.StackOf(children...),
	})
}
