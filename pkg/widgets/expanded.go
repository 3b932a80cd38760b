package widgets

import (
	"strconv"

	"github.com/go-drift/almost/pkg/core"
)

// Expanded makes its child fill remaining space along the main axis of a
// [Row] or [Column].
//
// Remaining space is shared among Expanded children in proportion to their
// Flex factor. The default Flex is 1.
//
//	Row{
//	    MainAxisSize: MainAxisSizeMax,
//	    ChildrenWidgets: []core.Widget{
//	        Expanded{Flex: 1, ChildWidget: panelA}, // Gets 1/3 of space
//	        Expanded{Flex: 2, ChildWidget: panelB}, // Gets 2/3 of space
//	    },
//	}
type Expanded struct {
	ChildWidget core.Widget
	Flex        int
}

// Child returns the child widget.
func (e Expanded) Child() core.Widget {
	return e.ChildWidget
}

// Build resolves the child and wraps it in a box carrying the flex weight.
func (e Expanded) Build() core.Widget {
	return core.Bind(&core.Node{
		Kind:   core.KindBox,
		Styles: core.Styles{"flex": strconv.Itoa(e.effectiveFlex())},
		Child:  resolveChild(e.ChildWidget),
	})
}

// effectiveFlex returns the flex factor, defaulting to 1 if not set.
func (e Expanded) effectiveFlex() int {
	if e.Flex <= 0 {
		return 1
	}
	return e.Flex
}
