package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// Align pins its child to one of nine compass points inside a [Stack].
//
// Example:
//
//	Align{
//	    Alignment: layout.AlignmentBottomRight,
//	    Child:     Text{Content: "Bottom right"},
//	}
//
// See also:
//   - [Center] for centering within any box
type Align struct {
	Child     core.Widget
	Alignment layout.Alignment
}

func (a Align) ChildWidget() core.Widget {
	return a.Child
}

func (a Align) Build() core.Widget {
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Classes: []string{a.Alignment.ClassName()},
		Child:   resolveChild(a.Child),
	})
}
