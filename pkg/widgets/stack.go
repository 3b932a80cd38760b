package widgets

import "github.com/go-drift/almost/pkg/core"

// Stack overlays children on top of each other.
//
// Children are painted in order, with the first child at the bottom and the
// last child on top. Every child is absolutely positioned; wrap children in
// [Align] to pin them to a compass point:
//
//	Stack{
//	    Children: []core.Widget{
//	        Container{Color: bgColor},
//	        Align{Alignment: layout.AlignmentTopRight, Child: badge},
//	    },
//	}
type Stack struct {
	// Children are the widgets to overlay. First child is at the bottom,
	// last child is on top.
	Children []core.Widget
}

// StackOf creates a stack with the given children.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

func (s Stack) Build() core.Widget {
	return core.Bind(&core.Node{
		Kind:     core.KindBox,
		Classes:  []string{"stack", "box-constraints-expand"},
		Children: resolveChildren(s.Children),
	})
}
