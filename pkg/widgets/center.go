package widgets

import "github.com/go-drift/almost/pkg/core"

// Center positions its child at the center of the available space.
//
// Center expands to fill available space, then centers the child within it.
//
//	Center{Child: Text{Content: "Hello, World!"}}
type Center struct {
	Child core.Widget
}

func (c Center) ChildWidget() core.Widget {
	return c.Child
}

func (c Center) Build() core.Widget {
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Classes: []string{"center", "box-constraints-expand"},
		Child:   resolveChild(c.Child),
	})
}
