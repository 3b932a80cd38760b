package widgets

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/layout"
)

// Padding adds empty space around its child widget.
//
// Use [layout.EdgeInsets] helpers to create padding values:
//
//	Padding{Padding: layout.EdgeInsetsAll(16), Child: child}
//	Padding{Padding: layout.EdgeInsetsSymmetric(24, 12), Child: child}
//
// For padding combined with background color, wrap a [Container].
type Padding struct {
	Padding layout.EdgeInsets
	Child   core.Widget
}

func (p Padding) ChildWidget() core.Widget {
	return p.Child
}

func (p Padding) Build() core.Widget {
	var styles core.Styles
	if !p.Padding.IsZero() {
		styles = core.Styles{"padding": p.Padding.CSS()}
	}
	return core.Bind(&core.Node{
		Kind:    core.KindBox,
		Child:   resolveChild(p.Child),
		Classes: []string{layout.BoxConstraintsExpand.ClassName()},
		Styles:  styles,
	})
}
