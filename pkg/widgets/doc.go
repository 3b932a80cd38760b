// Package widgets provides the layout catalog: the widgets application code
// composes into a tree.
//
// Every catalog widget resolves its children eagerly inside its own Build
// and returns a terminal widget bound to the resulting node. Layout itself is
// left to the host: widgets only select stylesheet classes (see package
// theme) and inline style properties.
//
// # Widget Construction
//
// Widgets are struct literals:
//
//	widgets.Container{
//	    Color:       graphics.ColorBlue,
//	    Height:      layout.Px(70),
//	    ChildWidget: widgets.Text{Content: "Hello"},
//	}
//
// Layout helpers exist for the multi-child widgets:
//
//	widgets.ColumnOf(widgets.MainAxisSizeMax, header, body)
//	widgets.RowOf(widgets.MainAxisSizeMin, left, right)
//	widgets.StackOf(background, widgets.Align{Alignment: layout.AlignmentTopRight, Child: badge})
//
// WithX methods return copies; they never mutate the receiver.
//
// # Page Structure
//
// Scaffold lays out an AppBar above a body. The app bar's PreferredSize is
// read before it is resolved and fixes the height of the header region:
//
//	widgets.Scaffold{
//	    AppBar: widgets.AppBar{Title: widgets.Text{Content: "Title"}},
//	    Body:   widgets.Container{ChildWidget: widgets.Text{Content: "Hello world"}},
//	}
package widgets
