// Package core provides the widget abstraction and the resolver that turns a
// widget graph into a tree of visual node descriptions.
//
// # Core Types
//
// Widget is an immutable description of part of the UI with a single
// capability, Build. A composite widget's Build returns the next widget in
// its expansion chain. A terminal widget's Build returns nil: it already owns
// the Node it stands for.
//
// Node is the structural description of one renderable primitive, either a
// box or a text leaf, with class tags, style properties and children. Nodes
// are produced by the widget catalog (package widgets) and never by hand.
//
// ElementBinding is the write-once association between a terminal widget and
// its Node. Bind produces a terminal widget for a node:
//
//	leaf := core.Bind(&core.Node{Kind: core.KindText, Text: "Hello"})
//
// # Composite Widgets
//
// Any value with a Build method is a widget. Composite widgets are usually
// small structs whose Build returns catalog widgets:
//
//	type greeting struct{ name string }
//
//	func (g greeting) Build() core.Widget {
//	    return widgets.Center{Child: widgets.Text{Content: "Hello, " + g.name}}
//	}
//
// Widgets that need to reserve space before their own content is resolved
// implement PreferredSizeWidget.
//
// # Resolution
//
// Resolve calls Build repeatedly until a terminal widget is reached and
// returns its Node. Catalog widgets resolve their children eagerly inside
// their own Build, so the returned Node is a complete tree. A chain that
// never reaches a terminal widget is stopped after MaxBuildSteps expansions.
// A Build that panics is recovered and reported as an *errors.BuildError.
// Resolution is all-or-nothing: Resolve returns a complete tree or an error.
package core
