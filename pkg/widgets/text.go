package widgets

import "github.com/go-drift/almost/pkg/core"

// Text displays a string.
//
//	Text{Content: "Hello world"}
type Text struct {
	// Content is the text string to display.
	Content string
}

// TextOf creates a Text widget.
func TextOf(content string) Text {
	return Text{Content: content}
}

func (t Text) Build() core.Widget {
	return core.Bind(&core.Node{Kind: core.KindText, Text: t.Content})
}
