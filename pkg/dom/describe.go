package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// HostNode is a plain structural view of a host element, used for
// inspection and snapshot comparison.
type HostNode struct {
	Tag      string            `json:"tag"`
	Classes  []string          `json:"classes,omitempty"`
	Styles   map[string]string `json:"styles,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*HostNode       `json:"children,omitempty"`
}

// Describe converts an element subtree into HostNodes. Text children are
// folded into Text; comments are ignored. Non-element input yields nil.
func Describe(n *html.Node) *HostNode {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	hn := &HostNode{
		Tag:     n.Data,
		Classes: strings.Fields(attr(n, "class")),
		Styles:  parseStyle(attr(n, "style")),
	}
	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text.WriteString(c.Data)
		case html.ElementNode:
			hn.Children = append(hn.Children, Describe(c))
		}
	}
	hn.Text = text.String()
	return hn
}

// Count returns the number of elements in the described tree.
func (h *HostNode) Count() int {
	if h == nil {
		return 0
	}
	count := 1
	for _, c := range h.Children {
		count += c.Count()
	}
	return count
}

func parseStyle(style string) map[string]string {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	out := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out[prop] = strings.TrimSpace(value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
