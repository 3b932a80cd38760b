package dom

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/errors"
)

// hostTag maps a node kind to the host element it is materialized as.
func hostTag(kind core.NodeKind) (atom.Atom, error) {
	switch kind {
	case core.KindBox:
		return atom.Div, nil
	case core.KindText:
		return atom.Span, nil
	default:
		return 0, &errors.ResolveError{
			Op:  "dom.Materialize",
			Err: fmt.Errorf("%w: %v", errors.ErrUnknownKind, kind),
		}
	}
}

// Render resolves w and materializes the resulting node tree.
func Render(w core.Widget) (*html.Node, error) {
	n, err := core.Resolve(w)
	if err != nil {
		return nil, err
	}
	return Materialize(n)
}

// Materialize creates one host element per node, depth first. Children keep
// their order. The returned tree is detached; nothing is returned when any
// node is invalid.
func Materialize(n *core.Node) (*html.Node, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	a, err := hostTag(n.Kind)
	if err != nil {
		return nil, err
	}

	el := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class := classAttr(n.Classes); class != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: class})
	}
	if style := styleAttr(n.Styles); style != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: style})
	}
	if n.Kind == core.KindText && n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}

	for _, child := range n.ChildNodes() {
		hostChild, err := Materialize(child)
		if err != nil {
			return nil, err
		}
		el.AppendChild(hostChild)
	}
	return el, nil
}

// classAttr joins classes with spaces, dropping blanks and duplicates.
func classAttr(classes []string) string {
	seen := make([]string, 0, len(classes))
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" || slices.Contains(seen, c) {
			continue
		}
		seen = append(seen, c)
	}
	return strings.Join(seen, " ")
}

// styleAttr renders declarations in sorted property order.
func styleAttr(styles core.Styles) string {
	if len(styles) == 0 {
		return ""
	}
	decls := make([]string, 0, len(styles))
	for _, k := range styles.Keys() {
		decls = append(decls, k+": "+styles[k])
	}
	return strings.Join(decls, "; ")
}
