package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const skeleton = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an HTML page that materialized trees are attached to.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node
}

// NewDocument returns an empty HTML5 page.
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader(skeleton))
	if err != nil {
		panic(fmt.Sprintf("dom: parse skeleton: %v", err))
	}
	return doc
}

// ParseDocument reads an existing page, such as a template with a host
// container element.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc := &Document{root: root}
	doc.head = findFirst(root, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Head })
	doc.body = findFirst(root, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Body })
	if doc.head == nil || doc.body == nil {
		return nil, fmt.Errorf("parse document: missing head or body")
	}
	return doc, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Head returns the <head> element.
func (d *Document) Head() *html.Node { return d.head }

// Body returns the <body> element, the default host container.
func (d *Document) Body() *html.Node { return d.body }

// FindByID returns the first element with the given id attribute, or nil.
func (d *Document) FindByID(id string) *html.Node {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

// InjectStyle appends a <style> element holding css to the head.
func (d *Document) InjectStyle(css string) *html.Node {
	style := &html.Node{Type: html.ElementNode, DataAtom: atom.Style, Data: atom.Style.String()}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	d.head.AppendChild(style)
	return style
}

// SetTitle sets the page <title>, replacing an existing one.
func (d *Document) SetTitle(title string) {
	t := findFirst(d.head, func(n *html.Node) bool { return n.Type == html.ElementNode && n.DataAtom == atom.Title })
	if t == nil {
		t = &html.Node{Type: html.ElementNode, DataAtom: atom.Title, Data: atom.Title.String()}
		d.head.AppendChild(t)
	}
	for c := t.FirstChild; c != nil; c = t.FirstChild {
		t.RemoveChild(c)
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// Append attaches child as the last child of container. Existing content is
// kept.
func (d *Document) Append(container, child *html.Node) error {
	if container == nil {
		return fmt.Errorf("append: nil container")
	}
	if child == nil {
		return fmt.Errorf("append: nil child")
	}
	if child.Parent != nil {
		return fmt.Errorf("append: %s is already attached", child.Data)
	}
	if container.Type != html.ElementNode {
		return fmt.Errorf("append: container is not an element")
	}
	container.AppendChild(child)
	return nil
}

// WriteTo renders the page as HTML.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := html.Render(cw, d.root)
	return cw.n, err
}

// String renders the page as HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// RenderNode renders a single host subtree as HTML.
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
