package testing

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/almost/pkg/dom"
)

// Finder locates elements in the host tree.
type Finder interface {
	// Evaluate returns all matching elements under root (depth-first pre-order).
	Evaluate(root *html.Node) []*html.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []*html.Node
	finder   Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *html.Node {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("Finder found no elements: %s", r.description()))
	}
	return r.elements[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *html.Node {
	if len(r.elements) == 0 {
		return nil
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *html.Node {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.elements), r.description()))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*html.Node {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Describe returns the structural view of the first match. Panics if no matches.
func (r FinderResult) Describe() *dom.HostNode {
	return dom.Describe(r.First())
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(*dom.HostNode) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && f.fn(dom.Describe(n)) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByText matches elements whose own text equals text exactly.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(h *dom.HostNode) bool { return h.Text == text && text != "" },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches elements whose own text contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn:   func(h *dom.HostNode) bool { return h.Text != "" && strings.Contains(h.Text, substring) },
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByClass matches elements carrying the given class.
func ByClass(class string) Finder {
	return &predicateFinder{
		fn:   func(h *dom.HostNode) bool { return slices.Contains(h.Classes, class) },
		desc: fmt.Sprintf("ByClass(%q)", class),
	}
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) Finder {
	return &predicateFinder{
		fn:   func(h *dom.HostNode) bool { return h.Tag == tag },
		desc: fmt.Sprintf("ByTag(%q)", tag),
	}
}

// ByStyle matches elements whose style property equals value.
func ByStyle(property, value string) Finder {
	return &predicateFinder{
		fn: func(h *dom.HostNode) bool {
			v, ok := h.Styles[property]
			return ok && v == value
		},
		desc: fmt.Sprintf("ByStyle(%s: %s)", property, value),
	}
}

// ByPredicate matches elements satisfying fn.
func ByPredicate(desc string, fn func(*dom.HostNode) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}
