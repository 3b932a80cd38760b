package testing

import (
	"golang.org/x/net/html"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/dom"
	"github.com/go-drift/almost/pkg/theme"
)

// TestingT is the subset of *testing.T used by the tester and snapshots,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// WidgetTester resolves and materializes widgets into a fresh document and
// offers finders over the resulting host tree.
type WidgetTester struct {
	t    TestingT
	doc  *dom.Document
	node *core.Node
	root *html.Node
}

// NewWidgetTester creates a tester. Pump errors are returned, not reported.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{doc: dom.NewDocument()}
}

// NewWidgetTesterWithT creates a tester that fails t when pumping fails.
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t TestingT) *WidgetTester {
	tester := NewWidgetTester()
	tester.t = t
	return tester
}

// PumpWidget resolves w and attaches the host tree to a fresh document with
// the default stylesheet. Earlier pumps are discarded.
func (t *WidgetTester) PumpWidget(w core.Widget) error {
	if t.t != nil {
		t.t.Helper()
	}
	t.doc = dom.NewDocument()
	t.node, t.root = nil, nil

	n, err := core.Resolve(w)
	if err == nil {
		t.root, err = dom.Materialize(n)
	}
	if err != nil {
		t.root = nil
		if t.t != nil {
			t.t.Fatalf("PumpWidget(%T): %v", w, err)
		}
		return err
	}
	t.node = n
	t.doc.InjectStyle(theme.Default().CSS())
	return t.doc.Append(t.doc.Body(), t.root)
}

// Document returns the document of the last pump.
func (t *WidgetTester) Document() *dom.Document {
	return t.doc
}

// Node returns the resolved node tree of the last pump.
func (t *WidgetTester) Node() *core.Node {
	return t.node
}

// Root returns the materialized host root of the last pump.
func (t *WidgetTester) Root() *html.Node {
	return t.root
}

// Find evaluates f against the host tree of the last pump.
func (t *WidgetTester) Find(f Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: f}
	}
	return FinderResult{elements: f.Evaluate(t.root), finder: f}
}
