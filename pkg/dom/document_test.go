package dom_test

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/go-drift/almost/pkg/dom"
	"github.com/go-drift/almost/pkg/widgets"
)

func TestNewDocument(t *testing.T) {
	doc := dom.NewDocument()
	if got, want := doc.String(), "<!DOCTYPE html><html><head></head><body></body></html>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if doc.Head() == nil || doc.Body() == nil || doc.Root() == nil {
		t.Fatal("expected head, body and root")
	}
}

func TestDocument_InjectStyleAndAppend(t *testing.T) {
	doc := dom.NewDocument()
	doc.InjectStyle(".row { display: flex; }")

	first, err := dom.Render(widgets.TextOf("one"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := dom.Render(widgets.TextOf("two"))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Append(doc.Body(), first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := doc.Append(doc.Body(), second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := "<!DOCTYPE html><html><head><style>.row { display: flex; }</style></head>" +
		"<body><span>one</span><span>two</span></body></html>"
	if got := doc.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	if err := doc.Append(doc.Body(), first); err == nil {
		t.Error("expected error appending an attached node")
	}
	if err := doc.Append(nil, &html.Node{Type: html.ElementNode, Data: "div"}); err == nil {
		t.Error("expected error appending to nil container")
	}
	if err := doc.Append(doc.Body(), nil); err == nil {
		t.Error("expected error appending nil child")
	}
}

func TestParseDocument_FindByID(t *testing.T) {
	page := `<!DOCTYPE html><html><head><title>t</title></head><body><header>keep</header><main id="app"></main></body></html>`
	doc, err := dom.ParseDocument(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	container := doc.FindByID("app")
	if container == nil {
		t.Fatal("FindByID(app) = nil")
	}
	if doc.FindByID("missing") != nil {
		t.Error("FindByID(missing) should be nil")
	}
	tree, err := dom.Render(widgets.TextOf("hi"))
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Append(container, tree); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	got := doc.String()
	if !strings.Contains(got, `<header>keep</header><main id="app"><span>hi</span></main>`) {
		t.Errorf("unexpected document: %s", got)
	}
}

func TestDocument_WriteToCountsBytes(t *testing.T) {
	doc := dom.NewDocument()
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}
}

func TestDescribe(t *testing.T) {
	host, err := dom.Render(widgets.Container{ChildWidget: widgets.TextOf("x"), Color: "red"})
	if err != nil {
		t.Fatal(err)
	}
	d := dom.Describe(host)
	if d.Tag != "div" || d.Styles["background-color"] != "red" || len(d.Children) != 1 {
		t.Errorf("Describe() = %+v", d)
	}
	if d.Children[0].Tag != "span" || d.Children[0].Text != "x" {
		t.Errorf("child = %+v", d.Children[0])
	}
	if dom.Describe(nil) != nil {
		t.Error("Describe(nil) should be nil")
	}
}

func TestDocument_SetTitle(t *testing.T) {
	doc := dom.NewDocument()
	doc.SetTitle("First")
	doc.SetTitle("Almost Flutter")
	want := "<head><title>Almost Flutter</title></head>"
	if got := doc.String(); !strings.Contains(got, want) {
		t.Errorf("String() = %q, want to contain %q", got, want)
	}
}
