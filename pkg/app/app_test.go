package app_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/go-drift/almost/pkg/app"
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/dom"
	"github.com/go-drift/almost/pkg/errors"
	"github.com/go-drift/almost/pkg/theme"
	"github.com/go-drift/almost/pkg/widgets"
)

// captureHandler records reported errors.
type captureHandler struct {
	errs      []*errors.AlmostError
	buildErrs []*errors.BuildError
}

func (h *captureHandler) HandleError(err *errors.AlmostError)     { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError)      {}
func (h *captureHandler) HandleBuildError(err *errors.BuildError) { h.buildErrs = append(h.buildErrs, err) }

func withHandler(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

type page struct{}

func (page) Build() core.Widget {
	return widgets.Scaffold{
		AppBar: widgets.AppBar{Title: widgets.TextOf("Title")},
		Body:   widgets.Container{ChildWidget: widgets.TextOf("Hello world")},
	}
}

func TestRunApp_AttachesToBody(t *testing.T) {
	doc := dom.NewDocument()
	if err := app.RunApp(doc, page{}, nil); err != nil {
		t.Fatalf("RunApp() error = %v", err)
	}
	out := doc.String()
	if !strings.Contains(out, "<style>* {\n  box-sizing: border-box;\n}") {
		t.Errorf("stylesheet not injected:\n%s", out)
	}
	wantBody := `<body><div class="column">` +
		`<div class="box-constraints-expand" style="height: 70px">` +
		`<div class="box-constraints-expand"><span>Title</span></div></div>` +
		`<div class="box-constraints-expand"><span>Hello world</span></div>` +
		`</div></body>`
	if !strings.Contains(out, wantBody) {
		t.Errorf("body =\n%s\nwant to contain\n%s", out, wantBody)
	}
}

func TestRunApp_KeepsPriorContent(t *testing.T) {
	doc, err := dom.ParseDocument(strings.NewReader(`<html><body><div id="root"><p>existing</p></div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	container := doc.FindByID("root")
	if err := app.RunApp(doc, widgets.TextOf("new"), container); err != nil {
		t.Fatalf("RunApp() error = %v", err)
	}
	if !strings.Contains(doc.String(), `<div id="root"><p>existing</p><span>new</span></div>`) {
		t.Errorf("prior content not kept: %s", doc.String())
	}
}

func TestRunApp_InjectsStylesheetPerCall(t *testing.T) {
	doc := dom.NewDocument()
	for i := 0; i < 2; i++ {
		if err := app.RunApp(doc, widgets.TextOf("x"), nil); err != nil {
			t.Fatal(err)
		}
	}
	if got := strings.Count(doc.String(), "<style>"); got != 2 {
		t.Errorf("style elements = %d, want 2", got)
	}
}

func TestRun_CustomStylesheet(t *testing.T) {
	doc := dom.NewDocument()
	a := app.NewApp(widgets.TextOf("x"))
	a.Stylesheet = theme.Default().With(theme.RuleOf(".title", map[string]string{"color": "teal"}))
	if err := a.Run(doc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.String(), ".title {\n  color: teal;\n}") {
		t.Error("custom rule missing from stylesheet")
	}
}

func TestRunApp_FailureLeavesDocumentUntouched(t *testing.T) {
	h := withHandler(t)
	doc := dom.NewDocument()
	before := doc.String()

	err := app.RunApp(doc, widgets.Column{ChildrenWidgets: []core.Widget{
		widgets.TextOf("fine"),
		core.BuildFunc(func() core.Widget { return nil }),
	}}, nil)
	if !stderrors.Is(err, errors.ErrNoTerminal) {
		t.Fatalf("error = %v, want ErrNoTerminal", err)
	}
	if doc.String() != before {
		t.Errorf("document changed on failure:\n%s", doc.String())
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindResolve {
		t.Errorf("reported errors = %v", h.errs)
	}
}

func TestRunApp_BuildPanicReported(t *testing.T) {
	h := withHandler(t)
	doc := dom.NewDocument()
	err := app.RunApp(doc, core.BuildFunc(func() core.Widget { panic("boom") }), nil)
	var buildErr *errors.BuildError
	if !stderrors.As(err, &buildErr) {
		t.Fatalf("error = %T %v, want *errors.BuildError", err, err)
	}
	var almostErr *errors.AlmostError
	if !stderrors.As(err, &almostErr) || almostErr.Kind != errors.KindBuild || almostErr.Op != "app.Run" {
		t.Errorf("error = %v, want app.Run [build]", err)
	}
	if len(h.buildErrs) != 1 {
		t.Errorf("reported build errors = %d, want 1", len(h.buildErrs))
	}
}

func TestRunApp_NilRoot(t *testing.T) {
	withHandler(t)
	if err := app.RunApp(dom.NewDocument(), nil, nil); !stderrors.Is(err, errors.ErrNilWidget) {
		t.Errorf("error = %v, want ErrNilWidget", err)
	}
}

func TestRunApp_InvalidContainer(t *testing.T) {
	withHandler(t)
	doc := dom.NewDocument()
	text := &html.Node{Type: html.TextNode, Data: "x"}
	if err := app.RunApp(doc, widgets.TextOf("x"), text); err == nil {
		t.Error("expected error for non-element container")
	}
	if err := app.RunApp(nil, widgets.TextOf("x"), nil); err == nil {
		t.Error("expected error for nil document")
	}
}
