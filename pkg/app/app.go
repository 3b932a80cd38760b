// Package app is the entry point that resolves a root widget and attaches
// the result to a host document.
package app

import (
	stderrors "errors"

	"golang.org/x/net/html"

	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/dom"
	"github.com/go-drift/almost/pkg/errors"
	"github.com/go-drift/almost/pkg/theme"
)

// App describes an application run.
type App struct {
	// Root is the application's root widget.
	Root core.Widget
	// Stylesheet is injected into the document head. Nil uses theme.Default().
	Stylesheet *theme.Stylesheet
	// Container receives the materialized tree. Nil uses the document body.
	Container *html.Node
}

// NewApp returns an App with the default stylesheet and container.
func NewApp(root core.Widget) App {
	return App{Root: root}
}

// Run resolves a.Root, then injects the stylesheet and appends the tree to
// the container. Nothing is written to doc unless resolution succeeds.
// Failures are reported to the errors handler and returned.
func (a App) Run(doc *dom.Document) error {
	if doc == nil {
		return report(errors.KindRender, stderrors.New("nil document"))
	}
	tree, err := dom.Render(a.Root)
	if err != nil {
		var buildErr *errors.BuildError
		if stderrors.As(err, &buildErr) {
			errors.ReportBuildError(buildErr)
			return &errors.AlmostError{Op: "app.Run", Kind: errors.KindBuild, Err: err, Timestamp: buildErr.Timestamp}
		}
		return report(errors.KindResolve, err)
	}

	container := a.Container
	if container == nil {
		container = doc.Body()
	}
	if container.Type != html.ElementNode {
		return report(errors.KindRender, stderrors.New("container is not an element"))
	}

	sheet := a.Stylesheet
	if sheet == nil {
		sheet = theme.Default()
	}
	doc.InjectStyle(sheet.CSS())
	if err := doc.Append(container, tree); err != nil {
		return report(errors.KindRender, err)
	}
	return nil
}

// RunApp injects the default stylesheet into doc and attaches the
// materialized root under container, or under the body when container is
// nil. Prior content of the container is kept.
func RunApp(doc *dom.Document, root core.Widget, container *html.Node) error {
	return App{Root: root, Container: container}.Run(doc)
}

func report(kind errors.ErrorKind, err error) error {
	wrapped := &errors.AlmostError{Op: "app.Run", Kind: kind, Err: err}
	errors.Report(wrapped)
	return wrapped
}
