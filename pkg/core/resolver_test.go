package core

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/almost/pkg/errors"
)

// chain is a composite widget that expands depth more times before
// reaching a terminal text leaf.
type chain struct {
	depth int
	text  string
}

func (c chain) Build() Widget {
	if c.depth == 0 {
		return Bind(&Node{Kind: KindText, Text: c.text})
	}
	return chain{depth: c.depth - 1, text: c.text}
}

// loop builds to itself forever.
type loop struct{}

func (l loop) Build() Widget { return l }

// dangling builds to nil without being terminal.
type dangling struct{}

func (dangling) Build() Widget { return nil }

// panicky panics during Build.
type panicky struct{ value any }

func (p panicky) Build() Widget { panic(p.value) }

// box resolves its children eagerly, the way catalog widgets do.
type box struct {
	children []Widget
}

func (b box) Build() Widget {
	n := &Node{Kind: KindBox}
	for _, c := range b.children {
		n.Children = append(n.Children, MustResolve(c))
	}
	return Bind(n)
}

func TestResolve_Terminates(t *testing.T) {
	for _, depth := range []int{0, 1, 10, MaxBuildSteps - 1} {
		n, err := Resolve(chain{depth: depth, text: "leaf"})
		if err != nil {
			t.Fatalf("Resolve(depth=%d) error = %v", depth, err)
		}
		if n.Kind != KindText || n.Text != "leaf" {
			t.Errorf("Resolve(depth=%d) = %+v", depth, n)
		}
	}
}

func TestResolve_TerminalRoot(t *testing.T) {
	want := &Node{Kind: KindBox}
	got, err := Resolve(Bind(want))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Error("terminal root should resolve to its own node")
	}
}

func TestResolve_BuildFunc(t *testing.T) {
	w := BuildFunc(func() Widget { return chain{depth: 2, text: "fn"} })
	n, err := Resolve(w)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if n.Text != "fn" {
		t.Errorf("Text = %q, want fn", n.Text)
	}
}

func TestResolve_NilRoot(t *testing.T) {
	var typedNil *Terminal
	for _, w := range []Widget{nil, typedNil, BuildFunc(nil)} {
		_, err := Resolve(w)
		if !stderrors.Is(err, errors.ErrNilWidget) {
			t.Errorf("Resolve(%T) error = %v, want ErrNilWidget", w, err)
		}
	}
}

func TestResolve_CycleGuard(t *testing.T) {
	_, err := Resolve(loop{})
	if !stderrors.Is(err, errors.ErrBuildCycle) {
		t.Fatalf("Resolve(loop) error = %v, want ErrBuildCycle", err)
	}
	var resolveErr *errors.ResolveError
	if !stderrors.As(err, &resolveErr) {
		t.Fatalf("expected *errors.ResolveError, got %T", err)
	}
	if resolveErr.Steps != MaxBuildSteps {
		t.Errorf("Steps = %d, want %d", resolveErr.Steps, MaxBuildSteps)
	}
	if resolveErr.Widget != "core.loop" {
		t.Errorf("Widget = %q, want core.loop", resolveErr.Widget)
	}
}

func TestResolver_CustomLimit(t *testing.T) {
	r := Resolver{MaxSteps: 3}
	if _, err := r.Resolve(chain{depth: 2}); err != nil {
		t.Errorf("depth 2 within limit 3: error = %v", err)
	}
	// depth 3 needs four Build calls: three composites and one to reach
	// the terminal.
	if _, err := r.Resolve(chain{depth: 3}); !stderrors.Is(err, errors.ErrBuildCycle) {
		t.Errorf("depth 3 with limit 3: error = %v, want ErrBuildCycle", err)
	}
}

func TestResolver_LimitAppliesToNestedChildren(t *testing.T) {
	r := Resolver{MaxSteps: 3}
	_, err := r.Resolve(box{children: []Widget{chain{depth: 10}}})
	if !stderrors.Is(err, errors.ErrBuildCycle) {
		t.Fatalf("nested depth 10 with limit 3: error = %v, want ErrBuildCycle", err)
	}
	var resolveErr *errors.ResolveError
	if !stderrors.As(err, &resolveErr) || resolveErr.Steps != 3 {
		t.Errorf("error = %v, want nested failure after 3 steps", err)
	}

	if _, err := r.Resolve(box{children: []Widget{box{children: []Widget{chain{depth: 2}}}}}); err != nil {
		t.Errorf("nested depth 2 with limit 3: error = %v", err)
	}

	// The limit is released once the outer resolution returns.
	if got := activeLimit(); got != 0 {
		t.Errorf("activeLimit() = %d after Resolve, want 0", got)
	}
	if _, err := Resolve(box{children: []Widget{chain{depth: 10}}}); err != nil {
		t.Errorf("default limit: error = %v", err)
	}
}

func TestIsNil(t *testing.T) {
	var typedNil *Terminal
	tests := []struct {
		w    Widget
		want bool
	}{
		{nil, true},
		{typedNil, true},
		{BuildFunc(nil), true},
		{chain{}, false},
		{Bind(&Node{}), false},
	}
	for _, tt := range tests {
		if got := IsNil(tt.w); got != tt.want {
			t.Errorf("IsNil(%T) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestResolve_NoTerminal(t *testing.T) {
	_, err := Resolve(dangling{})
	if !stderrors.Is(err, errors.ErrNoTerminal) {
		t.Errorf("Resolve(dangling) error = %v, want ErrNoTerminal", err)
	}
	_, err = Resolve(&Terminal{})
	if !stderrors.Is(err, errors.ErrNoTerminal) {
		t.Errorf("Resolve(unbound terminal) error = %v, want ErrNoTerminal", err)
	}
}

func TestResolve_BuildPanic(t *testing.T) {
	_, err := Resolve(panicky{value: "boom"})
	var buildErr *errors.BuildError
	if !stderrors.As(err, &buildErr) {
		t.Fatalf("expected *errors.BuildError, got %T (%v)", err, err)
	}
	if buildErr.Widget != "core.panicky" {
		t.Errorf("Widget = %q, want core.panicky", buildErr.Widget)
	}
	if buildErr.Recovered != "boom" {
		t.Errorf("Recovered = %v, want boom", buildErr.Recovered)
	}
	if buildErr.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestResolve_BuildPanicWithError(t *testing.T) {
	cause := stderrors.New("bad config")
	_, err := Resolve(panicky{value: cause})
	if !stderrors.Is(err, cause) {
		t.Errorf("error = %v, want wrapping %v", err, cause)
	}
}

func TestResolve_NestedFailureKeepsInnermostCause(t *testing.T) {
	root := box{children: []Widget{
		chain{depth: 1, text: "ok"},
		box{children: []Widget{loop{}}},
	}}
	n, err := Resolve(root)
	if n != nil {
		t.Error("expected no partial tree on failure")
	}
	if !stderrors.Is(err, errors.ErrBuildCycle) {
		t.Fatalf("error = %v, want ErrBuildCycle", err)
	}
	if !strings.Contains(err.Error(), "core.loop") {
		t.Errorf("error %q should name the looping widget", err)
	}
}

func TestResolve_NodeCount(t *testing.T) {
	root := box{children: []Widget{
		chain{depth: 3, text: "a"},
		box{children: []Widget{chain{text: "b"}, chain{depth: 1, text: "c"}}},
		box{},
	}}
	n, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	// root, a, inner box, b, c, empty box
	if got := CountNodes(n); got != 6 {
		t.Errorf("CountNodes() = %d, want 6", got)
	}
}

func TestMustResolve_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !stderrors.Is(err, errors.ErrNilWidget) {
			t.Errorf("recovered %v, want ErrNilWidget", r)
		}
	}()
	MustResolve(nil)
}
