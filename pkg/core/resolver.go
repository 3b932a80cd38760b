package core

import (
	stderrors "errors"
	"reflect"
	"sync"
	"time"

	"github.com/go-drift/almost/pkg/errors"
)

// MaxBuildSteps is the default limit on Build expansions in one chain.
const MaxBuildSteps = 1024

// Resolver expands widgets to their terminal Node.
type Resolver struct {
	// MaxSteps bounds the number of Build calls in a single expansion chain.
	// Zero means MaxBuildSteps.
	MaxSteps int
}

var defaultResolver = Resolver{}

// Limits of the resolutions in progress, innermost last. Resolution is
// synchronous, so nested MustResolve calls made from Build run under the
// innermost entry.
var (
	limitsMu sync.Mutex
	limits   []int
)

func pushLimit(limit int) {
	limitsMu.Lock()
	limits = append(limits, limit)
	limitsMu.Unlock()
}

func popLimit() {
	limitsMu.Lock()
	limits = limits[:len(limits)-1]
	limitsMu.Unlock()
}

func activeLimit() int {
	limitsMu.Lock()
	defer limitsMu.Unlock()
	if len(limits) == 0 {
		return 0
	}
	return limits[len(limits)-1]
}

// Resolve expands w with the default resolver.
func Resolve(w Widget) (*Node, error) {
	return defaultResolver.Resolve(w)
}

// MustResolve is like Resolve but panics on error. Catalog widgets use it to
// resolve their children so that failures surface at the outermost Resolve.
// Called from a Build, it applies the step limit of the enclosing Resolver.
func MustResolve(w Widget) *Node {
	n, err := Resolver{MaxSteps: activeLimit()}.Resolve(w)
	if err != nil {
		panic(err)
	}
	return n
}

// Resolve calls Build on w until a terminal widget is reached and returns
// its Node.
func (r Resolver) Resolve(w Widget) (*Node, error) {
	if IsNil(w) {
		return nil, &errors.ResolveError{Op: "core.Resolve", Err: errors.ErrNilWidget}
	}
	limit := r.MaxSteps
	if limit <= 0 {
		limit = MaxBuildSteps
	}
	pushLimit(limit)
	defer popLimit()

	for steps := 0; ; steps++ {
		if bound, ok := w.(Bound); ok {
			if n := bound.Node(); n != nil {
				return n, nil
			}
		}
		if steps >= limit {
			return nil, &errors.ResolveError{
				Op:     "core.Resolve",
				Widget: typeName(w),
				Steps:  steps,
				Err:    errors.ErrBuildCycle,
			}
		}
		next, err := expand(w)
		if err != nil {
			return nil, err
		}
		if IsNil(next) {
			return nil, &errors.ResolveError{
				Op:     "core.Resolve",
				Widget: typeName(w),
				Steps:  steps + 1,
				Err:    errors.ErrNoTerminal,
			}
		}
		w = next
	}
}

// expand runs one Build with panic recovery.
func expand(w Widget) (next Widget, err error) {
	defer func() {
		if r := recover(); r != nil {
			next = nil
			err = buildFailure(w, r)
		}
	}()
	return w.Build(), nil
}

// buildFailure converts a recovered panic into an error. Failures raised by
// a nested MustResolve are passed through so the innermost cause is kept.
func buildFailure(w Widget, recovered any) error {
	if err, ok := recovered.(error); ok {
		var buildErr *errors.BuildError
		var resolveErr *errors.ResolveError
		if stderrors.As(err, &buildErr) || stderrors.As(err, &resolveErr) {
			return err
		}
		return &errors.BuildError{
			Widget:     typeName(w),
			Recovered:  recovered,
			Err:        err,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
	}
	return &errors.BuildError{
		Widget:     typeName(w),
		Recovered:  recovered,
		StackTrace: errors.CaptureStack(),
		Timestamp:  time.Now(),
	}
}

func typeName(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	return reflect.TypeOf(w).String()
}

// IsNil reports whether w is nil or a typed nil such as (*Terminal)(nil).
func IsNil(w Widget) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
