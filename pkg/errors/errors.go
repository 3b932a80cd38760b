// Package errors provides structured error handling for almost.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBuild indicates a widget Build that failed.
	KindBuild
	// KindResolve indicates a widget tree that could not be resolved to nodes.
	KindResolve
	// KindRender indicates a failure materializing or writing the host tree.
	KindRender
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindResolve:
		return "resolve"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes carried by ResolveError. Match them with errors.Is.
var (
	// ErrNilWidget is returned when a nil widget is handed to the resolver.
	ErrNilWidget = stderrors.New("nil widget")
	// ErrNoTerminal is returned when a non-terminal widget builds to nil.
	ErrNoTerminal = stderrors.New("build chain ended without a terminal widget")
	// ErrBuildCycle is returned when a build chain exceeds the step limit.
	ErrBuildCycle = stderrors.New("build chain did not reach a terminal widget")
	// ErrUnknownKind is returned for a node whose kind has no host element.
	ErrUnknownKind = stderrors.New("unknown node kind")
	// ErrInvalidNode is returned for a node that violates its shape invariants.
	ErrInvalidNode = stderrors.New("invalid node")
)

// AlmostError represents a structured error reported by the framework.
type AlmostError struct {
	// Op is the operation that failed (e.g., "app.RunApp").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AlmostError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AlmostError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic outside of a widget Build.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.render").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics that did not carry one).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ResolveError reports a widget tree that could not be turned into nodes.
type ResolveError struct {
	// Op is the resolver step that failed (e.g., "core.Resolve").
	Op string
	// Widget is the type name of the widget being expanded, if any.
	Widget string
	// Steps is the number of Build expansions performed in the failing chain.
	Steps int
	// Err is one of the sentinel causes, possibly wrapped.
	Err error
}

func (e *ResolveError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s: %s after %d steps: %v", e.Op, e.Widget, e.Steps, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an operation fails.
	HandleError(err *AlmostError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
