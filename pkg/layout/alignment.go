// Package layout provides the layout vocabulary shared by the widget catalog:
// alignments, box constraint modes and CSS lengths.
//
// Layout itself is delegated to the host's box and flex model. The values in
// this package only select class names and style properties that the global
// stylesheet (see package theme) gives meaning to.
package layout

import "fmt"

// Alignment is one of the nine compass points a child can be pinned to
// inside a stack.
type Alignment int

const (
	AlignmentTopLeft Alignment = iota
	AlignmentTopCenter
	AlignmentTopRight
	AlignmentCenterLeft
	AlignmentCenter
	AlignmentCenterRight
	AlignmentBottomLeft
	AlignmentBottomCenter
	AlignmentBottomRight
)

// Alignments lists every alignment in declaration order.
var Alignments = []Alignment{
	AlignmentTopLeft,
	AlignmentTopCenter,
	AlignmentTopRight,
	AlignmentCenterLeft,
	AlignmentCenter,
	AlignmentCenterRight,
	AlignmentBottomLeft,
	AlignmentBottomCenter,
	AlignmentBottomRight,
}

var alignmentNames = map[Alignment]string{
	AlignmentTopLeft:      "top-left",
	AlignmentTopCenter:    "top-center",
	AlignmentTopRight:     "top-right",
	AlignmentCenterLeft:   "center-left",
	AlignmentCenter:       "center",
	AlignmentCenterRight:  "center-right",
	AlignmentBottomLeft:   "bottom-left",
	AlignmentBottomCenter: "bottom-center",
	AlignmentBottomRight:  "bottom-right",
}

// String returns the hyphenated compass name, e.g. "top-left".
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// IsValid reports whether a is one of the nine declared alignments.
func (a Alignment) IsValid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ClassName returns the stylesheet class that positions a stack child,
// e.g. "alignment-top-left". Invalid alignments fall back to the center.
func (a Alignment) ClassName() string {
	if !a.IsValid() {
		a = AlignmentCenter
	}
	return "alignment-" + alignmentNames[a]
}
