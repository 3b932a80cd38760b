package layout

import "strings"

// EdgeInsets represents padding on each side of a box, in pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll creates uniform padding on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates padding with equal horizontal and equal
// vertical sides.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates padding with each side specified.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsZero reports whether all sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// CSS returns the padding shorthand in top, right, bottom, left order,
// collapsed the way a stylesheet author would write it.
func (e EdgeInsets) CSS() string {
	t, r, b, l := Px(e.Top).CSS(), Px(e.Right).CSS(), Px(e.Bottom).CSS(), Px(e.Left).CSS()
	switch {
	case t == r && r == b && b == l:
		return t
	case t == b && r == l:
		return t + " " + r
	case r == l:
		return strings.Join([]string{t, r, b}, " ")
	default:
		return strings.Join([]string{t, r, b, l}, " ")
	}
}
