package graphics

import (
	"fmt"
	"math"
)

// Infinity marks an unconstrained dimension.
var Infinity = math.Inf(1)

// Size is a two-dimensional extent. Either dimension may be Infinity.
type Size struct {
	Width  float64
	Height float64
}

// SizeOf returns a Size with the given dimensions.
func SizeOf(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// FromHeight returns a Size with an unconstrained width and a fixed height.
func FromHeight(height float64) Size {
	return Size{Width: Infinity, Height: height}
}

// FromWidth returns a Size with a fixed width and an unconstrained height.
func FromWidth(width float64) Size {
	return Size{Width: width, Height: Infinity}
}

// IsFinite reports whether both dimensions are bounded.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0)
}

func (s Size) String() string {
	return fmt.Sprintf("Size(%g, %g)", s.Width, s.Height)
}
