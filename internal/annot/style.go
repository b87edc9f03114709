package annot

import "image/color"

// MinStrokeWidth is the smallest width a style can carry; any set below it is
// clamped up.
const MinStrokeWidth = 0.1

// Style describes how an annotation is stroked.
type Style struct {
	Color color.RGBA
	Width float64
}

// DefaultStyle returns the style new scenes start with.
func DefaultStyle() Style {
	return Style{Color: color.RGBA{R: 255, A: 255}, Width: 2}
}

// Clamped returns the style with the width floored at MinStrokeWidth.
func (s Style) Clamped() Style {
	if s.Width < MinStrokeWidth {
		s.Width = MinStrokeWidth
	}
	return s
}
