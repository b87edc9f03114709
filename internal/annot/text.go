package annot

import (
	"math"

	"github.com/example/markpad/internal/typeface"
)

// MinTextScale is the lower bound for a text annotation's uniform scale.
const MinTextScale = 0.1

// minPointSize keeps text legible no matter how thin the stroke style is.
const minPointSize = 6.0

// Text is a string anchored at its baseline-left. Its point size is derived
// from the stroke width; a uniform scale factor multiplies on top of that
// during resize.
type Text struct {
	base
	Value  string
	Family string
	Anchor Pt
	Scale  float64
}

// NewText creates a text annotation anchored at p.
func NewText(style Style, value string, p Pt) *Text {
	return &Text{
		base:   newBase(style),
		Value:  value,
		Family: typeface.FamilyName,
		Anchor: p,
		Scale:  1,
	}
}

func (t *Text) Kind() Kind { return KindText }

// PointSize derives the nominal size from the stroke width.
func (t *Text) PointSize() float64 {
	return math.Max(minPointSize, t.style.Width*3)
}

// FaceSize is the effective rendered size after the uniform scale.
func (t *Text) FaceSize() float64 { return t.PointSize() * t.Scale }

// SetScale applies a uniform scale factor, floored at MinTextScale.
func (t *Text) SetScale(s float64) {
	t.Scale = math.Max(MinTextScale, s)
}

// Bounds measures the rendered string around the baseline anchor.
func (t *Text) Bounds() Rect {
	w, h, ascent := typeface.Measure(t.Value, t.FaceSize())
	return Rect{
		Min: Pt{t.Anchor.X, t.Anchor.Y - ascent},
		Max: Pt{t.Anchor.X + w, t.Anchor.Y + (h - ascent)},
	}
}

func (t *Text) Translate(dx, dy float64) { t.Anchor = t.Anchor.Add(dx, dy) }

func (t *Text) Clone() Annotation {
	return &Text{
		base:   t.cloneBase(),
		Value:  t.Value,
		Family: t.Family,
		Anchor: t.Anchor,
		Scale:  t.Scale,
	}
}

// CloneAt keeps font, color and scale and moves the anchor to p.
func (t *Text) CloneAt(p Pt) Annotation {
	c := t.Clone().(*Text)
	c.Anchor = p
	return c
}
