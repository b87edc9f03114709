// Package render flattens a scene onto a raster: the background first, then
// every annotation in insertion order. Selection handles are a separate
// overlay so exported composites never contain them.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/markpad/internal/annot"
	"github.com/example/markpad/internal/editor"
	"github.com/example/markpad/internal/typeface"
)

// Composite paints the background and all annotations into a fresh raster of
// the scene's extent.
func Composite(s *editor.Scene) *image.RGBA {
	dst := image.NewRGBA(s.Bounds())
	if bg := s.Background(); bg != nil {
		draw.Draw(dst, dst.Bounds(), bg, bg.Bounds().Min, draw.Src)
	}
	for _, a := range s.Annotations() {
		Annotation(dst, a)
	}
	return dst
}

// Annotation rasterises a single annotation onto dst.
func Annotation(dst *image.RGBA, a annot.Annotation) {
	style := a.Style()
	col := style.Color
	thick := strokeThickness(style.Width)
	switch v := a.(type) {
	case *annot.Line:
		drawLine(dst, round(v.P1.X), round(v.P1.Y), round(v.P2.X), round(v.P2.Y), col, thick)
	case *annot.Arrow:
		drawLine(dst, round(v.P1.X), round(v.P1.Y), round(v.P2.X), round(v.P2.Y), col, thick)
		if w1, w2, ok := ArrowWings(v.P1, v.P2, style.Width); ok {
			drawLine(dst, round(w1.X), round(w1.Y), round(v.P2.X), round(v.P2.Y), col, thick)
			drawLine(dst, round(v.P2.X), round(v.P2.Y), round(w2.X), round(w2.Y), col, thick)
		}
	case *annot.Freehand:
		if len(v.Points) == 1 {
			setThickPixel(dst, round(v.Points[0].X), round(v.Points[0].Y), thick, col)
			return
		}
		for i := 0; i+1 < len(v.Points); i++ {
			p, q := v.Points[i], v.Points[i+1]
			drawLine(dst, round(p.X), round(p.Y), round(q.X), round(q.Y), col, thick)
		}
	case *annot.Rectangle:
		drawRectOutline(dst, toImageRect(v.R), col, thick)
	case *annot.Ellipse:
		cx := round((v.R.Min.X + v.R.Max.X) / 2)
		cy := round((v.R.Min.Y + v.R.Max.Y) / 2)
		drawEllipseOutline(dst, cx, cy, round(v.R.Dx()/2), round(v.R.Dy()/2), col, thick)
	case *annot.Triangle:
		vs := v.Vertices()
		for i := 0; i < 3; i++ {
			p, q := vs[i], vs[(i+1)%3]
			drawLine(dst, round(p.X), round(p.Y), round(q.X), round(q.Y), col, thick)
		}
	case *annot.Text:
		face := typeface.Face(v.FaceSize())
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(round(v.Anchor.X), round(v.Anchor.Y)),
		}
		d.DrawString(v.Value)
	}
}

// ArrowWings computes the two arrowhead wing points for a shaft p1→p2. A
// zero-length shaft has no defined direction, so the head is skipped
// entirely rather than risking a divide-by-zero artifact.
func ArrowWings(p1, p2 annot.Pt, strokeWidth float64) (w1, w2 annot.Pt, ok bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	if dx == 0 && dy == 0 {
		return annot.Pt{}, annot.Pt{}, false
	}
	theta := math.Atan2(-dy, dx)
	size := math.Max(10, strokeWidth*3.5)
	wing := func(phi float64) annot.Pt {
		return annot.Pt{
			X: p2.X - size*math.Cos(phi),
			Y: p2.Y + size*math.Sin(phi),
		}
	}
	const spread = 60 * math.Pi / 180
	return wing(theta - spread), wing(theta + spread), true
}

// Handles draws the selection handle overlay: filled squares with a border,
// at the fixed visual size. Callers use this for on-screen feedback only.
func Handles(dst *image.RGBA, handles []editor.Handle) {
	half := int(editor.HandleDrawSize / 2)
	for _, h := range handles {
		cx, cy := round(h.Pos.X), round(h.Pos.Y)
		r := image.Rect(cx-half, cy-half, cx+half, cy+half)
		draw.Draw(dst, r.Intersect(dst.Bounds()), image.White, image.Point{}, draw.Src)
		drawRectOutline(dst, r, color.Black, 1)
	}
}

func strokeThickness(width float64) int {
	t := int(math.Round(width))
	if t < 1 {
		t = 1
	}
	return t
}

func round(v float64) int { return int(math.Round(v)) }

func toImageRect(r annot.Rect) image.Rectangle {
	return image.Rect(round(r.Min.X), round(r.Min.Y), round(r.Max.X), round(r.Max.Y))
}
