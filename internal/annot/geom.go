package annot

import "math"

// Pt is a point in scene coordinates.
type Pt struct {
	X, Y float64
}

// Add returns p shifted by (dx, dy).
func (p Pt) Add(dx, dy float64) Pt { return Pt{p.X + dx, p.Y + dy} }

// Sub returns the component-wise difference p - q.
func (p Pt) Sub(q Pt) Pt { return Pt{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle with Min at the top-left. A Rect built
// through RectFromCorners always has non-negative width and height.
type Rect struct {
	Min, Max Pt
}

// RectFromCorners normalises two drag corners into a Rect, independent of
// drag direction.
func RectFromCorners(a, b Pt) Rect {
	return Rect{
		Min: Pt{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Pt{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// Dx returns the rectangle width.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the rectangle height.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Translated returns the rectangle shifted by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{Min: r.Min.Add(dx, dy), Max: r.Max.Add(dx, dy)}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Pt{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Pt{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

func boundsOf(points []Pt) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}
