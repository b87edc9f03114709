// Package hittest answers whether a pointer position is within interactive
// range of an annotation. Every variant reduces to one or more outline
// polylines which are widened symmetrically; the widening has a floor so thin
// strokes stay easy to grab.
package hittest

import (
	"math"

	"github.com/example/markpad/internal/annot"
)

// RegionFloor is the minimum widening applied to an outline, independent of
// the visual stroke width. It is deliberately unrelated to the handle draw
// size and the handle grab tolerance.
const RegionFloor = 30.0

// Region is an outline expanded into a hit area.
type Region struct {
	paths     [][]annot.Pt
	halfWidth float64
}

// Widen expands the outline paths into a region covering width units
// symmetrically around each path.
func Widen(paths [][]annot.Pt, width float64) Region {
	return Region{paths: paths, halfWidth: width / 2}
}

// Contains reports whether p falls inside the widened region.
func (r Region) Contains(p annot.Pt) bool {
	for _, path := range r.paths {
		if len(path) == 1 {
			if dist(p, path[0]) <= r.halfWidth {
				return true
			}
			continue
		}
		for i := 0; i+1 < len(path); i++ {
			if distToSegment(p, path[i], path[i+1]) <= r.halfWidth {
				return true
			}
		}
	}
	return false
}

// Outline extracts the nominal centerline or outline of an annotation as
// polylines in scene coordinates.
func Outline(a annot.Annotation) [][]annot.Pt {
	switch v := a.(type) {
	case *annot.Line:
		return [][]annot.Pt{{v.P1, v.P2}}
	case *annot.Arrow:
		return [][]annot.Pt{{v.P1, v.P2}}
	case *annot.Freehand:
		pts := make([]annot.Pt, len(v.Points))
		copy(pts, v.Points)
		return [][]annot.Pt{pts}
	case *annot.Rectangle:
		return [][]annot.Pt{rectOutline(v.R)}
	case *annot.Ellipse:
		return [][]annot.Pt{ellipseOutline(v.R)}
	case *annot.Triangle:
		vs := v.Vertices()
		return [][]annot.Pt{{vs[0], vs[1], vs[2], vs[0]}}
	case *annot.Text:
		return [][]annot.Pt{rectOutline(v.Bounds())}
	default:
		return nil
	}
}

// HitRegion builds the widened region for an annotation, applying the floor.
func HitRegion(a annot.Annotation) Region {
	return Widen(Outline(a), math.Max(a.Style().Width, RegionFloor))
}

// Contains reports whether p is within interactive range of a's body.
func Contains(a annot.Annotation, p annot.Pt) bool {
	return HitRegion(a).Contains(p)
}

func rectOutline(r annot.Rect) []annot.Pt {
	return []annot.Pt{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
		r.Min,
	}
}

// ellipseOutline samples the ellipse inscribed in r. The step count follows
// the circumference so large ellipses stay smooth and small ones stay cheap.
func ellipseOutline(r annot.Rect) []annot.Pt {
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	rx := r.Dx() / 2
	ry := r.Dy() / 2
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	}
	pts := make([]annot.Pt, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		pts = append(pts, annot.Pt{
			X: cx + math.Cos(angle)*rx,
			Y: cy + math.Sin(angle)*ry,
		})
	}
	return pts
}

func dist(a, b annot.Pt) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func distToSegment(p, a, b annot.Pt) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dist(p, annot.Pt{X: a.X + t*dx, Y: a.Y + t*dy})
}
