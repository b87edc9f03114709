package editor

import (
	"math"

	"github.com/example/markpad/internal/annot"
)

// HandleDrawSize is the visual edge length of a resize handle.
//
// HandleGrabRadius is the Manhattan tolerance for grabbing one. The two are
// intentionally independent: a bigger grab zone eases pointer precision
// without cluttering the canvas.
const (
	HandleDrawSize   = 12.0
	HandleGrabRadius = 30.0
)

// ResizeMode identifies how dragging a handle transforms its owner.
type ResizeMode int

const (
	// ResizeCorner drags the bounding-rect bottom-right corner against the
	// fixed top-left. Rectangles and ellipses take the new rect directly;
	// triangles re-derive their vertices from it.
	ResizeCorner ResizeMode = iota
	// ResizeAffine scales a freehand path with independent x/y factors
	// anchored at the bounding-box top-left.
	ResizeAffine
	// ResizeP1 and ResizeP2 move one endpoint of a line or arrow.
	ResizeP1
	ResizeP2
	// ResizeUniform scales a text annotation by a single factor.
	ResizeUniform
)

// Handle is a grabbable control point on a selected annotation.
type Handle struct {
	Owner annot.Annotation
	Pos   annot.Pt
	Mode  ResizeMode
}

// Handles computes the handle set for the given annotations. Callers pass the
// current selection; unselected annotations expose no handles.
func Handles(selected []annot.Annotation) []Handle {
	var out []Handle
	for _, a := range selected {
		out = append(out, handlesFor(a)...)
	}
	return out
}

func handlesFor(a annot.Annotation) []Handle {
	switch v := a.(type) {
	case *annot.Line:
		return []Handle{
			{Owner: v, Pos: v.P1, Mode: ResizeP1},
			{Owner: v, Pos: v.P2, Mode: ResizeP2},
		}
	case *annot.Arrow:
		return []Handle{
			{Owner: v, Pos: v.P1, Mode: ResizeP1},
			{Owner: v, Pos: v.P2, Mode: ResizeP2},
		}
	case *annot.Freehand:
		return []Handle{{Owner: v, Pos: v.Bounds().Max, Mode: ResizeAffine}}
	case *annot.Rectangle:
		return []Handle{{Owner: v, Pos: v.R.Max, Mode: ResizeCorner}}
	case *annot.Ellipse:
		return []Handle{{Owner: v, Pos: v.R.Max, Mode: ResizeCorner}}
	case *annot.Triangle:
		return []Handle{{Owner: v, Pos: v.R.Max, Mode: ResizeCorner}}
	case *annot.Text:
		return []Handle{{Owner: v, Pos: v.Bounds().Max, Mode: ResizeUniform}}
	default:
		return nil
	}
}

// HandleAt finds the handle within grab range of p, testing topmost
// annotations first so stacked handles resolve the way hit-testing does.
func HandleAt(selected []annot.Annotation, p annot.Pt) (Handle, bool) {
	for i := len(selected) - 1; i >= 0; i-- {
		for _, h := range handlesFor(selected[i]) {
			if manhattan(h.Pos, p) <= HandleGrabRadius {
				return h, true
			}
		}
	}
	return Handle{}, false
}

func manhattan(a, b annot.Pt) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// handleGrab carries the anchor data a resize mode needs, recorded once at
// grab time, plus the geometry snapshot used when the gesture is cancelled.
type handleGrab struct {
	handle Handle

	anchor     annot.Pt   // fixed corner (corner/affine) or text anchor position
	initRect   annot.Rect // freehand bounding box at grab time
	initPoints []annot.Pt // freehand path at grab time
	initScale  float64    // text scale at grab time
	initDX     float64    // grab-point offset from the text anchor
	initDY     float64

	origR      annot.Rect
	origP1     annot.Pt
	origP2     annot.Pt
	origPoints []annot.Pt
	origScale  float64
}

func beginGrab(h Handle, grabAt annot.Pt) *handleGrab {
	g := &handleGrab{handle: h}
	switch v := h.Owner.(type) {
	case *annot.Line:
		g.origP1, g.origP2 = v.P1, v.P2
	case *annot.Arrow:
		g.origP1, g.origP2 = v.P1, v.P2
	case *annot.Rectangle:
		g.anchor = v.R.Min
		g.origR = v.R
	case *annot.Ellipse:
		g.anchor = v.R.Min
		g.origR = v.R
	case *annot.Triangle:
		g.anchor = v.R.Min
		g.origR = v.R
	case *annot.Freehand:
		g.initRect = v.Bounds()
		g.anchor = g.initRect.Min
		g.initPoints = make([]annot.Pt, len(v.Points))
		copy(g.initPoints, v.Points)
		g.origPoints = make([]annot.Pt, len(v.Points))
		copy(g.origPoints, v.Points)
	case *annot.Text:
		g.anchor = v.Anchor
		g.initScale = v.Scale
		g.initDX = grabAt.X - v.Anchor.X
		g.initDY = grabAt.Y - v.Anchor.Y
		g.origScale = v.Scale
	}
	return g
}

// apply mutates the owner's geometry from the current pointer position. It
// runs on every pointer move while the resize gesture is active.
func (g *handleGrab) apply(p annot.Pt) {
	switch g.handle.Mode {
	case ResizeP1:
		switch v := g.handle.Owner.(type) {
		case *annot.Line:
			v.P1 = p
		case *annot.Arrow:
			v.P1 = p
		}
	case ResizeP2:
		switch v := g.handle.Owner.(type) {
		case *annot.Line:
			v.P2 = p
		case *annot.Arrow:
			v.P2 = p
		}
	case ResizeCorner:
		switch v := g.handle.Owner.(type) {
		case *annot.Rectangle:
			v.SetCorners(g.anchor, p)
		case *annot.Ellipse:
			v.SetCorners(g.anchor, p)
		case *annot.Triangle:
			v.SetCorners(g.anchor, p)
		}
	case ResizeAffine:
		v, ok := g.handle.Owner.(*annot.Freehand)
		if !ok {
			return
		}
		newRect := annot.RectFromCorners(g.anchor, p)
		// Clamp divisor dimensions so a degenerate initial box cannot divide
		// by zero.
		sx := newRect.Dx() / math.Max(1, g.initRect.Dx())
		sy := newRect.Dy() / math.Max(1, g.initRect.Dy())
		for i, q := range g.initPoints {
			v.Points[i] = annot.Pt{
				X: g.anchor.X + (q.X-g.anchor.X)*sx,
				Y: g.anchor.Y + (q.Y-g.anchor.Y)*sy,
			}
		}
	case ResizeUniform:
		v, ok := g.handle.Owner.(*annot.Text)
		if !ok {
			return
		}
		factor := math.Max(ratio(p.X-g.anchor.X, g.initDX), ratio(p.Y-g.anchor.Y, g.initDY))
		v.SetScale(g.initScale * factor)
	}
}

// ratio guards against a zero initial delta; the other axis then decides the
// factor on its own.
func ratio(delta, initial float64) float64 {
	if initial == 0 {
		return 0
	}
	return delta / initial
}

// restore puts the owner's geometry back to its grab-time state.
func (g *handleGrab) restore() {
	switch v := g.handle.Owner.(type) {
	case *annot.Line:
		v.P1, v.P2 = g.origP1, g.origP2
	case *annot.Arrow:
		v.P1, v.P2 = g.origP1, g.origP2
	case *annot.Rectangle:
		v.R = g.origR
	case *annot.Ellipse:
		v.R = g.origR
	case *annot.Triangle:
		v.R = g.origR
	case *annot.Freehand:
		copy(v.Points, g.origPoints)
	case *annot.Text:
		v.Scale = g.origScale
	}
}
