// Package annot defines the vector marks that can be overlaid on a scene
// background: lines, arrows, freehand paths, rectangles, ellipses, triangles
// and text. Each variant is pure data plus geometry queries; rasterisation
// and hit-testing live elsewhere.
package annot

import "sync/atomic"

// Kind tags an annotation variant.
type Kind int

const (
	KindLine Kind = iota
	KindArrow
	KindFreehand
	KindRect
	KindEllipse
	KindTriangle
	KindText
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArrow:
		return "arrow"
	case KindFreehand:
		return "freehand"
	case KindRect:
		return "rect"
	case KindEllipse:
		return "ellipse"
	case KindTriangle:
		return "triangle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Annotation is one mark in a scene. Implementations form a closed set; the
// behaviour per kind is disjoint so there is no shared hierarchy beyond this
// interface.
type Annotation interface {
	ID() uint64
	Kind() Kind
	Style() Style
	SetStyle(Style)
	Selected() bool
	SetSelected(bool)

	// Bounds returns the axis-aligned bounding box of the nominal geometry.
	Bounds() Rect
	// Translate shifts the geometry in place by (dx, dy).
	Translate(dx, dy float64)
	// Clone returns a deep, independent copy under a fresh identity.
	Clone() Annotation
	// CloneAt returns a deep copy re-anchored so the variant's reference
	// point lands at p.
	CloneAt(p Pt) Annotation
}

var idCounter uint64

func nextID() uint64 { return atomic.AddUint64(&idCounter, 1) }

type base struct {
	id       uint64
	style    Style
	selected bool
}

func newBase(style Style) base {
	return base{id: nextID(), style: style.Clamped()}
}

func (b *base) ID() uint64          { return b.id }
func (b *base) Style() Style        { return b.style }
func (b *base) SetStyle(s Style)    { b.style = s.Clamped() }
func (b *base) Selected() bool      { return b.selected }
func (b *base) SetSelected(on bool) { b.selected = on }

// cloneBase copies style only; the copy gets its own identity and starts
// unselected.
func (b *base) cloneBase() base { return newBase(b.style) }
