package annot

// Line is a straight segment between two endpoints.
type Line struct {
	base
	P1, P2 Pt
}

// NewLine creates a line annotation. A freshly started drag passes the same
// point twice; the degenerate segment is valid geometry.
func NewLine(style Style, p1, p2 Pt) *Line {
	return &Line{base: newBase(style), P1: p1, P2: p2}
}

func (l *Line) Kind() Kind   { return KindLine }
func (l *Line) Bounds() Rect { return boundsOf([]Pt{l.P1, l.P2}) }

func (l *Line) Translate(dx, dy float64) {
	l.P1 = l.P1.Add(dx, dy)
	l.P2 = l.P2.Add(dx, dy)
}

func (l *Line) Clone() Annotation {
	return &Line{base: l.cloneBase(), P1: l.P1, P2: l.P2}
}

// CloneAt preserves the p1→p2 delta and places p1 at p.
func (l *Line) CloneAt(p Pt) Annotation {
	d := l.P2.Sub(l.P1)
	return &Line{base: l.cloneBase(), P1: p, P2: p.Add(d.X, d.Y)}
}

// Arrow is a segment rendered with an arrowhead at P2. The head is a paint
// augmentation only; the geometry is the shaft.
type Arrow struct {
	base
	P1, P2 Pt
}

// NewArrow creates an arrow annotation.
func NewArrow(style Style, p1, p2 Pt) *Arrow {
	return &Arrow{base: newBase(style), P1: p1, P2: p2}
}

func (a *Arrow) Kind() Kind   { return KindArrow }
func (a *Arrow) Bounds() Rect { return boundsOf([]Pt{a.P1, a.P2}) }

func (a *Arrow) Translate(dx, dy float64) {
	a.P1 = a.P1.Add(dx, dy)
	a.P2 = a.P2.Add(dx, dy)
}

func (a *Arrow) Clone() Annotation {
	return &Arrow{base: a.cloneBase(), P1: a.P1, P2: a.P2}
}

func (a *Arrow) CloneAt(p Pt) Annotation {
	d := a.P2.Sub(a.P1)
	return &Arrow{base: a.cloneBase(), P1: p, P2: p.Add(d.X, d.Y)}
}

// Freehand is an ordered polyline, append-only while it is being drawn.
type Freehand struct {
	base
	Points []Pt
}

// NewFreehand starts a freehand path at p.
func NewFreehand(style Style, p Pt) *Freehand {
	return &Freehand{base: newBase(style), Points: []Pt{p}}
}

func (f *Freehand) Kind() Kind { return KindFreehand }

// Append extends the path with the next sampled pointer position.
func (f *Freehand) Append(p Pt) { f.Points = append(f.Points, p) }

func (f *Freehand) Bounds() Rect { return boundsOf(f.Points) }

func (f *Freehand) Translate(dx, dy float64) {
	for i := range f.Points {
		f.Points[i] = f.Points[i].Add(dx, dy)
	}
}

func (f *Freehand) Clone() Annotation {
	pts := make([]Pt, len(f.Points))
	copy(pts, f.Points)
	return &Freehand{base: f.cloneBase(), Points: pts}
}

// CloneAt translates the whole path so its bounding-box top-left lands at p.
func (f *Freehand) CloneAt(p Pt) Annotation {
	c := f.Clone().(*Freehand)
	min := c.Bounds().Min
	c.Translate(p.X-min.X, p.Y-min.Y)
	return c
}

// Rectangle is an axis-aligned outlined box.
type Rectangle struct {
	base
	R Rect
}

// NewRectangle creates a rectangle; the corners are normalised so width and
// height are never negative.
func NewRectangle(style Style, a, b Pt) *Rectangle {
	return &Rectangle{base: newBase(style), R: RectFromCorners(a, b)}
}

func (r *Rectangle) Kind() Kind   { return KindRect }
func (r *Rectangle) Bounds() Rect { return r.R }

// SetCorners replaces the geometry from a drag pair, normalising order.
func (r *Rectangle) SetCorners(a, b Pt) { r.R = RectFromCorners(a, b) }

func (r *Rectangle) Translate(dx, dy float64) { r.R = r.R.Translated(dx, dy) }

func (r *Rectangle) Clone() Annotation {
	return &Rectangle{base: r.cloneBase(), R: r.R}
}

// CloneAt keeps the size and places the origin at p.
func (r *Rectangle) CloneAt(p Pt) Annotation {
	c := r.Clone().(*Rectangle)
	c.R = c.R.Translated(p.X-c.R.Min.X, p.Y-c.R.Min.Y)
	return c
}

// Ellipse is inscribed in its bounding rectangle.
type Ellipse struct {
	base
	R Rect
}

// NewEllipse creates an ellipse from a drag pair.
func NewEllipse(style Style, a, b Pt) *Ellipse {
	return &Ellipse{base: newBase(style), R: RectFromCorners(a, b)}
}

func (e *Ellipse) Kind() Kind   { return KindEllipse }
func (e *Ellipse) Bounds() Rect { return e.R }

func (e *Ellipse) SetCorners(a, b Pt) { e.R = RectFromCorners(a, b) }

func (e *Ellipse) Translate(dx, dy float64) { e.R = e.R.Translated(dx, dy) }

func (e *Ellipse) Clone() Annotation {
	return &Ellipse{base: e.cloneBase(), R: e.R}
}

func (e *Ellipse) CloneAt(p Pt) Annotation {
	c := e.Clone().(*Ellipse)
	c.R = c.R.Translated(p.X-c.R.Min.X, p.Y-c.R.Min.Y)
	return c
}

// Triangle stores only its bounding rectangle; the vertices are always
// re-derived from it.
type Triangle struct {
	base
	R Rect
}

// NewTriangle creates a triangle from a drag pair.
func NewTriangle(style Style, a, b Pt) *Triangle {
	return &Triangle{base: newBase(style), R: RectFromCorners(a, b)}
}

func (t *Triangle) Kind() Kind   { return KindTriangle }
func (t *Triangle) Bounds() Rect { return t.R }

func (t *Triangle) SetCorners(a, b Pt) { t.R = RectFromCorners(a, b) }

// Vertices derives the apex at the top-centre and the base corners at the
// bottom of the bounding rectangle. Degenerate rectangles yield collapsed but
// well-defined vertices.
func (t *Triangle) Vertices() [3]Pt {
	return [3]Pt{
		{(t.R.Min.X + t.R.Max.X) / 2, t.R.Min.Y},
		{t.R.Min.X, t.R.Max.Y},
		{t.R.Max.X, t.R.Max.Y},
	}
}

func (t *Triangle) Translate(dx, dy float64) { t.R = t.R.Translated(dx, dy) }

func (t *Triangle) Clone() Annotation {
	return &Triangle{base: t.cloneBase(), R: t.R}
}

// CloneAt translates the bounding box so its top-left lands at p.
func (t *Triangle) CloneAt(p Pt) Annotation {
	c := t.Clone().(*Triangle)
	c.R = c.R.Translated(p.X-c.R.Min.X, p.Y-c.R.Min.Y)
	return c
}
