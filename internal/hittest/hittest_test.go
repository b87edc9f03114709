package hittest

import (
	"testing"

	"github.com/example/markpad/internal/annot"
)

func TestContainsLineWithinFloor(t *testing.T) {
	l := annot.NewLine(annot.Style{Width: 0.1}, annot.Pt{X: 0, Y: 0}, annot.Pt{X: 100, Y: 0})

	// The floor guarantees a 15-unit half-width either side of the
	// centerline regardless of the visual stroke.
	if !Contains(l, annot.Pt{X: 50, Y: 14}) {
		t.Fatal("expected hit inside the floored band")
	}
	if !Contains(l, annot.Pt{X: 50, Y: 15}) {
		t.Fatal("band edge should count as a hit")
	}
	if Contains(l, annot.Pt{X: 50, Y: 16}) {
		t.Fatal("expected miss just outside the band")
	}
}

func TestContainsWideStrokeBeatsFloor(t *testing.T) {
	l := annot.NewLine(annot.Style{Width: 60}, annot.Pt{X: 0, Y: 0}, annot.Pt{X: 100, Y: 0})
	if !Contains(l, annot.Pt{X: 50, Y: 29}) {
		t.Fatal("expected hit inside stroke half-width")
	}
	if Contains(l, annot.Pt{X: 50, Y: 31}) {
		t.Fatal("expected miss beyond stroke half-width")
	}
}

func TestContainsDegenerateLine(t *testing.T) {
	l := annot.NewLine(annot.Style{Width: 2}, annot.Pt{X: 40, Y: 40}, annot.Pt{X: 40, Y: 40})
	if !Contains(l, annot.Pt{X: 48, Y: 40}) {
		t.Fatal("expected hit near a degenerate segment")
	}
	if Contains(l, annot.Pt{X: 40, Y: 80}) {
		t.Fatal("expected miss far from a degenerate segment")
	}
}

func TestContainsRectOutlineOnly(t *testing.T) {
	r := annot.NewRectangle(annot.Style{Width: 2}, annot.Pt{X: 0, Y: 0}, annot.Pt{X: 200, Y: 200})
	if !Contains(r, annot.Pt{X: 100, Y: 5}) {
		t.Fatal("expected hit near the top edge")
	}
	// Interior far from every edge is not part of the region.
	if Contains(r, annot.Pt{X: 100, Y: 100}) {
		t.Fatal("expected miss in the hollow interior")
	}
}

func TestContainsEllipseOutlineOnly(t *testing.T) {
	e := annot.NewEllipse(annot.Style{Width: 2}, annot.Pt{X: 0, Y: 0}, annot.Pt{X: 200, Y: 100})
	// On the curve at the rightmost point.
	if !Contains(e, annot.Pt{X: 200, Y: 50}) {
		t.Fatal("expected hit on the ellipse curve")
	}
	if Contains(e, annot.Pt{X: 100, Y: 50}) {
		t.Fatal("expected miss at the ellipse center")
	}
}

func TestContainsTriangleEdges(t *testing.T) {
	tr := annot.NewTriangle(annot.Style{Width: 2}, annot.Pt{X: 0, Y: 0}, annot.Pt{X: 200, Y: 200})
	// Apex is at (100, 0); base runs along y=200.
	if !Contains(tr, annot.Pt{X: 100, Y: 10}) {
		t.Fatal("expected hit near the apex")
	}
	if !Contains(tr, annot.Pt{X: 100, Y: 195}) {
		t.Fatal("expected hit near the base edge")
	}
	if Contains(tr, annot.Pt{X: 100, Y: 110}) {
		t.Fatal("expected miss inside the triangle, away from its edges")
	}
}

func TestContainsFreehandFollowsPath(t *testing.T) {
	f := annot.NewFreehand(annot.Style{Width: 1}, annot.Pt{X: 0, Y: 0})
	f.Append(annot.Pt{X: 100, Y: 0})
	f.Append(annot.Pt{X: 100, Y: 100})
	if !Contains(f, annot.Pt{X: 100, Y: 50}) {
		t.Fatal("expected hit along the second segment")
	}
	if Contains(f, annot.Pt{X: 0, Y: 100}) {
		t.Fatal("expected miss off the path")
	}
}

func TestContainsTextUsesBoundsOutline(t *testing.T) {
	tx := annot.NewText(annot.Style{Width: 4}, "hello", annot.Pt{X: 100, Y: 100})
	b := tx.Bounds()
	on := annot.Pt{X: (b.Min.X + b.Max.X) / 2, Y: b.Min.Y}
	if !Contains(tx, on) {
		t.Fatal("expected hit on the text box outline")
	}
	far := annot.Pt{X: b.Max.X + RegionFloor, Y: b.Max.Y + RegionFloor}
	if Contains(tx, far) {
		t.Fatal("expected miss well outside the text box")
	}
}

func TestWidenSinglePoint(t *testing.T) {
	r := Widen([][]annot.Pt{{{X: 10, Y: 10}}}, 10)
	if !r.Contains(annot.Pt{X: 14, Y: 10}) {
		t.Fatal("expected hit within the point radius")
	}
	if r.Contains(annot.Pt{X: 16, Y: 10}) {
		t.Fatal("expected miss outside the point radius")
	}
}
