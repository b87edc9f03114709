package editor

import (
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/markpad/internal/annot"
)

func press(e *Editor, x, y float64) {
	e.Handle(mouse.Event{X: float32(x), Y: float32(y), Button: mouse.ButtonLeft, Direction: mouse.DirPress})
}

func pressShift(e *Editor, x, y float64) {
	e.Handle(mouse.Event{X: float32(x), Y: float32(y), Button: mouse.ButtonLeft, Direction: mouse.DirPress, Modifiers: key.ModShift})
}

func moveTo(e *Editor, x, y float64) {
	e.Handle(mouse.Event{X: float32(x), Y: float32(y), Direction: mouse.DirNone})
}

func release(e *Editor, x, y float64) {
	e.Handle(mouse.Event{X: float32(x), Y: float32(y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
}

func drag(e *Editor, x0, y0, x1, y1 float64) {
	press(e, x0, y0)
	moveTo(e, x1, y1)
	release(e, x1, y1)
}

func TestDrawRectNormalisesDragDirection(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolRect)
	drag(e, 10, 10, 5, 5)

	if e.Scene().Len() != 1 {
		t.Fatalf("expected one annotation, got %d", e.Scene().Len())
	}
	r := e.Scene().Annotations()[0].(*annot.Rectangle)
	if r.R.Min != (annot.Pt{X: 5, Y: 5}) || r.R.Dx() != 5 || r.R.Dy() != 5 {
		t.Fatalf("unexpected rect %+v", r.R)
	}
	if !e.Scene().Dirty() {
		t.Fatal("committing a drawing should mark the scene dirty")
	}
}

func TestDrawTapCommitsDegenerateShape(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolEllipse)
	press(e, 20, 20)
	release(e, 20, 20)

	if e.Scene().Len() != 1 {
		t.Fatalf("expected the degenerate ellipse to commit, got %d annotations", e.Scene().Len())
	}
	el := e.Scene().Annotations()[0].(*annot.Ellipse)
	if el.R.Dx() != 0 || el.R.Dy() != 0 {
		t.Fatalf("expected zero-size geometry, got %+v", el.R)
	}
}

func TestDrawLineLive(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolLine)
	press(e, 0, 0)
	moveTo(e, 30, 40)

	// The provisional shape is already in the scene mid-gesture.
	if e.Scene().Len() != 1 {
		t.Fatal("expected a live preview annotation")
	}
	l := e.Scene().Annotations()[0].(*annot.Line)
	if l.P2 != (annot.Pt{X: 30, Y: 40}) {
		t.Fatalf("preview did not follow the pointer: %+v", l.P2)
	}
	release(e, 30, 40)
	if e.GestureActive() {
		t.Fatal("gesture should end on release")
	}
}

func TestOneGestureAtATime(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolRect)
	press(e, 0, 0)
	press(e, 50, 50) // ignored while the first gesture is in flight
	moveTo(e, 10, 10)
	release(e, 10, 10)

	if e.Scene().Len() != 1 {
		t.Fatalf("second press should be ignored, got %d annotations", e.Scene().Len())
	}
}

func TestCancelDrawRemovesProvisional(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolTriangle)
	press(e, 0, 0)
	moveTo(e, 40, 40)
	e.Cancel()

	if e.Scene().Len() != 0 {
		t.Fatal("cancelled drawing should leave the scene")
	}
	if e.Scene().Dirty() {
		t.Fatal("cancel should restore the clean state")
	}
	if e.GestureActive() {
		t.Fatal("cancel should end the gesture")
	}
}

func TestSetToolCancelsGestureInFlight(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolRect)
	press(e, 0, 0)
	moveTo(e, 20, 20)
	e.SetTool(ToolLine)

	if e.GestureActive() {
		t.Fatal("tool switch should cancel the gesture")
	}
	if e.Scene().Len() != 0 {
		t.Fatal("provisional rect should be gone after the switch")
	}
}

func TestMoveSelectionAndCancelRestores(t *testing.T) {
	s := NewScene()
	l := annot.NewLine(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 10, Y: 0})
	s.add(l)
	e := New(s)

	press(e, 5, 0)
	moveTo(e, 25, 30)
	if l.P1 != (annot.Pt{X: 20, Y: 30}) || l.P2 != (annot.Pt{X: 30, Y: 30}) {
		t.Fatalf("move did not translate the selection: %+v %+v", l.P1, l.P2)
	}
	if !s.Dirty() {
		t.Fatal("moving should mark the scene dirty")
	}

	e.Cancel()
	if l.P1 != (annot.Pt{X: 0, Y: 0}) || l.P2 != (annot.Pt{X: 10, Y: 0}) {
		t.Fatalf("cancel did not restore geometry: %+v %+v", l.P1, l.P2)
	}
	if s.Dirty() {
		t.Fatal("cancel should restore the pre-gesture dirty state")
	}
	if !l.Selected() {
		t.Fatal("cancel should not deselect")
	}
}

func TestPressOnEmptyClearsSelection(t *testing.T) {
	s := NewScene()
	r := annot.NewRectangle(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 50, Y: 50})
	s.add(r)
	s.Select(r, false)
	e := New(s)

	var emptyAt *annot.Pt
	e.OnEmptyPress = func(p annot.Pt) { emptyAt = &p }
	press(e, 500, 500)
	release(e, 500, 500)

	if len(s.Selected()) != 0 {
		t.Fatal("press on empty space should clear the selection")
	}
	if emptyAt == nil {
		t.Fatal("OnEmptyPress should fire")
	}
}

func TestShiftClickExtendsSelection(t *testing.T) {
	s := NewScene()
	a := annot.NewRectangle(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 50, Y: 50})
	b := annot.NewRectangle(s.Style(), annot.Pt{X: 200, Y: 200}, annot.Pt{X: 260, Y: 260})
	s.add(a)
	s.add(b)
	e := New(s)

	press(e, 0, 25)
	release(e, 0, 25)
	pressShift(e, 200, 230)
	release(e, 200, 230)

	if got := len(s.Selected()); got != 2 {
		t.Fatalf("expected both selected, got %d", got)
	}
}

func TestResizeCornerRect(t *testing.T) {
	s := NewScene()
	r := annot.NewRectangle(s.Style(), annot.Pt{X: 10, Y: 10}, annot.Pt{X: 50, Y: 50})
	s.add(r)
	s.Select(r, false)
	e := New(s)

	// Single handle at the bounding-rect Max.
	press(e, 50, 50)
	moveTo(e, 110, 90)
	release(e, 110, 90)

	if r.R.Min != (annot.Pt{X: 10, Y: 10}) || r.R.Max != (annot.Pt{X: 110, Y: 90}) {
		t.Fatalf("unexpected rect after resize: %+v", r.R)
	}
}

func TestResizeCornerCrossesAnchor(t *testing.T) {
	s := NewScene()
	r := annot.NewRectangle(s.Style(), annot.Pt{X: 10, Y: 10}, annot.Pt{X: 50, Y: 50})
	s.add(r)
	s.Select(r, false)
	e := New(s)

	press(e, 50, 50)
	moveTo(e, 2, 4)
	release(e, 2, 4)

	// Dragging past the fixed corner re-normalises instead of inverting.
	if r.R.Min != (annot.Pt{X: 2, Y: 4}) || r.R.Max != (annot.Pt{X: 10, Y: 10}) {
		t.Fatalf("unexpected rect after crossing the anchor: %+v", r.R)
	}
}

func TestHandleGrabUsesManhattanRadius(t *testing.T) {
	s := NewScene()
	l := annot.NewLine(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 100, Y: 100})
	s.add(l)
	s.Select(l, false)
	e := New(s)

	// Manhattan distance exactly 30 from P2 grabs the handle.
	press(e, 120, 110)
	moveTo(e, 200, 100)
	release(e, 200, 100)
	if l.P2 != (annot.Pt{X: 200, Y: 100}) {
		t.Fatalf("expected endpoint resize, got %+v", l.P2)
	}

	// One unit beyond the radius misses every handle and the body, so the
	// press lands on empty space and clears the selection.
	s2 := NewScene()
	l2 := annot.NewLine(s2.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 100, Y: 100})
	s2.add(l2)
	s2.Select(l2, false)
	e2 := New(s2)
	press(e2, 121, 110)
	release(e2, 121, 110)
	if len(s2.Selected()) != 0 {
		t.Fatal("press outside the grab radius should fall through to empty space")
	}
}

func TestResizeFreehandAffine(t *testing.T) {
	s := NewScene()
	f := annot.NewFreehand(s.Style(), annot.Pt{X: 0, Y: 0})
	f.Append(annot.Pt{X: 5, Y: 5})
	f.Append(annot.Pt{X: 10, Y: 0})
	s.add(f)
	s.Select(f, false)
	e := New(s)

	// Handle sits at the bounding-box Max (10, 5); drag it to double both
	// dimensions.
	press(e, 10, 5)
	moveTo(e, 20, 10)
	release(e, 20, 10)

	want := []annot.Pt{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}
	for i, p := range f.Points {
		if p != want[i] {
			t.Fatalf("point %d: got %+v want %+v", i, p, want[i])
		}
	}
	b := f.Bounds()
	if b.Min != (annot.Pt{X: 0, Y: 0}) || b.Max != (annot.Pt{X: 20, Y: 10}) {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestResizeCancelRestoresFreehand(t *testing.T) {
	s := NewScene()
	f := annot.NewFreehand(s.Style(), annot.Pt{X: 0, Y: 0})
	f.Append(annot.Pt{X: 5, Y: 5})
	f.Append(annot.Pt{X: 10, Y: 0})
	s.add(f)
	s.Select(f, false)
	e := New(s)

	press(e, 10, 5)
	moveTo(e, 40, 20)
	e.Cancel()

	want := []annot.Pt{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}
	for i, p := range f.Points {
		if p != want[i] {
			t.Fatalf("point %d not restored: got %+v want %+v", i, p, want[i])
		}
	}
	if s.Dirty() {
		t.Fatal("cancel should restore the clean state")
	}
}

func TestResizeTextScaleFloor(t *testing.T) {
	s := NewScene()
	tx := annot.NewText(s.Style(), "hi", annot.Pt{X: 100, Y: 100})
	s.add(tx)
	s.Select(tx, false)
	e := New(s)

	h := tx.Bounds().Max
	press(e, h.X, h.Y)
	// Collapse the drag onto the anchor; the scale floors instead of
	// reaching zero or inverting.
	moveTo(e, 100, 100)
	release(e, 100, 100)

	if tx.Scale != annot.MinTextScale {
		t.Fatalf("expected scale floor %v, got %v", annot.MinTextScale, tx.Scale)
	}
}

func TestTextToolUsesProvider(t *testing.T) {
	e := New(NewScene())
	e.SetTool(ToolText)

	// No provider: the tap is inert.
	press(e, 10, 10)
	release(e, 10, 10)
	if e.Scene().Len() != 0 {
		t.Fatal("text tool without a provider should create nothing")
	}

	e.TextFn = func(p annot.Pt) (string, bool) { return "note", true }
	press(e, 10, 20)
	release(e, 10, 20)
	if e.Scene().Len() != 1 {
		t.Fatal("expected one text annotation")
	}
	tx := e.Scene().Annotations()[0].(*annot.Text)
	if tx.Value != "note" || tx.Anchor != (annot.Pt{X: 10, Y: 20}) {
		t.Fatalf("unexpected text %+v", tx)
	}
	if !tx.Selected() {
		t.Fatal("new text should be selected")
	}
	if !e.Scene().Dirty() {
		t.Fatal("text creation should mark the scene dirty")
	}

	// Cancelled entry creates nothing.
	e.TextFn = func(p annot.Pt) (string, bool) { return "ignored", false }
	press(e, 40, 40)
	release(e, 40, 40)
	if e.Scene().Len() != 1 {
		t.Fatal("cancelled entry should not add an annotation")
	}
}

func TestCopyPasteReanchorsLine(t *testing.T) {
	s := NewScene()
	l := annot.NewLine(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 10, Y: 0})
	s.add(l)
	s.Select(l, false)
	e := New(s)

	e.CopySelection()
	if e.Clipboard().Empty() {
		t.Fatal("copy should fill the clipboard")
	}

	pasted := e.Paste(annot.Pt{X: 50, Y: 50})
	pl, ok := pasted.(*annot.Line)
	if !ok {
		t.Fatalf("expected a line, got %T", pasted)
	}
	if pl.P1 != (annot.Pt{X: 50, Y: 50}) || pl.P2 != (annot.Pt{X: 60, Y: 50}) {
		t.Fatalf("unexpected paste geometry %+v %+v", pl.P1, pl.P2)
	}
	if pl.ID() == l.ID() {
		t.Fatal("paste should mint a new identity")
	}

	sel := s.Selected()
	if len(sel) != 1 || sel[0].ID() != pl.ID() {
		t.Fatal("paste should become the sole selection")
	}
	if !s.Dirty() {
		t.Fatal("paste should mark the scene dirty")
	}
}

func TestPasteSurvivesSourceDeletion(t *testing.T) {
	s := NewScene()
	r := annot.NewRectangle(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 30, Y: 20})
	s.add(r)
	s.Select(r, false)
	e := New(s)

	e.CopySelection()
	if got := e.DeleteSelected(); got != 1 {
		t.Fatalf("expected one deletion, got %d", got)
	}

	pasted := e.Paste(annot.Pt{X: 5, Y: 5})
	pr := pasted.(*annot.Rectangle)
	if pr.R.Min != (annot.Pt{X: 5, Y: 5}) || pr.R.Dx() != 30 || pr.R.Dy() != 20 {
		t.Fatalf("unexpected paste geometry %+v", pr.R)
	}

	// Repeated paste from the same snapshot.
	second := e.Paste(annot.Pt{X: 100, Y: 100}).(*annot.Rectangle)
	if second.ID() == pr.ID() {
		t.Fatal("each paste should mint a new identity")
	}
	if s.Len() != 2 {
		t.Fatalf("expected two pastes in the scene, got %d", s.Len())
	}
}

func TestCopyWithoutSelectionIsNoop(t *testing.T) {
	e := New(NewScene())
	e.CopySelection()
	if !e.Clipboard().Empty() {
		t.Fatal("copy with no selection should leave the clipboard empty")
	}
	if e.Paste(annot.Pt{X: 1, Y: 1}) != nil {
		t.Fatal("paste from an empty clipboard should return nil")
	}
	if e.Scene().Dirty() {
		t.Fatal("no-op paste should not dirty the scene")
	}
}

func TestDeleteSelectedCounts(t *testing.T) {
	s := NewScene()
	a := annot.NewLine(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 1, Y: 1})
	b := annot.NewLine(s.Style(), annot.Pt{X: 2, Y: 2}, annot.Pt{X: 3, Y: 3})
	c := annot.NewLine(s.Style(), annot.Pt{X: 4, Y: 4}, annot.Pt{X: 5, Y: 5})
	s.add(a)
	s.add(b)
	s.add(c)
	s.Select(a, false)
	s.Select(c, true)
	e := New(s)

	if got := e.DeleteSelected(); got != 2 {
		t.Fatalf("expected 2 removed, got %d", got)
	}
	if s.Len() != 1 || s.Annotations()[0].ID() != b.ID() {
		t.Fatal("unexpected survivor set")
	}
	if !s.Dirty() {
		t.Fatal("deletion should mark the scene dirty")
	}

	if got := e.DeleteSelected(); got != 0 {
		t.Fatalf("expected no-op, got %d", got)
	}
}

func TestDirtyLifecycle(t *testing.T) {
	s := NewScene()
	if s.Dirty() {
		t.Fatal("new scene should start clean")
	}
	e := New(s)
	e.SetTool(ToolRect)
	drag(e, 0, 0, 10, 10)
	if !s.Dirty() {
		t.Fatal("drawing should dirty the scene")
	}
	s.MarkExported()
	if s.Dirty() {
		t.Fatal("export should clear the dirty flag")
	}

	// Style change with a selection dirties again.
	s.Select(s.Annotations()[0], false)
	s.ApplyWidth(8)
	if !s.Dirty() {
		t.Fatal("restyling a selection should dirty the scene")
	}

	// Replacing the background resets everything.
	s.SetBackground(nil)
	if s.Dirty() || s.Len() != 0 {
		t.Fatal("background replacement should clear annotations and the flag")
	}
}

func TestApplyWidthInputRejectsGarbage(t *testing.T) {
	s := NewScene()
	if err := s.ApplyWidthInput("abc"); err == nil {
		t.Fatal("expected error for non-numeric width")
	}
	if s.Dirty() {
		t.Fatal("rejected input should not dirty the scene")
	}
	if err := s.ApplyWidthInput(" 3.5 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Style().Width != 3.5 {
		t.Fatalf("unexpected width %v", s.Style().Width)
	}
}

func TestHoverCursorHints(t *testing.T) {
	s := NewScene()
	sel := annot.NewRectangle(s.Style(), annot.Pt{X: 0, Y: 0}, annot.Pt{X: 100, Y: 100})
	other := annot.NewRectangle(s.Style(), annot.Pt{X: 300, Y: 300}, annot.Pt{X: 400, Y: 400})
	s.add(sel)
	s.add(other)
	s.Select(sel, false)
	e := New(s)

	if got := e.Hover(annot.Pt{X: 100, Y: 100}); got != CursorHandle {
		t.Fatalf("over a handle: got %v", got)
	}
	if got := e.Hover(annot.Pt{X: 50, Y: 0}); got != CursorMove {
		t.Fatalf("over the selected body: got %v", got)
	}
	if got := e.Hover(annot.Pt{X: 350, Y: 300}); got != CursorPick {
		t.Fatalf("over an unselected body: got %v", got)
	}
	if got := e.Hover(annot.Pt{X: 600, Y: 600}); got != CursorIdle {
		t.Fatalf("over empty space: got %v", got)
	}
}
