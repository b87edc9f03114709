// Package editor implements the interactive annotation engine: the scene
// aggregate, the gesture state machine that turns pointer events into
// annotation creation/move/resize, the selection handle protocol and the
// clipboard slot. Everything runs synchronously on the event-delivering
// goroutine; nothing here takes locks.
package editor

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/markpad/internal/annot"
)

// Tool is the active drawing mode. It is external configuration; the editor
// only manages the gesture within whichever tool is set.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolArrow
	ToolFreehand
	ToolRect
	ToolEllipse
	ToolTriangle
	ToolText
)

// Cursor is a hover feedback hint for the UI.
type Cursor int

const (
	// CursorIdle means the pointer is over empty space.
	CursorIdle Cursor = iota
	// CursorHandle means a resize handle is within grab range.
	CursorHandle
	// CursorMove means the pointer is over an already-selected annotation.
	CursorMove
	// CursorPick means the pointer is over an unselected annotation.
	CursorPick
)

// TextProvider captures a string from the user, anchored at p. It reports
// confirmed=false when the entry was cancelled.
type TextProvider func(p annot.Pt) (text string, confirmed bool)

type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureDraw
	gestureMove
	gestureResize
)

// Editor drives a Scene from pointer events. At most one gesture is active
// at any instant; a press while a gesture is in flight is ignored.
type Editor struct {
	scene *Scene
	tool  Tool
	clip  Clipboard

	gesture  gestureKind
	start    annot.Pt
	active   annot.Annotation
	grab     *handleGrab
	moveLast annot.Pt
	movedX   float64
	movedY   float64
	preDirty bool

	// TextFn supplies text entry for the text tool. Without it the text tool
	// creates nothing.
	TextFn TextProvider
	// OnEmptyPress is invoked after a select-mode press on empty space has
	// cleared the selection, so a host can start rubber-band selection.
	OnEmptyPress func(p annot.Pt)
}

// New creates an editor over the given scene, starting in select mode.
func New(scene *Scene) *Editor {
	return &Editor{scene: scene}
}

// Scene returns the scene the editor mutates.
func (e *Editor) Scene() *Scene { return e.scene }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool switches the active tool, cancelling any gesture in flight so the
// one-gesture invariant holds across the switch.
func (e *Editor) SetTool(t Tool) {
	if e.gesture != gestureNone {
		e.Cancel()
	}
	e.tool = t
}

// GestureActive reports whether a press→release sequence is in flight.
func (e *Editor) GestureActive() bool { return e.gesture != gestureNone }

// Clipboard returns the editor's clipboard slot.
func (e *Editor) Clipboard() *Clipboard { return &e.clip }

// Handle feeds one pointer event, in scene coordinates, through the state
// machine.
func (e *Editor) Handle(ev mouse.Event) {
	p := annot.Pt{X: float64(ev.X), Y: float64(ev.Y)}
	switch {
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirPress:
		e.press(p, ev.Modifiers&key.ModShift != 0)
	case ev.Direction == mouse.DirNone:
		e.move(p)
	case ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirRelease:
		e.release()
	}
}

func (e *Editor) press(p annot.Pt, additive bool) {
	if e.gesture != gestureNone {
		return
	}
	e.preDirty = e.scene.Dirty()
	switch e.tool {
	case ToolSelect:
		// Handles win over bodies so a handle overlapping another
		// annotation still resizes rather than re-selects.
		if h, ok := HandleAt(e.scene.Selected(), p); ok {
			e.grab = beginGrab(h, p)
			e.gesture = gestureResize
			return
		}
		if a := e.scene.TopmostAt(p); a != nil {
			if !a.Selected() {
				e.scene.Select(a, additive)
			}
			e.gesture = gestureMove
			e.moveLast = p
			e.movedX, e.movedY = 0, 0
			return
		}
		e.scene.ClearSelection()
		if e.OnEmptyPress != nil {
			e.OnEmptyPress(p)
		}
	case ToolText:
		if e.TextFn == nil {
			return
		}
		text, confirmed := e.TextFn(p)
		if !confirmed || text == "" {
			return
		}
		t := annot.NewText(e.scene.Style(), text, p)
		e.scene.add(t)
		e.scene.Select(t, false)
		e.scene.markDirty()
	default:
		e.start = p
		e.active = e.newShape(p)
		if e.active == nil {
			return
		}
		// Inserted immediately so the degenerate shape is a live preview.
		e.scene.add(e.active)
		e.gesture = gestureDraw
	}
}

func (e *Editor) newShape(p annot.Pt) annot.Annotation {
	style := e.scene.Style()
	switch e.tool {
	case ToolLine:
		return annot.NewLine(style, p, p)
	case ToolArrow:
		return annot.NewArrow(style, p, p)
	case ToolFreehand:
		return annot.NewFreehand(style, p)
	case ToolRect:
		return annot.NewRectangle(style, p, p)
	case ToolEllipse:
		return annot.NewEllipse(style, p, p)
	case ToolTriangle:
		return annot.NewTriangle(style, p, p)
	default:
		return nil
	}
}

func (e *Editor) move(p annot.Pt) {
	switch e.gesture {
	case gestureDraw:
		switch v := e.active.(type) {
		case *annot.Line:
			v.P1, v.P2 = e.start, p
		case *annot.Arrow:
			v.P1, v.P2 = e.start, p
		case *annot.Freehand:
			v.Append(p)
		case *annot.Rectangle:
			v.SetCorners(e.start, p)
		case *annot.Ellipse:
			v.SetCorners(e.start, p)
		case *annot.Triangle:
			v.SetCorners(e.start, p)
		}
	case gestureMove:
		dx := p.X - e.moveLast.X
		dy := p.Y - e.moveLast.Y
		e.moveLast = p
		if dx == 0 && dy == 0 {
			return
		}
		for _, a := range e.scene.Selected() {
			a.Translate(dx, dy)
		}
		e.movedX += dx
		e.movedY += dy
		e.scene.markDirty()
	case gestureResize:
		e.grab.apply(p)
		e.scene.markDirty()
	}
}

func (e *Editor) release() {
	switch e.gesture {
	case gestureDraw:
		// A press-release without movement still commits the degenerate
		// shape; intermediate moves already mutated it live.
		e.scene.markDirty()
		e.active = nil
	case gestureResize:
		e.grab = nil
	}
	e.gesture = gestureNone
}

// Cancel aborts the gesture in flight: a provisional drawing is removed from
// the scene, a move or resize restores the grab-time geometry, and the dirty
// flag returns to its pre-gesture value. Without an active gesture it is a
// no-op.
func (e *Editor) Cancel() {
	switch e.gesture {
	case gestureDraw:
		e.scene.remove(e.active)
		e.active = nil
	case gestureMove:
		for _, a := range e.scene.Selected() {
			a.Translate(-e.movedX, -e.movedY)
		}
	case gestureResize:
		e.grab.restore()
		e.grab = nil
	default:
		return
	}
	e.scene.dirty = e.preDirty
	e.gesture = gestureNone
}

// Hover computes the cursor hint for a pointer position with no buttons
// held. Handle proximity wins, then the topmost body hit.
func (e *Editor) Hover(p annot.Pt) Cursor {
	if e.tool == ToolSelect {
		if _, ok := HandleAt(e.scene.Selected(), p); ok {
			return CursorHandle
		}
	}
	a := e.scene.TopmostAt(p)
	switch {
	case a == nil:
		return CursorIdle
	case a.Selected():
		return CursorMove
	default:
		return CursorPick
	}
}

// CopySelection snapshots the topmost selected annotation into the
// clipboard. Without a selection it is a no-op.
func (e *Editor) CopySelection() {
	sel := e.scene.Selected()
	if len(sel) == 0 {
		return
	}
	e.clip.Copy(sel[len(sel)-1])
}

// Paste re-instantiates the clipboard snapshot anchored at p. The paste
// becomes the sole selected annotation. An empty clipboard is a no-op.
func (e *Editor) Paste(p annot.Pt) annot.Annotation {
	return e.clip.Paste(e.scene, p)
}

// DeleteSelected removes the current selection from the scene.
func (e *Editor) DeleteSelected() int {
	return e.scene.DeleteSelected()
}
