package editor

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/example/markpad/internal/annot"
	"github.com/example/markpad/internal/hittest"
)

// Scene owns the background raster and the ordered annotation collection.
// Insertion order is paint order. The background is never selectable or
// deletable; replacing it clears every annotation and resets the dirty flag.
type Scene struct {
	background  *image.RGBA
	annotations []annot.Annotation
	style       annot.Style
	dirty       bool
}

// NewScene creates an empty scene with the default stroke style.
func NewScene() *Scene {
	return &Scene{style: annot.DefaultStyle()}
}

// SetBackground replaces the raster being annotated. All annotations are
// dropped and the scene starts clean.
func (s *Scene) SetBackground(img *image.RGBA) {
	s.background = img
	s.annotations = nil
	s.dirty = false
}

// Background returns the current raster, or nil before the first load.
func (s *Scene) Background() *image.RGBA { return s.background }

// Bounds reports the scene extent, defined by the background.
func (s *Scene) Bounds() image.Rectangle {
	if s.background == nil {
		return image.Rectangle{}
	}
	return s.background.Bounds()
}

// Annotations returns the collection in paint order. The slice is a copy;
// the entries are the live annotations.
func (s *Scene) Annotations() []annot.Annotation {
	out := make([]annot.Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// Len reports the number of annotations.
func (s *Scene) Len() int { return len(s.annotations) }

func (s *Scene) add(a annot.Annotation) {
	s.annotations = append(s.annotations, a)
}

func (s *Scene) remove(a annot.Annotation) bool {
	for i, existing := range s.annotations {
		if existing.ID() == a.ID() {
			s.annotations = append(s.annotations[:i], s.annotations[i+1:]...)
			return true
		}
	}
	return false
}

// Selected returns every selected annotation in paint order.
func (s *Scene) Selected() []annot.Annotation {
	var out []annot.Annotation
	for _, a := range s.annotations {
		if a.Selected() {
			out = append(out, a)
		}
	}
	return out
}

// ClearSelection deselects everything.
func (s *Scene) ClearSelection() {
	for _, a := range s.annotations {
		a.SetSelected(false)
	}
}

// Select marks a selected. Without additive, the rest of the selection is
// cleared first.
func (s *Scene) Select(a annot.Annotation, additive bool) {
	if !additive {
		s.ClearSelection()
	}
	a.SetSelected(true)
}

// TopmostAt returns the topmost annotation whose hit region contains p, or
// nil. The background is not a candidate.
func (s *Scene) TopmostAt(p annot.Pt) annot.Annotation {
	for i := len(s.annotations) - 1; i >= 0; i-- {
		if hittest.Contains(s.annotations[i], p) {
			return s.annotations[i]
		}
	}
	return nil
}

// DeleteSelected removes every selected annotation and reports how many were
// removed. The scene is marked dirty only when something went away.
func (s *Scene) DeleteSelected() int {
	kept := s.annotations[:0]
	removed := 0
	for _, a := range s.annotations {
		if a.Selected() {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.annotations = kept
	if removed > 0 {
		s.dirty = true
	}
	return removed
}

// Dirty reports whether the scene has unexported mutations.
func (s *Scene) Dirty() bool { return s.dirty }

func (s *Scene) markDirty() { s.dirty = true }

// MarkExported clears the dirty flag. Callers invoke it only after a
// confirmed successful export.
func (s *Scene) MarkExported() { s.dirty = false }

// Style returns the current default stroke style.
func (s *Scene) Style() annot.Style { return s.style }

// ApplyColor feeds a validated color into the default style and into every
// selected annotation.
func (s *Scene) ApplyColor(c color.RGBA) {
	s.style.Color = c
	for _, a := range s.Selected() {
		st := a.Style()
		st.Color = s.style.Color
		a.SetStyle(st)
		s.dirty = true
	}
}

// ApplyWidth feeds a stroke width into the default style and into every
// selected annotation. Widths below the minimum are clamped, matching the
// style rules.
func (s *Scene) ApplyWidth(w float64) {
	s.style.Width = w
	s.style = s.style.Clamped()
	for _, a := range s.Selected() {
		st := a.Style()
		st.Width = s.style.Width
		a.SetStyle(st)
		s.dirty = true
	}
}

// ApplyWidthInput parses a width entered as text. Non-numeric input is
// rejected without mutating anything, including the dirty flag.
func (s *Scene) ApplyWidthInput(text string) error {
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fmt.Errorf("invalid width %q", text)
	}
	s.ApplyWidth(w)
	return nil
}
