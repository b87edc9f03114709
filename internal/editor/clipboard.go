package editor

import "github.com/example/markpad/internal/annot"

// Clipboard holds at most one annotation snapshot. The snapshot is a deep
// copy with no aliasing into the scene, so it survives the original's
// deletion and supports repeated pastes.
type Clipboard struct {
	snapshot annot.Annotation
}

// Copy replaces the slot with an independent snapshot of a.
func (c *Clipboard) Copy(a annot.Annotation) {
	if a == nil {
		return
	}
	c.snapshot = a.Clone()
}

// Empty reports whether the slot holds a snapshot.
func (c *Clipboard) Empty() bool { return c.snapshot == nil }

// Paste constructs a new annotation from the snapshot, re-anchored at p, and
// inserts it as the sole selected annotation. Pasting never touches the
// snapshot itself. Returns nil when the clipboard is empty.
func (c *Clipboard) Paste(s *Scene, p annot.Pt) annot.Annotation {
	if c.snapshot == nil {
		return nil
	}
	pasted := c.snapshot.CloneAt(p)
	s.ClearSelection()
	pasted.SetSelected(true)
	s.add(pasted)
	s.markDirty()
	return pasted
}
