package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/markpad/internal/editor"
	"github.com/example/markpad/internal/render"
	"github.com/example/markpad/internal/theme"
	"github.com/example/markpad/internal/typeface"
)

const (
	topHeight    = 24
	bottomHeight = 24
)

var toolbarWidth = 72

// PaletteColor is a swatch offered in the toolbar.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var palette = []PaletteColor{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

var widthOptions = []float64{1, 2, 3, 4, 6, 8}

// ButtonState describes the visual state of a toolbar button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

type toolButton struct {
	label string
	tool  editor.Tool
	rect  image.Rectangle
}

func (tb *toolButton) draw(dst *image.RGBA, t *theme.Theme, state ButtonState) {
	c := t.ButtonBackground
	switch state {
	case StateHover:
		c = t.ButtonBackgroundHover
	case StatePressed:
		c = t.ButtonBackgroundPress
	}
	draw.Draw(dst, tb.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(tb.rect.Min.X+4, tb.rect.Min.Y+16)}
	d.DrawString(tb.label)
}

type shortcutButton struct {
	label  string
	action string
	rect   image.Rectangle
}

func (s *shortcutButton) draw(dst *image.RGBA, t *theme.Theme, state ButtonState) {
	c := t.ButtonBackground
	switch state {
	case StateHover:
		c = t.ButtonBackgroundHover
	case StatePressed:
		c = t.ButtonBackgroundPress
	}
	draw.Draw(dst, s.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	outlineRect(dst, s.rect, t.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(s.rect.Min.X+2, s.rect.Min.Y+14)}
	d.DrawString(s.label)
}

func outlineRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, col)
		dst.Set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, col)
		dst.Set(r.Max.X-1, y, col)
	}
}

// frameState carries everything drawFrame needs so the frame is a pure
// function of it.
type frameState struct {
	width, height int
	scene         *editor.Scene
	tool          editor.Tool
	colorIdx      int
	widthIdx      int
	hoverTool     int
	hoverPalette  int
	hoverWidth    int
	hoverShortcut int
	cursorHint    string

	textActive bool
	textInput  string
	textPos    image.Point

	message      string
	messageUntil time.Time
}

type frameLayout struct {
	tools     []toolButton
	palette   []image.Rectangle
	widths    []image.Rectangle
	shortcuts []shortcutButton
	canvas    image.Point // window position of the scene origin
}

var toolDefs = []struct {
	label string
	tool  editor.Tool
}{
	{"S:Select", editor.ToolSelect},
	{"L:Line", editor.ToolLine},
	{"A:Arrow", editor.ToolArrow},
	{"F:Free", editor.ToolFreehand},
	{"X:Rect", editor.ToolRect},
	{"O:Ellipse", editor.ToolEllipse},
	{"N:Tri", editor.ToolTriangle},
	{"T:Text", editor.ToolText},
}

var shortcutDefs = []struct {
	label  string
	action string
}{
	{"^C:copy", "copy"},
	{"^V:paste", "paste"},
	{"^D:delete", "delete"},
	{"^S:save", "save"},
	{"Esc:cancel", "cancel"},
	{"Q:quit", "quit"},
}

// layout computes the button geometry for the current window size.
func layout(width, height int) frameLayout {
	var l frameLayout
	l.canvas = image.Pt(toolbarWidth, topHeight)

	y := topHeight
	for _, def := range toolDefs {
		l.tools = append(l.tools, toolButton{
			label: def.label,
			tool:  def.tool,
			rect:  image.Rect(0, y, toolbarWidth, y+24),
		})
		y += 24
	}

	y += 4
	x := 4
	for range palette {
		l.palette = append(l.palette, image.Rect(x, y, x+16, y+16))
		x += 18
		if x+16 > toolbarWidth {
			x = 4
			y += 18
		}
	}
	if x != 4 {
		y += 18
	}

	y += 4
	for range widthOptions {
		l.widths = append(l.widths, image.Rect(0, y, toolbarWidth, y+16))
		y += 16
	}

	meas := &font.Drawer{Face: basicfont.Face7x13}
	sx := toolbarWidth + 4
	sy := height - bottomHeight + 16
	for _, def := range shortcutDefs {
		w := meas.MeasureString(def.label).Ceil()
		l.shortcuts = append(l.shortcuts, shortcutButton{
			label:  def.label,
			action: def.action,
			rect:   image.Rect(sx-2, sy-14, sx+w+2, sy+4),
		})
		sx += w + 12
	}
	return l
}

func drawFrame(dst *image.RGBA, t *theme.Theme, st frameState) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{t.Background}, image.Point{}, draw.Src)

	l := layout(st.width, st.height)

	// Title bar with the dirty marker.
	draw.Draw(dst, image.Rect(0, 0, st.width, topHeight),
		&image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	title := "Markpad"
	if st.scene.Dirty() {
		title += " *"
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(t.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	d.DrawString(title)

	// Toolbar column.
	draw.Draw(dst, image.Rect(0, topHeight, toolbarWidth, st.height),
		&image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	for i := range l.tools {
		state := StateDefault
		if l.tools[i].tool == st.tool {
			state = StatePressed
		} else if i == st.hoverTool {
			state = StateHover
		}
		l.tools[i].draw(dst, t, state)
	}

	for i, rect := range l.palette {
		draw.Draw(dst, rect, &image.Uniform{palette[i].Color}, image.Point{}, draw.Src)
		if i == st.hoverPalette {
			draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == st.colorIdx {
			outlineRect(dst, rect, color.White)
			outlineRect(dst, rect.Inset(-1), color.Black)
		}
	}

	for i, rect := range l.widths {
		c := t.ButtonBackground
		if i == st.widthIdx {
			c = t.ButtonBackgroundPress
		} else if i == st.hoverWidth {
			c = t.ButtonBackgroundHover
		}
		draw.Draw(dst, rect, &image.Uniform{c}, image.Point{}, draw.Src)
		wd := &font.Drawer{Dst: dst, Src: image.NewUniform(t.ButtonText), Face: basicfont.Face7x13,
			Dot: fixed.P(4, rect.Min.Y+12)}
		wd.DrawString(fmt.Sprintf("%g", widthOptions[i]))
		lineY := rect.Min.Y + 8
		thick := int(widthOptions[i])
		for x := 30; x < toolbarWidth-4; x++ {
			for dy := -thick / 2; dy <= thick/2; dy++ {
				dst.Set(x, lineY+dy, palette[st.colorIdx].Color)
			}
		}
	}

	// Scene composite with selection handles, blitted at the canvas origin.
	composite := render.Composite(st.scene)
	if composite != nil {
		render.Handles(composite, editor.Handles(st.scene.Selected()))
		rect := composite.Bounds().Add(l.canvas)
		draw.Draw(dst, rect, composite, composite.Bounds().Min, draw.Src)
		outlineRect(dst, rect.Inset(-1), t.CanvasBorder)
	}

	// In-flight text entry with a caret, drawn where it will land.
	if st.textActive {
		style := st.scene.Style()
		size := style.Width * 3
		if size < 6 {
			size = 6
		}
		td := &font.Drawer{Dst: dst, Src: image.NewUniform(style.Color), Face: typeface.Face(size)}
		td.Dot = fixed.P(l.canvas.X+st.textPos.X, l.canvas.Y+st.textPos.Y)
		td.DrawString(st.textInput + "|")
	}

	// Bottom bar: clickable shortcuts plus the hover hint.
	draw.Draw(dst, image.Rect(0, st.height-bottomHeight, st.width, st.height),
		&image.Uniform{t.ToolbarBackground}, image.Point{}, draw.Src)
	for i := range l.shortcuts {
		state := StateDefault
		if i == st.hoverShortcut {
			state = StateHover
		}
		l.shortcuts[i].draw(dst, t, state)
	}
	if st.cursorHint != "" {
		hd := &font.Drawer{Dst: dst, Src: image.NewUniform(t.StatusText), Face: basicfont.Face7x13}
		w := hd.MeasureString(st.cursorHint).Ceil()
		hd.Dot = fixed.P(st.width-w-4, st.height-bottomHeight+16)
		hd.DrawString(st.cursorHint)
	}

	// Transient status message, centered.
	if st.message != "" && time.Now().Before(st.messageUntil) {
		face := typeface.Face(20)
		md := &font.Drawer{Dst: dst, Src: image.NewUniform(t.StatusText), Face: face}
		wmsg := md.MeasureString(st.message).Ceil()
		ascent := face.Metrics().Ascent.Ceil()
		descent := face.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		box := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(dst, box, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		outlineRect(dst, box, color.Black)
		md.Dot = fixed.P(px, py)
		md.DrawString(st.message)
	}
}

func cursorHint(c editor.Cursor) string {
	switch c {
	case editor.CursorHandle:
		return "resize"
	case editor.CursorMove:
		return "move"
	case editor.CursorPick:
		return "select"
	default:
		return ""
	}
}
