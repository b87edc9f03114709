// Package ui hosts the interactive annotation window on shiny.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/markpad/internal/annot"
	"github.com/example/markpad/internal/clipboard"
	"github.com/example/markpad/internal/editor"
	"github.com/example/markpad/internal/notify"
	"github.com/example/markpad/internal/render"
	"github.com/example/markpad/internal/theme"
)

// App holds the window configuration for an editing session.
type App struct {
	scene    *editor.Scene
	output   string
	theme    *theme.Theme
	notifier *notify.Notifier

	onClose func()
}

// Option modifies an App during creation.
type Option func(*App)

// WithOutput sets the file path used when saving the composite.
func WithOutput(out string) Option { return func(a *App) { a.output = out } }

// WithTheme sets the UI color palette.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.theme = t } }

// WithNotifier sets the desktop notifier for save/copy events.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App editing the provided scene.
func New(scene *editor.Scene, opts ...Option) *App {
	a := &App{
		scene:  scene,
		output: "markpad.png",
		theme:  theme.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

// Main is the window loop. It is exposed so callers that already own the
// driver goroutine can embed it.
func (a *App) Main(s screen.Screen) {
	defer func() {
		if a.onClose != nil {
			a.onClose()
		}
	}()

	// Widen the toolbar to fit the longest label.
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString("Markpad").Ceil() + 8
	for _, def := range toolDefs {
		if w := d.MeasureString(def.label).Ceil() + 8; w > max {
			max = w
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	bounds := a.scene.Bounds()
	width := bounds.Dx() + toolbarWidth
	height := bounds.Dy() + topHeight + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Markpad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	ed := editor.New(a.scene)

	var (
		colorIdx      = indexOfColor(a.scene.Style().Color)
		widthIdx      = indexOfWidth(a.scene.Style().Width)
		hoverTool     = -1
		hoverPalette  = -1
		hoverWidth    = -1
		hoverShortcut = -1
		hint          string
		message       string
		messageUntil  time.Time
		confirmDelete bool
		confirmQuit   bool
		textActive    bool
		textInput     string
		textPos       image.Point
		lastScenePt   annot.Pt
		quit          bool
	)

	say := func(msg string) {
		message = msg
		messageUntil = time.Now().Add(2 * time.Second)
		log.Print(msg)
	}

	commitText := func() {
		input := textInput
		pos := annot.Pt{X: float64(textPos.X), Y: float64(textPos.Y)}
		ed.TextFn = func(annot.Pt) (string, bool) { return input, true }
		ed.Handle(mouse.Event{
			X: float32(pos.X), Y: float32(pos.Y),
			Button: mouse.ButtonLeft, Direction: mouse.DirPress,
		})
		ed.Handle(mouse.Event{
			X: float32(pos.X), Y: float32(pos.Y),
			Button: mouse.ButtonLeft, Direction: mouse.DirRelease,
		})
		ed.TextFn = nil
		textActive = false
		textInput = ""
	}

	actions := map[string]func(){
		"copy": func() {
			if len(a.scene.Selected()) > 0 {
				ed.CopySelection()
				say("annotation copied")
				return
			}
			if err := clipboard.WriteImage(render.Composite(a.scene)); err != nil {
				log.Printf("copy: %v", err)
				return
			}
			a.notifier.Copy("image")
			say("image copied to clipboard")
		},
		"paste": func() {
			if !ed.Clipboard().Empty() {
				ed.Paste(lastScenePt)
				return
			}
			img, err := clipboard.ReadImage()
			if err != nil {
				log.Printf("paste: %v", err)
				return
			}
			rgba := image.NewRGBA(img.Bounds())
			draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
			a.scene.SetBackground(rgba)
			say("pasted new background")
		},
		"delete": func() {
			if !confirmDelete {
				confirmDelete = true
				say("press delete again to confirm")
				return
			}
			confirmDelete = false
			n := ed.DeleteSelected()
			if n > 0 {
				say(fmt.Sprintf("deleted %d", n))
			}
		},
		"save": func() {
			out, err := os.Create(a.output)
			if err != nil {
				log.Printf("save: %v", err)
				return
			}
			if err := png.Encode(out, render.Composite(a.scene)); err != nil {
				log.Printf("save: %v", err)
				out.Close()
				return
			}
			if err := out.Close(); err != nil {
				log.Printf("save: closing file: %v", err)
				return
			}
			a.scene.MarkExported()
			a.notifier.Save(a.output)
			say(fmt.Sprintf("saved %s", a.output))
		},
		"cancel": func() {
			if textActive {
				textActive = false
				textInput = ""
				return
			}
			ed.Cancel()
		},
		"quit": func() {
			if a.scene.Dirty() && !confirmQuit {
				confirmQuit = true
				say("unsaved changes, press again to quit")
				return
			}
			quit = true
		},
	}

	handleShortcut := func(name string) {
		if fn, ok := actions[name]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			b, err := s.NewBuffer(image.Point{width, height})
			if err != nil {
				log.Printf("new buffer: %v", err)
				continue
			}
			drawFrame(b.RGBA(), a.theme, frameState{
				width: width, height: height,
				scene:    a.scene,
				tool:     ed.Tool(),
				colorIdx: colorIdx, widthIdx: widthIdx,
				hoverTool: hoverTool, hoverPalette: hoverPalette,
				hoverWidth: hoverWidth, hoverShortcut: hoverShortcut,
				cursorHint: hint,
				textActive: textActive, textInput: textInput, textPos: textPos,
				message: message, messageUntil: messageUntil,
			})
			w.Upload(image.Point{}, b, b.Bounds())
			b.Release()
			w.Publish()
			if quit {
				return
			}
		case mouse.Event:
			p := image.Point{int(e.X), int(e.Y)}
			l := layout(width, height)
			press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress

			if press && message != "" && time.Now().Before(messageUntil) {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}

			if p.Y >= height-bottomHeight {
				hoverShortcut = -1
				for i := range l.shortcuts {
					if p.In(l.shortcuts[i].rect) {
						hoverShortcut = i
						if press {
							handleShortcut(l.shortcuts[i].action)
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}

			if p.X < toolbarWidth && p.Y >= topHeight {
				hoverTool, hoverPalette, hoverWidth = -1, -1, -1
				for i := range l.tools {
					if p.In(l.tools[i].rect) {
						hoverTool = i
						if press {
							if textActive {
								textActive = false
								textInput = ""
							}
							ed.SetTool(l.tools[i].tool)
						}
						break
					}
				}
				for i, rect := range l.palette {
					if p.In(rect) {
						hoverPalette = i
						if press {
							colorIdx = i
							a.scene.ApplyColor(palette[i].Color)
						}
						break
					}
				}
				for i, rect := range l.widths {
					if p.In(rect) {
						hoverWidth = i
						if press {
							widthIdx = i
							a.scene.ApplyWidth(widthOptions[i])
						}
						break
					}
				}
				w.Send(paint.Event{})
				continue
			}

			// Canvas: translate to scene coordinates and hand to the editor.
			sx := float64(p.X - toolbarWidth)
			sy := float64(p.Y - topHeight)
			lastScenePt = annot.Pt{X: sx, Y: sy}

			if ed.Tool() == editor.ToolText {
				if press {
					textActive = true
					textInput = ""
					textPos = image.Pt(int(sx), int(sy))
					w.Send(paint.Event{})
				}
				continue
			}

			ed.Handle(mouse.Event{
				X: float32(sx), Y: float32(sy),
				Button: e.Button, Modifiers: e.Modifiers, Direction: e.Direction,
			})
			if e.Direction == mouse.DirNone && !ed.GestureActive() {
				hint = cursorHint(ed.Hover(lastScenePt))
			} else {
				hint = ""
			}
			w.Send(paint.Event{})
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if textActive {
				switch e.Code {
				case key.CodeReturnEnter:
					commitText()
					w.Send(paint.Event{})
					continue
				case key.CodeEscape:
					textActive = false
					textInput = ""
					w.Send(paint.Event{})
					continue
				case key.CodeDeleteBackspace:
					if len(textInput) > 0 {
						textInput = textInput[:len(textInput)-1]
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Rune > 0 {
					textInput += string(e.Rune)
					w.Send(paint.Event{})
				}
				continue
			}

			if e.Modifiers&key.ModControl != 0 {
				switch unicode.ToLower(e.Rune) {
				case 'c':
					handleShortcut("copy")
				case 'v':
					handleShortcut("paste")
				case 'd':
					handleShortcut("delete")
					continue
				case 's':
					handleShortcut("save")
				}
				confirmDelete = false
				continue
			}

			if e.Code == key.CodeEscape {
				handleShortcut("cancel")
				confirmDelete = false
				continue
			}
			if e.Code == key.CodeDeleteForward || e.Code == key.CodeDeleteBackspace {
				handleShortcut("delete")
				continue
			}
			confirmDelete = false

			switch unicode.ToLower(e.Rune) {
			case 's':
				ed.SetTool(editor.ToolSelect)
			case 'l':
				ed.SetTool(editor.ToolLine)
			case 'a':
				ed.SetTool(editor.ToolArrow)
			case 'f':
				ed.SetTool(editor.ToolFreehand)
			case 'x':
				ed.SetTool(editor.ToolRect)
			case 'o':
				ed.SetTool(editor.ToolEllipse)
			case 'n':
				ed.SetTool(editor.ToolTriangle)
			case 't':
				ed.SetTool(editor.ToolText)
			case 'q':
				handleShortcut("quit")
				continue
			default:
				continue
			}
			confirmQuit = false
			w.Send(paint.Event{})
		}
	}
}

func indexOfColor(c color.RGBA) int {
	for i := range palette {
		if palette[i].Color == c {
			return i
		}
	}
	return 2 // red
}

func indexOfWidth(w float64) int {
	for i := range widthOptions {
		if widthOptions[i] == w {
			return i
		}
	}
	return 1
}
