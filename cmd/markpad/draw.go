package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/markpad/internal/annot"
	"github.com/example/markpad/internal/clipboard"
	"github.com/example/markpad/internal/config"
	"github.com/example/markpad/internal/editor"
	"github.com/example/markpad/internal/render"
	"github.com/example/markpad/internal/theme"
)

// drawCmd applies one scripted annotation to an image through the same
// gesture engine the interactive editor uses.
type drawCmd struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
	colorSpec     string
	color         color.RGBA
	width         float64
	shadow        bool
	shape         string
	coords        []float64
	text          string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet { return d.fs }

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		c, err := theme.ParseColor(spec)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file")
	fs.StringVar(&d.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&d.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.StringVar(&d.colorSpec, "color", "red", "stroke color name or hex value")
	fs.Float64Var(&d.width, "width", 2, "stroke width in pixels")
	fs.BoolVar(&d.shadow, "shadow", false, "apply a drop shadow to the exported image")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	positionals := fs.Args()
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.shape = strings.ToLower(positionals[0])
	remaining := positionals[1:]

	var err error
	switch d.shape {
	case "line", "arrow", "rect", "ellipse", "triangle":
		d.coords, err = expectFloats(remaining, 4, d.shape)
	case "free":
		if len(remaining) < 4 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("free requires an even number of coordinates, at least two points")
		}
		d.coords, err = expectFloats(remaining, len(remaining), d.shape)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.shape)
		if err != nil {
			return nil, err
		}
		d.text = strings.Join(remaining[2:], " ")
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	default:
		return nil, fmt.Errorf("unsupported shape %q", d.shape)
	}
	if err != nil {
		return nil, err
	}

	d.color, err = parseColor(d.colorSpec)
	if err != nil {
		return nil, err
	}
	if d.fromClipboard {
		if d.output == "" {
			if d.file == "" {
				return nil, fmt.Errorf("output file is required when reading from the clipboard")
			}
			d.output = d.file
		}
	} else {
		if d.file == "" {
			return nil, fmt.Errorf("input file is required")
		}
		if d.output == "" {
			d.output = d.file
		}
	}
	return d, nil
}

func expectFloats(args []string, n int, shape string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d coordinates", shape, n)
	}
	vals := make([]float64, n)
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

func (d *drawCmd) Run() error {
	src, err := d.loadSource()
	if err != nil {
		return err
	}

	scene := editor.NewScene()
	scene.SetBackground(toRGBA(src))
	scene.ApplyColor(d.color)
	scene.ApplyWidth(d.width)

	ed := editor.New(scene)
	if err := d.applyShape(ed); err != nil {
		return err
	}

	rgba := render.Composite(scene)
	if d.shadow {
		rgba = render.ApplyShadow(rgba, render.DefaultShadowOptions())
	}

	out, err := os.Create(d.output)
	if err != nil {
		return err
	}
	if err := png.Encode(out, rgba); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("error closing %q: %v", d.output, cerr)
		}
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	scene.MarkExported()

	saved := d.output
	if abs, err := filepath.Abs(d.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	d.root.notifySave(saved)

	if d.toClipboard {
		if err := clipboard.WriteImage(rgba); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(d.output)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		d.root.notifyCopy(detail)
	}
	return nil
}

// applyShape drives the editor state machine with a synthetic gesture so the
// CLI and the window produce identical marks.
func (d *drawCmd) applyShape(ed *editor.Editor) error {
	press := func(x, y float64) {
		ed.Handle(mouse.Event{X: float32(x), Y: float32(y), Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	}
	move := func(x, y float64) {
		ed.Handle(mouse.Event{X: float32(x), Y: float32(y), Direction: mouse.DirNone})
	}
	release := func(x, y float64) {
		ed.Handle(mouse.Event{X: float32(x), Y: float32(y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	}

	switch d.shape {
	case "line":
		ed.SetTool(editor.ToolLine)
	case "arrow":
		ed.SetTool(editor.ToolArrow)
	case "free":
		ed.SetTool(editor.ToolFreehand)
	case "rect":
		ed.SetTool(editor.ToolRect)
	case "ellipse":
		ed.SetTool(editor.ToolEllipse)
	case "triangle":
		ed.SetTool(editor.ToolTriangle)
	case "text":
		ed.SetTool(editor.ToolText)
		text := d.text
		ed.TextFn = func(annot.Pt) (string, bool) { return text, true }
		press(d.coords[0], d.coords[1])
		release(d.coords[0], d.coords[1])
		return nil
	default:
		return fmt.Errorf("unhandled shape %q", d.shape)
	}

	press(d.coords[0], d.coords[1])
	for i := 2; i+1 < len(d.coords); i += 2 {
		move(d.coords[i], d.coords[i+1])
	}
	release(d.coords[len(d.coords)-2], d.coords[len(d.coords)-1])
	return nil
}

func (d *drawCmd) loadSource() (image.Image, error) {
	if d.fromClipboard {
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	}
	f, err := os.Open(d.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// applyConfigStyle seeds a scene's default style from the loaded config.
func applyConfigStyle(scene *editor.Scene, cfg *config.Config) {
	if cfg.Color != "" {
		if c, err := parseColor(cfg.Color); err == nil {
			scene.ApplyColor(c)
		} else {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	if cfg.Width > 0 {
		scene.ApplyWidth(cfg.Width)
	}
}
