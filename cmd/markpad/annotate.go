package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/example/markpad/internal/capture"
	"github.com/example/markpad/internal/clipboard"
	"github.com/example/markpad/internal/editor"
	"github.com/example/markpad/internal/ui"
)

// captureScreenFn is swappable for tests.
var captureScreenFn = capture.Screen

// annotateCmd opens the interactive editor over a background image.
type annotateCmd struct {
	mode   string
	file   string
	output string
	*root
	fs *flag.FlagSet
}

func (a *annotateCmd) FlagSet() *flag.FlagSet { return a.fs }

func parseAnnotateCmd(args []string, r *root) (*annotateCmd, error) {
	fs := flag.NewFlagSet("annotate", flag.ExitOnError)
	a := &annotateCmd{root: r, fs: fs}
	fs.Usage = usageFunc(a)
	fs.StringVar(&a.file, "file", "", "image file to annotate")
	fs.StringVar(&a.output, "output", "annotated.png", "output file path")
	if len(args) < 1 {
		return nil, &UsageError{of: a}
	}
	a.mode = args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *annotateCmd) Run() error {
	img, err := a.loadBackground()
	if err != nil {
		return err
	}

	scene := editor.NewScene()
	scene.SetBackground(img)
	if a.root != nil && a.root.config != nil {
		applyConfigStyle(scene, a.root.config)
	}

	opts := []ui.Option{ui.WithOutput(a.output)}
	if a.root != nil {
		opts = append(opts, ui.WithTheme(a.root.activeTheme), ui.WithNotifier(a.root.notifier))
	}
	ui.New(scene, opts...).Run()
	return nil
}

func (a *annotateCmd) loadBackground() (*image.RGBA, error) {
	switch a.mode {
	case "capture-screen":
		img, err := captureScreenFn()
		if err != nil {
			return nil, fmt.Errorf("failed to capture screen: %w", err)
		}
		return img, nil
	case "from-clipboard":
		src, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return toRGBA(src), nil
	case "open-file":
		if a.file == "" {
			return nil, &UsageError{of: a}
		}
		f, err := os.Open(a.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		dec, err := png.Decode(f)
		if err != nil {
			return nil, err
		}
		return toRGBA(dec), nil
	default:
		return nil, &UsageError{of: a}
	}
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}
