package main

import (
	"errors"
	"image"
	"strings"
	"testing"
)

func TestAnnotateRunCaptureError(t *testing.T) {
	original := captureScreenFn
	sentinel := errors.New("denied")
	captureScreenFn = func() (*image.RGBA, error) { return nil, sentinel }
	t.Cleanup(func() { captureScreenFn = original })

	cmd := &annotateCmd{mode: "capture-screen"}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else {
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected wrapped error, got %v", err)
		}
		if want := "failed to capture screen"; !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to contain %q, got %v", want, err)
		}
	}
}

func TestAnnotateUnknownModeIsUsageError(t *testing.T) {
	cmd := &annotateCmd{mode: "teleport", root: &root{program: "markpad"}}
	err := cmd.Run()
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestParseDrawClipboardRequiresOutput(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-from-clipboard", "line", "0", "0", "1", "1"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "output file is required when reading from the clipboard"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawDefaultsOutputToInput(t *testing.T) {
	r := &root{program: "markpad"}
	cmd, err := parseDrawCmd([]string{"-file", "shot.png", "rect", "0", "0", "20", "10"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.output != "shot.png" {
		t.Fatalf("expected output to default to input, got %q", cmd.output)
	}
}

func TestParseDrawInvalidCoordinate(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-file", "shot.png", "line", "0", "zero", "1", "1"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `invalid coordinate "zero"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawWrongCoordinateCount(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-file", "shot.png", "ellipse", "0", "0", "20"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "ellipse requires 4 coordinates"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawFreeOddCoordinates(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-file", "shot.png", "free", "0", "0", "5"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "even number of coordinates"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawTextRequiresContent(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-file", "shot.png", "text", "10", "20"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "text requires x y and content"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawTextJoinsWords(t *testing.T) {
	r := &root{program: "markpad"}
	cmd, err := parseDrawCmd([]string{"-file", "shot.png", "text", "10", "20", "hello", "world"}, r)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cmd.text != "hello world" {
		t.Fatalf("expected joined text, got %q", cmd.text)
	}
}

func TestParseDrawUnknownShape(t *testing.T) {
	r := &root{program: "markpad"}
	_, err := parseDrawCmd([]string{"-file", "shot.png", "spiral", "0", "0", "1", "1"}, r)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := `unsupported shape "spiral"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseColor(t *testing.T) {
	if c, err := parseColor("red"); err != nil || c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("red: got %v, %v", c, err)
	}
	if c, err := parseColor("#FF8800"); err != nil || c.R != 0xFF || c.G != 0x88 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("#FF8800: got %v, %v", c, err)
	}
	if c, err := parseColor("#00FF0080"); err != nil || c.G != 0xFF || c.A != 0x80 {
		t.Fatalf("#00FF0080: got %v, %v", c, err)
	}
	if _, err := parseColor("notacolor"); err == nil {
		t.Fatalf("expected error for unknown color name")
	}
	if _, err := parseColor(""); err == nil {
		t.Fatalf("expected error for empty color")
	}
}

func TestUsageErrorListsFlags(t *testing.T) {
	r := newRoot()
	msg := (&UsageError{of: r}).Error()
	if !strings.Contains(msg, "usage: markpad") {
		t.Fatalf("expected usage line, got %q", msg)
	}
	if !strings.Contains(msg, "-theme") {
		t.Fatalf("expected flag listing, got %q", msg)
	}
}
