// Package theme defines the color palette for the editor chrome.
package theme

import (
	"image/color"
)

// Theme defines the colors used by the interactive UI.
type Theme struct {
	Name string

	Background color.RGBA // window background behind the canvas
	Foreground color.RGBA // main text color

	ToolbarBackground color.RGBA

	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	CanvasBorder color.RGBA // frame around the scene raster
	StatusText   color.RGBA // status message overlay
}

// Default returns the hardcoded light theme used as the fallback and as the
// base for partially specified themes.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CanvasBorder:          color.RGBA{120, 120, 120, 255},
		StatusText:            color.RGBA{0, 0, 0, 255},
	}
}

// Dark returns the bundled dark theme.
func Dark() *Theme {
	return &Theme{
		Name:                  "Dark",
		Background:            color.RGBA{40, 40, 40, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		ToolbarBackground:     color.RGBA{50, 50, 50, 255},
		ButtonBackground:      color.RGBA{70, 70, 70, 255},
		ButtonBackgroundHover: color.RGBA{90, 90, 90, 255},
		ButtonBackgroundPress: color.RGBA{110, 110, 110, 255},
		ButtonText:            color.RGBA{230, 230, 230, 255},
		ButtonBorder:          color.RGBA{160, 160, 160, 255},
		CanvasBorder:          color.RGBA{90, 90, 90, 255},
		StatusText:            color.RGBA{230, 230, 230, 255},
	}
}

func builtin(name string) (*Theme, bool) {
	switch name {
	case "", "default", "Default":
		return Default(), true
	case "dark", "Dark":
		return Dark(), true
	}
	return nil, false
}
