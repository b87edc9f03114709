// Package typeface owns the single application font and a cache of faces at
// the sizes the annotation layer asks for.
package typeface

import (
	"log"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FamilyName is the font family recorded on text annotations.
const FamilyName = "Go Regular"

var (
	parseOnce sync.Once
	regular   *opentype.Font

	facesMu sync.Mutex
	faces   = map[int64]font.Face{}
)

func parsedFont() *opentype.Font {
	parseOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			log.Fatalf("parse font: %v", err)
		}
		regular = f
	})
	return regular
}

// Face returns a cached face for the given point size. Sizes are quantised to
// hundredths of a point so resize gestures do not grow the cache unboundedly.
func Face(size float64) font.Face {
	if size <= 0 {
		size = 1
	}
	key := int64(math.Round(size * 100))
	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[key]; ok {
		return face
	}
	face, err := opentype.NewFace(parsedFont(), &opentype.FaceOptions{
		Size:    float64(key) / 100,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
	faces[key] = face
	return face
}

// Measure reports the rendered dimensions of text at the given point size.
// Width and height span the full bounding box; ascent is the distance from
// the box top to the baseline.
func Measure(text string, size float64) (width, height, ascent float64) {
	face := Face(size)
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	up := metrics.Ascent.Ceil()
	down := metrics.Descent.Ceil()
	return float64(w), float64(up + down), float64(up)
}
