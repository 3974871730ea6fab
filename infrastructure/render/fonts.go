// Package render draws the PNG charts attached to bot replies and written
// by the CLI.
package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}

// drawSharpText draws text with a faint shadow.
func drawSharpText(dc *gg.Context, text string, x, y, ax, ay float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawStringAnchored(text, x+0.5, y+0.5, ax, ay)
	dc.Pop()

	dc.DrawStringAnchored(text, x, y, ax, ay)
}

// drawBackground fills the canvas with the dark vertical gradient used by
// every image.
func drawBackground(dc *gg.Context, width, height int) {
	for i := 0; i < height; i++ {
		t := float64(i) / float64(height)
		dc.SetRGB(0.02+t*0.03, 0.02+t*0.05, 0.05+t*0.1)
		dc.DrawLine(0, float64(i), float64(width), float64(i))
		dc.Stroke()
	}
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
