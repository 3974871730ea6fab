package render

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"probtutor/domain/counting"
)

const (
	pascalCellWidth  = 46.0
	pascalCellHeight = 28.0
	pascalPadding    = 20.0
	pascalTitleSpace = 34.0
)

// PascalTriangle draws the triangle with the highlighted cell of the last
// row in gold. Overflowing cells show the too-large marker.
func PascalTriangle(tri *counting.Triangle, highlight counting.Highlight) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("rows", len(tri.Rows)).
			Debug("Pascal triangle image generation completed")
	}()

	rows := len(tri.Rows)
	width := int(float64(rows)*pascalCellWidth + 2*pascalPadding)
	if width < 260 {
		width = 260
	}
	height := int(float64(rows)*pascalCellHeight + 2*pascalPadding + pascalTitleSpace)

	dc := gg.NewContext(width, height)
	drawBackground(dc, width, height)

	title, err := loadFont(gobold.TTF, 14)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(title)
	dc.SetRGB(1, 1, 1)
	drawSharpText(dc, fmt.Sprintf("Pascal's triangle, rows 0-%d", tri.MaxRow), float64(width)/2, pascalPadding, 0.5, 0.5)

	cellFont := 11.0
	if rows > 12 {
		cellFont = 9
	}
	face, err := loadFont(gomono.TTF, cellFont)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(face)

	centre := float64(width) / 2
	for n, row := range tri.Rows {
		y := pascalPadding + pascalTitleSpace + float64(n)*pascalCellHeight
		rowStart := centre - float64(len(row))*pascalCellWidth/2
		for k, c := range row {
			x := rowStart + float64(k)*pascalCellWidth
			highlighted := highlight.InRange && n == highlight.Row && k == highlight.Column

			switch {
			case highlighted:
				dc.SetRGBA(1, 0.84, 0, 0.8)
			case c.IsOverflow():
				dc.SetRGBA(0.93, 0.26, 0.27, 0.5)
			default:
				dc.SetRGBA(0.35, 0.4, 0.95, 0.25)
			}
			dc.DrawRoundedRectangle(x+2, y+2, pascalCellWidth-4, pascalCellHeight-4, 5)
			dc.Fill()

			if highlighted {
				dc.SetRGB(0, 0, 0)
			} else {
				dc.SetRGB(0.9, 0.9, 1)
			}
			label := c.String()
			if c.IsOverflow() {
				label = "∞"
			}
			dc.DrawStringAnchored(label, x+pascalCellWidth/2, y+pascalCellHeight/2, 0.5, 0.35)
		}
	}

	return encode(dc)
}
