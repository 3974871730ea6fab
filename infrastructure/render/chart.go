package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var ErrEmptyChart = errors.New("chart has no data")

// Series colours in drawing order.
var palette = [][3]float64{
	{1, 0.39, 0.52},
	{0.21, 0.64, 0.92},
	{1, 0.81, 0.34},
	{0.29, 0.75, 0.75},
	{0.6, 0.4, 1},
	{1, 0.62, 0.25},
}

// Series is one named set of bar values, aligned with Chart.Labels.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a grouped bar chart.
type Chart struct {
	Title  string
	Labels []string
	Series []Series
	// Max fixes the top of the y axis; 0 scales to the data.
	Max float64
	// Percent prints bar values as percentages of 1.
	Percent bool
}

// BarChart renders c as a PNG.
func BarChart(c Chart) ([]byte, error) {
	if len(c.Labels) == 0 || len(c.Series) == 0 {
		return nil, ErrEmptyChart
	}
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("title", c.Title).
			Debug("Bar chart generation completed")
	}()

	const (
		height  = 320
		padding = 40.0
		legendH = 22.0
	)
	groupWidth := math.Max(60, float64(len(c.Series))*28+16)
	width := int(math.Max(360, float64(len(c.Labels))*groupWidth+2*padding))

	top := c.Max
	if top <= 0 {
		for _, s := range c.Series {
			for _, v := range s.Values {
				top = math.Max(top, v)
			}
		}
		if top == 0 {
			top = 1
		}
		top *= 1.1
	}

	dc := gg.NewContext(width, height)
	drawBackground(dc, width, height)

	bold, err := loadFont(gobold.TTF, 14)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	regular, err := loadFont(goregular.TTF, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	dc.SetFontFace(bold)
	dc.SetRGB(1, 1, 1)
	drawSharpText(dc, c.Title, float64(width)/2, padding/2, 0.5, 0.5)

	plotTop := padding + legendH
	plotBottom := float64(height) - padding
	plotHeight := plotBottom - plotTop

	// Axis
	dc.SetRGBA(0.6, 0.6, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawLine(padding, plotBottom, float64(width)-padding, plotBottom)
	dc.Stroke()

	dc.SetFontFace(regular)

	// Legend
	x := padding
	for i, s := range c.Series {
		col := palette[i%len(palette)]
		dc.SetRGB(col[0], col[1], col[2])
		dc.DrawRectangle(x, padding+2, 10, 10)
		dc.Fill()
		dc.SetRGB(0.9, 0.9, 0.95)
		dc.DrawStringAnchored(s.Name, x+14, padding+7, 0, 0.35)
		w, _ := dc.MeasureString(s.Name)
		x += w + 30
	}

	barWidth := (groupWidth - 16) / float64(len(c.Series))
	for g, label := range c.Labels {
		gx := padding + float64(g)*groupWidth + 8
		for i, s := range c.Series {
			if g >= len(s.Values) {
				continue
			}
			v := s.Values[g]
			h := plotHeight * math.Min(v, top) / top
			bx := gx + float64(i)*barWidth

			col := palette[i%len(palette)]
			dc.SetRGBA(col[0], col[1], col[2], 0.85)
			dc.DrawRectangle(bx+2, plotBottom-h, barWidth-4, h)
			dc.Fill()

			dc.SetRGB(0.95, 0.95, 1)
			dc.DrawStringAnchored(formatBarValue(v, c.Percent), bx+barWidth/2, plotBottom-h-6, 0.5, 0)
		}
		dc.SetRGB(0.85, 0.85, 0.9)
		dc.DrawStringAnchored(label, gx+(groupWidth-16)/2, plotBottom+14, 0.5, 0.5)
	}

	return encode(dc)
}

func formatBarValue(v float64, percent bool) string {
	if percent {
		return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
