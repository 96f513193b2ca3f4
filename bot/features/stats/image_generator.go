package stats

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"stumped/domain/entities"
)

// chartStyle defines the visual style of the distribution chart
type chartStyle struct {
	Width     int
	Height    int
	Padding   int
	RowHeight int
	BarColor  [3]float64
	MaxColor  [3]float64
}

// DistributionImageGenerator renders the guess-distribution bar chart shown
// by /stats
type DistributionImageGenerator struct {
	style chartStyle
}

// NewDistributionImageGenerator creates a generator with default style
func NewDistributionImageGenerator() *DistributionImageGenerator {
	return &DistributionImageGenerator{
		style: chartStyle{
			Width:     380,
			Height:    30,
			Padding:   15,
			RowHeight: 28,
			BarColor:  [3]float64{0.33, 0.55, 0.85},
			MaxColor:  [3]float64{0.34, 0.79, 0.45},
		},
	}
}

// Generate renders one horizontal bar per guess count, widest bar for the
// most common winning count
func (g *DistributionImageGenerator) Generate(distribution [entities.MaxGuesses]int) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			Debug("Distribution chart generation completed")
	}()

	height := g.style.Height + entities.MaxGuesses*g.style.RowHeight + g.style.Padding
	dc := gg.NewContext(g.style.Width, height)

	// Gradient background
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		dc.SetRGB(0.02+t*0.03, 0.02+t*0.05, 0.05+t*0.1)
		dc.DrawLine(0, float64(y), float64(g.style.Width), float64(y))
		dc.Stroke()
	}

	face, err := loadFont(gomono.TTF, 12)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(face)

	// Title
	dc.SetRGB(1, 1, 1)
	boldFace, err := loadFont(gobold.TTF, 13)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(boldFace)
	dc.DrawString("Guess distribution", float64(g.style.Padding), 20)
	dc.SetFontFace(face)

	maxCount := 0
	for _, c := range distribution {
		if c > maxCount {
			maxCount = c
		}
	}

	labelWidth := 20.0
	countWidth := 35.0
	barArea := float64(g.style.Width) - float64(2*g.style.Padding) - labelWidth - countWidth

	y := float64(g.style.Height)
	for n, count := range distribution {
		rowY := y + float64(n*g.style.RowHeight)

		// Guess count label
		dc.SetRGB(0.85, 0.85, 0.9)
		dc.DrawString(fmt.Sprintf("%d", n+1), float64(g.style.Padding), rowY+14)

		// Bar, minimum sliver so zero rows stay visible
		barWidth := 4.0
		if maxCount > 0 && count > 0 {
			barWidth = barArea * float64(count) / float64(maxCount)
		}
		if count == maxCount && maxCount > 0 {
			dc.SetRGB(g.style.MaxColor[0], g.style.MaxColor[1], g.style.MaxColor[2])
		} else {
			dc.SetRGB(g.style.BarColor[0], g.style.BarColor[1], g.style.BarColor[2])
		}
		dc.DrawRoundedRectangle(float64(g.style.Padding)+labelWidth, rowY+2, barWidth, float64(g.style.RowHeight)-10, 3)
		dc.Fill()

		// Count at the end of the bar
		dc.SetRGB(1, 1, 1)
		dc.DrawString(fmt.Sprintf("%d", count), float64(g.style.Padding)+labelWidth+barWidth+6, rowY+14)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

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
