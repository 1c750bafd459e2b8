package main

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorWhite       = color.RGBA{255, 255, 255, 255}
	colorPlaceholder = color.RGBA{60, 60, 60, 255}
	bgColorLight     = color.RGBA{0, 0, 0, 128}
)

// Global font source shared by the page indicator and placeholders
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

func drawBorder(dst *ebiten.Image, r Rect, thickness float64, c color.RGBA) {
	DrawFilledRect(dst, r.Left, r.Top, r.Width, thickness, c)
	DrawFilledRect(dst, r.Left, r.Top+r.Height-thickness, r.Width, thickness, c)
	DrawFilledRect(dst, r.Left, r.Top, thickness, r.Height, c)
	DrawFilledRect(dst, r.Left+r.Width-thickness, r.Top, thickness, r.Height, c)
}

// DrawPlaceholder fills r with the placeholder shown for images whose size
// could not be read, labelled with the image name when a font is available
func DrawPlaceholder(screen *ebiten.Image, r Rect, name string) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}

	DrawFilledRect(screen, r.Left, r.Top, r.Width, r.Height, colorPlaceholder)
	drawBorder(screen, r, 2, colorWhite)

	if globalFontSource == nil {
		return
	}

	face := &text.GoTextFace{
		Source: globalFontSource,
		Size:   16.0,
	}

	lines := []string{"Cannot display image", truncateText(name, int(r.Width-20)/8)}
	y := r.Top + r.Height/2 - 20
	for _, line := range lines {
		w, _ := text.Measure(line, face, 0)
		DrawText(screen, line, face, r.Left+(r.Width-w)/2, y, colorWhite)
		y += 24
	}
}

// truncateText shortens s to at most maxChars runes, marking the cut with "..."
func truncateText(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return "..."
	}
	return string(runes[:maxChars-3]) + "..."
}
