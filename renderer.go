package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Renderer draws the strip of tiles around the active image
type Renderer struct {
	renderState       RenderState
	textures          TextureSource
	showPageIndicator bool
	fontSize          float64
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState, textures TextureSource, config Config) *Renderer {
	return &Renderer{
		renderState:       renderState,
		textures:          textures,
		showPageIndicator: config.ShowPageIndicator,
		fontSize:          config.FontSize,
	}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Clear()

	if r.renderState.Len() == 0 {
		return
	}

	state := r.renderState.Transform()
	for _, idx := range r.renderState.VisibleTiles() {
		offset := r.renderState.TileOffset(idx)
		if idx == state.ActiveIndex {
			r.drawActiveTile(screen, state, offset)
		} else {
			r.drawNeighborTile(screen, idx, offset)
		}
	}

	if r.showPageIndicator {
		r.drawPageIndicator(screen, state.ActiveIndex)
	}
}

func (r *Renderer) drawActiveTile(screen *ebiten.Image, state Transform, offset float64) {
	if r.renderState.IsLoading() && !state.HasDimensions() {
		return
	}

	if !state.HasDimensions() {
		r.drawPlaceholderTile(screen, state.ActiveIndex, offset)
		return
	}

	img := r.textures.GetImage(state.ActiveIndex)
	if img == nil {
		r.drawPlaceholderTile(screen, state.ActiveIndex, offset)
		return
	}

	rect := activeRect(state, r.renderState.IsLoading(),
		float64(img.Bounds().Dx()), float64(img.Bounds().Dy()), r.renderState.NeighborRect())
	rect.Left += offset
	drawImageInRect(screen, img, rect)
}

// activeRect places the active texture. While a lookup is pending the
// transform still holds the previous image's size, so the texture is
// fitted into the neighbour box instead.
func activeRect(state Transform, loading bool, imgW, imgH float64, box Rect) Rect {
	if loading {
		return containRect(imgW, imgH, box)
	}
	return state.Rect()
}

func (r *Renderer) drawNeighborTile(screen *ebiten.Image, idx int, offset float64) {
	box := r.renderState.NeighborRect()
	box.Left += offset

	img := r.textures.GetImage(idx)
	if img == nil {
		DrawPlaceholder(screen, box, r.textures.ImageName(idx))
		return
	}

	fit := containRect(float64(img.Bounds().Dx()), float64(img.Bounds().Dy()), box)
	drawImageInRect(screen, img, fit)
}

func (r *Renderer) drawPlaceholderTile(screen *ebiten.Image, idx int, offset float64) {
	box := r.renderState.NeighborRect()
	box.Left += offset
	DrawPlaceholder(screen, box, r.textures.ImageName(idx))
}

func (r *Renderer) drawPageIndicator(screen *ebiten.Image, active int) {
	if globalFontSource == nil {
		return
	}

	face := &text.GoTextFace{
		Source: globalFontSource,
		Size:   r.fontSize,
	}

	label := pageIndicatorText(active, r.renderState.Len())
	textWidth, textHeight := text.Measure(label, face, 0)

	// Bottom center, clear of the home indicator area on phones
	padding := 10.0
	textX := (float64(screen.Bounds().Dx()) - textWidth) / 2
	textY := float64(screen.Bounds().Dy()) - textHeight - padding*2

	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)
	DrawText(screen, label, face, textX, textY, colorWhite)
}

func pageIndicatorText(active, total int) string {
	return fmt.Sprintf("%d / %d", active+1, total)
}

// drawImageInRect stretches img over dst rect r
func drawImageInRect(screen *ebiten.Image, img *ebiten.Image, r Rect) {
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(r.Width/float64(iw), r.Height/float64(ih))
	op.GeoM.Translate(r.Left, r.Top)
	screen.DrawImage(img, op)
}

// containRect fits an image of the given size inside box, preserving its
// aspect ratio, centered on both axes
func containRect(imgW, imgH float64, box Rect) Rect {
	if imgW <= 0 || imgH <= 0 {
		return box
	}

	scale := math.Min(box.Width/imgW, box.Height/imgH)
	w, h := imgW*scale, imgH*scale
	return Rect{
		Width:  w,
		Height: h,
		Left:   box.Left + (box.Width-w)/2,
		Top:    box.Top + (box.Height-h)/2,
	}
}
