package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSequence is the ordered list of images being viewed.
// Its length is fixed for the duration of a viewing session.
type ImageSequence interface {
	Len() int
}

// DimensionResolver reports the natural pixel size of the image at an index.
// It is called from a background goroutine, once per navigation.
type DimensionResolver interface {
	ResolveDimensions(ctx context.Context, idx int) (Dimensions, error)
}

// ImageSource combines what the viewer needs from the image layer
type ImageSource interface {
	ImageSequence
	DimensionResolver
}

// TouchSink receives raw touch sequences from the input adapter
type TouchSink interface {
	TouchStart(points []Point)
	TouchMove(points []Point)
	TouchEnd(remaining []Point)
	IsVisible() bool
}

// RenderState provides read-only access to viewer state for the renderer
type RenderState interface {
	Transform() Transform
	NeighborRect() Rect
	TileOffset(idx int) float64
	VisibleTiles() []int
	IsLoading() bool
	Len() int
}

// TextureSource provides decoded images for drawing
type TextureSource interface {
	GetImage(idx int) *ebiten.Image
	ImageName(idx int) string
}
