package main

import "math"

// Point is a touch sample in viewport coordinates
type Point struct {
	X, Y float64
}

// Rect is a size and top-left offset in viewport coordinates
type Rect struct {
	Width  float64
	Height float64
	Left   float64
	Top    float64
}

// Dimensions are the natural pixel dimensions of an image
type Dimensions struct {
	Width       int
	Height      int
	Orientation Orientation // EXIF orientation, already applied to Width/Height
}

// Transform describes the current placement of the active image.
// It is always handed out by value so callers get a consistent snapshot.
type Transform struct {
	ActiveIndex int

	Width  float64
	Height float64
	Top    float64
	Left   float64
	Scale  float64

	ImageWidth  float64
	ImageHeight float64

	// SwiperDistance is the horizontal drag applied while a left/right
	// gesture is in progress; it is 0 outside one.
	SwiperDistance float64

	Touch bool
}

// Rect returns the size and position part of the transform
func (t Transform) Rect() Rect {
	return Rect{Width: t.Width, Height: t.Height, Left: t.Left, Top: t.Top}
}

// Center returns the viewport coordinate of the image center
func (t Transform) Center() Point {
	return Point{X: t.Left + t.Width/2, Y: t.Top + t.Height/2}
}

// HasDimensions reports whether the natural size of the image is known
func (t Transform) HasDimensions() bool {
	return t.ImageWidth > 0 && t.ImageHeight > 0
}

// fitToWidth computes the default placement of an image: full viewport
// width, aspect-preserving height, centered. Tall images overflow the
// viewport vertically and become pannable. imgW must be non-zero.
func fitToWidth(imgW, imgH, viewportW, viewportH float64) Rect {
	width := viewportW
	height := width * imgH / imgW
	return Rect{
		Width:  width,
		Height: height,
		Left:   (viewportW - width) / 2,
		Top:    (viewportH - height) / 2,
	}
}

func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func midpoint(a, b Point) Point {
	return Point{X: a.X + (b.X-a.X)/2, Y: a.Y + (b.Y-a.Y)/2}
}
