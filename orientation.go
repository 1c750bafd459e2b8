package main

import (
	"io"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rwcarlsen/goexif/exif"
)

// Orientation is the EXIF orientation tag (1-8). Zero means unknown and is
// treated like OrientationNormal.
type Orientation int

const (
	OrientationNormal      Orientation = 1
	OrientationFlipH       Orientation = 2
	OrientationRotate180   Orientation = 3
	OrientationFlipV       Orientation = 4
	OrientationTranspose   Orientation = 5
	OrientationRotate90CW  Orientation = 6
	OrientationTransverse  Orientation = 7
	OrientationRotate270CW Orientation = 8
)

// SwapsAxes reports whether the image is displayed with width and height exchanged
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationTranspose && o <= OrientationRotate270CW
}

// correction returns how to display the stored pixels upright: an optional
// horizontal mirror followed by a clockwise rotation in degrees
func (o Orientation) correction() (mirror bool, degrees int) {
	switch o {
	case OrientationFlipH:
		return true, 0
	case OrientationRotate180:
		return false, 180
	case OrientationFlipV:
		return true, 180
	case OrientationTranspose:
		return true, 270
	case OrientationRotate90CW:
		return false, 90
	case OrientationTransverse:
		return true, 90
	case OrientationRotate270CW:
		return false, 270
	default:
		return false, 0
	}
}

// readOrientation extracts the EXIF orientation from r. Images without EXIF
// data, or with a tag out of range, are reported as OrientationNormal.
func readOrientation(r io.Reader) Orientation {
	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return OrientationNormal
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientationNormal
	}
	v, err := tag.Int(0)
	if err != nil || v < int(OrientationNormal) || v > int(OrientationRotate270CW) {
		return OrientationNormal
	}
	return Orientation(v)
}

// applyOrientation returns img turned upright. The source image is returned
// unchanged for OrientationNormal; otherwise it is deallocated.
func applyOrientation(img *ebiten.Image, o Orientation) *ebiten.Image {
	mirror, degrees := o.correction()
	if !mirror && degrees == 0 {
		return img
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	finalW, finalH := w, h
	if o.SwapsAxes() {
		finalW, finalH = h, w
	}

	upright := ebiten.NewImage(finalW, finalH)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if mirror {
		op.GeoM.Scale(-1, 1)
	}
	if degrees != 0 {
		op.GeoM.Rotate(float64(degrees) * math.Pi / 180)
	}
	op.GeoM.Translate(float64(finalW)/2, float64(finalH)/2)

	upright.DrawImage(img, op)
	img.Deallocate()
	return upright
}
