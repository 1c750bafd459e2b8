package main

import (
	"bytes"
	"testing"
)

// exifJPEGHeader builds the start of a JPEG holding only an APP1 segment
// with a big-endian TIFF block whose single IFD entry is the orientation tag
func exifJPEGHeader(orientation uint16) []byte {
	tiff := []byte{
		'M', 'M', 0x00, 0x2a, // byte order and magic
		0x00, 0x00, 0x00, 0x08, // offset of IFD0
		0x00, 0x01, // one entry
		0x01, 0x12, // Orientation
		0x00, 0x03, // SHORT
		0x00, 0x00, 0x00, 0x01, // count
		byte(orientation >> 8), byte(orientation), 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	length := len(payload) + 2

	header := []byte{0xff, 0xd8, 0xff, 0xe1, byte(length >> 8), byte(length)}
	return append(header, payload...)
}

func TestReadOrientation(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Orientation
	}{
		{"Rotate90", exifJPEGHeader(6), OrientationRotate90CW},
		{"FlipH", exifJPEGHeader(2), OrientationFlipH},
		{"OutOfRange", exifJPEGHeader(9), OrientationNormal},
		{"NoExif", []byte("plain bytes without any markers"), OrientationNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readOrientation(bytes.NewReader(tt.data)); got != tt.want {
				t.Errorf("readOrientation = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrientationCorrection(t *testing.T) {
	tests := []struct {
		o       Orientation
		mirror  bool
		degrees int
		swaps   bool
	}{
		{0, false, 0, false},
		{OrientationNormal, false, 0, false},
		{OrientationFlipH, true, 0, false},
		{OrientationRotate180, false, 180, false},
		{OrientationFlipV, true, 180, false},
		{OrientationTranspose, true, 270, true},
		{OrientationRotate90CW, false, 90, true},
		{OrientationTransverse, true, 90, true},
		{OrientationRotate270CW, false, 270, true},
	}

	for _, tt := range tests {
		mirror, degrees := tt.o.correction()
		if mirror != tt.mirror || degrees != tt.degrees {
			t.Errorf("Orientation %d: correction = (%t, %d), want (%t, %d)", tt.o, mirror, degrees, tt.mirror, tt.degrees)
		}
		if tt.o.SwapsAxes() != tt.swaps {
			t.Errorf("Orientation %d: SwapsAxes = %t, want %t", tt.o, tt.o.SwapsAxes(), tt.swaps)
		}
	}
}
