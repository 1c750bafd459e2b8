package main

import (
	"testing"
	"time"
)

func TestTapRequestsClose(t *testing.T) {
	tests := []struct {
		name      string
		moves     []Point
		lift      []Point
		duration  time.Duration
		wantClose int
	}{
		{"Tap", nil, nil, 100 * time.Millisecond, 1},
		{"TapWithJitter", []Point{{X: 101, Y: 100}}, nil, 100 * time.Millisecond, 1},
		{"JustUnderTimeout", nil, nil, 499 * time.Millisecond, 1},
		{"AtTimeout", nil, nil, 500 * time.Millisecond, 0},
		{"LongPress", nil, nil, 600 * time.Millisecond, 0},
		{"MovedExactlySlop", nil, []Point{{X: 110, Y: 100}}, 100 * time.Millisecond, 1},
		{"MovedPastSlop", nil, []Point{{X: 100, Y: 111}}, 100 * time.Millisecond, 0},
		{"VerticalDrag", []Point{{X: 100, Y: 150}}, nil, 100 * time.Millisecond, 0},
		{"HorizontalDrag", []Point{{X: 130, Y: 100}}, nil, 100 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, clock, _ := shownViewer(t, landscape, landscape)
			closed := 0
			v.OnClose(func() { closed++ })

			v.TouchStart([]Point{{X: 100, Y: 100}})
			for _, p := range tt.moves {
				v.TouchMove([]Point{p})
			}
			// a finger lifting hands the remaining position over
			if tt.lift != nil {
				v.TouchEnd(tt.lift)
			}
			clock.Advance(tt.duration)
			v.TouchEnd(nil)

			if closed != tt.wantClose {
				t.Errorf("Expected %d close requests, got %d", tt.wantClose, closed)
			}
		})
	}
}

func TestTapAfterPinchDoesNotClose(t *testing.T) {
	v, clock, _ := shownViewer(t, landscape)
	closed := false
	v.OnClose(func() { closed = true })

	v.TouchStart(pinchPoints(200, 400, 100))
	clock.Advance(50 * time.Millisecond)
	v.TouchEnd(nil)

	if closed {
		t.Error("Expected a two-finger touch not to count as a tap")
	}
}

func TestTapWithoutCloseHandler(t *testing.T) {
	v, clock, _ := shownViewer(t, landscape)

	v.TouchStart([]Point{{X: 100, Y: 100}})
	clock.Advance(10 * time.Millisecond)
	v.TouchEnd(nil)

	if !v.IsVisible() {
		t.Error("Expected the viewer to leave hiding to the close handler")
	}
}
