package main

import (
	"testing"
	"time"
)

// drag performs a single-finger horizontal drag from startX to endX in steps
// of at most 20px, taking the given duration
func drag(v *Viewer, clock *fakeClock, startX, endX, y float64, d time.Duration) {
	v.TouchStart([]Point{{X: startX, Y: y}})
	step := 20.0
	if endX < startX {
		step = -step
	}
	x := startX
	for x != endX {
		x += step
		if (step < 0 && x < endX) || (step > 0 && x > endX) {
			x = endX
		}
		v.TouchMove([]Point{{X: x, Y: y}})
	}
	clock.Advance(d)
	v.TouchEnd(nil)
}

func TestSwipeRelease(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		fromX     float64
		toX       float64
		duration  time.Duration
		wantIndex int
	}{
		{"LongDragAdvances", 1, 300, 130, 400 * time.Millisecond, 2},
		{"QuickFlickAdvances", 1, 300, 250, 150 * time.Millisecond, 2},
		{"LongDragRetreats", 1, 100, 270, 400 * time.Millisecond, 0},
		{"QuickFlickRetreats", 1, 100, 140, 150 * time.Millisecond, 0},
		{"ShortSlowDragSnapsBack", 1, 100, 140, 400 * time.Millisecond, 1},
		{"FlickJustUnderShortTime", 1, 100, 140, 299 * time.Millisecond, 0},
		{"FlickAtShortTimeSnapsBack", 1, 100, 140, 300 * time.Millisecond, 1},
		{"DragJustUnderCritical", 1, 300, 141, 400 * time.Millisecond, 1},
		{"DragAtCritical", 1, 300, 140, 400 * time.Millisecond, 2},
		{"AdvanceClampsAtEnd", 2, 300, 100, 400 * time.Millisecond, 2},
		{"RetreatClampsAtStart", 0, 100, 300, 400 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, clock, _ := shownViewer(t, landscape, landscape, landscape)
			v.SetActiveIndex(tt.start)
			settle(t, v)

			drag(v, clock, tt.fromX, tt.toX, 400, tt.duration)

			st := v.Transform()
			if st.ActiveIndex != tt.wantIndex {
				t.Errorf("Expected index %d, got %d", tt.wantIndex, st.ActiveIndex)
			}
			if st.SwiperDistance != 0 {
				t.Errorf("Expected swiper distance reset, got %v", st.SwiperDistance)
			}
			if st.Touch {
				t.Error("Expected touch flag cleared after release")
			}
		})
	}
}

func TestSwipeMoveTracksDistance(t *testing.T) {
	v, _, _ := shownViewer(t, landscape, landscape)

	v.TouchStart([]Point{{X: 300, Y: 400}})
	v.TouchMove([]Point{{X: 290, Y: 400}})
	v.TouchMove([]Point{{X: 250, Y: 430}})

	st := v.Transform()
	if st.SwiperDistance != -50 {
		t.Errorf("Expected swiper distance -50, got %v", st.SwiperDistance)
	}
	if !st.Touch {
		t.Error("Expected touch flag while dragging")
	}
	if !v.session.directionLocked || v.session.direction != DirectionLeft {
		t.Errorf("Expected direction locked to left, got %v (locked: %t)", v.session.direction, v.session.directionLocked)
	}
}

func TestSwipeCommitReseedsFit(t *testing.T) {
	v, clock, _ := shownViewer(t, landscape, tall)

	drag(v, clock, 300, 100, 400, 400*time.Millisecond)
	settle(t, v)

	assertRect(t, v.Transform(), Rect{Width: 400, Height: 1600, Left: 0, Top: -400})
}

func TestResolveSwipeIndex(t *testing.T) {
	tests := []struct {
		name      string
		active    int
		length    int
		d         float64
		shortTime bool
		want      int
	}{
		{"AdvanceOnDistance", 3, 10, -200, false, 4},
		{"AdvanceOnExactThreshold", 3, 10, -160, false, 4},
		{"RetreatOnDistance", 3, 10, 200, false, 2},
		{"AdvanceOnFlick", 3, 10, -5, true, 4},
		{"RetreatOnFlick", 3, 10, 5, true, 2},
		{"NoCommit", 3, 10, 100, false, 3},
		{"ClampLast", 9, 10, -200, false, 9},
		{"ClampFirst", 0, 10, 200, false, 0},
		{"SingleImage", 0, 1, -200, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSwipeIndex(tt.active, tt.length, tt.d, 160, tt.shortTime)
			if got != tt.want {
				t.Errorf("resolveSwipeIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSwipeLockIgnoresVerticalMoves(t *testing.T) {
	v, _, _ := shownViewer(t, tall, tall)
	top := v.Transform().Top

	v.TouchStart([]Point{{X: 300, Y: 400}})
	v.TouchMove([]Point{{X: 280, Y: 400}})
	// mostly upward, on an image tall enough to pan
	v.TouchMove([]Point{{X: 275, Y: 300}})

	st := v.Transform()
	if st.SwiperDistance != -25 {
		t.Errorf("Expected swiper distance -25, got %v", st.SwiperDistance)
	}
	if st.Top != top {
		t.Errorf("Expected top to stay at %v, got %v", top, st.Top)
	}
}
