package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// mousePointerID identifies the mouse when it stands in for a finger.
// Touch IDs from ebiten are never negative.
const mousePointerID = -1

// pointer is one finger (or the mouse) seen during a frame
type pointer struct {
	id  int
	pos Point
}

// InputHandler turns the per-frame pointer state polled from ebiten into
// touch start/move/end events. Fingers keep the order in which they landed,
// so the first two points of every event are always the same two fingers.
type InputHandler struct {
	sink               TouchSink
	enableMousePointer bool

	active   []pointer
	touchIDs []ebiten.TouchID
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(sink TouchSink, enableMousePointer bool) *InputHandler {
	return &InputHandler{
		sink:               sink,
		enableMousePointer: enableMousePointer,
	}
}

// HandleInput polls touches and the mouse and forwards the changes since the
// previous frame. Returns true if any event was delivered.
func (h *InputHandler) HandleInput() bool {
	return h.process(h.poll())
}

func (h *InputHandler) poll() []pointer {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])

	frame := make([]pointer, 0, len(h.touchIDs)+1)
	for _, tid := range h.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		frame = append(frame, pointer{id: int(tid), pos: Point{X: float64(x), Y: float64(y)}})
	}

	// The mouse only acts as a finger while no real finger is down
	if h.enableMousePointer && len(frame) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame = append(frame, pointer{id: mousePointerID, pos: Point{X: float64(x), Y: float64(y)}})
	}

	return frame
}

// process diffs frame against the pointers of the previous frame. Lifted
// fingers are reported first, then new fingers, then movement.
func (h *InputHandler) process(frame []pointer) bool {
	if !h.sink.IsVisible() {
		h.active = h.active[:0]
		return false
	}

	current := make(map[int]Point, len(frame))
	for _, p := range frame {
		current[p.id] = p.pos
	}

	var kept []pointer
	lifted := false
	moved := false
	for _, p := range h.active {
		pos, ok := current[p.id]
		if !ok {
			lifted = true
			continue
		}
		if pos != p.pos {
			moved = true
		}
		kept = append(kept, pointer{id: p.id, pos: pos})
	}

	var landed []pointer
	for _, p := range frame {
		if !containsPointer(h.active, p.id) {
			landed = append(landed, p)
		}
	}

	delivered := false
	if lifted {
		h.sink.TouchEnd(pointPositions(kept))
		delivered = true
	}

	h.active = append(kept, landed...)

	switch {
	case len(landed) > 0:
		h.sink.TouchStart(pointPositions(h.active))
		delivered = true
	case moved:
		h.sink.TouchMove(pointPositions(h.active))
		delivered = true
	}

	return delivered
}

func containsPointer(pointers []pointer, id int) bool {
	for _, p := range pointers {
		if p.id == id {
			return true
		}
	}
	return false
}

func pointPositions(pointers []pointer) []Point {
	points := make([]Point, len(pointers))
	for i, p := range pointers {
		points[i] = p.pos
	}
	return points
}
