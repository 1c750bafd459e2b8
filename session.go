package main

import "time"

// touchSession holds the state of one touch sequence, from the first
// finger down until the last finger lifts. It is discarded afterwards.
type touchSession struct {
	startTime time.Time

	startX, startY float64
	moveX, moveY   float64

	startScale    float64
	touchDistance float64
	pinchScale    float64
	zoomCenterX   float64
	zoomCenterY   float64
	multiTouch    bool

	direction       Direction
	directionLocked bool
}

func newTouchSession() *touchSession {
	return &touchSession{pinchScale: 1}
}

// begin records a finger-down event. It runs for the first finger and again
// whenever another finger joins; the direction lock survives until the
// session ends.
func (s *touchSession) begin(points []Point, now time.Time, scale, swiperDistance float64) {
	s.touchDistance = 0
	s.zoomCenterX = 0
	s.zoomCenterY = 0
	s.multiTouch = false

	if len(points) > 1 && swiperDistance == 0 {
		s.touchDistance = distance(points[0], points[1])
		center := midpoint(points[0], points[1])
		s.zoomCenterX = center.X
		s.zoomCenterY = center.Y
		s.multiTouch = true
	}

	s.startX = points[0].X
	s.startY = points[0].Y
	s.moveX = s.startX
	s.moveY = s.startY
	s.startScale = scale
	s.startTime = now
}

// track classifies a single-finger move relative to the last seen point.
// A locked direction is returned unchanged.
func (s *touchSession) track(p Point, deadZone float64) Direction {
	if !s.directionLocked {
		s.direction = classifyDirection(s.moveX, s.moveY, p.X, p.Y, deadZone)
	}
	return s.direction
}

func (s *touchSession) lock() {
	s.directionLocked = true
}

func (s *touchSession) moveTo(p Point) {
	s.moveX = p.X
	s.moveY = p.Y
}

func (s *touchSession) elapsed(now time.Time) time.Duration {
	return now.Sub(s.startTime)
}
