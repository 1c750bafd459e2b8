package main

import "math"

// Direction is the primary axis of a single-finger gesture
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// IsVertical reports whether the direction drives vertical panning
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// IsHorizontal reports whether the direction drives swipe paging
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// classifyDirection maps the displacement from (sx, sy) to (ex, ey) onto a
// direction. Displacements inside the dead zone on both axes are DirectionNone.
// Screen coordinates grow downwards, so a negative angle points up.
func classifyDirection(sx, sy, ex, ey, deadZone float64) Direction {
	dx := ex - sx
	dy := ey - sy
	if math.Abs(dx) < deadZone && math.Abs(dy) < deadZone {
		return DirectionNone
	}

	angle := math.Atan2(dy, dx) * 180 / math.Pi
	switch {
	case angle >= -135 && angle <= -45:
		return DirectionUp
	case angle > 45 && angle < 135:
		return DirectionDown
	case (angle >= 135 && angle <= 180) || (angle >= -180 && angle < -135):
		return DirectionLeft
	default:
		return DirectionRight
	}
}
