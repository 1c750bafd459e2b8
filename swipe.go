package main

import (
	"math"
	"time"
)

func (v *Viewer) swipeMove(p Point) {
	s := v.session
	s.lock()
	v.state.SwiperDistance += p.X - s.moveX
	s.moveTo(p)
}

// swipeRelease decides whether a finished horizontal drag changes the page.
// Long drags commit on distance alone; quick flicks commit in their direction.
func (v *Viewer) swipeRelease(elapsed time.Duration) {
	d := v.state.SwiperDistance
	critical := v.settings.SwipeCriticalRatio * v.viewportW
	shortTime := elapsed < v.settings.swipeShortTime()

	if math.Abs(d) < critical && !shortTime {
		debugLog("Swipe of %.0fpx in %v snaps back", d, elapsed)
		v.state.SwiperDistance = 0
		v.state.Touch = false
		return
	}

	next := resolveSwipeIndex(v.state.ActiveIndex, v.images.Len(), d, critical, shortTime)
	v.navigateTo(next, false)
}

// resolveSwipeIndex returns the page a committed swipe lands on. Retreat is
// evaluated after advance and overrides it.
func resolveSwipeIndex(active, length int, d, critical float64, shortTime bool) int {
	next := active
	if d <= -critical || (shortTime && d < 0) {
		next = active + 1
		if next >= length {
			next = active
		}
	}
	if d >= critical || (shortTime && d > 0) {
		next = active - 1
		if next < 0 {
			next = active
		}
	}
	return next
}
