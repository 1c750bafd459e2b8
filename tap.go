package main

import (
	"math"
	"time"
)

// isTap reports whether a finished single-finger sequence was a short tap
// that barely moved. Callers have already ruled out pinches, vertical pans
// and swipes.
func (v *Viewer) isTap(s *touchSession, now time.Time) bool {
	if math.Abs(s.moveX-s.startX) > v.settings.TapSlop ||
		math.Abs(s.moveY-s.startY) > v.settings.TapSlop {
		return false
	}
	return s.elapsed(now) < v.settings.tapTimeout()
}

func (v *Viewer) requestClose() {
	debugLog("Tap on [%d/%d] requests close", v.state.ActiveIndex+1, v.images.Len())
	if v.onClose != nil {
		v.onClose()
	}
}
