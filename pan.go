package main

import "math"

// panMove drags an image taller than the viewport up or down. The bottom
// edge may not rise more than -MinTop above the viewport bottom and the top
// edge may not drop below MaxTop. Horizontal movement only applies once
// the image is zoomed.
func (v *Viewer) panMove(p Point) {
	st := &v.state
	if st.Height <= v.viewportH {
		return
	}
	s := v.session
	s.lock()

	newTop := st.Top + p.Y - s.moveY
	newLeft := st.Left + p.X - s.moveX
	if (newTop+st.Height)-v.viewportH < v.settings.MinTop {
		newTop = st.Top
	}

	st.Top = math.Min(newTop, v.settings.MaxTop)
	if st.Scale != 1 {
		st.Left = newLeft
	}
	s.moveTo(p)
}

// panRelease snaps overscrolled edges back flush with the viewport
func (v *Viewer) panRelease() {
	st := &v.state
	top := st.Top
	left := st.Left

	if top+st.Height < v.viewportH && st.Height > v.viewportH {
		top = v.viewportH - st.Height
	}
	if top >= v.settings.MaxTop && st.Height > v.viewportH {
		top = 0
	}
	if left > 0 {
		left = 0
	}
	if left+st.Width < v.viewportW {
		left = v.viewportW - st.Width
	}

	st.Top = top
	st.Left = left
	st.Touch = false
}
