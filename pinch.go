package main

// pinchMove zooms around the midpoint recorded when the second finger went
// down. Zooming past MaxScale or below MinScale is ignored, as is any pinch
// while a swipe is in progress.
func (v *Viewer) pinchMove(points []Point) {
	s := v.session
	if s.touchDistance <= 0 {
		return
	}

	ratio := distance(points[0], points[1]) / s.touchDistance
	newScale := v.state.Scale + s.startScale*(ratio-s.pinchScale)
	if newScale > v.settings.MaxScale || newScale < v.settings.MinScale || v.state.SwiperDistance != 0 {
		return
	}
	// one step may shrink the size by at most a factor of MinScale
	if 1+newScale-v.state.Scale < v.settings.MinScale {
		return
	}
	v.applyZoom(s.zoomCenterX, s.zoomCenterY, newScale, ratio)
}

// applyZoom resizes the active image to newScale while keeping the viewport
// point (targetX, targetY) fixed relative to the image.
// A call that leaves the scale unchanged is a no-op.
func (v *Viewer) applyZoom(targetX, targetY, newScale, ratio float64) {
	st := &v.state
	diffScale := newScale - st.Scale
	v.resize(targetX, targetY, newScale, st.Width*diffScale, st.Height*diffScale)
	if v.session != nil {
		v.session.pinchScale = ratio
	}
}

// growIntoFit takes the zero-size placement of a first load to the default
// fit, growing around its center.
func (v *Viewer) growIntoFit() {
	if !v.state.HasDimensions() {
		return
	}
	center := v.state.Center()
	fit := v.defaultFit()
	v.resize(center.X, center.Y, 1, fit.Width, fit.Height)
}

func (v *Viewer) resize(targetX, targetY, newScale, diffWidth, diffHeight float64) {
	st := &v.state
	diffScale := newScale - st.Scale
	center := st.Center()
	diffX := targetX - center.X
	diffY := targetY - center.Y

	st.Width += diffWidth
	st.Height += diffHeight
	st.Left -= diffWidth/2 + diffX*diffScale
	st.Top -= diffHeight/2 + diffY*diffScale
	st.Scale = newScale
}

// resetToFit bounces a zoomed-out image back to its default fit
func (v *Viewer) resetToFit() {
	if v.state.HasDimensions() {
		v.setFit()
	} else {
		v.state.Scale = 1
	}
	v.state.Touch = false
}
