package main

import (
	"log"
	"time"
)

// Viewer is the touch engine of the full-screen viewer. It turns touch
// sequences into a Transform for the active image and into navigation and
// close decisions.
//
// All methods must be called from the same goroutine (the game update loop).
// Dimension lookups run in the background and are applied during Update.
type Viewer struct {
	images   ImageSequence
	loader   *dimensionLoader
	settings GestureSettings
	now      func() time.Time

	viewportW float64
	viewportH float64
	visible   bool

	state   Transform
	session *touchSession

	// deferred holds work postponed to the next Update call
	deferred []func()
	// fitPending is set between a first-load result and its deferred fit
	fitPending bool

	onClose func()
}

// NewViewer creates a hidden viewer over source
func NewViewer(source ImageSource, settings GestureSettings, viewportW, viewportH float64) *Viewer {
	return &Viewer{
		images:    source,
		loader:    newDimensionLoader(source),
		settings:  settings,
		now:       time.Now,
		viewportW: viewportW,
		viewportH: viewportH,
		state:     Transform{Scale: 1},
	}
}

// OnClose registers the callback fired when a tap asks to close the viewer.
// The viewer does not hide itself; that is up to the caller.
func (v *Viewer) OnClose(fn func()) {
	v.onClose = fn
}

// Show makes the viewer visible and loads the image at index
func (v *Viewer) Show(index int) {
	v.visible = true
	v.navigateTo(index, true)
	v.deferTask(func() {
		v.state.SwiperDistance = 0
	})
}

// Hide stops reacting to touches and drops any touch in progress. The
// placement is kept as is.
func (v *Viewer) Hide() {
	v.visible = false
	v.session = nil
	v.state.Touch = false
	v.fitPending = false
	v.loader.stop()
}

// IsVisible reports whether the viewer is listening to touches
func (v *Viewer) IsVisible() bool {
	return v.visible
}

// SetActiveIndex navigates to index if it differs from the active one
func (v *Viewer) SetActiveIndex(index int) {
	if !v.visible || index == v.state.ActiveIndex {
		return
	}
	v.navigateTo(index, false)
}

// SetViewportSize updates the viewport. A resolved image at natural scale is
// refitted so it keeps filling the width.
func (v *Viewer) SetViewportSize(w, h float64) {
	if w == v.viewportW && h == v.viewportH {
		return
	}
	v.viewportW = w
	v.viewportH = h
	if v.state.HasDimensions() && v.state.Scale == 1 && v.session == nil {
		v.setFit()
	}
}

// Update runs work deferred by the previous call and applies finished
// dimension lookups. Call it once per frame.
func (v *Viewer) Update() {
	tasks := v.deferred
	v.deferred = nil
	for _, task := range tasks {
		task()
	}

	for {
		res, ok := v.loader.poll()
		if !ok {
			return
		}
		v.applyDimensions(res)
	}
}

// TouchStart handles one or more fingers going down
func (v *Viewer) TouchStart(points []Point) {
	if !v.visible || len(points) == 0 {
		return
	}
	if v.session == nil {
		v.session = newTouchSession()
		v.state.SwiperDistance = 0
	}
	v.session.begin(points, v.now(), v.state.Scale, v.state.SwiperDistance)
	v.state.Touch = true
}

// TouchMove handles movement of the fingers currently down
func (v *Viewer) TouchMove(points []Point) {
	if !v.visible || v.session == nil || len(points) == 0 {
		return
	}
	if len(points) > 1 {
		v.pinchMove(points)
		return
	}

	p := points[0]
	switch dir := v.session.track(p, v.settings.DeadZone); {
	case dir.IsVertical():
		v.panMove(p)
	case dir.IsHorizontal():
		v.swipeMove(p)
	}
}

// TouchEnd handles fingers lifting; remaining lists the fingers still down
func (v *Viewer) TouchEnd(remaining []Point) {
	if !v.visible || v.session == nil {
		return
	}
	s := v.session
	if len(remaining) > 0 {
		s.moveTo(remaining[0])
		return
	}
	v.session = nil

	now := v.now()
	switch {
	case s.multiTouch:
		if v.state.Scale < 1 {
			v.deferTask(v.resetToFit)
		}
	case s.direction.IsVertical():
		v.panRelease()
		return
	case v.state.SwiperDistance != 0:
		v.swipeRelease(s.elapsed(now))
	case v.isTap(s, now):
		v.requestClose()
	}
	v.state.Touch = false
}

// Transform returns a snapshot of the active image placement
func (v *Viewer) Transform() Transform {
	return v.state
}

// Len returns the number of images in the sequence
func (v *Viewer) Len() int {
	return v.images.Len()
}

// IsLoading reports whether the active image's dimensions are still pending
func (v *Viewer) IsLoading() bool {
	return v.loader.pending || v.fitPending
}

// NeighborRect is the placement used for tiles next to the active one.
// It only depends on the viewport size.
func (v *Viewer) NeighborRect() Rect {
	size := v.viewportW * v.settings.NeighborSizeRatio
	return Rect{
		Width:  size,
		Height: size,
		Left:   (v.viewportW - size) / 2,
		Top:    (v.viewportH - size) / 2,
	}
}

// TileOffset is the horizontal translation of the tile at idx
func (v *Viewer) TileOffset(idx int) float64 {
	return float64(idx-v.state.ActiveIndex)*v.viewportW + v.state.SwiperDistance
}

// VisibleTiles lists the indices worth drawing: the active one and its
// direct neighbours
func (v *Viewer) VisibleTiles() []int {
	n := v.images.Len()
	tiles := make([]int, 0, 3)
	for idx := v.state.ActiveIndex - 1; idx <= v.state.ActiveIndex+1; idx++ {
		if idx >= 0 && idx < n {
			tiles = append(tiles, idx)
		}
	}
	return tiles
}

// navigateTo makes index active and requests its dimensions. The index
// changes right away; size and position follow once dimensions are known.
func (v *Viewer) navigateTo(index int, firstLoad bool) {
	n := v.images.Len()
	if n == 0 {
		return
	}
	index = clampIndex(index, n)

	v.state.ActiveIndex = index
	v.state.SwiperDistance = 0
	v.state.Touch = false
	v.fitPending = false
	if firstLoad {
		v.state.Width = 0
		v.state.Height = 0
		v.state.Left = v.viewportW / 2
		v.state.Top = v.viewportH / 2
		v.state.Scale = 1
	}

	req := v.loader.request(index, firstLoad)
	debugLog("Navigate to [%d/%d] (request %d, first load: %t)", index+1, n, req.seq, firstLoad)
}

func (v *Viewer) applyDimensions(res loadResult) {
	if res.err != nil {
		log.Printf("Warning: Failed to read dimensions of image [%d/%d]: %v",
			res.index+1, v.images.Len(), res.err)
		v.state.ImageWidth = 0
		v.state.ImageHeight = 0
		return
	}

	w, h := float64(res.dims.Width), float64(res.dims.Height)
	if res.firstLoad {
		// let the provisional placement land before growing into the fit
		v.fitPending = true
		v.deferTask(func() {
			if !v.loader.isCurrent(res.seq) {
				return
			}
			v.fitPending = false
			v.state.ImageWidth = w
			v.state.ImageHeight = h
			v.growIntoFit()
		})
		return
	}

	v.state.ImageWidth = w
	v.state.ImageHeight = h
	v.setFit()
}

// setFit places the active image at its default fit and natural scale
func (v *Viewer) setFit() {
	fit := v.defaultFit()
	v.state.Width = fit.Width
	v.state.Height = fit.Height
	v.state.Left = fit.Left
	v.state.Top = fit.Top
	v.state.Scale = 1
}

func (v *Viewer) defaultFit() Rect {
	return fitToWidth(v.state.ImageWidth, v.state.ImageHeight, v.viewportW, v.viewportH)
}

func (v *Viewer) deferTask(task func()) {
	v.deferred = append(v.deferred, task)
}

func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
