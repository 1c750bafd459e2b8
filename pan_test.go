package main

import "testing"

func TestPanDownClampsToMaxTop(t *testing.T) {
	v, _, _ := shownViewer(t, tall)

	v.TouchStart([]Point{{X: 200, Y: 400}})
	v.TouchMove([]Point{{X: 200, Y: 410}})
	if top := v.Transform().Top; top != -390 {
		t.Fatalf("Expected top -390, got %v", top)
	}

	v.TouchMove([]Point{{X: 200, Y: 900}})
	if top := v.Transform().Top; top != defaultMaxTop {
		t.Errorf("Expected top clamped to %v, got %v", defaultMaxTop, top)
	}

	v.TouchEnd(nil)

	st := v.Transform()
	if st.Top != 0 {
		t.Errorf("Expected top to snap back to 0, got %v", st.Top)
	}
	if st.Touch {
		t.Error("Expected touch flag cleared")
	}
}

func TestPanUpOverscroll(t *testing.T) {
	v, _, _ := shownViewer(t, tall)

	v.TouchStart([]Point{{X: 200, Y: 600}})
	v.TouchMove([]Point{{X: 200, Y: 200}})
	if top := v.Transform().Top; top != -800 {
		t.Fatalf("Expected top -800, got %v", top)
	}

	// within the overscroll allowance
	v.TouchMove([]Point{{X: 200, Y: 150}})
	if top := v.Transform().Top; top != -850 {
		t.Fatalf("Expected top -850, got %v", top)
	}

	// past the allowance the image holds still
	v.TouchMove([]Point{{X: 200, Y: 100}})
	if top := v.Transform().Top; top != -850 {
		t.Errorf("Expected top held at -850, got %v", top)
	}

	v.TouchEnd(nil)
	if top := v.Transform().Top; top != testViewportH-1600 {
		t.Errorf("Expected bottom edge flush after release, top %v, got %v", testViewportH-1600, top)
	}
}

func TestPanIgnoresShortImages(t *testing.T) {
	v, _, _ := shownViewer(t, landscape)
	before := v.Transform()

	v.TouchStart([]Point{{X: 200, Y: 400}})
	v.TouchMove([]Point{{X: 200, Y: 500}})

	after := v.Transform()
	if after.Top != before.Top || after.Left != before.Left {
		t.Errorf("Expected short image to stay put, got %+v", after.Rect())
	}
}

func TestPanHorizontalOnlyWhenZoomed(t *testing.T) {
	t.Run("NaturalScale", func(t *testing.T) {
		v, _, _ := shownViewer(t, tall)

		v.TouchStart([]Point{{X: 200, Y: 400}})
		v.TouchMove([]Point{{X: 203, Y: 440}})

		if left := v.Transform().Left; left != 0 {
			t.Errorf("Expected left unchanged at natural scale, got %v", left)
		}
	})

	t.Run("Zoomed", func(t *testing.T) {
		v, _, _ := shownViewer(t, landscape)
		v.applyZoom(200, 400, 3, 3)
		left := v.Transform().Left

		v.TouchStart([]Point{{X: 200, Y: 400}})
		v.TouchMove([]Point{{X: 210, Y: 440}})

		if got := v.Transform().Left; got != left+10 {
			t.Errorf("Expected left %v, got %v", left+10, got)
		}
	})
}

func TestPanReleaseClampsHorizontalEdges(t *testing.T) {
	v, _, _ := shownViewer(t, landscape)
	v.applyZoom(200, 400, 2, 2)

	v.state.Left = 50
	v.panRelease()
	if left := v.Transform().Left; left != 0 {
		t.Errorf("Expected left edge flush, got %v", left)
	}

	v.state.Left = -500
	v.panRelease()
	if left := v.Transform().Left; left != testViewportW-800 {
		t.Errorf("Expected right edge flush, got %v", left)
	}
}
