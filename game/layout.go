package game

const (
	BaseWidth  = 800.0
	BaseHeight = 400.0

	mobileBreakpoint = 768.0
	viewportPadding  = 32.0
	mobileMinHeight  = 200.0
)

// FitCanvas sizes the drawing surface for a viewport: 2:1 capped at the base
// width on desktop, 16:9 with a minimum height on narrow screens.
func FitCanvas(viewportW, viewportH float64) (float64, float64) {
	if viewportW <= 0 || viewportH <= 0 {
		return BaseWidth, BaseHeight
	}

	if viewportW < mobileBreakpoint {
		w := viewportW - viewportPadding
		h := w * 0.5625
		if h < mobileMinHeight {
			h = mobileMinHeight
			w = h * 1.777
		}
		return w, h
	}

	w := min(BaseWidth, viewportW-viewportPadding)
	return w, w / 2
}
