package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh float64
		w, h   float64
	}{
		{"wide desktop is capped", 1920, 1080, 800, 400},
		{"narrow desktop keeps 2:1", 800, 600, 768, 384},
		{"phone is 16:9", 432, 900, 400, 225},
		{"tiny phone keeps min height", 300, 500, 355.4, 200},
		{"unknown viewport", 0, 0, 800, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitCanvas(tt.vw, tt.vh)
			assert.InDelta(t, tt.w, w, 1e-9)
			assert.InDelta(t, tt.h, h, 1e-9)
		})
	}
}

func TestResizeKeepsObstacles(t *testing.T) {
	e := newTestEngine(t, &fakeService{})
	e.Obstacles = []Obstacle{{X: 300, Width: 20, Height: 40}}

	e.Resize(400, 225)

	g := e.Geometry()
	assert.Equal(t, 400.0, g.Width)
	assert.Equal(t, 175.0, g.GroundY)
	assert.InDelta(t, 33.75, g.PlayerSize, 1e-9)
	assert.Equal(t, 300.0, e.Obstacles[0].X)

	e.Resize(0, 100)
	assert.Equal(t, 400.0, e.Geometry().Width)
}
