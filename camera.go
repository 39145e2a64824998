package main

import (
	"github.com/milk9111/pipescroller/common"
)

const cameraFollow = 0.1

// Camera eases toward the player's center. World space is y-up; screen
// space is y-down, so projections flip y around the view center.
type Camera struct {
	X, Y float64

	screenW float64
	screenH float64
	snapped bool
}

func NewCamera(screenW, screenH float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, X: screenW / 2, Y: screenH / 2}
}

// Follow moves a fraction of the way to (x, y). The first call snaps.
func (c *Camera) Follow(x, y float64) {
	if !c.snapped {
		c.X, c.Y = x, y
		c.snapped = true
		return
	}
	c.X = common.Lerp(c.X, x, cameraFollow)
	c.Y = common.Lerp(c.Y, y, cameraFollow)
}

// Snap forgets the eased position so the next Follow jumps straight there.
func (c *Camera) Snap() {
	c.snapped = false
}

// Project maps a world rectangle to its screen-space top-left corner.
func (c *Camera) Project(x, y, h float64) (float64, float64) {
	sx := x - c.X + c.screenW/2
	sy := c.screenH/2 - (y + h - c.Y)
	return sx, sy
}
