package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// World space is y-up: gravity is negative and the floor sits at y = 0.
const (
	Gravity    = -9.8 * 200.0
	FloorLevel = 0.0

	GroundFriction = 8.0
	WaterFriction  = 6.0

	// SnapSpeed is the horizontal speed below which an undriven character stops.
	SnapSpeed = 1.0
)
