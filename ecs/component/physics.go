package component

import "github.com/jakecoffman/cp"

// Velocity is in world units per second.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Collider is an axis-aligned box anchored at the owner's Transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()

// Bounds returns the collider box placed at t.
func (c Collider) Bounds(t Transform) cp.BB {
	return cp.BB{L: t.X, B: t.Y, R: t.X + c.Width, T: t.Y + c.Height}
}

// Overlaps reports whether two boxes share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// RectBB builds a box from a bottom-left corner and a size.
func RectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}
