package component

// Transform is the bottom-left corner of an entity in y-up world space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
