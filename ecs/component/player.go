package component

// Player holds the movement tunables of a controllable character.
type Player struct {
	MoveSpeed    float64
	JumpVelocity float64
	SwimThrust   float64

	WaterGravityScale float64
	SwimHoldSpeed     float64
	WaterDrag         float64
}

var PlayerComponent = NewComponent[Player]()
