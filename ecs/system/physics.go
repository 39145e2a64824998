package system

import (
	"math"

	"github.com/milk9111/pipescroller/common"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// PhysicsSystem advances velocity and position of every character by one
// explicit Euler step.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}
	for _, c := range characters(w) {
		intent, ok := ecs.Get(w, c.entity, component.IntentComponent.Kind())
		if !ok {
			continue
		}
		tune, ok := ecs.Get(w, c.entity, component.PlayerComponent.Kind())
		if !ok {
			continue
		}
		Integrate(c.transform, c.velocity, c.state, intent, *tune, dt)
	}
}

// Integrate runs the motion pipeline. The stage order matters: the swim hold
// overrides the swim-up impulse, and drag acts on the velocity gravity just
// produced.
func Integrate(t *component.Transform, v *component.Velocity, ch *component.Character, intent *component.Intent, p component.Player, dt float64) {
	applyHorizontal(v, ch, intent, p, dt)
	applyVerticalAction(v, ch, intent, p, dt)
	applyGravity(v, ch, p, dt)
	applyWaterDrag(v, ch, p, dt)

	t.X += v.X * dt
	t.Y += v.Y * dt

	if !ch.Underwater && t.Y < common.FloorLevel {
		t.Y = common.FloorLevel
		v.Y = 0
		ch.Grounded = true
	}
}

func applyHorizontal(v *component.Velocity, ch *component.Character, intent *component.Intent, p component.Player, dt float64) {
	if dir := intent.Direction(); dir != component.MoveStop {
		v.X = float64(dir) * p.MoveSpeed
		ch.FacingLeft = dir < 0
		return
	}

	friction := common.GroundFriction
	if ch.Underwater {
		friction = common.WaterFriction
	}
	v.X -= v.X * friction * dt
	if math.Abs(v.X) < common.SnapSpeed {
		v.X = 0
	}
}

func applyVerticalAction(v *component.Velocity, ch *component.Character, intent *component.Intent, p component.Player, dt float64) {
	if !ch.Underwater {
		// The request is spent even in mid-air.
		if intent.TakeJump() && ch.Grounded {
			v.Y = p.JumpVelocity
			ch.Grounded = false
		}
		return
	}

	if intent.TakeSwimUp() {
		v.Y += p.SwimThrust * dt
	}
	switch intent.SwimHold() {
	case component.SwimUp:
		v.Y = p.SwimHoldSpeed
	case component.SwimDown:
		v.Y = -p.SwimHoldSpeed
	}
}

func applyGravity(v *component.Velocity, ch *component.Character, p component.Player, dt float64) {
	scale := 1.0
	if ch.Underwater {
		scale = p.WaterGravityScale
	}
	v.Y += common.Gravity * scale * dt
}

func applyWaterDrag(v *component.Velocity, ch *component.Character, p component.Player, dt float64) {
	if !ch.Underwater {
		return
	}
	v.X -= v.X * p.WaterDrag * dt
	v.Y -= v.Y * p.WaterDrag * dt
}
