package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// character bundles the components every motion system touches.
type character struct {
	entity    ecs.Entity
	transform *component.Transform
	velocity  *component.Velocity
	collider  *component.Collider
	state     *component.Character
}

func (c character) bounds() cp.BB {
	return c.collider.Bounds(*c.transform)
}

func characters(w *ecs.World) []character {
	ents := w.Query(
		component.PlayerTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.ColliderComponent.Kind(),
		component.CharacterComponent.Kind(),
	)
	out := make([]character, 0, len(ents))
	for _, e := range ents {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		s, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
		out = append(out, character{entity: e, transform: t, velocity: v, collider: c, state: s})
	}
	return out
}

func currentLevel(w *ecs.World) (*component.Level, bool) {
	_, lvl, ok := ecs.Single(w, component.LevelComponent.Kind())
	return lvl, ok
}
