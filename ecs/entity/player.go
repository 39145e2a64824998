package entity

import (
	"fmt"

	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/prefabs"
)

func playerTunables(spec prefabs.PlayerSpec) component.Player {
	return component.Player{
		MoveSpeed:         spec.MoveSpeed,
		JumpVelocity:      spec.JumpVelocity,
		SwimThrust:        spec.SwimThrust,
		WaterGravityScale: spec.WaterGravityScale,
		SwimHoldSpeed:     spec.SwimHoldSpeed,
		WaterDrag:         spec.WaterDrag,
	}
}

// NewPlayerAt creates the controllable character with its bottom-left
// corner at (x, y).
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	entity := w.CreateEntity()
	tune := playerTunables(spec)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: failed to add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &tune); err != nil {
		return 0, fmt.Errorf("player: failed to add player component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: failed to add transform component: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: failed to add velocity component: %w", err)
	}
	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: failed to add collider component: %w", err)
	}
	if err := ecs.Add(w, entity, component.CharacterComponent.Kind(), &component.Character{}); err != nil {
		return 0, fmt.Errorf("player: failed to add character component: %w", err)
	}
	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return 0, fmt.Errorf("player: failed to add intent component: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: failed to add input component: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("player: failed to add score component: %w", err)
	}

	return entity, nil
}

// ApplyPlayerSpec swaps the tunables and collider of an existing player in
// place. Position and motion state are kept.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	tune, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: %s has no player component: %w", e, component.ErrEntityNotAlive)
	}
	*tune = playerTunables(spec)
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		col.Width = spec.Collider.Width
		col.Height = spec.Collider.Height
	}
	return nil
}
