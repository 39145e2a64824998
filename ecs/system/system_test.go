package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func tunables() component.Player {
	return component.Player{
		MoveSpeed:         300,
		JumpVelocity:      650,
		SwimThrust:        420,
		WaterGravityScale: 0.35,
		SwimHoldSpeed:     120,
		WaterDrag:         4.0,
	}
}

type fixture struct {
	w      *ecs.World
	player ecs.Entity
}

func newFixture(t *testing.T, x, y float64, lvl component.Level) *fixture {
	t.Helper()
	w := ecs.NewWorld()

	p := w.CreateEntity()
	tune := tunables()
	require.NoError(t, ecs.Add(w, p, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, p, component.PlayerComponent.Kind(), &tune))
	require.NoError(t, ecs.Add(w, p, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, p, component.VelocityComponent.Kind(), &component.Velocity{}))
	require.NoError(t, ecs.Add(w, p, component.ColliderComponent.Kind(), &component.Collider{Width: 50, Height: 50}))
	require.NoError(t, ecs.Add(w, p, component.CharacterComponent.Kind(), &component.Character{Underwater: lvl.Underwater}))
	require.NoError(t, ecs.Add(w, p, component.IntentComponent.Kind(), &component.Intent{}))
	require.NoError(t, ecs.Add(w, p, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, p, component.ScoreComponent.Kind(), &component.Score{}))

	le := w.CreateEntity()
	require.NoError(t, ecs.Add(w, le, component.LevelTagComponent.Kind(), &component.LevelTag{}))
	require.NoError(t, ecs.Add(w, le, component.LevelComponent.Kind(), &lvl))

	return &fixture{w: w, player: p}
}

func (f *fixture) transform() *component.Transform {
	v, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	return v
}

func (f *fixture) velocity() *component.Velocity {
	v, _ := ecs.Get(f.w, f.player, component.VelocityComponent.Kind())
	return v
}

func (f *fixture) state() *component.Character {
	v, _ := ecs.Get(f.w, f.player, component.CharacterComponent.Kind())
	return v
}

func (f *fixture) input() *component.Input {
	v, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	return v
}

func (f *fixture) intent() *component.Intent {
	v, _ := ecs.Get(f.w, f.player, component.IntentComponent.Kind())
	return v
}

func block(x, y float64) component.Block {
	return component.Block{Bounds: component.RectBB(x, y, 50, 50)}
}

func startAt(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}
