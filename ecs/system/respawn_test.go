package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespawnAtOrBelowFloor(t *testing.T) {
	for _, underwater := range []bool{false, true} {
		for _, y := range []float64{0, -12.5} {
			f := newFixture(t, 400, y, component.Level{Start: startAt(128, 256), Underwater: underwater})
			*f.velocity() = component.Velocity{X: 300, Y: -50}
			f.state().Grounded = true

			NewRespawnSystem().Update(f.w, frame)

			assert.Equal(t, component.Transform{X: 128, Y: 256}, *f.transform())
			assert.Equal(t, component.Velocity{}, *f.velocity())
			assert.False(t, f.state().Grounded)

			events := f.w.Events().Drain()
			require.Len(t, events, 1)
			assert.Equal(t, ecs.EventRespawned, events[0].Type)
		}
	}
}

func TestNoRespawnAboveFloor(t *testing.T) {
	f := newFixture(t, 400, 0.01, component.Level{Start: startAt(128, 256)})
	NewRespawnSystem().Update(f.w, frame)
	assert.Equal(t, 400.0, f.transform().X)
	assert.Empty(t, f.w.Events().Drain())
}

func TestDeathZoneRespawns(t *testing.T) {
	lvl := component.Level{
		Start:      startAt(10, 300),
		DeathZones: []cp.BB{component.RectBB(500, 0, 100, 120)},
	}
	f := newFixture(t, 560, 100, lvl)
	NewRespawnSystem().Update(f.w, frame)
	assert.Equal(t, component.Transform{X: 10, Y: 300}, *f.transform())
}
