package system

import (
	"testing"

	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestResolveBlocks(t *testing.T) {
	cases := []struct {
		name         string
		at           component.Transform
		vel          component.Velocity
		grounded     bool
		blocks       []component.Block
		want         component.Transform
		wantVel      component.Velocity
		wantGrounded bool
	}{
		{
			name:         "landing",
			at:           component.Transform{X: 10, Y: 45},
			vel:          component.Velocity{X: 30, Y: -200},
			blocks:       []component.Block{block(0, 0)},
			want:         component.Transform{X: 10, Y: 50},
			wantVel:      component.Velocity{X: 30},
			wantGrounded: true,
		},
		{
			name:    "head_bump_keeps_airborne",
			at:      component.Transform{X: 10, Y: 95},
			vel:     component.Velocity{Y: 300},
			blocks:  []component.Block{block(0, 140)},
			want:    component.Transform{X: 10, Y: 90},
			wantVel: component.Velocity{},
		},
		{
			name:    "push_left",
			at:      component.Transform{X: -45, Y: 10},
			vel:     component.Velocity{X: 300, Y: 5},
			blocks:  []component.Block{block(0, 0)},
			want:    component.Transform{X: -50, Y: 10},
			wantVel: component.Velocity{Y: 5},
		},
		{
			name:    "push_right",
			at:      component.Transform{X: 45, Y: 10},
			vel:     component.Velocity{X: -300},
			blocks:  []component.Block{block(0, 0)},
			want:    component.Transform{X: 50, Y: 10},
			wantVel: component.Velocity{},
		},
		{
			name:         "tie_resolves_vertically",
			at:           component.Transform{X: 45, Y: 45},
			vel:          component.Velocity{X: 10, Y: -10},
			blocks:       []component.Block{block(0, 0)},
			want:         component.Transform{X: 45, Y: 50},
			wantVel:      component.Velocity{X: 10},
			wantGrounded: true,
		},
		{
			name:         "touching_edges_do_not_collide",
			at:           component.Transform{X: 50, Y: 0},
			vel:          component.Velocity{X: -5},
			blocks:       []component.Block{block(0, 0)},
			want:         component.Transform{X: 50, Y: 0},
			wantVel:      component.Velocity{X: -5},
			wantGrounded: false,
		},
		{
			name:         "seam_between_blocks",
			at:           component.Transform{X: 25, Y: 45},
			vel:          component.Velocity{Y: -100},
			blocks:       []component.Block{block(0, 0), block(50, 0)},
			want:         component.Transform{X: 25, Y: 50},
			wantVel:      component.Velocity{},
			wantGrounded: true,
		},
		{
			name:         "head_bump_leaves_grounded_alone",
			at:           component.Transform{X: 10, Y: 95},
			grounded:     true,
			blocks:       []component.Block{block(0, 140)},
			want:         component.Transform{X: 10, Y: 90},
			wantGrounded: true,
		},
		{
			name:    "no_blocks",
			at:      component.Transform{X: 3, Y: 4},
			vel:     component.Velocity{X: 1, Y: 2},
			want:    component.Transform{X: 3, Y: 4},
			wantVel: component.Velocity{X: 1, Y: 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr, v := c.at, c.vel
			ch := component.Character{Grounded: c.grounded}
			ResolveBlocks(&tr, &v, &ch, component.Collider{Width: 50, Height: 50}, c.blocks)

			assert.InDelta(t, c.want.X, tr.X, 1e-9)
			assert.InDelta(t, c.want.Y, tr.Y, 1e-9)
			assert.Equal(t, c.wantVel, v)
			assert.Equal(t, c.wantGrounded, ch.Grounded)
		})
	}
}

func TestResolvedAxisLeavesNoOverlap(t *testing.T) {
	col := component.Collider{Width: 64, Height: 64}
	blocks := []component.Block{block(100, 100)}
	for x := 40.0; x <= 145; x += 7.5 {
		for y := 40.0; y <= 145; y += 7.5 {
			tr := component.Transform{X: x, Y: y}
			var v component.Velocity
			var ch component.Character
			ResolveBlocks(&tr, &v, &ch, col, blocks)
			assert.False(t, component.Overlaps(col.Bounds(tr), blocks[0].Bounds), "start (%v,%v)", x, y)
		}
	}
}

func TestCollisionSystemUsesLevelBlocks(t *testing.T) {
	f := newFixture(t, 10, 45, component.Level{Blocks: []component.Block{block(0, 0)}})
	f.velocity().Y = -100

	NewCollisionSystem().Update(f.w, frame)

	assert.Equal(t, 50.0, f.transform().Y)
	assert.True(t, f.state().Grounded)
	assert.Zero(t, f.velocity().Y)
}
