package system

import (
	"testing"

	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		v    component.Velocity
		ch   component.Character
		want component.AnimState
	}{
		{"standing", component.Velocity{}, component.Character{Grounded: true}, component.AnimIdle},
		{"creeping", component.Velocity{X: 40}, component.Character{Grounded: true}, component.AnimIdle},
		{"running", component.Velocity{X: -41}, component.Character{Grounded: true}, component.AnimRun},
		{"airborne", component.Velocity{}, component.Character{}, component.AnimJump},
		{"grounded_but_moving_up", component.Velocity{Y: 1.5}, component.Character{Grounded: true}, component.AnimJump},
		{"floating", component.Velocity{X: 200, Y: 20}, component.Character{Underwater: true}, component.AnimIdle},
		{"swimming", component.Velocity{Y: -21}, component.Character{Underwater: true}, component.AnimSwim},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.v, c.ch))
		})
	}
}

func TestAnimationSystemStoresPose(t *testing.T) {
	f := newFixture(t, 0, 100, component.Level{})
	f.state().Grounded = true
	f.velocity().X = 300

	NewAnimationSystem().Update(f.w, frame)
	assert.Equal(t, component.AnimRun, f.state().Anim)
}
