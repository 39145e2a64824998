package system

import (
	"testing"

	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestTranslateInput(t *testing.T) {
	cases := []struct {
		name       string
		in         component.Input
		underwater bool
		dir        component.MoveDir
		hold       component.SwimDir
		jump       bool
		swimUp     bool
	}{
		{name: "idle", dir: component.MoveStop, hold: component.SwimNone},
		{name: "left", in: component.Input{Left: true}, dir: component.MoveLeft, hold: component.SwimNone},
		{name: "right", in: component.Input{Right: true}, dir: component.MoveRight, hold: component.SwimNone},
		{name: "both_cancel", in: component.Input{Left: true, Right: true}, dir: component.MoveStop, hold: component.SwimNone},
		{name: "ground_jump", in: component.Input{Jump: true}, dir: component.MoveStop, hold: component.SwimNone, jump: true},
		{name: "ground_up_is_not_hold", in: component.Input{Up: true}, dir: component.MoveStop, hold: component.SwimNone},
		{name: "water_jump_ignored", in: component.Input{Jump: true}, underwater: true, dir: component.MoveStop, hold: component.SwimNone},
		{name: "water_up", in: component.Input{Up: true}, underwater: true, dir: component.MoveStop, hold: component.SwimUp, swimUp: true},
		{name: "water_down", in: component.Input{Down: true}, underwater: true, dir: component.MoveStop, hold: component.SwimDown},
		{name: "water_up_down", in: component.Input{Up: true, Down: true}, underwater: true, dir: component.MoveStop, hold: component.SwimNone, swimUp: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var intent component.Intent
			TranslateInput(c.in, c.underwater, &intent)
			assert.Equal(t, c.dir, intent.Direction())
			assert.Equal(t, c.hold, intent.SwimHold())
			assert.Equal(t, c.jump, intent.TakeJump())
			assert.Equal(t, c.swimUp, intent.TakeSwimUp())
		})
	}
}

func TestTranslateInputClearsHoldOnLand(t *testing.T) {
	var intent component.Intent
	TranslateInput(component.Input{Up: true}, true, &intent)
	TranslateInput(component.Input{Up: true}, false, &intent)
	assert.Equal(t, component.SwimNone, intent.SwimHold())
}

func TestPlayerControllerSystemWritesIntent(t *testing.T) {
	f := newFixture(t, 0, 100, component.Level{})
	f.input().Right = true
	f.input().Jump = true

	NewPlayerControllerSystem().Update(f.w, frame)

	assert.Equal(t, component.MoveRight, f.intent().Direction())
	assert.True(t, f.intent().TakeJump())
	assert.Zero(t, f.velocity().X, "controller must not touch velocity")
}
