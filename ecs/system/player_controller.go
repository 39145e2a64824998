package system

import (
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// PlayerControllerSystem turns the raw input signals into movement intent.
// It never touches velocity or position.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.InputComponent.Kind(),
		component.IntentComponent.Kind(),
		component.CharacterComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
		state, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
		TranslateInput(*input, state.Underwater, intent)
	}
}

// TranslateInput applies one step of input to intent. Opposing horizontal
// keys cancel out. On ground jump presses request a jump; underwater the up
// key requests a swim-up and up/down also set the continuous hold.
func TranslateInput(in component.Input, underwater bool, intent *component.Intent) {
	switch {
	case in.Left && !in.Right:
		intent.MoveLeft()
	case in.Right && !in.Left:
		intent.MoveRight()
	default:
		intent.Stop()
	}

	if !underwater {
		if in.Jump {
			intent.RequestJump()
		}
		intent.SetSwimHold(component.SwimNone)
		return
	}

	if in.Up {
		intent.RequestSwimUp()
	}
	switch {
	case in.Up && !in.Down:
		intent.SetSwimHold(component.SwimUp)
	case in.Down && !in.Up:
		intent.SetSwimHold(component.SwimDown)
	default:
		intent.SetSwimHold(component.SwimNone)
	}
}
