package system

import (
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/transition"
)

// TransitionSystem advances every fade effect by dt. The level swap queued
// by GateSystem runs from inside this update.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem {
	return &TransitionSystem{}
}

func (s *TransitionSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.TransitionComponent.Kind(), func(_ ecs.Entity, fx *transition.Effect) {
		fx.Update(dt)
	})
}
