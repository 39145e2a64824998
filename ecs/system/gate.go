package system

import (
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// AdvanceFunc swaps the current level for the next one.
type AdvanceFunc func(w *ecs.World)

// GateSystem watches pipes and the flag and requests a level advance when
// the player uses one. The swap itself is deferred to the fade effect when
// one exists, so the new level is never shown before the screen is black.
type GateSystem struct {
	advance AdvanceFunc
}

func NewGateSystem(advance AdvanceFunc) *GateSystem {
	return &GateSystem{advance: advance}
}

// GateTriggered is the payload of ecs.EventTransitionStarted.
type GateTriggered struct {
	Ordinal int
	// Pipe is the index of the pipe taken, or -1 for the flag.
	Pipe int
}

func (s *GateSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil || s.advance == nil {
		return
	}
	lvl, ok := currentLevel(w)
	if !ok {
		return
	}

	for _, c := range characters(w) {
		var in component.Input
		if input, ok := ecs.Get(w, c.entity, component.InputComponent.Kind()); ok {
			in = *input
		}

		pipe, hit := FindTrigger(c.bounds(), in, lvl)
		if !hit {
			continue
		}
		s.fire(w, GateTriggered{Ordinal: lvl.Ordinal, Pipe: pipe})
		return
	}
}

func (s *GateSystem) fire(w *ecs.World, info GateTriggered) {
	_, fx, ok := ecs.Single(w, component.TransitionComponent.Kind())
	if !ok {
		s.advance(w)
		w.Events().Push(ecs.Event{Type: ecs.EventTransitionStarted, Data: info})
		return
	}
	if fx.Start(func() { s.advance(w) }) {
		w.Events().Push(ecs.Event{Type: ecs.EventTransitionStarted, Data: info})
	}
}
