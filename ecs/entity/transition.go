package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/prefabs"
	"github.com/milk9111/pipescroller/transition"
)

// NewTransition creates the single fade effect entity. An unknown easing
// name falls back to linear.
func NewTransition(w *ecs.World, spec prefabs.TransitionSpec) (ecs.Entity, *transition.Effect, error) {
	if err := spec.Validate(); err != nil {
		return 0, nil, fmt.Errorf("transition: %w", err)
	}

	fx := transition.New(spec.FadeOut, spec.FadeIn)
	ConfigureTransition(fx, spec)

	entity := w.CreateEntity()
	if err := ecs.Add(w, entity, component.TransitionComponent.Kind(), fx); err != nil {
		return 0, nil, fmt.Errorf("transition: failed to add transition component: %w", err)
	}
	return entity, fx, nil
}

// ConfigureTransition applies durations and easing to an existing effect.
func ConfigureTransition(fx *transition.Effect, spec prefabs.TransitionSpec) {
	fx.SetDurations(spec.FadeOut, spec.FadeIn)
	shape, ok := transition.EaseByName(spec.Ease)
	if !ok {
		log.Printf("transition: unknown ease %q, using linear", spec.Ease)
	}
	fx.SetEase(shape)
}
