package entity

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/ecs/system"
	"github.com/milk9111/pipescroller/levels"
	"github.com/milk9111/pipescroller/prefabs"
	"github.com/milk9111/pipescroller/transition"
)

type Config struct {
	Player     prefabs.PlayerSpec
	World      prefabs.WorldSpec
	Transition prefabs.TransitionSpec
	Levels     LevelSource
	StartLevel int
}

// DefaultConfig uses the built-in tunables and the embedded levels.
func DefaultConfig() Config {
	return Config{
		Player:     prefabs.DefaultPlayerSpec(),
		World:      prefabs.DefaultWorldSpec(),
		Transition: prefabs.DefaultTransitionSpec(),
		Levels:     levels.NewProvider(""),
		StartLevel: levels.FallbackOrdinal,
	}
}

// Simulation owns the world, its one player, its one level and the fade
// effect, and runs the fixed step pipeline over them.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	loader    *LevelLoader
	player    ecs.Entity
	fade      *transition.Effect
}

// Snapshot is what the renderer and HUD read after a step.
type Snapshot struct {
	Position   cp.Vector
	Size       cp.Vector
	Velocity   cp.Vector
	FacingLeft bool
	Grounded   bool
	Anim       component.AnimState

	Level      int
	Underwater bool
	Fallback   bool
	Score      int

	Alpha float64
	Phase transition.Phase
}

func NewSimulation(cfg Config) (*Simulation, error) {
	if cfg.Levels == nil {
		cfg.Levels = levels.NewProvider("")
	}
	if cfg.StartLevel <= 0 {
		cfg.StartLevel = levels.FallbackOrdinal
	}
	if err := cfg.World.Validate(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	w := ecs.NewWorld()
	player, err := NewPlayerAt(w, cfg.Player, cfg.World.Start.X, cfg.World.Start.Y)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	_, fade, err := NewTransition(w, cfg.Transition)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	s := &Simulation{
		world:  w,
		loader: NewLevelLoader(cfg.Levels, cfg.World),
		player: player,
		fade:   fade,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(),
		system.NewCollisionSystem(),
		system.NewRespawnSystem(),
		system.NewPickupCollectSystem(),
		system.NewGateSystem(s.advance),
		system.NewTransitionSystem(),
		system.NewAnimationSystem(),
	)

	if _, err := s.loader.Load(w, cfg.StartLevel); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	return s, nil
}

func (s *Simulation) advance(w *ecs.World) {
	if _, err := s.loader.Advance(w); err != nil {
		log.Printf("simulation: advance level: %v", err)
	}
}

// Step runs one full pipeline pass with the given input and returns the
// events it produced. Edge-triggered signals only live for this step.
func (s *Simulation) Step(dt float64, in component.Input) []ecs.Event {
	if dt < 0 {
		dt = 0
	}
	if input, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		*input = in
	}
	s.scheduler.Update(s.world, dt)
	if input, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		input.ClearEdges()
	}
	return s.world.Events().Drain()
}

func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	if t, ok := ecs.Get(s.world, s.player, component.TransformComponent.Kind()); ok {
		snap.Position = cp.Vector{X: t.X, Y: t.Y}
	}
	if c, ok := ecs.Get(s.world, s.player, component.ColliderComponent.Kind()); ok {
		snap.Size = cp.Vector{X: c.Width, Y: c.Height}
	}
	if v, ok := ecs.Get(s.world, s.player, component.VelocityComponent.Kind()); ok {
		snap.Velocity = cp.Vector{X: v.X, Y: v.Y}
	}
	if ch, ok := ecs.Get(s.world, s.player, component.CharacterComponent.Kind()); ok {
		snap.FacingLeft = ch.FacingLeft
		snap.Grounded = ch.Grounded
		snap.Anim = ch.Anim
	}
	if sc, ok := ecs.Get(s.world, s.player, component.ScoreComponent.Kind()); ok {
		snap.Score = sc.Value
	}
	if lvl, ok := s.Level(); ok {
		snap.Level = lvl.Ordinal
		snap.Underwater = lvl.Underwater
		snap.Fallback = lvl.Fallback
	}
	snap.Alpha = s.fade.Alpha()
	snap.Phase = s.fade.Phase()
	return snap
}

// Level returns the live level. Callers must not keep it across steps.
func (s *Simulation) Level() (*component.Level, bool) {
	_, lvl, ok := ecs.Single(s.world, component.LevelComponent.Kind())
	return lvl, ok
}

func (s *Simulation) Score() (*component.Score, bool) {
	return ecs.Get(s.world, s.player, component.ScoreComponent.Kind())
}

func (s *Simulation) World() *ecs.World { return s.world }

// ReloadLevel rebuilds the current level from fresh data, which also puts
// the player back at its start.
func (s *Simulation) ReloadLevel() error {
	ordinal := levels.FallbackOrdinal
	if lvl, ok := s.Level(); ok {
		ordinal = lvl.Ordinal
	}
	_, err := s.loader.Load(s.world, ordinal)
	return err
}

func (s *Simulation) ApplyPlayerSpec(spec prefabs.PlayerSpec) error {
	return ApplyPlayerSpec(s.world, s.player, spec)
}

// ApplyWorldSpec takes effect at the next level load.
func (s *Simulation) ApplyWorldSpec(spec prefabs.WorldSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	s.loader.SetWorldSpec(spec)
	return nil
}

// ApplyTransitionSpec retunes the fade. A fade in progress keeps its phase.
func (s *Simulation) ApplyTransitionSpec(spec prefabs.TransitionSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	ConfigureTransition(s.fade, spec)
	return nil
}
