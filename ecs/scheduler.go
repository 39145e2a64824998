package ecs

// System advances one concern of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in a fixed order. The order is part of the
// simulation contract: each system only consumes what earlier ones produced
// during the same step.
type Scheduler struct {
	systems []System
}

// NewScheduler keeps the given order and drops nil systems.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
