package system

import (
	"github.com/milk9111/pipescroller/common"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// RespawnSystem kills characters that reach the floor or touch a death zone
// and puts them back at the level start. It runs after collision so a
// landing on a low block is not mistaken for a fall.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	lvl, ok := currentLevel(w)
	if !ok {
		return
	}
	for _, c := range characters(w) {
		if !isDead(c, lvl) {
			continue
		}
		Respawn(c.transform, c.velocity, c.state, lvl)
		w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Data: c.entity})
	}
}

func isDead(c character, lvl *component.Level) bool {
	if c.transform.Y <= common.FloorLevel {
		return true
	}
	pr := c.bounds()
	for _, zone := range lvl.DeathZones {
		if component.Overlaps(pr, zone) {
			return true
		}
	}
	return false
}

// Respawn moves the character to the level start at rest and airborne.
func Respawn(t *component.Transform, v *component.Velocity, ch *component.Character, lvl *component.Level) {
	t.X = lvl.Start.X
	t.Y = lvl.Start.Y
	v.X = 0
	v.Y = 0
	ch.Grounded = false
}
