package system

import (
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

type PickupCollectSystem struct{}

func NewPickupCollectSystem() *PickupCollectSystem { return &PickupCollectSystem{} }

// CoinCollected is the payload of ecs.EventCoinCollected.
type CoinCollected struct {
	Index int
	Score int
}

func (s *PickupCollectSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	lvl, ok := currentLevel(w)
	if !ok || len(lvl.Coins) == 0 {
		return
	}
	for _, c := range characters(w) {
		score, ok := ecs.Get(w, c.entity, component.ScoreComponent.Kind())
		if !ok {
			continue
		}
		pr := c.bounds()
		for i, coin := range lvl.Coins {
			if !component.Overlaps(pr, coin.Bounds) {
				continue
			}
			if score.Collect(i, coin.Value) {
				w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Data: CoinCollected{Index: i, Score: score.Value}})
			}
		}
	}
}
