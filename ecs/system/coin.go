package system

import (
	"fmt"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/prefabs"
)

const defaultSparkleMs = 500

// ShowCoinDrop credits one coin and flashes a sparkle at (x, y) that removes
// itself once the sparkle time has passed.
func ShowCoinDrop(w *ecs.World, spec prefabs.CoinSpec, x, y float64) error {
	if e, ok := ecs.First(w, component.CoinCounterComponent.Kind()); ok {
		if counter, ok := ecs.Get(w, e, component.CoinCounterComponent.Kind()); ok {
			counter.Count++
		}
	}

	sparkle, err := entity.NewCoinSparkle(w, spec, x, y)
	if err != nil {
		return fmt.Errorf("coin drop: %w", err)
	}

	eng := w.Engine()
	w.Events().Push(ecs.Event{Type: ecs.EventCoinDropped, Entity: sparkle, At: eng.Now()})

	ms := spec.SparkleMs
	if ms <= 0 {
		ms = defaultSparkleMs
	}
	eng.ScheduleDelayed(ms, func() {
		entity.Destroy(w, sparkle)
	})
	return nil
}

// Coins returns the coin counter value.
func Coins(w *ecs.World) int {
	e, ok := ecs.First(w, component.CoinCounterComponent.Kind())
	if !ok {
		return 0
	}
	counter, ok := ecs.Get(w, e, component.CoinCounterComponent.Kind())
	if !ok {
		return 0
	}
	return counter.Count
}
