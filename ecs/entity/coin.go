package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

// NewCoinCounter creates the coin counter singleton.
func NewCoinCounter(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.CoinCounterComponent.Kind(), &component.CoinCounter{}); err != nil {
		return 0, fmt.Errorf("coin counter: add counter: %w", err)
	}
	return entity, nil
}

// NewCoinSparkle spawns the transient coin visual at (x, y).
func NewCoinSparkle(w *ecs.World, spec prefabs.CoinSpec, x, y float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.CoinSparkleComponent.Kind(), &component.CoinSparkle{}); err != nil {
		return 0, fmt.Errorf("coin sparkle: add sparkle tag: %w", err)
	}
	if _, err := spawnBody(w, entity, bodyDef(engine.LayerEffect, spec.Texture, common.Vec{X: x, Y: y}, spec.Size, false)); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("coin sparkle: spawn body: %w", err)
	}
	return entity, nil
}
