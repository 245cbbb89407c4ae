package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

// NewEnemy spawns an enemy of the named kind at (x, y) with the stats from
// its prefab. Unknown kinds are rejected before anything is created.
func NewEnemy(w *ecs.World, enemies prefabs.EnemiesSpec, kindName string, x, y float64) (ecs.Entity, error) {
	kind, err := component.ParseEnemyKind(kindName)
	if err != nil {
		return 0, err
	}
	spec, ok := enemies.Find(kind.String())
	if !ok {
		return 0, fmt.Errorf("%w: no prefab for %q", component.ErrUnknownEnemyKind, kindName)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:          kind,
		Health:        spec.Health,
		Speed:         spec.Speed,
		ShootCooldown: spec.ShootCooldownMs,
		LastShootTime: 0,
	}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}

	if _, err := spawnBody(w, entity, bodyDef(engine.LayerEnemy, spec.Texture, common.Vec{X: x, Y: y}, spec.Size, false)); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: spawn body: %w", err)
	}

	return entity, nil
}
