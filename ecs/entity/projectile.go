package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

// NewProjectile fires a shot from `from` toward `to` at the prefab speed.
func NewProjectile(w *ecs.World, spec prefabs.ProjectileSpec, owner component.EnemyKind, from, to common.Vec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	damage := spec.Damage
	if damage <= 0 {
		damage = 1
	}
	if err := ecs.Add(w, entity, component.ProjectileComponent.Kind(), &component.Projectile{
		OwnerKind: owner,
		Speed:     spec.Speed,
		Damage:    damage,
	}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: add projectile component: %w", err)
	}

	h, err := spawnBody(w, entity, bodyDef(engine.LayerProjectile, spec.TextureFor(owner.String()), from, spec.Size, false))
	if err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: spawn body: %w", err)
	}
	h.SetVelocity(common.Toward(from, to, spec.Speed))

	return entity, nil
}
