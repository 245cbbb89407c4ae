package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

// NewPlayer creates the player at its spawn point with full health. The
// last damage time starts one invulnerability window in the past so the
// very first hit always lands.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Health:         spec.MaxHealth,
		MaxHealth:      spec.MaxHealth,
		LastDamageTime: -spec.InvulnerabilityMs - 1,
		Speed:          spec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	spawn := common.Vec{X: spec.Spawn.X, Y: spec.Spawn.Y}
	if _, err := spawnBody(w, entity, bodyDef(engine.LayerPlayer, spec.Texture, spawn, spec.Size, false)); err != nil {
		return 0, fmt.Errorf("player: spawn body: %w", err)
	}

	return entity, nil
}
