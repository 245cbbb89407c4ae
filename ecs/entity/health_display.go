package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
)

// NewHealthDisplay creates the heart display singleton with every slot full.
func NewHealthDisplay(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	display := &component.HeartDisplay{}
	for i := range display.Slots {
		display.Slots[i] = component.HeartFull
	}
	if err := ecs.Add(w, entity, component.HeartDisplayComponent.Kind(), display); err != nil {
		return 0, fmt.Errorf("health display: add hearts: %w", err)
	}
	return entity, nil
}
