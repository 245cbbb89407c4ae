package system

import (
	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
)

// Hearts maps a health value onto the heart slots. Each slot is worth two
// health points; out of range values are clamped.
func Hearts(health int) [component.HeartSlots]component.HeartState {
	health = common.Clamp(health, 0, component.HeartSlots*2)
	full := health / 2
	half := health%2 == 1

	var slots [component.HeartSlots]component.HeartState
	for i := range slots {
		switch {
		case i < full:
			slots[i] = component.HeartFull
		case i == full && half:
			slots[i] = component.HeartHalf
		default:
			slots[i] = component.HeartEmpty
		}
	}
	return slots
}

// RefreshHearts rewrites the heart display singleton from health.
func RefreshHearts(w *ecs.World, health int) {
	e, ok := ecs.First(w, component.HeartDisplayComponent.Kind())
	if !ok {
		return
	}
	display, ok := ecs.Get(w, e, component.HeartDisplayComponent.Kind())
	if !ok {
		return
	}
	display.Slots = Hearts(health)
}
