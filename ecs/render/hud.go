package render

import (
	"fmt"
	"strings"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/system"
)

// HUD is the text overlay state.
type HUD struct {
	Hearts   [component.HeartSlots]component.HeartState
	Coins    int
	Room     int
	Cleared  bool
	Defeated bool
}

// HUDFor reads the overlay state from the world.
func HUDFor(w *ecs.World) HUD {
	hud := HUD{Coins: system.Coins(w), Defeated: system.Defeated(w)}
	if e, ok := ecs.First(w, component.HeartDisplayComponent.Kind()); ok {
		if d, ok := ecs.Get(w, e, component.HeartDisplayComponent.Kind()); ok {
			hud.Hearts = d.Slots
		}
	}
	if room, ok := system.RoomState(w); ok {
		hud.Room = room.Loads
		hud.Cleared = !room.Active
	}
	return hud
}

// HeartGlyphs renders the hearts as ASCII, one bracket pair per slot.
func HeartGlyphs(slots [component.HeartSlots]component.HeartState) string {
	var b strings.Builder
	for _, s := range slots {
		switch s {
		case component.HeartFull:
			b.WriteString("[##]")
		case component.HeartHalf:
			b.WriteString("[# ]")
		default:
			b.WriteString("[  ]")
		}
	}
	return b.String()
}

// Lines is the HUD as text lines, top to bottom.
func (h HUD) Lines() []string {
	lines := []string{
		"HP    " + HeartGlyphs(h.Hearts),
		fmt.Sprintf("Coins %d", h.Coins),
		fmt.Sprintf("Room  %d", h.Room),
	}
	if h.Cleared && !h.Defeated {
		lines = append(lines, "Door open")
	}
	return lines
}
