package render

import (
	"image/color"
	"sort"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
)

type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeCircle
)

// Sprite is one flat shape to draw, centered on X, Y.
type Sprite struct {
	Layer   engine.Layer
	Texture string
	Shape   Shape
	X, Y    float64
	W, H    float64
	Color   color.Color
}

// drawOrder puts the floor furniture below the actors.
var drawOrder = map[engine.Layer]int{
	engine.LayerWall:       0,
	engine.LayerObstacle:   1,
	engine.LayerDoor:       2,
	engine.LayerEffect:     3,
	engine.LayerEnemy:      4,
	engine.LayerProjectile: 5,
	engine.LayerPlayer:     6,
}

// DoorTexture is the texture a door shows in the given state.
func DoorTexture(state component.DoorState) string {
	if state == component.DoorOpen {
		return "door_open"
	}
	return "door_closed"
}

// Scene lists every live body in draw order.
func Scene(w *ecs.World, palette *Palette) []Sprite {
	type entry struct {
		sprite Sprite
		id     engine.HandleID
	}
	var entries []entry

	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, body *component.Body) {
		h := body.Handle
		if h == nil || h.Destroyed() {
			return
		}
		texture := h.Texture()
		if door, ok := ecs.Get(w, e, component.DoorComponent.Kind()); ok {
			texture = DoorTexture(door.State)
		}

		shape := ShapeBox
		switch h.Layer() {
		case engine.LayerEnemy, engine.LayerProjectile, engine.LayerEffect:
			shape = ShapeCircle
		}

		pos := h.Position()
		width, height := h.Size()
		entries = append(entries, entry{
			id: h.ID(),
			sprite: Sprite{
				Layer:   h.Layer(),
				Texture: texture,
				Shape:   shape,
				X:       pos.X,
				Y:       pos.Y,
				W:       width,
				H:       height,
				Color:   palette.Color(texture),
			},
		})
	})

	sort.SliceStable(entries, func(i, j int) bool {
		oi, oj := drawOrder[entries[i].sprite.Layer], drawOrder[entries[j].sprite.Layer]
		if oi != oj {
			return oi < oj
		}
		return entries[i].id < entries[j].id
	})

	out := make([]Sprite, len(entries))
	for i, e := range entries {
		out[i] = e.sprite
	}
	return out
}
