package entity

import (
	"fmt"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

const wallTexture = "wall"

// NewWalls builds the four static perimeter walls just inside the room
// bounds. They outlive room reloads.
func NewWalls(w *ecs.World, room prefabs.RoomSpec) ([]ecs.Entity, error) {
	t := room.WallThickness
	if t <= 0 {
		t = 16
	}
	width, height := room.Width, room.Height

	// top, bottom, left, right
	segments := []struct {
		at   common.Vec
		size prefabs.SizeSpec
	}{
		{common.Vec{X: width / 2, Y: t / 2}, prefabs.SizeSpec{Width: width, Height: t}},
		{common.Vec{X: width / 2, Y: height - t/2}, prefabs.SizeSpec{Width: width, Height: t}},
		{common.Vec{X: t / 2, Y: height / 2}, prefabs.SizeSpec{Width: t, Height: height}},
		{common.Vec{X: width - t/2, Y: height / 2}, prefabs.SizeSpec{Width: t, Height: height}},
	}

	walls := make([]ecs.Entity, 0, len(segments))
	for i, seg := range segments {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{}); err != nil {
			return walls, fmt.Errorf("wall %d: add wall tag: %w", i, err)
		}
		if _, err := spawnBody(w, e, bodyDef(engine.LayerWall, wallTexture, seg.at, seg.size, true)); err != nil {
			return walls, fmt.Errorf("wall %d: spawn body: %w", i, err)
		}
		walls = append(walls, e)
	}
	return walls, nil
}

// NewObstacle places one static inner barrier.
func NewObstacle(w *ecs.World, spec prefabs.ObstaclesSpec, x, y float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.ObstacleComponent.Kind(), &component.Obstacle{}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle tag: %w", err)
	}
	if _, err := spawnBody(w, entity, bodyDef(engine.LayerObstacle, spec.Texture, common.Vec{X: x, Y: y}, spec.Size, true)); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("obstacle: spawn body: %w", err)
	}
	return entity, nil
}

// NewDoor creates a closed door. Its look is derived from Door.State when
// drawing, not from the handle texture.
func NewDoor(w *ecs.World, spec prefabs.DoorSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.DoorComponent.Kind(), &component.Door{State: component.DoorClosed}); err != nil {
		return 0, fmt.Errorf("door: add door component: %w", err)
	}
	at := common.Vec{X: spec.Position.X, Y: spec.Position.Y}
	if _, err := spawnBody(w, entity, bodyDef(engine.LayerDoor, "door", at, spec.Size, true)); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("door: spawn body: %w", err)
	}
	return entity, nil
}

// NewRoom creates the room singleton in its unloaded state.
func NewRoom(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.RoomComponent.Kind(), &component.Room{}); err != nil {
		return 0, fmt.Errorf("room: add room component: %w", err)
	}
	return entity, nil
}
