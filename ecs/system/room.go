package system

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
)

// RoomSystem owns the room lifecycle: populate, fight, clear, go through
// the door and populate again.
type RoomSystem struct {
	spec   *prefabs.GameSpec
	roster *RosterScript
	log    zerolog.Logger
}

func NewRoomSystem(spec *prefabs.GameSpec, log zerolog.Logger) (*RoomSystem, error) {
	s := &RoomSystem{log: log}
	if err := s.SetSpec(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSpec replaces the prefab data used by the next LoadRoom.
func (s *RoomSystem) SetSpec(spec *prefabs.GameSpec) error {
	if spec == nil {
		return fmt.Errorf("room: nil game spec")
	}
	var roster *RosterScript
	if spec.Room.RosterScript != "" {
		var err error
		roster, err = LoadRosterScript(spec.Room.RosterScript)
		if err != nil {
			return fmt.Errorf("room: %w", err)
		}
	}
	s.spec = spec
	s.roster = roster
	return nil
}

// LoadRoom clears whatever the previous encounter left behind and populates
// a fresh one: roster enemies, randomly placed obstacles and a closed door.
// Loads requested while a load is running are ignored. A failed load leaves
// the room inactive.
func (s *RoomSystem) LoadRoom(w *ecs.World) (err error) {
	roomEntity, room, err := s.room(w)
	if err != nil {
		return err
	}
	if room.Loading {
		s.log.Debug().Msg("room: load already in progress")
		return nil
	}
	room.Loading = true
	defer func() {
		room.Loading = false
		if err != nil {
			room.Active = false
		}
	}()

	roster, err := s.buildRoster(room.Loads)
	if err != nil {
		return err
	}

	s.clear(w)

	for _, r := range roster {
		if _, err := entity.NewEnemy(w, s.spec.Enemies, r.Kind, r.X, r.Y); err != nil {
			return fmt.Errorf("room: spawn %s: %w", r.Kind, err)
		}
	}

	roomSpec := s.spec.Room
	eng := w.Engine()
	for i := 0; i < roomSpec.Obstacles.Count; i++ {
		x := eng.RandomBetween(roomSpec.Margin, roomSpec.Width-roomSpec.Margin)
		y := eng.RandomBetween(roomSpec.Margin, roomSpec.Height-roomSpec.Margin)
		if _, err := entity.NewObstacle(w, roomSpec.Obstacles, x, y); err != nil {
			return fmt.Errorf("room: %w", err)
		}
	}

	if _, err := entity.NewDoor(w, roomSpec.Door); err != nil {
		return fmt.Errorf("room: %w", err)
	}

	s.resetPlayer(w)

	room.ID = uuid.NewString()
	room.Active = true
	room.Loads++

	w.Events().Push(ecs.Event{Type: ecs.EventRoomLoaded, Entity: roomEntity, At: eng.Now(), Data: room.ID})
	s.log.Info().
		Str("room", room.ID).
		Int("load", room.Loads).
		Int("enemies", len(roster)).
		Int("obstacles", roomSpec.Obstacles.Count).
		Msg("room: loaded")
	return nil
}

// Update clears the room once no enemies are left: the room goes inactive
// and the door opens.
func (s *RoomSystem) Update(w *ecs.World) {
	roomEntity, ok := ecs.First(w, component.RoomComponent.Kind())
	if !ok {
		return
	}
	room, ok := ecs.Get(w, roomEntity, component.RoomComponent.Kind())
	if !ok || !room.Active {
		return
	}
	if ecs.Count(w, component.EnemyComponent.Kind()) > 0 {
		return
	}

	room.Active = false
	ecs.ForEach(w, component.DoorComponent.Kind(), func(_ ecs.Entity, door *component.Door) {
		door.State = component.DoorOpen
	})

	var now int64
	if eng := w.Engine(); eng != nil {
		now = eng.Now()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventRoomCleared, Entity: roomEntity, At: now, Data: room.ID})
	s.log.Info().Str("room", room.ID).Msg("room: cleared")
}

// OnDoorOverlap moves the player on once the room is cleared. While enemies
// remain the door is just a door, and a defeated player goes nowhere.
func (s *RoomSystem) OnDoorOverlap(w *ecs.World) error {
	roomEntity, ok := ecs.First(w, component.RoomComponent.Kind())
	if !ok {
		return nil
	}
	room, ok := ecs.Get(w, roomEntity, component.RoomComponent.Kind())
	if !ok || room.Active || room.Loading {
		return nil
	}
	if Defeated(w) {
		return nil
	}
	return s.LoadRoom(w)
}

func (s *RoomSystem) room(w *ecs.World) (ecs.Entity, *component.Room, error) {
	e, ok := ecs.First(w, component.RoomComponent.Kind())
	if !ok {
		var err error
		e, err = entity.NewRoom(w)
		if err != nil {
			return 0, nil, err
		}
	}
	room, ok := ecs.Get(w, e, component.RoomComponent.Kind())
	if !ok {
		return 0, nil, fmt.Errorf("room: missing room component on %s", e)
	}
	return e, room, nil
}

// buildRoster resolves and validates the roster before anything is spawned,
// so an unknown kind leaves the previous room untouched.
func (s *RoomSystem) buildRoster(loads int) ([]RosterEntry, error) {
	roster := staticRoster(s.spec.Room)
	if s.roster != nil {
		var err error
		roster, err = s.roster.Run(s.spec.Room, loads)
		if err != nil {
			return nil, fmt.Errorf("room: %w", err)
		}
	}
	for _, r := range roster {
		if _, err := component.ParseEnemyKind(r.Kind); err != nil {
			return nil, fmt.Errorf("room: roster: %w", err)
		}
	}
	return roster, nil
}

func (s *RoomSystem) clear(w *ecs.World) {
	for _, e := range ecs.Query(w, component.EnemyComponent.Kind()) {
		entity.Destroy(w, e)
	}
	for _, e := range ecs.Query(w, component.ProjectileComponent.Kind()) {
		entity.Destroy(w, e)
	}
	for _, e := range ecs.Query(w, component.ObstacleComponent.Kind()) {
		entity.Destroy(w, e)
	}
	for _, e := range ecs.Query(w, component.CoinSparkleComponent.Kind()) {
		entity.Destroy(w, e)
	}
	for _, e := range ecs.Query(w, component.DoorComponent.Kind()) {
		entity.Destroy(w, e)
	}
}

func (s *RoomSystem) resetPlayer(w *ecs.World) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || body.Handle == nil {
		return
	}
	spawn := s.spec.Player.Spawn
	body.Handle.SetPosition(common.Vec{X: spawn.X, Y: spawn.Y})
	body.Handle.SetVelocity(common.Vec{})
}

// RoomState returns a copy of the room singleton.
func RoomState(w *ecs.World) (component.Room, bool) {
	e, ok := ecs.First(w, component.RoomComponent.Kind())
	if !ok {
		return component.Room{}, false
	}
	room, ok := ecs.Get(w, e, component.RoomComponent.Kind())
	if !ok {
		return component.Room{}, false
	}
	return *room, true
}

// DoorState returns the state of the current door.
func DoorState(w *ecs.World) (component.DoorState, bool) {
	e, ok := ecs.First(w, component.DoorComponent.Kind())
	if !ok {
		return component.DoorClosed, false
	}
	door, ok := ecs.Get(w, e, component.DoorComponent.Kind())
	if !ok {
		return component.DoorClosed, false
	}
	return door.State, true
}
