package system

import (
	"testing"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type harness struct {
	space   *engine.Space
	world   *ecs.World
	spec    *prefabs.GameSpec
	control *PlayerControlSystem
	enemies *EnemySystem
	combat  *CombatResolver
	room    *RoomSystem
	physics *PhysicsSystem
	player  ecs.Entity
}

func newHarness(t *testing.T, mutate func(*prefabs.GameSpec)) *harness {
	t.Helper()

	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	if mutate != nil {
		mutate(spec)
	}

	log := zerolog.Nop()
	space := engine.NewSpace(7, log)
	w := ecs.NewWorld(space)

	h := &harness{
		space:   space,
		world:   w,
		spec:    spec,
		control: NewPlayerControlSystem(),
		enemies: NewEnemySystem(spec.Projectile, spec.Room.Coin, log),
		combat:  NewCombatResolver(spec.Player.InvulnerabilityMs, log),
		physics: NewPhysicsSystem(space, common.TickMs),
	}
	h.room, err = NewRoomSystem(spec, log)
	require.NoError(t, err)

	h.player, err = entity.NewPlayer(w, spec.Player)
	require.NoError(t, err)
	_, err = entity.NewHealthDisplay(w)
	require.NoError(t, err)
	_, err = entity.NewCoinCounter(w)
	require.NoError(t, err)
	_, err = entity.NewRoom(w)
	require.NoError(t, err)
	_, err = entity.NewWalls(w, spec.Room)
	require.NoError(t, err)

	require.NoError(t, RegisterContacts(w, Contacts{Room: h.room, Combat: h.combat, Log: log}))
	return h
}

// run advances the simulation in frame sized steps for ms milliseconds.
func (h *harness) run(ms float64) {
	for elapsed := 0.0; elapsed < ms; elapsed += common.TickMs {
		if Defeated(h.world) {
			return
		}
		h.space.Advance(common.TickMs)
		h.control.Update(h.world)
		h.enemies.Update(h.world)
		h.physics.Update(h.world)
		h.room.Update(h.world)
	}
}

func (h *harness) playerState(t *testing.T) *component.Player {
	t.Helper()
	p, ok := ecs.Get(h.world, h.player, component.PlayerComponent.Kind())
	require.True(t, ok)
	return p
}

func (h *harness) hearts(t *testing.T) [component.HeartSlots]component.HeartState {
	t.Helper()
	e, ok := ecs.First(h.world, component.HeartDisplayComponent.Kind())
	require.True(t, ok)
	d, ok := ecs.Get(h.world, e, component.HeartDisplayComponent.Kind())
	require.True(t, ok)
	return d.Slots
}

func (h *harness) playerHandle(t *testing.T) engine.Handle {
	t.Helper()
	b, ok := ecs.Get(h.world, h.player, component.BodyComponent.Kind())
	require.True(t, ok)
	return b.Handle
}

func eventsOf(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func noEnemies(spec *prefabs.GameSpec) {
	spec.Room.Roster = nil
	spec.Room.Obstacles.Count = 0
}
