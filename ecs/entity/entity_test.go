package entity

import (
	"testing"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) (*ecs.World, *engine.Space, *prefabs.GameSpec) {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	space := engine.NewSpace(1, zerolog.Nop())
	return ecs.NewWorld(space), space, spec
}

func TestNewPlayer(t *testing.T) {
	w, space, spec := newTestWorld(t)

	e, err := NewPlayer(w, spec.Player)
	require.NoError(t, err)

	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 6, p.Health)
	assert.Equal(t, 6, p.MaxHealth)
	assert.Equal(t, -spec.Player.InvulnerabilityMs-1, p.LastDamageTime)
	assert.False(t, p.Defeated)
	assert.True(t, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
	assert.True(t, ecs.Has(w, e, component.InputComponent.Kind()))

	pos, ok := Position(w, e)
	require.True(t, ok)
	assert.Equal(t, common.Vec{X: spec.Player.Spawn.X, Y: spec.Player.Spawn.Y}, pos)
	assert.Equal(t, 1, space.Count(engine.LayerPlayer))
}

func TestNewEnemyRejectsUnknownKind(t *testing.T) {
	w, space, spec := newTestWorld(t)

	_, err := NewEnemy(w, spec.Enemies, "slime", 10, 10)
	require.ErrorIs(t, err, component.ErrUnknownEnemyKind)
	assert.Empty(t, ecs.Entities(w))
	assert.Zero(t, space.Count(engine.LayerEnemy))

	_, err = NewEnemy(w, prefabs.EnemiesSpec{}, "boss", 10, 10)
	require.ErrorIs(t, err, component.ErrUnknownEnemyKind, "known kind without a prefab")
}

func TestNewWalls(t *testing.T) {
	w, space, spec := newTestWorld(t)

	walls, err := NewWalls(w, spec.Room)
	require.NoError(t, err)
	require.Len(t, walls, 4)
	assert.Equal(t, 4, space.Count(engine.LayerWall))

	for _, h := range space.Handles(engine.LayerWall) {
		p := h.Position()
		width, height := h.Size()
		assert.GreaterOrEqual(t, p.X-width/2, 0.0)
		assert.LessOrEqual(t, p.X+width/2, spec.Room.Width)
		assert.GreaterOrEqual(t, p.Y-height/2, 0.0)
		assert.LessOrEqual(t, p.Y+height/2, spec.Room.Height)
	}
}

func TestDestroyAndForHandle(t *testing.T) {
	w, space, spec := newTestWorld(t)

	door, err := NewDoor(w, spec.Room.Door)
	require.NoError(t, err)
	d, ok := ecs.Get(w, door, component.DoorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.DoorClosed, d.State)

	handles := space.Handles(engine.LayerDoor)
	require.Len(t, handles, 1)
	found, ok := ForHandle(w, handles[0])
	require.True(t, ok)
	assert.Equal(t, door, found)

	assert.True(t, Destroy(w, door))
	assert.False(t, Destroy(w, door))
	assert.True(t, handles[0].Destroyed())
	_, ok = ForHandle(w, handles[0])
	assert.False(t, ok)
}

func TestBuildersNeedEngine(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	w := ecs.NewWorld(nil)

	_, err = NewPlayer(w, spec.Player)
	require.ErrorIs(t, err, ErrNoEngine)
}
