package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerHeldAgainstWallStaysInside(t *testing.T) {
	h := newHarness(t, noEnemies)
	room := h.spec.Room
	half := h.spec.Player.Size.Height / 2

	SetInput(h.world, 0, 1)
	h.run(3000)
	pos := h.playerHandle(t).Position()
	assert.LessOrEqual(t, pos.Y, room.Height-room.WallThickness-half+1, "bottom wall holds the player")
	assert.Greater(t, pos.Y, room.Height-room.WallThickness-half-2, "player rests against the bottom wall")

	SetInput(h.world, -1, 0)
	h.run(4000)
	pos = h.playerHandle(t).Position()
	assert.GreaterOrEqual(t, pos.X, room.WallThickness+half-1, "left wall holds the player")
	assert.Less(t, pos.X, room.WallThickness+half+2)
}

func TestPlayerStopsWhenInputReleased(t *testing.T) {
	h := newHarness(t, noEnemies)

	SetInput(h.world, 1, 0)
	h.run(200)
	assert.InDelta(t, h.spec.Player.Speed, h.playerHandle(t).Velocity().X, 1e-9)

	SetInput(h.world, 0, 0)
	h.run(100)
	before := h.playerHandle(t).Position()
	h.run(500)
	assert.Equal(t, before, h.playerHandle(t).Position())
}
