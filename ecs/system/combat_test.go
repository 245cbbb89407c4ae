package system

import (
	"testing"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnPlayerHitInvulnerabilityWindow(t *testing.T) {
	h := newHarness(t, noEnemies)
	const (
		F = component.HeartFull
		H = component.HeartHalf
		E = component.HeartEmpty
	)

	assert.True(t, h.combat.OnPlayerHit(h.world, 0))
	assert.Equal(t, 5, h.playerState(t).Health)
	assert.Equal(t, [3]component.HeartState{F, F, H}, h.hearts(t))

	assert.False(t, h.combat.OnPlayerHit(h.world, 500), "hit exactly at the window edge is absorbed")
	assert.Equal(t, 5, h.playerState(t).Health)

	assert.True(t, h.combat.OnPlayerHit(h.world, 600))
	assert.Equal(t, 4, h.playerState(t).Health)
	assert.Equal(t, [3]component.HeartState{F, F, E}, h.hearts(t))

	assert.False(t, h.combat.OnPlayerHit(h.world, 650))
	assert.Equal(t, 4, h.playerState(t).Health)
	assert.Equal(t, int64(600), h.playerState(t).LastDamageTime, "absorbed hits do not extend the window")

	assert.True(t, h.combat.OnPlayerHit(h.world, 1101))
	assert.Equal(t, 3, h.playerState(t).Health)

	damaged := eventsOf(h.world.Events().Drain(), ecs.EventPlayerDamaged)
	require.Len(t, damaged, 3)
	assert.Equal(t, []int64{0, 600, 1101}, []int64{damaged[0].At, damaged[1].At, damaged[2].At})
}

func TestOnPlayerHitDefeat(t *testing.T) {
	h := newHarness(t, noEnemies)

	now := int64(0)
	for i := 0; i < 6; i++ {
		require.True(t, h.combat.OnPlayerHit(h.world, now))
		now += 501
	}

	p := h.playerState(t)
	assert.Equal(t, 0, p.Health)
	assert.True(t, p.Defeated)
	assert.Equal(t, int64(5*501), p.DefeatedAt)
	assert.True(t, Defeated(h.world))
	assert.True(t, h.space.Paused())
	assert.Equal(t, [3]component.HeartState{component.HeartEmpty, component.HeartEmpty, component.HeartEmpty}, h.hearts(t))

	assert.False(t, h.combat.OnPlayerHit(h.world, now+10_000), "defeated player takes no more damage")
	assert.Equal(t, 0, p.Health)

	events := h.world.Events().Drain()
	assert.Len(t, eventsOf(events, ecs.EventPlayerDefeated), 1)
}

func TestDefeatFreezesPhysics(t *testing.T) {
	h := newHarness(t, noEnemies)
	blob, err := entity.NewEnemy(h.world, h.spec.Enemies, "blob", 200, 200)
	require.NoError(t, err)
	body, ok := ecs.Get(h.world, blob, component.BodyComponent.Kind())
	require.True(t, ok)
	body.Handle.SetVelocity(common.Vec{X: 50})

	h.playerState(t).Health = 1
	require.True(t, h.combat.OnPlayerHit(h.world, 0))
	require.True(t, h.space.Paused())

	before := body.Handle.Position()
	h.space.Step(common.TickMs * 30)
	h.enemies.Update(h.world)
	assert.Equal(t, before, body.Handle.Position())
}

func TestHealthNeverIncreases(t *testing.T) {
	h := newHarness(t, noEnemies)
	last := h.playerState(t).Health
	for now := int64(0); now < 4000; now += 137 {
		h.combat.OnPlayerHit(h.world, now)
		health := h.playerState(t).Health
		assert.LessOrEqual(t, health, last)
		assert.GreaterOrEqual(t, health, 0)
		last = health
	}
}

func TestProjectileDamagesPlayerAndIsRemoved(t *testing.T) {
	h := newHarness(t, noEnemies)
	target := h.playerHandle(t).Position()

	_, err := entity.NewProjectile(h.world, h.spec.Projectile, component.EnemyBoss, common.Vec{X: target.X, Y: target.Y - 120}, target)
	require.NoError(t, err)

	h.run(1000)

	assert.Equal(t, 5, h.playerState(t).Health)
	assert.Zero(t, ecs.Count(h.world, component.ProjectileComponent.Kind()))
	assert.Zero(t, h.space.Count(engine.LayerProjectile), "projectile bodies are gone")
}

func TestProjectileRemovedByWallAndObstacle(t *testing.T) {
	h := newHarness(t, noEnemies)

	_, err := entity.NewObstacle(h.world, h.spec.Room.Obstacles, 300, 300)
	require.NoError(t, err)

	_, err = entity.NewProjectile(h.world, h.spec.Projectile, component.EnemyBlob, common.Vec{X: 150, Y: 300}, common.Vec{X: 300, Y: 300})
	require.NoError(t, err)
	_, err = entity.NewProjectile(h.world, h.spec.Projectile, component.EnemyBlob, common.Vec{X: 150, Y: 150}, common.Vec{X: 150, Y: -100})
	require.NoError(t, err)

	h.run(1500)

	assert.Zero(t, ecs.Count(h.world, component.ProjectileComponent.Kind()))
	assert.Equal(t, 6, h.playerState(t).Health)
}

func TestSustainedEnemyContactRespectsWindow(t *testing.T) {
	h := newHarness(t, noEnemies)
	spawn := h.playerHandle(t).Position()

	_, err := entity.NewEnemy(h.world, h.spec.Enemies, "blob", spawn.X, spawn.Y-40)
	require.NoError(t, err)

	h.run(1500)

	damaged := eventsOf(h.world.Events().Drain(), ecs.EventPlayerDamaged)
	require.NotEmpty(t, damaged)
	assert.Less(t, h.playerState(t).Health, 6)
	for i := 1; i < len(damaged); i++ {
		assert.Greater(t, damaged[i].At-damaged[i-1].At, h.combat.InvulnerabilityMs())
	}
}
