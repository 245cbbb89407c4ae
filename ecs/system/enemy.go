package system

import (
	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
	"github.com/rs/zerolog"
)

// EnemySystem chases the player and fires on each enemy's own cooldown.
type EnemySystem struct {
	projectile prefabs.ProjectileSpec
	coin       prefabs.CoinSpec
	log        zerolog.Logger
}

func NewEnemySystem(projectile prefabs.ProjectileSpec, coin prefabs.CoinSpec, log zerolog.Logger) *EnemySystem {
	return &EnemySystem{projectile: projectile, coin: coin, log: log}
}

// SetSpecs swaps the prefab data used for new shots and coin drops.
func (s *EnemySystem) SetSpecs(projectile prefabs.ProjectileSpec, coin prefabs.CoinSpec) {
	s.projectile = projectile
	s.coin = coin
}

type enemyDecision struct {
	entity ecs.Entity
	enemy  *component.Enemy
	handle engine.Handle
	from   common.Vec
	fire   bool
}

func (s *EnemySystem) Update(w *ecs.World) {
	eng := w.Engine()
	if eng == nil || eng.Paused() {
		return
	}
	target, ok := playerPosition(w)
	if !ok {
		return
	}
	now := eng.Now()

	// Decide against a fixed view of the enemies before touching anything.
	var decisions []enemyDecision
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, body *component.Body) {
		if body.Handle == nil || body.Handle.Destroyed() {
			return
		}
		decisions = append(decisions, enemyDecision{
			entity: e,
			enemy:  enemy,
			handle: body.Handle,
			from:   body.Handle.Position(),
			fire:   now > enemy.LastShootTime+enemy.ShootCooldown,
		})
	})

	for _, d := range decisions {
		if !ecs.IsAlive(w, d.entity) {
			continue
		}
		eng.SetVelocityTowards(d.handle, target, d.enemy.Speed)
		if !d.fire {
			continue
		}
		shot, err := entity.NewProjectile(w, s.projectile, d.enemy.Kind, d.from, target)
		if err != nil {
			s.log.Error().Err(err).Stringer("enemy", d.entity).Msg("enemy: fire projectile")
			continue
		}
		d.enemy.LastShootTime = now
		w.Events().Push(ecs.Event{Type: ecs.EventEnemyFired, Entity: shot, At: now, Data: d.enemy.Kind})
	}
}

// DamageEnemy removes amount health from e. An enemy brought to zero leaves
// the room and drops a coin where it stood. It reports whether e died.
func (s *EnemySystem) DamageEnemy(w *ecs.World, e ecs.Entity, amount int) bool {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || amount <= 0 {
		return false
	}
	enemy.Health -= amount
	if enemy.Health > 0 {
		return false
	}

	pos, _ := entity.Position(w, e)
	kind := enemy.Kind
	entity.Destroy(w, e)

	var now int64
	if eng := w.Engine(); eng != nil {
		now = eng.Now()
	}
	w.Events().Push(ecs.Event{Type: ecs.EventEnemyDefeated, Entity: e, At: now, Data: kind})
	s.log.Debug().Stringer("kind", kind).Float64("x", pos.X).Float64("y", pos.Y).Msg("enemy: defeated")

	if err := ShowCoinDrop(w, s.coin, pos.X, pos.Y); err != nil {
		s.log.Error().Err(err).Msg("enemy: coin drop")
	}
	return true
}

func playerPosition(w *ecs.World) (common.Vec, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return common.Vec{}, false
	}
	return entity.Position(w, e)
}
