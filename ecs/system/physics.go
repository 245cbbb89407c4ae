package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/ecs/entity"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/rs/zerolog"
)

// Stepper advances a physics simulation. engine.Space implements it.
type Stepper interface {
	Step(ms float64)
}

// PhysicsSystem steps the simulation once per tick. Contact callbacks
// registered with RegisterContacts run at the end of each step.
type PhysicsSystem struct {
	space  Stepper
	stepMs float64
}

func NewPhysicsSystem(space Stepper, stepMs float64) *PhysicsSystem {
	return &PhysicsSystem{space: space, stepMs: stepMs}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s.space == nil {
		return
	}
	s.space.Step(s.stepMs)
}

// Contacts routes engine contact callbacks into the gameplay systems.
type Contacts struct {
	Room   *RoomSystem
	Combat *CombatResolver
	Log    zerolog.Logger
}

// RegisterContacts declares how every layer pair interacts:
//
//	player, enemy vs wall, obstacle   solid
//	player vs enemy                   solid, damages the player while touching
//	projectile vs player              overlap, damages and removes the shot
//	projectile vs wall, obstacle      solid, removes the shot
//	player vs door                    overlap, leaves a cleared room
//
// Pairs not listed pass through each other.
func RegisterContacts(w *ecs.World, c Contacts) error {
	eng := w.Engine()
	if eng == nil {
		return entity.ErrNoEngine
	}

	var errs []error
	solid := func(a, b engine.Layer, fn engine.ContactFunc) {
		if err := eng.RegisterCollision(a, b, fn); err != nil {
			errs = append(errs, fmt.Errorf("contacts: %s/%s: %w", a, b, err))
		}
	}
	overlap := func(a, b engine.Layer, fn engine.ContactFunc) {
		if err := eng.RegisterOverlap(a, b, fn); err != nil {
			errs = append(errs, fmt.Errorf("contacts: %s/%s: %w", a, b, err))
		}
	}

	solid(engine.LayerPlayer, engine.LayerWall, nil)
	solid(engine.LayerPlayer, engine.LayerObstacle, nil)
	solid(engine.LayerEnemy, engine.LayerWall, nil)
	solid(engine.LayerEnemy, engine.LayerObstacle, nil)

	solid(engine.LayerPlayer, engine.LayerEnemy, func(_, _ engine.Handle) {
		if c.Combat != nil {
			c.Combat.OnPlayerHit(w, eng.Now())
		}
	})

	overlap(engine.LayerProjectile, engine.LayerPlayer, func(shot, _ engine.Handle) {
		if c.Combat != nil {
			c.Combat.OnPlayerHit(w, eng.Now())
		}
		destroyProjectile(w, shot)
	})

	removeShot := func(shot, _ engine.Handle) { destroyProjectile(w, shot) }
	solid(engine.LayerProjectile, engine.LayerWall, removeShot)
	solid(engine.LayerProjectile, engine.LayerObstacle, removeShot)

	overlap(engine.LayerPlayer, engine.LayerDoor, func(_, _ engine.Handle) {
		if c.Room == nil {
			return
		}
		if err := c.Room.OnDoorOverlap(w); err != nil {
			c.Log.Error().Err(err).Msg("contacts: door transition")
		}
	})

	return errors.Join(errs...)
}

func destroyProjectile(w *ecs.World, h engine.Handle) {
	if e, ok := entity.ForHandle(w, h); ok && ecs.Has(w, e, component.ProjectileComponent.Kind()) {
		entity.Destroy(w, e)
		return
	}
	h.Destroy()
}
