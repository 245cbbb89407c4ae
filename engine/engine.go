// Package engine is the boundary between the gameplay core and the physics
// simulation. The core only sees the Engine and Handle capabilities; Space
// implements them on top of Chipmunk2D.
package engine

import (
	"errors"

	"github.com/milk9111/dungeonroom/common"
)

var ErrUnknownLayer = errors.New("engine: unknown layer")

// Layer groups bodies for collision and overlap registration.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerPlayer
	LayerEnemy
	LayerProjectile
	LayerWall
	LayerObstacle
	LayerDoor
	LayerEffect

	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerPlayer:
		return "player"
	case LayerEnemy:
		return "enemy"
	case LayerProjectile:
		return "projectile"
	case LayerWall:
		return "wall"
	case LayerObstacle:
		return "obstacle"
	case LayerDoor:
		return "door"
	case LayerEffect:
		return "effect"
	default:
		return "none"
	}
}

func (l Layer) valid() bool {
	return l > LayerNone && l < layerCount
}

type HandleID uint64

// BodyDef describes a body to spawn. A positive Radius makes a circle,
// otherwise Width x Height is used as a box centered on Position.
type BodyDef struct {
	Layer    Layer
	Texture  string
	Position common.Vec
	Width    float64
	Height   float64
	Radius   float64
	Static   bool
}

// Handle is an engine-owned entity. Handles stay valid to call after
// Destroy; they just stop participating in the simulation.
type Handle interface {
	ID() HandleID
	Layer() Layer
	Position() common.Vec
	SetPosition(p common.Vec)
	Velocity() common.Vec
	SetVelocity(v common.Vec)
	Texture() string
	SetTexture(name string)
	Size() (w, h float64)
	Destroy()
	Destroyed() bool
}

// ContactFunc receives the two handles of a contact ordered as registered.
type ContactFunc func(a, b Handle)

// Engine is everything the gameplay core needs from the boundary.
type Engine interface {
	Spawn(def BodyDef) (Handle, error)
	SetVelocityTowards(h Handle, target common.Vec, speed float64)
	RegisterCollision(a, b Layer, fn ContactFunc) error
	RegisterOverlap(a, b Layer, fn ContactFunc) error
	ScheduleDelayed(ms int64, fn func())
	Now() int64
	RandomBetween(min, max float64) float64
	Pause()
	Paused() bool
}
