package engine

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dungeonroom/common"
)

// body is the Handle implementation backed by a Chipmunk body and shape.
type body struct {
	id      HandleID
	layer   Layer
	texture string
	width   float64
	height  float64
	static  bool

	body  *cp.Body
	shape *cp.Shape
	owner *Space

	destroyed bool
	lastPos   common.Vec

	// target is the velocity the body is driven at; the solver may still
	// cancel the part of it that pushes into a solid contact.
	target common.Vec
}

func (b *body) ID() HandleID { return b.id }

func (b *body) Layer() Layer { return b.layer }

func (b *body) Texture() string { return b.texture }

func (b *body) SetTexture(name string) { b.texture = name }

func (b *body) Size() (float64, float64) { return b.width, b.height }

func (b *body) Destroyed() bool { return b.destroyed }

// Position returns the body center. Destroyed bodies report where they were
// when they were removed.
func (b *body) Position() common.Vec {
	if b.destroyed || b.body == nil {
		return b.lastPos
	}
	p := b.body.Position()
	return common.Vec{X: p.X, Y: p.Y}
}

func (b *body) SetPosition(p common.Vec) {
	if b.destroyed || b.body == nil {
		return
	}
	if b.static && b.owner != nil {
		// static shapes keep the bounds they were indexed with until re-added
		b.owner.space.RemoveShape(b.shape)
		b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
		b.owner.space.AddShape(b.shape)
		return
	}
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
}

// Velocity returns the velocity the body is being driven at.
func (b *body) Velocity() common.Vec {
	if b.destroyed || b.body == nil || b.static {
		return common.Vec{}
	}
	return b.target
}

// SetVelocity changes the driven velocity. It is applied at the start of the
// next solver pass, so contacts against solid layers still block it.
func (b *body) SetVelocity(v common.Vec) {
	if b.destroyed || b.body == nil || b.static {
		return
	}
	b.target = v
}

// drive is installed as the Chipmunk velocity function of dynamic bodies.
func (b *body) drive(cb *cp.Body, _ cp.Vector, _, _ float64) {
	cb.SetVelocityVector(cp.Vector{X: b.target.X, Y: b.target.Y})
}

// Destroy removes the body from the simulation. Repeated calls are no-ops.
func (b *body) Destroy() {
	if b.destroyed {
		return
	}
	b.lastPos = b.Position()
	b.destroyed = true
	if b.owner != nil {
		b.owner.remove(b)
	}
}
