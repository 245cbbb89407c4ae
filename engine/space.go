package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dungeonroom/common"
	"github.com/rs/zerolog"
)

const spaceIterations = 10

type layerPair struct {
	a Layer
	b Layer
}

type contactRule struct {
	solid bool
	fns   []ContactFunc
}

type contact struct {
	a  *body
	b  *body
	fn ContactFunc
}

// Space implements Engine on a Chipmunk2D space with zero gravity. Contact
// callbacks are queued while the space steps and dispatched afterwards, so
// callbacks may freely spawn or destroy bodies.
type Space struct {
	space   *cp.Space
	clock   *Clock
	delayed *Scheduler
	rng     *Random
	log     zerolog.Logger

	nextID HandleID
	bodies map[HandleID]*body
	shapes map[*cp.Shape]*body

	masks [layerCount]uint
	rules map[layerPair]*contactRule

	pending []contact
	paused  bool
}

var _ Engine = (*Space)(nil)

// NewSpace creates an empty top-down space seeded for RandomBetween.
func NewSpace(seed int64, log zerolog.Logger) *Space {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{X: 0, Y: 0})

	return &Space{
		space:   space,
		clock:   NewClock(),
		delayed: NewScheduler(),
		rng:     NewRandom(seed),
		log:     log,
		bodies:  make(map[HandleID]*body),
		shapes:  make(map[*cp.Shape]*body),
		rules:   make(map[layerPair]*contactRule),
	}
}

// Seed returns the seed RandomBetween draws from.
func (s *Space) Seed() int64 {
	return s.rng.Seed()
}

// Clock exposes the simulation clock.
func (s *Space) Clock() *Clock {
	return s.clock
}

func (s *Space) Now() int64 {
	return s.clock.Now()
}

func (s *Space) RandomBetween(min, max float64) float64 {
	return s.rng.Between(min, max)
}

func (s *Space) ScheduleDelayed(ms int64, fn func()) {
	s.delayed.After(s.clock.Now(), ms, fn)
}

// Pause freezes the physics simulation. Delayed callbacks keep running.
func (s *Space) Pause() {
	if !s.paused {
		s.log.Debug().Int64("now", s.Now()).Msg("engine: simulation paused")
	}
	s.paused = true
}

func (s *Space) Paused() bool {
	return s.paused
}

// Advance moves the clock forward by ms and runs the delayed callbacks that
// became due.
func (s *Space) Advance(ms float64) {
	s.clock.Advance(ms)
	s.delayed.Run(s.clock.Now())
}

// Step integrates the space by ms and dispatches the contacts it produced.
// It does nothing while paused.
func (s *Space) Step(ms float64) {
	if s.paused || ms <= 0 {
		return
	}
	s.space.Step(ms / 1000.0)
	s.flushContacts()
}

func (s *Space) Spawn(def BodyDef) (Handle, error) {
	if !def.Layer.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayer, def.Layer)
	}

	width, height := def.Width, def.Height
	if def.Radius > 0 {
		width, height = def.Radius*2, def.Radius*2
	}
	if width <= 0 || height <= 0 {
		width, height = 16, 16
	}

	var cpBody *cp.Body
	if def.Static {
		cpBody = cp.NewStaticBody()
	} else {
		cpBody = cp.NewBody(1, math.Inf(1))
	}
	cpBody.SetPosition(cp.Vector{X: def.Position.X, Y: def.Position.Y})

	var shape *cp.Shape
	if def.Radius > 0 {
		shape = cp.NewCircle(cpBody, def.Radius, cp.Vector{})
	} else {
		shape = cp.NewBox(cpBody, width, height, 0)
	}
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(cp.CollisionType(def.Layer))
	shape.SetFilter(s.filterFor(def.Layer))

	s.space.AddBody(cpBody)
	s.space.AddShape(shape)

	s.nextID++
	b := &body{
		id:      s.nextID,
		layer:   def.Layer,
		texture: def.Texture,
		width:   width,
		height:  height,
		static:  def.Static,
		body:    cpBody,
		shape:   shape,
		owner:   s,
	}
	if !def.Static {
		cpBody.SetVelocityUpdateFunc(b.drive)
	}
	s.bodies[b.id] = b
	s.shapes[shape] = b
	return b, nil
}

func (s *Space) SetVelocityTowards(h Handle, target common.Vec, speed float64) {
	if h == nil || h.Destroyed() {
		return
	}
	h.SetVelocity(common.Toward(h.Position(), target, speed))
}

// RegisterCollision makes bodies on a and b block each other and calls fn
// on every step they stay in contact. fn may be nil.
func (s *Space) RegisterCollision(a, b Layer, fn ContactFunc) error {
	return s.register(a, b, true, fn)
}

// RegisterOverlap reports contacts between a and b every step without any
// physical response.
func (s *Space) RegisterOverlap(a, b Layer, fn ContactFunc) error {
	return s.register(a, b, false, fn)
}

// Handles returns the live handles on a layer ordered by spawn order.
func (s *Space) Handles(layer Layer) []Handle {
	out := make([]Handle, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.layer == layer {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Count returns the number of live bodies on a layer.
func (s *Space) Count(layer Layer) int {
	n := 0
	for _, b := range s.bodies {
		if b.layer == layer {
			n++
		}
	}
	return n
}

func (s *Space) register(a, b Layer, solid bool, fn ContactFunc) error {
	if !a.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLayer, a)
	}
	if !b.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLayer, b)
	}

	key := layerPair{a: a, b: b}
	rule, ok := s.rules[key]
	if !ok {
		rule = &contactRule{solid: solid}
		s.rules[key] = rule
		s.installHandler(key, rule)
	}
	rule.solid = rule.solid || solid
	if fn != nil {
		rule.fns = append(rule.fns, fn)
	}

	s.masks[a] |= layerBit(b)
	s.masks[b] |= layerBit(a)
	s.refreshFilters(a, b)
	return nil
}

func (s *Space) installHandler(key layerPair, rule *contactRule) {
	handler := s.space.NewCollisionHandler(cp.CollisionType(key.a), cp.CollisionType(key.b))
	handler.UserData = s
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sp, ok := userData.(*Space)
		if !ok || sp == nil {
			return rule.solid
		}
		shapeA, shapeB := arb.Shapes()
		ba, okA := sp.shapes[shapeA]
		bb, okB := sp.shapes[shapeB]
		if !okA || !okB {
			return rule.solid
		}
		if ba.layer != key.a {
			ba, bb = bb, ba
		}
		for _, fn := range rule.fns {
			sp.pending = append(sp.pending, contact{a: ba, b: bb, fn: fn})
		}
		return rule.solid
	}
}

func (s *Space) flushContacts() {
	if len(s.pending) == 0 {
		return
	}
	queued := s.pending
	s.pending = nil
	for _, c := range queued {
		// a callback that paused the space ends this step's dispatch
		if s.paused {
			return
		}
		if c.a.destroyed || c.b.destroyed {
			continue
		}
		c.fn(c.a, c.b)
	}
}

func (s *Space) filterFor(layer Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, layerBit(layer), s.masks[layer])
}

func (s *Space) refreshFilters(layers ...Layer) {
	for _, b := range s.bodies {
		for _, l := range layers {
			if b.layer == l {
				b.shape.SetFilter(s.filterFor(l))
				break
			}
		}
	}
}

func (s *Space) remove(b *body) {
	if b.shape != nil {
		s.space.RemoveShape(b.shape)
		delete(s.shapes, b.shape)
	}
	if b.body != nil {
		s.space.RemoveBody(b.body)
	}
	delete(s.bodies, b.id)
}

func layerBit(l Layer) uint {
	return 1 << uint(l)
}
