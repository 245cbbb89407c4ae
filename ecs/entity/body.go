package entity

import (
	"errors"

	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
	"github.com/milk9111/dungeonroom/prefabs"
)

// ErrNoEngine is returned by builders called on a world without an engine.
var ErrNoEngine = errors.New("entity: world has no engine")

func spawnBody(w *ecs.World, e ecs.Entity, def engine.BodyDef) (engine.Handle, error) {
	eng := w.Engine()
	if eng == nil {
		return nil, ErrNoEngine
	}
	h, err := eng.Spawn(def)
	if err != nil {
		return nil, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Handle: h}); err != nil {
		h.Destroy()
		return nil, err
	}
	return h, nil
}

func bodyDef(layer engine.Layer, texture string, at common.Vec, size prefabs.SizeSpec, static bool) engine.BodyDef {
	return engine.BodyDef{
		Layer:    layer,
		Texture:  texture,
		Position: at,
		Width:    size.Width,
		Height:   size.Height,
		Radius:   size.Radius,
		Static:   static,
	}
}

// Destroy removes e and its engine body. Safe on dead entities.
func Destroy(w *ecs.World, e ecs.Entity) bool {
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok && b.Handle != nil {
		b.Handle.Destroy()
	}
	return ecs.DestroyEntity(w, e)
}

// Position returns the engine position of e, if it has a body.
func Position(w *ecs.World, e ecs.Entity) (common.Vec, bool) {
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || b.Handle == nil || b.Handle.Destroyed() {
		return common.Vec{}, false
	}
	return b.Handle.Position(), true
}

// ForHandle returns the entity whose body is h.
func ForHandle(w *ecs.World, h engine.Handle) (ecs.Entity, bool) {
	if h == nil {
		return 0, false
	}
	var (
		found ecs.Entity
		ok    bool
	)
	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, b *component.Body) {
		if !ok && b.Handle != nil && b.Handle.ID() == h.ID() {
			found, ok = e, true
		}
	})
	return found, ok
}
