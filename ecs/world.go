package ecs

import (
	"github.com/milk9111/dungeonroom/ecs/component"
	"github.com/milk9111/dungeonroom/engine"
)

// World owns entities, their component stores, the event queue and the
// boundary engine the systems drive.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	engine engine.Engine
}

// NewWorld creates an empty ECS world bound to an engine.
func NewWorld(eng engine.Engine) *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		engine: eng,
	}
}

// Engine returns the boundary engine attached to this world.
func (w *World) Engine() engine.Engine {
	if w == nil {
		return nil
	}
	return w.engine
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
