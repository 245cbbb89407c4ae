package component

import "github.com/milk9111/dungeonroom/engine"

// Body links an entity to the engine-owned handle that carries its position,
// velocity and texture.
type Body struct {
	Handle engine.Handle
}

var BodyComponent = NewComponent[Body]()
