package system

import (
	"github.com/milk9111/dungeonroom/common"
	"github.com/milk9111/dungeonroom/ecs"
	"github.com/milk9111/dungeonroom/ecs/component"
)

// PlayerControlSystem turns the polled input into player velocity.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem { return &PlayerControlSystem{} }

func (s *PlayerControlSystem) Update(w *ecs.World) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || body.Handle == nil || body.Handle.Destroyed() {
		return
	}

	if player == nil || player.Defeated {
		body.Handle.SetVelocity(common.Vec{})
		return
	}

	var dir common.Vec
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		dir = common.Vec{X: input.MoveX, Y: input.MoveY}.Normalize()
	}
	body.Handle.SetVelocity(dir.Scale(player.Speed))
}

// SetInput stores the polled movement axes on the player.
func SetInput(w *ecs.World, moveX, moveY float64) {
	e, ok := ecs.First(w, component.InputComponent.Kind())
	if !ok {
		return
	}
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		input.MoveX = moveX
		input.MoveY = moveY
	}
}
