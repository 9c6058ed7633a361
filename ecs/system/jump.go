package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// JumpSystem applies the jump impulse. It runs after collision so the
// grounded flag reflects this tick's landing.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem { return &JumpSystem{} }

func (s *JumpSystem) Update(w *ecs.World) {
	e, _, b, ok := playerBody(w)
	if !ok || !b.Grounded {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok || !input.Jump {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	b.Vel.Y = -p.JumpPower
	b.Grounded = false
	b.Support = 0
	w.Events().Push(ecs.Event{Type: ecs.EventJumped})
}
