package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// IntegratorSystem applies horizontal intent and gravity, then moves the body
// by its velocity once. Grounded is cleared here and re-established by the
// CollisionSystem.
type IntegratorSystem struct{}

func NewIntegratorSystem() *IntegratorSystem { return &IntegratorSystem{} }

func (s *IntegratorSystem) Update(w *ecs.World) {
	e, t, b, ok := playerBody(w)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}

	b.Prev = cp.Vector{X: t.X, Y: t.Y}
	b.Grounded = false

	b.Vel.X = 0
	if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		if input.MoveLeft {
			b.Vel.X = -p.MoveSpeed
		}
		// Right wins when both are held.
		if input.MoveRight {
			b.Vel.X = p.MoveSpeed
		}
	}

	b.Vel.Y += p.Gravity
	if b.Vel.Y > p.TerminalVelocity {
		b.Vel.Y = p.TerminalVelocity
	}

	t.X += b.Vel.X
	t.Y += b.Vel.Y
}
