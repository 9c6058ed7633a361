package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/prefabs"
)

// NewPlayerAt creates the single controllable body with its top-left corner
// at (x, y).
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		return 0, fmt.Errorf("player: already exists")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	body := &component.Body{
		Width:  spec.Width,
		Height: spec.Height,
		Prev:   cp.Vector{X: x, Y: y},
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:        spec.MoveSpeed,
		JumpPower:        spec.JumpPower,
		Gravity:          spec.Gravity,
		TerminalVelocity: spec.TerminalVelocity,
		CeilingBounce:    spec.CeilingBounce,
	}); err != nil {
		return 0, fmt.Errorf("player: add tuning: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}

// PlaceAt moves the body to (x, y) and clears its motion, as on spawn.
func PlaceAt(w *ecs.World, e ecs.Entity, x, y float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		b.Vel = cp.Vector{}
		b.Prev = cp.Vector{X: x, Y: y}
		b.Grounded = false
		b.Support = 0
	}
}

// ApplyPlayerSpec overwrites the tuning of an existing body. Size changes
// take effect immediately.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec prefabs.PlayerSpec) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		p.MoveSpeed = spec.MoveSpeed
		p.JumpPower = spec.JumpPower
		p.Gravity = spec.Gravity
		p.TerminalVelocity = spec.TerminalVelocity
		p.CeilingBounce = spec.CeilingBounce
	}
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		b.Width = spec.Width
		b.Height = spec.Height
	}
}
