package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// RollerSystem moves rolling hazards: gravity and drift, then ground
// following. A roller that has left the level is sent back to its origin.
// It runs before the HazardSystem so overlap uses this tick's positions.
type RollerSystem struct{}

func NewRollerSystem() *RollerSystem { return &RollerSystem{} }

func (s *RollerSystem) Update(w *ecs.World) {
	var bounds *component.LevelBounds
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		bounds, _ = ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	}

	ecs.ForEach2(w, component.RollerComponent.Kind(), component.HazardComponent.Kind(), func(_ ecs.Entity, r *component.Roller, h *component.Hazard) {
		r.Vel.X = r.Drift
		r.Vel.Y += r.Gravity
		c := h.Center.Add(r.Vel)

		r.OnGround = false
		if r.Ground != nil {
			if ground := r.Ground(c.X); c.Y+h.Radius >= ground {
				c.Y = ground - h.Radius
				r.Vel.Y = 0
				r.OnGround = true
			}
		}
		h.Center = c

		if bounds != nil && leftLevel(c, h.Radius, r.Drift, bounds) {
			h.Center = r.Origin
			r.Vel = cp.Vector{X: r.Drift}
			r.OnGround = false
		}
	})
}

func leftLevel(c cp.Vector, radius, drift float64, bounds *component.LevelBounds) bool {
	switch {
	case c.Y-radius > bounds.Height:
		return true
	case drift > 0 && c.X-radius > bounds.Width:
		return true
	case drift < 0 && c.X+radius < 0:
		return true
	}
	return false
}
