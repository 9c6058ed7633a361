package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// HazardSystem requests a respawn when the body overlaps any hazard,
// including the lava floor. However many hazards overlap, the body gets a
// single request per tick.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	e, t, b, ok := playerBody(w)
	if !ok {
		return
	}
	box := bodyBB(t, b)

	ecs.ForEach(w, component.HazardComponent.Kind(), func(_ ecs.Entity, h *component.Hazard) {
		if !HazardOverlaps(h, box) {
			return
		}
		cause := component.CauseHazard
		if h.Lava {
			cause = component.CauseLava
		}
		requestRespawn(w, e, cause)
	})
}

// HazardOverlaps reports whether the hazard strictly overlaps box.
func HazardOverlaps(h *component.Hazard, box cp.BB) bool {
	if h.Shape == component.HazardCircle {
		return common.CircleOverlaps(h.Center, h.Radius, box)
	}
	return common.Overlaps(h.Rect, box)
}
