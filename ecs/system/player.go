package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// playerBody looks up the single body and its transform.
func playerBody(w *ecs.World) (ecs.Entity, *component.Transform, *component.Body, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	return e, t, b, true
}

func bodyBB(t *component.Transform, b *component.Body) cp.BB {
	return common.RectBB(t.X, t.Y, b.Width, b.Height)
}

// requestRespawn marks the body for reset. The first cause in a tick wins.
func requestRespawn(w *ecs.World, e ecs.Entity, cause component.DeathCause) {
	if ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
		return
	}
	_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Cause: cause})
}
