package system

import (
	"math"

	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// MovingPlatformSystem advances oscillating platforms for the next tick and
// records each platform's displacement for carrying.
type MovingPlatformSystem struct{}

func NewMovingPlatformSystem() *MovingPlatformSystem { return &MovingPlatformSystem{} }

func (s *MovingPlatformSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.OscillatorComponent.Kind(), component.SolidComponent.Kind(), func(e ecs.Entity, osc *component.Oscillator, solid *component.Solid) {
		oldX, oldY := solid.Rect.L, solid.Rect.B
		width, height := common.Width(solid.Rect), common.Height(solid.Rect)

		x := Advance(osc, oldX)

		y := oldY
		if bob, ok := ecs.Get(w, e, component.BobComponent.Kind()); ok {
			bob.Angle += bob.AngularSpeed
			y = bob.BaseY + bob.Amplitude*math.Sin(bob.Angle)
			bob.DeltaY = y - oldY
		}

		osc.DeltaX = x - oldX
		solid.Rect = common.RectBB(x, y, width, height)
	})
}

// Advance steps the oscillator from x by one tick and returns the new left
// edge. Crossing a bound flips the direction once and takes one corrective
// step back; the result is then clamped into [MinX, MaxX].
func Advance(osc *component.Oscillator, x float64) float64 {
	dir := float64(osc.Dir)
	x += osc.Speed * dir
	if x < osc.MinX || x > osc.MaxX {
		osc.Dir = -osc.Dir
		osc.Flips++
		x += osc.Speed * float64(osc.Dir)
	}
	return common.Clamp(x, osc.MinX, osc.MaxX)
}
