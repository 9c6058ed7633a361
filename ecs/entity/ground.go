package entity

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
)

// BuildGroundProfile turns a roller's ground descriptor into y = f(x).
// Scripted grounds are sampled once over [0, width] every step pixels and
// interpolated linearly; outside that range the end samples hold.
func BuildGroundProfile(g levels.Ground, width, step float64) (component.GroundProfile, error) {
	switch g.Kind {
	case levels.GroundFlat:
		y := g.Y
		return func(float64) float64 { return y }, nil
	case levels.GroundSlope:
		x0, y0, x1, y1 := g.X0, g.Y0, g.X1, g.Y1
		if x1 == x0 {
			return func(float64) float64 { return math.Min(y0, y1) }, nil
		}
		return func(x float64) float64 {
			t := common.Clamp((x-x0)/(x1-x0), 0, 1)
			return common.Lerp(y0, y1, t)
		}, nil
	case levels.GroundScript:
		samples, err := sampleGroundScript(g.Script, width, step)
		if err != nil {
			return nil, err
		}
		return sampledProfile(samples, step), nil
	default:
		return nil, fmt.Errorf("ground: %w: %q", levels.ErrBadGround, g.Kind)
	}
}

func sampleGroundScript(name string, width, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("ground: sample step %v", step)
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ground: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ground: compile %s: %w", name, err)
	}

	n := int(math.Ceil(width/step)) + 1
	samples := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if err := compiled.Set("x", float64(i)*step); err != nil {
			return nil, err
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("ground: run %s at x=%v: %w", name, float64(i)*step, err)
		}
		samples = append(samples, compiled.Get("y").Float())
	}
	return samples, nil
}

func sampledProfile(samples []float64, step float64) component.GroundProfile {
	last := len(samples) - 1
	return func(x float64) float64 {
		if x <= 0 {
			return samples[0]
		}
		pos := x / step
		i := int(pos)
		if i >= last {
			return samples[last]
		}
		return common.Lerp(samples[i], samples[i+1], pos-float64(i))
	}
}
