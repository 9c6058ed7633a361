package levels

import (
	"errors"
	"fmt"
)

// Level is a hand-authored level descriptor. Coordinates are screen pixels
// with y growing downward; rects are given by their top-left corner.
type Level struct {
	Name            string           `json:"name"`
	Width           float64          `json:"width"`
	Height          float64          `json:"height"`
	LavaY           float64          `json:"lava_y,omitempty"`
	Spawn           *Point           `json:"spawn,omitempty"`
	Platforms       []Rect           `json:"platforms,omitempty"`
	MovingPlatforms []MovingPlatform `json:"moving_platforms,omitempty"`
	Walls           []Wall           `json:"walls,omitempty"`
	Hazards         []Hazard         `json:"hazards,omitempty"`
	Rollers         []Roller         `json:"rollers,omitempty"`
	Finish          Rect             `json:"finish"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MovingPlatform oscillates its left edge between MinX and MaxX. Direction
// is the initial travel direction (-1 or +1, default +1).
type MovingPlatform struct {
	Rect
	MinX      float64 `json:"min_x"`
	MaxX      float64 `json:"max_x"`
	Speed     float64 `json:"speed"`
	Direction int     `json:"direction,omitempty"`
	Bob       *Bob    `json:"bob,omitempty"`
}

// Bob is an optional vertical sine motion around the platform's authored y.
type Bob struct {
	Amplitude    float64 `json:"amplitude"`
	AngularSpeed float64 `json:"angular_speed"`
	Phase        float64 `json:"phase,omitempty"`
}

// Wall is solid over its rect except for the optional opening.
type Wall struct {
	Rect
	Opening *Rect `json:"opening,omitempty"`
}

// Hazard is a static lethal region, either "rect" (default) or "circle".
type Hazard struct {
	Shape  string  `json:"shape,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// Roller is a moving circular hazard that falls under gravity, drifts
// horizontally and follows a ground profile.
type Roller struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Radius  float64 `json:"radius"`
	Drift   float64 `json:"drift"`
	Gravity float64 `json:"gravity"`
	Ground  Ground  `json:"ground"`
}

// Ground describes a roller's ground profile. Kind is "flat" (uses Y),
// "slope" (linear from X0,Y0 to X1,Y1, clamped outside) or "script" (a
// tengo script from prefabs/scripts that assigns y from x).
type Ground struct {
	Kind   string  `json:"kind"`
	Y      float64 `json:"y,omitempty"`
	X0     float64 `json:"x0,omitempty"`
	Y0     float64 `json:"y0,omitempty"`
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	Script string  `json:"script,omitempty"`
}

const (
	HazardShapeRect   = "rect"
	HazardShapeCircle = "circle"

	GroundFlat   = "flat"
	GroundSlope  = "slope"
	GroundScript = "script"
)

var (
	ErrBadSize    = errors.New("levels: non-positive level size")
	ErrNoFinish   = errors.New("levels: missing finish rect")
	ErrBadRect    = errors.New("levels: non-positive rect size")
	ErrBadBounds  = errors.New("levels: moving platform bounds inverted")
	ErrBadSpeed   = errors.New("levels: negative moving platform speed")
	ErrBadHazard  = errors.New("levels: malformed hazard")
	ErrBadOpening = errors.New("levels: wall opening outside wall")
	ErrBadGround  = errors.New("levels: unknown ground profile")
)

// Validate checks the level for data that the engine cannot run. A level
// without static platforms is valid; its spawn comes from the fallback.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrBadSize, l.Width, l.Height)
	}
	if l.Finish.Width <= 0 || l.Finish.Height <= 0 {
		return ErrNoFinish
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d: %w", i, ErrBadRect)
		}
	}
	for i, mp := range l.MovingPlatforms {
		if mp.Width <= 0 || mp.Height <= 0 {
			return fmt.Errorf("moving platform %d: %w", i, ErrBadRect)
		}
		if mp.MinX > mp.MaxX {
			return fmt.Errorf("moving platform %d: %w", i, ErrBadBounds)
		}
		if mp.Speed < 0 {
			return fmt.Errorf("moving platform %d: %w", i, ErrBadSpeed)
		}
	}
	for i, w := range l.Walls {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("wall %d: %w", i, ErrBadRect)
		}
		if o := w.Opening; o != nil {
			if o.Height <= 0 || o.Y < w.Y || o.Y+o.Height > w.Y+w.Height {
				return fmt.Errorf("wall %d: %w", i, ErrBadOpening)
			}
		}
	}
	for i, h := range l.Hazards {
		switch h.Shape {
		case "", HazardShapeRect:
			if h.Width <= 0 || h.Height <= 0 {
				return fmt.Errorf("hazard %d: %w", i, ErrBadHazard)
			}
		case HazardShapeCircle:
			if h.Radius <= 0 {
				return fmt.Errorf("hazard %d: %w", i, ErrBadHazard)
			}
		default:
			return fmt.Errorf("hazard %d: %w: shape %q", i, ErrBadHazard, h.Shape)
		}
	}
	for i, r := range l.Rollers {
		if r.Radius <= 0 {
			return fmt.Errorf("roller %d: %w", i, ErrBadHazard)
		}
		switch r.Ground.Kind {
		case GroundFlat, GroundSlope:
		case GroundScript:
			if r.Ground.Script == "" {
				return fmt.Errorf("roller %d: %w: empty script", i, ErrBadGround)
			}
		default:
			return fmt.Errorf("roller %d: %w: %q", i, ErrBadGround, r.Ground.Kind)
		}
	}
	return nil
}
