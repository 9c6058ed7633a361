package component

import "github.com/jakecoffman/cp"

type HazardShape uint8

const (
	HazardRect HazardShape = iota
	HazardCircle
)

// Hazard kills the body on any overlap. Rect hazards use Rect; circle
// hazards use Center and Radius. Lava marks the level's lava floor.
type Hazard struct {
	Shape  HazardShape
	Rect   cp.BB
	Center cp.Vector
	Radius float64
	Lava   bool
}

// Bounds returns the hazard's axis-aligned bounding box.
func (h *Hazard) Bounds() cp.BB {
	if h.Shape == HazardCircle {
		return cp.BB{
			L: h.Center.X - h.Radius,
			B: h.Center.Y - h.Radius,
			R: h.Center.X + h.Radius,
			T: h.Center.Y + h.Radius,
		}
	}
	return h.Rect
}

var HazardComponent = NewComponent[Hazard]()

// GroundProfile returns the ground height (screen y) under x.
type GroundProfile func(x float64) float64

// Roller is a moving hazard (a rolling or falling object). Its position is
// the Center of the Hazard on the same entity; it must be a circle hazard.
type Roller struct {
	Vel      cp.Vector
	Gravity  float64
	Drift    float64
	Origin   cp.Vector
	Ground   GroundProfile
	OnGround bool
}

var RollerComponent = NewComponent[Roller]()
