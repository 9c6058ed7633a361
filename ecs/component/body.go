package component

import "github.com/jakecoffman/cp"

// Body is the controllable box. Size is fixed for the session; Prev holds the
// top-left position at the start of the current tick and is what the swept
// landing and ceiling tests compare against.
type Body struct {
	Width    float64
	Height   float64
	Vel      cp.Vector
	Prev     cp.Vector
	Grounded bool
	// Support is the handle of the moving platform the body landed on this
	// tick, 0 when it stands on nothing that moves.
	Support uint64
}

var BodyComponent = NewComponent[Body]()
