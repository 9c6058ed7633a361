package component

import "github.com/jakecoffman/cp"

// Finish is the level's goal region.
type Finish struct {
	Rect cp.BB
}

func (f *Finish) Bounds() cp.BB {
	return f.Rect
}

var FinishComponent = NewComponent[Finish]()
