package component

import "github.com/jakecoffman/cp"

// SolidKind tags the variant of a Solid.
type SolidKind uint8

const (
	SolidStatic SolidKind = iota
	SolidMoving
	SolidWall
)

func (k SolidKind) String() string {
	switch k {
	case SolidStatic:
		return "static"
	case SolidMoving:
		return "moving"
	case SolidWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Solid is anything the body collides with: static platforms, moving
// platforms and walls. Rects use cp.BB in screen space, so B is the top edge
// and T the bottom edge.
//
// Walls are solid over Rect except for Opening (when HasOpening is set).
// Order preserves the authored level order; resolution visits solids by it.
type Solid struct {
	Kind       SolidKind
	Order      int
	Rect       cp.BB
	Opening    cp.BB
	HasOpening bool
}

// Bounds returns the solid's current rect.
func (s *Solid) Bounds() cp.BB {
	return s.Rect
}

var SolidComponent = NewComponent[Solid]()

// Spans returns the solid parts of the rect. Walls with an opening yield the
// pieces above and below it; empty pieces are dropped.
func (s *Solid) Spans() []cp.BB {
	if !s.HasOpening {
		return []cp.BB{s.Rect}
	}
	spans := make([]cp.BB, 0, 2)
	if above := (cp.BB{L: s.Rect.L, B: s.Rect.B, R: s.Rect.R, T: s.Opening.B}); above.T > above.B {
		spans = append(spans, above)
	}
	if below := (cp.BB{L: s.Rect.L, B: s.Opening.T, R: s.Rect.R, T: s.Rect.T}); below.T > below.B {
		spans = append(spans, below)
	}
	return spans
}
