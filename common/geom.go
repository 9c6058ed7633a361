package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Geometry lives in screen space (y grows downward) but is stored in cp.BB:
// L/R are the left and right edges, B is the top edge and T the bottom edge.

// RectBB builds a box from a top-left corner and a size.
func RectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps is a strict AABB test: touching edges do not overlap.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// OverlapsX reports strict horizontal overlap only.
func OverlapsX(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L
}

// CircleOverlaps reports whether a circle strictly intersects the box.
func CircleOverlaps(center cp.Vector, radius float64, b cp.BB) bool {
	nx := math.Max(b.L, math.Min(center.X, b.R))
	ny := math.Max(b.B, math.Min(center.Y, b.T))
	closest := cp.Vector{X: nx, Y: ny}
	return center.DistanceSq(closest) < radius*radius
}

// Width and Height of a box.
func Width(b cp.BB) float64 { return b.R - b.L }
func Height(b cp.BB) float64 { return b.T - b.B }

// CenterX and CenterY of a box.
func CenterX(b cp.BB) float64 { return (b.L + b.R) / 2 }
func CenterY(b cp.BB) float64 { return (b.B + b.T) / 2 }

// Translate moves a box by (dx, dy).
func Translate(b cp.BB, dx, dy float64) cp.BB {
	return cp.BB{L: b.L + dx, B: b.B + dy, R: b.R + dx, T: b.T + dy}
}
