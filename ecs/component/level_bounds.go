package component

// LevelBounds stores the world-space bounds of the current level. A body
// whose bottom passes Height+FallTolerance has fallen out of the world.
type LevelBounds struct {
	Width         float64
	Height        float64
	FallTolerance float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
