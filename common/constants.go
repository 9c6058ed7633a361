package common

const (
	// BaseWidth and BaseHeight are the logical screen size; levels are
	// authored in these units.
	BaseWidth  = 800
	BaseHeight = 450

	// LavaMargin is the height of the lava strip at the bottom of a level.
	LavaMargin = 40
)
