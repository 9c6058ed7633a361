package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/prefabs"
	"golang.org/x/image/colornames"
)

// OutlineInset is how far the moving platform outline sits outside the
// platform on each side.
const OutlineInset = 2

// Palette holds the colours used to draw a render feed.
type Palette struct {
	Background color.Color
	Platform   color.Color
	Moving     color.Color
	Outline    color.Color
	Wall       color.Color
	Hazard     color.Color
	Lava       color.Color
	Finish     color.Color
	Player     color.Color
}

// DefaultPalette matches the shipped world.yaml palette.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff},
		Platform:   colornames.Green,
		Moving:     colornames.Cyan,
		Outline:    colornames.Lightblue,
		Wall:       colornames.Gray,
		Hazard:     colornames.Crimson,
		Lava:       colornames.Orangered,
		Finish:     colornames.Gold,
		Player:     colornames.Dodgerblue,
	}
}

// NewPalette applies the configured colours over the defaults.
func NewPalette(spec prefabs.PaletteSpec) Palette {
	p := DefaultPalette()
	p.Background = spec.Background.Or(p.Background)
	p.Platform = spec.Platform.Or(p.Platform)
	p.Moving = spec.Moving.Or(p.Moving)
	p.Outline = spec.Outline.Or(p.Outline)
	p.Wall = spec.Wall.Or(p.Wall)
	p.Hazard = spec.Hazard.Or(p.Hazard)
	p.Lava = spec.Lava.Or(p.Lava)
	p.Finish = spec.Finish.Or(p.Finish)
	p.Player = spec.Player.Or(p.Player)
	return p
}

// Draw paints one feed onto screen. The screen is expected to be in level
// pixels (the game's Layout returns the level size).
func Draw(screen *ebiten.Image, feed system.RenderFeed, pal Palette) {
	screen.Fill(pal.Background)

	if feed.Lava != nil {
		fillRect(screen, *feed.Lava, pal.Lava)
	}
	for _, r := range feed.Platforms {
		fillRect(screen, r, pal.Platform)
	}
	for _, r := range feed.Moving {
		outline := system.Rect{
			X: r.X - OutlineInset,
			Y: r.Y - OutlineInset,
			W: r.W + 2*OutlineInset,
			H: r.H + 2*OutlineInset,
		}
		vector.StrokeRect(screen, float32(outline.X), float32(outline.Y), float32(outline.W), float32(outline.H), 1.0, pal.Outline, false)
		fillRect(screen, r, pal.Moving)
	}
	for _, r := range feed.Walls {
		fillRect(screen, r, pal.Wall)
	}
	for _, r := range feed.Hazards {
		fillRect(screen, r, pal.Hazard)
	}
	for _, c := range feed.Circles {
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(c.R), pal.Hazard, true)
	}

	fillRect(screen, feed.Finish, pal.Finish)
	fillRect(screen, feed.Body, pal.Player)
}

func fillRect(screen *ebiten.Image, r system.Rect, clr color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
