package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/hopper/common"
	"golang.org/x/image/font/basicfont"
)

var (
	menuPanelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	menuButtonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	menuTextColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenu builds a centered panel with a title, optional lines of text and a
// column of buttons. Only the built-in basic font is used.
func newMenu(title string, lines []string, buttons ...menuButton) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, menuTextColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, menuTextColor),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	btnImg := imageui.NewNineSliceColor(menuButtonColor)
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, &widget.ButtonTextColor{Idle: menuTextColor}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI is shown while the game is paused with Escape.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenu("Paused", nil,
		menuButton{label: "Resume", onClick: func() { g.paused = false }},
		menuButton{label: "Restart level", onClick: func() {
			if err := g.levels.Load(g.world, g.feed.Level); err != nil {
				log.Printf("restart level %d: %v", g.feed.Level, err)
				return
			}
			g.paused = false
		}},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

// NewCompleteUI is shown when the last level has been finished and play has
// wrapped back to the first.
func NewCompleteUI(g *Game) *ebitenui.UI {
	return newMenu("All levels complete!", []string{"Press Enter to play again"},
		menuButton{label: "Play again", onClick: func() { g.finished = false }},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}
