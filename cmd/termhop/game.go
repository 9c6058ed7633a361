package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/sound"
)

const bannerFor = 3 * time.Second

var cellStyles = map[cellKind]struct {
	r     rune
	style tcell.Style
}{
	cellLava:     {'~', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)},
	cellPlatform: {'█', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	cellMoving:   {'▒', tcell.StyleDefault.Foreground(tcell.ColorAqua)},
	cellWall:     {'█', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	cellHazard:   {'^', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	cellFinish:   {'#', tcell.StyleDefault.Foreground(tcell.ColorGold)},
	cellBody:     {'@', tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)},
}

type game struct {
	screen   tcell.Screen
	world    *ecs.World
	pipeline *ecs.Scheduler
	keys     *keyHold
	bank     *sound.Bank
	tick     time.Duration

	audioInit bool
	now       time.Time
	feed      system.RenderFeed
	bannerAt  time.Time
}

func newGame(screen tcell.Screen, campaign *levels.Campaign, start int, tuning entity.Tuning, tick, hold time.Duration) (*game, error) {
	world := ecs.NewWorld()
	if _, err := entity.NewGame(world, campaign, start, tuning); err != nil {
		return nil, err
	}

	g := &game{
		screen: screen,
		world:  world,
		keys:   newKeyHold(hold),
		bank:   sound.NewBank(tuning.World.Tones),
		tick:   tick,
		now:    time.Now(),
	}
	input := system.InputFunc(func() component.Input { return g.keys.input(g.now) })
	g.pipeline = system.NewPipeline(input, system.NewLevelSystem(campaign, tuning))
	g.feed = system.Snapshot(world)

	if err := speaker.Init(sound.SampleRate, sound.SampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio initialization failed: %v", err)
	} else {
		g.audioInit = true
	}
	return g, nil
}

func (g *game) run() {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.step(now)
			g.draw()
		}
	}
}

func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		g.keys.press(actionFor(ev), time.Now())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *game) step(now time.Time) {
	g.now = now
	g.pipeline.Update(g.world)
	for _, evt := range g.world.Events().Drain() {
		g.play(string(evt.Type))
		if evt.Type == ecs.EventAllLevelsComplete {
			g.bannerAt = now
		}
	}
	g.feed = system.Snapshot(g.world)
}

func (g *game) play(event string) {
	if !g.audioInit || !g.bank.Has(event) {
		return
	}
	s, err := g.bank.Streamer(event, sound.SampleRate)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (g *game) draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()

	hud := fmt.Sprintf("Level %d/%d  Deaths %d  [a/d] move  [w/space] jump  [q] quit", g.feed.Level+1, g.feed.Levels, g.feed.Deaths)
	g.text(0, 0, hud, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	c := rasterize(g.feed, cols, rows-1)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			kind := c.at(col, row)
			if kind == cellEmpty {
				continue
			}
			cell := cellStyles[kind]
			g.screen.SetContent(col, row+1, cell.r, nil, cell.style)
		}
	}

	if !g.bannerAt.IsZero() && g.now.Sub(g.bannerAt) < bannerFor {
		msg := " ALL LEVELS COMPLETE "
		g.text((cols-len(msg))/2, rows/2, msg, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold))
	}

	g.screen.Show()
}

func (g *game) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}
