package main

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/hopper/assets"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/ecs/render"
	"github.com/milk9111/hopper/ecs/system"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
	"github.com/milk9111/hopper/sound"
	"golang.design/x/clipboard"
)

type Game struct {
	debug bool

	world    *ecs.World
	pipeline *ecs.Scheduler
	levels   *system.LevelSystem
	tuning   entity.Tuning
	palette  render.Palette
	cues     map[string]*audio.Player
	feed     system.RenderFeed

	levelsDir string
	watcher   *prefabs.Watcher
	clipboard bool

	quit       bool
	paused     bool
	pauseUI    *ebitenui.UI
	finished   bool
	completeUI *ebitenui.UI
}

func NewGame(levelsDir string, start int, debug bool) (*Game, error) {
	tuning, err := entity.LoadTuning()
	if err != nil {
		return nil, err
	}
	campaign, err := levels.LoadDefaultCampaign(levelsDir)
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}

	world := ecs.NewWorld()
	if _, err := entity.NewGame(world, campaign, start, tuning); err != nil {
		return nil, err
	}
	levelSystem := system.NewLevelSystem(campaign, tuning)

	g := &Game{
		debug:     debug,
		world:     world,
		pipeline:  system.NewPipeline(keyboardInput{}, levelSystem),
		levels:    levelSystem,
		tuning:    tuning,
		palette:   render.NewPalette(tuning.World.Palette),
		levelsDir: levelsDir,
	}

	cues, err := assets.CuePlayers(sound.NewBank(tuning.World.Tones))
	if err != nil {
		log.Printf("audio disabled: %v", err)
	}
	g.cues = cues

	if debug {
		g.startDebugTools()
	}

	g.pauseUI = NewPauseUI(g)
	g.completeUI = NewCompleteUI(g)
	g.feed = system.Snapshot(world)
	return g, nil
}

func (g *Game) startDebugTools() {
	dirs := []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"), g.levelDir()}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("snapshot copy disabled: %v", err)
	} else {
		g.clipboard = true
	}
}

func (g *Game) levelDir() string {
	if g.levelsDir != "" {
		return g.levelsDir
	}
	return "levels"
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.finished {
		g.paused = !g.paused
	}

	if g.debug {
		g.pollReload()
		if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
			g.copySnapshot()
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.finished {
		g.completeUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.finished = false
		}
		return nil
	}

	g.pipeline.Update(g.world)
	for _, evt := range g.world.Events().Drain() {
		g.handleEvent(evt)
	}
	g.feed = system.Snapshot(g.world)
	return nil
}

func (g *Game) handleEvent(evt ecs.Event) {
	g.playCue(string(evt.Type))

	switch evt.Type {
	case ecs.EventAllLevelsComplete:
		g.finished = true
	case ecs.EventPlayerDied:
		if data, ok := evt.Data.(ecs.DiedData); ok && g.debug {
			log.Printf("died on level %d: %s", data.Level, data.Cause)
		}
	case ecs.EventLevelCompleted:
		if data, ok := evt.Data.(ecs.LevelData); ok && g.debug {
			log.Printf("level %d complete, now on %d", data.From, data.To)
		}
	}
}

func (g *Game) playCue(event string) {
	p, ok := g.cues[event]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		log.Printf("cue %s: %v", event, err)
		return
	}
	p.Play()
}

// pollReload applies changed tuning, scripts and level files without
// blocking the tick.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.FileSpec:
		tuning, err := entity.LoadTuning()
		if err != nil {
			log.Printf("reload %s: %v", change.Path, err)
			return
		}
		g.tuning = tuning
		g.levels.SetTuning(tuning)
		g.palette = render.NewPalette(tuning.World.Palette)
		if player, ok := ecs.First(g.world, component.PlayerTagComponent.Kind()); ok {
			entity.ApplyPlayerSpec(g.world, player, tuning.Player)
		}
		if cues, err := assets.CuePlayers(sound.NewBank(tuning.World.Tones)); err == nil {
			g.cues = cues
		}
		if mod, ok := prefabs.ModTime(filepath.Base(change.Path)); ok {
			log.Printf("reloaded %s %s (modified %s)", change.Kind, change.Path, mod.Format("15:04:05"))
		}
		return
	case prefabs.FileLevel:
		campaign, err := levels.LoadDefaultCampaign(g.levelDir())
		if err != nil {
			log.Printf("reload %s: %v", change.Path, err)
			return
		}
		g.levels.SetCampaign(campaign)
	}

	// Levels and ground scripts are baked into entities, so the current
	// level is rebuilt.
	if err := g.levels.Load(g.world, g.feed.Level); err != nil {
		log.Printf("reload %s: %v", change.Path, err)
		return
	}
	log.Printf("reloaded %s %s", change.Kind, change.Path)
}

func (g *Game) copySnapshot() {
	if !g.clipboard {
		return
	}
	data, err := json.MarshalIndent(g.feed, "", "  ")
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("snapshot copied (%d bytes)", len(data))
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(screen, g.feed, g.palette)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d/%d    Deaths: %d", g.feed.Level+1, g.feed.Levels, g.feed.Deaths), 4, 4)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tick %d  FPS: %.2f  grounded: %v  F2 copies snapshot", g.pipeline.Ticks(), ebiten.ActualFPS(), g.feed.Grounded), 4, 20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	} else if g.finished {
		g.completeUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if g.feed.Width > 0 && g.feed.Height > 0 {
		return g.feed.Width, g.feed.Height
	}
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
