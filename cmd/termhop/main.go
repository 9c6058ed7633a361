// Command termhop plays the campaign in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/levels"
)

func main() {
	level := flag.Int("level", 0, "index of the level to start on (wraps)")
	levelsDir := flag.String("levels", "", "directory holding campaign.json; the embedded levels are used when empty")
	tick := flag.Duration("tick", time.Second/60, "simulation tick")
	hold := flag.Duration("hold", 180*time.Millisecond, "how long a key press counts as held")
	flag.Parse()

	tuning, err := entity.LoadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}
	campaign, err := levels.LoadDefaultCampaign(*levelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(screen, campaign, *level, tuning, *tick, *hold)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
