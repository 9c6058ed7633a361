package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/levels"
)

// LoadLevelToWorld builds the entities of one level. Every entity it creates
// is tagged with LevelEntity so ClearLevel can tear the level down again.
// On error the world is left as it was.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, index int, tuning Tuning) error {
	grounds, err := prepareLevel(lvl, index, tuning)
	if err != nil {
		return err
	}
	return buildLevel(world, lvl, index, tuning, grounds)
}

// prepareLevel resolves the parts of a level build that can fail on input
// (roller ground scripts) without touching the world.
func prepareLevel(lvl *levels.Level, index int, tuning Tuning) ([]component.GroundProfile, error) {
	if lvl == nil {
		return nil, fmt.Errorf("level %d: nil level", index)
	}
	grounds := make([]component.GroundProfile, len(lvl.Rollers))
	for i, r := range lvl.Rollers {
		ground, err := BuildGroundProfile(r.Ground, lvl.Width, tuning.World.GroundSampleStep)
		if err != nil {
			return nil, fmt.Errorf("level %d: roller %d: %w", index, i, err)
		}
		grounds[i] = ground
	}
	return grounds, nil
}

// buildLevel creates the level entities. A failed build destroys what it
// created.
func buildLevel(world *ecs.World, lvl *levels.Level, index int, tuning Tuning, grounds []component.GroundProfile) (err error) {
	var created []ecs.Entity
	defer func() {
		if err != nil {
			for _, e := range created {
				ecs.DestroyEntity(world, e)
			}
		}
	}()
	tag := component.LevelEntity{Index: index}
	newLevelEntity := func() (ecs.Entity, error) {
		e := ecs.CreateEntity(world)
		created = append(created, e)
		t := tag
		if err := ecs.Add(world, e, component.LevelEntityComponent.Kind(), &t); err != nil {
			return 0, err
		}
		return e, nil
	}

	boundsEntity, err := newLevelEntity()
	if err != nil {
		return fmt.Errorf("level %d: %w", index, err)
	}
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:         lvl.Width,
		Height:        lvl.Height,
		FallTolerance: tuning.World.FallTolerance,
	}); err != nil {
		return fmt.Errorf("level %d: add bounds: %w", index, err)
	}
	spawn, src := lvl.ResolveSpawn(tuning.spawnOffset(), tuning.defaultSpawn())
	if err := ecs.Add(world, boundsEntity, component.SpawnComponent.Kind(), &component.Spawn{
		X:        spawn.X,
		Y:        spawn.Y,
		Fallback: src == levels.SpawnFallback,
	}); err != nil {
		return fmt.Errorf("level %d: add spawn: %w", index, err)
	}

	order := 0
	for _, p := range lvl.Platforms {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: platform: %w", index, err)
		}
		if err := ecs.Add(world, e, component.SolidComponent.Kind(), &component.Solid{
			Kind:  component.SolidStatic,
			Order: order,
			Rect:  rectBB(p),
		}); err != nil {
			return fmt.Errorf("level %d: add platform: %w", index, err)
		}
		order++
	}

	for _, mp := range lvl.MovingPlatforms {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: moving platform: %w", index, err)
		}
		rect := rectBB(mp.Rect)
		if mp.Bob != nil {
			bob := &component.Bob{
				BaseY:        mp.Y,
				Amplitude:    mp.Bob.Amplitude,
				AngularSpeed: mp.Bob.AngularSpeed,
				Angle:        mp.Bob.Phase,
			}
			rect = common.Translate(rect, 0, bob.Amplitude*math.Sin(bob.Angle))
			if err := ecs.Add(world, e, component.BobComponent.Kind(), bob); err != nil {
				return fmt.Errorf("level %d: add bob: %w", index, err)
			}
		}
		dir := 1
		if mp.Direction < 0 {
			dir = -1
		}
		if err := ecs.Add(world, e, component.OscillatorComponent.Kind(), &component.Oscillator{
			MinX:  mp.MinX,
			MaxX:  mp.MaxX,
			Speed: mp.Speed,
			Dir:   dir,
		}); err != nil {
			return fmt.Errorf("level %d: add oscillator: %w", index, err)
		}
		if err := ecs.Add(world, e, component.SolidComponent.Kind(), &component.Solid{
			Kind:  component.SolidMoving,
			Order: order,
			Rect:  rect,
		}); err != nil {
			return fmt.Errorf("level %d: add moving platform: %w", index, err)
		}
		order++
	}

	for _, wall := range lvl.Walls {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: wall: %w", index, err)
		}
		solid := &component.Solid{
			Kind:  component.SolidWall,
			Order: order,
			Rect:  rectBB(wall.Rect),
		}
		if wall.Opening != nil {
			solid.Opening = rectBB(*wall.Opening)
			solid.HasOpening = true
		}
		if err := ecs.Add(world, e, component.SolidComponent.Kind(), solid); err != nil {
			return fmt.Errorf("level %d: add wall: %w", index, err)
		}
		order++
	}

	for _, h := range lvl.Hazards {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: hazard: %w", index, err)
		}
		hazard := &component.Hazard{Shape: component.HazardRect, Rect: common.RectBB(h.X, h.Y, h.Width, h.Height)}
		if h.Shape == levels.HazardShapeCircle {
			hazard = &component.Hazard{
				Shape:  component.HazardCircle,
				Center: cp.Vector{X: h.X, Y: h.Y},
				Radius: h.Radius,
			}
		}
		if err := ecs.Add(world, e, component.HazardComponent.Kind(), hazard); err != nil {
			return fmt.Errorf("level %d: add hazard: %w", index, err)
		}
	}

	if lvl.LavaY > 0 {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: lava: %w", index, err)
		}
		if err := ecs.Add(world, e, component.HazardComponent.Kind(), &component.Hazard{
			Shape: component.HazardRect,
			Rect:  cp.BB{L: math.Inf(-1), B: lvl.LavaY, R: math.Inf(1), T: math.Inf(1)},
			Lava:  true,
		}); err != nil {
			return fmt.Errorf("level %d: add lava: %w", index, err)
		}
	}

	for i, r := range lvl.Rollers {
		e, err := newLevelEntity()
		if err != nil {
			return fmt.Errorf("level %d: roller: %w", index, err)
		}
		origin := cp.Vector{X: r.X, Y: r.Y}
		if err := ecs.Add(world, e, component.HazardComponent.Kind(), &component.Hazard{
			Shape:  component.HazardCircle,
			Center: origin,
			Radius: r.Radius,
		}); err != nil {
			return fmt.Errorf("level %d: add roller hazard: %w", index, err)
		}
		if err := ecs.Add(world, e, component.RollerComponent.Kind(), &component.Roller{
			Vel:     cp.Vector{X: r.Drift},
			Gravity: r.Gravity,
			Drift:   r.Drift,
			Origin:  origin,
			Ground:  grounds[i],
		}); err != nil {
			return fmt.Errorf("level %d: add roller: %w", index, err)
		}
	}

	finishEntity, err := newLevelEntity()
	if err != nil {
		return fmt.Errorf("level %d: finish: %w", index, err)
	}
	if err := ecs.Add(world, finishEntity, component.FinishComponent.Kind(), &component.Finish{Rect: rectBB(lvl.Finish)}); err != nil {
		return fmt.Errorf("level %d: add finish: %w", index, err)
	}

	return nil
}

// ClearLevel destroys every level-owned entity and returns how many were
// removed.
func ClearLevel(world *ecs.World) int {
	var doomed []ecs.Entity
	ecs.ForEach(world, component.LevelEntityComponent.Kind(), func(e ecs.Entity, _ *component.LevelEntity) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		ecs.DestroyEntity(world, e)
	}
	return len(doomed)
}

// SpawnPoint returns the current level's spawn.
func SpawnPoint(world *ecs.World) (component.Spawn, bool) {
	e, ok := ecs.First(world, component.SpawnComponent.Kind())
	if !ok {
		return component.Spawn{}, false
	}
	s, ok := ecs.Get(world, e, component.SpawnComponent.Kind())
	if !ok {
		return component.Spawn{}, false
	}
	return *s, true
}

func rectBB(r levels.Rect) cp.BB {
	return common.RectBB(r.X, r.Y, r.Width, r.Height)
}
