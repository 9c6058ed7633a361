package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func validLevel() Level {
	return Level{
		Name:      "test",
		Width:     800,
		Height:    450,
		Platforms: []Rect{{X: 50, Y: 360, Width: 120, Height: 10}},
		Finish:    Rect{X: 550, Y: 240, Width: 50, Height: 10},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Level)
		want   error
	}{
		{"valid", func(*Level) {}, nil},
		{"no_platforms_is_valid", func(l *Level) { l.Platforms = nil }, nil},
		{"zero_width", func(l *Level) { l.Width = 0 }, ErrBadSize},
		{"no_finish", func(l *Level) { l.Finish = Rect{} }, ErrNoFinish},
		{"bad_platform", func(l *Level) { l.Platforms[0].Height = 0 }, ErrBadRect},
		{"inverted_bounds", func(l *Level) {
			l.MovingPlatforms = []MovingPlatform{{Rect: Rect{X: 10, Y: 10, Width: 10, Height: 10}, MinX: 300, MaxX: 100, Speed: 1}}
		}, ErrBadBounds},
		{"negative_speed", func(l *Level) {
			l.MovingPlatforms = []MovingPlatform{{Rect: Rect{X: 10, Y: 10, Width: 10, Height: 10}, MinX: 0, MaxX: 100, Speed: -1}}
		}, ErrBadSpeed},
		{"opening_outside_wall", func(l *Level) {
			l.Walls = []Wall{{Rect: Rect{X: 100, Y: 100, Width: 20, Height: 100}, Opening: &Rect{X: 100, Y: 180, Width: 20, Height: 40}}}
		}, ErrBadOpening},
		{"circle_without_radius", func(l *Level) {
			l.Hazards = []Hazard{{Shape: HazardShapeCircle, X: 1, Y: 1}}
		}, ErrBadHazard},
		{"unknown_hazard_shape", func(l *Level) {
			l.Hazards = []Hazard{{Shape: "hexagon", Width: 1, Height: 1}}
		}, ErrBadHazard},
		{"unknown_ground", func(l *Level) {
			l.Rollers = []Roller{{Radius: 5, Ground: Ground{Kind: "bumpy"}}}
		}, ErrBadGround},
		{"script_ground_without_name", func(l *Level) {
			l.Rollers = []Roller{{Radius: 5, Ground: Ground{Kind: GroundScript}}}
		}, ErrBadGround},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lvl := validLevel()
			tc.mutate(&lvl)
			err := lvl.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestResolveSpawn(t *testing.T) {
	offset := Point{X: 30, Y: -60}
	fallback := DefaultSpawn

	lvl := validLevel()
	p, src := lvl.ResolveSpawn(offset, fallback)
	if src != SpawnFromPlatform || p.X != 80 || p.Y != 300 {
		t.Fatalf("platform spawn = %+v (%s)", p, src)
	}

	lvl.Spawn = &Point{X: 12, Y: 34}
	p, src = lvl.ResolveSpawn(offset, fallback)
	if src != SpawnExplicit || p.X != 12 || p.Y != 34 {
		t.Fatalf("explicit spawn = %+v (%s)", p, src)
	}

	empty := validLevel()
	empty.Platforms = nil
	p, src = empty.ResolveSpawn(offset, fallback)
	if src != SpawnFallback || p != DefaultSpawn {
		t.Fatalf("fallback spawn = %+v (%s)", p, src)
	}

	var missing *Level
	if _, src := missing.ResolveSpawn(offset, fallback); src != SpawnFallback {
		t.Fatalf("nil level spawn source = %s", src)
	}
}

func TestLoadEmbeddedCampaign(t *testing.T) {
	c, err := LoadCampaign(LevelsFS)
	if err != nil {
		t.Fatalf("LoadCampaign: %v", err)
	}
	if c.Len() != 10 {
		t.Fatalf("levels = %d, want 10", c.Len())
	}
	first := c.At(0)
	if first.Name != "Simple Steps" || len(first.Platforms) != 3 {
		t.Fatalf("first level = %+v", first)
	}
	ferry := c.At(3)
	if len(ferry.MovingPlatforms) != 1 || ferry.MovingPlatforms[0].MaxX != 400 {
		t.Fatalf("ferry moving platforms = %+v", ferry.MovingPlatforms)
	}
	if c.At(-1) != nil || c.At(c.Len()) != nil {
		t.Fatalf("At out of range should be nil")
	}
	for i, lvl := range c.Levels {
		if lvl.LavaY != lvl.Height-40 {
			t.Fatalf("level %d lava_y = %v", i, lvl.LavaY)
		}
	}
}

func TestLoadCampaignErrors(t *testing.T) {
	cases := []struct {
		name string
		fs   fstest.MapFS
		want error
	}{
		{
			name: "empty",
			fs:   fstest.MapFS{CampaignFile: {Data: []byte(`{"levels":[]}`)}},
			want: ErrEmptyCampaign,
		},
		{
			name: "invalid_level",
			fs: fstest.MapFS{
				CampaignFile: {Data: []byte(`{"levels":["a.json"]}`)},
				"a.json":     {Data: []byte(`{"name":"a","width":800,"height":450}`)},
			},
			want: ErrNoFinish,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCampaign(tc.fs)
			if !errors.Is(err, tc.want) {
				t.Fatalf("LoadCampaign = %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := LoadCampaign(fstest.MapFS{}); err == nil {
		t.Fatalf("expected error for missing campaign file")
	}
}
