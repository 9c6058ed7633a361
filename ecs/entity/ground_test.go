package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/hopper/levels"
)

func TestBuildGroundProfile(t *testing.T) {
	cases := []struct {
		name   string
		ground levels.Ground
		x      float64
		want   float64
	}{
		{"flat", levels.Ground{Kind: levels.GroundFlat, Y: 300}, 123, 300},
		{"slope_mid", levels.Ground{Kind: levels.GroundSlope, X0: 0, Y0: 200, X1: 800, Y1: 360}, 400, 280},
		{"slope_before", levels.Ground{Kind: levels.GroundSlope, X0: 0, Y0: 200, X1: 800, Y1: 360}, -50, 200},
		{"slope_after", levels.Ground{Kind: levels.GroundSlope, X0: 0, Y0: 200, X1: 800, Y1: 360}, 900, 360},
		{"script_first_tread", levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, 100, 200},
		{"script_second_tread", levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, 200, 240},
		{"script_bottom", levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, 780, 360},
		{"script_left_of_world", levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, -30, 200},
		{"script_right_of_world", levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, 2000, 360},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := BuildGroundProfile(tc.ground, 800, 4)
			if err != nil {
				t.Fatalf("BuildGroundProfile: %v", err)
			}
			if got := profile(tc.x); got != tc.want {
				t.Fatalf("profile(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestBuildGroundProfileErrors(t *testing.T) {
	if _, err := BuildGroundProfile(levels.Ground{Kind: "bumpy"}, 800, 4); !errors.Is(err, levels.ErrBadGround) {
		t.Fatalf("unknown kind error = %v", err)
	}
	if _, err := BuildGroundProfile(levels.Ground{Kind: levels.GroundScript, Script: "missing.tengo"}, 800, 4); err == nil {
		t.Fatalf("missing script should fail")
	}
	if _, err := BuildGroundProfile(levels.Ground{Kind: levels.GroundScript, Script: "stairs.tengo"}, 800, 0); err == nil {
		t.Fatalf("zero step should fail")
	}
}
