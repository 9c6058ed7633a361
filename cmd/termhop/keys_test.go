package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{name: "a", ev: tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), want: actionLeft},
		{name: "left arrow", ev: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), want: actionLeft},
		{name: "D", ev: tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), want: actionRight},
		{name: "right arrow", ev: tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), want: actionRight},
		{name: "w", ev: tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), want: actionJump},
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), want: actionJump},
		{name: "up arrow", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), want: actionJump},
		{name: "other", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), want: actionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := actionFor(tc.ev); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestKeyHoldExpires(t *testing.T) {
	k := newKeyHold(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	if in := k.input(start); in.MoveLeft || in.MoveRight || in.Jump {
		t.Fatalf("expected no intent before any press, got %+v", in)
	}

	k.press(actionRight, start)
	k.press(actionJump, start)
	in := k.input(start.Add(50 * time.Millisecond))
	if !in.MoveRight || !in.Jump || in.MoveLeft {
		t.Fatalf("expected right and jump held, got %+v", in)
	}

	// An auto-repeat extends the hold.
	k.press(actionRight, start.Add(90*time.Millisecond))
	in = k.input(start.Add(150 * time.Millisecond))
	if !in.MoveRight {
		t.Fatalf("expected repeat to keep right held")
	}
	if in.Jump {
		t.Fatalf("expected jump released after the window")
	}

	if in := k.input(start.Add(time.Second)); in.MoveRight {
		t.Fatalf("expected right released")
	}
}

func TestIsQuit(t *testing.T) {
	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("expected escape to quit")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatalf("expected q to quit")
	}
	if isQuit(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatalf("expected a not to quit")
	}
}
