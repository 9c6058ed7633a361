package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/hopper/ecs/component"
)

type action uint8

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionJump
)

// keyHold turns key presses into held intent. Terminals report presses and
// auto-repeats but no releases, so an action stays held until its last
// press is older than the hold window.
type keyHold struct {
	window time.Duration
	last   [actionJump + 1]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{window: window}
}

func (k *keyHold) press(a action, now time.Time) {
	if a == actionNone {
		return
	}
	k.last[a] = now
}

func (k *keyHold) held(a action, now time.Time) bool {
	t := k.last[a]
	return !t.IsZero() && now.Sub(t) < k.window
}

func (k *keyHold) input(now time.Time) component.Input {
	return component.Input{
		MoveLeft:  k.held(actionLeft, now),
		MoveRight: k.held(actionRight, now),
		Jump:      k.held(actionJump, now),
	}
}

// actionFor maps A/Left, D/Right and W/Up/Space.
func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionJump
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return actionLeft
		case 'd', 'D':
			return actionRight
		case 'w', 'W', ' ':
			return actionJump
		}
	}
	return actionNone
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
