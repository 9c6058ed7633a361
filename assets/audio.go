package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/hopper/sound"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide ebiten audio context. Ebiten allows
// only one, so it is created on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(int(sound.SampleRate))
	})
	return audioContext
}

// NewWAVPlayer decodes WAV bytes into a player on the shared context.
func NewWAVPlayer(b []byte) (*audio.Player, error) {
	ctx := AudioContext()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	return ctx.NewPlayer(stream)
}

// CuePlayers renders every cue of the bank and wraps each in a player, keyed
// by event name.
func CuePlayers(bank *sound.Bank) (map[string]*audio.Player, error) {
	players := make(map[string]*audio.Player)
	for _, event := range bank.Events() {
		s, err := bank.Streamer(event, sound.SampleRate)
		if err != nil {
			return nil, err
		}
		data, err := sound.EncodeWAV(s, sound.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", event, err)
		}
		p, err := NewWAVPlayer(data)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", event, err)
		}
		players[event] = p
	}
	return players, nil
}
