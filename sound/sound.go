// Package sound synthesizes the short tones played for game events. Both
// front ends share it: the terminal one streams the cues through the beep
// speaker, the ebiten one encodes them to WAV for its audio context.
package sound

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/milk9111/hopper/prefabs"
)

const SampleRate = beep.SampleRate(44100)

var ErrNoCue = errors.New("sound: no cue for event")

// Bank maps event names to tones.
type Bank struct {
	tones map[string]prefabs.ToneSpec
}

func NewBank(tones []prefabs.ToneSpec) *Bank {
	b := &Bank{tones: make(map[string]prefabs.ToneSpec, len(tones))}
	for _, t := range tones {
		if t.Event == "" || t.Frequency <= 0 || t.Millis <= 0 {
			continue
		}
		b.tones[t.Event] = t
	}
	return b
}

// Has reports whether a cue is configured for event.
func (b *Bank) Has(event string) bool {
	if b == nil {
		return false
	}
	_, ok := b.tones[event]
	return ok
}

// Events lists the configured event names.
func (b *Bank) Events() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.tones))
	for name := range b.tones {
		out = append(out, name)
	}
	return out
}

// Streamer returns a finite stream playing the cue for event.
func (b *Bank) Streamer(event string, rate beep.SampleRate) (beep.Streamer, error) {
	if b == nil {
		return nil, ErrNoCue
	}
	tone, ok := b.tones[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCue, event)
	}
	return Tone(tone, rate)
}

// Tone builds a sine tone of the cue's frequency, length and volume with a
// short linear fade out to avoid a click at the end.
func Tone(spec prefabs.ToneSpec, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, spec.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sound: tone %s: %w", spec.Event, err)
	}
	total := rate.N(time.Duration(spec.Millis) * time.Millisecond)
	faded := &fadeOut{streamer: beep.Take(total, sine), total: total, fade: total / 4}
	return newVolume(faded, spec.Volume), nil
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
	fade     int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	start := f.total - f.fade
	for i := 0; i < n; i++ {
		if f.fade > 0 && f.pos >= start {
			g := float64(f.total-f.pos) / float64(f.fade)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// EncodeWAV renders a finite stream to 16-bit stereo WAV bytes.
func EncodeWAV(s beep.Streamer, rate beep.SampleRate) ([]byte, error) {
	buf := &memFile{}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(buf, s, format); err != nil {
		return nil, fmt.Errorf("sound: encode wav: %w", err)
	}
	return buf.data, nil
}

// memFile is an in-memory io.WriteSeeker; the WAV encoder seeks back to
// patch the header sizes.
type memFile struct {
	data []byte
	pos  int
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + len(p)
	if end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	copy(m.data[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(m.pos) + offset
	case io.SeekEnd:
		next = int64(len(m.data)) + offset
	default:
		return 0, fmt.Errorf("sound: bad whence %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("sound: negative seek")
	}
	m.pos = int(next)
	return next, nil
}
