package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	chirpLow  = 440.0 // Hz, for an order to a neighbouring star
	chirpHigh = 880.0 // Hz, for an order across the whole disk
	toneLen   = 70 * time.Millisecond
)

// Cue plays short acknowledgement tones. Until Init succeeds every method is
// a no-op, so hosts without audio run silently.
type Cue struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
}

func NewCue() *Cue {
	return &Cue{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (c *Cue) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

// Order plays a two-tone chirp whose second tone rises with the order's
// distance in world units.
func (c *Cue) Order(distance float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return nil
	}
	s, err := Chirp(sampleRate, distance)
	if err != nil {
		return err
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// Close silences anything still playing.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Clear()
	c.ready = false
}

// Chirp builds the finite order tone.
func Chirp(sr beep.SampleRate, distance float64) (beep.Streamer, error) {
	first, err := generators.SineTone(sr, chirpLow)
	if err != nil {
		return nil, fmt.Errorf("chirp tone: %w", err)
	}
	second, err := generators.SineTone(sr, ChirpPitch(distance))
	if err != nil {
		return nil, fmt.Errorf("chirp tone: %w", err)
	}
	n := sr.N(toneLen)
	return &effects.Volume{
		Streamer: beep.Seq(beep.Take(n, first), beep.Take(n, second)),
		Base:     2,
		Volume:   -2,
	}, nil
}

// ChirpPitch maps a distance in [0, 2] (the unit disk's diameter) onto
// [chirpLow, chirpHigh].
func ChirpPitch(distance float64) float64 {
	f := math.Max(0, math.Min(distance/2, 1))
	return chirpLow + f*(chirpHigh-chirpLow)
}
