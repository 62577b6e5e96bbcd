// Package sound plays the collision tone through the system speaker.
package sound

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate  = beep.SampleRate(44100)
	HitFreq     = 220.0
	HitDuration = 80 * time.Millisecond
)

// Player plays short tones. The zero value and a Player whose speaker failed
// to open are both silent.
type Player struct {
	ready  bool
	logger *log.Logger

	// A collision that lasts many ticks should not stack many tones.
	playing atomic.Bool
}

// New opens the speaker. Audio is optional, so a failure is logged and a
// silent player is returned along with the error.
func New(logger *log.Logger) (*Player, error) {
	p := &Player{logger: logger}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable", "err", err)
		}
		return p, fmt.Errorf("opening speaker: %w", err)
	}
	p.ready = true
	return p, nil
}

// Hit plays the collision tone unless one is already playing.
func (p *Player) Hit() {
	if p == nil || !p.ready {
		return
	}
	if !p.playing.CompareAndSwap(false, true) {
		return
	}

	sine, err := generators.SineTone(SampleRate, HitFreq)
	if err != nil {
		p.playing.Store(false)
		if p.logger != nil {
			p.logger.Error("building tone", "err", err)
		}
		return
	}

	tone := beep.Take(SampleRate.N(HitDuration), sine)
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		p.playing.Store(false)
	})))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}
