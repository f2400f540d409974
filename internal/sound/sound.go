// Package sound plays short cues when the snake eats or crashes.
package sound

import (
	"io"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

var (
	eatCue   = []note{{660, 40 * time.Millisecond}, {880, 60 * time.Millisecond}}
	crashCue = []note{{220, 120 * time.Millisecond}, {110, 240 * time.Millisecond}}
)

// Player implements loop.Listener. A Player whose speaker failed to start
// stays silent.
type Player struct {
	enabled bool
	logger  *log.Logger
	play    func(beep.Streamer)
}

// New starts the speaker. On failure it returns a silent Player together with
// the error so callers can log it and carry on.
func New(logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	p := &Player{logger: logger, play: func(s beep.Streamer) { speaker.Play(s) }}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, errors.Wrap(err, "init speaker")
	}
	p.enabled = true
	return p, nil
}

// Silent returns a Player that never makes a sound.
func Silent() *Player {
	return &Player{logger: log.New(io.Discard, "", 0)}
}

func (p *Player) Ate(score int) {
	p.cue(eatCue)
}

func (p *Player) Crashed(score int) {
	p.cue(crashCue)
}

func (p *Player) cue(notes []note) {
	if !p.enabled {
		return
	}
	s, err := sequence(notes)
	if err != nil {
		p.logger.Printf("sound: %v", err)
		return
	}
	p.play(s)
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// sequence renders notes back to back as sine tones.
func sequence(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "tone %.0fHz", n.freq)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return beep.Seq(parts...), nil
}
