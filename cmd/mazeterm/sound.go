package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"mazerunner/internal/gamemode"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays sine blips through the system speaker. A nil *Sound is silent.
type Sound struct{}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{}, nil
}

func (s *Sound) Play(ev gamemode.Events) {
	if s == nil {
		return
	}
	switch {
	case ev.Has(gamemode.EventWon):
		blip(523, 400*time.Millisecond)
	case ev.Has(gamemode.EventCaught):
		blip(220, 150*time.Millisecond)
	}
}

func (s *Sound) Close() {
	if s != nil {
		speaker.Close()
	}
}

func blip(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.WithError(err).Warn("sine tone")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
