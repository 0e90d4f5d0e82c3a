package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"mazerunner/internal/gamemode"
)

const SampleRate = 44100

// --- Audio System ---

// squareWave renders a 16-bit stereo square tone at freq Hz that fades out
// linearly over its length.
func squareWave(freq float64, seconds float64) []byte {
	samples := int(seconds * SampleRate)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		val := 0.1
		phase := int(float64(i) * freq * 2 / SampleRate)
		if phase%2 == 1 {
			val = -0.1
		}
		val *= 1 - float64(i)/float64(samples)

		v := int16(val * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

// Sound plays a short blip for being caught and another for winning. A nil
// *Sound is silent.
type Sound struct {
	ctx    *audio.Context
	caught *audio.Player
	won    *audio.Player
}

func NewSound() *Sound {
	ctx := audio.NewContext(SampleRate)
	s := &Sound{
		ctx:    ctx,
		caught: ctx.NewPlayerFromBytes(squareWave(220, 0.15)),
		won:    ctx.NewPlayerFromBytes(squareWave(523, 0.4)),
	}
	s.caught.SetVolume(0.5)
	s.won.SetVolume(0.5)
	return s
}

func (s *Sound) Play(ev gamemode.Events) {
	if s == nil {
		return
	}
	switch {
	case ev.Has(gamemode.EventWon):
		replay(s.won)
	case ev.Has(gamemode.EventCaught):
		replay(s.caught)
	}
}

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		log.WithError(err).Warn("rewind sound")
		return
	}
	p.Play()
}
