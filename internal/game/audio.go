package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFreq       = 880
	chimeLength     = 90 * time.Millisecond
)

// chime plays a short sine blip once per full revolution. The speaker is
// initialized lazily on the first play so a muted run never touches the
// audio device.
type chime struct {
	initDone bool
}

func (c *chime) play() error {
	if !c.initDone {
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20)); err != nil {
			return err
		}
		c.initDone = true
	}

	tone, err := generators.SinTone(chimeSampleRate, chimeFreq)
	if err != nil {
		return err
	}
	speaker.Play(beep.Take(chimeSampleRate.N(chimeLength), tone))
	return nil
}
