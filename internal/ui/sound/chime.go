// Package sound plays short notification sounds.
package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"
)

// Chime is a decoded sound kept in memory.
type Chime struct {
	buffer *beep.Buffer
	volume float64
	logger logrus.FieldLogger

	initOnce sync.Once
	initErr  error
}

// Decode reads a WAV file into a Chime.
func Decode(data []byte, logger logrus.FieldLogger) (*Chime, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return &Chime{
		buffer: buffer,
		logger: logger.WithField("pkg", "sound"),
	}, nil
}

// Duration returns how long the chime plays.
func (chime *Chime) Duration() time.Duration {
	return chime.buffer.Format().SampleRate.D(chime.buffer.Len())
}

// SetVolume sets the volume in beep's base-2 scale; 0 is unchanged.
func (chime *Chime) SetVolume(volume float64) {
	chime.volume = volume
}

// Play starts the chime without blocking. A missing audio device is logged
// once and the chime stays silent afterwards.
func (chime *Chime) Play() {
	chime.initOnce.Do(func() {
		format := chime.buffer.Format()
		chime.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		if chime.initErr != nil {
			chime.logger.WithError(chime.initErr).Warn("audio unavailable")
		}
	})
	if chime.initErr != nil {
		return
	}

	speaker.Play(&effects.Volume{
		Streamer: chime.buffer.Streamer(0, chime.buffer.Len()),
		Base:     2,
		Volume:   chime.volume,
		Silent:   false,
	})
}
