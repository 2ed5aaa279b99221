// Package audio plays sound effects and music through a single shared
// speaker. Initialize must be called once before any Sound is opened.
package audio

import (
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/spaghettifunk/nova/engine/core"
)

const sampleRate = beep.SampleRate(48000)

var (
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
)

// Initialize opens the speaker and starts the shared mixer. Calling it
// again after a successful initialization is a no-op.
func Initialize() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	mixer = &beep.Mixer{}
	speaker.Play(mixer)
	initialized = true
	return nil
}

// Shutdown silences the mixer. The speaker itself stays open because beep
// does not support closing it, but no sound survives the call.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		return
	}
	speaker.Lock()
	mixer.Clear()
	speaker.Unlock()
	initialized = false
}

// Sound is a single playable audio clip backed by a wav file. All of its
// methods tolerate an unopened or failed sound so a missing asset degrades
// to silence instead of crashing the game.
type Sound struct {
	name string
	path string

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	playing  bool
	muted    bool
	level    float64
}

// NewSound creates a sound for the wav file at the given path. The file is
// not touched until Open is called.
func NewSound(name, path string) *Sound {
	return &Sound{
		name:  name,
		path:  path,
		level: 1.0,
	}
}

func (s *Sound) Name() string {
	return s.name
}

func (s *Sound) Path() string {
	return s.path
}

// Open decodes the wav file and prepares the playback chain. Failures are
// logged and leave the sound in a silent but usable state.
func (s *Sound) Open() error {
	f, err := os.Open(s.path)
	if err != nil {
		core.LogError("failed to open sound %s: %v", s.path, err)
		return err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		core.LogError("failed to decode sound %s: %v", s.path, err)
		f.Close()
		return err
	}
	s.streamer = streamer
	s.format = format
	return nil
}

// Close releases the underlying file. Teardown errors are logged only.
func (s *Sound) Close() {
	if s.streamer == nil {
		return
	}
	s.Stop()
	if err := s.streamer.Close(); err != nil {
		core.LogWarn("failed to close sound %s: %v", s.name, err)
	}
	s.streamer = nil
}

// Start plays the sound once from its current position.
func (s *Sound) Start() {
	s.play(1)
}

// Loop plays the sound from its current position and repeats it forever.
func (s *Sound) Loop() {
	s.play(-1)
}

// LoopN plays the sound count times in a row.
func (s *Sound) LoopN(count int) {
	s.play(count)
}

func (s *Sound) play(count int) {
	mu.Lock()
	defer mu.Unlock()

	if !initialized || s.streamer == nil {
		return
	}
	speaker.Lock()
	playing := s.playing
	speaker.Unlock()
	if playing {
		return
	}

	var streamer beep.Streamer = s.streamer
	if count != 1 {
		streamer = beep.Loop(count, s.streamer)
	}
	resampled := beep.Resample(4, s.format.SampleRate, sampleRate, streamer)
	s.ctrl = &beep.Ctrl{Streamer: resampled}
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   levelToVolume(s.level),
		Silent:   s.muted || s.level == 0,
	}
	// The callback runs on the speaker goroutine, which already holds the
	// speaker lock, so the flag is guarded by that lock rather than mu.
	done := beep.Callback(func() {
		s.playing = false
	})
	mixer.Add(beep.Seq(s.volume, done))
	speaker.Lock()
	s.playing = true
	speaker.Unlock()
}

// Stop halts playback and rewinds to the beginning.
func (s *Sound) Stop() {
	mu.Lock()
	defer mu.Unlock()

	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Streamer = nil
	s.ctrl.Paused = true
	s.playing = false
	speaker.Unlock()
	s.rewind()
}

// Pause suspends playback without losing the current position.
func (s *Sound) Pause() {
	mu.Lock()
	defer mu.Unlock()

	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues a paused sound.
func (s *Sound) Resume() {
	mu.Lock()
	defer mu.Unlock()

	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

// IsPlaying reports whether the sound is currently queued on the mixer and
// not yet finished.
func (s *Sound) IsPlaying() bool {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return s.playing
}

// Reset rewinds the sound to its beginning.
func (s *Sound) Reset() {
	mu.Lock()
	defer mu.Unlock()
	s.rewind()
}

func (s *Sound) rewind() {
	if s.streamer == nil {
		return
	}
	if err := s.streamer.Seek(0); err != nil {
		core.LogWarn("failed to rewind sound %s: %v", s.name, err)
	}
}

// Volume returns the playback level in the range 0 to 1.
func (s *Sound) Volume() float64 {
	mu.Lock()
	defer mu.Unlock()
	return s.level
}

// SetVolume changes the playback level. The level is clamped to the range
// 0 to 1, with 0 silent and 1 full volume.
func (s *Sound) SetVolume(level float64) {
	mu.Lock()
	defer mu.Unlock()

	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	s.level = level
	s.applyVolume()
}

func (s *Sound) Mute() {
	mu.Lock()
	defer mu.Unlock()
	s.muted = true
	s.applyVolume()
}

func (s *Sound) Unmute() {
	mu.Lock()
	defer mu.Unlock()
	s.muted = false
	s.applyVolume()
}

func (s *Sound) IsMuted() bool {
	mu.Lock()
	defer mu.Unlock()
	return s.muted
}

func (s *Sound) applyVolume() {
	if s.volume == nil {
		return
	}
	speaker.Lock()
	s.volume.Volume = levelToVolume(s.level)
	s.volume.Silent = s.muted || s.level == 0
	speaker.Unlock()
}

// levelToVolume maps a linear 0..1 level onto the logarithmic exponent the
// volume effect expects. Level 1 maps to exponent 0 (no change) and the
// curve drops off toward silence as the level approaches 0.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return 0
	}
	return math.Log2(level)
}
