package object

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spaghettifunk/nova/engine/core"
)

// Mode selects what happens when an animation steps past its last frame.
type Mode int

const (
	// ModeLoop wraps back to the first frame.
	ModeLoop Mode = iota
	// ModeSingle stops on the last frame.
	ModeSingle
)

// DefaultFrameDuration is how long each frame stays visible unless changed.
const DefaultFrameDuration = 0.5

// Animation steps through a list of frames on a per-frame timer. It is
// driven from the game loop via Update and is not safe for concurrent use.
type Animation struct {
	frames       []image.Image
	mode         Mode
	duration     float64
	timer        float64
	currentFrame int
	paused       bool
	finished     bool
}

// NewAnimation creates an empty animation in the given mode. It panics on
// an unknown mode.
func NewAnimation(mode Mode) *Animation {
	if mode != ModeLoop && mode != ModeSingle {
		panic(fmt.Sprintf("object: unknown animation mode %d", mode))
	}
	return &Animation{
		mode:     mode,
		duration: DefaultFrameDuration,
	}
}

// Update advances the frame timer by delta seconds and steps to the next
// frame every time a full frame duration has elapsed. A paused animation
// ignores updates.
func (a *Animation) Update(delta float64) {
	if a.paused || len(a.frames) == 0 {
		return
	}
	a.timer += delta
	if a.duration <= 0 {
		a.NextFrame()
		a.timer = 0
		return
	}
	for a.timer > a.duration {
		a.timer -= a.duration
		a.NextFrame()
	}
}

// NextFrame steps to the following frame. In single mode the animation
// stays on the last frame and is marked finished; in loop mode it wraps
// around to the first frame.
func (a *Animation) NextFrame() {
	if len(a.frames) == 0 {
		return
	}
	last := len(a.frames) - 1
	switch a.mode {
	case ModeSingle:
		if a.currentFrame >= last {
			a.currentFrame = last
			a.finished = true
			return
		}
		a.currentFrame++
		if a.currentFrame == last {
			a.finished = true
		}
	case ModeLoop:
		a.currentFrame++
		if a.currentFrame > last {
			a.currentFrame = 0
		}
	}
}

// Reset rewinds the animation to its first frame and resumes it.
func (a *Animation) Reset() {
	a.currentFrame = 0
	a.timer = 0
	a.paused = false
	a.finished = false
}

func (a *Animation) Pause() {
	a.paused = true
}

func (a *Animation) Resume() {
	a.paused = false
}

func (a *Animation) IsPaused() bool {
	return a.paused
}

// IsFinished reports whether a single-mode animation has reached its last
// frame. A loop-mode animation never finishes.
func (a *Animation) IsFinished() bool {
	return a.mode == ModeSingle && a.finished
}

// Mode returns the animation's wrap behaviour.
func (a *Animation) Mode() Mode {
	return a.mode
}

// FrameDuration returns how long each frame stays visible, in seconds.
func (a *Animation) FrameDuration() float64 {
	return a.duration
}

// SetFrameDuration changes how long each frame stays visible. It panics on
// a negative duration.
func (a *Animation) SetFrameDuration(seconds float64) {
	if seconds < 0 {
		panic(fmt.Sprintf("object: negative frame duration %f", seconds))
	}
	a.duration = seconds
}

// CurrentFrameIndex returns the index of the frame currently shown.
func (a *Animation) CurrentFrameIndex() int {
	return a.currentFrame
}

// CurrentFrame returns the image currently shown, or nil when the
// animation has no frames.
func (a *Animation) CurrentFrame() image.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.currentFrame]
}

// FrameCount returns how many frames the animation holds.
func (a *Animation) FrameCount() int {
	return len(a.frames)
}

// AddFrame appends a frame to the animation. Nil frames are ignored so a
// failed image load does not poison the sequence.
func (a *Animation) AddFrame(frame image.Image) {
	if frame == nil {
		return
	}
	a.frames = append(a.frames, frame)
}

// AddFrameFile decodes the image at the given path and appends it. A load
// failure is logged and the animation is left unchanged.
func (a *Animation) AddFrameFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		core.LogError("failed to open animation frame %s: %v", path, err)
		return
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		core.LogError("failed to decode animation frame %s: %v", path, err)
		return
	}
	a.AddFrame(img)
}

// RemoveFrame drops the frame at the given index. Out-of-range indices are
// ignored. The current frame index is clamped so it stays valid.
func (a *Animation) RemoveFrame(index int) {
	if index < 0 || index >= len(a.frames) {
		return
	}
	a.frames = append(a.frames[:index], a.frames[index+1:]...)
	if a.currentFrame >= len(a.frames) && a.currentFrame > 0 {
		a.currentFrame = len(a.frames) - 1
	}
}

// RemoveAllFrames drops every frame and rewinds the animation.
func (a *Animation) RemoveAllFrames() {
	a.frames = nil
	a.Reset()
}
