package core

import "time"

// Time tracks the game clock and frame-rate statistics for the running game.
// One instance is created by the engine and handed by reference to every
// subsystem that needs timing data; there is no hidden global.
//
// Time must be initialized before Calculate will advance anything, so that
// the very first frame delta is anchored to the start of the game loop rather
// than process start. Queries on an uninitialized Time report -1.
type Time struct {
	totalTime float64
	frameTime float64

	fpsTimer    float64
	frameCount  int
	frameRate   int
	totalFrames int64

	lastFrame   time.Time
	initialized bool

	// now is swappable so that tests can feed synthetic ticks.
	now func() time.Time
}

func NewTime() *Time {
	return &Time{now: time.Now}
}

// Init resets all counters and anchors the frame timer to the current
// monotonic clock reading. Calling Init again restarts the clock.
func (t *Time) Init() {
	t.lastFrame = t.now()
	t.totalTime = 0
	t.frameTime = 0
	t.totalFrames = 0
	t.frameCount = 0
	t.frameRate = 0
	t.fpsTimer = 0
	t.initialized = true
}

func (t *Time) IsInitialized() bool {
	return t.initialized
}

// Calculate advances the clock by the time elapsed since the previous call
// and updates the frame counters. It must be called once per iteration of the
// game loop, before the frame's delta is consumed. It does nothing until Init
// has been called.
func (t *Time) Calculate() {
	if !t.initialized {
		return
	}

	current := t.now()
	elapsed := current.Sub(t.lastFrame).Seconds()
	t.lastFrame = current
	t.frameTime = elapsed

	t.totalTime += elapsed
	t.fpsTimer += elapsed

	t.totalFrames++
	t.frameCount++
	if t.fpsTimer >= 1 {
		// A second has elapsed; commit the frame rate. The window timer
		// keeps its overshoot so repeated windows do not drift.
		t.fpsTimer -= 1
		t.frameRate = t.frameCount
		t.frameCount = 0
	}
}

// FrameTime returns the elapsed seconds between the two most recent frames,
// or -1 if the Time has not been initialized.
func (t *Time) FrameTime() float64 {
	if !t.initialized {
		return -1
	}
	return t.frameTime
}

// TotalTime returns the elapsed seconds since Init, or -1 if the Time has
// not been initialized.
func (t *Time) TotalTime() float64 {
	if !t.initialized {
		return -1
	}
	return t.totalTime
}

// FrameRate returns the number of frames completed during the most recent
// full second, or -1 if the Time has not been initialized.
func (t *Time) FrameRate() int {
	if !t.initialized {
		return -1
	}
	return t.frameRate
}

// TotalFrames returns the number of frames completed since Init, or -1 if
// the Time has not been initialized.
func (t *Time) TotalFrames() int64 {
	if !t.initialized {
		return -1
	}
	return t.totalFrames
}
