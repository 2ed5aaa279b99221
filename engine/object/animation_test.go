package object

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidFrame() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 2, 2))
}

func threeFrameAnimation(mode Mode) *Animation {
	a := NewAnimation(mode)
	for i := 0; i < 3; i++ {
		a.AddFrame(solidFrame())
	}
	return a
}

func TestSingleModeStopsOnLastFrame(t *testing.T) {
	a := threeFrameAnimation(ModeSingle)

	require.Equal(t, 0, a.CurrentFrameIndex())
	require.False(t, a.IsFinished())

	a.Update(0.5)
	assert.Equal(t, 0, a.CurrentFrameIndex())
	assert.False(t, a.IsFinished())

	a.Update(0.5)
	assert.Equal(t, 1, a.CurrentFrameIndex())
	assert.False(t, a.IsFinished())

	// Third update transitions into the last frame.
	a.Update(0.5)
	assert.Equal(t, 2, a.CurrentFrameIndex())
	assert.True(t, a.IsFinished())

	// Further updates stay put.
	a.Update(0.5)
	assert.Equal(t, 2, a.CurrentFrameIndex())
	assert.True(t, a.IsFinished())
}

func TestLoopModeWrapsAndNeverFinishes(t *testing.T) {
	a := threeFrameAnimation(ModeLoop)

	indices := []int{0}
	for i := 0; i < 4; i++ {
		a.Update(0.5)
		indices = append(indices, a.CurrentFrameIndex())
		assert.False(t, a.IsFinished())
	}

	// Wraps back to frame 0 after the last frame.
	assert.Equal(t, []int{0, 0, 1, 2, 0}, indices)
}

func TestUpdateStepsMultipleFrames(t *testing.T) {
	a := threeFrameAnimation(ModeLoop)

	// A long stall steps through several frames at once.
	a.Update(1.1)
	assert.Equal(t, 2, a.CurrentFrameIndex())
}

func TestPauseResume(t *testing.T) {
	a := threeFrameAnimation(ModeLoop)

	a.Pause()
	assert.True(t, a.IsPaused())
	a.Update(5)
	assert.Equal(t, 0, a.CurrentFrameIndex())

	a.Resume()
	assert.False(t, a.IsPaused())
	a.Update(0.6)
	assert.Equal(t, 1, a.CurrentFrameIndex())
}

func TestReset(t *testing.T) {
	a := threeFrameAnimation(ModeSingle)
	a.Update(2)
	require.True(t, a.IsFinished())

	a.Reset()
	assert.Equal(t, 0, a.CurrentFrameIndex())
	assert.False(t, a.IsFinished())
	assert.False(t, a.IsPaused())
}

func TestDefaultFrameDuration(t *testing.T) {
	a := NewAnimation(ModeLoop)
	assert.Equal(t, DefaultFrameDuration, a.FrameDuration())

	a.SetFrameDuration(0.1)
	assert.Equal(t, 0.1, a.FrameDuration())
}

func TestUnknownModePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewAnimation(Mode(42))
	})
}

func TestNegativeDurationPanics(t *testing.T) {
	a := NewAnimation(ModeLoop)
	assert.Panics(t, func() {
		a.SetFrameDuration(-0.5)
	})
}

func TestFrameAccessors(t *testing.T) {
	a := NewAnimation(ModeLoop)
	assert.Nil(t, a.CurrentFrame())
	assert.Equal(t, 0, a.FrameCount())

	f := image.NewRGBA(image.Rect(0, 0, 2, 2))
	a.AddFrame(f)
	assert.Same(t, f, a.CurrentFrame())
	assert.Equal(t, 1, a.FrameCount())

	// Nil frames are dropped silently.
	a.AddFrame(nil)
	assert.Equal(t, 1, a.FrameCount())
}

func TestAddFrameFileMissingIsIgnored(t *testing.T) {
	a := NewAnimation(ModeLoop)
	a.AddFrameFile("does/not/exist.png")
	assert.Equal(t, 0, a.FrameCount())
}

func TestRemoveFrame(t *testing.T) {
	a := threeFrameAnimation(ModeLoop)
	a.Update(1.1)
	require.Equal(t, 2, a.CurrentFrameIndex())

	// Dropping frames clamps the current index back into range.
	a.RemoveFrame(2)
	assert.Equal(t, 2, a.FrameCount())
	assert.Equal(t, 1, a.CurrentFrameIndex())

	// Out-of-range removals are ignored.
	a.RemoveFrame(-1)
	a.RemoveFrame(5)
	assert.Equal(t, 2, a.FrameCount())

	a.RemoveAllFrames()
	assert.Equal(t, 0, a.FrameCount())
	assert.Equal(t, 0, a.CurrentFrameIndex())
}

func TestUpdateWithNoFrames(t *testing.T) {
	a := NewAnimation(ModeLoop)
	a.Update(10)
	assert.Equal(t, 0, a.CurrentFrameIndex())
}
