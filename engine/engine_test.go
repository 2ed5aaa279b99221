package engine

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/nova/engine/core"
	"github.com/spaghettifunk/nova/engine/scene"
)

// scriptedSurface drives the render-retry protocol deterministically: a
// configurable number of presents report their contents lost, and a
// configurable number of restored checks report a blank buffer.
type scriptedSurface struct {
	acquires       int
	presents       int
	closedFrames   int
	lostPresents   int
	restoredChecks int
	lost           bool
}

type scriptedFrame struct {
	*image.RGBA
	surface *scriptedSurface
}

func (f scriptedFrame) Close() error {
	f.surface.closedFrames++
	return nil
}

func (s *scriptedSurface) Acquire() (Frame, error) {
	s.acquires++
	return scriptedFrame{RGBA: image.NewRGBA(image.Rect(0, 0, 8, 8)), surface: s}, nil
}

func (s *scriptedSurface) Present() error {
	s.presents++
	s.lost = s.presents <= s.lostPresents
	return nil
}

func (s *scriptedSurface) ContentsRestored() bool {
	if s.restoredChecks > 0 {
		s.restoredChecks--
		return true
	}
	return false
}

func (s *scriptedSurface) ContentsLost() bool { return s.lost }
func (s *scriptedSurface) Width() int         { return 8 }
func (s *scriptedSurface) Height() int        { return 8 }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(&Game{})
	require.NoError(t, err)
	return e
}

func TestNewFillsDefaultConfig(t *testing.T) {
	e := newTestEngine(t)

	require.NotNil(t, e.gameInstance.ApplicationConfig)
	assert.Equal(t, uint32(core.DefaultWindowWidth), e.gameInstance.ApplicationConfig.StartWidth)
	assert.Equal(t, EngineStageUninitialized, e.currentStage)
	assert.NotNil(t, e.Controller())
}

func TestRenderFrameCleanPass(t *testing.T) {
	e := newTestEngine(t)
	ss := &scriptedSurface{}
	e.SetSurface(ss)

	require.NoError(t, e.renderFrame())

	assert.Equal(t, 1, ss.acquires)
	assert.Equal(t, 1, ss.presents)
	assert.Equal(t, 1, ss.closedFrames)
}

func TestRenderFrameRetriesLostPresents(t *testing.T) {
	e := newTestEngine(t)
	ss := &scriptedSurface{lostPresents: 2}
	e.SetSurface(ss)

	require.NoError(t, e.renderFrame())

	// Two lost presents force three full render passes before the third
	// present finally sticks.
	assert.Equal(t, 3, ss.acquires)
	assert.Equal(t, 3, ss.presents)
	assert.Equal(t, 3, ss.closedFrames)
}

func TestRenderFrameRedrawsRestoredBuffer(t *testing.T) {
	e := newTestEngine(t)
	ss := &scriptedSurface{restoredChecks: 1}
	e.SetSurface(ss)

	require.NoError(t, e.renderFrame())

	// A restored buffer is blank, so the pass draws twice but presents
	// only once.
	assert.Equal(t, 2, ss.acquires)
	assert.Equal(t, 1, ss.presents)
	assert.Equal(t, 2, ss.closedFrames)
}

func TestResizeEventSuspendsOnMinimize(t *testing.T) {
	e := newTestEngine(t)

	e.onResized(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: core.SystemEvent{WindowWidth: 0, WindowHeight: 0},
	})
	assert.True(t, e.isSuspended)

	e.onResized(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: core.SystemEvent{WindowWidth: 640, WindowHeight: 480},
	})
	assert.False(t, e.isSuspended)

	w, h := e.screen.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, uint32(640), e.width)
	assert.Equal(t, uint32(480), e.height)
}

func TestQuitEventStopsLoop(t *testing.T) {
	e := newTestEngine(t)
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	require.True(t, e.isRunning)
	e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	assert.False(t, e.isRunning)
}

func TestEscapeKeyFiresQuit(t *testing.T) {
	e := newTestEngine(t)
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)

	e.events.Fire(core.EventContext{
		Type: core.EVENT_CODE_KEY_PRESSED,
		Data: core.KeyEvent{KeyCode: 0x1B},
	})

	assert.False(t, e.isRunning)
}

func TestRequestShutdownStopsLoopAtTickBoundary(t *testing.T) {
	e := newTestEngine(t)
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)

	// The request only queues the quit event; the loop keeps running
	// until it drains the bus at the top of the next tick.
	e.RequestShutdown()
	require.True(t, e.isRunning)

	e.events.DrainDeferred()
	assert.False(t, e.isRunning)
}

func TestShutdownUnloadsScenes(t *testing.T) {
	e := newTestEngine(t)
	s := &unloadCountingScene{BaseScene: scene.NewBaseScene("a")}
	e.controller.AddScene(s)
	e.controller.SetCurrentScene("a")

	require.NoError(t, e.Shutdown())

	assert.Equal(t, 1, s.unloads)
	assert.Equal(t, 0, e.controller.Len())
}

type unloadCountingScene struct {
	scene.BaseScene
	unloads int
}

func (s *unloadCountingScene) Unload() { s.unloads++ }

func TestRunRequiresInitialize(t *testing.T) {
	e := newTestEngine(t)
	assert.Error(t, e.Run())
}
