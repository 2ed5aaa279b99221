// Package engine runs the game loop: it pumps platform events, steps the
// active scene and presents frames on a double-buffered surface.
package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spaghettifunk/nova/engine/assets"
	"github.com/spaghettifunk/nova/engine/audio"
	"github.com/spaghettifunk/nova/engine/core"
	"github.com/spaghettifunk/nova/engine/input"
	"github.com/spaghettifunk/nova/engine/platform"
	"github.com/spaghettifunk/nova/engine/scene"
)

// Surface is the engine's render target. See the platform package for the
// software implementation.
type Surface = platform.Surface

// Frame is a drawing buffer for one render pass.
type Frame = platform.Frame

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool

	platform     *platform.Platform
	assetManager *assets.AssetManager
	keyboard     *input.Keyboard
	screen       *core.Screen
	events       *core.EventBus
	controller   *scene.Controller
	time         *core.Time
	surface      Surface

	width  uint32
	height uint32
	sleep  time.Duration
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	cfg := g.ApplicationConfig

	keyboard := input.NewKeyboard()
	screen := core.NewScreen()
	events := core.NewEventBus()

	p, err := platform.New(keyboard, screen, events)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	controller := scene.NewController()
	controller.SetKeyboard(keyboard)
	controller.SetScreen(screen)

	screen.SetSize(int(cfg.StartWidth), int(cfg.StartHeight))

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     p,
		assetManager: am,
		keyboard:     keyboard,
		screen:       screen,
		events:       events,
		controller:   controller,
		time:         core.NewTime(),
		surface:      platform.NewSoftwareSurface(int(cfg.StartWidth), int(cfg.StartHeight), nil),
		isRunning:    true,
		isSuspended:  false,
		width:        cfg.StartWidth,
		height:       cfg.StartHeight,
		sleep:        time.Duration(cfg.SleepMillis) * time.Millisecond,
	}, nil
}

// Controller exposes the scene controller, mainly so tests and tools can
// drive scenes without going through the game hooks.
func (e *Engine) Controller() *scene.Controller {
	return e.controller
}

// SetSurface swaps the render target. Must be called before Run.
func (e *Engine) SetSurface(s Surface) {
	e.surface = s
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	cfg := e.gameInstance.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.events.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.events.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}

	if err := e.assetManager.Initialize(cfg.AssetsDir); err != nil {
		return err
	}

	// A machine without an audio device still runs the game, just silent.
	if err := audio.Initialize(); err != nil {
		core.LogWarn("audio unavailable: %v", err)
	}

	if e.gameInstance.FnOnStart != nil {
		if err := e.gameInstance.FnOnStart(e.controller); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before Run")
	}
	e.currentStage = EngineStageRunning
	e.time.Init()

	for e.isRunning {
		e.platform.PumpMessages()
		e.events.DrainDeferred()

		e.time.Calculate()
		delta := e.time.FrameTime()
		if delta < 0 {
			delta = 0
		}

		if !e.isSuspended {
			e.keyboard.Process()
			e.controller.ProcessInputs(delta)
			e.controller.Update(delta)

			if err := e.renderFrame(); err != nil {
				core.LogError("render failed, shutting down: %v", err)
				e.isRunning = false
				break
			}
		}

		if e.sleep > 0 {
			e.platform.Sleep(e.sleep)
		}
	}

	return e.Shutdown()
}

// renderFrame draws the current scene, repeating the pass as long as the
// surface reports its buffers restored or lost. A restored buffer is blank
// and must be redrawn before presenting; a lost buffer drops the whole
// present, so the pass restarts.
func (e *Engine) renderFrame() error {
	for {
		for {
			if err := e.renderOnce(); err != nil {
				return err
			}
			if !e.surface.ContentsRestored() {
				break
			}
		}
		if err := e.surface.Present(); err != nil {
			return err
		}
		if !e.surface.ContentsLost() {
			break
		}
	}
	return nil
}

func (e *Engine) renderOnce() error {
	frame, err := e.surface.Acquire()
	if err != nil {
		return err
	}
	defer frame.Close()

	// Reset the buffer to fully transparent before the scene draws.
	draw.Draw(frame, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)

	e.controller.Render(frame)

	if e.gameInstance.ApplicationConfig.ShowFPS {
		e.drawFPS(frame)
	}
	return nil
}

func (e *Engine) drawFPS(frame draw.Image) {
	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(10, 20),
	}
	d.DrawString(fmt.Sprintf("FPS: %d", e.time.FrameRate()))
}

// RequestShutdown asks the running engine to stop. Safe to call from any
// goroutine: the quit event is queued on the event bus and the loop picks
// it up at the next tick boundary, so the regular Shutdown ordering runs on
// the loop goroutine.
func (e *Engine) RequestShutdown() {
	e.events.Defer(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnOnShutDown != nil {
		if err := e.gameInstance.FnOnShutDown(); err != nil {
			core.LogError(err.Error())
		}
	}
	e.controller.OnShutDown()
	e.controller.RemoveAllScenes()
	e.assetManager.Shutdown()
	audio.Shutdown()
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && input.KeyCode(ke.KeyCode) == input.KEY_ESCAPE {
		// Technically firing an event to itself, but there may be other
		// listeners.
		e.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if uint32(width) == e.width && uint32(height) == e.height {
		return false
	}
	e.width = uint32(width)
	e.height = uint32(height)

	core.LogDebug("window resize: %d, %d", width, height)

	if width == 0 || height == 0 {
		core.LogInfo("window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application.")
		e.isSuspended = false
	}

	e.screen.SetSize(width, height)
	if s, ok := e.surface.(*platform.SoftwareSurface); ok {
		s.Resize(width, height)
	}
	return false
}
