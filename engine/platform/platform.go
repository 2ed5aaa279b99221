// Package platform hosts the window and translates raw windowing events
// into engine input and system events.
package platform

import (
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/nova/engine/core"
	"github.com/spaghettifunk/nova/engine/input"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	Window *glfw.Window

	keyboard *input.Keyboard
	screen   *core.Screen
	events   *core.EventBus
}

func New(keyboard *input.Keyboard, screen *core.Screen, events *core.EventBus) (*Platform, error) {
	return &Platform{
		keyboard: keyboard,
		screen:   screen,
		events:   events,
	}, nil
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		return err
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetCharModsCallback(p.charCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
	p.Window.SetCloseCallback(p.closeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	if p.screen != nil {
		p.screen.SetWindowSize(int(width), int(height))
	}

	return nil
}

// PumpMessages drains the windowing system's event queue, invoking the
// registered callbacks. Must be called from the main OS thread.
func (p *Platform) PumpMessages() {
	glfw.PollEvents()
}

// Sleep yields the CPU between frames.
func (p *Platform) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	modifiers := translateMods(mods)
	switch action {
	case glfw.Press:
		p.keyboard.NotifyPressed(code, modifiers)
		p.fireKeyEvent(core.EVENT_CODE_KEY_PRESSED, code, modifiers)
	case glfw.Release:
		p.keyboard.NotifyReleased(code, modifiers)
		p.fireKeyEvent(core.EVENT_CODE_KEY_RELEASED, code, modifiers)
	}
}

func (p *Platform) charCallback(w *glfw.Window, char rune, mods glfw.ModifierKey) {
	p.keyboard.NotifyTyped(char, translateMods(mods))
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	mask := translateMouseButton(button)
	if mask == 0 {
		return
	}
	p.keyboard.NotifyMouseButton(mask, translateMods(mods))
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if p.screen != nil {
		p.screen.SetWindowSize(width, height)
	}
	if p.events != nil {
		p.events.Defer(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: core.SystemEvent{WindowWidth: width, WindowHeight: height},
		})
	}
}

func (p *Platform) closeCallback(w *glfw.Window) {
	if p.events != nil {
		p.events.Fire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}
}

func (p *Platform) fireKeyEvent(eventType core.EventCode, code input.KeyCode, mods input.Modifier) {
	if p.events == nil {
		return
	}
	p.events.Fire(core.EventContext{
		Type: eventType,
		Data: core.KeyEvent{
			KeyCode:   uint16(code),
			Modifiers: uint32(mods),
		},
	})
}

func translateMods(mods glfw.ModifierKey) input.Modifier {
	var m input.Modifier
	if mods&glfw.ModShift != 0 {
		m |= input.SHIFT_MASK
	}
	if mods&glfw.ModControl != 0 {
		m |= input.CTRL_MASK
	}
	if mods&glfw.ModAlt != 0 {
		m |= input.ALT_MASK
	}
	if mods&glfw.ModSuper != 0 {
		m |= input.META_MASK
	}
	return m
}

// translateMouseButton maps a glfw mouse button onto its modifier mask bit.
// Buttons beyond the fifth are dropped.
func translateMouseButton(button glfw.MouseButton) input.Modifier {
	switch button {
	case glfw.MouseButton1:
		return input.MOUSE_BUTTON1_MASK
	case glfw.MouseButton2:
		return input.MOUSE_BUTTON2_MASK
	case glfw.MouseButton3:
		return input.MOUSE_BUTTON3_MASK
	case glfw.MouseButton4:
		return input.MOUSE_BUTTON4_MASK
	case glfw.MouseButton5:
		return input.MOUSE_BUTTON5_MASK
	default:
		return 0
	}
}

// translateKey maps a glfw key onto the engine's key code table. Keys the
// table has no slot for are dropped.
func translateKey(key glfw.Key) (input.KeyCode, bool) {
	// Letters and digits line up with their ASCII codes on both sides.
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return input.KeyCode(key), true
	}
	if key >= glfw.Key0 && key <= glfw.Key9 {
		return input.KeyCode(key), true
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return input.KEY_F1 + input.KeyCode(key-glfw.KeyF1), true
	}
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return input.KEY_NUMPAD_0 + input.KeyCode(key-glfw.KeyKP0), true
	}

	switch key {
	case glfw.KeySpace:
		return input.KEY_SPACE, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KEY_ENTER, true
	case glfw.KeyEscape:
		return input.KEY_ESCAPE, true
	case glfw.KeyBackspace:
		return input.KEY_BACKSPACE, true
	case glfw.KeyTab:
		return input.KEY_TAB, true
	case glfw.KeyLeft:
		return input.KEY_LEFT, true
	case glfw.KeyUp:
		return input.KEY_UP, true
	case glfw.KeyRight:
		return input.KEY_RIGHT, true
	case glfw.KeyDown:
		return input.KEY_DOWN, true
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return input.KEY_SHIFT, true
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return input.KEY_CONTROL, true
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return input.KEY_ALT, true
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return input.KEY_META, true
	case glfw.KeyInsert:
		return input.KEY_INSERT, true
	case glfw.KeyDelete:
		return input.KEY_DELETE, true
	case glfw.KeyHome:
		return input.KEY_HOME, true
	case glfw.KeyEnd:
		return input.KEY_END, true
	case glfw.KeyPageUp:
		return input.KEY_PAGE_UP, true
	case glfw.KeyPageDown:
		return input.KEY_PAGE_DOWN, true
	case glfw.KeyCapsLock:
		return input.KEY_CAPS_LOCK, true
	case glfw.KeyPause:
		return input.KEY_PAUSE, true
	case glfw.KeyKPMultiply:
		return input.KEY_MULTIPLY, true
	case glfw.KeyKPAdd:
		return input.KEY_ADD, true
	case glfw.KeyKPSubtract:
		return input.KEY_SUBTRACT, true
	case glfw.KeyKPDecimal:
		return input.KEY_DECIMAL, true
	case glfw.KeyKPDivide:
		return input.KEY_DIVIDE, true
	case glfw.KeySemicolon:
		return input.KEY_SEMICOLON, true
	case glfw.KeyEqual:
		return input.KEY_EQUALS, true
	case glfw.KeyComma:
		return input.KEY_COMMA, true
	case glfw.KeyMinus:
		return input.KEY_MINUS, true
	case glfw.KeyPeriod:
		return input.KEY_PERIOD, true
	case glfw.KeySlash:
		return input.KEY_SLASH, true
	default:
		return 0, false
	}
}
