package input

import "sync"

// Keyboard latches the asynchronous stream of key notifications coming from
// the windowing event source and turns it into a stable per-frame view for
// the single game-loop goroutine.
//
// The event source may call the Notify* methods from any goroutine at any
// time. The game loop must call Process exactly once per frame before it
// reads any inputs; Process atomically commits everything that arrived since
// the previous frame. Events delivered before a Process call are visible in
// that frame's committed state, events delivered after are deferred to the
// next frame. All query methods read only committed state, yield identical
// results between two Process calls, and must be called from the loop
// goroutine only.
type Keyboard struct {
	mu sync.Mutex

	// Producer side, guarded by mu.
	pendingPressed  []KeyCode
	pendingReleased []KeyCode
	pendingTyped    []rune
	keys            [TotalKeys]bool
	keysDownCount   int
	modifiers       Modifier

	// Consumer side, written only inside Process.
	committedPressed  []KeyCode
	committedReleased []KeyCode
	committedTyped    []rune
	polledKeys        [TotalKeys]int
	polledKeysDown    int
	polledModifiers   Modifier
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// NotifyPressed records a key-down notification from the event source.
// Out-of-range key codes are ignored; events from the windowing system are
// not trusted to stay within the table.
func (k *Keyboard) NotifyPressed(code KeyCode, mods Modifier) {
	if code >= TotalKeys {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.keys[code] {
		k.keysDownCount++
	}
	k.keys[code] = true

	k.pendingPressed = append(k.pendingPressed, code)
	k.modifiers |= mods
}

// NotifyReleased records a key-up notification from the event source.
// Out-of-range key codes are ignored.
func (k *Keyboard) NotifyReleased(code KeyCode, mods Modifier) {
	if code >= TotalKeys {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.keys[code] {
		k.keysDownCount--
	}
	k.keys[code] = false

	k.pendingReleased = append(k.pendingReleased, code)
	k.modifiers |= mods
}

// NotifyMouseButton records a mouse button press from the event source by
// folding the button's mask, together with the keyboard modifiers held at
// the time, into the frame's modifier mask.
func (k *Keyboard) NotifyMouseButton(button Modifier, mods Modifier) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.modifiers |= button | mods
}

// NotifyTyped records a typed character notification from the event source.
func (k *Keyboard) NotifyTyped(char rune, mods Modifier) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.pendingTyped = append(k.pendingTyped, char)
	k.modifiers |= mods
}

// Process commits all key events that occurred since the previous frame and
// updates the per-key frame counters and the polled modifier mask. The game
// loop must call it once per frame, never concurrently with itself, before
// any query method; otherwise inputs will be out of sync with the current
// frame, if detected at all.
func (k *Keyboard) Process() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.swapQueues()
	k.pollKeys()
	k.pollModifiers()
}

// swapQueues exchanges the pending event queues that catch notifications
// from the event source for the committed queues the game loop reads,
// clearing the pending side for the next frame. Swapping the backing slices
// reuses their capacity instead of reallocating every frame.
func (k *Keyboard) swapQueues() {
	k.pendingPressed, k.committedPressed =
		k.committedPressed[:0], k.pendingPressed
	k.pendingReleased, k.committedReleased =
		k.committedReleased[:0], k.pendingReleased
	k.pendingTyped, k.committedTyped =
		k.committedTyped[:0], k.pendingTyped
}

// pollKeys advances the consecutive-frames-down counter for every key that
// is currently held and resets the counter of every key that is not, then
// does the same for the global any-key counter.
func (k *Keyboard) pollKeys() {
	for i := range k.keys {
		if k.keys[i] {
			k.polledKeys[i]++
		} else {
			k.polledKeys[i] = 0
		}
	}

	if k.keysDownCount > 0 {
		k.polledKeysDown++
	} else {
		k.polledKeysDown = 0
	}
}

// pollModifiers snapshots the raw modifier mask accumulated during the
// frame into the polled mask and clears the raw one.
func (k *Keyboard) pollModifiers() {
	k.polledModifiers = k.modifiers
	k.modifiers = 0
}

// KeyDown reports whether the key with the given code is currently held.
func (k *Keyboard) KeyDown(code KeyCode) bool {
	if code >= TotalKeys {
		return false
	}
	return k.polledKeys[code] > 0
}

// KeyDownWith reports whether the key with the given code is currently held
// while every modifier in the given mask is active.
func (k *Keyboard) KeyDownWith(code KeyCode, mask Modifier) bool {
	return k.KeyDown(code) && k.polledModifiers&mask == mask
}

// KeyDownOnce reports whether the key with the given code was pressed this
// frame and was not down on the previous frame.
func (k *Keyboard) KeyDownOnce(code KeyCode) bool {
	if code >= TotalKeys {
		return false
	}
	return k.polledKeys[code] == 1
}

// KeyDownOnceWith reports whether the key with the given code was pressed
// this frame while every modifier in the given mask is active.
func (k *Keyboard) KeyDownOnceWith(code KeyCode, mask Modifier) bool {
	return k.KeyDownOnce(code) && k.polledModifiers&mask == mask
}

// KeyReleased reports whether the key with the given code was released
// during the committed frame.
func (k *Keyboard) KeyReleased(code KeyCode) bool {
	for _, released := range k.committedReleased {
		if released == code {
			return true
		}
	}
	return false
}

// KeyReleasedWith reports whether the key with the given code was released
// during the committed frame while every modifier in the given mask is
// active.
func (k *Keyboard) KeyReleasedWith(code KeyCode, mask Modifier) bool {
	return k.KeyReleased(code) && k.polledModifiers&mask == mask
}

// AnyKeyDown reports whether any key is currently held.
func (k *Keyboard) AnyKeyDown() bool {
	return k.polledKeysDown > 0
}

// AnyKeyDownOnce reports whether this is the first committed frame with any
// key held after a frame with none.
func (k *Keyboard) AnyKeyDownOnce() bool {
	return k.polledKeysDown == 1
}

// KeysPressed returns the codes of all keys pressed during the committed
// frame, in arrival order.
func (k *Keyboard) KeysPressed() []KeyCode {
	out := make([]KeyCode, len(k.committedPressed))
	copy(out, k.committedPressed)
	return out
}

// KeysReleased returns the codes of all keys released during the committed
// frame, in arrival order.
func (k *Keyboard) KeysReleased() []KeyCode {
	out := make([]KeyCode, len(k.committedReleased))
	copy(out, k.committedReleased)
	return out
}

// KeysTyped returns the characters typed during the committed frame, in
// arrival order.
func (k *Keyboard) KeysTyped() []rune {
	out := make([]rune, len(k.committedTyped))
	copy(out, k.committedTyped)
	return out
}

// Modifiers returns the committed modifier mask for the current frame.
func (k *Keyboard) Modifiers() Modifier {
	return k.polledModifiers
}

// ShiftDown reports whether the Shift modifier is active this frame.
func (k *Keyboard) ShiftDown() bool {
	return k.polledModifiers&SHIFT_MASK != 0
}

// ControlDown reports whether the Control modifier is active this frame.
func (k *Keyboard) ControlDown() bool {
	return k.polledModifiers&CTRL_MASK != 0
}

// MetaDown reports whether the Meta modifier is active this frame.
func (k *Keyboard) MetaDown() bool {
	return k.polledModifiers&META_MASK != 0
}

// AltDown reports whether the Alt modifier is active this frame.
func (k *Keyboard) AltDown() bool {
	return k.polledModifiers&ALT_MASK != 0
}

// ModifierActive reports whether any modifier key or button is active this
// frame.
func (k *Keyboard) ModifierActive() bool {
	return k.polledModifiers != 0
}
