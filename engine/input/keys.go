package input

// KeyCode identifies a single key on the keyboard device. The values align
// with the common virtual-key layout (digits and letters match their ASCII
// uppercase codes).
type KeyCode uint16

// Total number of key code values the device tracks. Codes outside
// [0, TotalKeys) coming from the event source are ignored.
const TotalKeys = 256

const (
	KEY_BACKSPACE KeyCode = 0x08
	KEY_TAB       KeyCode = 0x09
	KEY_ENTER     KeyCode = 0x0D
	KEY_SHIFT     KeyCode = 0x10
	KEY_CONTROL   KeyCode = 0x11
	KEY_ALT       KeyCode = 0x12
	KEY_PAUSE     KeyCode = 0x13
	KEY_CAPS_LOCK KeyCode = 0x14
	KEY_ESCAPE    KeyCode = 0x1B
	KEY_SPACE     KeyCode = 0x20
	KEY_PAGE_UP   KeyCode = 0x21
	KEY_PAGE_DOWN KeyCode = 0x22
	KEY_END       KeyCode = 0x23
	KEY_HOME      KeyCode = 0x24
	KEY_LEFT      KeyCode = 0x25
	KEY_UP        KeyCode = 0x26
	KEY_RIGHT     KeyCode = 0x27
	KEY_DOWN      KeyCode = 0x28
	KEY_INSERT    KeyCode = 0x2D
	KEY_DELETE    KeyCode = 0x2E

	KEY_0 KeyCode = 0x30
	KEY_1 KeyCode = 0x31
	KEY_2 KeyCode = 0x32
	KEY_3 KeyCode = 0x33
	KEY_4 KeyCode = 0x34
	KEY_5 KeyCode = 0x35
	KEY_6 KeyCode = 0x36
	KEY_7 KeyCode = 0x37
	KEY_8 KeyCode = 0x38
	KEY_9 KeyCode = 0x39

	KEY_A KeyCode = 0x41
	KEY_B KeyCode = 0x42
	KEY_C KeyCode = 0x43
	KEY_D KeyCode = 0x44
	KEY_E KeyCode = 0x45
	KEY_F KeyCode = 0x46
	KEY_G KeyCode = 0x47
	KEY_H KeyCode = 0x48
	KEY_I KeyCode = 0x49
	KEY_J KeyCode = 0x4A
	KEY_K KeyCode = 0x4B
	KEY_L KeyCode = 0x4C
	KEY_M KeyCode = 0x4D
	KEY_N KeyCode = 0x4E
	KEY_O KeyCode = 0x4F
	KEY_P KeyCode = 0x50
	KEY_Q KeyCode = 0x51
	KEY_R KeyCode = 0x52
	KEY_S KeyCode = 0x53
	KEY_T KeyCode = 0x54
	KEY_U KeyCode = 0x55
	KEY_V KeyCode = 0x56
	KEY_W KeyCode = 0x57
	KEY_X KeyCode = 0x58
	KEY_Y KeyCode = 0x59
	KEY_Z KeyCode = 0x5A

	KEY_META KeyCode = 0x5B

	KEY_NUMPAD_0 KeyCode = 0x60
	KEY_NUMPAD_1 KeyCode = 0x61
	KEY_NUMPAD_2 KeyCode = 0x62
	KEY_NUMPAD_3 KeyCode = 0x63
	KEY_NUMPAD_4 KeyCode = 0x64
	KEY_NUMPAD_5 KeyCode = 0x65
	KEY_NUMPAD_6 KeyCode = 0x66
	KEY_NUMPAD_7 KeyCode = 0x67
	KEY_NUMPAD_8 KeyCode = 0x68
	KEY_NUMPAD_9 KeyCode = 0x69
	KEY_MULTIPLY KeyCode = 0x6A
	KEY_ADD      KeyCode = 0x6B
	KEY_SUBTRACT KeyCode = 0x6D
	KEY_DECIMAL  KeyCode = 0x6E
	KEY_DIVIDE   KeyCode = 0x6F

	KEY_F1  KeyCode = 0x70
	KEY_F2  KeyCode = 0x71
	KEY_F3  KeyCode = 0x72
	KEY_F4  KeyCode = 0x73
	KEY_F5  KeyCode = 0x74
	KEY_F6  KeyCode = 0x75
	KEY_F7  KeyCode = 0x76
	KEY_F8  KeyCode = 0x77
	KEY_F9  KeyCode = 0x78
	KEY_F10 KeyCode = 0x79
	KEY_F11 KeyCode = 0x7A
	KEY_F12 KeyCode = 0x7B

	KEY_SEMICOLON KeyCode = 0xBA
	KEY_EQUALS    KeyCode = 0xBB
	KEY_COMMA     KeyCode = 0xBC
	KEY_MINUS     KeyCode = 0xBD
	KEY_PERIOD    KeyCode = 0xBE
	KEY_SLASH     KeyCode = 0xBF
)

// Modifier is a bitmask of the modifier keys and mouse buttons that were
// active when an input occurred.
type Modifier uint32

const (
	// Shift key was down during input.
	SHIFT_MASK Modifier = 1 << 6
	// Control key was down during input.
	CTRL_MASK Modifier = 1 << 7
	// Meta key was down during input.
	META_MASK Modifier = 1 << 8
	// Alt key was down during input.
	ALT_MASK Modifier = 1 << 9
	// First mouse button was down during input.
	MOUSE_BUTTON1_MASK Modifier = 1 << 10
	// Second mouse button was down during input.
	MOUSE_BUTTON2_MASK Modifier = 1 << 11
	// Third mouse button was down during input.
	MOUSE_BUTTON3_MASK Modifier = 1 << 12
	// Fourth mouse button was down during input.
	MOUSE_BUTTON4_MASK Modifier = 1 << 14
	// Fifth mouse button was down during input.
	MOUSE_BUTTON5_MASK Modifier = 1 << 15
)

// IsModifierKey reports whether the given key code is one of the modifier
// keys (Shift, Control, Meta or Alt).
func IsModifierKey(code KeyCode) bool {
	return code == KEY_SHIFT ||
		code == KEY_CONTROL ||
		code == KEY_META ||
		code == KEY_ALT
}
