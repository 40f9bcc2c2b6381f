// Package input defines keyboard and mouse event types shared between the
// window backend and scenes. Values match GLFW so the backend converts them
// with a plain integer cast.
package input

// Key is a keyboard key code.
type Key int

// Action is the state transition reported for a key.
type Action int

// ModifierKey is a bit set of modifier keys held during a key event.
type ModifierKey int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

const (
	KeyUnknown     Key = -1
	KeySpace       Key = 32
	Key0           Key = 48
	Key1           Key = 49
	Key2           Key = 50
	Key3           Key = 51
	KeyA           Key = 65
	KeyC           Key = 67
	KeyD           Key = 68
	KeyE           Key = 69
	KeyF           Key = 70
	KeyQ           Key = 81
	KeyR           Key = 82
	KeyS           Key = 83
	KeyW           Key = 87
	KeyEscape      Key = 256
	KeyEnter       Key = 257
	KeyTab         Key = 258
	KeyRight       Key = 262
	KeyLeft        Key = 263
	KeyDown        Key = 264
	KeyUp          Key = 265
	KeyF1          Key = 290
	KeyLeftShift   Key = 340
	KeyLeftControl Key = 341
)

// KeyEvent is one key callback from the window backend.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// Pressed reports whether the event is the initial press of key.
func (e KeyEvent) Pressed(key Key) bool {
	return e.Key == key && e.Action == Press
}

// Released reports whether the event is the release of key.
func (e KeyEvent) Released(key Key) bool {
	return e.Key == key && e.Action == Release
}

// Has reports whether all modifiers in m were held.
func (m ModifierKey) Has(mod ModifierKey) bool {
	return m&mod == mod
}
