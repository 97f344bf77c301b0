package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW   = 87  // W key (ASCII), camera forward
	KeyA   = 65  // A key (ASCII), camera strafe left
	KeyS   = 83  // S key (ASCII), camera backward
	KeyD   = 68  // D key (ASCII), camera strafe right
	KeyQ   = 81  // Q key (ASCII), light left
	KeyE   = 69  // E key (ASCII), light right
	KeyI   = 73  // I key (ASCII), dummy forward
	KeyJ   = 74  // J key (ASCII), dummy turn left
	KeyK   = 75  // K key (ASCII), dummy backward
	KeyL   = 76  // L key (ASCII), dummy turn right
	KeyEsc = 256 // Escape key (GLFW)
)

// KeyName returns the single-letter name used for a key in scripts and config.
// Unknown codes return an empty string.
//
// Parameters:
//   - code: the virtual key code
//
// Returns:
//   - string: the key name, e.g. "I" or "Esc"
func KeyName(code uint32) string {
	for name, c := range keyNames {
		if c == code {
			return name
		}
	}
	return ""
}

// KeyCode resolves a key name from a script or config back to its code.
//
// Parameters:
//   - name: the key name, e.g. "I" or "Esc"
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyCode(name string) (uint32, bool) {
	c, ok := keyNames[name]
	return c, ok
}

var keyNames = map[string]uint32{
	"W":   KeyW,
	"A":   KeyA,
	"S":   KeyS,
	"D":   KeyD,
	"Q":   KeyQ,
	"E":   KeyE,
	"I":   KeyI,
	"J":   KeyJ,
	"K":   KeyK,
	"L":   KeyL,
	"Esc": KeyEsc,
}
