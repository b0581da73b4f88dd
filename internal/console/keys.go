package console

import "blackjack/pkg/blackjack"

// Key is a key press the game cares about
type Key int

// Key constants
const (
	KeyContinue Key = iota + 1
	KeyUp
	KeyDown
	KeyQuit
)

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// Input maps the key to a game input
// KeyQuit has no input; the session handles it.
func (k Key) Input() (blackjack.Input, bool) {
	switch k {
	case KeyContinue:
		return blackjack.Continue, true
	case KeyUp:
		return blackjack.Up, true
	case KeyDown:
		return blackjack.Down, true
	}

	return 0, false
}

func (k Key) String() string {
	switch k {
	case KeyContinue:
		return "continue"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyQuit:
		return "quit"
	}

	return "unknown"
}

// Decode turns bytes read from a raw-mode terminal into keys.
// Space and enter continue, the arrow keys move through the menu and a lone
// escape, q, Q or Ctrl-C quits. Everything else is dropped.
func Decode(b []byte) []Key {
	keys := make([]Key, 0, len(b))
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case ' ', '\r', '\n':
			keys = append(keys, KeyContinue)
		case 'q', 'Q', ctrlC:
			keys = append(keys, KeyQuit)
		case esc:
			if i+1 == len(b) {
				keys = append(keys, KeyQuit)
				continue
			}

			var final byte
			final, i = escapeSequence(b, i+1)
			switch final {
			case 'A':
				keys = append(keys, KeyUp)
			case 'B':
				keys = append(keys, KeyDown)
			}
		}
	}

	return keys
}

// escapeSequence reads the sequence that follows an escape byte at b[start-1].
// It returns the final byte of a CSI (ESC [) or SS3 (ESC O) sequence and the index of the last byte consumed.
// An escape followed by anything else is a lone escape (alt+key) and yields a zero final byte.
func escapeSequence(b []byte, start int) (byte, int) {
	switch b[start] {
	case 'O':
		if start+1 < len(b) {
			return b[start+1], start + 1
		}
		return 0, start
	case '[':
		for j := start + 1; j < len(b); j++ {
			// parameter and intermediate bytes are 0x20-0x3f; the final byte is 0x40-0x7e
			if b[j] >= 0x40 && b[j] <= 0x7e {
				return b[j], j
			}
		}
		return 0, len(b) - 1
	}

	return 0, start - 1
}
