package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackjack/pkg/blackjack"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keys  []Key
	}{
		{"space", " ", []Key{KeyContinue}},
		{"carriage return", "\r", []Key{KeyContinue}},
		{"newline", "\n", []Key{KeyContinue}},
		{"arrow up", "\x1b[A", []Key{KeyUp}},
		{"arrow down", "\x1b[B", []Key{KeyDown}},
		{"application mode arrows", "\x1bOA\x1bOB", []Key{KeyUp, KeyDown}},
		{"modified arrow", "\x1b[1;5A", []Key{KeyUp}},
		{"lone escape", "\x1b", []Key{KeyQuit}},
		{"q", "q", []Key{KeyQuit}},
		{"Q", "Q", []Key{KeyQuit}},
		{"ctrl-c", "\x03", []Key{KeyQuit}},
		{"ignored", "xyz123", []Key{}},
		{"arrow right ignored", "\x1b[C", []Key{}},
		{"function key ignored", "\x1b[15~", []Key{}},
		{"several keys", " \x1b[B\x1b[B\r", []Key{KeyContinue, KeyDown, KeyDown, KeyContinue}},
		{"alt key is dropped", "\x1bx ", []Key{KeyContinue}},
		{"truncated sequence", "\x1b[", []Key{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, Decode([]byte(tt.input)))
		})
	}
}

func TestKey_Input(t *testing.T) {
	a := assert.New(t)

	input, ok := KeyContinue.Input()
	a.True(ok)
	a.Equal(blackjack.Continue, input)

	input, ok = KeyUp.Input()
	a.True(ok)
	a.Equal(blackjack.Up, input)

	input, ok = KeyDown.Input()
	a.True(ok)
	a.Equal(blackjack.Down, input)

	_, ok = KeyQuit.Input()
	a.False(ok)

	a.Equal("quit", KeyQuit.String())
	a.Equal("unknown", Key(0).String())
}
