package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"blackjack/pkg/blackjack"
)

// KeyReader is a source of key presses
type KeyReader interface {
	ReadKeys() ([]Key, error)
}

// Screen is where frames are drawn
type Screen interface {
	io.Writer
	Clear() error
	Flush() error
}

// Session runs the game loop: one key, one update, one frame
type Session struct {
	game     *blackjack.Game
	keys     KeyReader
	screen   Screen
	renderer *Renderer
}

// NewSession returns a new Session
func NewSession(game *blackjack.Game, keys KeyReader, screen Screen, renderer *Renderer) *Session {
	return &Session{
		game:     game,
		keys:     keys,
		screen:   screen,
		renderer: renderer,
	}
}

// Run draws the game and processes keys until the player quits or the input ends.
func (s *Session) Run() error {
	logrus.Info("session started")
	if err := s.draw(); err != nil {
		return err
	}

	for {
		keys, err := s.keys.ReadKeys()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logEnd("end of input")
				return nil
			}

			return fmt.Errorf("could not read input: %w", err)
		}

		for _, key := range keys {
			if key == KeyQuit {
				s.logEnd("quit")
				return nil
			}

			input, ok := key.Input()
			if !ok {
				continue
			}

			if _, err := s.game.Update(input); err != nil {
				return err
			}

			if err := s.draw(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) draw() error {
	if err := s.screen.Clear(); err != nil {
		return fmt.Errorf("could not clear screen: %w", err)
	}

	if err := s.renderer.Render(s.screen, s.game.State()); err != nil {
		return fmt.Errorf("could not render: %w", err)
	}

	if err := s.screen.Flush(); err != nil {
		return fmt.Errorf("could not draw: %w", err)
	}

	return nil
}

func (s *Session) logEnd(reason string) {
	stats := s.game.Stats()
	logrus.WithFields(logrus.Fields{
		"reason": reason,
		"rounds": stats.Rounds(),
		"wins":   stats.Wins,
		"losses": stats.Losses,
		"ties":   stats.Ties,
	}).Info("session ended")
}
