package main

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/rng"
	"blackjack/pkg/blackjack"
)

func main() {
	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	cfg := config.Instance()
	setupLogger(cfg)

	logOutput, closeLog := openLog(cfg)
	defer closeLog()

	game := blackjack.NewGame(blackjack.Options{RNG: rng.New(cfg.Seed)})
	renderer := console.NewRenderer(console.Options{
		Title:      cfg.Title,
		PlayerName: cfg.PlayerName,
		DealerName: cfg.DealerName,
		Color:      cfg.Color,
	})

	terminal, err := console.Open(os.Stdin, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("could not open terminal")
	}

	// logs must never be written over the game screen
	logrus.SetOutput(logOutput)
	go restoreOnSignal(terminal)

	err = console.NewSession(game, terminal, terminal, renderer).Run()
	closeErr := terminal.Close()
	logrus.SetOutput(os.Stderr)

	if err != nil {
		closeLog()
		logrus.WithError(err).Fatal("session failed")
	}

	if closeErr != nil {
		closeLog()
		logrus.WithError(closeErr).Fatal("could not restore terminal")
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// openLog returns where logs go while the game is on screen
func openLog(cfg config.Config) (io.Writer, func()) {
	if cfg.Log.File == "" {
		return io.Discard, func() {}
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) // nolint:gosec
	if err != nil {
		logrus.WithError(err).WithField("file", cfg.Log.File).Fatal("could not open log file")
	}

	return file, func() {
		_ = file.Close()
	}
}

// restoreOnSignal gives the terminal back if the process is told to stop.
// Ctrl-C does not raise SIGINT in raw mode; the session reads it as a quit key.
func restoreOnSignal(terminal *console.Terminal) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)

	sig := <-signals
	_ = terminal.Close()
	logrus.SetOutput(os.Stderr)
	logrus.WithField("signal", sig.String()).Warn("terminated by signal")
	os.Exit(1)
}
