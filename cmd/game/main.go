package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/loop"
)

func main() {
	settings, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger := settings.Logger(os.Stderr, "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	reader := bufio.NewReader(os.Stdin)
	// The session logger stays silent: the game owns the terminal.
	runErr := loop.Run(reader, os.Stdout, loop.Options{Settings: settings})

	_ = term.Restore(fd, oldState)
	if runErr != nil {
		logger.Error("game error", "err", runErr)
		os.Exit(1)
	}
}
