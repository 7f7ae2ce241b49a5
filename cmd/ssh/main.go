package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/draw"
	"github.com/tomz197/ghostbow/internal/loop/client"
	"github.com/tomz197/ghostbow/internal/loop/server"
)

// Shutdown timeouts
const (
	playerDrainTimeout = 15 * time.Second
	sshShutdownTimeout = 5 * time.Second
)

func main() {
	settings, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger := settings.Logger(os.Stderr, "ssh")

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", settings.SSHHost, "port", settings.SSHPort,
		"hostKeyPath", settings.SSHHostKey, "workingDir", workingDir)

	// Shared session hub for all SSH clients
	ctx, cancelHub := context.WithCancel(context.Background())
	hub := server.NewServer()
	go hub.Run(ctx)
	logger.Info("session hub started")

	app := &gameApp{hub: hub, settings: settings, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			app.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(settings.SSHHost, settings.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// Notify players and wait for them to disconnect
	logger.Info("notifying connected players about shutdown")
	hub.Shutdown(playerDrainTimeout)
	cancelHub()
	logger.Info("session hub stopped")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), sshShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameApp runs one game client per SSH session.
type gameApp struct {
	hub      *server.Server
	settings config.Settings
	logger   *log.Logger
}

// middleware handles SSH sessions and runs the game client.
func (a *gameApp) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := a.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		reader := bufio.NewReader(sess)
		c, err := client.NewClient(a.hub, reader, sess, client.ClientOptions{
			TermSizeFunc: sizeTracker.getSize,
			Username:     sess.User(),
			Settings:     a.settings,
			Logger:       logger,
		})
		if err != nil {
			logger.Error("failed to start session", "err", err)
			fmt.Fprintln(sess, "Error: the game could not be started.")
			return
		}

		draw.EnterAltScreen(sess)
		if err := c.Run(); err != nil {
			logger.Error("game error", "err", err)
		}
		draw.LeaveAltScreen(sess)

		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
