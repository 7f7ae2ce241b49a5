// Package loop runs the terminal game locally: a private session hub and a
// single client on the given reader and writer.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/draw"
	"github.com/tomz197/ghostbow/internal/loop/client"
	"github.com/tomz197/ghostbow/internal/loop/server"
)

// Options configures a local run.
type Options struct {
	Settings     config.Settings
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc // Default draw.DefaultTermSizeFunc
}

// Run plays one local session until the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := server.NewServer()
	go hub.Run(ctx)

	c, err := client.NewClient(hub, r, w, client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     config.GetEnv("USER", server.DefaultUsername),
		Settings:     opts.Settings,
		Logger:       opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	draw.EnterAltScreen(w)
	defer draw.LeaveAltScreen(w)

	if err := c.Run(); err != nil {
		return fmt.Errorf("run client: %w", err)
	}
	return nil
}
