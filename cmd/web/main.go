package main

import (
	_ "embed"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/ghostbow/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger := settings.Logger(os.Stderr, "web")

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", settings.DisplayHost)
	page = strings.ReplaceAll(page, "{{.SSHPort}}", settings.SSHPort)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			logger.Debug("write failed", "remote", r.RemoteAddr, "err", err)
		}
	})

	addr := net.JoinHostPort(settings.WebHost, settings.WebPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("starting web server", "url", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
