package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amaumene/trigger/internal/config"
	"github.com/amaumene/trigger/internal/handler"
	"github.com/amaumene/trigger/internal/service"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type App struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config) *App {
	app := &App{cfg: cfg}
	app.wireServices()
	return app
}

func (a *App) wireServices() {
	loader := config.NewTriggerLoader(nil)
	triggerSvc := service.NewTriggerService(loader, service.NewExecRunner())
	a.setupHTTPServer(handler.NewHTTPHandler(triggerSvc))
}

// setupHTTPServer mounts h without a mux. Triggered commands have no time
// limit, so only the request header read is bounded.
func (a *App) setupHTTPServer(h http.Handler) {
	a.server = &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// Run binds the configured address and serves until ctx is cancelled or a
// shutdown signal arrives.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.ListenAddr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an existing listener. It takes ownership of ln.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go a.startServer(ln, serveErr)

	return a.waitForShutdown(ctx, serveErr)
}

func (a *App) startServer(ln net.Listener, serveErr chan<- error) {
	log.WithFields(log.Fields{
		"component": "server",
		"address":   ln.Addr().String(),
	}).Info("http server listening")

	if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serveErr <- err
	}
}

func (a *App) waitForShutdown(ctx context.Context, serveErr <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		log.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		log.WithField("signal", sig).Info("received shutdown signal")
	case err := <-serveErr:
		return fmt.Errorf("serving http: %w", err)
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	log.Info("graceful shutdown started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return err
	}

	log.Info("graceful shutdown completed")
	return nil
}
