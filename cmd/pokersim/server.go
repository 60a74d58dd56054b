package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"pokersim-server/cmd/pokersim/shared"
	"pokersim-server/internal/config"
	"pokersim-server/internal/mux"
	"pokersim-server/pkg/db"
)

// ServerCmd runs the HTTP simulation service
type ServerCmd struct {
	Listen string `help:"Listen address (overrides POKERSIM_LISTEN)"`
	NoDB   bool   `help:"Run without the hand store"`
}

// Run starts the server and blocks until shutdown
func (c *ServerCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger = shared.SetupLogger(true)
	}
	if c.Listen != "" {
		cfg.Listen = c.Listen
	}

	profile, err := config.LoadTableProfile(cfg.TableProfile)
	if err != nil {
		return err
	}

	var conn *sql.DB
	if !c.NoDB {
		conn, err = db.Connect(cfg.PGDSN)
		if err != nil {
			return err
		}
		defer conn.Close()
	}

	handler := mux.NewMux(version, logger, conn, profile)

	srv := &http.Server{
		Addr: cfg.Listen,
		Handler: handlers.LoggingHandler(os.Stdout,
			cors.AllowAll().Handler(handler)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
