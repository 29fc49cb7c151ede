// Command storeserver runs the development REST store: a schema-less
// JSON document server backed by sqlite, optionally seeded from a
// db.json file.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"traveldesk/internal/logging"
	"traveldesk/internal/store"
)

func main() {
	_ = godotenv.Load()

	var (
		addr = flag.String("l", ":3000", "listen address")
		dsn  = flag.String("d", "traveldesk.db", "sqlite database path")
		seed = flag.String("seed", "", "optional db.json seed file")
	)
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, *dsn)
	if err != nil {
		logger.Error(ctx, "opening store", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	if *seed != "" {
		if err := st.Seed(ctx, *seed); err != nil {
			logger.Error(ctx, "seeding store", "err", err)
			os.Exit(1)
		}
		logger.Info(ctx, "store seeded", "file", *seed)
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: store.NewServer(st, logger).Handler(),
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "shutdown", "err", err)
		}
		cancel()
	}()

	logger.Info(ctx, "store server listening", "addr", *addr, "db", *dsn)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "server error", "err", err)
		os.Exit(1)
	}
	<-ctx.Done()
}
