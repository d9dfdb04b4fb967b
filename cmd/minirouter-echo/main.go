package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dqx0.com/go/minirouter/internal/auth"
	"dqx0.com/go/minirouter/internal/config"
	"dqx0.com/go/minirouter/internal/obs"
	"dqx0.com/go/minirouter/router"
)

func main() {
	hashToken := flag.String("hash-token", "", "print the argon2id hash of a token for MINIROUTER_ADMIN_TOKEN_HASH and exit")
	flag.Parse()

	if *hashToken != "" {
		h, err := auth.HashToken(*hashToken, auth.DefaultArgon2idParams)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: obs.SlogLevel(cfg.LogLevel)}))
	logger := obs.Async(obs.SlogLogger{L: base}, 1024)
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &router.Server{
		Addr:            cfg.Addr(),
		Router:          routes(logger, cfg),
		Logger:          logger,
		ReadTimeout:     cfg.ReadTimeout,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Logf(obs.Error, "failed to shutdown server: %v", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, router.ErrServerClosed) {
		logger.Logf(obs.Error, "server encountered error: %v", err)
		logger.Close()
		os.Exit(1)
	}
}
