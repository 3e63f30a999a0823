package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/Abdelmonaim-malki/quickchat-scolaire/infrastructure/websocket"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/internal"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/moderation"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/repositories"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime"
	"github.com/Abdelmonaim-malki/quickchat-scolaire/runtime/workers"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Calling os.Exit from main only, after run returns, ensures every defer
// (worker shutdown, connection draining) executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Optional censor
	var moderator *moderation.Moderator
	if words := config.CensoredWordList(); len(words) > 0 {
		replacement, err := config.CharacterRune()
		if err != nil {
			return exitConfig, err
		}
		moderator, err = moderation.NewModerator(words, replacement, logger)
		if err != nil {
			return exitConfig, fmt.Errorf("censor setup failed: %w", err)
		}
		logger.Info("Censor enabled", "words", len(words))
	}

	// 3. Relay core
	registry := runtime.NewRegistry()
	history := repositories.NewHistoryRepository(config.HistoryLimit, logger)
	supervisor := workers.NewSupervisor(logger)

	relay := runtime.NewRelay(logger, supervisor, registry, history, moderator,
		config.BufferSize, config.TelemetryInterval)
	relay.Start(ctx)
	defer relay.Stop()

	// 4. HTTP front
	server := websocket.NewServer(config, relay, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Relay listening", "addr", config.Addr())
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		if err := websocket.Shutdown(server, config.ShutdownTimeout, logger); err != nil {
			return exitRuntime, fmt.Errorf("shutdown error: %w", err)
		}
	}

	return exitOK, nil
}
