// Package main is the entry point for Fantasy Quest.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/samdwyer/fantasyquest/internal/config"
	"github.com/samdwyer/fantasyquest/internal/game"
	"github.com/samdwyer/fantasyquest/internal/gamedata"
	"github.com/samdwyer/fantasyquest/internal/observability"
	"github.com/samdwyer/fantasyquest/internal/telemetry"
	"github.com/samdwyer/fantasyquest/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := loadDotEnv(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("shutting down telemetry", zap.Error(err))
			}
		}()
	}

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		log.Fatalf("Failed to load enemies: %v", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		log.Fatalf("Failed to load shop items: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	console := ui.NewConsole(screen)

	g := game.New(cfg.Game, console, enemies, items, game.WithLogger(logger))
	runErr := g.Run(ctx)
	console.Close()

	// Closing the screen leaves the alternate buffer; keep the session in scrollback.
	writeTranscript(os.Stdout, console.History())

	if runErr != nil {
		// The session has no distinct failure exit code.
		logger.Error("game error", zap.Error(runErr))
		log.Printf("Game error: %v", runErr)
	}
}

// loadDotEnv loads .env files. A missing file is not an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// writeTranscript prints the session log, one line per row.
func writeTranscript(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
