// cmd/game_tui/main.go
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	game "go-bubble-shooter/internal/app"
	"go-bubble-shooter/internal/audio"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/utils"
	"go-bubble-shooter/pkg/render/termshell"
)

func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the TOML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	// stderr занят терминалом, поэтому лог пишется в файл или никуда
	var logOut io.Writer = io.Discard
	if settings.Debug.LogFile != "" {
		f, err := os.OpenFile(settings.Debug.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: settings.Debug.SlogLevel()}))

	level, err := defs.LoadLevel(settings.Level.Path, logger)
	if err != nil {
		logger.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	if err := run(settings, level, logger); err != nil {
		logger.Error("terminal game failed", "error", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, level defs.LevelDefinition, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 64)

	// Fini разблокирует PollEvent, поэтому экран закрывается при отмене контекста.
	eg.Go(func() error {
		<-ctx.Done()
		screen.Fini()
		return nil
	})

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer stop()
		return loop(ctx, screen, events, settings, level, logger)
	})

	return eg.Wait()
}

func loop(ctx context.Context, screen tcell.Screen, events <-chan tcell.Event, settings config.Settings, level defs.LevelDefinition, logger *slog.Logger) error {
	g := game.NewGame(level, logger)

	sound := audio.NewSoundManager(settings.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Cleanup()
	sound.Subscribe(g.EventDispatcher)

	in := termshell.NewInput(termshell.DefaultHoldWindow, time.Now)
	canvas := termshell.NewCanvas(screen, config.ScreenWidth, config.ScreenHeight)
	gctx := &game.Context{Input: in, Clock: utils.NewWallClock(), Renderer: canvas}

	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				canvas.Resize()
			}
			in.HandleEvent(ev)
			if in.QuitRequested() {
				return nil
			}
		case <-ticker.C:
			g.Frame(gctx)
		}
	}
}
