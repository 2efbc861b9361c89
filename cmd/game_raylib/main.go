// cmd/game_raylib/main.go
package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	game "go-bubble-shooter/internal/app"
	"go-bubble-shooter/internal/audio"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/utils"
	"go-bubble-shooter/pkg/render/raylibshell"
)

func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the TOML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.Debug.SlogLevel()}))
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	level, err := defs.LoadLevel(settings.Level.Path, logger)
	if err != nil {
		logger.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	// --- Инициализация ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, settings.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TickRate)
	rl.SetExitKey(rl.KeyEscape)

	g := game.NewGame(level, logger)

	sound := audio.NewSoundManager(settings.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Cleanup()
	sound.Subscribe(g.EventDispatcher)

	canvas := raylibshell.NewCanvas(config.HUDFontSize)
	ctx := &game.Context{
		Input:    raylibshell.NewInput(),
		Clock:    utils.NewWallClock(),
		Renderer: canvas,
	}

	// --- Главный цикл: один тик на кадр, темп держит raylib ---
	for !rl.WindowShouldClose() {
		canvas.BeginFrame()
		g.Frame(ctx)
	}
}
