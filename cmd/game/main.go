// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-bubble-shooter/internal/app"
	"go-bubble-shooter/internal/audio"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/state"
	"go-bubble-shooter/pkg/render/ebitenshell"
)

var errQuit = errors.New("quit requested")

// AppGame адаптирует машину состояний к интерфейсу ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	canvas         *ebitenshell.Canvas
	input          *ebitenshell.Input
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.input.QuitRequested() {
		return errQuit
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)
	a.stateMachine.Draw(a.canvas)
	a.canvas.PresentFrame()
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", config.DefaultSettingsPath, "path to the TOML settings file")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.Debug.SlogLevel()}))
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	if settings.Debug.PprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", settings.Debug.PprofAddr)
			if err := http.ListenAndServe(settings.Debug.PprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", "error", err)
			}
		}()
	}

	level, err := defs.LoadLevel(settings.Level.Path, logger)
	if err != nil {
		logger.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	g := game.NewGame(level, logger)

	sound := audio.NewSoundManager(settings.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Cleanup()
	sound.Subscribe(g.EventDispatcher)

	in := ebitenshell.NewInput()
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, g, in, in, func(paused bool) { sound.SetMusicPaused(paused) }))

	app := &AppGame{
		stateMachine:   sm,
		canvas:         ebitenshell.NewCanvas(config.HUDFontSize, logger),
		input:          in,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(int(config.ScreenWidth*settings.Window.Scale), int(config.ScreenHeight*settings.Window.Scale))
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(config.TickRate)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, errQuit) {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
