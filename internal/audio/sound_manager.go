// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Output — куда уходит звук. В игре это динамик, в тестах — запись.
// Lock/Unlock защищают микшер от потока вывода.
type Output interface {
	Init(rate beep.SampleRate) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate) error {
	return speaker.Init(rate, rate.N(100*time.Millisecond))
}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (speakerOutput) Lock()   { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

// SoundManager проигрывает звуки по игровым событиям
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	music       *beep.Ctrl
	settings    config.AudioSettings
	logger      *slog.Logger
	initialized bool
}

// NewSoundManager создаёт менеджер, выводящий звук в системный динамик.
func NewSoundManager(settings config.AudioSettings, logger *slog.Logger) *SoundManager {
	return NewSoundManagerWithOutput(settings, logger, speakerOutput{})
}

func NewSoundManagerWithOutput(settings config.AudioSettings, logger *slog.Logger, out Output) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		out:      out,
		mixer:    &beep.Mixer{},
		settings: settings,
		logger:   logger,
	}
}

// Initialize открывает вывод и запускает микшер. Если звук выключен, ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.settings.Enabled {
		return nil
	}
	if err := sm.out.Init(sampleRate); err != nil {
		return fmt.Errorf("failed to init audio output: %w", err)
	}
	sm.out.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "rate", int(sampleRate), "music", sm.settings.Music)

	if sm.settings.Music {
		loop := beep.Iterate(func() beep.Streamer { return CreateMusicLoop(sampleRate) })
		sm.music = &beep.Ctrl{Streamer: newVolume(loop, sm.settings.Volume*0.3)}
		sm.out.Lock()
		sm.mixer.Add(sm.music)
		sm.out.Unlock()
	}
	return nil
}

// Subscribe подписывает менеджер на события симуляции.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.ProjectileFired,
		event.ProjectileBounced,
		event.PatrollerKilled,
		event.RoundWon,
		event.RoundLost,
		event.RoundStarted,
	)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	vol := sm.settings.Volume
	switch e.Type {
	case event.ProjectileFired:
		sm.play(CreateFireSound(sampleRate, vol))
	case event.ProjectileBounced:
		sm.play(CreateBounceSound(sampleRate, vol))
	case event.PatrollerKilled:
		sm.play(CreateHitSound(sampleRate, vol))
	case event.RoundWon:
		sm.play(CreateWinSound(sampleRate, vol))
	case event.RoundLost:
		sm.play(CreateLoseSound(sampleRate, vol))
	case event.RoundStarted:
		sm.SetMusicPaused(false)
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}

// SetMusicPaused останавливает или возобновляет фоновую музыку.
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.music == nil {
		return
	}
	sm.out.Lock()
	sm.music.Paused = paused
	sm.out.Unlock()
}

// Playing — сколько потоков сейчас в микшере.
func (sm *SoundManager) Playing() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}

// Cleanup останавливает все звуки
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.music = nil
	sm.initialized = false
	sm.logger.Debug("audio stopped")
}
