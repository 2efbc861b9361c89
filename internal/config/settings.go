// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSettingsPath — файл настроек, который ищется в рабочей директории.
const DefaultSettingsPath = "bubble.toml"

// Settings — настройки запуска, которые можно поменять без пересборки.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Audio  AudioSettings  `toml:"audio"`
	Level  LevelSettings  `toml:"level"`
	Debug  DebugSettings  `toml:"debug"`
}

type WindowSettings struct {
	Title string  `toml:"title"`
	Scale float64 `toml:"scale"`
}

type AudioSettings struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
	Music   bool    `toml:"music"`
}

// LevelSettings: пустой Path означает встроенный уровень.
type LevelSettings struct {
	Path string `toml:"path"`
}

type DebugSettings struct {
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	PprofAddr string `toml:"pprof_addr"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{Title: "Bubble Shooter", Scale: 1.0},
		Audio:  AudioSettings{Enabled: true, Volume: 0.5, Music: true},
		Debug:  DebugSettings{LogLevel: "info"},
	}
}

// LoadSettings читает TOML-файл поверх значений по умолчанию.
// Отсутствующий файл ошибкой не считается.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1.0
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	return s, nil
}

// SlogLevel переводит строковый уровень логирования в slog.Level.
func (d DebugSettings) SlogLevel() slog.Level {
	switch strings.ToLower(d.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SaveSettings записывает настройки в TOML, например чтобы сгенерировать шаблон.
func SaveSettings(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
