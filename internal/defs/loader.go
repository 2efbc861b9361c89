// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

//go:embed data/level.json
var defaultLevelJSON []byte

// ErrInvalidLevel is returned when a level file parses but describes an impossible layout.
var ErrInvalidLevel = errors.New("invalid level definition")

// DefaultLevel returns the compiled-in level.
func DefaultLevel() LevelDefinition {
	level, err := ParseLevel(defaultLevelJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded level is broken: %v", err))
	}
	return level
}

// LoadLevel reads a level file from disk. An empty path yields the compiled-in level.
func LoadLevel(path string, logger *slog.Logger) (LevelDefinition, error) {
	if path == "" {
		return DefaultLevel(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := ParseLevel(file)
	if err != nil {
		return LevelDefinition{}, err
	}
	if logger != nil {
		logger.Info("loaded level", "id", level.ID, "obstacles", len(level.Obstacles), "patrollers", len(level.Patrollers))
	}
	return level, nil
}

// ParseLevel unmarshals and validates a level definition.
func ParseLevel(data []byte) (LevelDefinition, error) {
	var level LevelDefinition
	if err := json.Unmarshal(data, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level definition: %w", err)
	}
	if err := level.Validate(); err != nil {
		return LevelDefinition{}, err
	}
	return level, nil
}

// Validate checks the preconditions the simulation relies on.
func (l LevelDefinition) Validate() error {
	if l.Ammo < 0 {
		return fmt.Errorf("%w: ammo %d is negative", ErrInvalidLevel, l.Ammo)
	}
	for i, o := range l.Obstacles {
		if o.W <= 0 || o.H <= 0 {
			return fmt.Errorf("%w: obstacle %d has size %dx%d", ErrInvalidLevel, i, o.W, o.H)
		}
	}
	for i, p := range l.Patrollers {
		if p.Speed < 0 {
			return fmt.Errorf("%w: patroller %d has negative speed", ErrInvalidLevel, i)
		}
		if p.Speed != 0 && p.Left > p.Right {
			return fmt.Errorf("%w: patroller %d patrol bounds inverted (%d > %d)", ErrInvalidLevel, i, p.Left, p.Right)
		}
	}
	return nil
}
