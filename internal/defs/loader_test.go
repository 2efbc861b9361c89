package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	level := DefaultLevel()

	assert.Equal(t, "LEVEL_ONE", level.ID)
	assert.Equal(t, 3, level.Ammo)
	assert.Equal(t, ActorDef{X: 40, Angle: 45}, level.Actor)
	assert.Equal(t, []RectDef{
		{X: 200, Y: 340, W: 350, H: 20},
		{X: 520, Y: 430, W: 120, H: 20},
		{X: 420, Y: 320, W: 20, H: 150},
	}, level.Obstacles)
	assert.Equal(t, []PatrollerDef{
		{X: 220, Y: 305, Speed: 1, Left: 210, Right: 520},
		{X: 540, Y: 395},
	}, level.Patrollers)
}

func TestParseLevelRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"not json", `{"ammo":`, false},
		{"negative ammo", `{"ammo": -1}`, true},
		{"empty obstacle", `{"ammo": 1, "obstacles": [{"x": 1, "y": 1, "w": 0, "h": 5}]}`, true},
		{"inverted patrol", `{"ammo": 1, "patrollers": [{"x": 10, "y": 10, "speed": 1, "left": 50, "right": 20}]}`, true},
		{"negative speed", `{"ammo": 1, "patrollers": [{"x": 10, "y": 10, "speed": -1}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidLevel))
		})
	}
}

func TestStationaryPatrollerIgnoresBounds(t *testing.T) {
	level, err := ParseLevel([]byte(`{"ammo": 2, "patrollers": [{"x": 10, "y": 10, "left": 50, "right": 20}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, level.Ammo)
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel("", nil)
	require.NoError(t, err)
	assert.Equal(t, "LEVEL_ONE", level.ID)

	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "CUSTOM", "ammo": 5, "actor": {"x": 100, "angle": 30}}`), 0o644))
	level, err = LoadLevel(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM", level.ID)
	assert.Equal(t, 5, level.Ammo)
	assert.Empty(t, level.Patrollers)

	_, err = LoadLevel(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
