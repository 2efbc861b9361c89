// internal/defs/types.go
package defs

// RectDef is an axis-aligned rectangle in screen pixels.
type RectDef struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// ActorDef holds the player's starting placement. The actor always stands on the ground line.
type ActorDef struct {
	X     int     `json:"x"`
	Angle float64 `json:"angle"`
}

// PatrollerDef describes one target. Speed 0 means stationary; Left/Right are ignored then.
type PatrollerDef struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Speed int `json:"speed,omitempty"`
	Left  int `json:"left,omitempty"`
	Right int `json:"right,omitempty"`
}

// LevelDefinition holds all the static data for one arena layout.
type LevelDefinition struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Ammo       int            `json:"ammo"`
	Actor      ActorDef       `json:"actor"`
	Obstacles  []RectDef      `json:"obstacles"`
	Patrollers []PatrollerDef `json:"patrollers"`
}
