// internal/event/types.go
package event

const (
	ProjectileFired   EventType = "ProjectileFired"   // Data: ProjectileData
	ProjectileBounced EventType = "ProjectileBounced" // Data: ProjectileData
	ProjectileExpired EventType = "ProjectileExpired" // Data: ProjectileData
	PatrollerKilled   EventType = "PatrollerKilled"   // Data: PatrollerData
	RoundWon          EventType = "RoundWon"          // Data: RoundData
	RoundLost         EventType = "RoundLost"         // Data: RoundData
	RoundStarted      EventType = "RoundStarted"      // Data: RoundData, в том числе после сброса
)

// ProjectileData — полезная нагрузка событий снаряда.
type ProjectileData struct {
	RoundID string
	ID      uint32
	X, Y    float64
}

// PatrollerData — какая цель убита и сколько ещё живы.
type PatrollerData struct {
	RoundID string
	Index   int
	Left    int
}

// RoundData — сводка раунда на момент события.
type RoundData struct {
	RoundID string
	Ammo    int
	Phase   string
}
