// internal/utils/clock.go
package utils

import "time"

// GameClock — игровое время, которое идёт только пока вызывается Advance.
// На паузе снаряды не «стареют».
type GameClock struct {
	elapsed float64 // секунды
}

func NewGameClock() *GameClock {
	return &GameClock{}
}

// Advance сдвигает время на deltaTime секунд.
func (c *GameClock) Advance(deltaTime float64) {
	if deltaTime > 0 {
		c.elapsed += deltaTime
	}
}

// NowMillis — монотонное время в миллисекундах.
func (c *GameClock) NowMillis() int64 {
	return int64(c.elapsed * 1000)
}

// WallClock — время с момента создания по монотонным часам процесса.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}
