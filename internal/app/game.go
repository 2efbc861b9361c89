// internal/app/game.go
package app

import (
	"log/slog"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/event"
	"go-bubble-shooter/internal/input"
	"go-bubble-shooter/internal/system"
)

// Game is the simulation controller. It exclusively owns the current round
// and advances it one tick at a time.
type Game struct {
	Level            defs.LevelDefinition
	Round            *entity.Round
	EventDispatcher  *event.Dispatcher
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem

	ticks    uint64
	lastSnap entity.Snapshot
}

// NewGame initializes a new game instance with a fresh round of the given level.
// A nil logger disables lifecycle logging.
func NewGame(level defs.LevelDefinition, logger *slog.Logger) *Game {
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Level:            level,
		EventDispatcher:  eventDispatcher,
		MovementSystem:   system.NewMovementSystem(),
		ProjectileSystem: system.NewProjectileSystem(eventDispatcher),
		CombatSystem:     system.NewCombatSystem(eventDispatcher),
		StateSystem:      system.NewStateSystem(eventDispatcher),
		RenderSystem:     system.NewRenderSystem(),
	}

	if logger != nil {
		listener := &GameEventListener{game: g, logger: logger}
		eventDispatcher.SubscribeAll(listener,
			event.RoundStarted,
			event.PatrollerKilled,
			event.ProjectileExpired,
			event.RoundWon,
			event.RoundLost,
		)
	}

	g.Reset()
	return g
}

// Reset discards the whole round and builds a new one from the level definition.
func (g *Game) Reset() {
	g.Round = entity.NewRound(g.Level)
	g.lastSnap = g.Round.Snapshot()
	g.EventDispatcher.Dispatch(event.Event{Type: event.RoundStarted, Data: system.RoundData(g.Round)})
}

// Tick advances the simulation by exactly one step and returns the settled snapshot.
// Order matters for determinism:
// fire, reset, actor, patrollers, projectiles, cleanup, hits, win, lose.
func (g *Game) Tick(ctx *Context) entity.Snapshot {
	g.ticks++
	now := ctx.Clock.NowMillis()
	frame := input.NewFrame(ctx.Input.Keys(), ctx.Input.DrainActions())

	for i := 0; i < frame.FireCount; i++ {
		if !g.ProjectileSystem.Fire(g.Round, now) {
			break
		}
	}

	if frame.ResetWanted {
		g.Reset()
		return g.lastSnap
	}

	if g.Round.Phase == component.Playing {
		g.MovementSystem.UpdateActor(g.Round.Actor, frame.Keys)
		g.MovementSystem.UpdatePatrollers(g.Round.Patrollers)
		g.ProjectileSystem.Update(g.Round, now)
		g.ProjectileSystem.RemoveDead(g.Round)
		g.CombatSystem.ResolveHits(g.Round)
		g.StateSystem.Check(g.Round)
	}

	g.lastSnap = g.Round.Snapshot()
	return g.lastSnap
}

// Frame runs one tick and, if the context has a renderer, draws and presents it.
func (g *Game) Frame(ctx *Context) entity.Snapshot {
	snap := g.Tick(ctx)
	if ctx.Renderer != nil {
		g.RenderSystem.Frame(ctx.Renderer, snap)
	}
	return snap
}

// Snapshot returns the state settled by the last tick.
func (g *Game) Snapshot() entity.Snapshot {
	return g.lastSnap
}

// Ticks returns how many ticks have been simulated since the game was created.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Phase returns the current round phase.
func (g *Game) Phase() component.Phase {
	return g.Round.Phase
}

// GameEventListener logs round lifecycle events.
type GameEventListener struct {
	game   *Game
	logger *slog.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.RoundData:
		switch e.Type {
		case event.RoundStarted:
			l.logger.Info("round started", "round", data.RoundID, "ammo", data.Ammo)
		case event.RoundWon:
			l.logger.Info("round won", "round", data.RoundID, "ammo", data.Ammo, "tick", l.game.ticks)
		case event.RoundLost:
			l.logger.Info("round lost", "round", data.RoundID, "tick", l.game.ticks)
		}
	case event.PatrollerData:
		l.logger.Info("patroller killed", "round", data.RoundID, "index", data.Index, "left", data.Left)
	case event.ProjectileData:
		l.logger.Debug("projectile expired", "round", data.RoundID, "id", data.ID)
	}
}
