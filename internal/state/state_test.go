package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	game "go-bubble-shooter/internal/app"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/input"
	"go-bubble-shooter/internal/interfaces/mocks"
)

// togglePause отдаёт заранее заданную последовательность нажатий паузы.
type togglePause struct {
	presses []bool
}

func (p *togglePause) PauseRequested() bool {
	if len(p.presses) == 0 {
		return false
	}
	v := p.presses[0]
	p.presses = p.presses[1:]
	return v
}

func TestPauseFreezesRoundClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInputSource(ctrl)
	in.EXPECT().Keys().Return(input.Keys{}).AnyTimes()
	in.EXPECT().DrainActions().Return([]input.Action{input.Fire}).Times(1)
	in.EXPECT().DrainActions().Return(nil).AnyTimes()

	var paused []bool
	pause := &togglePause{presses: []bool{false, true, false, false, true, false}}
	g := game.NewGame(defs.DefaultLevel(), nil)
	sm := NewStateMachine()
	play := NewPlayState(sm, g, in, pause, func(p bool) { paused = append(paused, p) })
	sm.SetState(play)

	sm.Update(0.5) // выстрел, часы 500 мс
	require.Len(t, g.Round.Projectiles, 1)
	spawned := g.Round.Projectiles[0].SpawnedAt
	assert.Equal(t, int64(500), spawned)

	sm.Update(0.5) // пауза
	_, isPause := sm.Current().(*PauseState)
	require.True(t, isPause)
	ticks := g.Ticks()

	sm.Update(10) // на паузе ничего не идёт
	sm.Update(10)
	assert.Equal(t, ticks, g.Ticks())

	sm.Update(0.5) // снятие паузы
	assert.Same(t, play, sm.Current())

	sm.Update(0.5)
	assert.Equal(t, ticks+1, g.Ticks())
	assert.Equal(t, []bool{false, true, false}, paused)
}

func TestPauseStateDrawsOverGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	in := mocks.NewMockInputSource(ctrl)
	r := mocks.NewMockRenderer(ctrl)

	g := game.NewGame(defs.DefaultLevel(), nil)
	sm := NewStateMachine()
	play := NewPlayState(sm, g, in, nil, nil)
	ps := NewPauseState(sm, play, nil)

	r.EXPECT().DrawRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().DrawCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	r.EXPECT().DrawText("Bullets: 3", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	r.EXPECT().DrawText("PAUSED (P to resume)", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	ps.Draw(r)
}
