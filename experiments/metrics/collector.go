package metrics

import (
	"sync/atomic"
	"time"

	"cotton/game"
)

type TurnMetric struct {
	Step     int
	Player   string // Color of the acting player
	Roll     int    // Dice total that opened the turn
	Built    int    // Pieces confirmed during the turn
	HandSize int    // Resources held when the turn ended
}

type GameMetric struct {
	ID            string
	StartingColor string
	Seed          uint64
	FinalPhase    string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Turns         int
	Intents       int
	Rejected      int
	Settlements   int
	Cities        int
	Roads         int
}

type Collector interface {
	Start(id string, seed uint64, starting game.Color)
	AddIntent()
	AddRejection()
	Complete(gs *game.GameState, turns int) GameMetric
}

type collector struct {
	id        string
	seed      uint64
	starting  game.Color
	startTime time.Time
	intents   atomic.Int32
	rejected  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id string, seed uint64, starting game.Color) {
	m.startTime = time.Now()
	m.id = id
	m.seed = seed
	m.starting = starting
	m.intents.Store(0)
	m.rejected.Store(0)
}

func (m *collector) AddIntent() {
	m.intents.Add(1)
}

func (m *collector) AddRejection() {
	m.rejected.Add(1)
}

func (m *collector) Complete(gs *game.GameState, turns int) GameMetric {
	end := time.Now()
	gm := GameMetric{
		ID:            m.id,
		StartingColor: m.starting.String(),
		Seed:          m.seed,
		FinalPhase:    gs.Turn.Phase.String(),
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
		Turns:         turns,
		Intents:       int(m.intents.Load()),
		Rejected:      int(m.rejected.Load()),
	}
	for _, b := range gs.Board.Buildings {
		switch b.Kind {
		case game.Settlement:
			gm.Settlements++
		case game.City:
			gm.Cities++
		}
	}
	for _, r := range gs.Board.Roads {
		if !r.Empty() {
			gm.Roads++
		}
	}
	return gm
}
