package game

import "fmt"

type Phase int

const (
	SetupPhase Phase = iota
	ProductionPhase
	BuildPhase
	BuildRoadPhase       // an accepted road waits for confirmation
	BuildSettlementPhase // an accepted settlement or city waits for confirmation
	DonePhase
)

var phaseNames = map[Phase]string{
	SetupPhase:           "Setup",
	ProductionPhase:      "Production",
	BuildPhase:           "Build",
	BuildRoadPhase:       "BuildRoad",
	BuildSettlementPhase: "BuildSettlement",
	DonePhase:            "Done",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Turn is the current phase plus the index of the acting player in the turn
// order. Round2 and Road only carry meaning during SetupPhase.
type Turn struct {
	Phase  Phase
	Player int
	Round2 bool
	Road   bool
}

func Setup(round2 bool, player int, road bool) Turn {
	return Turn{Phase: SetupPhase, Player: player, Round2: round2, Road: road}
}

func Production(player int) Turn      { return Turn{Phase: ProductionPhase, Player: player} }
func Build(player int) Turn           { return Turn{Phase: BuildPhase, Player: player} }
func BuildRoad(player int) Turn       { return Turn{Phase: BuildRoadPhase, Player: player} }
func BuildSettlement(player int) Turn { return Turn{Phase: BuildSettlementPhase, Player: player} }
func Done() Turn                      { return Turn{Phase: DonePhase} }

// InitialTurn is the first settlement of the first player.
func InitialTurn() Turn {
	return Setup(false, 0, false)
}

func (t Turn) String() string {
	switch t.Phase {
	case SetupPhase:
		return fmt.Sprintf("Setup{round2=%t player=%d road=%t}", t.Round2, t.Player, t.Road)
	case DonePhase:
		return "Done"
	}
	return fmt.Sprintf("%s{player=%d}", t.Phase, t.Player)
}

const lastPlayer = PlayerCount - 1

// Next is the turn transition function. Setup runs in snake order: forward
// through the players in round one, backwards in round two, a settlement and
// then a road for each.
func Next(t Turn, terminal TerminalPolicy) Turn {
	switch t.Phase {
	case SetupPhase:
		switch {
		case !t.Road:
			return Setup(t.Round2, t.Player, true)
		case !t.Round2 && t.Player == lastPlayer:
			return Setup(true, lastPlayer, false)
		case !t.Round2:
			return Setup(false, t.Player+1, false)
		case t.Player == 0:
			if terminal == EndAfterSetup {
				return Done()
			}
			return Production(0)
		default:
			return Setup(true, t.Player-1, false)
		}
	case ProductionPhase:
		return Build(t.Player)
	case BuildPhase:
		if t.Player == lastPlayer {
			return Production(0)
		}
		return Production(t.Player + 1)
	case BuildRoadPhase, BuildSettlementPhase:
		return Build(t.Player)
	}
	return Done()
}

// Status renders the one-line description of whose move it is.
func Status(t Turn, players Players) string {
	switch t.Phase {
	case SetupPhase:
		round, piece := 1, "settlement"
		if t.Round2 {
			round = 2
		}
		if t.Road {
			piece = "road"
		}
		return fmt.Sprintf("Setup round %d: %s: build a %s", round, players[t.Player], piece)
	case ProductionPhase, BuildPhase:
		return fmt.Sprintf("%s: build and trade", players[t.Player])
	case BuildRoadPhase:
		return fmt.Sprintf("%s: build a road", players[t.Player])
	case BuildSettlementPhase:
		return fmt.Sprintf("%s: build a settlement", players[t.Player])
	}
	return "Game over"
}
