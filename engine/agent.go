package engine

import (
	"cotton/game"
	"cotton/gamemaster"
	"cotton/utils"

	"golang.org/x/exp/rand"
)

// RandomAgent picks uniformly among the slots on offer and, in a build
// phase, among the build modes that could lead to a placement.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Choose(gs *game.GameState, legal gamemaster.Legality) gamemaster.Intent {
	if gs.Turn.Phase == game.SetupPhase {
		if gs.Turn.Road {
			return a.pick(gamemaster.SelectRoad, legal.Roads[:])
		}
		return a.pick(gamemaster.SelectBuilding, legal.Buildings[:])
	}
	if gs.Turn.Phase != game.BuildPhase {
		return gamemaster.Intent{Kind: gamemaster.AdvanceTurn}
	}

	switch legal.Mode {
	case gamemaster.RoadMode:
		return a.pick(gamemaster.SelectRoad, legal.Roads[:])
	case gamemaster.SettlementMode, gamemaster.CityMode:
		return a.pick(gamemaster.SelectBuilding, legal.Buildings[:])
	}

	options := []gamemaster.IntentKind{gamemaster.AdvanceTurn}
	if roads := gs.LegalRoads(); utils.FindIndex(roads[:], true) >= 0 {
		options = append(options, gamemaster.EnterRoadMode)
	}
	if buildings := gs.LegalBuildings(); utils.FindIndex(buildings[:], true) >= 0 {
		options = append(options, gamemaster.EnterSettlementMode)
	}
	if cities := gs.LegalCities(); utils.FindIndex(cities[:], true) >= 0 {
		options = append(options, gamemaster.EnterCityMode)
	}
	return gamemaster.Intent{Kind: options[a.rng.Intn(len(options))]}
}

// pick selects one offered slot, or leaves the mode when nothing is offered.
func (a *RandomAgent) pick(kind gamemaster.IntentKind, flags []bool) gamemaster.Intent {
	slots := utils.Indices(flags)
	if len(slots) == 0 {
		return gamemaster.Intent{Kind: gamemaster.LeaveMode}
	}
	return gamemaster.Intent{Kind: kind, Index: slots[a.rng.Intn(len(slots))]}
}
