package game

// checkSettlementSite applies the occupancy and distance rules.
func (gs *GameState) checkSettlementSite(v int) error {
	if v < 0 || v >= BuildingCount {
		return ErrIllegalPlacement
	}
	if !gs.Board.Buildings[v].Empty() || gs.Board.NeighbourOccupied(v) {
		return ErrIllegalPlacement
	}
	return nil
}

// touchesOwnRoad reports whether a road next to vertex v belongs to c.
func (gs *GameState) touchesOwnRoad(v int, c Color) bool {
	for _, r := range gs.Board.Map.BuildingRoads[v] {
		if gs.Board.Roads[r].Color == c {
			return true
		}
	}
	return false
}

// extendsNetwork reports whether a road sharing a vertex with e belongs to c.
func (gs *GameState) extendsNetwork(e int, c Color) bool {
	for _, r := range gs.Board.Map.RoadRoads[e] {
		if gs.Board.Roads[r].Color == c {
			return true
		}
	}
	return false
}

// startsFromNewSettlement reports whether e touches a settlement of c that
// has no road yet, so every setup settlement gets exactly one road.
func (gs *GameState) startsFromNewSettlement(e int, c Color) bool {
	for _, v := range gs.Board.Map.RoadBuildings[e] {
		if gs.Board.Buildings[v].Color != c {
			continue
		}
		bare := true
		for _, r := range gs.Board.Map.BuildingRoads[v] {
			if r != e && !gs.Board.Roads[r].Empty() {
				bare = false
				break
			}
		}
		if bare {
			return true
		}
	}
	return false
}

// CheckBuilding reports whether the acting player may place a settlement at
// vertex v in the current phase, without changing anything.
func (gs *GameState) CheckBuilding(v int) error {
	switch {
	case gs.Turn.Phase == SetupPhase && !gs.Turn.Road:
		return gs.checkSettlementSite(v)
	case gs.Turn.Phase == BuildPhase:
		c := gs.CurrentColor()
		if err := gs.checkSettlementSite(v); err != nil {
			return err
		}
		if !gs.touchesOwnRoad(v, c) {
			return ErrIllegalPlacement
		}
		if !gs.Hands.Of(c).Covers(SettlementCost) {
			return ErrInsufficientResources
		}
		return nil
	}
	return ErrInvalidTurnAction
}

// AttemptBuilding accepts a settlement at v. During setup the settlement is
// placed at once. During the build phase the cost is charged and the turn
// waits in BuildSettlementPhase for ConfirmBuilding.
func (gs *GameState) AttemptBuilding(v int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if err := gs.CheckBuilding(v); err != nil {
		return err
	}
	if gs.Turn.Phase == SetupPhase {
		return gs.ConfirmBuilding(v)
	}
	if err := gs.Hands.Of(gs.CurrentColor()).Debit(SettlementCost); err != nil {
		return err
	}
	gs.pending = pending{kind: pendingSettlement, index: v}
	gs.Turn = BuildSettlement(gs.Turn.Player)
	return nil
}

// ConfirmBuilding writes a settlement for the acting player and advances the
// turn. An occupied slot is always rejected. A second-round setup settlement
// collects one resource from each adjacent producing tile.
func (gs *GameState) ConfirmBuilding(v int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if v < 0 || v >= BuildingCount || !gs.Board.Buildings[v].Empty() {
		return ErrIllegalPlacement
	}
	switch gs.Turn.Phase {
	case SetupPhase:
		if gs.Turn.Road {
			return ErrInvalidTurnAction
		}
		if err := gs.checkSettlementSite(v); err != nil {
			return err
		}
	case BuildSettlementPhase:
		if gs.pending != (pending{kind: pendingSettlement, index: v}) {
			return ErrIllegalPlacement
		}
	default:
		return ErrInvalidTurnAction
	}

	c := gs.CurrentColor()
	gs.Board.Buildings[v] = Building{Kind: Settlement, Color: c}
	if gs.Turn.Phase == SetupPhase && gs.Turn.Round2 {
		gs.creditStartingResources(v, c)
	}
	gs.pending = pending{}
	gs.advance()
	return nil
}

// CheckCity reports whether the acting player may upgrade their settlement
// at v.
func (gs *GameState) CheckCity(v int) error {
	if gs.Turn.Phase != BuildPhase {
		return ErrInvalidTurnAction
	}
	c := gs.CurrentColor()
	if v < 0 || v >= BuildingCount || gs.Board.Buildings[v] != (Building{Kind: Settlement, Color: c}) {
		return ErrIllegalPlacement
	}
	if !gs.Hands.Of(c).Covers(CityCost) {
		return ErrInsufficientResources
	}
	return nil
}

// AttemptCity charges an upgrade of the settlement at v and waits in
// BuildSettlementPhase for ConfirmCity.
func (gs *GameState) AttemptCity(v int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if err := gs.CheckCity(v); err != nil {
		return err
	}
	if err := gs.Hands.Of(gs.CurrentColor()).Debit(CityCost); err != nil {
		return err
	}
	gs.pending = pending{kind: pendingCity, index: v}
	gs.Turn = BuildSettlement(gs.Turn.Player)
	return nil
}

// ConfirmCity replaces the pending settlement with a city.
func (gs *GameState) ConfirmCity(v int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if gs.Turn.Phase != BuildSettlementPhase {
		return ErrInvalidTurnAction
	}
	if gs.pending != (pending{kind: pendingCity, index: v}) {
		return ErrIllegalPlacement
	}
	gs.Board.Buildings[v].Kind = City
	gs.pending = pending{}
	gs.advance()
	return nil
}

// CheckRoad reports whether the acting player may place a road on edge e.
func (gs *GameState) CheckRoad(e int) error {
	if gs.Turn.Phase != BuildPhase && !(gs.Turn.Phase == SetupPhase && gs.Turn.Road) {
		return ErrInvalidTurnAction
	}
	if e < 0 || e >= RoadCount || !gs.Board.Roads[e].Empty() {
		return ErrIllegalPlacement
	}
	c := gs.CurrentColor()
	if gs.Turn.Phase == SetupPhase {
		if !gs.startsFromNewSettlement(e, c) {
			return ErrIllegalPlacement
		}
		return nil
	}
	if !gs.extendsNetwork(e, c) {
		return ErrIllegalPlacement
	}
	if !gs.Hands.Of(c).Covers(RoadCost) {
		return ErrInsufficientResources
	}
	return nil
}

// AttemptRoad accepts a road on e. During setup it is placed at once,
// otherwise the cost is charged and the turn waits in BuildRoadPhase.
func (gs *GameState) AttemptRoad(e int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if err := gs.CheckRoad(e); err != nil {
		return err
	}
	if gs.Turn.Phase == SetupPhase {
		return gs.ConfirmRoad(e)
	}
	if err := gs.Hands.Of(gs.CurrentColor()).Debit(RoadCost); err != nil {
		return err
	}
	gs.pending = pending{kind: pendingRoad, index: e}
	gs.Turn = BuildRoad(gs.Turn.Player)
	return nil
}

// ConfirmRoad writes a road for the acting player and advances the turn.
func (gs *GameState) ConfirmRoad(e int) error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if e < 0 || e >= RoadCount || !gs.Board.Roads[e].Empty() {
		return ErrIllegalPlacement
	}
	switch gs.Turn.Phase {
	case SetupPhase:
		if !gs.Turn.Road {
			return ErrInvalidTurnAction
		}
		if !gs.startsFromNewSettlement(e, gs.CurrentColor()) {
			return ErrIllegalPlacement
		}
	case BuildRoadPhase:
		if gs.pending != (pending{kind: pendingRoad, index: e}) {
			return ErrIllegalPlacement
		}
	default:
		return ErrInvalidTurnAction
	}

	gs.Board.Roads[e] = Road{Color: gs.CurrentColor()}
	gs.pending = pending{}
	gs.advance()
	return nil
}

// LegalBuildings flags every vertex where CheckBuilding succeeds.
func (gs *GameState) LegalBuildings() [BuildingCount]bool {
	var legal [BuildingCount]bool
	for v := range legal {
		legal[v] = gs.CheckBuilding(v) == nil
	}
	return legal
}

// LegalCities flags every vertex where CheckCity succeeds.
func (gs *GameState) LegalCities() [BuildingCount]bool {
	var legal [BuildingCount]bool
	for v := range legal {
		legal[v] = gs.CheckCity(v) == nil
	}
	return legal
}

// LegalRoads flags every edge where CheckRoad succeeds.
func (gs *GameState) LegalRoads() [RoadCount]bool {
	var legal [RoadCount]bool
	for e := range legal {
		legal[e] = gs.CheckRoad(e) == nil
	}
	return legal
}
