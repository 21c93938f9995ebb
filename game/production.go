package game

// rollDice draws two independent dice and returns their total.
func (gs *GameState) rollDice() int {
	return gs.rng.Intn(6) + 1 + gs.rng.Intn(6) + 1
}

// Produce credits every building owner for each adjacent tile whose chit
// equals total, scaled by the building's multiplier. It returns what each
// color gained.
func (gs *GameState) Produce(total int) Hands {
	var gained Hands
	for v, building := range gs.Board.Buildings {
		if building.Empty() {
			continue
		}
		for _, t := range gs.Board.Map.BuildingTiles[v] {
			res, ok := gs.Board.Producing(t, total)
			if !ok {
				continue
			}
			n := building.Kind.Multiplier()
			gs.Hands.Of(building.Color).Credit(res, n)
			gained.Of(building.Color).Credit(res, n)
		}
	}
	return gained
}

// creditStartingResources gives one resource per producing tile next to v.
func (gs *GameState) creditStartingResources(v int, c Color) {
	for _, t := range gs.Board.Map.BuildingTiles[v] {
		if res, ok := gs.Board.Tiles[t].Resource(); ok {
			gs.Hands.Of(c).Credit(res, 1)
		}
	}
}
