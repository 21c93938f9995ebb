package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type BuildingKind int

const (
	NoBuilding BuildingKind = iota
	Settlement
	City
)

func (k BuildingKind) String() string {
	switch k {
	case Settlement:
		return "settlement"
	case City:
		return "city"
	}
	return "empty"
}

// Multiplier is how many resources the building collects per matching tile.
func (k BuildingKind) Multiplier() int {
	switch k {
	case Settlement:
		return 1
	case City:
		return 2
	}
	return 0
}

// Building is the content of a vertex slot. The zero value is empty.
type Building struct {
	Kind  BuildingKind
	Color Color
}

func (b Building) Empty() bool {
	return b.Kind == NoBuilding
}

// Tag names the slot state for the presentation layer, e.g. "city:Red".
func (b Building) Tag() string {
	if b.Empty() {
		return "empty"
	}
	return fmt.Sprintf("%s:%s", b.Kind, b.Color)
}

// Road is the content of an edge slot. The zero value is empty.
type Road struct {
	Color Color
}

func (r Road) Empty() bool {
	return r.Color == NoColor
}

func (r Road) Tag() string {
	if r.Empty() {
		return "empty"
	}
	return "road:" + r.Color.String()
}

// Board holds every slot collection. Tiles, chits, robbers and harbors are
// fixed at generation; roads and buildings change through GameState only.
type Board struct {
	Map       *Map
	Tiles     [TileCount]Terrain
	Chits     [TileCount]Chit
	Robbers   [TileCount]bool
	Harbors   [HarborCount]Harbor
	Roads     [RoadCount]Road
	Buildings [BuildingCount]Building
}

// GenerateBoard samples terrain, chits and harbors for m. Chits are
// suppressed on robber-home tiles and every such tile holds a robber.
func GenerateBoard(m *Map, policy SamplingPolicy, rng *rand.Rand) (*Board, error) {
	terrains, err := NewSampler(TerrainPool, rng)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	chits, err := NewSampler(ChitPool, rng)
	if err != nil {
		return nil, fmt.Errorf("chits: %w", err)
	}
	harbors, err := NewSampler(HarborPool, rng)
	if err != nil {
		return nil, fmt.Errorf("harbors: %w", err)
	}

	tiles, numbers, ports := drawAll(terrains, chits, harbors, policy)
	if len(tiles) != TileCount {
		return nil, fmt.Errorf("terrain: %w: %d tiles for %d slots", ErrInvalidPool, len(tiles), TileCount)
	}
	if len(ports) != HarborCount {
		return nil, fmt.Errorf("harbors: %w: %d harbors for %d slots", ErrInvalidPool, len(ports), HarborCount)
	}

	b := &Board{Map: m}
	next := 0
	for i, t := range tiles {
		b.Tiles[i] = t
		b.Robbers[i] = t.RobberHome()
		if t.RobberHome() {
			continue
		}
		if policy == WithReplacement {
			b.Chits[i] = numbers[i]
			continue
		}
		// the shuffled chits are dealt to producing tiles in order
		if next >= len(numbers) {
			return nil, fmt.Errorf("chits: %w: ran out after %d tiles", ErrInvalidPool, next)
		}
		b.Chits[i] = numbers[next]
		next++
	}
	copy(b.Harbors[:], ports)
	return b, nil
}

func drawAll(terrains *Sampler[Terrain], chits *Sampler[Chit], harbors *Sampler[Harbor], policy SamplingPolicy) ([]Terrain, []Chit, []Harbor) {
	if policy == FixedMultiset {
		return terrains.Permutation(), chits.Permutation(), harbors.Permutation()
	}
	return terrains.DrawN(TileCount), chits.DrawN(TileCount), harbors.DrawN(HarborCount)
}

// Producing reports the resource of tile t if it has a chit equal to total.
func (b *Board) Producing(t, total int) (Resource, bool) {
	if b.Chits[t] == NoChit || int(b.Chits[t]) != total {
		return 0, false
	}
	return b.Tiles[t].Resource()
}

// NeighbourOccupied reports whether any vertex next to building slot v holds a building.
func (b *Board) NeighbourOccupied(v int) bool {
	for _, n := range b.Map.BuildingBuildings[v] {
		if !b.Buildings[n].Empty() {
			return true
		}
	}
	return false
}
