package game

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/slices"
)

const (
	TileCount     = 19
	HarborCount   = 30
	RoadCount     = 72
	BuildingCount = 54
)

// Position is a layout coordinate. Only the presentation layer interprets it.
type Position struct {
	X, Y float64
}

// Orientation is the visual class of a road.
type Orientation int

const (
	Vertical Orientation = iota
	Rising
	Falling
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// Map is the static topology of the board. Every table is indexed by board
// index and never changes once CreateMap returns.
type Map struct {
	TilePositions     [TileCount]Position
	HarborPositions   [HarborCount]Position
	RoadPositions     [RoadCount]Position
	BuildingPositions [BuildingCount]Position
	RoadOrientations  [RoadCount]Orientation

	RoadRoads         [RoadCount][]int     // roads sharing a vertex
	RoadBuildings     [RoadCount][2]int    // the two vertices of a road
	TileBuildings     [TileCount][]int     // the six corners of a tile
	BuildingTiles     [BuildingCount][]int // 1-3 tiles
	BuildingRoads     [BuildingCount][]int // 2-3 roads
	BuildingBuildings [BuildingCount][]int // vertices one road away
}

var (
	standardMap *Map
	mapOnce     sync.Once
)

// CreateMap returns the standard 19 tile board topology. It is derived from
// the hex geometry on first use and shared afterwards.
func CreateMap() *Map {
	mapOnce.Do(func() {
		m, err := buildMap()
		if err != nil {
			panic(err)
		}
		standardMap = m
	})
	return standardMap
}

// Corner offsets of a pointy-top hex, clockwise from the top.
var cornerOffsets = [6]Position{
	{0, 63}, {55, 32}, {55, -32}, {0, -63}, {-55, -32}, {-55, 32},
}

type edge struct{ a, b int }

func buildMap() (*Map, error) {
	m := &Map{
		TilePositions:     tilePositions,
		HarborPositions:   harborPositions,
		BuildingPositions: buildingPositions,
	}

	seen := make(map[edge]bool)
	var edges []edge
	for t, center := range m.TilePositions {
		var corners [6]int
		for i, off := range cornerOffsets {
			b := m.buildingAt(Position{center.X + off.X, center.Y + off.Y})
			if b < 0 {
				return nil, fmt.Errorf("%w: tile %d has no vertex at corner %d", ErrInvalidMap, t, i)
			}
			corners[i] = b
			m.TileBuildings[t] = append(m.TileBuildings[t], b)
			m.BuildingTiles[b] = append(m.BuildingTiles[b], t)
		}
		for i := range corners {
			e := edge{corners[i], corners[(i+1)%len(corners)]}
			if e.a > e.b {
				e.a, e.b = e.b, e.a
			}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	if len(edges) != RoadCount {
		return nil, fmt.Errorf("%w: derived %d edges, want %d", ErrInvalidMap, len(edges), RoadCount)
	}

	// Roads are numbered top to bottom, then left to right.
	slices.SortFunc(edges, func(e1, e2 edge) int {
		p1, p2 := m.midpoint(e1), m.midpoint(e2)
		switch {
		case p1.Y > p2.Y:
			return -1
		case p1.Y < p2.Y:
			return 1
		case p1.X < p2.X:
			return -1
		case p1.X > p2.X:
			return 1
		}
		return 0
	})

	for r, e := range edges {
		m.RoadBuildings[r] = [2]int{e.a, e.b}
		m.RoadPositions[r] = m.midpoint(e)
		m.RoadOrientations[r] = orientation(m.BuildingPositions[e.a], m.BuildingPositions[e.b])
		m.BuildingRoads[e.a] = append(m.BuildingRoads[e.a], r)
		m.BuildingRoads[e.b] = append(m.BuildingRoads[e.b], r)
		m.BuildingBuildings[e.a] = append(m.BuildingBuildings[e.a], e.b)
		m.BuildingBuildings[e.b] = append(m.BuildingBuildings[e.b], e.a)
	}
	for r, ends := range m.RoadBuildings {
		for _, b := range ends {
			for _, other := range m.BuildingRoads[b] {
				if other != r {
					m.RoadRoads[r] = append(m.RoadRoads[r], other)
				}
			}
		}
		slices.Sort(m.RoadRoads[r])
	}
	for b := range m.BuildingBuildings {
		slices.Sort(m.BuildingBuildings[b])
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) buildingAt(p Position) int {
	for i, q := range m.BuildingPositions {
		if math.Abs(p.X-q.X) < 0.5 && math.Abs(p.Y-q.Y) < 0.5 {
			return i
		}
	}
	return -1
}

func (m *Map) midpoint(e edge) Position {
	a, b := m.BuildingPositions[e.a], m.BuildingPositions[e.b]
	return Position{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

func orientation(a, b Position) Orientation {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 0:
		return Vertical
	case dx*dy > 0:
		return Rising
	default:
		return Falling
	}
}

// Validate checks table sizes and that every adjacency relation is symmetric.
func (m *Map) Validate() error {
	roadBuildings := make([][]int, RoadCount)
	for r, ends := range m.RoadBuildings {
		if ends[0] == ends[1] {
			return fmt.Errorf("%w: road %d is a loop", ErrInvalidMap, r)
		}
		roadBuildings[r] = ends[:]
	}

	checks := []struct {
		name        string
		left, right [][]int
	}{
		{"road-road", m.RoadRoads[:], m.RoadRoads[:]},
		{"building-building", m.BuildingBuildings[:], m.BuildingBuildings[:]},
		{"road-building", roadBuildings, m.BuildingRoads[:]},
		{"building-road", m.BuildingRoads[:], roadBuildings},
		{"tile-building", m.TileBuildings[:], m.BuildingTiles[:]},
		{"building-tile", m.BuildingTiles[:], m.TileBuildings[:]},
	}
	for _, c := range checks {
		if err := paired(c.name, c.left, c.right); err != nil {
			return err
		}
	}

	for b := 0; b < BuildingCount; b++ {
		if n := len(m.BuildingRoads[b]); n < 2 || n > 3 {
			return fmt.Errorf("%w: building %d touches %d roads", ErrInvalidMap, b, n)
		}
		if n := len(m.BuildingBuildings[b]); n < 2 || n > 3 {
			return fmt.Errorf("%w: building %d has %d neighbours", ErrInvalidMap, b, n)
		}
		if n := len(m.BuildingTiles[b]); n < 1 || n > 3 {
			return fmt.Errorf("%w: building %d touches %d tiles", ErrInvalidMap, b, n)
		}
	}
	for t := 0; t < TileCount; t++ {
		if n := len(m.TileBuildings[t]); n != 6 {
			return fmt.Errorf("%w: tile %d has %d corners", ErrInvalidMap, t, n)
		}
	}
	return nil
}

// paired reports an error unless j in left[i] implies i in right[j].
func paired(name string, left, right [][]int) error {
	for i, adj := range left {
		for _, j := range adj {
			if j < 0 || j >= len(right) || !slices.Contains(right[j], i) {
				return fmt.Errorf("%w: %s: %d lists %d without the reverse", ErrInvalidMap, name, i, j)
			}
		}
	}
	return nil
}

// AreAdjacent checks if two building slots are one road apart.
func (m *Map) AreAdjacent(building1, building2 int) bool {
	return slices.Contains(m.BuildingBuildings[building1], building2)
}

var tilePositions = [TileCount]Position{
	{-110, 190}, {0, 190}, {110, 190},
	{-165, 95}, {-55, 95}, {55, 95}, {165, 95},
	{-220, 0}, {-110, 0}, {0, 0}, {110, 0}, {220, 0},
	{-165, -95}, {-55, -95}, {55, -95}, {165, -95},
	{-110, -190}, {0, -190}, {110, -190},
}

var harborPositions = [HarborCount]Position{
	{-151.25, 261.25}, {-68.75, 261.25}, {-41.25, 261.25}, {41.25, 261.25},
	{68.75, 261.25}, {151.25, 261.25}, {192.5, 190}, {206.25, 166.25},
	{247.5, 95}, {261.25, 71.25}, {302.5, 0}, {261.25, -71.25},
	{247.5, -95}, {206.25, -166.25}, {192.5, -190}, {151.25, -261.25},
	{68.75, -261.25}, {41.25, -261.25}, {-41.25, -261.25}, {-68.75, -261.25},
	{-151.25, -261.25}, {-192.5, -190}, {-206.25, -166.25}, {-247.5, -95},
	{-261.25, -71.25}, {-302.5, 0}, {-261.25, 71.25}, {-247.5, 95},
	{-206.25, 166.25}, {-192.5, 190},
}

var buildingPositions = [BuildingCount]Position{
	{-165, 222}, {-110, 253}, {-55, 222}, {0, 253}, {55, 222}, {110, 253}, {165, 222},
	{-220, 127}, {-165, 158}, {-110, 127}, {-55, 158}, {0, 127}, {55, 158}, {110, 127},
	{165, 158}, {220, 127},
	{-275, 32}, {-220, 63}, {-165, 32}, {-110, 63}, {-55, 32}, {0, 63}, {55, 32},
	{110, 63}, {165, 32}, {220, 63}, {275, 32},
	{-275, -32}, {-220, -63}, {-165, -32}, {-110, -63}, {-55, -32}, {0, -63}, {55, -32},
	{110, -63}, {165, -32}, {220, -63}, {275, -32},
	{-220, -127}, {-165, -158}, {-110, -127}, {-55, -158}, {0, -127}, {55, -158},
	{110, -127}, {165, -158}, {220, -127},
	{-165, -222}, {-110, -253}, {-55, -222}, {0, -253}, {55, -222}, {110, -253}, {165, -222},
}
