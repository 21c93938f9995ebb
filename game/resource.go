package game

// Resource is one of the five producible goods.
type Resource int

const (
	Brick Resource = iota
	Wool
	Ore
	Grain
	Lumber
)

const ResourceCount = 5

var Resources = [ResourceCount]Resource{Brick, Wool, Ore, Grain, Lumber}

func (r Resource) String() string {
	switch r {
	case Brick:
		return "brick"
	case Wool:
		return "wool"
	case Ore:
		return "ore"
	case Grain:
		return "grain"
	case Lumber:
		return "lumber"
	}
	return "unknown"
}

// Terrain is the kind of a tile.
type Terrain int

const (
	Hills Terrain = iota
	Pasture
	Mountains
	Fields
	Forest
	Desert
)

func (t Terrain) String() string {
	switch t {
	case Hills:
		return "hills"
	case Pasture:
		return "pasture"
	case Mountains:
		return "mountains"
	case Fields:
		return "fields"
	case Forest:
		return "forest"
	case Desert:
		return "desert"
	}
	return "unknown"
}

// RobberHome reports whether the robber starts on this terrain. Such tiles
// never carry a chit and never produce.
func (t Terrain) RobberHome() bool {
	return t == Desert
}

// Resource returns what the terrain produces, false for the desert.
func (t Terrain) Resource() (Resource, bool) {
	switch t {
	case Hills:
		return Brick, true
	case Pasture:
		return Wool, true
	case Mountains:
		return Ore, true
	case Fields:
		return Grain, true
	case Forest:
		return Lumber, true
	}
	return 0, false
}

var TerrainPool = []Weighted[Terrain]{
	{Hills, 3},
	{Pasture, 4},
	{Mountains, 3},
	{Fields, 4},
	{Forest, 4},
	{Desert, 1},
}

// Chit is a production number bound to a tile. NoChit marks its absence.
type Chit int

const NoChit Chit = 0

var ChitPool = []Weighted[Chit]{
	{2, 1}, {3, 2}, {4, 2}, {5, 2}, {6, 2},
	{8, 2}, {9, 2}, {10, 2}, {11, 2}, {12, 1},
}

// Harbor is the trade marker at a harbor position. NoHarbor marks an empty one.
type Harbor int

const (
	NoHarbor Harbor = iota
	BrickHarbor
	WoolHarbor
	OreHarbor
	GrainHarbor
	LumberHarbor
	AnyHarbor
)

var HarborPool = []Weighted[Harbor]{
	{NoHarbor, 21},
	{BrickHarbor, 1},
	{WoolHarbor, 1},
	{OreHarbor, 1},
	{GrainHarbor, 1},
	{LumberHarbor, 1},
	{AnyHarbor, 4},
}

// Tag is the presentation-neutral name of the harbor slot.
func (h Harbor) Tag() string {
	switch h {
	case NoHarbor:
		return "empty"
	case BrickHarbor:
		return "harbor:brick"
	case WoolHarbor:
		return "harbor:wool"
	case OreHarbor:
		return "harbor:ore"
	case GrainHarbor:
		return "harbor:grain"
	case LumberHarbor:
		return "harbor:lumber"
	case AnyHarbor:
		return "harbor:any"
	}
	return "unknown"
}
