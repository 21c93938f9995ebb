package game

// TerminalPolicy decides what follows the second setup round.
type TerminalPolicy int

const (
	// ContinueToProduction loops production and build turns forever.
	ContinueToProduction TerminalPolicy = iota
	// EndAfterSetup moves to the absorbing Done phase.
	EndAfterSetup
)

func (p TerminalPolicy) String() string {
	if p == EndAfterSetup {
		return "done"
	}
	return "production"
}

// SamplingPolicy decides how board generation draws from the pools.
type SamplingPolicy int

const (
	// WithReplacement draws every slot independently, so a board may hold
	// any number of deserts.
	WithReplacement SamplingPolicy = iota
	// FixedMultiset shuffles the multiset the pool weights describe: 19
	// terrains with one desert, 18 chits and 30 harbor entries.
	FixedMultiset
)

func (p SamplingPolicy) String() string {
	if p == FixedMultiset {
		return "permutation"
	}
	return "replacement"
}

type Rules struct {
	Terminal TerminalPolicy
	Sampling SamplingPolicy
}

func NewStandardRules() Rules {
	return Rules{
		Terminal: ContinueToProduction,
		Sampling: WithReplacement,
	}
}

var (
	RoadCost       = Hand{Brick: 1, Lumber: 1}
	SettlementCost = Hand{Brick: 1, Wool: 1, Grain: 1, Lumber: 1}
	CityCost       = Hand{Ore: 3, Grain: 2}
)
