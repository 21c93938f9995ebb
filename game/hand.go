package game

import (
	"fmt"
	"strings"
)

// Hand counts a player's resources, indexed by Resource.
type Hand [ResourceCount]int

// Covers reports whether the hand can pay cost.
func (h Hand) Covers(cost Hand) bool {
	for r, n := range cost {
		if h[r] < n {
			return false
		}
	}
	return true
}

// Debit pays cost, or leaves the hand untouched if it cannot.
func (h *Hand) Debit(cost Hand) error {
	if !h.Covers(cost) {
		return ErrInsufficientResources
	}
	for r, n := range cost {
		h[r] -= n
	}
	return nil
}

func (h *Hand) Credit(r Resource, n int) {
	h[r] += n
}

func (h Hand) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

func (h Hand) String() string {
	parts := make([]string, 0, ResourceCount)
	for _, r := range Resources {
		parts = append(parts, fmt.Sprintf("%s=%d", r, h[r]))
	}
	return strings.Join(parts, " ")
}

// Hands holds one Hand per player color.
type Hands [PlayerCount]Hand

// Of returns the hand of color c.
func (hs *Hands) Of(c Color) *Hand {
	return &hs[c-1]
}
