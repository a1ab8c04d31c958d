package poker

import (
	"fmt"

	poker_constants "pokerhands/constants/poker"
)

// HandCategory is one of the nine standard categories. Its numeric value is
// the category rank, so categories compare with < and >.
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Rank returns the 0..8 strength used to pick the best hand.
func (c HandCategory) Rank() int {
	return int(c)
}

func (c HandCategory) String() string {
	if c < HighCard || c > StraightFlush {
		return fmt.Sprintf("HandCategory(%d)", int(c))
	}
	return poker_constants.CategoryNames[c]
}

// MarshalText lets the category travel as its display name.
func (c HandCategory) MarshalText() ([]byte, error) {
	if c < HighCard || c > StraightFlush {
		return nil, fmt.Errorf("unknown hand category %d", int(c))
	}
	return []byte(c.String()), nil
}

// ParseCategory is the inverse of String.
func ParseCategory(name string) (HandCategory, error) {
	for i, n := range poker_constants.CategoryNames {
		if n == name {
			return HandCategory(i), nil
		}
	}
	return HighCard, fmt.Errorf("unknown hand category %q", name)
}

// Categories lists every category, weakest first.
func Categories() []HandCategory {
	out := make([]HandCategory, 0, len(poker_constants.CategoryNames))
	for i := range poker_constants.CategoryNames {
		out = append(out, HandCategory(i))
	}
	return out
}
