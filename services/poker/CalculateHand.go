package poker

import (
	"sort"
)

// wheel is the straight A-2-3-4-5 expressed as sorted straight positions:
// 2, 3, 4, 5 at the bottom and the Ace at the top.
var wheel = [5]int{0, 1, 2, 3, 12}

// Classify returns the category of a validated hand. Stronger categories
// are checked first and the first match wins.
func Classify(h Hand) HandCategory {
	switch {
	case h.isStraightFlush():
		return StraightFlush
	case h.isFourOfAKind():
		return FourOfAKind
	case h.isFullHouse():
		return FullHouse
	case h.isFlush():
		return Flush
	case h.isStraight():
		return Straight
	case h.isThreeOfAKind():
		return ThreeOfAKind
	case h.isTwoPair():
		return TwoPair
	case h.isPair():
		return OnePair
	default:
		return HighCard
	}
}

func (h Hand) isStraightFlush() bool {
	return h.isFlush() && h.isStraight()
}

func (h Hand) isFourOfAKind() bool {
	return h.ranksWithCount(4) > 0
}

// Three of a kind and a pair at the same time, i.e. a 3+2 split.
func (h Hand) isFullHouse() bool {
	return h.isThreeOfAKind() && h.isPair()
}

func (h Hand) isFlush() bool {
	suit := h[0].Suit
	for _, c := range h[1:] {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

func (h Hand) isStraight() bool {
	positions := make([]int, len(h))
	for i, c := range h {
		positions[i] = straightPos[c.Rank]
	}
	sort.Ints(positions)

	if [5]int(positions) == wheel {
		return true
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] != positions[i-1]+1 {
			return false
		}
	}
	return true
}

func (h Hand) isThreeOfAKind() bool {
	return h.ranksWithCount(3) > 0
}

func (h Hand) isTwoPair() bool {
	return h.ranksWithCount(2) == 2
}

// Also true for full houses and two pairs, hence its place near the end.
func (h Hand) isPair() bool {
	return h.ranksWithCount(2) > 0
}

// ranksWithCount returns how many distinct ranks occur exactly n times.
func (h Hand) ranksWithCount(n int) int {
	found := 0
	for _, count := range h.countRanks() {
		if count == n {
			found++
		}
	}
	return found
}
