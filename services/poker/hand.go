package poker

import (
	"strings"

	poker_constants "pokerhands/constants/poker"
)

// Hand holds five distinct cards in the order they were submitted.
// Only ParseHand builds one from text, so a Hand obtained that way is
// always safe to classify.
type Hand [poker_constants.CardsPerHand]Card

// ParseHand splits raw on whitespace and decodes every token. The first bad
// token stops parsing; duplicates are checked once all five cards decoded.
func ParseHand(raw string) (Hand, error) {
	var h Hand

	tokens := strings.Fields(raw)
	if len(tokens) != poker_constants.CardsPerHand {
		return h, &CardCountError{Got: len(tokens)}
	}

	for i, token := range tokens {
		card, err := ParseCard(token, i+1)
		if err != nil {
			return Hand{}, err
		}
		h[i] = card
	}

	if dup, ok := h.firstDuplicate(); ok {
		return Hand{}, &DuplicateCardError{Card: dup}
	}
	return h, nil
}

func (h Hand) firstDuplicate() (Card, bool) {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return Card{}, false
}

// String joins the cards with single spaces.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (h Hand) countRanks() map[Rank]int {
	counts := make(map[Rank]int, len(h))
	for _, c := range h {
		counts[c.Rank]++
	}
	return counts
}
