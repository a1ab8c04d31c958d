package poker

import (
	"strings"

	poker_constants "pokerhands/constants/poker"
)

// HandResult is a hand that parsed and was classified.
type HandResult struct {
	Raw      string
	Category HandCategory
	Best     bool
}

// HandFailure is a hand, or for batch-wide problems a label, that could not
// be evaluated.
type HandFailure struct {
	Raw string
	Err error
}

// BatchResult collects the outcome of one submitted batch. Results and
// Failures keep input order; batch-level failures come last.
type BatchResult struct {
	Results  []HandResult
	Failures []HandFailure
}

// Best returns the hand flagged as the strongest, if any hand parsed.
func (b BatchResult) Best() (HandResult, bool) {
	for _, r := range b.Results {
		if r.Best {
			return r, true
		}
	}
	return HandResult{}, false
}

// ValidateBatch checks the batch as a whole before any hand is parsed.
func ValidateBatch(rawHands []string) error {
	if len(rawHands) == 0 {
		return ErrMissingHands
	}
	if len(rawHands) > poker_constants.MaxHandsPerBatch {
		return ErrTooManyHands
	}
	return nil
}

// FindCrossHandDuplicates returns the cards found in more than one hand, in
// the order they were first seen. It reads the raw tokens of every hand,
// including hands that fail their own validation; tokens that do not decode
// as a card are skipped. A card repeated inside one hand counts once.
func FindCrossHandDuplicates(rawHands []string) []Card {
	firstHand := make(map[Card]int)
	reported := make(map[Card]bool)
	var order []Card

	for handIdx, raw := range rawHands {
		for pos, token := range strings.Fields(raw) {
			card, err := ParseCard(token, pos+1)
			if err != nil {
				continue
			}
			owner, seen := firstHand[card]
			if !seen {
				firstHand[card] = handIdx
				order = append(order, card)
				continue
			}
			if owner != handIdx {
				reported[card] = true
			}
		}
	}

	var dups []Card
	for _, card := range order {
		if reported[card] {
			dups = append(dups, card)
		}
	}
	return dups
}

// EvaluateBatch parses and classifies every hand of the batch. A batch
// shape error is returned as err and nothing is evaluated; any other
// problem is recorded in the result's Failures and processing goes on.
func EvaluateBatch(rawHands []string) (BatchResult, error) {
	if err := ValidateBatch(rawHands); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{
		Results:  make([]HandResult, 0, len(rawHands)),
		Failures: make([]HandFailure, 0),
	}

	for _, raw := range rawHands {
		hand, err := ParseHand(raw)
		if err != nil {
			result.Failures = append(result.Failures, HandFailure{Raw: raw, Err: err})
			continue
		}
		result.Results = append(result.Results, HandResult{Raw: raw, Category: Classify(hand)})
	}

	markBest(result.Results)

	if dups := FindCrossHandDuplicates(rawHands); len(dups) > 0 {
		result.Failures = append(result.Failures, HandFailure{
			Raw: poker_constants.MULTIPLE_HANDS_LABEL,
			Err: &CrossHandDuplicateError{Cards: dups},
		})
	}

	return result, nil
}

// markBest flags the first result holding the highest category rank.
func markBest(results []HandResult) {
	best := -1
	for i, r := range results {
		if best < 0 || r.Category.Rank() > results[best].Category.Rank() {
			best = i
		}
	}
	for i := range results {
		results[i].Best = i == best
	}
}
