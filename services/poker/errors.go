package poker

import (
	"errors"
	"fmt"
	"strings"

	poker_constants "pokerhands/constants/poker"
)

// Batch shape errors. Any of these aborts the whole request.
var (
	ErrMissingHands = errors.New("At least one hand is required")
	ErrTooManyHands = fmt.Errorf("Maximum %d hands allowed", poker_constants.MaxHandsPerBatch)
)

// Per-hand errors. They only invalidate the hand they were found in.
var (
	ErrWrongCardCount      = fmt.Errorf("Hand must contain exactly %d cards", poker_constants.CardsPerHand)
	ErrInvalidSuit         = errors.New("invalid suit")
	ErrInvalidRank         = errors.New("invalid rank")
	ErrDuplicateCardInHand = errors.New("duplicate card in hand")
)

// ErrDuplicateAcrossHands is reported once per batch, after every hand has
// been evaluated.
var ErrDuplicateAcrossHands = errors.New("duplicate card across hands")

// CardCountError reports a hand that did not split into exactly five tokens.
type CardCountError struct {
	Got int
}

func (e *CardCountError) Error() string {
	return fmt.Sprintf("%s, got %d", ErrWrongCardCount.Error(), e.Got)
}

func (e *CardCountError) Unwrap() error { return ErrWrongCardCount }

// CardError reports a token that is not a valid card. Position is 1-based.
type CardError struct {
	Position int
	Token    string
	Err      error
}

func (e *CardError) Error() string {
	switch e.Err {
	case ErrInvalidSuit:
		return fmt.Sprintf("Invalid card %d (%s): suit must be one of %s",
			e.Position, e.Token, strings.Join(poker_constants.ValidSuits, ", "))
	case ErrInvalidRank:
		return fmt.Sprintf("Invalid card %d (%s): rank must be between 1 and 13",
			e.Position, e.Token)
	}
	return fmt.Sprintf("Invalid card %d (%s)", e.Position, e.Token)
}

func (e *CardError) Unwrap() error { return e.Err }

// DuplicateCardError reports a card that occurs twice in the same hand.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("Duplicate card %s in hand", e.Card)
}

func (e *DuplicateCardError) Unwrap() error { return ErrDuplicateCardInHand }

// CrossHandDuplicateError names every card shared by two or more hands of
// one batch, in first-seen order.
type CrossHandDuplicateError struct {
	Cards []Card
}

func (e *CrossHandDuplicateError) Error() string {
	names := make([]string, len(e.Cards))
	for i, c := range e.Cards {
		names[i] = c.String()
	}
	if len(names) == 1 {
		return fmt.Sprintf("Card %s appears in more than one hand", names[0])
	}
	return fmt.Sprintf("Cards %s appear in more than one hand", strings.Join(names, ", "))
}

func (e *CrossHandDuplicateError) Unwrap() error { return ErrDuplicateAcrossHands }

// IsBatchShapeError reports whether err must abort the whole batch.
func IsBatchShapeError(err error) bool {
	return errors.Is(err, ErrMissingHands) || errors.Is(err, ErrTooManyHands)
}
