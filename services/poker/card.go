package poker

import (
	"strconv"

	poker_constants "pokerhands/constants/poker"
)

// Suit is the first character of a card token.
type Suit byte

const (
	Spades   Suit = 'S'
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
)

// Rank is 1..13, 1 being the Ace.
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Card is an immutable (suit, rank) pair. Cards compare with ==.
type Card struct {
	Suit Suit
	Rank Rank
}

// Lookup tables built once from the constants; never written afterwards.
var (
	suitSet      = make(map[byte]Suit, len(poker_constants.ValidSuits))
	rankByString = make(map[string]Rank, len(poker_constants.ValidRanks))
	// straightPos maps a rank to its position with the Ace above the King.
	straightPos = make(map[Rank]int, len(poker_constants.StraightOrder))
)

func init() {
	for _, s := range poker_constants.ValidSuits {
		suitSet[s[0]] = Suit(s[0])
	}
	for i, r := range poker_constants.ValidRanks {
		rankByString[r] = Rank(i + 1)
	}
	for i, r := range poker_constants.StraightOrder {
		straightPos[rankByString[r]] = i
	}
}

// ParseCard decodes a token such as "H13". The rank must be one of the
// exact strings "1".."13"; "01" or "14" are rejected. position is the
// 1-based index of the token within its hand and is only used for errors.
func ParseCard(token string, position int) (Card, error) {
	if token == "" {
		return Card{}, &CardError{Position: position, Token: token, Err: ErrInvalidSuit}
	}
	suit, ok := suitSet[token[0]]
	if !ok {
		return Card{}, &CardError{Position: position, Token: token, Err: ErrInvalidSuit}
	}
	rank, ok := rankByString[token[1:]]
	if !ok {
		return Card{}, &CardError{Position: position, Token: token, Err: ErrInvalidRank}
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// String renders the card in its input form, e.g. "S1" or "D12".
func (c Card) String() string {
	return string(c.Suit) + strconv.Itoa(int(c.Rank))
}

