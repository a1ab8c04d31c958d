package poker_constants

// Batch limits
const MaxHandsPerBatch = 10
const CardsPerHand = 5

// Label used in the error list for batch-wide problems that belong to no
// single hand.
const MULTIPLE_HANDS_LABEL = "Multiple hands"

// Suits accepted in a card token, in the order they are listed to users.
var ValidSuits = []string{"S", "H", "D", "C"}

// Rank strings accepted in a card token. "1" is the Ace.
var ValidRanks = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13"}

// Straight order: Ace sorts above the King.
var StraightOrder = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "1"}

// Category names, weakest first. The index is the category rank.
var CategoryNames = []string{
	"High card",
	"One pair",
	"Two pair",
	"Three of a kind",
	"Straight",
	"Flush",
	"Full house",
	"Four of a kind",
	"Straight flush",
}
