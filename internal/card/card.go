package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Ranks lists the card ranks from lowest to highest
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Suits lists the suits in deck construction order
var Suits = []string{"spades", "diamonds", "clubs", "hearts"}

// suitValues ranks suits for SpadesHigh
var suitValues = map[string]int{
	"spades":   3,
	"hearts":   2,
	"diamonds": 1,
	"clubs":    0,
}

// Card represents a French playing card. Two cards are equal iff rank and suit match.
type Card struct {
	Rank string // 2-10, J, Q, K, A
	Suit string // spades, diamonds, clubs, hearts
}

// New returns a Card after checking rank and suit
func New(rank, suit string) (Card, error) {
	c := Card{Rank: rank, Suit: suit}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: rank %q suit %q", ErrInvalidCard, rank, suit)
	}
	return c, nil
}

// Valid reports whether the rank and suit are known
func (c Card) Valid() bool {
	return RankIndex(c.Rank) >= 0 && SuitValue(c.Suit) >= 0
}

// String renders the card the way a record prints, e.g. Card(rank='7', suit='hearts')
func (c Card) String() string {
	return fmt.Sprintf("Card(rank='%s', suit='%s')", c.Rank, c.Suit)
}

// Short renders the card compactly, e.g. 7♥
func (c Card) Short() string {
	return c.Rank + SuitSymbol(c.Suit)
}

// RankIndex returns the position of rank in Ranks, or -1
func RankIndex(rank string) int {
	return slices.Index(Ranks, rank)
}

// SuitValue returns the spades-high value of suit, or -1
func SuitValue(suit string) int {
	if v, ok := suitValues[suit]; ok {
		return v
	}
	return -1
}

// SpadesHigh is a sort key where rank dominates and spades is the highest suit.
// It returns -1 for cards that are not Valid.
func SpadesHigh(c Card) int {
	rank, suit := RankIndex(c.Rank), SuitValue(c.Suit)
	if rank < 0 || suit < 0 {
		return -1
	}
	return rank*len(suitValues) + suit
}

// SuitSymbol returns the symbol for a suit
func SuitSymbol(suit string) string {
	switch suit {
	case "spades":
		return "♠"
	case "hearts":
		return "♥"
	case "diamonds":
		return "♦"
	case "clubs":
		return "♣"
	default:
		return "•"
	}
}

var suitAliases = map[string]string{
	"s": "spades", "spade": "spades", "spades": "spades", "♠": "spades",
	"h": "hearts", "heart": "hearts", "hearts": "hearts", "♥": "hearts",
	"d": "diamonds", "diamond": "diamonds", "diamonds": "diamonds", "♦": "diamonds",
	"c": "clubs", "club": "clubs", "clubs": "clubs", "♣": "clubs",
}

// Parse reads a card from "7 hearts", "7-hearts", "7h" or "7♥".
// The rank is not validated, so Parse("11 hearts") yields a card that no deck contains.
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty string", ErrInvalidCard)
	}

	var rank, suit string
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' })
	switch len(fields) {
	case 2:
		rank, suit = fields[0], fields[1]
	case 1:
		// Compact form: the suit is the trailing letter or symbol
		runes := []rune(s)
		if len(runes) < 2 {
			return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
		}
		rank, suit = string(runes[:len(runes)-1]), string(runes[len(runes)-1])
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	name, ok := suitAliases[strings.ToLower(suit)]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}

	return Card{Rank: strings.ToUpper(rank), Suit: name}, nil
}
