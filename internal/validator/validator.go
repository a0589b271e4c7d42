package validator

import (
	"fmt"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
)

// expectedSize is the number of distinct rank/suit pairs
var expectedSize = len(card.Ranks) * len(card.Suits)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Sequence is the read-only view of a deck that the validator inspects
type Sequence interface {
	Len() int
	At(index int) (card.Card, error)
	Contains(c card.Card) bool
	SortBy(key func(card.Card) int) []card.Card
}

type Validator struct {
	Deck    Sequence
	Results ValidationResults
}

func NewValidator(d Sequence) *Validator {
	return &Validator{
		Deck:    d,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.validateLength()
	v.validateCards()
	v.validateOrder()
	v.validateNegativeIndexing()
	v.validateSpadesHigh()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateLength() {
	if n := v.Deck.Len(); n != expectedSize {
		v.errorf("deck has %d cards, expected %d", n, expectedSize)
	}
}

// validateCards checks that every card is known and appears once
func (v *Validator) validateCards() {
	seen := make(map[card.Card]int)
	for i := 0; i < v.Deck.Len(); i++ {
		c, err := v.Deck.At(i)
		if err != nil {
			v.errorf("card %d: %v", i, err)
			continue
		}
		if !c.Valid() {
			v.errorf("card %d is not a valid card: %s", i, c)
		}
		if prev, ok := seen[c]; ok {
			v.errorf("duplicate card %s at positions %d and %d", c.Short(), prev, i)
			continue
		}
		seen[c] = i
	}

	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			c := card.Card{Rank: rank, Suit: suit}
			if !v.Deck.Contains(c) {
				v.errorf("missing card %s", c.Short())
			}
		}
	}
}

// validateOrder checks suits-outer, ranks-inner construction order
func (v *Validator) validateOrder() {
	i := 0
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			c, err := v.Deck.At(i)
			if err != nil {
				return
			}
			if c.Rank != rank || c.Suit != suit {
				v.errorf("card %d is %s, expected %s", i, c.Short(), card.Card{Rank: rank, Suit: suit}.Short())
				return
			}
			i++
		}
	}
}

func (v *Validator) validateNegativeIndexing() {
	n := v.Deck.Len()
	if n == 0 {
		v.warnf("deck is empty, skipping index checks")
		return
	}

	last, err := v.Deck.At(n - 1)
	if err != nil {
		v.errorf("cannot read last card: %v", err)
		return
	}
	viaNegative, err := v.Deck.At(-1)
	if err != nil {
		v.errorf("negative index -1 failed: %v", err)
		return
	}
	if last != viaNegative {
		v.errorf("index -1 returned %s, expected last card %s", viaNegative.Short(), last.Short())
	}

	if _, err := v.Deck.At(n); err == nil {
		v.errorf("index %d should be out of range", n)
	}
}

// validateSpadesHigh checks that the sort key is a strict total order over the deck
func (v *Validator) validateSpadesHigh() {
	sorted := v.Deck.SortBy(card.SpadesHigh)
	for i := 1; i < len(sorted); i++ {
		prev, cur := card.SpadesHigh(sorted[i-1]), card.SpadesHigh(sorted[i])
		if cur < prev {
			v.errorf("spades-high order broken at %d: %s sorts after %s", i, sorted[i].Short(), sorted[i-1].Short())
		} else if cur == prev {
			v.warnf("cards %s and %s share spades-high key %d", sorted[i-1].Short(), sorted[i].Short(), cur)
		}
	}
}

// compile-time check that *deck.Deck satisfies Sequence
var _ Sequence = (*deck.Deck)(nil)
