package deck

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/arcanaland/frenchdeck/internal/card"
)

var (
	// ErrIndexOutOfRange is returned by At when the normalized index is outside [0, Len)
	ErrIndexOutOfRange = errors.New("deck index out of range")
	// ErrZeroStep is returned by Slice when the step is zero
	ErrZeroStep = errors.New("slice step cannot be zero")
)

// Deck is the fixed ordered sequence of all 52 French cards.
// It is never modified after New and can be shared freely.
type Deck struct {
	cards []card.Card
}

// New builds a deck with suits in the outer loop and ranks in the inner loop
func New() *Deck {
	cards := make([]card.Card, 0, len(card.Ranks)*len(card.Suits))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at index. Negative indices count from the end.
func (d *Deck) At(index int) (card.Card, error) {
	i := index
	if i < 0 {
		i += len(d.cards)
	}
	if i < 0 || i >= len(d.cards) {
		return card.Card{}, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(d.cards))
	}
	return d.cards[i], nil
}

// Bounds describes a range query. Nil fields take their defaults.
type Bounds struct {
	Start *int
	Stop  *int
	Step  *int
}

// Slice returns a new slice of the cards selected by b, in deck order
// (or reversed for a negative step). Out-of-range bounds are clamped.
func (d *Deck) Slice(b Bounds) ([]card.Card, error) {
	n := len(d.cards)
	step := 1
	if b.Step != nil {
		step = *b.Step
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var start, stop int
	if step > 0 {
		start, stop = clamp(b.Start, lower), clamp(b.Stop, upper)
	} else {
		start, stop = clamp(b.Start, upper), clamp(b.Stop, lower)
	}

	// Count the selected cards first so a huge step cannot overflow the index
	var span, stride uint
	if step > 0 && start < stop {
		span, stride = uint(stop-start), uint(step)
	} else if step < 0 && start > stop {
		span, stride = uint(start-stop), uint(-step) // uint(-math.MinInt) is still |step|
	}
	if span == 0 {
		return nil, nil
	}
	count := int((span-1)/stride) + 1

	out := make([]card.Card, 0, count)
	for k := 0; k < count; k++ {
		out = append(out, d.cards[start+k*step])
	}
	return out, nil
}

// ParseBounds parses "start:stop:step" where every part is optional, e.g. ":3" or "12::13"
func ParseBounds(expr string) (Bounds, error) {
	parts := strings.Split(expr, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Bounds{}, fmt.Errorf("invalid slice expression: %q", expr)
	}

	var b Bounds
	fields := []**int{&b.Start, &b.Stop, &b.Step}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Bounds{}, fmt.Errorf("invalid slice expression %q: %v", expr, err)
		}
		*fields[i] = &v
	}
	return b, nil
}

// Contains reports whether some card in the deck equals c
func (d *Deck) Contains(c card.Card) bool {
	return slices.Contains(d.cards, c)
}

// All iterates over the cards in construction order
func (d *Deck) All() iter.Seq2[int, card.Card] {
	return slices.All(d.cards)
}

// Backward iterates over the cards in reverse order
func (d *Deck) Backward() iter.Seq2[int, card.Card] {
	return slices.Backward(d.cards)
}

// Cards returns a copy of the cards in construction order
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// SortBy returns a new slice sorted ascending by key. Equal keys keep deck order.
func (d *Deck) SortBy(key func(card.Card) int) []card.Card {
	sorted := slices.Clone(d.cards)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

// Choice returns a uniformly random card drawn from r
func (d *Deck) Choice(r *rand.Rand) card.Card {
	return d.cards[r.IntN(len(d.cards))]
}
