// Package display renders cards and vectors for the terminal.
package display

import (
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/config"
)

const defaultWidth = 80

// dimTarget is the color unselected cards fade toward
var dimTarget = colorful.Color{R: 0.35, G: 0.35, B: 0.35}

// Renderer formats cards according to the user's config
type Renderer struct {
	Color   bool
	Symbols bool
	Width   int

	suitColors map[string]colorful.Color
}

// NewRenderer builds a renderer from config. Color is turned off when stdout is not a terminal.
func NewRenderer(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &Renderer{
		Color:      cfg.Color && term.IsTerminal(int(os.Stdout.Fd())),
		Symbols:    cfg.SuitSymbols,
		Width:      terminalWidth(),
		suitColors: make(map[string]colorful.Color),
	}

	defaults := config.Default().SuitColors
	for _, suit := range card.Suits {
		hex, ok := cfg.SuitColors[suit]
		if !ok {
			hex = defaults[suit]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			// Bad hex in the config file, keep the default
			c, _ = colorful.Hex(defaults[suit])
		}
		r.suitColors[suit] = c
	}

	return r
}

// terminalWidth returns the width of stdout or a default
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Label returns the uncolored text for a card, e.g. "7♥" or "7 of hearts"
func (r *Renderer) Label(c card.Card) string {
	if r.Symbols {
		return c.Short()
	}
	return c.Rank + " of " + c.Suit
}

// Card returns the card label in its suit color
func (r *Renderer) Card(c card.Card) string {
	return r.paint(r.Label(c), r.suitColor(c.Suit))
}

// Dim returns the card label in a faded suit color
func (r *Renderer) Dim(c card.Card) string {
	return r.paint(r.Label(c), r.suitColor(c.Suit).BlendLab(dimTarget, 0.6).Clamped())
}

func (r *Renderer) suitColor(suit string) colorful.Color {
	if c, ok := r.suitColors[suit]; ok {
		return c
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// paint wraps text in a 24-bit foreground color escape
func (r *Renderer) paint(text string, c colorful.Color) string {
	red, green, blue := c.RGB255()
	p := colorize.New(38, 2, colorize.Attribute(red), colorize.Attribute(green), colorize.Attribute(blue))
	if r.Color {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p.Sprint(text)
}

// Heading returns text in the heading style
func (r *Renderer) Heading(text string) string {
	h := colorize.New(colorize.FgCyan, colorize.Bold)
	if r.Color {
		h.EnableColor()
	} else {
		h.DisableColor()
	}
	return h.Sprint(text)
}

// Row lays cards out left to right, wrapping at the renderer width
func (r *Renderer) Row(cards []card.Card) []string {
	return r.layout(cards, func(card.Card) bool { return true })
}

// Highlight lays out all cards, coloring those in selected and dimming the rest
func (r *Renderer) Highlight(all, selected []card.Card) []string {
	set := make(map[card.Card]bool, len(selected))
	for _, c := range selected {
		set[c] = true
	}
	return r.layout(all, func(c card.Card) bool { return set[c] })
}

func (r *Renderer) layout(cards []card.Card, lit func(card.Card) bool) []string {
	width := r.Width
	if width < 10 {
		width = defaultWidth
	}

	var lines []string
	var line strings.Builder
	visible := 0

	for _, c := range cards {
		label := r.Label(c)
		size := len([]rune(label))

		if visible > 0 && visible+1+size > width {
			lines = append(lines, line.String())
			line.Reset()
			visible = 0
		}
		if visible > 0 {
			line.WriteString(" ")
			visible++
		}

		if lit(c) {
			line.WriteString(r.Card(c))
		} else {
			line.WriteString(r.Dim(c))
		}
		visible += size
	}

	if visible > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
